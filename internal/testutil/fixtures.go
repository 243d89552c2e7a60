// Package testutil provides type-safe builders for budget snapshot test
// data, so tests describe the budget they need instead of assembling
// structs by hand.
package testutil

import (
	"testing"
	"time"

	"github.com/ynsight/ynsight/internal/model"
)

// SnapshotBuilder accumulates budget data and produces a model.Snapshot.
//
// Example:
//
//	snap := testutil.NewSnapshotBuilder(t).
//		WithAccount("acc-1", "Checking", model.AccountChecking).
//		WithCategory("Essentials", "cat-groceries", "Groceries", 500_000, -320_000).
//		WithTransaction("txn-1", "2024-01-15", "acc-1", "cat-groceries", -57_500).
//		Build()
type SnapshotBuilder struct {
	t            *testing.T
	groupIndex   map[string]int
	budget       model.Budget
	groups       []model.CategoryGroup
	categories   []model.Category
	accounts     []model.Account
	payees       []model.Payee
	transactions []model.Transaction
}

// NewSnapshotBuilder returns a builder seeded with a minimal USD budget.
func NewSnapshotBuilder(t *testing.T) *SnapshotBuilder {
	t.Helper()
	return &SnapshotBuilder{
		t: t,
		budget: model.Budget{
			ID:           "budget-1",
			Name:         "Test Budget",
			LastModified: time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			Currency:     model.CurrencyFormat{ISOCode: "USD", DecimalDigits: 2},
		},
		groupIndex: make(map[string]int),
	}
}

// WithBudget overrides the budget header.
func (b *SnapshotBuilder) WithBudget(budget model.Budget) *SnapshotBuilder {
	b.budget = budget
	return b
}

// WithAccount adds an on-budget account.
func (b *SnapshotBuilder) WithAccount(id, name string, kind model.AccountKind) *SnapshotBuilder {
	b.accounts = append(b.accounts, model.Account{
		ID:       id,
		Name:     name,
		Kind:     kind,
		OnBudget: kind != model.AccountTracking,
	})
	return b
}

// WithPayee adds a payee.
func (b *SnapshotBuilder) WithPayee(id, name string) *SnapshotBuilder {
	b.payees = append(b.payees, model.Payee{ID: id, Name: name})
	return b
}

// WithCategory adds a category under the named group, creating the group on
// first use. Budgeted and activity are milliunits; available is derived.
func (b *SnapshotBuilder) WithCategory(groupName, id, name string, budgeted, activity int64) *SnapshotBuilder {
	idx, ok := b.groupIndex[groupName]
	if !ok {
		idx = len(b.groups)
		b.groupIndex[groupName] = idx
		b.groups = append(b.groups, model.CategoryGroup{
			ID:   "group-" + groupName,
			Name: groupName,
		})
	}
	b.groups[idx].CategoryIDs = append(b.groups[idx].CategoryIDs, id)
	b.categories = append(b.categories, model.Category{
		ID:        id,
		Name:      name,
		GroupID:   b.groups[idx].ID,
		Budgeted:  model.NewMoney(budgeted),
		Activity:  model.NewMoney(activity),
		Available: model.NewMoney(budgeted + activity),
	})
	return b
}

// WithHiddenCategory adds a hidden category under the named group.
func (b *SnapshotBuilder) WithHiddenCategory(groupName, id, name string, budgeted, activity int64) *SnapshotBuilder {
	b.WithCategory(groupName, id, name, budgeted, activity)
	b.categories[len(b.categories)-1].Hidden = true
	return b
}

// WithTransaction adds a cleared transaction. Date is "2006-01-02";
// categoryID may be empty for an uncategorized transaction. Amount is
// milliunits, negative for outflows.
func (b *SnapshotBuilder) WithTransaction(id, date, accountID, categoryID string, amount int64) *SnapshotBuilder {
	b.t.Helper()
	parsed, err := model.ParseDate(date)
	if err != nil {
		b.t.Fatalf("invalid fixture date %q: %v", date, err)
	}
	txn := model.Transaction{
		ID:        id,
		Date:      parsed,
		AccountID: accountID,
		Amount:    model.NewMoney(amount),
		Cleared:   model.ClearedCleared,
	}
	if categoryID != "" {
		txn.CategoryID = &categoryID
	}
	b.transactions = append(b.transactions, txn)
	return b
}

// WithTransactionDetail adds a transaction with payee and memo attached.
func (b *SnapshotBuilder) WithTransactionDetail(id, date, accountID, categoryID, payeeID, memo string, amount int64) *SnapshotBuilder {
	b.t.Helper()
	b.WithTransaction(id, date, accountID, categoryID, amount)
	txn := &b.transactions[len(b.transactions)-1]
	if payeeID != "" {
		txn.PayeeID = &payeeID
	}
	txn.Memo = memo
	return b
}

// Build assembles the snapshot.
func (b *SnapshotBuilder) Build() *model.Snapshot {
	b.t.Helper()
	return model.NewSnapshot(b.budget, b.accounts, b.groups, b.categories, b.payees, b.transactions)
}

// GroceriesSnapshot is a canonical fixture shared by analysis and tool
// tests: one checking account, a Groceries category with January 2024
// spending totaling 57.50, and an unrelated Rent transaction.
func GroceriesSnapshot(t *testing.T) *model.Snapshot {
	t.Helper()
	return NewSnapshotBuilder(t).
		WithAccount("acc-checking", "Checking", model.AccountChecking).
		WithPayee("payee-market", "Corner Market").
		WithPayee("payee-landlord", "Landlord").
		WithCategory("Essentials", "cat-groceries", "Groceries", 500_000, -57_500).
		WithCategory("Essentials", "cat-rent", "Rent", 1_500_000, -1_500_000).
		WithTransactionDetail("txn-1", "2024-01-05", "acc-checking", "cat-groceries", "payee-market", "weekly run", -32_500).
		WithTransactionDetail("txn-2", "2024-01-19", "acc-checking", "cat-groceries", "payee-market", "", -25_000).
		WithTransactionDetail("txn-3", "2024-01-01", "acc-checking", "cat-rent", "payee-landlord", "january rent", -1_500_000).
		Build()
}

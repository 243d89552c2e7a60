package ynab

import (
	"fmt"
	"time"

	"github.com/ynsight/ynsight/internal/model"
)

// Wire types for the YNAB v1 API. Every response body is wrapped in a
// "data" envelope. Amounts are milliunits on the wire, which is exactly the
// Money representation, so decoding is lossless.

type budgetEnvelope struct {
	Data struct {
		Budget wireBudget `json:"budget"`
	} `json:"data"`
}

type wireBudget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastModifiedOn string `json:"last_modified_on"`
	CurrencyFormat struct {
		ISOCode       string `json:"iso_code"`
		DecimalDigits int    `json:"decimal_digits"`
	} `json:"currency_format"`
}

type accountsEnvelope struct {
	Data struct {
		Accounts []wireAccount `json:"accounts"`
	} `json:"data"`
}

type wireAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	OnBudget bool   `json:"on_budget"`
	Closed   bool   `json:"closed"`
}

type categoriesEnvelope struct {
	Data struct {
		CategoryGroups []wireCategoryGroup `json:"category_groups"`
	} `json:"data"`
}

type wireCategoryGroup struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Hidden     bool           `json:"hidden"`
	Categories []wireCategory `json:"categories"`
}

type wireCategory struct {
	ID              string `json:"id"`
	CategoryGroupID string `json:"category_group_id"`
	Name            string `json:"name"`
	Hidden          bool   `json:"hidden"`
	Budgeted        int64  `json:"budgeted"`
	Activity        int64  `json:"activity"`
	Balance         int64  `json:"balance"`
}

type payeesEnvelope struct {
	Data struct {
		Payees []wirePayee `json:"payees"`
	} `json:"data"`
}

type wirePayee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type transactionsEnvelope struct {
	Data struct {
		Transactions []wireTransaction `json:"transactions"`
	} `json:"data"`
}

type wireTransaction struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	Memo       *string `json:"memo"`
	Cleared    string  `json:"cleared"`
	AccountID  string  `json:"account_id"`
	PayeeID    *string `json:"payee_id"`
	CategoryID *string `json:"category_id"`
	Deleted    bool    `json:"deleted"`
}

func (w wireBudget) toModel() (model.Budget, error) {
	budget := model.Budget{
		ID:   w.ID,
		Name: w.Name,
		Currency: model.CurrencyFormat{
			ISOCode:       w.CurrencyFormat.ISOCode,
			DecimalDigits: w.CurrencyFormat.DecimalDigits,
		},
	}
	if w.LastModifiedOn != "" {
		t, err := time.Parse(time.RFC3339, w.LastModifiedOn)
		if err != nil {
			return model.Budget{}, fmt.Errorf("budget last_modified_on: %w", err)
		}
		budget.LastModified = t
	}
	return budget, nil
}

// accountKind folds YNAB's account taxonomy into the engine's closed set.
// Anything that is not an everyday spending account is tracked outside the
// budget.
func accountKind(ynabType string) model.AccountKind {
	switch ynabType {
	case "checking":
		return model.AccountChecking
	case "savings":
		return model.AccountSavings
	case "creditCard", "lineOfCredit":
		return model.AccountCredit
	case "cash":
		return model.AccountCash
	default:
		return model.AccountTracking
	}
}

func clearedStatus(s string) model.ClearedStatus {
	switch s {
	case "cleared":
		return model.ClearedCleared
	case "reconciled":
		return model.ClearedReconciled
	default:
		return model.ClearedUncleared
	}
}

// assemble builds one consistent snapshot out of the decoded responses.
// Deleted and closed records are dropped before the snapshot is sealed.
func assemble(budget wireBudget, accounts []wireAccount, groups []wireCategoryGroup, payees []wirePayee, transactions []wireTransaction) (*model.Snapshot, error) {
	b, err := budget.toModel()
	if err != nil {
		return nil, err
	}

	modelAccounts := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Closed {
			continue
		}
		modelAccounts = append(modelAccounts, model.Account{
			ID:       a.ID,
			Name:     a.Name,
			Kind:     accountKind(a.Type),
			OnBudget: a.OnBudget,
		})
	}

	var modelGroups []model.CategoryGroup
	var modelCategories []model.Category
	for _, g := range groups {
		group := model.CategoryGroup{ID: g.ID, Name: g.Name, Hidden: g.Hidden}
		for _, c := range g.Categories {
			group.CategoryIDs = append(group.CategoryIDs, c.ID)
			modelCategories = append(modelCategories, model.Category{
				ID:        c.ID,
				Name:      c.Name,
				GroupID:   g.ID,
				Hidden:    c.Hidden,
				Budgeted:  model.NewMoney(c.Budgeted),
				Activity:  model.NewMoney(c.Activity),
				Available: model.NewMoney(c.Balance),
			})
		}
		modelGroups = append(modelGroups, group)
	}

	modelPayees := make([]model.Payee, 0, len(payees))
	for _, p := range payees {
		modelPayees = append(modelPayees, model.Payee{ID: p.ID, Name: p.Name})
	}

	modelTransactions := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Deleted {
			continue
		}
		date, err := model.ParseDate(t.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		memo := ""
		if t.Memo != nil {
			memo = *t.Memo
		}
		modelTransactions = append(modelTransactions, model.Transaction{
			ID:         t.ID,
			Date:       date,
			Amount:     model.NewMoney(t.Amount),
			CategoryID: t.CategoryID,
			PayeeID:    t.PayeeID,
			AccountID:  t.AccountID,
			Memo:       memo,
			Cleared:    clearedStatus(t.Cleared),
		})
	}

	return model.NewSnapshot(b, modelAccounts, modelGroups, modelCategories, modelPayees, modelTransactions), nil
}

package model

import "time"

// CurrencyFormat describes how the budget's single currency renders.
type CurrencyFormat struct {
	ISOCode       string
	DecimalDigits int
}

// Budget is the root metadata for a snapshot.
type Budget struct {
	LastModified time.Time
	ID           string
	Name         string
	Currency     CurrencyFormat
}

// Snapshot is the full, internally consistent set of budget entities
// fetched together at one point in time. It exclusively owns everything it
// holds; every id a transaction references resolves within the same
// snapshot. Nothing in a snapshot is mutated after construction, which is
// what makes the engine safe to run concurrently across requests.
type Snapshot struct {
	categoriesByID map[string]*Category
	accountsByID   map[string]*Account
	payeesByID     map[string]*Payee
	Budget         Budget
	Accounts       []Account
	Groups         []CategoryGroup
	Categories     []Category
	Payees         []Payee
	Transactions   []Transaction
}

// NewSnapshot builds a snapshot and its id indexes.
func NewSnapshot(budget Budget, accounts []Account, groups []CategoryGroup, categories []Category, payees []Payee, transactions []Transaction) *Snapshot {
	s := &Snapshot{
		Budget:         budget,
		Accounts:       accounts,
		Groups:         groups,
		Categories:     categories,
		Payees:         payees,
		Transactions:   transactions,
		categoriesByID: make(map[string]*Category, len(categories)),
		accountsByID:   make(map[string]*Account, len(accounts)),
		payeesByID:     make(map[string]*Payee, len(payees)),
	}
	for i := range s.Categories {
		s.categoriesByID[s.Categories[i].ID] = &s.Categories[i]
	}
	for i := range s.Accounts {
		s.accountsByID[s.Accounts[i].ID] = &s.Accounts[i]
	}
	for i := range s.Payees {
		s.payeesByID[s.Payees[i].ID] = &s.Payees[i]
	}
	return s
}

// Category resolves a category id within the snapshot.
func (s *Snapshot) Category(id string) (*Category, bool) {
	c, ok := s.categoriesByID[id]
	return c, ok
}

// Account resolves an account id within the snapshot.
func (s *Snapshot) Account(id string) (*Account, bool) {
	a, ok := s.accountsByID[id]
	return a, ok
}

// Payee resolves a payee id within the snapshot.
func (s *Snapshot) Payee(id string) (*Payee, bool) {
	p, ok := s.payeesByID[id]
	return p, ok
}

// PayeeName returns the payee name for a transaction, or "" when the
// transaction has no payee.
func (s *Snapshot) PayeeName(t *Transaction) string {
	if t.PayeeID == nil {
		return ""
	}
	if p, ok := s.payeesByID[*t.PayeeID]; ok {
		return p.Name
	}
	return ""
}

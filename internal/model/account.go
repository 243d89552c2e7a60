package model

// AccountKind is the closed set of account kinds the engine distinguishes.
// The richer YNAB account taxonomy folds into it at decode time.
type AccountKind string

const (
	// AccountChecking is a standard checking account.
	AccountChecking AccountKind = "checking"
	// AccountSavings is a savings account.
	AccountSavings AccountKind = "savings"
	// AccountCredit is a credit card or line of credit.
	AccountCredit AccountKind = "credit"
	// AccountCash is physical cash.
	AccountCash AccountKind = "cash"
	// AccountTracking is any account tracked outside the budget
	// (investments, loans, assets).
	AccountTracking AccountKind = "tracking"
)

// Account is a financial account within a budget snapshot.
type Account struct {
	ID       string
	Name     string
	Kind     AccountKind
	OnBudget bool
}

package model

// Payee is a merchant or person referenced by transactions. Transactions
// refer to payees by identifier only; neither side owns the other.
type Payee struct {
	ID   string
	Name string
}

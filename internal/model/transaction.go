package model

import "time"

// ClearedStatus is the reconciliation state of a transaction.
type ClearedStatus string

const (
	// ClearedUncleared means the transaction has not cleared the account.
	ClearedUncleared ClearedStatus = "uncleared"
	// ClearedCleared means the transaction has cleared.
	ClearedCleared ClearedStatus = "cleared"
	// ClearedReconciled means the transaction was reconciled against a statement.
	ClearedReconciled ClearedStatus = "reconciled"
)

// Transaction is a single ledger entry, immutable once constructed from the
// fetched snapshot. Amount is signed: outflow negative, inflow positive.
// CategoryID and PayeeID are nil when absent — an uncategorized transaction
// is valid and never matches a real category id.
type Transaction struct {
	Date       time.Time
	CategoryID *string
	PayeeID    *string
	ID         string
	AccountID  string
	Memo       string
	Cleared    ClearedStatus
	Amount     Money
}

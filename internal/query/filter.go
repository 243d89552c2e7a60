// Package query narrows a snapshot's transaction ledger against a set of
// independently optional criteria. Filtering is pure: it allocates a fresh
// result slice and never touches the snapshot.
package query

import (
	"sort"
	"strings"

	"github.com/ynsight/ynsight/internal/model"
)

// Criteria is the filter configuration. Every field is optional; each set
// field narrows the result via logical AND. Amount bounds are inclusive and
// apply to the signed amount under the outflow-negative convention:
// "spending over $100" means AmountMax of -100.00, not AmountMin.
type Criteria struct {
	CategoryID *string
	AccountID  *string
	PayeeID    *string
	AmountMin  *model.Money
	AmountMax  *model.Money
	DateRange  *model.DateRange
	PayeeText  string
	TextSearch string
}

// Filter returns the transactions matching every set criterion, ordered by
// date descending with ties broken by id ascending. An empty criteria set
// returns all transactions in that same canonical order. An empty result is
// a valid answer, never an error.
func Filter(snapshot *model.Snapshot, c Criteria) []model.Transaction {
	matched := make([]model.Transaction, 0, len(snapshot.Transactions))
	for i := range snapshot.Transactions {
		t := &snapshot.Transactions[i]
		if c.matches(snapshot, t) {
			matched = append(matched, *t)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})

	return matched
}

func (c Criteria) matches(snapshot *model.Snapshot, t *model.Transaction) bool {
	if c.CategoryID != nil {
		if t.CategoryID == nil || *t.CategoryID != *c.CategoryID {
			return false
		}
	}
	if c.AccountID != nil && t.AccountID != *c.AccountID {
		return false
	}
	if c.PayeeID != nil {
		if t.PayeeID == nil || *t.PayeeID != *c.PayeeID {
			return false
		}
	}
	if c.PayeeText != "" && !containsFold(snapshot.PayeeName(t), c.PayeeText) {
		return false
	}
	if c.DateRange != nil && !c.DateRange.Contains(t.Date) {
		return false
	}
	if c.AmountMin != nil && t.Amount.Cmp(*c.AmountMin) < 0 {
		return false
	}
	if c.AmountMax != nil && t.Amount.Cmp(*c.AmountMax) > 0 {
		return false
	}
	if c.TextSearch != "" &&
		!containsFold(t.Memo, c.TextSearch) &&
		!containsFold(snapshot.PayeeName(t), c.TextSearch) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

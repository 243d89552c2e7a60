package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLookups(t *testing.T) {
	payeeID := "payee-1"
	snap := NewSnapshot(
		Budget{ID: "b-1"},
		[]Account{{ID: "acc-1", Name: "Checking", Kind: AccountChecking, OnBudget: true}},
		[]CategoryGroup{{ID: "grp-1", Name: "Essentials", CategoryIDs: []string{"cat-1"}}},
		[]Category{{ID: "cat-1", Name: "Groceries", GroupID: "grp-1"}},
		[]Payee{{ID: payeeID, Name: "Corner Market"}},
		[]Transaction{
			{ID: "txn-1", AccountID: "acc-1", PayeeID: &payeeID},
			{ID: "txn-2", AccountID: "acc-1"},
		},
	)

	cat, ok := snap.Category("cat-1")
	require.True(t, ok)
	assert.Equal(t, "Groceries", cat.Name)

	_, ok = snap.Category("cat-404")
	assert.False(t, ok)

	acc, ok := snap.Account("acc-1")
	require.True(t, ok)
	assert.Equal(t, AccountChecking, acc.Kind)

	payee, ok := snap.Payee(payeeID)
	require.True(t, ok)
	assert.Equal(t, "Corner Market", payee.Name)

	assert.Equal(t, "Corner Market", snap.PayeeName(&snap.Transactions[0]))
	assert.Empty(t, snap.PayeeName(&snap.Transactions[1]), "no payee means empty name")
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestSpendingTrendMonthly(t *testing.T) {
	snap := testutil.NewSnapshotBuilder(t).
		WithAccount("acc-1", "Checking", model.AccountChecking).
		WithCategory("Essentials", "cat-g", "Groceries", 500_000, -300_000).
		WithTransaction("txn-1", "2024-01-10", "acc-1", "cat-g", -100_000).
		WithTransaction("txn-2", "2024-01-25", "acc-1", "cat-g", -50_000).
		WithTransaction("txn-3", "2024-03-05", "acc-1", "cat-g", -150_000).
		Build()

	r := model.DateRange{Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-03-31")}
	points, err := SpendingTrend(snap, strPtr("cat-g"), model.GranularityMonth, r)
	require.NoError(t, err)

	require.Len(t, points, 3, "three months requested, three entries back")
	assert.Equal(t, "2024-01", points[0].Label)
	assert.Equal(t, int64(150_000), points[0].Spending.Milliunits())
	assert.Equal(t, "2024-02", points[1].Label)
	assert.True(t, points[1].Spending.IsZero(), "quiet months still get an entry")
	assert.Equal(t, "2024-03", points[2].Label)
	assert.Equal(t, int64(150_000), points[2].Spending.Milliunits())
}

func TestSpendingTrendAllCategories(t *testing.T) {
	snap := testutil.GroceriesSnapshot(t)

	r := model.DateRange{Start: mustDate(t, "2024-01-01"), End: mustDate(t, "2024-01-31")}
	points, err := SpendingTrend(snap, nil, model.GranularityMonth, r)
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, int64(1_557_500), points[0].Spending.Milliunits(), "nil category aggregates the whole ledger")
}

func TestSpendingTrendOpenRangeClosesAtLatestTransaction(t *testing.T) {
	snap := testutil.GroceriesSnapshot(t)

	r := model.DateRange{Start: mustDate(t, "2024-01-01")}
	points, err := SpendingTrend(snap, strPtr("cat-groceries"), model.GranularityWeek, r)
	require.NoError(t, err)

	require.NotEmpty(t, points)
	last := points[len(points)-1]
	assert.Equal(t, mustDate(t, "2024-01-19"), last.End, "latest ledger date closes the range")
}

func TestSpendingTrendOpenRangeEmptyLedger(t *testing.T) {
	snap := testutil.NewSnapshotBuilder(t).
		WithAccount("acc-1", "Checking", model.AccountChecking).
		WithCategory("Essentials", "cat-g", "Groceries", 0, 0).
		Build()

	r := model.DateRange{Start: mustDate(t, "2024-05-15")}
	points, err := SpendingTrend(snap, strPtr("cat-g"), model.GranularityDay, r)
	require.NoError(t, err)

	require.Len(t, points, 1, "empty ledger closes the range at its start")
	assert.True(t, points[0].Spending.IsZero())
}

func TestSpendingTrendErrors(t *testing.T) {
	snap := testutil.GroceriesSnapshot(t)

	_, err := SpendingTrend(snap, strPtr("cat-missing"), model.GranularityMonth,
		model.DateRange{Start: mustDate(t, "2024-01-01")})
	require.Error(t, err)
	assert.Equal(t, common.KindUnknownCategory, common.KindOf(err))

	_, err = SpendingTrend(snap, nil, model.GranularityMonth,
		model.DateRange{Start: mustDate(t, "2024-02-01"), End: mustDate(t, "2024-01-01")})
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidDateRange, common.KindOf(err))
}

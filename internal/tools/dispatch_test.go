package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/testutil"
)

// stubFetcher serves a fixed snapshot, or a fixed error, and records the
// budget ids it was asked for.
type stubFetcher struct {
	snapshot *model.Snapshot
	err      error
	requests []string
}

func (f *stubFetcher) FetchSnapshot(_ context.Context, budgetID string) (*model.Snapshot, error) {
	f.requests = append(f.requests, budgetID)
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *stubFetcher) {
	t.Helper()
	fetcher := &stubFetcher{snapshot: testutil.GroceriesSnapshot(t)}
	return NewDispatcher(fetcher, "budget-1"), fetcher
}

func rawArgs(t *testing.T, v map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDispatchUnknownOperation(t *testing.T) {
	d, fetcher := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), "delete_transaction", nil)
	require.Error(t, err)
	assert.Equal(t, common.KindUnknownOperation, common.KindOf(err))
	assert.Empty(t, fetcher.requests, "name validation comes before any fetch")
}

func TestDispatchCategorySpending(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolCategorySpending, rawArgs(t, map[string]any{
		"category_id": "cat-groceries",
		"start_date":  "2024-01-01",
		"end_date":    "2024-01-31",
	}))
	require.NoError(t, err)

	spending, ok := result.(SpendingResult)
	require.True(t, ok)
	assert.Equal(t, "57.50", spending.Spending)
	assert.Equal(t, "Groceries", spending.CategoryName)
	assert.Equal(t, "USD", spending.Currency)
	assert.Equal(t, "2024-01-01", spending.StartDate)
	assert.Equal(t, "2024-01-31", spending.EndDate)
}

func TestDispatchCategorySpendingMissingCategory(t *testing.T) {
	d, fetcher := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), ToolCategorySpending, rawArgs(t, map[string]any{}))
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "category_id", "the error names the offending field")
	assert.Empty(t, fetcher.requests, "argument validation comes before any fetch")
}

func TestDispatchRejectsUnknownArgument(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), ToolCategorySpending, rawArgs(t, map[string]any{
		"category_id": "cat-groceries",
		"strat_date":  "2024-01-01",
	}))
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
}

func TestDispatchInvalidDateRange(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), ToolCategorySpending, rawArgs(t, map[string]any{
		"category_id": "cat-groceries",
		"start_date":  "2024-02-01",
		"end_date":    "2024-01-01",
	}))
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidDateRange, common.KindOf(err))
}

func TestDispatchBudgetOverview(t *testing.T) {
	d, fetcher := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolBudgetOverview, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"budget-1"}, fetcher.requests, "empty budget_id falls back to the default")

	overview, ok := result.(OverviewResult)
	require.True(t, ok)
	assert.Equal(t, "Test Budget", overview.BudgetName)
	assert.Equal(t, 3, overview.TransactionCount)
	require.Len(t, overview.CategoryGroups, 1)
	require.Len(t, overview.CategoryGroups[0].Categories, 2)
	assert.Equal(t, "Groceries", overview.CategoryGroups[0].Categories[0].Name)
	assert.Equal(t, "500.00", overview.CategoryGroups[0].Categories[0].Budgeted)
}

func TestDispatchExplicitBudgetIDWins(t *testing.T) {
	d, fetcher := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), ToolBudgetOverview, rawArgs(t, map[string]any{
		"budget_id": "budget-other",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"budget-other"}, fetcher.requests)
}

func TestDispatchNoBudgetAnywhere(t *testing.T) {
	fetcher := &stubFetcher{snapshot: testutil.GroceriesSnapshot(t)}
	d := NewDispatcher(fetcher, "")

	_, err := d.Dispatch(context.Background(), ToolBudgetOverview, nil)
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "budget_id")
}

func TestDispatchSearch(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolSearch, rawArgs(t, map[string]any{
		"category_id": "cat-groceries",
		"amount_max":  "-25.00",
	}))
	require.NoError(t, err)

	search, ok := result.(SearchResult)
	require.True(t, ok)
	assert.Equal(t, 2, search.Count)
	assert.Equal(t, "txn-1", search.Transactions[1].ID)
	assert.Equal(t, "-32.50", search.Transactions[1].Amount)
	assert.Equal(t, "Corner Market", search.Transactions[1].Payee)
}

func TestDispatchSearchNumericAmount(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolSearch, rawArgs(t, map[string]any{
		"amount_max": -100.00,
	}))
	require.NoError(t, err)

	search, ok := result.(SearchResult)
	require.True(t, ok)
	assert.Equal(t, 1, search.Count, "number and string amount arguments are equivalent")
	assert.Equal(t, "txn-3", search.Transactions[0].ID)
}

func TestDispatchSearchLimit(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolSearch, rawArgs(t, map[string]any{
		"limit": 1,
	}))
	require.NoError(t, err)

	search, ok := result.(SearchResult)
	require.True(t, ok)
	require.Equal(t, 1, search.Count)
	assert.Equal(t, "txn-2", search.Transactions[0].ID, "limit keeps the newest transactions")
}

func TestDispatchSearchUnknownIdentifiers(t *testing.T) {
	d, _ := newTestDispatcher(t)

	tests := []struct {
		name string
		args map[string]any
		want common.ErrorKind
	}{
		{name: "unknown category", args: map[string]any{"category_id": "cat-nope"}, want: common.KindUnknownCategory},
		{name: "unknown account", args: map[string]any{"account_id": "acc-nope"}, want: common.KindUnknownAccount},
		{name: "unknown payee", args: map[string]any{"payee_id": "payee-nope"}, want: common.KindUnknownPayee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), ToolSearch, rawArgs(t, tt.args))
			require.Error(t, err)
			assert.Equal(t, tt.want, common.KindOf(err))
		})
	}
}

func TestDispatchSpendingTrends(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolSpendingTrends, rawArgs(t, map[string]any{
		"category_id": "cat-groceries",
		"start_date":  "2024-01-01",
		"end_date":    "2024-02-29",
		"granularity": "month",
	}))
	require.NoError(t, err)

	trends, ok := result.(TrendsResult)
	require.True(t, ok)
	assert.Equal(t, "month", trends.Granularity)
	require.Len(t, trends.Periods, 2)
	assert.Equal(t, "2024-01", trends.Periods[0].Period)
	assert.Equal(t, "57.50", trends.Periods[0].Spending)
	assert.Equal(t, "0.00", trends.Periods[1].Spending)
}

func TestDispatchSpendingTrendsValidation(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), ToolSpendingTrends, rawArgs(t, map[string]any{}))
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "start_date")

	_, err = d.Dispatch(context.Background(), ToolSpendingTrends, rawArgs(t, map[string]any{
		"start_date":  "2024-01-01",
		"granularity": "fortnight",
	}))
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "granularity")

	_, err = d.Dispatch(context.Background(), ToolSpendingTrends, rawArgs(t, map[string]any{
		"category_id": "cat-nope",
		"start_date":  "2024-01-01",
	}))
	require.Error(t, err)
	assert.Equal(t, common.KindUnknownCategory, common.KindOf(err))
}

func TestDispatchHealthCheck(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result, err := d.Dispatch(context.Background(), ToolHealthCheck, nil)
	require.NoError(t, err)

	health, ok := result.(HealthResult)
	require.True(t, ok)
	assert.Equal(t, 2, health.OnTrack)
	assert.Equal(t, "2000.00", health.TotalBudgeted)
	assert.Equal(t, "-1557.50", health.TotalActivity)
	assert.Equal(t, fmt.Sprintf("%.4f", 1557.50/2000.00), health.SpendingRatio)
}

func TestDispatchFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection reset")}
	d := NewDispatcher(fetcher, "budget-1")

	_, err := d.Dispatch(context.Background(), ToolBudgetOverview, nil)
	require.Error(t, err)
	assert.Equal(t, common.KindDataFetch, common.KindOf(err), "foreign fetch errors are wrapped, not interpreted")
}

func TestDispatchFetchKindPreserved(t *testing.T) {
	fetcher := &stubFetcher{err: common.NewError(common.KindDataFetch, "budget nonexistent not found")}
	d := NewDispatcher(fetcher, "budget-1")

	_, err := d.Dispatch(context.Background(), ToolBudgetOverview, nil)
	require.Error(t, err)
	assert.Equal(t, common.KindDataFetch, common.KindOf(err))
	assert.Contains(t, err.Error(), "nonexistent")
}

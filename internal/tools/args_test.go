package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynsight/ynsight/internal/common"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "string", input: `"-100.00"`, want: "-100.00"},
		{name: "number", input: `-100.00`, want: "-100.00"},
		{name: "number with fraction", input: `-99.5`, want: "-99.5"},
		{name: "integer", input: `42`, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.want, string(a))
		})
	}

	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestDecodeArgs(t *testing.T) {
	var args spendingArgs
	require.NoError(t, decodeArgs(json.RawMessage(`{"category_id":"cat-1"}`), &args))
	assert.Equal(t, "cat-1", args.CategoryID)

	require.NoError(t, decodeArgs(nil, &overviewArgs{}), "missing payload decodes as empty object")

	err := decodeArgs(json.RawMessage(`{"catgory_id":"cat-1"}`), &spendingArgs{})
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err), "misspelled fields fail loudly")

	err = decodeArgs(json.RawMessage(`{"category_id":`), &spendingArgs{})
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
}

func TestParseDateRange(t *testing.T) {
	r, err := parseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, r, "no bounds means no range")

	r, err = parseDateRange("2024-01-01", "")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.True(t, r.Open())

	r, err = parseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.False(t, r.Open())

	_, err = parseDateRange("01/15/2024", "")
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "start_date")

	_, err = parseDateRange("2024-01-01", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")

	_, err = parseDateRange("2024-02-01", "2024-01-01")
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidDateRange, common.KindOf(err))
}

func TestParseAmountArg(t *testing.T) {
	m, err := parseAmountArg("amount_min", nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	a := Amount("-100.00")
	m, err = parseAmountArg("amount_min", &a)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, int64(-100_000), m.Milliunits())

	bad := Amount("1.2345")
	_, err = parseAmountArg("amount_max", &bad)
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err))
	assert.Contains(t, err.Error(), "amount_max")

	huge := Amount("99999999999999999999")
	_, err = parseAmountArg("amount_min", &huge)
	require.Error(t, err)
	assert.Equal(t, common.KindInvalidArguments, common.KindOf(err), "out-of-range amounts fail, never wrap")
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 5)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		assert.NotEmpty(t, d.Description)
		assert.Equal(t, "object", d.InputSchema["type"])
	}
	assert.Equal(t, []string{
		ToolCategorySpending,
		ToolBudgetOverview,
		ToolSearch,
		ToolSpendingTrends,
		ToolHealthCheck,
	}, names)
}

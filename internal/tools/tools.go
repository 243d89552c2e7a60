// Package tools maps named analytical operations onto the query and
// analysis engines. Each dispatch is stateless: validate the operation
// name, coerce the argument payload, fetch a fresh snapshot from the data
// source, invoke the engine, render the result. Nothing carries over
// between requests.
package tools

import (
	"context"

	"github.com/ynsight/ynsight/internal/model"
)

// Tool operation names. This is the complete exposed surface; anything else
// fails with UnknownOperation.
const (
	ToolCategorySpending = "analyze_category_spending"
	ToolBudgetOverview   = "get_budget_overview"
	ToolSearch           = "search_transactions"
	ToolSpendingTrends   = "analyze_spending_trends"
	ToolHealthCheck      = "budget_health_check"
)

// Fetcher is the consumed data-source collaborator: one atomic read that
// returns a fully populated, internally consistent snapshot or an error.
type Fetcher interface {
	FetchSnapshot(ctx context.Context, budgetID string) (*model.Snapshot, error)
}

// Definition describes one tool for protocol discovery (tools/list).
type Definition struct {
	InputSchema map[string]any `json:"inputSchema"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
}

// Definitions returns the five tool definitions in a stable order.
func Definitions() []Definition {
	budgetID := map[string]any{
		"type":        "string",
		"description": "Budget to analyze; defaults to the configured budget",
	}
	date := func(desc string) map[string]any {
		return map[string]any{"type": "string", "format": "date", "description": desc}
	}
	amount := func(desc string) map[string]any {
		return map[string]any{
			"type":        []string{"string", "number"},
			"description": desc,
		}
	}

	return []Definition{
		{
			Name:        ToolCategorySpending,
			Description: "Total spending for one category, optionally limited to a date range",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget_id":   budgetID,
					"category_id": map[string]any{"type": "string"},
					"start_date":  date("Inclusive start date (YYYY-MM-DD)"),
					"end_date":    date("Inclusive end date (YYYY-MM-DD)"),
				},
				"required": []string{"category_id"},
			},
		},
		{
			Name:        ToolBudgetOverview,
			Description: "Budget summary: accounts, category groups with budgeted/activity/available, transaction count",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget_id": budgetID,
				},
			},
		},
		{
			Name:        ToolSearch,
			Description: "Search transactions by category, account, payee, date range, amount bounds, and free text",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget_id":   budgetID,
					"category_id": map[string]any{"type": "string"},
					"account_id":  map[string]any{"type": "string"},
					"payee_id":    map[string]any{"type": "string"},
					"payee":       map[string]any{"type": "string", "description": "Case-insensitive payee name match"},
					"text":        map[string]any{"type": "string", "description": "Case-insensitive match on memo or payee name"},
					"start_date":  date("Inclusive start date (YYYY-MM-DD)"),
					"end_date":    date("Inclusive end date (YYYY-MM-DD)"),
					"amount_min":  amount("Inclusive lower bound on the signed amount (outflow is negative)"),
					"amount_max":  amount("Inclusive upper bound on the signed amount; spending over 100 means amount_max of -100.00"),
					"limit":       map[string]any{"type": "integer", "description": "Cap on returned transactions; 0 means all"},
				},
			},
		},
		{
			Name:        ToolSpendingTrends,
			Description: "Spending bucketed into day/week/month periods over a date range",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget_id":   budgetID,
					"category_id": map[string]any{"type": "string", "description": "Limit the trend to one category"},
					"granularity": map[string]any{"type": "string", "enum": []string{"day", "week", "month"}},
					"start_date":  date("Inclusive start date (YYYY-MM-DD)"),
					"end_date":    date("Inclusive end date; omit for through-latest"),
				},
				"required": []string{"start_date"},
			},
		},
		{
			Name:        ToolHealthCheck,
			Description: "Per-category overspent/underused/on_track classification and overall spending ratio",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"budget_id":  budgetID,
					"start_date": date("Recompute activity from this date (YYYY-MM-DD)"),
					"end_date":   date("Inclusive end date for recomputed activity"),
				},
			},
		},
	}
}

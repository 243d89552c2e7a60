package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ynsight/ynsight/internal/analysis"
	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/query"
)

// Dispatcher executes named tool operations. It holds only immutable
// configuration; per-request state lives on the stack, so one Dispatcher
// serves concurrent requests without locking.
type Dispatcher struct {
	fetcher         Fetcher
	defaultBudgetID string
}

// NewDispatcher creates a Dispatcher over the given data source. The
// default budget id may be empty, in which case every call must carry its
// own budget_id argument.
func NewDispatcher(fetcher Fetcher, defaultBudgetID string) *Dispatcher {
	return &Dispatcher{fetcher: fetcher, defaultBudgetID: defaultBudgetID}
}

// Dispatch validates the operation name and argument payload, fetches a
// fresh snapshot, runs the engine, and returns the rendered result. Every
// failure carries exactly one error kind; no partial results.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw json.RawMessage) (any, error) {
	requestID := uuid.NewString()
	started := time.Now()
	common.LogDebug("dispatching tool", common.Fields{
		"request_id": requestID,
		"tool":       name,
	})

	result, err := d.dispatch(ctx, name, raw)
	if err != nil {
		common.LogError(err, "tool failed", common.Fields{
			"request_id": requestID,
			"tool":       name,
			"kind":       string(common.KindOf(err)),
		})
		return nil, err
	}

	common.LogDebug("tool completed", common.Fields{
		"request_id": requestID,
		"tool":       name,
		"duration":   time.Since(started).String(),
	})
	return result, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, raw json.RawMessage) (any, error) {
	switch name {
	case ToolCategorySpending:
		var args spendingArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.CategoryID == "" {
			return nil, common.InvalidArgument("category_id", "required")
		}
		dateRange, err := parseDateRange(args.StartDate, args.EndDate)
		if err != nil {
			return nil, err
		}
		snapshot, err := d.fetch(ctx, args.BudgetID)
		if err != nil {
			return nil, err
		}
		return d.categorySpending(snapshot, args.CategoryID, dateRange)

	case ToolBudgetOverview:
		var args overviewArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		snapshot, err := d.fetch(ctx, args.BudgetID)
		if err != nil {
			return nil, err
		}
		return renderOverview(snapshot), nil

	case ToolSearch:
		var args searchArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Limit < 0 {
			return nil, common.InvalidArgument("limit", "must not be negative")
		}
		criteria, err := buildCriteria(args)
		if err != nil {
			return nil, err
		}
		snapshot, err := d.fetch(ctx, args.BudgetID)
		if err != nil {
			return nil, err
		}
		return d.search(snapshot, criteria, args.Limit)

	case ToolSpendingTrends:
		var args trendsArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.StartDate == "" {
			return nil, common.InvalidArgument("start_date", "required")
		}
		granularity := model.GranularityMonth
		if args.Granularity != "" {
			var gErr error
			if granularity, gErr = model.ParseGranularity(args.Granularity); gErr != nil {
				return nil, common.InvalidArgument("granularity", gErr.Error())
			}
		}
		dateRange, err := parseDateRange(args.StartDate, args.EndDate)
		if err != nil {
			return nil, err
		}
		snapshot, err := d.fetch(ctx, args.BudgetID)
		if err != nil {
			return nil, err
		}
		var categoryID *string
		if args.CategoryID != "" {
			categoryID = &args.CategoryID
		}
		points, err := analysis.SpendingTrend(snapshot, categoryID, granularity, *dateRange)
		if err != nil {
			return nil, err
		}
		return renderTrends(snapshot, args.CategoryID, granularity, points), nil

	case ToolHealthCheck:
		var args healthArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		dateRange, err := parseDateRange(args.StartDate, args.EndDate)
		if err != nil {
			return nil, err
		}
		snapshot, err := d.fetch(ctx, args.BudgetID)
		if err != nil {
			return nil, err
		}
		report, err := analysis.BudgetHealth(snapshot, dateRange)
		if err != nil {
			return nil, err
		}
		return renderHealth(snapshot, report), nil

	default:
		return nil, common.NewError(common.KindUnknownOperation, "unknown tool %q", name)
	}
}

// fetch obtains the snapshot for the request, resolving the budget id
// against the configured default. One fetch per request; the snapshot is
// never shared across requests.
func (d *Dispatcher) fetch(ctx context.Context, budgetID string) (*model.Snapshot, error) {
	if budgetID == "" {
		budgetID = d.defaultBudgetID
	}
	if budgetID == "" {
		return nil, common.InvalidArgument("budget_id", "required when no default budget is configured")
	}

	snapshot, err := d.fetcher.FetchSnapshot(ctx, budgetID)
	if err != nil {
		if common.KindOf(err) != "" {
			return nil, err
		}
		return nil, common.WrapError(common.KindDataFetch, err, "fetching budget %s", budgetID)
	}
	return snapshot, nil
}

func (d *Dispatcher) categorySpending(snapshot *model.Snapshot, categoryID string, dateRange *model.DateRange) (any, error) {
	total, err := analysis.CategorySpending(snapshot, categoryID, dateRange)
	if err != nil {
		return nil, err
	}
	return renderSpending(snapshot, categoryID, dateRange, total), nil
}

// buildCriteria converts search arguments into filter criteria, parsing
// amount bounds and the date range. Identifier existence is checked later
// against the fetched snapshot.
func buildCriteria(args searchArgs) (query.Criteria, error) {
	var c query.Criteria

	if args.CategoryID != "" {
		c.CategoryID = &args.CategoryID
	}
	if args.AccountID != "" {
		c.AccountID = &args.AccountID
	}
	if args.PayeeID != "" {
		c.PayeeID = &args.PayeeID
	}
	c.PayeeText = args.PayeeText
	c.TextSearch = args.Text

	var err error
	if c.DateRange, err = parseDateRange(args.StartDate, args.EndDate); err != nil {
		return query.Criteria{}, err
	}
	if c.AmountMin, err = parseAmountArg("amount_min", args.AmountMin); err != nil {
		return query.Criteria{}, err
	}
	if c.AmountMax, err = parseAmountArg("amount_max", args.AmountMax); err != nil {
		return query.Criteria{}, err
	}
	return c, nil
}

func (d *Dispatcher) search(snapshot *model.Snapshot, criteria query.Criteria, limit int) (any, error) {
	if criteria.CategoryID != nil {
		if _, ok := snapshot.Category(*criteria.CategoryID); !ok {
			return nil, common.NewError(common.KindUnknownCategory, "category %s not in snapshot", *criteria.CategoryID)
		}
	}
	if criteria.AccountID != nil {
		if _, ok := snapshot.Account(*criteria.AccountID); !ok {
			return nil, common.NewError(common.KindUnknownAccount, "account %s not in snapshot", *criteria.AccountID)
		}
	}
	if criteria.PayeeID != nil {
		if _, ok := snapshot.Payee(*criteria.PayeeID); !ok {
			return nil, common.NewError(common.KindUnknownPayee, "payee %s not in snapshot", *criteria.PayeeID)
		}
	}

	matched := query.Filter(snapshot, criteria)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return renderSearch(snapshot, matched), nil
}

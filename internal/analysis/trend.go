package analysis

import (
	"time"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/query"
)

// TrendPoint is one bucket of a spending trend series.
type TrendPoint struct {
	Start    time.Time
	End      time.Time
	Label    string
	Spending model.Money
}

// SpendingTrend partitions a date range into consecutive, non-overlapping
// periods of the requested granularity and computes the spending in each.
// Periods come back in chronological order and zero-activity periods are
// included — N requested periods always yield exactly N entries. Partial
// boundary periods carry their truncated bounds and only count in-range
// days. A nil categoryID aggregates spending across all categories.
//
// An open-ended range is closed at the latest transaction date in the
// snapshot (or at the range start when the ledger is empty).
func SpendingTrend(snapshot *model.Snapshot, categoryID *string, granularity model.Granularity, dateRange model.DateRange) ([]TrendPoint, error) {
	if categoryID != nil {
		if _, ok := snapshot.Category(*categoryID); !ok {
			return nil, common.NewError(common.KindUnknownCategory, "category %s not in snapshot", *categoryID)
		}
	}
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}

	if dateRange.Open() {
		dateRange.End = latestDate(snapshot, dateRange.Start)
	}

	periods := model.Partition(dateRange, granularity)
	points := make([]TrendPoint, 0, len(periods))
	for _, p := range periods {
		bucket := model.DateRange{Start: p.Start, End: p.End}
		matched := query.Filter(snapshot, query.Criteria{
			CategoryID: categoryID,
			DateRange:  &bucket,
		})
		points = append(points, TrendPoint{
			Start:    p.Start,
			End:      p.End,
			Label:    p.Label,
			Spending: netOutflow(matched),
		})
	}

	return points, nil
}

func latestDate(snapshot *model.Snapshot, fallback time.Time) time.Time {
	latest := fallback
	for i := range snapshot.Transactions {
		if snapshot.Transactions[i].Date.After(latest) {
			latest = snapshot.Transactions[i].Date
		}
	}
	return latest
}

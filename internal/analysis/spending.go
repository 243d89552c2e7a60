// Package analysis turns a budget snapshot into aggregate answers: category
// spending totals, trend series over partitioned date ranges, and a budget
// health report. Everything here is pure; inputs are immutable snapshots and
// every result is freshly allocated.
package analysis

import (
	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/query"
)

// CategorySpending sums the spending for one category, optionally limited to
// a date range. The result is the net outflow reported as a positive amount:
// outflows minus refunds. No matching transactions is a valid zero answer.
//
// Fails with UnknownCategory when the id does not exist in the snapshot and
// with InvalidDateRange when the range is inverted.
func CategorySpending(snapshot *model.Snapshot, categoryID string, dateRange *model.DateRange) (model.Money, error) {
	if _, ok := snapshot.Category(categoryID); !ok {
		return model.Money{}, common.NewError(common.KindUnknownCategory, "category %s not in snapshot", categoryID)
	}
	if dateRange != nil {
		if err := dateRange.Validate(); err != nil {
			return model.Money{}, err
		}
	}

	matched := query.Filter(snapshot, query.Criteria{
		CategoryID: &categoryID,
		DateRange:  dateRange,
	})

	return netOutflow(matched), nil
}

// netOutflow nets the signed amounts and flips the sign, so spending reads
// as a positive number. Netting keeps the partition law: summing per-period
// spending over a partitioned range equals spending over the whole range.
func netOutflow(transactions []model.Transaction) model.Money {
	total := model.Money{}
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total.Neg()
}

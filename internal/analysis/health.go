package analysis

import (
	"github.com/ynsight/ynsight/internal/model"
	"github.com/ynsight/ynsight/internal/query"
)

// HealthStatus is the three-way classification of a category.
type HealthStatus string

const (
	// StatusOverspent means the category's available balance went negative.
	StatusOverspent HealthStatus = "overspent"
	// StatusUnderused means money was budgeted but nothing was spent.
	StatusUnderused HealthStatus = "underused"
	// StatusOnTrack is everything else, including the no-signal case of
	// zero budgeted and zero activity.
	StatusOnTrack HealthStatus = "on_track"
)

// CategoryHealth is the per-category slice of a health report.
type CategoryHealth struct {
	CategoryID string
	Name       string
	Status     HealthStatus
	Budgeted   model.Money
	Activity   model.Money
	Available  model.Money
}

// HealthReport aggregates category classifications plus the overall ratio
// of total spending to total budgeted across the categories considered.
type HealthReport struct {
	Categories    []CategoryHealth
	TotalBudgeted model.Money
	TotalActivity model.Money
	SpendingRatio float64
	Overspent     int
	Underused     int
	OnTrack       int
}

// BudgetHealth classifies every visible category in the snapshot. Hidden
// categories and categories in hidden groups carry no signal and are
// skipped. Without a date range the snapshot's own per-category activity is
// used; with one, activity is recomputed from the transactions inside the
// range and the available balance follows from budgeted plus that activity.
func BudgetHealth(snapshot *model.Snapshot, dateRange *model.DateRange) (*HealthReport, error) {
	if dateRange != nil {
		if err := dateRange.Validate(); err != nil {
			return nil, err
		}
	}

	hiddenGroups := make(map[string]bool, len(snapshot.Groups))
	for _, g := range snapshot.Groups {
		if g.Hidden {
			hiddenGroups[g.ID] = true
		}
	}

	report := &HealthReport{}
	for i := range snapshot.Categories {
		cat := &snapshot.Categories[i]
		if cat.Hidden || hiddenGroups[cat.GroupID] {
			continue
		}

		activity := cat.Activity
		available := cat.Available
		if dateRange != nil {
			matched := query.Filter(snapshot, query.Criteria{
				CategoryID: &cat.ID,
				DateRange:  dateRange,
			})
			activity = model.Money{}
			for j := range matched {
				activity = activity.Add(matched[j].Amount)
			}
			available = cat.Budgeted.Add(activity)
		}

		ch := CategoryHealth{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Status:     classify(cat.Budgeted, activity, available),
			Budgeted:   cat.Budgeted,
			Activity:   activity,
			Available:  available,
		}
		switch ch.Status {
		case StatusOverspent:
			report.Overspent++
		case StatusUnderused:
			report.Underused++
		case StatusOnTrack:
			report.OnTrack++
		}
		report.Categories = append(report.Categories, ch)
		report.TotalBudgeted = report.TotalBudgeted.Add(cat.Budgeted)
		report.TotalActivity = report.TotalActivity.Add(activity)
	}

	if !report.TotalBudgeted.IsZero() {
		spent := report.TotalActivity.Neg()
		report.SpendingRatio = float64(spent.Milliunits()) / float64(report.TotalBudgeted.Milliunits())
	}

	return report, nil
}

// classify assigns the three-way label. The boundary case of zero budgeted
// and zero activity is on_track by convention: no signal either way.
func classify(budgeted, activity, available model.Money) HealthStatus {
	switch {
	case available.IsNegative():
		return StatusOverspent
	case activity.IsZero() && budgeted.IsPositive():
		return StatusUnderused
	default:
		return StatusOnTrack
	}
}

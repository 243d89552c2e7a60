package model

// CategoryGroup is a display grouping of categories ("Monthly Bills").
// CategoryIDs preserves the display order; computations never depend on it.
type CategoryGroup struct {
	ID          string
	Name        string
	CategoryIDs []string
	Hidden      bool
}

// Category is a budget category for the active period. Amount signs follow
// the YNAB convention: Activity is negative for net spending, so the
// invariant Available = Budgeted + Activity holds and overspend shows up
// as a negative Available.
type Category struct {
	ID        string
	Name      string
	GroupID   string
	Budgeted  Money
	Activity  Money
	Available Money
	Hidden    bool
}

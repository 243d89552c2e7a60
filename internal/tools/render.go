package tools

import (
	"fmt"

	"github.com/ynsight/ynsight/internal/analysis"
	"github.com/ynsight/ynsight/internal/model"
)

// Result payload types. Money renders as a decimal string at the budget's
// currency precision and dates as ISO-8601 calendar dates, so a caller can
// re-parse them without precision loss. Internal types never leak.

// SpendingResult is the analyze_category_spending payload.
type SpendingResult struct {
	BudgetID     string `json:"budget_id"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Spending     string `json:"spending"`
	Currency     string `json:"currency"`
}

// OverviewResult is the get_budget_overview payload.
type OverviewResult struct {
	BudgetID         string          `json:"budget_id"`
	BudgetName       string          `json:"budget_name"`
	Currency         string          `json:"currency"`
	LastModified     string          `json:"last_modified"`
	Accounts         []AccountView   `json:"accounts"`
	CategoryGroups   []GroupView     `json:"category_groups"`
	TransactionCount int             `json:"transaction_count"`
}

// AccountView is one account inside an overview.
type AccountView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	OnBudget bool   `json:"on_budget"`
}

// GroupView is one category group inside an overview, categories in display
// order.
type GroupView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Categories []CategoryView `json:"categories"`
}

// CategoryView is one category inside an overview.
type CategoryView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Budgeted  string `json:"budgeted"`
	Activity  string `json:"activity"`
	Available string `json:"available"`
}

// SearchResult is the search_transactions payload, transactions already in
// canonical date-descending order.
type SearchResult struct {
	Count        int               `json:"count"`
	Transactions []TransactionView `json:"transactions"`
}

// TransactionView is one transaction inside a search result.
type TransactionView struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	Payee        string `json:"payee,omitempty"`
	AccountID    string `json:"account_id"`
	Memo         string `json:"memo,omitempty"`
	Cleared      string `json:"cleared"`
}

// TrendsResult is the analyze_spending_trends payload.
type TrendsResult struct {
	CategoryID   string       `json:"category_id,omitempty"`
	CategoryName string       `json:"category_name,omitempty"`
	Granularity  string       `json:"granularity"`
	Currency     string       `json:"currency"`
	Periods      []PeriodView `json:"periods"`
}

// PeriodView is one bucket of a trend series.
type PeriodView struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Spending  string `json:"spending"`
}

// HealthResult is the budget_health_check payload.
type HealthResult struct {
	Overspent     int                  `json:"overspent"`
	Underused     int                  `json:"underused"`
	OnTrack       int                  `json:"on_track"`
	SpendingRatio string               `json:"spending_ratio"`
	TotalBudgeted string               `json:"total_budgeted"`
	TotalActivity string               `json:"total_activity"`
	Currency      string               `json:"currency"`
	Categories    []CategoryHealthView `json:"categories"`
}

// CategoryHealthView is one category classification inside a health report.
type CategoryHealthView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Budgeted  string `json:"budgeted"`
	Activity  string `json:"activity"`
	Available string `json:"available"`
}

func renderSpending(snapshot *model.Snapshot, categoryID string, dateRange *model.DateRange, total model.Money) SpendingResult {
	digits := snapshot.Budget.Currency.DecimalDigits
	result := SpendingResult{
		BudgetID:   snapshot.Budget.ID,
		CategoryID: categoryID,
		Spending:   total.Format(digits),
		Currency:   snapshot.Budget.Currency.ISOCode,
	}
	if cat, ok := snapshot.Category(categoryID); ok {
		result.CategoryName = cat.Name
	}
	if dateRange != nil {
		if !dateRange.Start.IsZero() {
			result.StartDate = dateRange.Start.Format(model.DateLayout)
		}
		if !dateRange.Open() {
			result.EndDate = dateRange.End.Format(model.DateLayout)
		}
	}
	return result
}

func renderOverview(snapshot *model.Snapshot) OverviewResult {
	digits := snapshot.Budget.Currency.DecimalDigits

	accounts := make([]AccountView, 0, len(snapshot.Accounts))
	for _, a := range snapshot.Accounts {
		accounts = append(accounts, AccountView{
			ID:       a.ID,
			Name:     a.Name,
			Kind:     string(a.Kind),
			OnBudget: a.OnBudget,
		})
	}

	groups := make([]GroupView, 0, len(snapshot.Groups))
	for _, g := range snapshot.Groups {
		if g.Hidden {
			continue
		}
		view := GroupView{ID: g.ID, Name: g.Name}
		for _, catID := range g.CategoryIDs {
			cat, ok := snapshot.Category(catID)
			if !ok || cat.Hidden {
				continue
			}
			view.Categories = append(view.Categories, CategoryView{
				ID:        cat.ID,
				Name:      cat.Name,
				Budgeted:  cat.Budgeted.Format(digits),
				Activity:  cat.Activity.Format(digits),
				Available: cat.Available.Format(digits),
			})
		}
		groups = append(groups, view)
	}

	return OverviewResult{
		BudgetID:         snapshot.Budget.ID,
		BudgetName:       snapshot.Budget.Name,
		Currency:         snapshot.Budget.Currency.ISOCode,
		LastModified:     snapshot.Budget.LastModified.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Accounts:         accounts,
		CategoryGroups:   groups,
		TransactionCount: len(snapshot.Transactions),
	}
}

func renderSearch(snapshot *model.Snapshot, transactions []model.Transaction) SearchResult {
	digits := snapshot.Budget.Currency.DecimalDigits

	views := make([]TransactionView, 0, len(transactions))
	for i := range transactions {
		t := &transactions[i]
		view := TransactionView{
			ID:        t.ID,
			Date:      t.Date.Format(model.DateLayout),
			Amount:    t.Amount.Format(digits),
			AccountID: t.AccountID,
			Memo:      t.Memo,
			Cleared:   string(t.Cleared),
			Payee:     snapshot.PayeeName(t),
		}
		if t.CategoryID != nil {
			view.CategoryID = *t.CategoryID
			if cat, ok := snapshot.Category(*t.CategoryID); ok {
				view.CategoryName = cat.Name
			}
		}
		views = append(views, view)
	}

	return SearchResult{Count: len(views), Transactions: views}
}

func renderTrends(snapshot *model.Snapshot, categoryID string, granularity model.Granularity, points []analysis.TrendPoint) TrendsResult {
	digits := snapshot.Budget.Currency.DecimalDigits

	periods := make([]PeriodView, 0, len(points))
	for _, p := range points {
		periods = append(periods, PeriodView{
			Period:    p.Label,
			StartDate: p.Start.Format(model.DateLayout),
			EndDate:   p.End.Format(model.DateLayout),
			Spending:  p.Spending.Format(digits),
		})
	}

	result := TrendsResult{
		CategoryID:  categoryID,
		Granularity: string(granularity),
		Currency:    snapshot.Budget.Currency.ISOCode,
		Periods:     periods,
	}
	if cat, ok := snapshot.Category(categoryID); ok {
		result.CategoryName = cat.Name
	}
	return result
}

func renderHealth(snapshot *model.Snapshot, report *analysis.HealthReport) HealthResult {
	digits := snapshot.Budget.Currency.DecimalDigits

	categories := make([]CategoryHealthView, 0, len(report.Categories))
	for _, c := range report.Categories {
		categories = append(categories, CategoryHealthView{
			ID:        c.CategoryID,
			Name:      c.Name,
			Status:    string(c.Status),
			Budgeted:  c.Budgeted.Format(digits),
			Activity:  c.Activity.Format(digits),
			Available: c.Available.Format(digits),
		})
	}

	return HealthResult{
		Overspent:     report.Overspent,
		Underused:     report.Underused,
		OnTrack:       report.OnTrack,
		SpendingRatio: fmt.Sprintf("%.4f", report.SpendingRatio),
		TotalBudgeted: report.TotalBudgeted.Format(digits),
		TotalActivity: report.TotalActivity.Format(digits),
		Currency:      snapshot.Budget.Currency.ISOCode,
		Categories:    categories,
	}
}

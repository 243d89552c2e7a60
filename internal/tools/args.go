package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
)

// Amount is a decimal amount argument. Callers may send either a JSON
// string ("-100.00") or a bare number (-100.00); both decode to the same
// exact milliunit value.
type Amount string

// UnmarshalJSON accepts a string or number token.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// spendingArgs is the payload shape for analyze_category_spending.
type spendingArgs struct {
	BudgetID   string `json:"budget_id"`
	CategoryID string `json:"category_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// overviewArgs is the payload shape for get_budget_overview.
type overviewArgs struct {
	BudgetID string `json:"budget_id"`
}

// searchArgs is the payload shape for search_transactions.
type searchArgs struct {
	AmountMin  *Amount `json:"amount_min"`
	AmountMax  *Amount `json:"amount_max"`
	BudgetID   string  `json:"budget_id"`
	CategoryID string  `json:"category_id"`
	AccountID  string  `json:"account_id"`
	PayeeID    string  `json:"payee_id"`
	PayeeText  string  `json:"payee"`
	Text       string  `json:"text"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Limit      int     `json:"limit"`
}

// trendsArgs is the payload shape for analyze_spending_trends.
type trendsArgs struct {
	BudgetID    string `json:"budget_id"`
	CategoryID  string `json:"category_id"`
	Granularity string `json:"granularity"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// healthArgs is the payload shape for budget_health_check.
type healthArgs struct {
	BudgetID  string `json:"budget_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// decodeArgs coerces the untyped payload into a typed argument struct.
// Unknown fields are rejected so a misspelled argument fails loudly instead
// of being silently ignored.
func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return common.WrapError(common.KindInvalidArguments, err, "malformed arguments")
	}
	return nil
}

// parseDateRange builds an optional DateRange from optional start/end
// argument strings, validating field formats and the range invariant.
func parseDateRange(startDate, endDate string) (*model.DateRange, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}

	var r model.DateRange
	var err error
	if startDate != "" {
		if r.Start, err = model.ParseDate(startDate); err != nil {
			return nil, common.InvalidArgument("start_date", fmt.Sprintf("want YYYY-MM-DD, got %q", startDate))
		}
	}
	if endDate != "" {
		if r.End, err = model.ParseDate(endDate); err != nil {
			return nil, common.InvalidArgument("end_date", fmt.Sprintf("want YYYY-MM-DD, got %q", endDate))
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// parseAmountArg converts an optional amount argument to Money.
func parseAmountArg(field string, a *Amount) (*model.Money, error) {
	if a == nil {
		return nil, nil
	}
	m, err := model.ParseAmount(string(*a))
	if err != nil {
		return nil, common.InvalidArgument(field, err.Error())
	}
	return &m, nil
}

package model

import (
	"fmt"
	"time"

	"github.com/ynsight/ynsight/internal/common"
)

// DateLayout is the ISO-8601 calendar date layout used everywhere dates
// cross a boundary (YNAB wire format, tool arguments, rendered results).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateRange is an inclusive calendar date interval. A zero End means the
// range is open-ended: "through the latest available".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate checks the range invariant: Start must not be after End when
// both bounds are set.
func (r DateRange) Validate() error {
	if !r.End.IsZero() && r.Start.After(r.End) {
		return common.NewError(common.KindInvalidDateRange,
			"start %s is after end %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return nil
}

// Open reports whether the range has no upper bound.
func (r DateRange) Open() bool {
	return r.End.IsZero()
}

// Contains reports whether the date falls within the range, inclusive on
// both ends.
func (r DateRange) Contains(date time.Time) bool {
	if date.Before(r.Start) {
		return false
	}
	if r.End.IsZero() {
		return true
	}
	return !date.After(r.End)
}

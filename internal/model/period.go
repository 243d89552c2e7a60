package model

import (
	"fmt"
	"time"
)

// Granularity is the bucket width used to partition a date range for trend
// analysis. Closed set: day, week, month.
type Granularity string

const (
	// GranularityDay buckets by calendar day.
	GranularityDay Granularity = "day"
	// GranularityWeek buckets by ISO week, Monday through Sunday.
	GranularityWeek Granularity = "week"
	// GranularityMonth buckets by calendar month.
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a granularity string from an untyped payload.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unknown granularity %q (want day, week, or month)", s)
	}
}

// Period is one bucket of a partitioned date range. Start and End are
// inclusive; partial boundary periods carry their truncated bounds.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Partition splits a bounded range into consecutive, non-overlapping
// periods of the given granularity, in chronological order. The first and
// last period are truncated to the range bounds when the range does not
// align to period boundaries. The caller must pass a validated, bounded
// range.
func Partition(r DateRange, g Granularity) []Period {
	var periods []Period

	cursor := r.Start
	for !cursor.After(r.End) {
		bucketStart, bucketEnd := bucketBounds(cursor, g)

		start := bucketStart
		if start.Before(r.Start) {
			start = r.Start
		}
		end := bucketEnd
		if end.After(r.End) {
			end = r.End
		}

		periods = append(periods, Period{
			Start: start,
			End:   end,
			Label: periodLabel(bucketStart, g),
		})

		cursor = bucketEnd.AddDate(0, 0, 1)
	}

	return periods
}

// bucketBounds returns the natural (untruncated) bounds of the bucket
// containing date.
func bucketBounds(date time.Time, g Granularity) (time.Time, time.Time) {
	switch g {
	case GranularityDay:
		return date, date
	case GranularityWeek:
		// Monday-based weeks.
		offset := (int(date.Weekday()) + 6) % 7
		start := date.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	default: // GranularityMonth
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return start, start.AddDate(0, 1, -1)
	}
}

func periodLabel(bucketStart time.Time, g Granularity) string {
	if g == GranularityMonth {
		return bucketStart.Format("2006-01")
	}
	return bucketStart.Format(DateLayout)
}

package export

import (
	"fmt"
	"time"
)

// DateLayout is the wire format the Navigate API uses for date parameters.
const DateLayout = "01/02/2006"

// fileLayout is DateLayout with the slashes made filename-safe.
const fileLayout = "01_02_2006"

// DateRange is a half-open [Start, End) interval. Values are constructed per
// partition and discarded once the day's export returns; they are never
// mutated after construction.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseRange parses begin and end in mm/dd/yyyy form and requires begin to be
// strictly before end.
func ParseRange(begin, end string) (DateRange, error) {
	start, err := time.Parse(DateLayout, begin)
	if err != nil {
		return DateRange{}, fmt.Errorf("export: parse begin date %q: %w", begin, err)
	}
	stop, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("export: parse end date %q: %w", end, err)
	}
	if !start.Before(stop) {
		return DateRange{}, fmt.Errorf("export: begin date %s is not before end date %s", begin, end)
	}
	return DateRange{Start: start, End: stop}, nil
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}

// Partition splits the range into consecutive one-day sub-ranges. The cursor
// advances a full day at a time, so the last partition may extend past End by
// up to a day: a trailing partial day is never dropped and a zero-length
// partition is never emitted.
func (r DateRange) Partition() []DateRange {
	var days []DateRange
	for cursor := r.Start; cursor.Before(r.End); {
		next := cursor.AddDate(0, 0, 1)
		days = append(days, DateRange{Start: cursor, End: next})
		cursor = next
	}
	return days
}

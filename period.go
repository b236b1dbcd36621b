package fiscalyear

import (
	"fmt"
	"time"
)

// ISOLayout formats boundaries as ISO-8601 UTC with milliseconds and a
// literal "Z" offset.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Period is one concrete fiscal year. Both boundaries are inclusive: Start
// is 00:00:00.000 UTC of the first day and End is 23:59:59.999 UTC of the
// last day.
type Period struct {
	Year  int
	Start time.Time
	End   time.Time
}

func newPeriod(year int, first date) Period {
	start := first.startOfDay()
	return Period{Year: year, Start: start, End: start.AddDate(1, 0, 0).Add(-Precision)}
}

// Contains reports whether t lies within [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Duration returns the length of the period, End - Start + Precision.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start) + Precision
}

// StartUnix returns Start in seconds since the Unix epoch.
func (p Period) StartUnix() int64 { return p.Start.Unix() }

// EndUnix returns End in seconds since the Unix epoch, truncated to the
// second (23:59:59).
func (p Period) EndUnix() int64 { return p.End.Unix() }

// StartISO returns Start formatted with ISOLayout.
func (p Period) StartISO() string { return FormatISO(p.Start) }

// EndISO returns End formatted with ISOLayout.
func (p Period) EndISO() string { return FormatISO(p.End) }

// Label returns the fiscal year number with a prefix, e.g. "FY2024".
func (p Period) Label(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%s [%s, %s]", p.Label("FY"), p.StartISO(), p.EndISO())
}

// FormatISO formats t in UTC with ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

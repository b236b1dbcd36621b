package fiscalyear

import "time"

// Precision is the granularity of period boundaries. A period ends one
// Precision before the next one starts.
const Precision = time.Millisecond

// date is a calendar day in UTC. It is the unit the static catalog table
// is written in; users work with time.Time.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime converts a time.Time to a date by first normalizing to UTC,
// so an instant always maps to the same calendar day regardless of the
// location it carries.
func dateFromTime(t time.Time) date {
	y, m, d := t.UTC().Date()
	return date{year: y, month: m, day: d}
}

// startOfDay returns 00:00:00.000 UTC of the day.
func (d date) startOfDay() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// endOfDay returns 23:59:59.999 UTC of the day.
func (d date) endOfDay() time.Time {
	return d.startOfDay().AddDate(0, 0, 1).Add(-Precision)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

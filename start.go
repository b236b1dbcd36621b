package fiscalyear

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Start is the month and day on which every fiscal year of a convention
// begins, packed as month in the high byte and day in the low byte, so
// 0x0401 is April 1.
type Start uint16

// DefaultStart is January 1, where fiscal years coincide with calendar years.
const DefaultStart Start = 0x0101

// NewStart returns the Start for the given month and day. February 29 is
// rejected.
func NewStart(month time.Month, day int) (Start, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidStart, int(month))
	}
	// 2023 is not a leap year.
	if day < 1 || day > datetime.DaysInMonth(2023, datetime.Month(month)) {
		return 0, fmt.Errorf("%w: %s %d", ErrInvalidStart, month, day)
	}
	return Start(uint16(month)<<8 | uint16(day)), nil
}

// ParseStart parses a fiscal-year start written as a month name and day
// ("April 1", "apr 1"), as a numeric month-day ("04-01") or as its packed
// hexadecimal form ("0x0401").
func ParseStart(s string) (Start, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X"):
		n, err := strconv.ParseUint(v[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidStart, s)
		}
		return NewStart(time.Month(n>>8), int(n&0xff))
	case strings.Contains(v, "-"):
		mm, dd, _ := strings.Cut(v, "-")
		m, err := datetime.ParseNumericMonth(mm)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStart, s, err)
		}
		day, err := strconv.Atoi(dd)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStart, s, err)
		}
		return NewStart(time.Month(m), day)
	}

	fields := strings.Fields(v)
	// Three letters at least, so "ma" is not silently read as March.
	if len(fields) != 2 || len(fields[0]) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStart, s)
	}
	m, err := datetime.ParseMonth(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStart, s, err)
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStart, s, err)
	}
	return NewStart(time.Month(m), day)
}

// Month returns the month the fiscal year starts in.
func (s Start) Month() time.Month { return time.Month(s >> 8) }

// Day returns the day of the month the fiscal year starts on.
func (s Start) Day() int { return int(s & 0xff) }

// IsDefault reports whether s is January 1.
func (s Start) IsDefault() bool { return s == DefaultStart }

func (s Start) valid() bool {
	_, err := NewStart(s.Month(), s.Day())
	return err == nil
}

// String returns the start as "April 1", or "Invalid".
func (s Start) String() string {
	if !s.valid() {
		return "Invalid"
	}
	return fmt.Sprintf("%s %d", s.Month(), s.Day())
}

// MonthDayString returns the start as "04-01".
func (s Start) MonthDayString() string {
	return fmt.Sprintf("%02d-%02d", int(s.Month()), s.Day())
}

func (s Start) firstDay(year int) date {
	return date{year: year, month: s.Month(), day: s.Day()}
}

// Period returns the fiscal year labeled year under the given labeling.
func (s Start) Period(year int, l Labeling) Period {
	startYear := year
	if l == LabelByEndYear && !s.IsDefault() {
		startYear--
	}
	return newPeriod(year, s.firstDay(startYear))
}

// PeriodFor returns the fiscal year containing t under the given labeling.
func (s Start) PeriodFor(t time.Time, l Labeling) Period {
	d := dateFromTime(t)
	startYear := d.year
	if d.before(s.firstDay(d.year)) {
		startYear--
	}
	year := startYear
	if l == LabelByEndYear && !s.IsDefault() {
		year++
	}
	return newPeriod(year, s.firstDay(startYear))
}

// Periods returns the fiscal years labeled from through to, inclusive.
func (s Start) Periods(from, to int, l Labeling) []Period {
	if to < from {
		return nil
	}
	periods := make([]Period, 0, to-from+1)
	for y := from; y <= to; y++ {
		periods = append(periods, s.Period(y, l))
	}
	return periods
}

// Labeling selects which calendar year gives a fiscal year its number.
type Labeling int

const (
	// LabelByStartYear numbers a fiscal year by the calendar year it
	// starts in: FY2023 runs from April 1 2023 to March 31 2024.
	LabelByStartYear Labeling = iota
	// LabelByEndYear numbers a fiscal year by the calendar year it ends
	// in: FY2025 runs from October 1 2024 to September 30 2025.
	LabelByEndYear
)

func (l Labeling) String() string {
	switch l {
	case LabelByStartYear:
		return "start year"
	case LabelByEndYear:
		return "end year"
	default:
		return "Labeling(" + strconv.Itoa(int(l)) + ")"
	}
}

package fiscalyear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiscalYear(t *testing.T) {
	t.Parallel()

	// Dates of the fixture suite, expected fiscal year per definition.
	tests := []struct {
		date                    time.Time
		january, april, october int
	}{
		{d(2022, time.January, 1), 2022, 2021, 2022},
		{d(2022, time.March, 31), 2022, 2021, 2022},
		{d(2022, time.April, 1), 2022, 2022, 2022},
		{d(2022, time.September, 30), 2022, 2022, 2022},
		{d(2022, time.October, 1), 2022, 2022, 2023},
		{d(2022, time.December, 31), 2022, 2022, 2023},
		{d(2023, time.January, 1), 2023, 2022, 2023},
		{d(2023, time.March, 31), 2023, 2022, 2023},
		{d(2023, time.April, 1), 2023, 2023, 2023},
		{d(2024, time.September, 30), 2024, 2024, 2024},
		{d(2024, time.October, 1), 2024, 2024, 2025},
		{d(2025, time.April, 1), 2025, 2025, 2025},
		{d(2025, time.December, 31), 2025, 2025, 2026},
	}
	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			for id, want := range map[string]int{"January 1": tt.january, "April 1": tt.april, "October 1": tt.october} {
				got, ok := FiscalYear(id, tt.date)
				require.True(t, ok, id)
				assert.Equal(t, want, got, id)
			}
		})
	}
}

func TestStartOfEndOf(t *testing.T) {
	t.Parallel()

	start, ok := StartOf("October 1", d(2024, time.March, 15))
	require.True(t, ok)
	assert.Equal(t, "2023-10-01T00:00:00.000Z", FormatISO(start))

	end, ok := EndOf("October 1", d(2024, time.March, 15))
	require.True(t, ok)
	assert.Equal(t, "2024-09-30T23:59:59.999Z", FormatISO(end))

	_, ok = StartOf("October 1", d(2030, time.March, 15))
	assert.False(t, ok)
	_, ok = EndOf("July 1", d(2024, time.March, 15))
	assert.False(t, ok)
}

func TestInFiscalYear(t *testing.T) {
	t.Parallel()

	assert.True(t, InFiscalYear("April 1", d(2024, time.March, 31), 2023))
	assert.False(t, InFiscalYear("April 1", d(2024, time.April, 1), 2023))
	assert.True(t, InFiscalYear("April 1", d(2024, time.April, 1), 2024))
	assert.False(t, InFiscalYear("April 1", d(2030, time.April, 1), 2030))
}

func TestPeriodByYear(t *testing.T) {
	t.Parallel()

	p, ok := Default().PeriodByYear("October 1", 2024)
	require.True(t, ok)
	assert.Equal(t, "2023-10-01T00:00:00.000Z", p.StartISO())

	_, ok = Default().PeriodByYear("October 1", 2030)
	assert.False(t, ok)
	_, ok = Default().PeriodByYear("July 1", 2024)
	assert.False(t, ok)
}

func TestPeriodsBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        string
		from, to  time.Time
		wantYears []int
	}{
		{"within one year", "April 1", d(2023, time.May, 1), d(2023, time.June, 1), []int{2023}},
		{"across a boundary", "April 1", d(2023, time.March, 1), d(2023, time.May, 1), []int{2022, 2023}},
		{"boundary instants", "April 1", eod(2023, time.March, 31), d(2023, time.April, 1), []int{2022, 2023}},
		{"several years", "October 1", d(2022, time.January, 1), d(2024, time.December, 31), []int{2022, 2023, 2024, 2025}},
		{"clipped to catalog", "January 1", d(2020, time.January, 1), d(2023, time.June, 1), []int{2022, 2023}},
		{"reversed range", "April 1", d(2023, time.June, 1), d(2023, time.May, 1), nil},
		{"unknown id", "July 1", d(2023, time.May, 1), d(2023, time.June, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var years []int
			for _, p := range PeriodsBetween(tt.id, tt.from, tt.to) {
				years = append(years, p.Year)
			}
			assert.Equal(t, tt.wantYears, years)
		})
	}
}

func TestSpansMultiple(t *testing.T) {
	t.Parallel()

	assert.False(t, SpansMultiple("April 1", d(2023, time.April, 1), eod(2024, time.March, 31)))
	assert.True(t, SpansMultiple("April 1", eod(2024, time.March, 31), d(2024, time.April, 1)))
	assert.True(t, SpansMultiple("January 1", d(2022, time.December, 31), d(2023, time.January, 1)))
	assert.False(t, SpansMultiple("January 1", d(2023, time.January, 1), d(2022, time.December, 31)))
}

func TestIsStartOfFiscalYear(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.True(t, c.IsStartOfFiscalYear("April 1", d(2023, time.April, 1)))
	assert.True(t, c.IsStartOfFiscalYear("April 1", time.Date(2023, time.April, 1, 18, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsStartOfFiscalYear("April 1", d(2023, time.April, 2)))
	assert.False(t, c.IsStartOfFiscalYear("October 1", d(2023, time.April, 1)))
	// Outside the catalog.
	assert.False(t, c.IsStartOfFiscalYear("April 1", d(2030, time.April, 1)))
}

func TestNextPrevious(t *testing.T) {
	t.Parallel()

	c := Default()
	p, ok := c.PeriodByYear("October 1", 2024)
	require.True(t, ok)

	next, ok := c.Next("October 1", p)
	require.True(t, ok)
	assert.Equal(t, 2025, next.Year)
	assert.True(t, p.End.Add(Precision).Equal(next.Start))

	prev, ok := c.Previous("October 1", p)
	require.True(t, ok)
	assert.Equal(t, 2023, prev.Year)
	assert.True(t, prev.End.Add(Precision).Equal(p.Start))

	last, ok := c.PeriodByYear("October 1", 2026)
	require.True(t, ok)
	_, ok = c.Next("October 1", last)
	assert.False(t, ok)

	first, ok := c.PeriodByYear("October 1", 2022)
	require.True(t, ok)
	_, ok = c.Previous("October 1", first)
	assert.False(t, ok)
}

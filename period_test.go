package fiscalyear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Formatting(t *testing.T) {
	t.Parallel()

	p := Start(0x0401).Period(2023, LabelByStartYear)
	assert.Equal(t, int64(1680307200), p.StartUnix())
	assert.Equal(t, "2023-04-01T00:00:00.000Z", p.StartISO())
	// Epoch seconds truncate the trailing .999.
	assert.Equal(t, int64(1711929599), p.EndUnix())
	assert.Equal(t, "2024-03-31T23:59:59.999Z", p.EndISO())
	assert.Equal(t, "FY2023", p.Label("FY"))
	assert.Equal(t, "2023", p.Label(""))
	assert.Equal(t, "FY2023 [2023-04-01T00:00:00.000Z, 2024-03-31T23:59:59.999Z]", p.String())
}

func TestPeriod_Duration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 365*24*time.Hour, Start(0x0101).Period(2023, LabelByStartYear).Duration())
	assert.Equal(t, 366*24*time.Hour, Start(0x0101).Period(2024, LabelByStartYear).Duration())
	assert.Equal(t, 366*24*time.Hour, Start(0x0a01).Period(2024, LabelByEndYear).Duration())
}

func TestPeriod_Contains(t *testing.T) {
	t.Parallel()

	p := Start(0x0a01).Period(2024, LabelByEndYear)
	assert.True(t, p.Contains(d(2023, time.October, 1)))
	assert.True(t, p.Contains(eod(2024, time.September, 30)))
	assert.False(t, p.Contains(d(2023, time.October, 1).Add(-Precision)))
	assert.False(t, p.Contains(d(2024, time.October, 1)))
}

func TestFormatISO_UsesZSuffix(t *testing.T) {
	t.Parallel()

	jst := time.FixedZone("Asia/Tokyo", 9*60*60)
	got := FormatISO(time.Date(2024, time.January, 1, 9, 0, 0, 0, jst))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", got)
	assert.NotContains(t, got, "+00:00")
}

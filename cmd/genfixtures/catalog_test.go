package main

import (
	"go/parser"
	"go/token"
	"testing"
	"time"

	"github.com/rabitt1ove/fiscalyear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthConstName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "time.January", monthConstName(time.January))
	assert.Equal(t, "time.September", monthConstName(time.September))
}

func TestYearSpan(t *testing.T) {
	t.Parallel()

	def, ok := fiscalyear.Default().Definition("April 1")
	require.True(t, ok)

	lo, hi := yearSpan(def, 0, 0)
	assert.Equal(t, 2021, lo)
	assert.Equal(t, 2025, hi)

	lo, hi = yearSpan(def, 2019, 0)
	assert.Equal(t, 2019, lo)
	assert.Equal(t, 2025, hi)

	lo, hi = yearSpan(fiscalyear.Definition{ID: "empty"}, 0, 2030)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2030, hi)
}

func TestRenderCatalog(t *testing.T) {
	t.Parallel()

	src, err := renderCatalog(fiscalyear.Default().Definitions(), 0, 0)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "catalog_data.go", "package fiscalyear\n\n"+string(src), 0)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "var builtinDefinitions = []struct {")
	assert.Contains(t, out, `{"April 1", 0x0401, LabelByStartYear, []periodRow{`)
	assert.Contains(t, out, `{"October 1", 0x0a01, LabelByEndYear, []periodRow{`)
	assert.Contains(t, out, "{2021, date{2021, time.April, 1}, date{2022, time.March, 31}},")
	assert.Contains(t, out, "{2022, date{2021, time.October, 1}, date{2022, time.September, 30}},")
	assert.Contains(t, out, "{2026, date{2026, time.January, 1}, date{2026, time.December, 31}},")
}

func TestRenderCatalog_Range(t *testing.T) {
	t.Parallel()

	def, ok := fiscalyear.Default().Definition("October 1")
	require.True(t, ok)
	src, err := renderCatalog([]fiscalyear.Definition{def}, 2027, 2028)
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "{2027, date{2026, time.October, 1}, date{2027, time.September, 30}},")
	assert.Contains(t, out, "{2028, date{2027, time.October, 1}, date{2028, time.September, 30}},")
	assert.NotContains(t, out, "{2026, date")
}

func TestCheckCatalog(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkCatalog(fiscalyear.Default().Definitions()))
}

func TestCheckCatalog_Drift(t *testing.T) {
	t.Parallel()

	def, ok := fiscalyear.Default().Definition("April 1")
	require.True(t, ok)
	def.Labeling = fiscalyear.LabelByEndYear

	err := checkCatalog([]fiscalyear.Definition{def})
	require.Error(t, err)
	assert.ErrorIs(t, err, errCatalogDrift)
	assert.Contains(t, err.Error(), `"April 1"`)
}

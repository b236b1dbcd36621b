package main

import (
	"fmt"
	"go/format"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/rabitt1ove/fiscalyear"
)

var errCatalogDrift = errors.New("catalog differs from rule")

var labelingIdents = map[fiscalyear.Labeling]string{
	fiscalyear.LabelByStartYear: "LabelByStartYear",
	fiscalyear.LabelByEndYear:   "LabelByEndYear",
}

// monthConstName returns the time.Month constant name (e.g., "time.January").
func monthConstName(m time.Month) string {
	return "time." + m.String()
}

// yearSpan returns the fiscal year numbers to print for def: from and to
// when set, otherwise the years def already holds.
func yearSpan(def fiscalyear.Definition, from, to int) (int, int) {
	if len(def.Periods) > 0 {
		if from == 0 {
			from = def.Periods[0].Year
		}
		if to == 0 {
			to = def.Periods[len(def.Periods)-1].Year
		}
	}
	return from, to
}

// renderCatalog produces a formatted builtinDefinitions table whose rows
// are derived from each definition's start and labeling.
func renderCatalog(defs []fiscalyear.Definition, from, to int) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Rows derived by cmd/genfixtures catalog for catalog_data.go.\n\n")
	b.WriteString("var builtinDefinitions = []struct {\nid string\nstart Start\nlabeling Labeling\nrows []periodRow\n}{\n")

	for _, def := range defs {
		lo, hi := yearSpan(def, from, to)
		fmt.Fprintf(&b, "{%q, 0x%04x, %s, []periodRow{\n", def.ID, uint16(def.Start), labelingIdents[def.Labeling])
		for _, p := range def.Start.Periods(lo, hi, def.Labeling) {
			fy, fm, fd := p.Start.Date()
			ly, lm, ld := p.End.Date()
			fmt.Fprintf(&b, "{%d, date{%d, %s, %d}, date{%d, %s, %d}},\n",
				p.Year, fy, monthConstName(fm), fd, ly, monthConstName(lm), ld)
		}
		b.WriteString("}},\n")
	}

	b.WriteString("}\n")
	return format.Source([]byte(b.String()))
}

// checkCatalog compares every period of defs with the period its start and
// labeling derive for the same fiscal year number.
func checkCatalog(defs []fiscalyear.Definition) error {
	errs := &errors.M{}
	for _, def := range defs {
		for _, p := range def.Periods {
			want := def.Start.Period(p.Year, def.Labeling)
			if want.Start.Equal(p.Start) && want.End.Equal(p.End) {
				continue
			}
			logger.Warn("catalog drift", "definition", def.ID, "have", p.String(), "want", want.String())
			errs.Append(fmt.Errorf("%w: %q: have %v, want %v", errCatalogDrift, def.ID, p, want))
		}
	}
	return errs.Err()
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/rabitt1ove/fiscalyear"
)

// operation names a resolver query the downstream test suite exercises.
type operation string

const (
	opFiscalYear      operation = "fiscal_year"
	opFiscalYearStart operation = "fiscal_year_start"
	opFiscalYearEnd   operation = "fiscal_year_end"
	opFiscalYearRange operation = "fiscal_year_range"
)

var allOperations = []operation{opFiscalYear, opFiscalYearStart, opFiscalYearEnd, opFiscalYearRange}

var errUnknownOperation = errors.New("unknown operation")

// parseOperations maps names onto operations, keeping their order and
// dropping repeats. No names selects every operation.
func parseOperations(names []string) ([]operation, error) {
	if len(names) == 0 {
		return allOperations, nil
	}
	var ops []operation
	seen := make(map[operation]bool)
	for _, n := range names {
		op := operation(strings.TrimSpace(n))
		if !slices.Contains(allOperations, op) {
			return nil, fmt.Errorf("%w: %q (want one of %s)", errUnknownOperation, n, operationList())
		}
		if !seen[op] {
			seen[op] = true
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func operationList() string {
	names := make([]string, len(allOperations))
	for i, op := range allOperations {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// boundary is one end of a fiscal year as epoch seconds and ISO-8601.
type boundary struct {
	UnixTime    int64  `json:"unixTime"`
	UnixTimeISO string `json:"unixTimeISO"`
}

// yearRange is a fiscal year number with both boundaries.
type yearRange struct {
	FiscalYear     int    `json:"fiscalYear"`
	MinUnixTime    int64  `json:"minUnixTime"`
	MaxUnixTime    int64  `json:"maxUnixTime"`
	MinUnixTimeISO string `json:"minUnixTimeISO"`
	MaxUnixTimeISO string `json:"maxUnixTimeISO"`
}

// testCase is one input date and the expectation per definition id.
// Definitions with no fiscal year for the date are absent from Expected.
type testCase struct {
	Date     string         `json:"date"`
	UnixTime int64          `json:"unixTime"`
	Expected map[string]any `json:"expected"`
}

// fixtureDoc maps each operation to its cases in config date order.
type fixtureDoc map[operation][]testCase

// expect returns the value op asserts for period p.
func (op operation) expect(p fiscalyear.Period) any {
	switch op {
	case opFiscalYear:
		return p.Year
	case opFiscalYearStart:
		return boundary{UnixTime: p.StartUnix(), UnixTimeISO: p.StartISO()}
	case opFiscalYearEnd:
		return boundary{UnixTime: p.EndUnix(), UnixTimeISO: p.EndISO()}
	default:
		return yearRange{
			FiscalYear:     p.Year,
			MinUnixTime:    p.StartUnix(),
			MaxUnixTime:    p.EndUnix(),
			MinUnixTimeISO: p.StartISO(),
			MaxUnixTimeISO: p.EndISO(),
		}
	}
}

func buildCases(cat *fiscalyear.Catalog, set *fixtureSet, op operation) []testCase {
	cases := make([]testCase, 0, len(set.dates))
	for _, t := range set.dates {
		tc := testCase{
			Date:     t.Format(time.DateOnly),
			UnixTime: t.Unix(),
			Expected: make(map[string]any, len(set.ids)),
		}
		for _, id := range set.ids {
			if p, ok := cat.Resolve(id, t); ok {
				tc.Expected[id] = op.expect(p)
			} else {
				logger.Debug("no fiscal year", "operation", op, "date", tc.Date, "definition", id)
			}
		}
		cases = append(cases, tc)
	}
	return cases
}

func buildFixtures(cat *fiscalyear.Catalog, set *fixtureSet, ops []operation) fixtureDoc {
	doc := make(fixtureDoc, len(ops))
	for _, op := range ops {
		doc[op] = buildCases(cat, set, op)
	}
	return doc
}

// writeJSON writes doc indented with four spaces. Object keys are sorted.
func writeJSON(w io.Writer, doc fixtureDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

package main

import (
	"fmt"
	"go/format"
	"io"
	"strings"

	"cloudeng.io/errors"
)

const generatedHeader = "// Code generated by cmd/genfixtures; DO NOT EDIT.\n\n"

var errUnknownLanguage = errors.New("unknown snippet language")

// tsConstNames are the constants the TypeScript suite declares per operation.
var tsConstNames = map[operation]string{
	opFiscalYear:      "FISCAL_YEAR_FROM_UNIX_TIME_TEST_CASES",
	opFiscalYearStart: "FISCAL_YEAR_START_UNIX_TIME_TEST_CASES",
	opFiscalYearEnd:   "FISCAL_YEAR_END_UNIX_TIME_TEST_CASES",
	opFiscalYearRange: "FISCAL_YEAR_UNIX_TIME_RANGE_TEST_CASES",
}

var goVarNames = map[operation]string{
	opFiscalYear:      "fiscalYearTestCases",
	opFiscalYearStart: "fiscalYearStartTestCases",
	opFiscalYearEnd:   "fiscalYearEndTestCases",
	opFiscalYearRange: "fiscalYearRangeTestCases",
}

// renderSnippets writes the cases of each operation as source fragments in
// lang ("ts" or "go"). Expectations are listed in ids order.
func renderSnippets(w io.Writer, lang string, ids []string, ops []operation, doc fixtureDoc) error {
	var src []byte
	switch lang {
	case "ts":
		src = renderTS(ids, ops, doc)
	case "go":
		var err error
		if src, err = renderGo(ids, ops, doc); err != nil {
			return fmt.Errorf("formatting go snippet: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q (want ts or go)", errUnknownLanguage, lang)
	}
	_, err := w.Write(src)
	return err
}

func renderTS(ids []string, ops []operation, doc fixtureDoc) []byte {
	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, op := range ops {
		fmt.Fprintf(&b, "const %s = [\n", tsConstNames[op])
		for _, tc := range doc[op] {
			fmt.Fprintf(&b, "    { date: '%s', unixTime: %d, expected: { ", tc.Date, tc.UnixTime)
			writeExpected(&b, ids, tc, func(id string, v any) string {
				return fmt.Sprintf("'%s': %s", id, tsValue(v))
			})
			b.WriteString(" } },\n")
		}
		b.WriteString("];\n\n")
	}
	return []byte(b.String())
}

func tsValue(v any) string {
	switch v := v.(type) {
	case boundary:
		return fmt.Sprintf("{ unixTime: %d, unixTimeISO: '%s' }", v.UnixTime, v.UnixTimeISO)
	case yearRange:
		return fmt.Sprintf("{ fiscalYear: %d, minUnixTime: %d, maxUnixTime: %d, minUnixTimeISO: '%s', maxUnixTimeISO: '%s' }",
			v.FiscalYear, v.MinUnixTime, v.MaxUnixTime, v.MinUnixTimeISO, v.MaxUnixTimeISO)
	default:
		return fmt.Sprint(v)
	}
}

func renderGo(ids []string, ops []operation, doc fixtureDoc) ([]byte, error) {
	var b strings.Builder
	b.WriteString(generatedHeader)

	var needBoundary, needRange bool
	for _, op := range ops {
		needBoundary = needBoundary || op == opFiscalYearStart || op == opFiscalYearEnd
		needRange = needRange || op == opFiscalYearRange
	}
	if needBoundary {
		b.WriteString("type fixtureBoundary struct {\nunixTime int64\nunixTimeISO string\n}\n\n")
	}
	if needRange {
		b.WriteString("type fixtureRange struct {\nfiscalYear int\nminUnixTime int64\nmaxUnixTime int64\nminUnixTimeISO string\nmaxUnixTimeISO string\n}\n\n")
	}

	for _, op := range ops {
		typ := goValueType(op)
		fmt.Fprintf(&b, "var %s = []struct {\ndate string\nunixTime int64\nexpected map[string]%s\n}{\n", goVarNames[op], typ)
		for _, tc := range doc[op] {
			fmt.Fprintf(&b, "{%q, %d, map[string]%s{", tc.Date, tc.UnixTime, typ)
			writeExpected(&b, ids, tc, func(id string, v any) string {
				return fmt.Sprintf("%q: %s", id, goValue(v))
			})
			b.WriteString("}},\n")
		}
		b.WriteString("}\n\n")
	}

	return format.Source([]byte(b.String()))
}

func goValueType(op operation) string {
	switch op {
	case opFiscalYear:
		return "int"
	case opFiscalYearRange:
		return "fixtureRange"
	default:
		return "fixtureBoundary"
	}
}

func goValue(v any) string {
	switch v := v.(type) {
	case boundary:
		return fmt.Sprintf("{%d, %q}", v.UnixTime, v.UnixTimeISO)
	case yearRange:
		return fmt.Sprintf("{%d, %d, %d, %q, %q}",
			v.FiscalYear, v.MinUnixTime, v.MaxUnixTime, v.MinUnixTimeISO, v.MaxUnixTimeISO)
	default:
		return fmt.Sprint(v)
	}
}

// writeExpected writes the expectations of tc joined by ", ", skipping ids
// with no fiscal year for the date.
func writeExpected(b *strings.Builder, ids []string, tc testCase, entry func(id string, v any) string) {
	first := true
	for _, id := range ids {
		v, ok := tc.Expected[id]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(entry(id, v))
		first = false
	}
}

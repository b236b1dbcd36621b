package fiscalyear

import "time"

// periodRow is one fiscal year of the built-in table, first and last day
// inclusive.
type periodRow struct {
	year        int
	first, last date
}

// builtinDefinitions is maintained by hand. `genfixtures catalog` prints the
// rule-derived rows and reports any drift from this table.
var builtinDefinitions = []struct {
	id       string
	start    Start
	labeling Labeling
	rows     []periodRow
}{
	{"January 1", 0x0101, LabelByStartYear, []periodRow{
		{2022, date{2022, time.January, 1}, date{2022, time.December, 31}},
		{2023, date{2023, time.January, 1}, date{2023, time.December, 31}},
		{2024, date{2024, time.January, 1}, date{2024, time.December, 31}},
		{2025, date{2025, time.January, 1}, date{2025, time.December, 31}},
		{2026, date{2026, time.January, 1}, date{2026, time.December, 31}},
	}},
	{"April 1", 0x0401, LabelByStartYear, []periodRow{
		{2021, date{2021, time.April, 1}, date{2022, time.March, 31}},
		{2022, date{2022, time.April, 1}, date{2023, time.March, 31}},
		{2023, date{2023, time.April, 1}, date{2024, time.March, 31}},
		{2024, date{2024, time.April, 1}, date{2025, time.March, 31}},
		{2025, date{2025, time.April, 1}, date{2026, time.March, 31}},
	}},
	{"October 1", 0x0a01, LabelByEndYear, []periodRow{
		{2022, date{2021, time.October, 1}, date{2022, time.September, 30}},
		{2023, date{2022, time.October, 1}, date{2023, time.September, 30}},
		{2024, date{2023, time.October, 1}, date{2024, time.September, 30}},
		{2025, date{2024, time.October, 1}, date{2025, time.September, 30}},
		{2026, date{2025, time.October, 1}, date{2026, time.September, 30}},
	}},
}

func builtinCatalog() []Definition {
	defs := make([]Definition, 0, len(builtinDefinitions))
	for _, b := range builtinDefinitions {
		def := Definition{ID: b.id, Start: b.start, Labeling: b.labeling}
		for _, r := range b.rows {
			def.Periods = append(def.Periods, Period{
				Year:  r.year,
				Start: r.first.startOfDay(),
				End:   r.last.endOfDay(),
			})
		}
		defs = append(defs, def)
	}
	return defs
}

package fiscalyear

import "time"

// FiscalYear returns the number of the fiscal year of definition id that
// contains t.
func (c *Catalog) FiscalYear(id string, t time.Time) (int, bool) {
	p, ok := c.Resolve(id, t)
	return p.Year, ok
}

// StartOf returns the first instant of the fiscal year containing t.
func (c *Catalog) StartOf(id string, t time.Time) (time.Time, bool) {
	p, ok := c.Resolve(id, t)
	return p.Start, ok
}

// EndOf returns the last instant of the fiscal year containing t.
func (c *Catalog) EndOf(id string, t time.Time) (time.Time, bool) {
	p, ok := c.Resolve(id, t)
	return p.End, ok
}

// InFiscalYear reports whether t falls in fiscal year number year of
// definition id.
func (c *Catalog) InFiscalYear(id string, t time.Time, year int) bool {
	p, ok := c.Resolve(id, t)
	return ok && p.Year == year
}

// PeriodByYear returns fiscal year number year of definition id.
func (c *Catalog) PeriodByYear(id string, year int) (Period, bool) {
	d, ok := c.lookup(id)
	if !ok {
		return Period{}, false
	}
	for _, p := range d.Periods {
		if p.Year == year {
			return p, true
		}
	}
	return Period{}, false
}

// PeriodsBetween returns the fiscal years of definition id overlapping
// [from, to], ordered by start. If from is after to, it returns nil.
func (c *Catalog) PeriodsBetween(id string, from, to time.Time) []Period {
	d, ok := c.lookup(id)
	if !ok || to.Before(from) {
		return nil
	}
	var result []Period
	for _, p := range d.Periods {
		if !p.Start.After(to) && !p.End.Before(from) {
			result = append(result, p)
		}
	}
	return result
}

// SpansMultiple reports whether [from, to] overlaps more than one known
// fiscal year of definition id.
func (c *Catalog) SpansMultiple(id string, from, to time.Time) bool {
	return len(c.PeriodsBetween(id, from, to)) > 1
}

// IsStartOfFiscalYear reports whether t falls on the first day of a known
// fiscal year of definition id. The time of day is ignored.
func (c *Catalog) IsStartOfFiscalYear(id string, t time.Time) bool {
	p, ok := c.Resolve(id, t)
	return ok && dateFromTime(t) == dateFromTime(p.Start)
}

// Next returns the fiscal year immediately after p.
// Returns false if the catalog does not extend that far.
func (c *Catalog) Next(id string, p Period) (Period, bool) {
	return c.Resolve(id, p.End.Add(Precision))
}

// Previous returns the fiscal year immediately before p.
// Returns false if the catalog does not extend that far.
func (c *Catalog) Previous(id string, p Period) (Period, bool) {
	return c.Resolve(id, p.Start.Add(-Precision))
}

// FiscalYear returns the built-in fiscal year number of definition id
// containing t.
func FiscalYear(id string, t time.Time) (int, bool) { return defaultCatalog.FiscalYear(id, t) }

// StartOf returns the first instant of the built-in fiscal year containing t.
func StartOf(id string, t time.Time) (time.Time, bool) { return defaultCatalog.StartOf(id, t) }

// EndOf returns the last instant of the built-in fiscal year containing t.
func EndOf(id string, t time.Time) (time.Time, bool) { return defaultCatalog.EndOf(id, t) }

// InFiscalYear reports whether t falls in the given built-in fiscal year.
func InFiscalYear(id string, t time.Time, year int) bool {
	return defaultCatalog.InFiscalYear(id, t, year)
}

// PeriodsBetween returns the built-in fiscal years overlapping [from, to].
func PeriodsBetween(id string, from, to time.Time) []Period {
	return defaultCatalog.PeriodsBetween(id, from, to)
}

// SpansMultiple reports whether [from, to] overlaps more than one built-in
// fiscal year.
func SpansMultiple(id string, from, to time.Time) bool {
	return defaultCatalog.SpansMultiple(id, from, to)
}

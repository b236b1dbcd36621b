// Package fiscalyear resolves which fiscal year an instant falls into under
// a set of fiscal-year conventions.
//
// A convention ("April 1") is a Definition: an ordered list of contiguous,
// non-overlapping one-year Periods. Definitions are grouped in a Catalog,
// which is validated once at construction and immutable thereafter, so a
// Catalog may be shared by any number of goroutines without locking.
//
// All instants are compared in UTC. Period boundaries are inclusive with
// millisecond precision: a fiscal year starting April 1 2023 runs from
// 2023-04-01T00:00:00.000Z through 2024-03-31T23:59:59.999Z.
//
// Basic usage with package-level functions over the built-in catalog:
//
//	t := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
//	p, ok := fiscalyear.Resolve("April 1", t)
//	// p.Year == 2023, p.Start == 2023-04-01T00:00:00.000Z, ok == true
//
// Instants outside the catalog's covered span, and unknown definitions,
// resolve to no period rather than an error.
package fiscalyear

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"cloudeng.io/errors"
	"golang.org/x/text/cases"
)

// Definition is a named fiscal-year convention and the concrete fiscal
// years known for it, ordered by start ascending.
type Definition struct {
	ID       string
	Start    Start
	Labeling Labeling
	Periods  []Period
}

// Resolve returns the period containing t.
func (d Definition) Resolve(t time.Time) (Period, bool) {
	i := sort.Search(len(d.Periods), func(i int) bool {
		return !d.Periods[i].End.Before(t)
	})
	if i < len(d.Periods) && d.Periods[i].Contains(t) {
		return d.Periods[i], true
	}
	return Period{}, false
}

// Covers reports whether t lies between the start of the first period and
// the end of the last one.
func (d Definition) Covers(t time.Time) bool {
	if len(d.Periods) == 0 {
		return false
	}
	return !t.Before(d.Periods[0].Start) && !t.After(d.Periods[len(d.Periods)-1].End)
}

func (d Definition) clone() Definition {
	d.Periods = slices.Clone(d.Periods)
	return d
}

// Catalog is an immutable set of definitions. Create one with [NewCatalog]
// or use [Default]. All methods are safe for concurrent use.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog validates the definitions and returns a Catalog holding a copy
// of them. Every violation found is reported, each wrapping
// ErrInvalidCatalog:
//   - IDs must be non-empty and unique, ignoring case;
//   - each definition needs a valid Start and at least one period;
//   - each period starts at 00:00:00.000 UTC on the definition's start day
//     and lasts exactly one calendar year;
//   - consecutive periods are contiguous and numbered consecutively.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(defs))}
	errs := &errors.M{}
	for i, def := range defs {
		key := foldID(def.ID)
		if key == "" {
			errs.Append(fmt.Errorf("%w: definition %d has an empty id", ErrInvalidCatalog, i))
			continue
		}
		if _, dup := c.index[key]; dup {
			errs.Append(fmt.Errorf("%w: duplicate definition %q", ErrInvalidCatalog, def.ID))
			continue
		}
		errs.Append(validateDefinition(def)...)
		c.index[key] = len(c.defs)
		c.defs = append(c.defs, def.clone())
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func validateDefinition(def Definition) []error {
	var errs []error
	if !def.Start.valid() {
		errs = append(errs, fmt.Errorf("%w: %q: start 0x%04x is not a valid month and day", ErrInvalidCatalog, def.ID, uint16(def.Start)))
	}
	if len(def.Periods) == 0 {
		errs = append(errs, fmt.Errorf("%w: %q has no periods", ErrInvalidCatalog, def.ID))
	}
	for i, p := range def.Periods {
		start := p.Start.UTC()
		if start.Month() != def.Start.Month() || start.Day() != def.Start.Day() || !start.Equal(dateFromTime(start).startOfDay()) {
			errs = append(errs, fmt.Errorf("%w: %q: %v does not start at 00:00 UTC on %v", ErrInvalidCatalog, def.ID, p, def.Start))
		}
		if p.End.Before(p.Start) {
			errs = append(errs, fmt.Errorf("%w: %q: %v ends before it starts", ErrInvalidCatalog, def.ID, p))
		} else if !p.End.Add(Precision).Equal(start.AddDate(1, 0, 0)) {
			errs = append(errs, fmt.Errorf("%w: %q: %v is not exactly one year long", ErrInvalidCatalog, def.ID, p))
		}
		if i == 0 {
			continue
		}
		prev := def.Periods[i-1]
		if !prev.End.Add(Precision).Equal(p.Start) {
			errs = append(errs, fmt.Errorf("%w: %q: %v and %v are not contiguous", ErrInvalidCatalog, def.ID, prev, p))
		}
		if p.Year != prev.Year+1 {
			errs = append(errs, fmt.Errorf("%w: %q: FY%d follows FY%d", ErrInvalidCatalog, def.ID, p.Year, prev.Year))
		}
	}
	return errs
}

// foldID returns the lookup key for a definition id. A Caser is not safe
// for concurrent use, so one is created per call.
func foldID(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}

func (c *Catalog) lookup(id string) (*Definition, bool) {
	i, ok := c.index[foldID(id)]
	if !ok {
		return nil, false
	}
	return &c.defs[i], true
}

// Definitions returns a copy of every definition in catalog order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.clone()
	}
	return out
}

// IDs returns the definition ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// Definition returns a copy of the definition with the given id. The
// lookup ignores case and surrounding space.
func (c *Catalog) Definition(id string) (Definition, bool) {
	d, ok := c.lookup(id)
	if !ok {
		return Definition{}, false
	}
	return d.clone(), true
}

// DefinitionByStart returns the first definition whose fiscal years begin
// on s.
func (c *Catalog) DefinitionByStart(s Start) (Definition, bool) {
	for _, d := range c.defs {
		if d.Start == s {
			return d.clone(), true
		}
	}
	return Definition{}, false
}

// Resolve returns the fiscal year of definition id that contains t. It
// returns false if id is unknown or t lies outside the definition's
// covered span.
func (c *Catalog) Resolve(id string, t time.Time) (Period, bool) {
	d, ok := c.lookup(id)
	if !ok {
		return Period{}, false
	}
	return d.Resolve(t)
}

// ResolveAll resolves t under every definition and returns the matches
// keyed by definition id. Definitions without a match are omitted.
func (c *Catalog) ResolveAll(t time.Time) map[string]Period {
	result := make(map[string]Period, len(c.defs))
	for _, d := range c.defs {
		if p, ok := d.Resolve(t); ok {
			result[d.ID] = p
		}
	}
	return result
}

// defaultCatalog is the package-level catalog used by top-level functions.
var defaultCatalog = mustCatalog(builtinCatalog()...)

func mustCatalog(defs ...Definition) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalog: "January 1", "April 1" and
// "October 1", covering 2021 through 2026.
func Default() *Catalog { return defaultCatalog }

// --- Package-level convenience functions ---

// Resolve returns the fiscal year of definition id containing t.
func Resolve(id string, t time.Time) (Period, bool) { return defaultCatalog.Resolve(id, t) }

// ResolveAll resolves t under every built-in definition.
func ResolveAll(t time.Time) map[string]Period { return defaultCatalog.ResolveAll(t) }

// IDs returns the built-in definition ids.
func IDs() []string { return defaultCatalog.IDs() }

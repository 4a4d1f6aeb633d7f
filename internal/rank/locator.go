// Package rank places a force value between the nearest known reference
// units from the Gods & Kings standard table.
package rank

import (
	"fmt"
	"sort"
)

// Entry is one (unit name, documented force) row.
type Entry struct {
	Name  string  `json:"name"`
	Force float64 `json:"force"`
}

// BracketKind says where a queried force falls relative to the table.
type BracketKind int

const (
	Below BracketKind = iota
	Between
	Above
)

// Bracket is the result of a locate query. Lower and Upper are only set for
// Between.
type Bracket struct {
	Kind  BracketKind
	Lower string
	Upper string
}

func (b Bracket) String() string {
	switch b.Kind {
	case Below:
		return "Lower than any G&K unit"
	case Above:
		return "Higher than any G&K unit"
	default:
		return fmt.Sprintf("Between %s and %s", b.Lower, b.Upper)
	}
}

// Table is an immutable force-rating table, sorted ascending by force.
// Duplicate force values are allowed; an empty table is a caller contract
// violation.
type Table struct {
	names  []string
	forces []float64
}

// NewTable builds a table from entries, sorting them ascending by force.
func NewTable(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Force < sorted[j].Force
	})

	t := &Table{
		names:  make([]string, len(sorted)),
		forces: make([]float64, len(sorted)),
	}
	for i, e := range sorted {
		t.names[i] = e.Name
		t.forces[i] = e.Force
	}
	return t
}

// Locate returns the bracket of reference units surrounding force.
//
// An exact hit on a tabulated value widens to the neighbor below, so the
// result is always a proper "between X and Y" pair rather than a degenerate
// "between X and X".
func (t *Table) Locate(force float64) Bracket {
	if force < t.forces[0] {
		return Bracket{Kind: Below}
	}
	if force > t.forces[len(t.forces)-1] {
		return Bracket{Kind: Above}
	}

	// j = count of entries with tabulated force <= the query.
	j := sort.Search(len(t.forces), func(i int) bool {
		return t.forces[i] > force
	})

	lower := j - 1
	if lower >= 0 && t.forces[lower] == force {
		// Exact hit on a tabulated value: widen to the entry strictly below
		// the matched tier so the bracket stays a proper pair.
		lower = sort.Search(len(t.forces), func(i int) bool {
			return t.forces[i] >= force
		}) - 1
	}
	if lower < 0 {
		lower = 0
	}

	upper := j
	if upper > len(t.forces)-1 {
		upper = len(t.forces) - 1
	}

	return Bracket{Kind: Between, Lower: t.names[lower], Upper: t.names[upper]}
}

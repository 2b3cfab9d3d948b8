package vocabulary

import (
	"fmt"
	"slices"
	"sort"
)

// Table is an ordered set of unique strings. The position of a value is its
// canonical rank.
type Table struct {
	name   string
	values []string
	ranks  map[string]int
}

// NewTable creates a table from values in canonical order.
// Returns an error wrapping ErrEmptyValue or ErrDuplicateValue if a value is
// empty or repeated.
func NewTable(name string, values ...string) (*Table, error) {
	ranks := make(map[string]int, len(values))
	for i, v := range values {
		if v == "" {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, ErrEmptyValue)
		}
		if _, exists := ranks[v]; exists {
			return nil, fmt.Errorf("%s: %q: %w", name, v, ErrDuplicateValue)
		}
		ranks[v] = i
	}
	return &Table{
		name:   name,
		values: slices.Clone(values),
		ranks:  ranks,
	}, nil
}

// Name returns the table name used in error messages.
func (t *Table) Name() string {
	return t.name
}

// Contains reports whether v is in the table. Matching is exact.
func (t *Table) Contains(v string) bool {
	if t == nil {
		return false
	}
	_, ok := t.ranks[v]
	return ok
}

// Rank returns the canonical position of v.
func (t *Table) Rank(v string) (int, bool) {
	if t == nil {
		return 0, false
	}
	r, ok := t.ranks[v]
	return r, ok
}

// Len returns the number of values.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// Values returns a copy of the values in canonical order.
func (t *Table) Values() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.values)
}

// Sort returns a copy of vs in canonical order. Values not in the table keep
// their relative input order and are placed after all known values.
func (t *Table) Sort(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		ri, oki := t.Rank(out[i])
		rj, okj := t.Rank(out[j])
		switch {
		case oki && okj:
			return ri < rj
		case oki:
			return true
		default:
			return false
		}
	})
	return out
}

// IsSubsequenceOf reports whether every value of t appears in other in the
// same relative order.
func (t *Table) IsSubsequenceOf(other *Table) bool {
	last := -1
	for _, v := range t.values {
		r, ok := other.Rank(v)
		if !ok || r <= last {
			return false
		}
		last = r
	}
	return true
}

// IsInCanonicalOrder reports whether the known values of vs appear in
// strictly increasing rank. Unknown values are ignored.
func (t *Table) IsInCanonicalOrder(vs []string) bool {
	last := -1
	for _, v := range vs {
		r, ok := t.Rank(v)
		if !ok {
			continue
		}
		if r <= last {
			return false
		}
		last = r
	}
	return true
}

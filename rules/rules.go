package rules

import "sort"

// RuleTable records, per tile label, the set of labels permitted as an
// orthogonal neighbor. The zero value is not usable; construct with New.
type RuleTable struct {
	allowed map[string]map[string]struct{}
}

// New returns an empty RuleTable.
func New() *RuleTable {
	return &RuleTable{allowed: make(map[string]map[string]struct{})}
}

// Allow permits b as a neighbor of a, in that direction only.
// Repeated calls are free: entries are a set, not a list.
func (rt *RuleTable) Allow(a, b string) {
	set, ok := rt.allowed[a]
	if !ok {
		set = make(map[string]struct{})
		rt.allowed[a] = set
	}
	set[b] = struct{}{}
}

// AllowPair permits a and b as neighbors of each other (both directions).
func (rt *RuleTable) AllowPair(a, b string) {
	rt.Allow(a, b)
	rt.Allow(b, a)
}

// Allowed reports whether b may sit next to a.
// A label absent from the table allows no neighbors.
func (rt *RuleTable) Allowed(a, b string) bool {
	set, ok := rt.allowed[a]
	if !ok {
		return false
	}
	_, ok = set[b]

	return ok
}

// Neighbors returns a sorted copy of the labels permitted next to a.
// The result is nil when a has no entries.
func (rt *RuleTable) Neighbors(a string) []string {
	set, ok := rt.allowed[a]
	if !ok || len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Strings(out)

	return out
}

// Labels returns the sorted labels that have at least one entry.
func (rt *RuleTable) Labels() []string {
	if len(rt.allowed) == 0 {
		return nil
	}
	out := make([]string, 0, len(rt.allowed))
	for a := range rt.allowed {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of labels with at least one entry.
func (rt *RuleTable) Len() int {
	return len(rt.allowed)
}

// Clone returns an independent deep copy of the table.
func (rt *RuleTable) Clone() *RuleTable {
	out := New()
	for a, set := range rt.allowed {
		dst := make(map[string]struct{}, len(set))
		for b := range set {
			dst[b] = struct{}{}
		}
		out.allowed[a] = dst
	}

	return out
}

package domain

import (
	"slices"
	"unicode/utf8"
)

// NameSet is an immutable, sorted set of unique project names. The zero value
// is the empty set. All mutating operations return a new set.
type NameSet struct {
	names []ProjectName
}

// NewNameSet builds a set from the given names, sorting and de-duplicating.
func NewNameSet(names ...ProjectName) NameSet {
	if len(names) == 0 {
		return NameSet{}
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return NameSet{names: slices.Compact(sorted)}
}

// Len returns the number of names in the set.
func (s NameSet) Len() int {
	return len(s.names)
}

// Names returns the names in ascending order. The returned slice is a copy.
func (s NameSet) Names() []ProjectName {
	return slices.Clone(s.names)
}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name ProjectName) bool {
	_, ok := slices.BinarySearch(s.names, name)
	return ok
}

// Union returns a new set with name added.
func (s NameSet) Union(name ProjectName) NameSet {
	i, ok := slices.BinarySearch(s.names, name)
	if ok {
		return s
	}
	names := make([]ProjectName, 0, len(s.names)+1)
	names = append(names, s.names[:i]...)
	names = append(names, name)
	names = append(names, s.names[i:]...)
	return NameSet{names: names}
}

// Difference returns a new set with name removed.
func (s NameSet) Difference(name ProjectName) NameSet {
	i, ok := slices.BinarySearch(s.names, name)
	if !ok {
		return s
	}
	names := make([]ProjectName, 0, len(s.names)-1)
	names = append(names, s.names[:i]...)
	names = append(names, s.names[i+1:]...)
	return NameSet{names: names}
}

// Prefix returns the subset of names starting with prefix, in ascending
// order. It is computed as the half-open range [prefix, prefix+utf8.MaxRune);
// no legal project name contains utf8.MaxRune, so the right endpoint never
// cuts off a match.
func (s NameSet) Prefix(prefix string) NameSet {
	lo, _ := slices.BinarySearch(s.names, ProjectName(prefix))
	hi, _ := slices.BinarySearch(s.names, ProjectName(prefix+string(utf8.MaxRune)))
	if lo == hi {
		return NameSet{}
	}
	return NameSet{names: slices.Clone(s.names[lo:hi])}
}

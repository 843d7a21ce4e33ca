// Package types holds small generic containers shared across packages.
package types

// Set is a hash set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	set := make(Set[T], len(values))
	set.Add(values...)
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

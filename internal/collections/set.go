package collections

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is a set of ordered values, e.g. file paths
type Set[T cmp.Ordered] map[T]struct{}

// NewSet creates a new Set with the given initial values
func NewSet[T cmp.Ordered](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

// Add adds one or more values to the set
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has checks if the set contains the given value
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order
func (s Set[T]) Sorted() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	slices.Sort(r)
	return r
}

// String returns the sorted members, e.g. "[a b c]"
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Sorted())
}

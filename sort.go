package arrays

import (
	"cmp"
	"slices"
)

// Sort returns a new sequence with the elements of s in natural ascending
// order. The input is never mutated; a nil sequence sorts to an empty one.
func Sort[T cmp.Ordered](s []T) []T {
	return SortWith(s, cmp.Compare[T])
}

// SortWith returns a new sequence with the elements of s ordered by the
// comparer. The sort is stable: elements comparing equal retain their
// relative input order. The input is never mutated; a nil sequence sorts
// to an empty one.
func SortWith[T any](s []T, compare Comparer[T]) []T {
	if s == nil {
		return make([]T, 0)
	}
	out := snapshotOf(s)
	slices.SortStableFunc(out, compare)
	return out
}

package arrays

// First returns the first element of s.
// It is the no-predicate form of FirstMatch: the second return value is
// false when s is empty.
func First[T any](s []T) (T, bool) {
	return FirstMatch(s, func(T) bool { return true })
}

// FirstMatch scans s in ascending index order and returns the first element
// the predicate matches, ending the traversal at that point.
// The second return value is false when no element matches, the sequence is
// empty, or the predicate is nil.
func FirstMatch[T any, FN predicateFunc[T]](s []T, fn FN) (T, bool) {
	var (
		match T
		ok    bool
	)
	pred := toPredicate[T](fn)
	if pred == nil {
		return match, false
	}
	EachUntil(s, func(v T, i int, snapshot []T) bool {
		if pred(v, i, snapshot) {
			match, ok = v, true
			return false
		}
		return true
	})
	return match, ok
}

// Last returns the last element of s.
// It is the no-predicate form of LastMatch: the second return value is
// false when s is empty.
func Last[T any](s []T) (T, bool) {
	return LastMatch(s, func(T) bool { return true })
}

// LastMatch scans s in descending index order and returns the first element
// the predicate matches, ending the traversal at that point.
// The second return value is false when no element matches, the sequence is
// empty, or the predicate is nil.
func LastMatch[T any, FN predicateFunc[T]](s []T, fn FN) (T, bool) {
	var (
		match T
		ok    bool
	)
	pred := toPredicate[T](fn)
	if pred == nil {
		return match, false
	}
	EachInReverseUntil(s, func(v T, i int, snapshot []T) bool {
		if pred(v, i, snapshot) {
			match, ok = v, true
			return false
		}
		return true
	})
	return match, ok
}

// Any reports whether at least one element of s matches the predicate.
// The scan stops at the first match.
func Any[T any, FN predicateFunc[T]](s []T, fn FN) bool {
	_, ok := FirstMatch(s, fn)
	return ok
}

// None reports whether no element of s matches the predicate.
func None[T any, FN predicateFunc[T]](s []T, fn FN) bool {
	return !Any(s, fn)
}

// All reports whether every element of s matches the predicate.
// An empty sequence is vacuously true.
//
// All always visits every element: the fold AND-s the predicate result per
// element and does not stop at the first non-match. Callers may rely on the
// predicate being invoked exactly len(s) times.
func All[T any, FN predicateFunc[T]](s []T, fn FN) bool {
	pred := toPredicate[T](fn)
	if pred == nil {
		return false
	}
	return ReduceFrom(s, true, func(acc bool, v T, i int, snapshot []T) bool {
		ok := pred(v, i, snapshot)
		return acc && ok
	})
}

// TrueForAll is an alias of All.
func TrueForAll[T any, FN predicateFunc[T]](s []T, fn FN) bool {
	return All(s, fn)
}

// Count returns how many elements of s match the predicate.
func Count[T any, FN predicateFunc[T]](s []T, fn FN) int {
	pred := toPredicate[T](fn)
	if pred == nil {
		return 0
	}
	return ReduceFrom(s, 0, func(n int, v T, i int, snapshot []T) int {
		if pred(v, i, snapshot) {
			n++
		}
		return n
	})
}

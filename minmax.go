package arrays

import "cmp"

// Max returns the element of s whose mapped key is the greatest.
// Ties keep the earliest element. The second return value is false when s
// is empty or the key-mapper is nil.
//
// The key-mapper is a concrete func(T) K rather than the dual-form callback
// the other operations accept: no value argument carries K, so a union
// constraint would leave it uninferrable.
func Max[T any, K cmp.Ordered](s []T, fn func(T) K) (T, bool) {
	return selectBy(s, fn, func(candidate, best K) bool {
		return best < candidate
	})
}

// Min returns the element of s whose mapped key is the smallest.
// Ties keep the earliest element. The second return value is false when s
// is empty or the key-mapper is nil.
func Min[T any, K cmp.Ordered](s []T, fn func(T) K) (T, bool) {
	return selectBy(s, fn, func(candidate, best K) bool {
		return candidate < best
	})
}

func selectBy[T any, K cmp.Ordered](s []T, fn func(T) K, better func(candidate, best K) bool) (T, bool) {
	var (
		winner T
		key    K
		ok     bool
	)
	if fn == nil {
		return winner, false
	}
	Each(s, func(v T, _ int, _ []T) {
		k := fn(v)
		if !ok || better(k, key) {
			winner, key, ok = v, k, true
		}
	})
	return winner, ok
}

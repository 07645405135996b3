package arrays

// Uniq returns the elements of s in their original order, one per distinct
// value, each represented by its first occurrence.
func Uniq[T comparable](s []T) []T {
	return UniqBy(s, func(v T) T { return v })
}

// UniqBy returns the elements of s in their original order, one per
// distinct key, each represented by its first occurrence. The key of an
// element is derived with the key-mapper.
//
// A single pass with a seen-keys lookup keeps this linear in len(s).
func UniqBy[T any, K comparable](s []T, key func(T) K) []T {
	if key == nil {
		return make([]T, 0)
	}
	seen := make(map[K]struct{}, len(s))
	return Filter(s, func(v T) bool {
		k := key(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

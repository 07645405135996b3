package arrays

import "reflect"

// Map returns a new sequence with the mapper applied to every element of s,
// preserving order and length.
func Map[O, I any, FN mapperFunc[O, I]](s []I, fn FN) []O {
	m := toMapper[O, I](fn)
	out := make([]O, 0, len(s))
	if m == nil {
		return out
	}
	return ReduceFrom(s, out, func(acc []O, v I, i int, snapshot []I) []O {
		return append(acc, m(v, i, snapshot))
	})
}

// MapWith returns a sequence-awaiting form of Map for pipeline composition.
//
// The *With combinators take concrete func types so their type arguments
// infer from the callback alone; a union constraint has no core type for
// inference to work from, and explicit instantiation would defeat the
// composition ergonomics they exist for.
func MapWith[O, I any](fn func(I) O) func([]I) []O {
	return func(s []I) []O { return Map[O](s, fn) }
}

// Filter returns a new sequence holding the elements of s the predicate
// matches, preserving their relative order.
func Filter[T any, FN predicateFunc[T]](s []T, fn FN) []T {
	pred := toPredicate[T](fn)
	out := make([]T, 0)
	if pred == nil {
		return out
	}
	return ReduceFrom(s, out, func(acc []T, v T, i int, snapshot []T) []T {
		if pred(v, i, snapshot) {
			acc = append(acc, v)
		}
		return acc
	})
}

// FilterWith returns a sequence-awaiting form of Filter for pipeline
// composition.
func FilterWith[T any](fn func(T) bool) func([]T) []T {
	return func(s []T) []T { return Filter(s, fn) }
}

// FlatMap maps every element of s to a sequence and concatenates the
// results in order. The mapper's results are flattened exactly one level.
func FlatMap[O, I any, FN mapperFunc[[]O, I]](s []I, fn FN) []O {
	m := toMapper[[]O, I](fn)
	out := make([]O, 0, len(s))
	if m == nil {
		return out
	}
	return ReduceFrom(s, out, func(acc []O, v I, i int, snapshot []I) []O {
		return append(acc, m(v, i, snapshot)...)
	})
}

// FlatMapWith returns a sequence-awaiting form of FlatMap for pipeline
// composition.
func FlatMapWith[O, I any](fn func(I) []O) func([]I) []O {
	return func(s []I) []O { return FlatMap[O](s, fn) }
}

// Flatten concatenates the inner sequences of s into one flat sequence,
// preserving order. It flattens exactly one level; use FlattenDeep for
// arbitrarily nested input.
func Flatten[T any](s [][]T) []T {
	return FlatMap[T](s, func(vs []T) []T { return vs })
}

// FlattenDeep flattens arbitrarily nested sequences into a single flat
// sequence, depth-first and left-to-right.
//
//	arrays.FlattenDeep([]any{1, 2, []any{4, 5, 6, []any{7, 8, 9}}})
//	// []any{1, 2, 4, 5, 6, 7, 8, 9}
//
// Any element whose kind is a slice or an array counts as a nested
// sequence, including typed ones like []int. Strings do not.
func FlattenDeep(s []any) []any {
	return FlatMap[any](s, func(v any) []any {
		if vs, ok := sequenceOf(v); ok {
			return FlattenDeep(vs)
		}
		return []any{v}
	})
}

// sequenceOf reports whether v is itself a sequence, normalised to []any.
func sequenceOf(v any) ([]any, bool) {
	if vs, ok := v.([]any); ok {
		return vs, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

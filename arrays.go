// Package arrays is a functional toolkit for ordered, finite, zero-indexed
// sequences: traversal, folding, searching, transformation, deduplication,
// ordering and generation, expressed as small composable operations.
//
// # Semantics
//
// No operation mutates its input. Every traversal first takes a private
// snapshot of the sequence, so a callback that mutates the original slice
// mid-flight cannot affect which elements are visited or in what order.
// Traversal order is strictly index order, ascending or descending.
//
// Callbacks come in a short and a full form; every operation accepts both:
//
//	func(item T) R
//	func(item T, index int, seq []T) R
//
// The full form receives the element's index and the snapshot being
// traversed. Early termination is signalled by a visitor returning false,
// mirroring the yield convention of the iter package.
//
// # Composition
//
// All operations are plain first-class generic functions and take the
// sequence as their first argument. For data-last pipeline composition each
// transform has a *With companion returning a sequence-awaiting function,
// and the fnkit subpackage turns any operation into a curried chain.
package arrays

import "slices"

// snapshotOf takes the private copy every traversal operates on.
// A nil sequence stays nil; the engine treats it as empty everywhere.
func snapshotOf[T any](s []T) []T {
	return slices.Clone(s)
}

// visitorFunc is the constraint for callbacks invoked per element
// without a stop signal.
type visitorFunc[T any] interface {
	func(T) | func(T, int, []T)
}

func toVisitor[T any, FN visitorFunc[T]](fn FN) func(T, int, []T) {
	switch fn := any(fn).(type) {
	case func(T):
		if fn == nil {
			return nil
		}
		return func(v T, _ int, _ []T) { fn(v) }
	case func(T, int, []T):
		return fn
	default:
		panic("unexpected")
	}
}

// untilFunc is the constraint for visitors that may stop the traversal.
// Returning false stops; returning true continues.
type untilFunc[T any] interface {
	func(T) bool | func(T, int, []T) bool
}

func toUntil[T any, FN untilFunc[T]](fn FN) func(T, int, []T) bool {
	switch fn := any(fn).(type) {
	case func(T) bool:
		if fn == nil {
			return nil
		}
		return func(v T, _ int, _ []T) bool { return fn(v) }
	case func(T, int, []T) bool:
		return fn
	default:
		panic("unexpected")
	}
}

// predicateFunc is the constraint for matching callbacks.
// It shares the untilFunc signature family, but a predicate's return value
// expresses "matches", not "continue".
type predicateFunc[T any] interface {
	func(T) bool | func(T, int, []T) bool
}

func toPredicate[T any, FN predicateFunc[T]](fn FN) func(T, int, []T) bool {
	switch fn := any(fn).(type) {
	case func(T) bool:
		if fn == nil {
			return nil
		}
		return func(v T, _ int, _ []T) bool { return fn(v) }
	case func(T, int, []T) bool:
		return fn
	default:
		panic("unexpected")
	}
}

// reducerFunc is the constraint for fold callbacks.
type reducerFunc[R, T any] interface {
	func(R, T) R | func(R, T, int, []T) R
}

func toReducer[R, T any, FN reducerFunc[R, T]](fn FN) func(R, T, int, []T) R {
	switch fn := any(fn).(type) {
	case func(R, T) R:
		if fn == nil {
			return nil
		}
		return func(acc R, v T, _ int, _ []T) R { return fn(acc, v) }
	case func(R, T, int, []T) R:
		return fn
	default:
		panic("unexpected")
	}
}

// mapperFunc is the constraint for transformation callbacks.
type mapperFunc[O, I any] interface {
	func(I) O | func(I, int, []I) O
}

func toMapper[O, I any, FN mapperFunc[O, I]](fn FN) func(I, int, []I) O {
	switch fn := any(fn).(type) {
	case func(I) O:
		if fn == nil {
			return nil
		}
		return func(v I, _ int, _ []I) O { return fn(v) }
	case func(I, int, []I) O:
		return fn
	default:
		panic("unexpected")
	}
}

// Comparer reports the order between a and b:
// negative when a sorts before b, zero when they are equal,
// positive when a sorts after b.
type Comparer[T any] func(a, b T) int

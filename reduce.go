package arrays

import "github.com/developwithpassion/arrays-go/internal/constraints"

// Number is the type set accepted by the operator-shorthand reductions.
type Number = constraints.Number

// Operator is a binary arithmetic operator symbol usable as a reducer
// shorthand with ReduceOp and ReduceOpFrom.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// ReduceFrom folds s left-to-right starting from the explicit initial
// accumulator, visiting every index. A reducer has no stop signal, so the
// fold never terminates early.
//
// The reducer receives the running accumulator, the element, its index and
// the snapshot being folded.
func ReduceFrom[R, T any, FN reducerFunc[R, T]](s []T, initial R, fn FN) R {
	reduce := toReducer[R, T](fn)
	acc := initial
	if reduce == nil {
		return acc
	}
	Each(s, func(v T, i int, snapshot []T) {
		acc = reduce(acc, v, i, snapshot)
	})
	return acc
}

// Reduce folds s left-to-right with an implicit initial accumulator:
// the accumulator seeds from the first element and folding starts at index 1.
// Reducing an empty sequence this way yields ErrEmptyReduction.
func Reduce[T any, FN reducerFunc[T, T]](s []T, fn FN) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyReduction
	}
	reduce := toReducer[T, T](fn)
	snapshot := snapshotOf(s)
	acc := snapshot[0]
	if reduce == nil {
		return acc, nil
	}
	for i := 1; i < len(snapshot); i++ {
		acc = reduce(acc, snapshot[i], i, snapshot)
	}
	return acc, nil
}

// ReduceOp folds s with the binary function named by the operator symbol,
// seeding the accumulator implicitly from the first element.
//
//	total, err := arrays.ReduceOp([]int{1, 2, 3, 4}, arrays.Add) // 10
//
// An operator outside the supported set yields ErrUnknownOperator,
// an empty sequence ErrEmptyReduction.
func ReduceOp[T Number](s []T, op Operator) (T, error) {
	apply, ok := operatorFunc[T](op)
	if !ok {
		var zero T
		return zero, ErrUnknownOperator.F("%q", op)
	}
	return Reduce(s, apply)
}

// ReduceOpFrom folds s with the binary function named by the operator
// symbol, starting from the explicit initial accumulator.
func ReduceOpFrom[T Number](s []T, initial T, op Operator) (T, error) {
	apply, ok := operatorFunc[T](op)
	if !ok {
		var zero T
		return zero, ErrUnknownOperator.F("%q", op)
	}
	return ReduceFrom(s, initial, apply), nil
}

// operatorFunc is the static symbol to binary-function lookup behind the
// operator shorthand.
func operatorFunc[T Number](op Operator) (func(T, T) T, bool) {
	switch op {
	case Add:
		return func(a, b T) T { return a + b }, true
	case Subtract:
		return func(a, b T) T { return a - b }, true
	case Multiply:
		return func(a, b T) T { return a * b }, true
	case Divide:
		return func(a, b T) T { return a / b }, true
	default:
		return nil, false
	}
}

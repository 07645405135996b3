package arrays

import "github.com/developwithpassion/arrays-go/consterr"

const (
	// ErrEmptyReduction is returned when a reduction without an explicit
	// initial value is attempted on an empty sequence.
	ErrEmptyReduction consterr.Error = "arrays: reduce of an empty sequence with no initial value"

	// ErrNegativeCount is returned when Generate is asked for a negative
	// number of elements.
	ErrNegativeCount consterr.Error = "arrays: generate requires a non-negative count"

	// ErrUnknownOperator is returned when ReduceOp receives an operator
	// symbol outside the supported set.
	ErrUnknownOperator consterr.Error = "arrays: unknown reduction operator"
)

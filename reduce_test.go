package arrays_test

import (
	"fmt"
	"testing"

	arrays "github.com/developwithpassion/arrays-go"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleReduceFrom() {
	total := arrays.ReduceFrom([]int{1, 2, 3, 4}, 0, func(acc, n int) int {
		return acc + n
	})
	fmt.Println(total)
	// Output: 10
}

func ExampleReduce() {
	total, err := arrays.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int {
		return acc + n
	})
	_ = err // arrays.ErrEmptyReduction when the sequence is empty
	fmt.Println(total)
	// Output: 10
}

func ExampleReduceOp() {
	total, _ := arrays.ReduceOp([]int{1, 2, 3, 4}, arrays.Add)
	fmt.Println(total)
	// Output: 10
}

func TestReduceFrom(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("folds left-to-right from the explicit initial accumulator", func(t *testcase.T) {
		got := arrays.ReduceFrom([]string{"a", "b", "c"}, "|", func(acc, v string) string {
			return acc + v
		})
		assert.Equal(t, "|abc", got)
	})

	s.Test("sums a numeric sequence from zero", func(t *testcase.T) {
		got := arrays.ReduceFrom([]int{1, 2, 3, 4}, 0, func(acc, n int) int { return acc + n })
		assert.Equal(t, 10, got)
	})

	s.Test("visits every index, a reducer has no stop signal", func(t *testcase.T) {
		length := t.Random.IntBetween(0, 42)
		var calls int
		arrays.ReduceFrom(make([]bool, length), false, func(acc bool, _ bool) bool {
			calls++
			return false
		})
		assert.Equal(t, length, calls)
	})

	s.Test("the reducer receives index and snapshot", func(t *testcase.T) {
		input := []int{5, 6}
		var indexes []int
		arrays.ReduceFrom(input, 0, func(acc int, v int, i int, snapshot []int) int {
			indexes = append(indexes, i)
			assert.Equal(t, input, snapshot)
			return acc
		})
		assert.Equal(t, []int{0, 1}, indexes)
	})

	s.Test("an empty sequence yields the initial accumulator", func(t *testcase.T) {
		initial := t.Random.Int()
		got := arrays.ReduceFrom([]int{}, initial, func(acc, n int) int { return acc + n })
		assert.Equal(t, initial, got)
	})

	s.Test("mutating the original sequence mid-fold is inert", func(t *testcase.T) {
		original := []int{1, 2, 3}
		got := arrays.ReduceFrom(original, 0, func(acc, n int) int {
			original[0] = 100
			return acc + n
		})
		assert.Equal(t, 6, got)
	})
}

func TestReduce(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("seeds from the first element and folds from index 1", func(t *testcase.T) {
		var firstIndex int = -1
		got, err := arrays.Reduce([]int{1, 2, 3, 4}, func(acc int, v int, i int, _ []int) int {
			if firstIndex == -1 {
				firstIndex = i
			}
			return acc + v
		})
		assert.NoError(t, err)
		assert.Equal(t, 10, got)
		assert.Equal(t, 1, firstIndex)
	})

	s.Test("a single element sequence folds to that element without reducer calls", func(t *testcase.T) {
		expected := t.Random.Int()
		got, err := arrays.Reduce([]int{expected}, func(acc, v int) int {
			t.FailNow()
			return 0
		})
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	s.Test("a nil reducer on a non-empty sequence seeds from the first element", func(t *testcase.T) {
		expected := t.Random.Int()
		got, err := arrays.Reduce([]int{expected, t.Random.Int()}, (func(int, int) int)(nil))
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	s.Test("an empty sequence is an error, not a silent zero value", func(t *testcase.T) {
		_, err := arrays.Reduce([]int{}, func(acc, n int) int { return acc + n })
		assert.ErrorIs(t, err, arrays.ErrEmptyReduction)
	})

	s.Test("keeps left-to-right evaluation order", func(t *testcase.T) {
		got, err := arrays.Reduce([]string{"a", "b", "c"}, func(acc, v string) string {
			return acc + v
		})
		assert.NoError(t, err)
		assert.Equal(t, "abc", got)
	})
}

func TestReduceOp(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("add", func(t *testcase.T) {
		got, err := arrays.ReduceOp([]int{1, 2, 3, 4}, arrays.Add)
		assert.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	s.Test("subtract", func(t *testcase.T) {
		got, err := arrays.ReduceOp([]int{10, 3, 2}, arrays.Subtract)
		assert.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	s.Test("multiply", func(t *testcase.T) {
		got, err := arrays.ReduceOp([]int{2, 3, 4}, arrays.Multiply)
		assert.NoError(t, err)
		assert.Equal(t, 24, got)
	})

	s.Test("divide", func(t *testcase.T) {
		got, err := arrays.ReduceOp([]float64{100, 5, 2}, arrays.Divide)
		assert.NoError(t, err)
		assert.Equal(t, 10.0, got)
	})

	s.Test("an unknown operator symbol is an error", func(t *testcase.T) {
		_, err := arrays.ReduceOp([]int{1, 2}, arrays.Operator("%"))
		assert.ErrorIs(t, err, arrays.ErrUnknownOperator)
	})

	s.Test("an empty sequence is an empty reduction", func(t *testcase.T) {
		_, err := arrays.ReduceOp([]int{}, arrays.Add)
		assert.ErrorIs(t, err, arrays.ErrEmptyReduction)
	})
}

func TestReduceOpFrom(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("starts from the explicit initial accumulator", func(t *testcase.T) {
		got, err := arrays.ReduceOpFrom([]int{1, 2, 3, 4}, 32, arrays.Add)
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	s.Test("an empty sequence yields the initial accumulator", func(t *testcase.T) {
		initial := t.Random.Int()
		got, err := arrays.ReduceOpFrom([]int{}, initial, arrays.Multiply)
		assert.NoError(t, err)
		assert.Equal(t, initial, got)
	})

	s.Test("an unknown operator symbol is an error", func(t *testcase.T) {
		_, err := arrays.ReduceOpFrom([]int{1, 2}, 0, arrays.Operator("**"))
		assert.ErrorIs(t, err, arrays.ErrUnknownOperator)
	})
}

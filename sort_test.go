package arrays_test

import (
	"cmp"
	"fmt"
	"testing"

	arrays "github.com/developwithpassion/arrays-go"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleSort() {
	fmt.Println(arrays.Sort([]int{4, 2, 1, 10, 5}))
	// Output: [1 2 4 5 10]
}

func ExampleSortWith() {
	descending := func(a, b int) int { return cmp.Compare(b, a) }
	fmt.Println(arrays.SortWith([]int{1, 2, 3, 4}, descending))
	// Output: [4 3 2 1]
}

func TestSort(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("orders naturally ascending", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2, 4, 5, 10}, arrays.Sort([]int{4, 2, 1, 10, 5}))
	})

	s.Test("never mutates its input", func(t *testcase.T) {
		input := []int{4, 2, 1, 10, 5}
		arrays.Sort(input)
		assert.Equal(t, []int{4, 2, 1, 10, 5}, input)
	})

	s.Test("a nil sequence sorts to an empty one", func(t *testcase.T) {
		got := arrays.Sort[int](nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	s.Test("sorting is idempotent on random input", func(t *testcase.T) {
		var input []int
		t.Random.Repeat(3, 42, func() {
			input = append(input, t.Random.IntBetween(-1000, 1000))
		})
		once := arrays.Sort(input)
		assert.Equal(t, once, arrays.Sort(once))
	})
}

func TestSortWith(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("orders by the supplied comparer", func(t *testcase.T) {
		got := arrays.SortWith([]int{1, 2, 3, 4}, func(a, b int) int { return cmp.Compare(b, a) })
		assert.Equal(t, []int{4, 3, 2, 1}, got)
	})

	s.Test("is stable: equal elements retain their relative input order", func(t *testcase.T) {
		type Card struct {
			Rank int
			Tag  string
		}
		input := []Card{
			{Rank: 2, Tag: "a"},
			{Rank: 1, Tag: "b"},
			{Rank: 2, Tag: "c"},
			{Rank: 1, Tag: "d"},
			{Rank: 2, Tag: "e"},
		}
		got := arrays.SortWith(input, func(a, b Card) int { return cmp.Compare(a.Rank, b.Rank) })
		assert.Equal(t, []Card{
			{Rank: 1, Tag: "b"},
			{Rank: 1, Tag: "d"},
			{Rank: 2, Tag: "a"},
			{Rank: 2, Tag: "c"},
			{Rank: 2, Tag: "e"},
		}, got)
	})

	s.Test("a nil sequence sorts to an empty one", func(t *testcase.T) {
		got := arrays.SortWith[int](nil, func(a, b int) int { return cmp.Compare(a, b) })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

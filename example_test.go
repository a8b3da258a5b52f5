package kwaymerge_test

import (
	"fmt"
	"slices"

	"github.com/nelimee/kwaymerge"
)

// ExampleMerge demonstrates merging sorted slices under the natural
// ascending order.
func ExampleMerge() {
	merged := kwaymerge.Merge([][]int{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	})
	fmt.Println(merged)

	// Output:
	// [1 2 3 4 5 6 7 8 9]
}

// ExampleMergeFunc demonstrates merging under a caller-supplied ordering.
// Equal elements keep sequence order: cid arrives before dan because cid's
// sequence comes first.
func ExampleMergeFunc() {
	type user struct {
		name string
		age  int
	}
	byAge := func(a, b user) bool { return a.age < b.age }

	merged := kwaymerge.MergeFunc([][]user{
		{{"ada", 19}, {"cid", 42}},
		{{"bea", 23}, {"dan", 42}},
	}, byAge)

	for _, u := range merged {
		fmt.Printf("%s %d\n", u.name, u.age)
	}

	// Output:
	// ada 19
	// bea 23
	// cid 42
	// dan 42
}

// ExampleMergeChecked demonstrates the checked variant rejecting an input
// that violates the sorted precondition.
func ExampleMergeChecked() {
	_, err := kwaymerge.MergeChecked([][]int{
		{1, 2, 3},
		{9, 4, 5},
	})
	fmt.Println(err)

	// Output:
	// kwaymerge: sequence 1 at offset 1: sequence not sorted
}

// ExampleMergeSeq demonstrates merging slices delivered by an iterator.
func ExampleMergeSeq() {
	batches := [][]string{
		{"apple", "pear"},
		{"banana", "quince"},
	}

	merged := kwaymerge.MergeSeq(slices.Values(batches))
	fmt.Println(merged)

	// Output:
	// [apple banana pear quince]
}

package kwaymerge

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrUnsorted reports that an input sequence violated the precondition of
// being sorted under the supplied ordering.
var ErrUnsorted = errors.New("sequence not sorted")

// MergeChecked is Merge with the precondition made explicit: every input
// slice is verified to be sorted before any merging happens.
func MergeChecked[T cmp.Ordered](seqs [][]T, opts ...Option) ([]T, error) {
	return MergeCheckedFunc(seqs, cmp.Less[T], opts...)
}

// MergeCheckedFunc validates that every sequence in seqs is sorted under
// less, then merges them. A violation is reported as an error wrapping
// ErrUnsorted that names the offending sequence and the offset of the
// first out-of-order element; nothing is merged in that case.
//
// Validation walks the sequences concurrently under the same parallelism
// cap as the merge itself. It costs one comparison per element, so checked
// merges are intended for tests and debugging rather than hot paths.
func MergeCheckedFunc[T any](seqs [][]T, less LessFunc[T], opts ...Option) ([]T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for i, s := range seqs {
		g.Go(func() error {
			return checkSorted(i, s, less)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeAll(seqs, less, o), nil
}

// checkSorted reports the first out-of-order element of s, if any.
func checkSorted[T any](i int, s []T, less LessFunc[T]) error {
	for j := 1; j < len(s); j++ {
		if less(s[j], s[j-1]) {
			return fmt.Errorf("kwaymerge: sequence %d at offset %d: %w", i, j, ErrUnsorted)
		}
	}
	return nil
}

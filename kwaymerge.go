package kwaymerge

import (
	"cmp"

	"github.com/nelimee/kwaymerge/merge"
)

// LessFunc is a strict weak ordering over T: it reports whether a must
// sort before b. It must be pure and side-effect free; the engine calls it
// from multiple goroutines. A nil LessFunc is not valid.
type LessFunc[T any] func(a, b T) bool

// Merge merges k sorted slices into one sorted slice using the natural
// ascending order of T. It is shorthand for MergeFunc with cmp.Less.
func Merge[T cmp.Ordered](seqs [][]T, opts ...Option) []T {
	return MergeFunc(seqs, cmp.Less[T], opts...)
}

// MergeFunc merges k sorted slices into one sorted slice of length
// Σ len(seqs[i]). Every input must already be sorted under less; this is
// not re-checked (use MergeCheckedFunc when it should be). The merge is
// stable: equal elements keep the order implied first by their sequence's
// position in seqs, then by their position within that sequence.
//
// Inputs are never mutated. The result is always a freshly allocated
// slice, even for zero or one input.
func MergeFunc[T any](seqs [][]T, less LessFunc[T], opts ...Option) []T {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return mergeAll(seqs, less, o)
}

// mergeAll drives one merge: size the output, dispose of the trivial
// shapes, then run the two-phase engine.
func mergeAll[T any](seqs [][]T, less LessFunc[T], o options) []T {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	// The engine writes through existing storage rather than appending,
	// so the buffer is sized up front.
	out := make([]T, n)

	switch len(seqs) {
	case 0:
		return out
	case 1:
		copy(out, seqs[0])
		return out
	case 2:
		merge.Into(out, seqs[0], seqs[1], less)
		return out
	}
	if n == 0 {
		// Three or more sequences, all empty.
		return out
	}

	led := pairMerge(seqs, out, less, o)
	passes := reduceLedger(out, led, less, o)

	if o.logger != nil {
		o.logger.Debug("kwaymerge: merge complete",
			"sequences", len(seqs),
			"elements", n,
			"passes", passes)
	}
	return out
}

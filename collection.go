package kwaymerge

import (
	"cmp"
	"iter"
	"slices"
)

// MergeSeq merges sorted slices delivered by a forward-only iterator,
// using the natural ascending order of T.
func MergeSeq[T cmp.Ordered](seqs iter.Seq[[]T], opts ...Option) []T {
	return MergeSeqFunc(seqs, cmp.Less[T], opts...)
}

// MergeSeqFunc is MergeFunc for collections that only support forward
// traversal, such as sequences streamed out of another container. The
// collection is walked once to count and capture the slices (the slice
// contents are not copied), then merged exactly as MergeFunc would.
//
// Iteration order determines merge pairing and stability tie-breaks, the
// same way element order in seqs does for MergeFunc.
func MergeSeqFunc[T any](seqs iter.Seq[[]T], less LessFunc[T], opts ...Option) []T {
	return MergeFunc(slices.Collect(seqs), less, opts...)
}

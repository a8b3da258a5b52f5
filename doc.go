// Package kwaymerge merges k already-sorted sequences into one sorted
// slice, in parallel, preserving stability: equal elements keep the order
// implied first by their sequence's position in the input collection, then
// by their position within that sequence.
//
// The merge runs in two phases over a single pre-sized output buffer:
//
//  1. First round: adjacent input sequences are paired (0,1), (2,3), ...
//     and every pair is merged directly into its own precomputed region of
//     the buffer. The regions come from prefix sums of the pair lengths,
//     so they are disjoint by construction and the pair merges run
//     concurrently with no locking. An odd leftover sequence is copied
//     verbatim. The round produces a boundary ledger: the positions where
//     one sorted run ends and the next begins.
//
//  2. Reduction: ceil(log2(runs)) synchronized passes each fuse
//     neighbouring runs in place and collapse the boundary between them,
//     halving the run count, until a single run spans the whole buffer.
//     Fusions within a pass cover disjoint ranges and run concurrently; a
//     barrier separates passes.
//
// Key features:
//   - Generic over any element type with a caller-supplied ordering, with
//     cmp.Ordered shorthands for the natural order
//   - Stable for equal elements across and within sequences
//   - Parallel by default, capped with WithParallelism; a cap of 1 runs
//     sequentially and produces the identical result
//   - No locks or atomics: concurrent writes are disjoint by construction
//   - Inputs are treated as read-only and never mutated
//
// Basic usage:
//
//	merged := kwaymerge.Merge([][]int{
//	    {1, 4, 7},
//	    {2, 5, 8},
//	    {3, 6, 9},
//	})
//	// merged == [1 2 3 4 5 6 7 8 9]
//
// With a custom ordering and bounded parallelism:
//
//	byLen := func(a, b string) bool { return len(a) < len(b) }
//	merged := kwaymerge.MergeFunc(seqs, byLen, kwaymerge.WithParallelism(4))
//
// Every input must already be sorted under the ordering in use. Merge and
// MergeFunc do not re-check this; feeding them an unsorted sequence gives
// an unspecified (though memory-safe) result. MergeChecked and
// MergeCheckedFunc verify the precondition first and report the offending
// sequence instead of merging.
//
// The supporting pieces live in their own packages: ledger implements the
// run-boundary bookkeeping and merge the stable two-way and in-place merge
// primitives. seqgen generates reproducible sorted inputs for tests and
// benchmarks.
package kwaymerge

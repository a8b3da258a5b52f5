// Package seqgen generates random pre-sorted sequences for the merge
// engine's tests, benchmarks, and the kwaymerge-bench harness.
//
// Values are drawn through a seeded gofakeit Faker, so a given seed always
// reproduces the same sequences. Sorted order is maintained the same way a
// write-ahead log keeps its segments sorted: each draw is inserted into a
// B-tree keyed by (value, draw ordinal) and the tree is walked in order,
// which preserves duplicate values instead of collapsing them.
package seqgen

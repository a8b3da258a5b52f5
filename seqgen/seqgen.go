package seqgen

import (
	"cmp"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/btree"
)

// Value ranges drawn by Floats and Ints. Ints draws from a deliberately
// narrow range so that longer sequences contain duplicates.
const (
	floatLo, floatHi = 0.0, 1.0
	intLo, intHi     = 0, 1000
)

// Generator produces random, already-sorted sequences. The same seed
// always yields the same data, so tests and benchmarks are reproducible.
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// item tags a value with its draw ordinal. The tree orders by (value,
// ordinal), so duplicate values occupy distinct slots instead of replacing
// one another.
type item[T cmp.Ordered] struct {
	value T
	ord   int
}

func itemLess[T cmp.Ordered](a, b item[T]) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.ord < b.ord
}

func sorted[T cmp.Ordered](n int, draw func() T) []T {
	tree := btree.NewG[item[T]](2, itemLess[T])
	for i := 0; i < n; i++ {
		tree.ReplaceOrInsert(item[T]{value: draw(), ord: i})
	}

	out := make([]T, 0, n)
	tree.Ascend(func(it item[T]) bool {
		out = append(out, it.value)
		return true
	})
	return out
}

// Floats returns n random float64 values in [0, 1), sorted ascending.
func (g *Generator) Floats(n int) []float64 {
	return sorted(n, func() float64 { return g.faker.Float64Range(floatLo, floatHi) })
}

// Ints returns n random ints in [0, 1000], sorted ascending. The small
// value range makes duplicates common, which is useful for exercising
// stability-sensitive code.
func (g *Generator) Ints(n int) []int {
	return sorted(n, func() int { return g.faker.IntRange(intLo, intHi) })
}

// FloatSequences returns k sorted float64 sequences whose lengths are
// drawn uniformly from [minLen, maxLen].
func (g *Generator) FloatSequences(k, minLen, maxLen int) [][]float64 {
	out := make([][]float64, k)
	for i := range out {
		out[i] = g.Floats(g.length(minLen, maxLen))
	}
	return out
}

// IntSequences returns k sorted int sequences whose lengths are drawn
// uniformly from [minLen, maxLen].
func (g *Generator) IntSequences(k, minLen, maxLen int) [][]int {
	out := make([][]int, k)
	for i := range out {
		out[i] = g.Ints(g.length(minLen, maxLen))
	}
	return out
}

func (g *Generator) length(minLen, maxLen int) int {
	if maxLen <= minLen {
		return minLen
	}
	return g.faker.IntRange(minLen, maxLen)
}

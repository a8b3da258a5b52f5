package kwaymerge_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/nelimee/kwaymerge"
	"github.com/nelimee/kwaymerge/seqgen"
)

func BenchmarkMerge(b *testing.B) {
	b.ReportAllocs()
	sequenceCounts := []int{1, 4, 16, 64, 256}
	lengths := []int{32, 1024}

	for _, k := range sequenceCounts {
		for _, length := range lengths {
			seqs := seqgen.New(1).FloatSequences(k, length, length)

			b.Run(fmt.Sprintf("k=%d/len=%d", k, length), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					kwaymerge.Merge(seqs)
				}
			})
		}
	}
}

func BenchmarkMerge_Parallelism(b *testing.B) {
	seqs := seqgen.New(1).FloatSequences(64, 10000, 10000)

	for p := 1; p <= runtime.GOMAXPROCS(0); p *= 2 {
		b.Run(fmt.Sprintf("parallelism=%d", p), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				kwaymerge.Merge(seqs, kwaymerge.WithParallelism(p))
			}
		})
	}
}

func BenchmarkMerge_Duplicates(b *testing.B) {
	b.ReportAllocs()
	// Int sequences draw from a narrow value range, so runs of equal
	// elements dominate and the tie path does the work.
	seqs := seqgen.New(1).IntSequences(32, 5000, 5000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kwaymerge.Merge(seqs)
	}
}

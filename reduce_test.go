package kwaymerge

import (
	"fmt"
	"slices"
	"testing"

	"github.com/nelimee/kwaymerge/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRuns lays out the given number of sorted runs back to back in one
// buffer and returns the buffer with its bounding ledger. Run r holds the
// values r, r+runs, r+2*runs, ... so the runs interleave heavily and the
// sorted whole is the permutation 0..runs*runLen-1.
func buildRuns(runs, runLen int) ([]int, *ledger.Ledger) {
	out := make([]int, 0, runs*runLen)
	led := ledger.New()
	led.Append(0)
	for r := 0; r < runs; r++ {
		for i := 0; i < runLen; i++ {
			out = append(out, r+i*runs)
		}
		led.Append(len(out))
	}
	return out, led
}

func TestReduceLedger(t *testing.T) {
	// Each pass halves the live run count, rounding up, and reduction keeps
	// going until a single run remains. Counts one above a power of two are
	// the interesting ones: their lone trailing run is carried across a
	// pass boundary and still has to be folded in later.
	tests := []struct {
		runs       int
		wantPasses int
	}{
		{runs: 1, wantPasses: 0},
		{runs: 2, wantPasses: 1},
		{runs: 3, wantPasses: 2},
		{runs: 4, wantPasses: 2},
		{runs: 5, wantPasses: 3}, // 5 -> 3 -> 2 -> 1
		{runs: 6, wantPasses: 3},
		{runs: 7, wantPasses: 3},
		{runs: 8, wantPasses: 3},
		{runs: 9, wantPasses: 4}, // 9 -> 5 -> 3 -> 2 -> 1
		{runs: 16, wantPasses: 4},
		{runs: 17, wantPasses: 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("runs=%d", tt.runs), func(t *testing.T) {
			out, led := buildRuns(tt.runs, 17)
			want := slices.Clone(out)
			slices.Sort(want)

			passes := reduceLedger(out, led, ltInt, defaultOptions())

			assert.Equal(t, tt.wantPasses, passes)
			assert.Equal(t, want, out)
			assert.Equal(t, []int{0, len(out)}, led.Positions())
		})
	}
}

func TestReduceLedger_UnevenRuns(t *testing.T) {
	out := []int{4, 9, 1, 2, 3, 5, 0, 6, 7, 8}
	led := ledger.New()
	for _, p := range []int{0, 2, 6, 7, 10} {
		led.Append(p)
	}

	passes := reduceLedger(out, led, ltInt, defaultOptions())

	assert.Equal(t, 2, passes)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, out)
	assert.Equal(t, []int{0, 10}, led.Positions())
}

// TestMergeEngine_FiveRunShape drives the two phases together for the
// sequence counts whose first round leaves five runs. Five runs take three
// passes (5 -> 3 -> 2 -> 1); the trailing run of the first pass has no
// partner and must be carried, not dropped.
func TestMergeEngine_FiveRunShape(t *testing.T) {
	for _, k := range []int{9, 10} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			seqs := make([][]int, k)
			for i := range seqs {
				seqs[i] = []int{i, i + k, i + 2*k}
			}
			out := make([]int, 3*k)
			o := defaultOptions()

			led := pairMerge(seqs, out, ltInt, o)
			require.Equal(t, 5, led.Len()-1, "first round should leave five runs")

			passes := reduceLedger(out, led, ltInt, o)

			assert.Equal(t, 3, passes)
			assert.True(t, slices.IsSorted(out))
			assert.Equal(t, []int{0, len(out)}, led.Positions())
		})
	}
}

func TestReduceLedger_SequentialMatchesParallel(t *testing.T) {
	for _, p := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("parallelism=%d", p), func(t *testing.T) {
			out, led := buildRuns(7, 23)
			want := slices.Clone(out)
			slices.Sort(want)

			o := defaultOptions()
			o.parallelism = p
			reduceLedger(out, led, ltInt, o)

			assert.Equal(t, want, out)
		})
	}
}

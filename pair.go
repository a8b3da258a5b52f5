package kwaymerge

import (
	"golang.org/x/sync/errgroup"

	"github.com/nelimee/kwaymerge/ledger"
	"github.com/nelimee/kwaymerge/merge"
)

// pairMerge runs the first round of the k-way merge: sequences 2i and 2i+1
// are merged pairwise into out, every pair writing its own subslice. When
// the sequence count is odd the leftover sequence is copied verbatim into
// the tail, since one sorted sequence is already a sorted run.
//
// Each pair's subslice is out[off:end] with off the running sum of all
// earlier pairs' combined lengths, so the write regions are disjoint by
// construction and the pair merges need no coordination beyond the final
// join. The offsets are accumulated sequentially while tasks are
// dispatched; the merges themselves run concurrently.
//
// The returned ledger holds the start sentinel, the end position of every
// run with at least one element, and therefore ends with the end sentinel
// len(out). Pairs whose combined length is zero leave no entry, keeping
// the positions strictly increasing.
func pairMerge[T any](seqs [][]T, out []T, less LessFunc[T], o options) *ledger.Ledger {
	led := ledger.New()
	led.Append(0)

	var g errgroup.Group
	g.SetLimit(o.parallelism)

	off := 0
	i := 0
	for ; i+1 < len(seqs); i += 2 {
		left, right := seqs[i], seqs[i+1]
		end := off + len(left) + len(right)
		if end == off {
			continue
		}
		dst := out[off:end]
		g.Go(func() error {
			merge.Into(dst, left, right, less)
			return nil
		})
		led.Append(end)
		off = end
	}
	if i < len(seqs) {
		last := seqs[i]
		if end := off + len(last); end > off {
			dst := out[off:end]
			g.Go(func() error {
				copy(dst, last)
				return nil
			})
			led.Append(end)
			off = end
		}
	}

	// Single join point: every pair merge and the leftover copy must have
	// landed before the ledger is handed on. The tasks never fail.
	_ = g.Wait()

	if o.logger != nil {
		o.logger.Debug("kwaymerge: first round complete",
			"sequences", len(seqs),
			"runs", led.Len()-1)
	}
	return led
}

package kwaymerge

import (
	"golang.org/x/sync/errgroup"

	"github.com/nelimee/kwaymerge/ledger"
	"github.com/nelimee/kwaymerge/merge"
)

// reduceLedger fuses pairs of adjacent sorted runs in place until the
// ledger holds only the buffer's start and end, i.e. one run spans all of
// out. It returns the number of passes taken, which is ceil(log2(runs))
// for the run count the ledger arrived with.
//
// Each pass walks the ledger taking position triples (left, mid, right):
// they bound the adjacent runs out[left:mid] and out[mid:right], which are
// fused with merge.InPlace and whose shared boundary is then dropped. The
// walk resumes from right, so the ranges handed out within a pass never
// overlap and the fusions run concurrently. A trailing run with no partner
// is carried into the next pass untouched.
//
// Passes are separated by a full barrier: the next pass's triples exist
// only after the current pass has committed every write and every ledger
// removal. The ledger itself is mutated solely by this goroutine; worker
// tasks receive plain integer positions and never touch it.
func reduceLedger[T any](out []T, led *ledger.Ledger, less LessFunc[T], o options) int {
	passes := 0
	for led.Len() > 2 {
		passes++

		var g errgroup.Group
		g.SetLimit(o.parallelism)

		left := led.Front()
		for {
			mid := left.Next()
			if mid == nil {
				break
			}
			right := mid.Next()
			if right == nil {
				// Lone trailing run; it finds a partner next pass.
				break
			}
			lo, mi, hi := left.Pos(), mid.Pos(), right.Pos()
			g.Go(func() error {
				merge.InPlace(out[lo:hi], mi-lo, less)
				return nil
			})
			led.RemoveAfter(left)
			left = right
		}

		// Barrier between passes.
		_ = g.Wait()

		if o.logger != nil {
			o.logger.Debug("kwaymerge: reduction pass complete",
				"pass", passes,
				"runs", led.Len()-1)
		}
	}
	return passes
}

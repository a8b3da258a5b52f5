// Package ledger implements the boundary ledger used by the k-way merge
// engine: an ordered, forward-linked sequence of positions into an output
// buffer. Position i and position i+1 bound one maximal sorted run, so a
// ledger with n positions describes n-1 adjacent runs.
//
// The structure mirrors a singly-linked list on purpose. The merge engine
// walks the ledger front to back taking position triples, fuses the two
// runs they bound, and collapses the middle position; RemoveAfter gives
// that collapse in O(1) without invalidating the elements the walk still
// holds.
//
// Key features:
//   - O(1) Append via a tail pointer
//   - O(1) RemoveAfter, the forward-only analog of list deletion
//   - Forward traversal through Element.Next or the All iterator
//
// Basic usage:
//
//	led := ledger.New()
//	led.Append(0)  // buffer start sentinel
//	led.Append(4)  // end of the first sorted run
//	led.Append(9)  // buffer end sentinel
//
//	left := led.Front()
//	mid := left.Next()
//	// ... fuse the runs [0,4) and [4,9) ...
//	led.RemoveAfter(left) // the boundary at 4 is gone
//
// A Ledger is deliberately not goroutine-safe: the engine mutates it from
// a single coordinating goroutine, strictly between parallel regions.
package ledger

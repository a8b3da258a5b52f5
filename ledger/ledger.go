package ledger

import "iter"

// Element is a single position in a Ledger. Elements are linked forward
// only; once unlinked by RemoveAfter an Element must not be reused.
type Element struct {
	pos  int
	next *Element
}

// Pos returns the buffer position the element marks.
func (e *Element) Pos() int { return e.pos }

// Next returns the element following e, or nil if e is the last one.
func (e *Element) Next() *Element { return e.next }

// Ledger is an ordered sequence of positions into a buffer. Consecutive
// positions bound one sorted run; the first position is the buffer start
// and the last is the buffer end.
//
// A Ledger is not safe for concurrent use. Callers that share a Ledger
// across goroutines must confine all mutation to a single goroutine and
// order it before or after any concurrent reads.
type Ledger struct {
	head *Element
	tail *Element
	n    int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Len returns the number of positions currently held.
func (l *Ledger) Len() int { return l.n }

// Front returns the first element, or nil if the ledger is empty.
func (l *Ledger) Front() *Element { return l.head }

// Back returns the last element, or nil if the ledger is empty.
func (l *Ledger) Back() *Element { return l.tail }

// Append adds pos after the current last position. Positions must be
// appended in strictly increasing order; Append does not re-check this.
func (l *Ledger) Append(pos int) {
	e := &Element{pos: pos}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.n++
}

// RemoveAfter unlinks the element following e in O(1). It is a no-op when
// e is the last element.
func (l *Ledger) RemoveAfter(e *Element) {
	victim := e.next
	if victim == nil {
		return
	}
	e.next = victim.next
	if victim == l.tail {
		l.tail = e
	}
	victim.next = nil
	l.n--
}

// All returns an iterator over the positions, front to back.
func (l *Ledger) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.pos) {
				return
			}
		}
	}
}

// Positions collects the positions into a slice. Intended for tests and
// debugging rather than hot paths.
func (l *Ledger) Positions() []int {
	out := make([]int, 0, l.n)
	for p := range l.All() {
		out = append(out, p)
	}
	return out
}

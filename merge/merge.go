// Package merge provides the stable merge primitives the k-way engine is
// built on: a two-way merge of sorted slices into a destination, and an
// in-place fusion of two adjacent sorted runs within one slice.
//
// Both are sequential and allocation-conscious; parallelism belongs to the
// callers, which dispatch merges over disjoint regions.
package merge

// Into merges the sorted slices a and b into dst, whose length must equal
// len(a)+len(b). The merge is stable: when elements compare equal under
// less, those from a are placed first. dst must not overlap a or b.
func Into[T any](dst, a, b []T, less func(a, b T) bool) {
	if len(dst) != len(a)+len(b) {
		panic("merge: len(dst) != len(a)+len(b)")
	}
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// InPlace fuses the adjacent sorted runs s[:mid] and s[mid:] so that s ends
// up sorted. The merge is stable: equal elements keep left-run-first order.
//
// InPlace copies the smaller of the two runs into a temporary buffer and
// merges from whichever end keeps the other run untouched, so the extra
// space is O(min(len(left), len(right))) per call and the work is linear.
// Runs that are already ordered across the boundary cost two comparisons
// and no allocation.
func InPlace[T any](s []T, mid int, less func(a, b T) bool) {
	if mid < 0 || mid > len(s) {
		panic("merge: mid out of range")
	}
	if mid == 0 || mid == len(s) {
		return
	}
	if !less(s[mid], s[mid-1]) {
		// Nothing crosses the boundary.
		return
	}
	if mid <= len(s)-mid {
		mergeLo(s, mid, less)
	} else {
		mergeHi(s, mid, less)
	}
}

// mergeLo copies the left run aside and merges forward into s. Used when
// the left run is the shorter one, so writes never overtake unread input.
func mergeLo[T any](s []T, mid int, less func(a, b T) bool) {
	tmp := make([]T, mid)
	copy(tmp, s[:mid])

	i, j, k := 0, mid, 0
	for i < len(tmp) && j < len(s) {
		if less(s[j], tmp[i]) {
			s[k] = s[j]
			j++
		} else {
			s[k] = tmp[i]
			i++
		}
		k++
	}
	// Whatever remains of the right run is already in position; the rest
	// of tmp slots straight in.
	copy(s[k:], tmp[i:])
}

// mergeHi mirrors mergeLo from the other end: the right run is copied
// aside and the merge walks backward placing the larger element last. On
// ties the right-run element is placed first (i.e. later in s), which
// keeps the merge stable.
func mergeHi[T any](s []T, mid int, less func(a, b T) bool) {
	tmp := make([]T, len(s)-mid)
	copy(tmp, s[mid:])

	i, j, k := mid-1, len(tmp)-1, len(s)-1
	for i >= 0 && j >= 0 {
		if less(tmp[j], s[i]) {
			s[k] = s[i]
			i--
		} else {
			s[k] = tmp[j]
			j--
		}
		k--
	}
	// k == j here whenever the left run ran out first.
	copy(s[:j+1], tmp[:j+1])
}

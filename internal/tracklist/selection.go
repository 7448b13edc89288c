package tracklist

import "slices"

// IsContiguous reports whether indices form an unbroken ascending run once
// sorted. Duplicates are ignored. An empty set is not contiguous.
func IsContiguous(indices []int) bool {
	_, _, ok := RunOf(indices)
	return ok
}

// RunOf returns the start and length of the contiguous run described by a
// selection, or false when the selection is empty or has a gap.
func RunOf(indices []int) (start, count int, ok bool) {
	if len(indices) == 0 {
		return 0, 0, false
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	prev := sorted[0]
	for _, i := range sorted[1:] {
		if i != prev && i != prev+1 {
			return 0, 0, false
		}
		prev = i
	}
	return sorted[0], prev - sorted[0] + 1, true
}

// DropTarget resolves the insertion index for a drop at pointerY.
//
// row is the row under the pointer, whose visual bounds start at rowTop and
// span rowHeight units. A pointer in the lower half of the row inserts after
// it, otherwise before it. A pointer that is not over a row (below the last
// one, or over empty space) appends.
func DropTarget(pointerY, rowTop, rowHeight, row, rowCount int) int {
	if row < 0 || row >= rowCount {
		return rowCount
	}
	if pointerY >= rowTop+rowHeight {
		return row + 1
	}
	if rowHeight > 0 && 2*(pointerY-rowTop) >= rowHeight {
		return row + 1
	}
	return row
}

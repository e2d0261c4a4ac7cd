package gradient

import (
	"iter"
	"slices"
)

// odometer yields every combination of indexes for axes of the given sizes,
// the last axis changing fastest. Nothing is produced when any axis is empty.
func odometer(sizes ...int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if len(sizes) == 0 || slices.ContainsFunc(sizes, func(n int) bool { return n <= 0 }) {
			return
		}
		idx := make([]int, len(sizes))
		for {
			if !yield(slices.Clone(idx)) {
				return
			}
			i := len(idx) - 1
			for ; i >= 0; i-- {
				if idx[i]++; idx[i] < sizes[i] {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

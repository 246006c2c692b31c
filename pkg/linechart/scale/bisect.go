package scale

import (
	"sort"
	"time"
)

// BisectLeft returns the leftmost index i in [lo, len(xs)] such that inserting x at i
// keeps xs sorted by key. Equal keys place x before the run of equal elements.
func BisectLeft[T any](xs []T, x time.Time, lo int, key func(T) time.Time) int {
	if lo < 0 {
		lo = 0
	}
	if lo > len(xs) {
		return len(xs)
	}
	return lo + sort.Search(len(xs)-lo, func(i int) bool {
		return !key(xs[lo+i]).Before(x)
	})
}

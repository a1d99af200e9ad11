package eggdrop

import (
	"math"
	"math/bits"
)

// Coverage returns the number of floors that drops drops and eggs eggs can
// always resolve, sum_{i=1..eggs} C(drops, i). The result saturates at
// math.MaxInt.
func Coverage(drops, eggs int) int {
	if drops <= 0 || eggs <= 0 {
		return 0
	}
	var (
		total uint64
		term  uint64 = 1 // C(drops, 0)
	)
	for i := 1; i <= min(eggs, drops); i++ {
		hi, lo := bits.Mul64(term, uint64(drops-i+1))
		if hi >= uint64(i) {
			return math.MaxInt
		}
		term, _ = bits.Div64(hi, lo, uint64(i))
		if term > math.MaxInt {
			return math.MaxInt
		}
		total += term
		if total > math.MaxInt {
			return math.MaxInt
		}
	}
	return int(total)
}

// ClosedForm returns the smallest drop count whose Coverage reaches floors.
// It agrees with Solver.MinDrops for every floors >= 0 and eggs >= 1 and
// needs no table, so it serves the full contest range.
func ClosedForm(floors, eggs int) int {
	if floors <= 0 {
		return 0
	}
	if eggs <= 1 {
		return floors
	}
	lo, hi := 1, floors
	for lo < hi {
		mid := lo + (hi-lo)/2
		if Coverage(mid, eggs) >= floors {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

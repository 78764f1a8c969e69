package tabinterp

// bracket returns the index i of the interval [xs[i], xs[i+1]] containing
// x. The result is clamped to [0, len(xs)-2]: queries left of the grid
// return 0 and queries at or past the final point return the last
// interval, so edge formulas extrapolate instead of failing.
//
// dx is an estimate of the point spacing used to guess the interval before
// falling back to a binary search.
func bracket(xs []float64, dx, x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - xs[0]) / dx)
	if guess >= 0 && guess < len(xs)-1 &&
		xs[guess] <= x && x <= xs[guess+1] {

		return guess
	}

	if x <= xs[0] {
		return 0
	} else if x >= xs[len(xs)-1] {
		return len(xs) - 2
	}

	// Binary search.
	lo, hi := 0, len(xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

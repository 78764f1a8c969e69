package tabinterp

// stencilStart corrects a bracket index so that the (order+1)-point window
// starting there stays inside a table of n points. bracket returns the
// left index of a 2-point interval; the polynomial laws need wider windows
// and must not read past either end of the table.
func stencilStart(n, order, idx int) int {
	switch order {
	case 2:
		// Back off one interval when the bracket is the table's last.
		if idx == n-2 && idx > 0 {
			idx--
		}
	case 3:
		// Center the window on the bracket instead of starting at its
		// left edge, then back off once more at the right end of the grid.
		if idx > 0 {
			idx--
		}
		if idx == n-3 {
			idx--
		}
	}

	if idx > n-1-order {
		idx = n - 1 - order
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// lagrangian evaluates the Lagrange polynomial through the order+1 table
// points starting at idx. If the tabulated values come from a polynomial
// of degree <= order, the result is exact for any x, inside the window or
// not.
//
// The window [idx, idx+order] must fit inside the table: callers go
// through stencilStart first.
func lagrangian(xs, ys []float64, idx int, x float64, order int) float64 {
	sum := 0.0
	for i := 0; i <= order; i++ {
		c := 1.0
		for j := 0; j <= order; j++ {
			if i == j {
				continue
			}
			c *= (x - xs[idx+j]) / (xs[idx+i] - xs[idx+j])
		}
		sum += c * ys[idx+i]
	}
	return sum
}

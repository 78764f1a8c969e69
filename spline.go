package tabinterp

import (
	"log"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a natural cubic spline over a table. Unlike the polynomial
// laws, which refit a window around every query, a Spline solves for all
// its interval coefficients once and is smooth across the whole grid.
type Spline struct {
	t      *Table
	y2s    []float64
	coeffs []splineCoeff
}

// NewSpline creates a natural cubic spline over t. The table must have at
// least 3 points.
//
// The table must not be modified throughout the lifetime of the Spline.
func NewSpline(t *Table) *Spline {
	if t.Len() < 3 {
		log.Fatalf(
			"Table given to NewSpline() has %d points, need at least 3.",
			t.Len(),
		)
	}

	sp := &Spline{t: t}
	sp.y2s = make([]float64, t.Len())
	sp.coeffs = make([]splineCoeff, t.Len()-1)

	sp.calcY2s()
	sp.calcCoeffs()
	return sp
}

// Eval computes the value of the spline at the given point. Queries
// outside the grid extrapolate with the edge interval's polynomial.
func (sp *Spline) Eval(x float64) float64 {
	i := bracket(sp.t.xs, sp.t.dx, x)
	dx := x - sp.t.xs[i]
	c := sp.coeffs[i]
	return ((c.a*dx+c.b)*dx+c.c)*dx + c.d
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// Diff computes the derivative of the spline at the given point to the
// specified order. Orders past 3 are identically zero.
func (sp *Spline) Diff(x float64, order int) float64 {
	i := bracket(sp.t.xs, sp.t.dx, x)
	dx := x - sp.t.xs[i]
	c := sp.coeffs[i]
	switch order {
	case 0:
		return ((c.a*dx+c.b)*dx+c.c)*dx + c.d
	case 1:
		return (3*c.a*dx+2*c.b)*dx + c.c
	case 2:
		return 6*c.a*dx + 2*c.b
	case 3:
		return 6 * c.a
	default:
		return 0
	}
}

// calcY2s solves for the second derivative at every interior point of the
// table. The boundary second derivatives are set to zero, which is what
// makes the spline "natural".
func (sp *Spline) calcY2s() {
	n := sp.t.Len()
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	sp.y2s[0], sp.y2s[n-1] = 0, 0

	xs, ys := sp.t.xs, sp.t.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	triDiag(as, bs, cs, rs, sp.y2s[1:n-1])
}

// calcCoeffs expands the second derivatives into per-interval cubic
// coefficients, s(x) = a*dx^3 + b*dx^2 + c*dx + d with dx = x - xs[i].
func (sp *Spline) calcCoeffs() {
	xs, ys, y2s := sp.t.xs, sp.t.ys, sp.y2s
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		sp.coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		sp.coeffs[i].b = y2s[i] / 2
		sp.coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		sp.coeffs[i].d = ys[i]
	}
}

// triDiag solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice.
func triDiag(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		log.Fatal("Lengths of arguments to triDiag are unequal.")
	}
	if len(as) == 0 {
		return
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		log.Fatal("triDiag cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			log.Fatal("triDiag cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

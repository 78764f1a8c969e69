package tabinterp

import (
	"errors"
	"fmt"
	"math"
)

// Law selects the interpolation rule applied to a table bracket. The four
// pointwise laws use the two bracketing points and treat each axis as
// either linear or logarithmic. Quadratic and Cubic fit a Lagrange
// polynomial through a 3- or 4-point window around the bracket.
type Law int

const (
	LinLin Law = iota
	LinLog
	LogLin
	LogLog
	Quadratic
	Cubic
	EndLaw
)

// ErrUnsupportedLaw is returned when a Law outside the defined enumeration
// is passed to an evaluation function.
var ErrUnsupportedLaw = errors.New("unsupported interpolation law")

func (law Law) String() string {
	switch law {
	case LinLin:
		return "LinLin"
	case LinLog:
		return "LinLog"
	case LogLin:
		return "LogLin"
	case LogLog:
		return "LogLog"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	}
	return fmt.Sprintf("Law(%d)", int(law))
}

// The pointwise kernels evaluate a single bracket (x0, x1) -> (y0, y1) at
// x. None of them check their domains: a degenerate bracket or a
// non-positive operand under a log transform propagates as an Inf or NaN
// instead of an error. Outside [x0, x1] the same formula extrapolates.

func linLin(x0, x1, y0, y1, x float64) float64 {
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

func linLog(x0, x1, y0, y1, x float64) float64 {
	return y0 + math.Log(x/x0)/math.Log(x1/x0)*(y1-y0)
}

func logLin(x0, x1, y0, y1, x float64) float64 {
	return y0 * math.Exp((x-x0)/(x1-x0)*math.Log(y1/y0))
}

func logLog(x0, x1, y0, y1, x float64) float64 {
	f := math.Log(x/x0) / math.Log(x1/x0)
	return y0 * math.Exp(f*math.Log(y1/y0))
}

// Interpolate evaluates the tabulated function (xs, ys) at x under the
// given law.
//
// xs must be strictly increasing and the same length as ys. The log-based
// laws require the transformed operands to be positive and return
// non-finite values otherwise. Unknown laws fail with ErrUnsupportedLaw.
func Interpolate(xs, ys []float64, x float64, law Law) (float64, error) {
	dx := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	return interpolate(xs, ys, dx, x, law)
}

func interpolate(xs, ys []float64, dx, x float64, law Law) (float64, error) {
	idx := bracket(xs, dx, x)

	switch law {
	case LinLin:
		return linLin(xs[idx], xs[idx+1], ys[idx], ys[idx+1], x), nil
	case LinLog:
		return linLog(xs[idx], xs[idx+1], ys[idx], ys[idx+1], x), nil
	case LogLin:
		return logLin(xs[idx], xs[idx+1], ys[idx], ys[idx+1], x), nil
	case LogLog:
		return logLog(xs[idx], xs[idx+1], ys[idx], ys[idx+1], x), nil
	case Quadratic:
		idx = stencilStart(len(xs), 2, idx)
		return lagrangian(xs, ys, idx, x, 2), nil
	case Cubic:
		idx = stencilStart(len(xs), 3, idx)
		return lagrangian(xs, ys, idx, x, 3), nil
	}

	return math.NaN(), fmt.Errorf("%w: %s", ErrUnsupportedLaw, law)
}

package tabinterp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinLinBracket(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{1, 4}

	y, err := Interpolate(xs, ys, 1.5, LinLin)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, y, 1e-12, "midpoint")

	// The same formula extrapolates on both sides.
	y, _ = Interpolate(xs, ys, 3, LinLin)
	assert.InDelta(t, 7, y, 1e-12, "right extrapolation")
	y, _ = Interpolate(xs, ys, 0, LinLin)
	assert.InDelta(t, -2, y, 1e-12, "left extrapolation")
}

func TestLogLogBracket(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{1, 4}

	// Halfway in log x is sqrt(2), and y = exp(0.5*ln 4) = 2.
	y, err := Interpolate(xs, ys, math.Sqrt2, LogLog)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, y, 1e-12)
}

func TestLinLogBracket(t *testing.T) {
	xs := []float64{1, 10}
	ys := []float64{0, 1}

	y, err := Interpolate(xs, ys, math.Sqrt(10), LinLog)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, y, 1e-12)
}

func TestLogLinBracket(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{1, 100}

	y, err := Interpolate(xs, ys, 0.5, LogLin)
	assert.NoError(t, err)
	assert.InDelta(t, 10.0, y, 1e-12)
}

func TestEndpointExactness(t *testing.T) {
	// Positive on both axes so the log laws are in their domain.
	xs := []float64{1, 2, 4, 8, 16}
	ys := []float64{2, 3, 5, 9, 17}

	for law := LinLin; law < EndLaw; law++ {
		for k := range xs {
			y, err := Interpolate(xs, ys, xs[k], law)
			assert.NoError(t, err)
			assert.InDelta(t, ys[k], y, 1e-9*math.Abs(ys[k]),
				"law %s at grid index %d", law, k)
		}
	}
}

func TestMonotonicWithinBracket(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{1, 3, 4, 10}

	for _, law := range []Law{LinLin, LogLog} {
		prev := math.Inf(-1)
		for x := 2.0; x <= 4.0; x += 0.125 {
			y, err := Interpolate(xs, ys, x, law)
			assert.NoError(t, err)
			assert.True(t, y >= prev,
				"law %s not monotonic at x = %g: %g < %g", law, x, y, prev)
			prev = y
		}
	}
}

func TestUnsupportedLaw(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{1, 4}

	y, err := Interpolate(xs, ys, 1.5, EndLaw)
	assert.True(t, errors.Is(err, ErrUnsupportedLaw))
	assert.True(t, math.IsNaN(y))

	_, err = Interpolate(xs, ys, 1.5, Law(-1))
	assert.True(t, errors.Is(err, ErrUnsupportedLaw))
}

func TestLogDomainViolationPropagates(t *testing.T) {
	// Non-positive operands under a log transform are not trapped: they
	// come back as non-finite values, not errors.
	xs := []float64{-1, 1}
	ys := []float64{1, 2}

	y, err := Interpolate(xs, ys, 0.5, LogLog)
	assert.NoError(t, err)
	assert.False(t, isFinite(y))
}

func TestTableEvalMatchesInterpolate(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{1, 4, 16, 64}
	tab := NewTable(xs, ys)

	for law := LinLin; law < EndLaw; law++ {
		for x := 1.0; x <= 8.0; x += 0.5 {
			want, err1 := Interpolate(xs, ys, x, law)
			got, err2 := tab.Eval(x, law)
			assert.NoError(t, err1)
			assert.NoError(t, err2)
			assert.Equal(t, want, got, "law %s at x = %g", law, x)
		}
	}
}

func TestTableEvalAll(t *testing.T) {
	tab := NewTable([]float64{0, 1, 2}, []float64{0, 2, 4})

	qs := []float64{0.5, 1.5, 2}
	out := make([]float64, len(qs))
	res, err := tab.EvalAll(qs, LinLin, out)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 4}, res)
	assert.Equal(t, res, out)

	_, err = tab.EvalAll(qs, EndLaw)
	assert.True(t, errors.Is(err, ErrUnsupportedLaw))
}

func TestLawString(t *testing.T) {
	assert.Equal(t, "LogLog", LogLog.String())
	assert.Equal(t, "Cubic", Cubic.String())
	assert.Equal(t, "Law(17)", Law(17).String())
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

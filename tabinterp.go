/*package tabinterp interpolates tabulated 1D functions.

A table is a pair of float64 sequences, xs and ys, where xs is strictly
increasing. Evaluating a table at a point x means finding the bracketing
interval [xs[i], xs[i+1]] and applying one of several interpolation laws to
it: the four pointwise laws treat either axis as linear or logarithmic, and
the Quadratic and Cubic laws fit a Lagrange polynomial through a wider
window of points. Queries outside the grid extrapolate through the edge
bracket's formula.

All evaluation is stateless: tables may be shared between goroutines as
long as nothing mutates the underlying slices.
*/
package tabinterp

import (
	"log"
)

// Table is a tabulated 1D function. The zero value is not usable: create
// Tables with NewTable.
type Table struct {
	xs, ys []float64

	// Usually the input data is uniform. This is our estimate of the point
	// spacing, used to seed interval searches.
	dx float64
}

// NewTable creates a Table from a sequence of strictly increasing x values
// and the function values at those points.
//
// xs and ys must not be modified throughout the lifetime of the Table.
// The Quadratic and Cubic laws need at least 3 and 4 points, respectively;
// tables shorter than that must not be evaluated under those laws.
func NewTable(xs, ys []float64) *Table {
	if len(xs) != len(ys) {
		log.Fatalf(
			"Table given to NewTable() has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		)
	} else if len(xs) <= 1 {
		log.Fatalf("Table given to NewTable() has length of %d.", len(xs))
	}

	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			log.Fatal("Table given to NewTable() not strictly increasing.")
		}
	}

	t := &Table{}
	t.xs, t.ys = xs, ys
	t.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	return t
}

// Len returns the number of points in the table.
func (t *Table) Len() int { return len(t.xs) }

// Xs returns the table's grid. The returned slice must not be modified.
func (t *Table) Xs() []float64 { return t.xs }

// Ys returns the table's values. The returned slice must not be modified.
func (t *Table) Ys() []float64 { return t.ys }

// Eval evaluates the table at x under the given law.
func (t *Table) Eval(x float64, law Law) (float64, error) {
	return interpolate(t.xs, t.ys, t.dx, x, law)
}

// EvalAll evaluates the table at all the given x values under the given
// law. If an output array is given, the output is written to that array
// (the array is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (t *Table) EvalAll(
	xs []float64, law Law, out ...[]float64,
) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		y, err := t.Eval(x, law)
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}
	return out[0], nil
}

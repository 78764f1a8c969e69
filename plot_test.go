package tabinterp

import (
	"testing"

	plt "github.com/phil-mansfield/pyplot"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*dx
	}
	return out
}

func lawPlot(tab *Table, law Law, style, label string) {
	xs := tab.Xs()
	evalXs := linspace(xs[0], xs[len(xs)-1], 100)
	evalYs, err := tab.EvalAll(evalXs, law)
	if err != nil {
		panic(err.Error())
	}

	plt.Plot(evalXs, evalYs, style, plt.Label(label), plt.LW(2))
}

func TestPyplotLaws(t *testing.T) {
	plt.Reset()

	xs := []float64{1, 2, 4, 8, 16}
	ys := []float64{1, 5, 14, 40, 150}
	tab := NewTable(xs, ys)

	plt.Figure(plt.Num(0))
	plt.Title("Interpolation laws")
	lawPlot(tab, LinLin, "b", "LinLin")
	lawPlot(tab, LogLog, "g", "LogLog")
	lawPlot(tab, Quadratic, "r", "Quadratic")
	lawPlot(tab, Cubic, "m", "Cubic")

	sp := NewSpline(tab)
	evalXs := linspace(xs[0], xs[len(xs)-1], 100)
	plt.Plot(evalXs, sp.EvalAll(evalXs), "c", plt.Label("Spline"), plt.LW(2))

	plt.Plot(xs, ys, "ok", plt.Label("Input"), plt.LW(3))
	plt.Legend(plt.Loc("upper left"))
	plt.Show()
}

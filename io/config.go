package io

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/tabinterp"
)

const ExampleEvalFile = `[Eval]

#######################
# Required Parameters #
#######################

# Whitespace-separated text file containing the table. Lines starting with
# '#' are skipped.
TableFile = path/to/table.txt

# The interpolation law applied to the table. One of:
# [ LinLin | LinLog | LogLin | LogLog | Quadratic | Cubic | Spline ]
# The log-based laws require the corresponding table columns to be strictly
# positive. Quadratic needs at least 3 table rows and Cubic at least 4.
Law = LinLin

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of TableFile holding the x and y values. Defaults
# are 0 and 1.
# XColumn = 0
# YColumn = 1

# Default way of specifying the query points: a uniform sweep of Samples
# points from XStart to XEnd, inclusive.
XStart = 1.0
XEnd = 10.0
Samples = 100

# Alternative way of specifying the query points: a text file whose first
# column lists one query point per row. If PointsFile is set, the sweep
# parameters are ignored.
# PointsFile = path/to/points.txt

# Output file for the evaluated "x y" pairs. Defaults to stdout.
# Output = path/to/output.txt

# Log file, useful for debugging. Defaults to stderr.
# LogFile = log.out`

type EvalConfig struct {
	// Required
	TableFile string
	Law       string

	// Optional
	XColumn, YColumn int
	XStart, XEnd     float64
	Samples          int
	PointsFile       string
	Output           string
	LogFile          string
}

type EvalWrapper struct {
	Eval EvalConfig
}

func DefaultEvalWrapper() *EvalWrapper {
	con := EvalConfig{}
	con.Law = "LinLin"
	con.XColumn = 0
	con.YColumn = 1
	return &EvalWrapper{con}
}

func (con *EvalConfig) ValidTableFile() bool {
	return con.TableFile != ""
}

func (con *EvalConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 &&
		con.XColumn != con.YColumn
}

func (con *EvalConfig) ValidLaw() bool {
	_, ok := con.LawValue()
	return ok || con.SplineLaw()
}

func (con *EvalConfig) ValidSweep() bool {
	return con.Samples >= 2 && con.XEnd > con.XStart
}

func (con *EvalConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}

func (con *EvalConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *EvalConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// SplineLaw returns true if the config requests the cubic spline, which
// lives outside the tabinterp.Law enumeration.
func (con *EvalConfig) SplineLaw() bool {
	return strings.EqualFold(con.Law, "Spline")
}

// LawValue maps the config's Law string onto the tabinterp.Law
// enumeration. The match is case-insensitive.
func (con *EvalConfig) LawValue() (tabinterp.Law, bool) {
	for law := tabinterp.LinLin; law < tabinterp.EndLaw; law++ {
		if strings.EqualFold(law.String(), con.Law) {
			return law, true
		}
	}
	return tabinterp.EndLaw, false
}

// MinTableLen returns the smallest table the configured law can evaluate.
func (con *EvalConfig) MinTableLen() int {
	if con.SplineLaw() {
		return 3
	}
	law, _ := con.LawValue()
	switch law {
	case tabinterp.Quadratic:
		return 3
	case tabinterp.Cubic:
		return 4
	}
	return 2
}

// QueryPoints returns the sweep described by XStart, XEnd, and Samples.
func (con *EvalConfig) QueryPoints() ([]float64, error) {
	if !con.ValidSweep() {
		return nil, fmt.Errorf(
			"Invalid sweep: XStart = %g, XEnd = %g, Samples = %d.",
			con.XStart, con.XEnd, con.Samples,
		)
	}

	out := make([]float64, con.Samples)
	dx := (con.XEnd - con.XStart) / float64(con.Samples-1)
	for i := range out {
		out[i] = con.XStart + float64(i)*dx
	}
	return out, nil
}

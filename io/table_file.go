package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadColumns reads the x and y columns of a whitespace-separated text
// table file. The returned xs must be strictly increasing to be usable as
// a tabinterp table; this is checked by tabinterp.NewTable, not here.
func ReadColumns(file string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(file, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, err
	}

	xs, ys = cols[0], cols[1]
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("Table file %s is empty.", file)
	}
	return xs, ys, nil
}

// ReadPoints reads query points from the first column of a
// whitespace-separated text file.
func ReadPoints(file string) ([]float64, error) {
	cols, err := table.ReadTable(file, []int{0}, nil)
	if err != nil {
		return nil, err
	}

	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("Points file %s is empty.", file)
	}
	return cols[0], nil
}

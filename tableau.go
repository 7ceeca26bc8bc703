/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tableau is the augmented matrix pivoted by the simplex method. Rows
// 0..Rows()-1 hold the equality constraints, the last row holds the
// objective. The last column of every row holds its right-hand side.
//
// The objective row is pivoted until none of its coefficients is negative,
// i.e. the tableau always maximizes the objective encoded in that row. The
// right-hand side of the objective row holds the objective value reached so
// far.
//
// A Tableau is not safe for concurrent use.
type Tableau struct {
	m    *mat.Dense
	rows int // constraint rows, the objective row comes after them
	cols int
}

// NewTableau builds a tableau from a constraint matrix with the
// right-hand sides as its last column and an objective row with one entry
// per variable and an optional trailing constant. Neither argument is
// retained.
func NewTableau(constraints [][]float64, objective []float64) (*Tableau, error) {
	rows, cols, err := validateConstraints(constraints)
	if err != nil {
		return nil, err
	}
	if err := validateObjective(objective, cols); err != nil {
		return nil, err
	}

	data := make([]float64, (rows+1)*cols)
	for i, row := range constraints {
		copy(data[i*cols:], row)
	}
	copy(data[rows*cols:], objective)

	return &Tableau{
		m:    mat.NewDense(rows+1, cols, data),
		rows: rows,
		cols: cols,
	}, nil
}

// Rows returns the number of constraint rows, excluding the objective row.
func (t *Tableau) Rows() int {
	return t.rows
}

// Cols returns the number of columns, including the right-hand side.
func (t *Tableau) Cols() int {
	return t.cols
}

// At returns the entry at row i and column j. Row Rows() is the objective
// row.
func (t *Tableau) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Value returns the right-hand side of the objective row.
func (t *Tableau) Value() float64 {
	return t.m.At(t.rows, t.cols-1)
}

// EnteringColumn returns the column with the most negative objective
// coefficient, preferring the leftmost one on ties. It reports false if no
// coefficient is negative, i.e. if the tableau is optimal.
func (t *Tableau) EnteringColumn() (int, bool) {
	objective := t.m.RawRowView(t.rows)

	col, lowest := -1, 0.0
	for j, v := range objective[:t.cols-1] {
		if v < lowest {
			col, lowest = j, v
		}
	}

	return col, col >= 0
}

// LeavingRow performs the minimum ratio test for the given entering column:
// among the constraint rows with a strictly positive entry in col it
// returns the one with the smallest ratio of right-hand side to that entry,
// preferring the first one on ties. It reports false if no entry in col is
// positive, in which case the objective is unbounded along col.
func (t *Tableau) LeavingRow(col int) (int, bool) {
	row, minRatio := -1, math.Inf(1)
	for i := 0; i < t.rows; i++ {
		a := t.m.At(i, col)
		if a <= 0 {
			continue
		}
		if ratio := t.m.At(i, t.cols-1) / a; ratio < minRatio {
			row, minRatio = i, ratio
		}
	}

	return row, row >= 0
}

// Optimal reports whether no objective coefficient is negative.
func (t *Tableau) Optimal() bool {
	_, ok := t.EnteringColumn()
	return !ok
}

// Pivot normalizes the given row so that its entry in col becomes 1 and
// eliminates col from every other row, the objective row included.
// Pivot panics if the pivot element is zero.
func (t *Tableau) Pivot(row, col int) {
	pivotRow := t.m.RawRowView(row)
	p := pivotRow[col]
	if p == 0 {
		panic(fmt.Sprintf("simplex: zero pivot element at (%d, %d)", row, col))
	}

	// divide instead of scaling by 1/p so the pivot becomes exactly 1
	for j := range pivotRow {
		pivotRow[j] /= p
	}

	for i := 0; i <= t.rows; i++ {
		if i == row {
			continue
		}
		r := t.m.RawRowView(i)
		if coeff := r[col]; coeff != 0 {
			floats.AddScaled(r, -coeff, pivotRow)
		}
	}
}

// BasicRow reports whether col is the column of a basic variable, i.e.
// whether across the constraint rows it holds a single 1 and zeroes
// elsewhere, and returns the row holding the 1. Entries within tol of 0
// or 1 count as such.
func (t *Tableau) BasicRow(col int, tol float64) (int, bool) {
	basic := -1
	for i := 0; i < t.rows; i++ {
		v := t.m.At(i, col)
		switch {
		case math.Abs(v-1) <= tol:
			if basic != -1 {
				return -1, false
			}
			basic = i
		case math.Abs(v) > tol:
			return -1, false
		}
	}

	return basic, basic != -1
}

// Solution returns the values of the first n variables: the right-hand
// side of its row for a basic variable, 0 for a non-basic one.
func (t *Tableau) Solution(n int, tol float64) []float64 {
	values := make([]float64, n)
	for j := range values {
		if row, ok := t.BasicRow(j, tol); ok {
			values[j] = t.m.At(row, t.cols-1)
		}
	}

	return values
}

func (t *Tableau) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.m, mat.Squeeze()))
}

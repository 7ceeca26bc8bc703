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
)

func validateConstraints(constraints [][]float64) (rows, cols int, err error) {
	if len(constraints) == 0 {
		return 0, 0, fmt.Errorf("%w: constraint matrix has no rows", ErrMalformedInput)
	}

	cols = len(constraints[0])
	if cols < 2 {
		return 0, 0, fmt.Errorf("%w: constraint rows need at least one coefficient and a right-hand side, got %d columns", ErrMalformedInput, cols)
	}

	for i, row := range constraints {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: constraint row %d has %d columns, expected %d", ErrMalformedInput, i, len(row), cols)
		}
		for j, v := range row {
			if !finite(v) {
				return 0, 0, fmt.Errorf("%w: constraint row %d has non-finite value %v in column %d", ErrMalformedInput, i, v, j)
			}
		}
	}

	return len(constraints), cols, nil
}

func validateObjective(objective []float64, cols int) error {
	if len(objective) != cols && len(objective) != cols-1 {
		return fmt.Errorf("%w: objective has %d entries, expected %d or %d", ErrMalformedInput, len(objective), cols-1, cols)
	}
	for j, v := range objective {
		if !finite(v) {
			return fmt.Errorf("%w: objective has non-finite value %v in column %d", ErrMalformedInput, v, j)
		}
	}

	return nil
}

func validateReported(reported, cols int) error {
	if reported < 0 || reported > cols-1 {
		return fmt.Errorf("%w: cannot report %d variables out of %d", ErrMalformedInput, reported, cols-1)
	}

	return nil
}

func validateDirection(dir direction) error {
	if dir != Minimize && dir != Maximize {
		return fmt.Errorf("%w: unknown optimization direction %d", ErrMalformedInput, int(dir))
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

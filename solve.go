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

import "context"

// Solve solves a linear program in canonical form: constraints holds one
// equality per row with the right-hand side as the last column, and must
// already contain an identity sub-matrix for a feasible basis with non-
// negative right-hand sides. objective holds the coefficients of the
// function to optimize in direction dir, one per variable, optionally
// followed by a constant term. The values of the first reported variables
// are returned in the result.
//
// An unbounded problem yields ErrModelUnbounded, exhausting the iteration
// limit yields ErrDidNotConverge, and inconsistent input yields an error
// wrapping ErrMalformedInput.
func Solve(constraints [][]float64, objective []float64, dir direction, reported int, opts ...Option) (*SolveResult, error) {
	return SolveContext(context.Background(), constraints, objective, dir, reported, opts...)
}

// SolveTableau is like Solve, but takes the objective row exactly as it
// goes into the tableau: the row is always pivoted towards a maximum of
// its negation, and dir only decides whether the final value of the row is
// reported as is (Maximize) or negated (Minimize). To maximize 6x+5y the
// row is thus {-6, -5}, to minimize x-y it is {1, -1}.
func SolveTableau(constraints [][]float64, objectiveRow []float64, dir direction, reported int, opts ...Option) (*SolveResult, error) {
	return SolveTableauContext(context.Background(), constraints, objectiveRow, dir, reported, opts...)
}

func solveObjective(ctx context.Context, s settings, constraints [][]float64, objective []float64, dir direction, reported int) (*SolveResult, error) {
	// the objective row reads z + a·x = b: maximizing c·x+k pivots the
	// row -c starting at k, minimizing it maximizes -(c·x+k) with the row
	// c starting at -k
	sign := 1.0
	if dir == Maximize {
		sign = -1
	}
	row := make([]float64, len(objective))
	for j, c := range objective {
		row[j] = sign * c
	}
	if len(constraints) > 0 && len(objective) == len(constraints[0]) {
		row[len(row)-1] = -sign * objective[len(objective)-1]
	}

	return solveTableau(ctx, s, constraints, row, dir, reported)
}

func solveTableau(ctx context.Context, s settings, constraints [][]float64, row []float64, dir direction, reported int) (*SolveResult, error) {
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	t, err := NewTableau(constraints, row)
	if err != nil {
		return nil, err
	}
	if err := validateReported(reported, t.cols); err != nil {
		return nil, err
	}

	iterations, err := s.optimize(ctx, t)
	if err != nil {
		return nil, err
	}

	value := t.Value()
	if dir == Minimize {
		value = -value
	}

	return &SolveResult{
		objective:  value,
		values:     t.Solution(reported, s.tolerance),
		iterations: iterations,
	}, nil
}

// optimize pivots t until it is optimal and returns the number of pivots.
func (s settings) optimize(ctx context.Context, t *Tableau) (int, error) {
	limit := s.iterationLimit(t.rows, t.cols)

	for iteration := 0; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return iteration, err
		}

		col, ok := t.EnteringColumn()
		if !ok {
			logf(s.logger, "optimal after %d pivots, objective row value %g", iteration, t.Value())
			logf(s.logger, "final tableau:\n%v", t)
			return iteration, nil
		}

		if iteration >= limit {
			logf(s.logger, "giving up after %d pivots", iteration)
			return iteration, ErrDidNotConverge
		}

		row, ok := t.LeavingRow(col)
		if !ok {
			logf(s.logger, "column %d has no positive entry, objective is unbounded", col)
			return iteration, ErrModelUnbounded
		}

		t.Pivot(row, col)
		logf(s.logger, "pivot %d: column %d enters, row %d leaves, objective row value %g", iteration+1, col, row, t.Value())
	}
}

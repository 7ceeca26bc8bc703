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

import "errors"

/* Types */

type SolveResult struct {
	objective  float64
	values     []float64
	iterations int
}

type SolveError int

const (
	ErrModelUnbounded SolveError = iota + 1
	ErrDidNotConverge
)

// ErrMalformedInput is wrapped by every error caused by an inconsistent
// constraint matrix, objective row or reported variable count. Such errors
// are always returned before any pivoting takes place.
var ErrMalformedInput = errors.New("malformed input")

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrModelUnbounded:
		return "model is unbounded"
	case ErrDidNotConverge:
		return "iteration limit reached before an optimal solution was found"
	default:
		panic("unrecognized error")
	}
}

// ObjectiveValue returns the optimal value of the objective function,
// already signed for the direction the problem was solved in.
func (res SolveResult) ObjectiveValue() float64 {
	return res.objective
}

// Values returns a copy of the solution vector. Its length is the number
// of reported variables requested when solving.
func (res SolveResult) Values() []float64 {
	values := make([]float64, len(res.values))
	copy(values, res.values)

	return values
}

// Value returns the computed value of the given variable for this
// optimization result. Variables that were not reported yield 0.
// Attempting to use a variable created in a different model results in
// undefined behaviour.
func (res SolveResult) Value(v *Variable) float64 {
	if v == nil || v.index >= len(res.values) {
		return 0
	}

	return res.values[v.index]
}

// Iterations returns the number of pivots performed to reach the optimum.
func (res SolveResult) Iterations() int {
	return res.iterations
}

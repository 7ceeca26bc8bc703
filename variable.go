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

import "fmt"

type Variable struct {
	model *Model
	index int
	name  string
}

/* Variable-related functions (model variables, as opposed to Go variables) */

func (v *Variable) Name() string {
	return v.name
}

// Index returns the column of the variable in the model's constraint
// matrix.
func (v *Variable) Index() int {
	return v.index
}

func (v *Variable) SetObjectiveCoefficient(coef float64) error {
	if !finite(coef) {
		return fmt.Errorf("%w: non-finite objective coefficient %v for variable %q", ErrMalformedInput, coef, v.name)
	}

	v.model.mu.Lock()
	defer v.model.mu.Unlock()

	v.model.objective[v.index] = coef

	return nil
}

func (v *Variable) ObjectiveCoefficient() float64 {
	v.model.mu.RLock()
	defer v.model.mu.RUnlock()

	return v.model.objective[v.index]
}

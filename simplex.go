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

/*

Package simplex solves linear programming problems in canonical form with
the tabular simplex method.

A problem in canonical form consists of equality constraints over
non-negative variables whose constraint matrix already contains an identity
sub-matrix, so that the corresponding variables form a feasible basis. For
example, the problem:

    Maximize:
      z = 6 x1 + 5 x2
    Subject to:
      4 x1 + 7 x2 <= 49
      8 x1 + 3 x2 <= 51
      9 x1 + 5 x2 <= 45

becomes canonical by adding one slack variable per constraint, and can be
solved like this:

	package main

	import (
		"fmt"

		"github.com/costela/simplex"
	)

	func main() {
		result, _ := simplex.Solve(
			[][]float64{
				// x1 x2 s1 s2 s3 rhs
				{4, 7, 1, 0, 0, 49},
				{8, 3, 0, 1, 0, 51},
				{9, 5, 0, 0, 1, 45},
			},
			[]float64{6, 5, 0, 0, 0},
			simplex.Maximize,
			2, // only report x1 and x2
		) // you should check for errors

		fmt.Printf("z = %.3f\n", result.ObjectiveValue())
		fmt.Printf("x1 = %.3f\n", result.Values()[0])
		// ⋮
	}

The same problem can also be built through a Model, which keeps track of
variables by name:

	model, _ := simplex.NewModel("example", simplex.Maximize)
	x1, _ := model.AddDefinedVariable("x1", 6)
	x2, _ := model.AddDefinedVariable("x2", 5)
	s1, _ := model.AddVariable("s1")
	// ⋮
	model.AddConstraint(49, []*simplex.Variable{x1, x2, s1}, []float64{4, 7, 1})
	// ⋮
	result, _ := model.Solve()
	fmt.Printf("x1 = %.3f\n", result.Value(x1))

*/
package simplex

import (
	"context"
	"fmt"
	"sync"
)

/* Types */

type Model struct {
	mu          sync.RWMutex
	name        string
	dir         direction
	vars        []*Variable
	objective   []float64
	constant    float64
	constraints []constraint
	settings    settings
}

// constraint is a single equality row. coefs may be shorter than the
// current number of variables: variables added after the constraint are
// not used in it.
type constraint struct {
	coefs []float64
	rhs   float64
}

type direction int

const (
	Minimize direction = iota
	Maximize
)

func (dir direction) String() string {
	switch dir {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("direction(%d)", int(dir))
	}
}

/* Model related functions */

// NewModel instantiates a new linear programming model, providing a
// name (purely informational) and a optimization direction (either
// Minimize or Maximize)
func NewModel(name string, dir direction, opts ...Option) (*Model, error) {
	if err := validateDirection(dir); err != nil {
		return nil, err
	}

	s, err := buildSettings(opts)
	if err != nil {
		return nil, fmt.Errorf("applying model option: %w", err)
	}

	return &Model{
		name:     name,
		dir:      dir,
		settings: s,
	}, nil
}

// Clone returns a copy of the model. Variables of the copy are distinct
// from the variables of the original.
func (model *Model) Clone() *Model {
	model.mu.RLock()
	defer model.mu.RUnlock()

	newModel := &Model{
		name:        model.name,
		dir:         model.dir,
		objective:   append([]float64(nil), model.objective...),
		constant:    model.constant,
		constraints: make([]constraint, len(model.constraints)),
		settings:    model.settings,
	}

	newModel.vars = make([]*Variable, len(model.vars))
	for i, v := range model.vars {
		newModel.vars[i] = &Variable{
			model: newModel,
			index: v.index,
			name:  v.name,
		}
	}

	for i, c := range model.constraints {
		newModel.constraints[i] = constraint{
			coefs: append([]float64(nil), c.coefs...),
			rhs:   c.rhs,
		}
	}

	return newModel
}

// Name returns the name provided upon instantiation of a model
func (model *Model) Name() string {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.name
}

// SetDirection changes the direction of the model's optimization
func (model *Model) SetDirection(dir direction) error {
	if err := validateDirection(dir); err != nil {
		return err
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	model.dir = dir

	return nil
}

// Direction returns the model's current optimization direction
func (model *Model) Direction() direction {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.dir
}

/* Column-related functions */

func (model *Model) VariableCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.vars)
}

// Variables returns a new slice with the model's variables. Changes to the
// slice will not be reflected in the model.
func (model *Model) Variables() []*Variable {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return append([]*Variable(nil), model.vars...)
}

// AddVariable adds a variable to the linear programming model and
// returns a reference to it. A freshly instantiated variable has an
// objective coefficient of 0, which is what slack variables need.
//
// Empty names will automatically replaced by a unique name.
func (model *Model) AddVariable(name string) (*Variable, error) {
	return model.AddDefinedVariable(name, 0)
}

// AddDefinedVariable adds a variable with the given objective coefficient
// to the linear programming model.
// Empty names will automatically replaced by a unique name.
func (model *Model) AddDefinedVariable(name string, coefficient float64) (*Variable, error) {
	if !finite(coefficient) {
		return nil, fmt.Errorf("%w: non-finite objective coefficient %v for variable %q", ErrMalformedInput, coefficient, name)
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	size := len(model.vars)
	if name == "" {
		name = fmt.Sprintf("V%d", size)
	}

	v := &Variable{
		model: model,
		index: size,
		name:  name,
	}
	model.vars = append(model.vars, v)
	model.objective = append(model.objective, coefficient)

	return v, nil
}

// SetObjectiveFunction defines the objective function for the model as
// a slice of coefficients and a slice of its respective variables.
// E.g.: an objective function of the form 2x+3y is passed as:
//   SetObjectiveFunction([]float64{2,3}, []*Variable{x, y})
// Where x and y are the return values of one of the Add*Variable
// functions. Variables not passed keep their coefficient.
func (model *Model) SetObjectiveFunction(coefs []float64, vars []*Variable) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}
	for i, v := range vars {
		if err := model.owns(v); err != nil {
			return err
		}
		if !finite(coefs[i]) {
			return fmt.Errorf("%w: non-finite objective coefficient %v for variable %q", ErrMalformedInput, coefs[i], v.name)
		}
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	for i, v := range vars {
		model.objective[v.index] = coefs[i]
	}

	return nil
}

// SetObjectiveConstant sets the constant term added to the objective
// function.
func (model *Model) SetObjectiveConstant(k float64) error {
	if !finite(k) {
		return fmt.Errorf("%w: non-finite objective constant %v", ErrMalformedInput, k)
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	model.constant = k

	return nil
}

// ObjectiveConstant returns the constant term of the objective function.
func (model *Model) ObjectiveConstant() float64 {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return model.constant
}

// owns returns an error unless v was created by this model.
func (model *Model) owns(v *Variable) error {
	if v == nil {
		return fmt.Errorf("%w: nil variable", ErrMalformedInput)
	}
	if v.model != model {
		return fmt.Errorf("%w: variable %q belongs to a different model", ErrMalformedInput, v.name)
	}

	return nil
}

/* Constraint-related functions */

// ConstraintCount returns the number of individual constraints in
// the model
func (model *Model) ConstraintCount() int {
	model.mu.RLock()
	defer model.mu.RUnlock()

	return len(model.constraints)
}

// AddConstraint adds the equality constraint sum(coefs[i]*vars[i]) = rhs
// to the model. Variables not mentioned have a coefficient of 0; a
// variable mentioned more than once has the sum of its coefficients.
func (model *Model) AddConstraint(rhs float64, vars []*Variable, coefs []float64) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}
	if !finite(rhs) {
		return fmt.Errorf("%w: non-finite right-hand side %v", ErrMalformedInput, rhs)
	}
	for i, v := range vars {
		if err := model.owns(v); err != nil {
			return err
		}
		if !finite(coefs[i]) {
			return fmt.Errorf("%w: non-finite coefficient %v for variable %q", ErrMalformedInput, coefs[i], v.name)
		}
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	row := make([]float64, len(model.vars))
	for i, v := range vars {
		row[v.index] += coefs[i]
	}
	model.constraints = append(model.constraints, constraint{coefs: row, rhs: rhs})

	return nil
}

// Solve attempts to find an optimal solution to the model.
// Information about the solution can be queried from the returned
// SolveResult value, which holds values for all of the model's variables.
func (model *Model) Solve() (*SolveResult, error) {
	return model.SolveWithContext(context.Background())
}

// SolveWithContext wraps Solve() with a context. If the context is
// cancelled or times out, the solution search will be aborted and the
// context error will be returned.
func (model *Model) SolveWithContext(ctx context.Context) (*SolveResult, error) {
	model.mu.RLock()
	n := len(model.vars)
	constraints := make([][]float64, len(model.constraints))
	for i, c := range model.constraints {
		row := make([]float64, n+1)
		copy(row, c.coefs)
		row[n] = c.rhs
		constraints[i] = row
	}
	objective := append(append(make([]float64, 0, n+1), model.objective...), model.constant)
	name, dir, s := model.name, model.dir, model.settings
	model.mu.RUnlock()

	logf(s.logger, "solving model %q: %d variables, %d constraints, %s", name, n, len(constraints), dir)

	return solveObjective(ctx, s, constraints, objective, dir, n)
}

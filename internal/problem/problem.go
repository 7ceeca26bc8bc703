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

// Package problem reads linear programs in canonical form from YAML or JSON
// files and solves them with the simplex package.
//
// A problem file looks like this:
//
//	name: production
//	direction: maximize
//	objective: [6, 5, 0, 0, 0]
//	constraints:
//	  - [4, 7, 1, 0, 0, 49]
//	  - [8, 3, 0, 1, 0, 51]
//	  - [9, 5, 0, 0, 1, 45]
//	report: 2
//	variables: [x1, x2]
//
// The last column of each constraint is its right-hand side. report
// selects how many of the leading variables are part of the solution and
// defaults to all of them. With tableauObjective set, objective is taken
// as an already negated tableau row, see simplex.SolveTableau.
package problem

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/costela/simplex"
)

type Problem struct {
	Name             string      `json:"name,omitempty"`
	Direction        string      `json:"direction"`
	Objective        []float64   `json:"objective"`
	TableauObjective bool        `json:"tableauObjective,omitempty"`
	Constraints      [][]float64 `json:"constraints"`
	Report           *int        `json:"report,omitempty"`
	Variables        []string    `json:"variables,omitempty"`
}

// Load reads and validates the problem stored at path. Problems without a
// name are named after their file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading problem file %s", path)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing problem file %s", path)
	}
	if p.Name == "" {
		p.Name = path
	}

	return p, nil
}

// Parse decodes and validates a problem from YAML or JSON. Unknown fields
// are rejected.
func Parse(data []byte) (*Problem, error) {
	p := new(Problem)
	if err := yaml.UnmarshalStrict(data, p); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the parts of a problem that are not checked by the
// solver itself.
func (p *Problem) Validate() error {
	if _, err := parseDirection(p.Direction); err != nil {
		return err
	}
	if len(p.Constraints) == 0 {
		return errors.New("problem has no constraints")
	}

	n := p.variableCount()
	if p.Report != nil && (*p.Report < 0 || *p.Report > n) {
		return errors.Errorf("cannot report %d variables out of %d", *p.Report, n)
	}
	if len(p.Variables) > n {
		return errors.Errorf("%d variable names given for %d variables", len(p.Variables), n)
	}

	seen := make(map[string]bool, len(p.Variables))
	for _, name := range p.Variables {
		if name == "" {
			return errors.New("empty variable name")
		}
		if seen[name] {
			return errors.Errorf("duplicate variable name %q", name)
		}
		seen[name] = true
	}

	return nil
}

// Maximize reports whether the problem's direction is a maximization.
func (p *Problem) Maximize() bool {
	maximize, _ := parseDirection(p.Direction)
	return maximize
}

func parseDirection(dir string) (maximize bool, err error) {
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "max", "maximize", "maximise":
		return true, nil
	case "min", "minimize", "minimise":
		return false, nil
	default:
		return false, errors.Errorf("unknown direction %q, expected maximize or minimize", dir)
	}
}

// variableCount is the number of variables as given by the first
// constraint row; the solver rejects rows that disagree.
func (p *Problem) variableCount() int {
	if len(p.Constraints) == 0 || len(p.Constraints[0]) == 0 {
		return 0
	}

	return len(p.Constraints[0]) - 1
}

// Reported returns the number of leading variables that are part of the
// solution.
func (p *Problem) Reported() int {
	if p.Report != nil {
		return *p.Report
	}

	return p.variableCount()
}

// VariableNames returns one name per reported variable. Variables without
// a configured name are called x1, x2, ...
func (p *Problem) VariableNames() []string {
	names := make([]string, p.Reported())
	for i := range names {
		if i < len(p.Variables) {
			names[i] = p.Variables[i]
		} else {
			names[i] = fmt.Sprintf("x%d", i+1)
		}
	}

	return names
}

func (p *Problem) Solve(opts ...simplex.Option) (*simplex.SolveResult, error) {
	return p.SolveContext(context.Background(), opts...)
}

// SolveContext validates and solves the problem. Errors returned by the
// solver are wrapped, and can still be matched with errors.Is.
func (p *Problem) SolveContext(ctx context.Context, opts ...simplex.Option) (*simplex.SolveResult, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid problem %s", p.Name)
	}

	solve := simplex.SolveContext
	if p.TableauObjective {
		solve = simplex.SolveTableauContext
	}

	dir := simplex.Minimize
	if p.Maximize() {
		dir = simplex.Maximize
	}

	res, err := solve(ctx, p.Constraints, p.Objective, dir, p.Reported(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "solving %s", p.Name)
	}

	return res, nil
}

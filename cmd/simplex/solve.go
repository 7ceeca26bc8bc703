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

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/costela/simplex"
	"github.com/costela/simplex/internal/problem"
)

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more problem files",
		Long: `Solve one or more problem files given in YAML or JSON.

Each file describes a single linear program in canonical form. Problems are
solved in order; the command fails if any of them has no optimal solution.

Flags can also be given as environment variables, e.g. SIMPLEX_MAX_ITERATIONS.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(v.GetString("output"))
			if err != nil {
				return err
			}

			log := newLogger(cmd, v.GetBool("verbose"))

			solutions := make([]solution, 0, len(args))
			failed := 0
			for _, path := range args {
				s := solveFile(log, path, v)
				if s.Error != "" {
					failed++
				}
				solutions = append(solutions, s)
			}

			if err := format.write(cmd.OutOrStdout(), solutions); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d problems could not be solved", failed, len(args))
			}

			return nil
		},
	}

	addSolveFlags(cmd.Flags())

	return cmd
}

func addSolveFlags(flags *pflag.FlagSet) {
	flags.Int("max-iterations", 0, "maximum number of pivots per problem (0 picks a limit from the problem size)")
	flags.Float64("tolerance", simplex.DefaultTolerance, "tolerance when reading basic variables from the final tableau")
	flags.StringP("output", "o", string(formatText), "output format: text, json or yaml")
}

func solveFile(log *logrus.Logger, path string, v *viper.Viper) solution {
	entry := log.WithField("file", path)

	p, err := problem.Load(path)
	if err != nil {
		entry.WithError(err).Error("could not load problem")
		return solution{Name: path, Error: err.Error()}
	}
	entry = entry.WithField("problem", p.Name)

	opts := []simplex.Option{
		simplex.WithMaxIterations(v.GetInt("max-iterations")),
		simplex.WithTolerance(v.GetFloat64("tolerance")),
	}
	if v.GetBool("verbose") {
		opts = append(opts, simplex.WithLogger(entry))
	}

	entry.Debugf("solving %d constraints, reporting %d variables", len(p.Constraints), p.Reported())

	s := solution{
		Name:      p.Name,
		Direction: "minimize",
	}
	if p.Maximize() {
		s.Direction = "maximize"
	}

	res, err := p.Solve(opts...)
	if err != nil {
		entry.WithError(err).Warn("no solution")
		s.Error = err.Error()
		return s
	}

	objective := res.ObjectiveValue()
	s.Objective = &objective
	s.Iterations = res.Iterations()
	values := res.Values()
	for i, name := range p.VariableNames() {
		s.Variables = append(s.Variables, variableValue{Name: name, Value: values[i]})
	}

	return s
}

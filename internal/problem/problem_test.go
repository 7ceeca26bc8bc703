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

package problem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/simplex"
)

const (
	delta = 0.0000001 // acceptable numerical deviation for test results
)

func TestLoad(t *testing.T) {
	tests := []struct {
		file        string
		name        string
		maximize    bool
		names       []string
		expectedObj float64
		expectedXs  []float64
	}{
		{
			file:        "maximize.yaml",
			name:        "production",
			maximize:    true,
			names:       []string{"x1", "x2"},
			expectedObj: 1725.0 / 43,
			expectedXs:  []float64{70.0 / 43, 261.0 / 43},
		},
		{
			file:        "minimize.yaml",
			name:        "mixed",
			maximize:    false,
			names:       []string{"a", "b", "c"},
			expectedObj: -46.0 / 3,
			expectedXs:  []float64{1.0 / 3, 11.0 / 3, 4},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.file, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", tt.file))
			require.NoError(t, err)

			assert.Equal(t, tt.name, p.Name)
			assert.Equal(t, tt.maximize, p.Maximize())
			assert.Equal(t, tt.names, p.VariableNames())

			res, err := p.Solve()
			require.NoError(t, err)

			assert.InDelta(t, tt.expectedObj, res.ObjectiveValue(), delta)
			values := res.Values()
			require.Len(t, values, len(tt.expectedXs))
			for i, x := range tt.expectedXs {
				assert.InDelta(t, x, values[i], delta)
			}
		})
	}
}

func TestLoadUnbounded(t *testing.T) {
	path := filepath.Join("testdata", "unbounded.json")
	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "unbounded", p.Name)
	assert.Equal(t, 4, p.Reported(), "defaults to all variables")
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, p.VariableNames())

	_, err = p.Solve()
	assert.ErrorIs(t, err, simplex.ErrModelUnbounded)
	assert.Contains(t, err.Error(), "solving unbounded")
}

func TestLoadRagged(t *testing.T) {
	path := filepath.Join("testdata", "ragged.yaml")
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Name, "unnamed problems are named after their file")

	_, err = p.Solve()
	assert.ErrorIs(t, err, simplex.ErrMalformedInput)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading problem file")
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":            "direction: [",
		"unknown field":     "direction: max\nobjectiv: [1]\nconstraints: [[1, 1]]",
		"bad direction":     "direction: sideways\nobjective: [1]\nconstraints: [[1, 1]]",
		"missing direction": "objective: [1]\nconstraints: [[1, 1]]",
		"no constraints":    "direction: max\nobjective: [1]",
		"report too large":  "direction: max\nobjective: [1]\nconstraints: [[1, 1]]\nreport: 2",
		"negative report":   "direction: max\nobjective: [1]\nconstraints: [[1, 1]]\nreport: -1",
		"too many names":    "direction: max\nobjective: [1]\nconstraints: [[1, 1]]\nvariables: [a, b]",
		"duplicate names":   "direction: max\nobjective: [1, 1]\nconstraints: [[1, 0, 1]]\nvariables: [a, a]",
		"empty name":        "direction: max\nobjective: [1, 1]\nconstraints: [[1, 0, 1]]\nvariables: [a, '']",
	}

	for name, data := range tests {
		data := data
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for _, dir := range []string{"max", "Maximize", " MAXIMISE "} {
		maximize, err := parseDirection(dir)
		require.NoError(t, err, dir)
		assert.True(t, maximize, dir)
	}
	for _, dir := range []string{"min", "minimize", "Minimise"} {
		maximize, err := parseDirection(dir)
		require.NoError(t, err, dir)
		assert.False(t, maximize, dir)
	}
}

func TestReportZero(t *testing.T) {
	p, err := Parse([]byte("direction: max\nobjective: [1, 0]\nconstraints: [[1, 1, 3]]\nreport: 0"))
	require.NoError(t, err)

	assert.Empty(t, p.VariableNames())

	res, err := p.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 3, res.ObjectiveValue(), delta)
	assert.Empty(t, res.Values())
}

func TestSolveOptions(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "maximize.yaml"))
	require.NoError(t, err)

	_, err = p.Solve(simplex.WithMaxIterations(1))
	assert.ErrorIs(t, err, simplex.ErrDidNotConverge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.SolveContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveInvalid(t *testing.T) {
	p := &Problem{Name: "broken", Direction: "up"}

	_, err := p.Solve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid problem broken")
}

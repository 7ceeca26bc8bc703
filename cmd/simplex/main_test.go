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
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

var testdata = filepath.Join("..", "..", "internal", "problem", "testdata")

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolveText(t *testing.T) {
	stdout, _, err := run(t, "solve",
		filepath.Join(testdata, "maximize.yaml"),
		filepath.Join(testdata, "minimize.yaml"),
	)
	require.NoError(t, err)

	assert.Equal(t, `production: objective = 40.116
  x1 = 1.628
  x2 = 6.070
mixed: objective = -15.333
  a = 0.333
  b = 3.667
  c = 4.000
`, stdout)
}

func TestSolveFailures(t *testing.T) {
	stdout, _, err := run(t, "solve",
		filepath.Join(testdata, "unbounded.json"),
		filepath.Join(testdata, "missing.yaml"),
		filepath.Join(testdata, "maximize.yaml"),
	)
	assert.EqualError(t, err, "2 of 3 problems could not be solved")

	assert.Contains(t, stdout, "unbounded: no solution: solving unbounded: model is unbounded\n")
	assert.Contains(t, stdout, "missing.yaml: no solution: reading problem file")
	assert.Contains(t, stdout, "production: objective = 40.116\n")
}

func TestSolveJSON(t *testing.T) {
	stdout, _, err := run(t, "solve", "-o", "json", filepath.Join(testdata, "maximize.yaml"))
	require.NoError(t, err)

	var solutions []solution
	require.NoError(t, json.Unmarshal([]byte(stdout), &solutions))
	require.Len(t, solutions, 1)

	s := solutions[0]
	assert.Equal(t, "production", s.Name)
	assert.Equal(t, "maximize", s.Direction)
	assert.Equal(t, 2, s.Iterations)
	require.NotNil(t, s.Objective)
	assert.InDelta(t, 1725.0/43, *s.Objective, 1e-9)
	require.Len(t, s.Variables, 2)
	assert.Equal(t, "x1", s.Variables[0].Name)
	assert.InDelta(t, 70.0/43, s.Variables[0].Value, 1e-9)
}

func TestSolveYAML(t *testing.T) {
	stdout, _, err := run(t, "solve", "--output=yaml", filepath.Join(testdata, "minimize.yaml"))
	require.NoError(t, err)

	var solutions []solution
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &solutions))
	require.Len(t, solutions, 1)
	assert.Equal(t, "minimize", solutions[0].Direction)
	assert.Len(t, solutions[0].Variables, 3)
}

func TestSolveUnknownFormat(t *testing.T) {
	_, _, err := run(t, "solve", "-o", "xml", filepath.Join(testdata, "maximize.yaml"))
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestSolveNoArgs(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.Error(t, err)
}

func TestMaxIterationsFlag(t *testing.T) {
	stdout, _, err := run(t, "solve", "--max-iterations", "1", filepath.Join(testdata, "maximize.yaml"))
	assert.Error(t, err)
	assert.Contains(t, stdout, "iteration limit reached")
}

func TestMaxIterationsEnvironment(t *testing.T) {
	t.Setenv("SIMPLEX_MAX_ITERATIONS", "1")

	stdout, _, err := run(t, "solve", filepath.Join(testdata, "maximize.yaml"))
	assert.Error(t, err)
	assert.Contains(t, stdout, "iteration limit reached")

	// flags take precedence over the environment
	_, _, err = run(t, "solve", "--max-iterations", "10", filepath.Join(testdata, "maximize.yaml"))
	assert.NoError(t, err)
}

func TestInvalidTolerance(t *testing.T) {
	stdout, _, err := run(t, "solve", "--tolerance", "-1", filepath.Join(testdata, "maximize.yaml"))
	assert.Error(t, err)
	assert.Contains(t, stdout, "invalid tolerance")
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "solve", "-v", filepath.Join(testdata, "maximize.yaml"))
	require.NoError(t, err)

	assert.Contains(t, stderr, "pivot 1")
	assert.Contains(t, stderr, "problem=production")

	_, stderr, err = run(t, "solve", filepath.Join(testdata, "maximize.yaml"))
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)
}

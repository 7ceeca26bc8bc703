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
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

type solution struct {
	Name       string          `json:"name"`
	Direction  string          `json:"direction,omitempty"`
	Objective  *float64        `json:"objective,omitempty"`
	Variables  []variableValue `json:"variables,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type variableValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(s); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

func (f format) write(w io.Writer, solutions []solution) error {
	switch f {
	case formatJSON:
		data, err := yaml.Marshal(solutions)
		if err != nil {
			return err
		}
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case formatYAML:
		data, err := yaml.Marshal(solutions)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		for _, s := range solutions {
			if err := writeText(w, s); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeText(w io.Writer, s solution) error {
	if s.Error != "" {
		_, err := fmt.Fprintf(w, "%s: no solution: %s\n", s.Name, s.Error)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s: objective = %.3f\n", s.Name, *s.Objective); err != nil {
		return err
	}
	for _, v := range s.Variables {
		if _, err := fmt.Fprintf(w, "  %s = %.3f\n", v.Name, v.Value); err != nil {
			return err
		}
	}

	return nil
}

/*
 Copyright (C) 2025 Douglas Wayne Potter

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as
 published by the Free Software Foundation, either version 3 of the
 License, or (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package assign

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// ReadJsonMatrix reads a cost matrix instance from a JSON file and
// checks its shape.
func ReadJsonMatrix(filename string) (*Matrix, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var m Matrix
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	checked, err := MakeMatrix(m.Rows, m.Cols, m.Data)
	if err != nil {
		return nil, fmt.Errorf("%s holds a malformed matrix: %w", filename, err)
	}
	return &checked, nil
}

// TestMatrixSpecification describes a matrix fixture in testdata: the
// instance together with its expected optimal assignment cost and its
// expected constrained cost matrix. JSON has no infinities, so entries
// are numbers or the string "Inf", and OptimalCost is null when the
// instance has no complete assignment.
type TestMatrixSpecification struct {
	Name             string   `json:"name"`
	Rows             int      `json:"rows"`
	Cols             int      `json:"cols"`
	Costs            []any    `json:"costs"`
	OptimalCost      *float64 `json:"optimalCost"`
	ConstrainedCosts []any    `json:"constrainedCosts"`
}

// Matrix decodes the fixture's cost matrix.
func (s TestMatrixSpecification) Matrix() (Matrix, error) {
	data, err := decodeEntries(s.Costs)
	if err != nil {
		return Matrix{}, fmt.Errorf("fixture %s: %w", s.Name, err)
	}
	return MakeMatrix(s.Rows, s.Cols, data)
}

// ExpectedConstrainedCosts decodes the fixture's expected constrained
// cost matrix.
func (s TestMatrixSpecification) ExpectedConstrainedCosts() (Matrix, error) {
	data, err := decodeEntries(s.ConstrainedCosts)
	if err != nil {
		return Matrix{}, fmt.Errorf("fixture %s: %w", s.Name, err)
	}
	return MakeMatrix(s.Rows, s.Cols, data)
}

func decodeEntries(entries []any) ([]float64, error) {
	data := make([]float64, len(entries))
	for i, e := range entries {
		switch v := e.(type) {
		case float64:
			data[i] = v
		case string:
			if v != "Inf" {
				return nil, fmt.Errorf("entry %d is %q, want a number or \"Inf\"", i, v)
			}
			data[i] = math.Inf(1)
		default:
			return nil, fmt.Errorf("entry %d has unsupported type %T", i, e)
		}
	}
	return data, nil
}

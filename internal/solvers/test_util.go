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

package solvers

import (
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/snow-abstraction/assign"
	"gotest.tools/v3/assert"
)

func loadMatrixSpecifications(t testing.TB) []assign.TestMatrixSpecification {
	var result []assign.TestMatrixSpecification
	b, err := os.ReadFile("../../testdata/matrix_specifications.json")
	assert.NilError(t, err)
	err = json.Unmarshal(b, &result)
	assert.NilError(t, err)
	return result
}

func mustMakeInstance(t testing.TB, m assign.Matrix) instance {
	ins, err := MakeInstance(m)
	assert.NilError(t, err)
	return ins
}

// approxEqual for totals accumulated in different orders.
func approxEqual(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return math.Abs(a-b) <= 1e-9*(1+math.Abs(a)+math.Abs(b))
}

func assignmentCost(ins instance, rowInd, colInd []int) float64 {
	var total float64
	for k := range rowInd {
		total += ins.at(rowInd[k], colInd[k])
	}
	return total
}

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
	"math"
	"testing"

	"github.com/snow-abstraction/assign"
	"gotest.tools/v3/assert"
)

// End-to-end checks of the exported surface on a small instance.

func smallMatrix(t *testing.T) assign.Matrix {
	t.Helper()
	m, err := assign.MakeMatrix(3, 3, []float64{
		4, 1, 3,
		2, 0, 5,
		3, 2, 2})
	assert.NilError(t, err)
	return m
}

func TestSolve(t *testing.T) {
	m := smallMatrix(t)

	rowInd, colInd, err := Solve(m, false)
	assert.NilError(t, err)
	assert.DeepEqual(t, rowInd, []int{0, 1, 2})
	assert.DeepEqual(t, colInd, []int{1, 0, 2})
}

func TestSolveWithDuals(t *testing.T) {
	m := smallMatrix(t)

	a, err := SolveWithDuals(m)
	assert.NilError(t, err)
	assert.DeepEqual(t, a.Col4Row, []int{1, 0, 2})
	assert.Equal(t, a.TotalCost(m), 5.0)
}

func TestConstrainedCosts(t *testing.T) {
	m := smallMatrix(t)

	total, err := ConstrainedCosts(m)
	assert.NilError(t, err)
	assert.DeepEqual(t, total.Data, []float64{
		6, 5, 6,
		5, 6, 9,
		6, 7, 5})
}

func TestConstrainedCostAgreesWithNaive(t *testing.T) {
	m := assign.MakeRandomIntMatrix(4, 5, 10, 5)

	fast, err := ConstrainedCosts(m)
	assert.NilError(t, err)
	naive, err := ConstrainedCostsNaive(m)
	assert.NilError(t, err)
	assert.DeepEqual(t, fast, naive)

	single, err := ConstrainedCost(1, 2, m)
	assert.NilError(t, err)
	assert.Equal(t, single, fast.At(1, 2))
}

func TestSolveWithRemovedRowAndCol(t *testing.T) {
	m := smallMatrix(t)

	a, err := SolveWithDuals(m)
	assert.NilError(t, err)

	withoutRow, err := SolveWithRemovedRow(m, 0, a, false)
	assert.NilError(t, err)
	var cost float64
	for i, j := range withoutRow.Col4Row {
		if i != 0 {
			cost += m.At(i, j)
		}
	}
	// Rows 1 and 2 alone assign optimally for 2.
	assert.Equal(t, cost, 2.0)

	// Removing an assigned column needs spare columns, so use the wide
	// variant of the instance.
	wide, err := assign.MakeMatrix(3, 4, []float64{
		4, 1, 3, 6,
		2, 0, 5, 7,
		3, 2, 2, 8})
	assert.NilError(t, err)

	a, err = SolveWithDuals(wide)
	assert.NilError(t, err)

	withoutCol, err := SolveWithRemovedCol(wide, a.Col4Row[0], a, false)
	assert.NilError(t, err)
	assert.Assert(t, withoutCol.Col4Row[0] != a.Col4Row[0])
	assert.Equal(t, withoutCol.TotalCost(wide), 10.0)
}

func TestErrorsSurfaceSentinels(t *testing.T) {
	_, _, err := Solve(assign.Matrix{Rows: 2, Cols: 2, Data: []float64{1, 2, 3}}, false)
	assert.ErrorIs(t, err, assign.ErrInvalidShape)

	_, _, err = Solve(assign.Matrix{
		Rows: 1, Cols: 1, Data: []float64{math.NaN()}}, false)
	assert.ErrorIs(t, err, assign.ErrInvalidValue)

	_, _, err = Solve(assign.Matrix{
		Rows: 1, Cols: 1, Data: []float64{math.Inf(1)}}, false)
	assert.ErrorIs(t, err, assign.ErrInfeasible)
}

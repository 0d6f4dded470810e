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
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/snow-abstraction/assign"
	"gotest.tools/v3/assert"
)

var inf = math.Inf(1)

// Known instances and their optimal per-row assignment costs, in row
// order. Each instance is also solved negated with maximize and in
// both orientations.
var solveCases = []struct {
	name          string
	rows, cols    int
	costs         []float64
	expectedCosts []float64
}{
	{
		name: "square",
		rows: 3, cols: 3,
		costs: []float64{
			400, 150, 400,
			400, 450, 600,
			300, 225, 300},
		expectedCosts: []float64{150, 400, 300},
	},
	{
		name: "rectangular variant",
		rows: 3, cols: 4,
		costs: []float64{
			400, 150, 400, 1,
			400, 450, 600, 2,
			300, 225, 300, 3},
		expectedCosts: []float64{150, 2, 300},
	},
	{
		name: "square two",
		rows: 3, cols: 3,
		costs: []float64{
			10, 10, 8,
			9, 8, 1,
			9, 7, 4},
		expectedCosts: []float64{10, 1, 7},
	},
	{
		name: "rectangular variant two",
		rows: 3, cols: 4,
		costs: []float64{
			10, 10, 8, 11,
			9, 8, 1, 1,
			9, 7, 4, 10},
		expectedCosts: []float64{10, 1, 4},
	},
	{
		name: "no columns",
		rows: 2, cols: 0,
		costs:         []float64{},
		expectedCosts: []float64{},
	},
	{
		name: "square with positive infinities",
		rows: 3, cols: 3,
		costs: []float64{
			10, inf, inf,
			inf, inf, 1,
			inf, 7, inf},
		expectedCosts: []float64{10, 1, 7},
	},
}

func checkSolution(
	t *testing.T, ins instance, rowInd, colInd []int, expectedCosts []float64,
) {
	t.Helper()

	assert.Equal(t, len(rowInd), len(expectedCosts))
	assert.Equal(t, len(colInd), len(expectedCosts))

	seenCol := make(map[int]bool)
	for k := range rowInd {
		if k > 0 {
			assert.Assert(t, rowInd[k-1] < rowInd[k], "row indices must be sorted")
		}
		assert.Assert(t, !seenCol[colInd[k]], "columns must be distinct")
		seenCol[colInd[k]] = true
	}

	for k := range rowInd {
		assert.Equal(t, ins.at(rowInd[k], colInd[k]), expectedCosts[k])
	}
}

func TestSolveKnownInstances(t *testing.T) {
	for _, sign := range []float64{1, -1} {
		maximize := sign == -1
		for _, tc := range solveCases {
			name := fmt.Sprintf("%s sign %g", tc.name, sign)
			t.Run(name, func(t *testing.T) {
				costs := make([]float64, len(tc.costs))
				for i, c := range tc.costs {
					costs[i] = sign * c
				}
				expected := make([]float64, len(tc.expectedCosts))
				for i, c := range tc.expectedCosts {
					expected[i] = sign * c
				}

				m, err := assign.MakeMatrix(tc.rows, tc.cols, costs)
				assert.NilError(t, err)
				ins := mustMakeInstance(t, m)

				rowInd, colInd, err := Solve(ins, maximize)
				assert.NilError(t, err)
				checkSolution(t, ins, rowInd, colInd, expected)

				// The transposed instance has the same optimal costs.
				tIns := ins.transpose()
				rowInd, colInd, err = Solve(tIns, maximize)
				assert.NilError(t, err)

				actual := make([]float64, len(rowInd))
				for k := range rowInd {
					actual[k] = tIns.at(rowInd[k], colInd[k])
				}
				sort.Float64s(actual)
				sortedExpected := make([]float64, len(expected))
				copy(sortedExpected, expected)
				sort.Float64s(sortedExpected)
				assert.DeepEqual(t, actual, sortedExpected)
			})
		}
	}
}

func TestSolveInputValidation(t *testing.T) {
	_, err := assign.MakeMatrix(2, 3, []float64{1, 2, 3})
	assert.ErrorIs(t, err, assign.ErrInvalidShape)

	_, err = assign.MakeMatrix(-1, 3, nil)
	assert.ErrorIs(t, err, assign.ErrInvalidShape)

	nan := assign.Matrix{Rows: 2, Cols: 2, Data: []float64{1, math.NaN(), 3, 4}}
	_, err = MakeInstance(nan)
	assert.ErrorIs(t, err, assign.ErrInvalidValue)

	negInf := assign.Matrix{Rows: 2, Cols: 2, Data: []float64{1, math.Inf(-1), 3, 4}}
	ins := mustMakeInstance(t, negInf)
	_, _, err = Solve(ins, false)
	assert.ErrorIs(t, err, assign.ErrInvalidValue)

	// Negating for maximization makes -Inf a forbidden marker and +Inf
	// the invalid value.
	_, _, err = Solve(ins, true)
	assert.NilError(t, err)
	posInf := assign.Matrix{Rows: 2, Cols: 2, Data: []float64{1, inf, 3, 4}}
	_, _, err = Solve(mustMakeInstance(t, posInf), true)
	assert.ErrorIs(t, err, assign.ErrInvalidValue)
}

func TestSolveInfeasibleInstances(t *testing.T) {
	// A square instance with a column of only +Inf cannot leave the
	// column out.
	m := assign.Matrix{Rows: 3, Cols: 3, Data: []float64{
		inf, 0, 0,
		inf, 0, 0,
		inf, 0, 0}}
	_, _, err := Solve(mustMakeInstance(t, m), false)
	assert.ErrorIs(t, err, assign.ErrInfeasible)

	// A row of only +Inf can never be assigned.
	m = assign.Matrix{Rows: 2, Cols: 3, Data: []float64{
		inf, inf, inf,
		1, 2, 3}}
	_, _, err = Solve(mustMakeInstance(t, m), false)
	assert.ErrorIs(t, err, assign.ErrInfeasible)

	// Every row and column has a finite entry but two rows compete for
	// the single finite column.
	m = assign.Matrix{Rows: 3, Cols: 3, Data: []float64{
		1, inf, inf,
		2, inf, inf,
		inf, 4, 5}}
	_, _, err = Solve(mustMakeInstance(t, m), false)
	assert.ErrorIs(t, err, assign.ErrInfeasible)
}

func TestSolveWithDualsRequiresWideMatrix(t *testing.T) {
	m := assign.MakeRandomMatrix(4, 3, 7)
	_, err := SolveWithDuals(mustMakeInstance(t, m))
	assert.ErrorIs(t, err, assign.ErrInvalidShape)
}

func TestSolveAgainstBruteForce(t *testing.T) {
	shapes := []struct{ rows, cols int }{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {3, 6}, {2, 7}, {4, 6},
	}

	for _, shape := range shapes {
		for seed := int64(0); seed < 20; seed++ {
			// Integer costs make ties likely.
			m := assign.MakeRandomIntMatrix(shape.rows, shape.cols, 10, seed)
			ins := mustMakeInstance(t, m)

			rowInd, colInd, err := Solve(ins, false)
			assert.NilError(t, err)

			_, _, bruteTotal, err := SolveByBruteForce(ins)
			assert.NilError(t, err)

			total := assignmentCost(ins, rowInd, colInd)
			assert.Assert(t, approxEqual(total, bruteTotal),
				"shape %v seed %d: got %v, brute force %v", shape, seed, total, bruteTotal)
		}
	}
}

func TestSolveMaximizeEqualsNegatedSolve(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m := assign.MakeRandomMatrix(5, 8, seed)
		ins := mustMakeInstance(t, m)

		maxRowInd, maxColInd, err := Solve(ins, true)
		assert.NilError(t, err)
		negRowInd, negColInd, err := Solve(ins.negate(), false)
		assert.NilError(t, err)

		maxTotal := assignmentCost(ins, maxRowInd, maxColInd)
		negTotal := -assignmentCost(ins.negate(), negRowInd, negColInd)
		assert.Assert(t, approxEqual(maxTotal, negTotal))
	}
}

func TestSolveWithDualsCertifiesOptimality(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m := assign.MakeRandomMatrix(6, 9, seed)
		ins := mustMakeInstance(t, m)

		a, err := SolveWithDuals(ins)
		assert.NilError(t, err)

		// The two directions must agree and describe a permutation.
		for i, j := range a.Col4Row {
			assert.Assert(t, j != unassigned)
			assert.Equal(t, a.Row4Col[j], i)
		}

		// Dual feasibility with complementary slackness on assigned
		// pairs.
		for i := 0; i < ins.nRows; i++ {
			for j := 0; j < ins.nCols; j++ {
				reduced := ins.at(i, j) - a.U[i] - a.V[j]
				assert.Assert(t, reduced >= -1e-9,
					"seed %d: reduced cost %v at (%d, %d)", seed, reduced, i, j)
			}
			j := a.Col4Row[i]
			reduced := ins.at(i, j) - a.U[i] - a.V[j]
			assert.Assert(t, math.Abs(reduced) <= 1e-9)
		}

		// Weak duality is tight at the optimum.
		var primal, dual float64
		for i, j := range a.Col4Row {
			primal += ins.at(i, j)
			dual += a.U[i] + a.V[j]
		}
		assert.Assert(t, approxEqual(primal, dual))
	}
}

func TestSolveKnownOptimalCosts(t *testing.T) {
	for _, spec := range loadMatrixSpecifications(t) {
		spec := spec
		t.Run(spec.Name, func(t *testing.T) {
			m, err := spec.Matrix()
			assert.NilError(t, err)
			ins := mustMakeInstance(t, m)

			rowInd, colInd, err := Solve(ins, false)
			if spec.OptimalCost == nil {
				assert.ErrorIs(t, err, assign.ErrInfeasible)
				return
			}
			assert.NilError(t, err)
			assert.Assert(t, approxEqual(assignmentCost(ins, rowInd, colInd), *spec.OptimalCost))
		})
	}
}

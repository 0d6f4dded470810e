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

// Deliberately naive reference implementations. They are far too slow
// for real instances but their simplicity makes them trustworthy
// oracles for the tests and baselines for the benchmarks.
package solvers

import (
	"fmt"
	"math"
	"sort"

	"github.com/snow-abstraction/assign"
	"gonum.org/v1/gonum/stat/combin"
)

// SolveByBruteForce finds a minimum cost complete assignment by trying
// every permutation of columns. Only usable for tiny instances.
func SolveByBruteForce(ins instance) ([]int, []int, float64, error) {
	if ins.nRows > ins.nCols {
		rowInd, colInd, total, err := SolveByBruteForce(ins.transpose())
		if err != nil {
			return nil, nil, 0, err
		}
		// Swap roles back and reorder so the row indices are sorted.
		order := make([]int, len(rowInd))
		for k := range order {
			order[k] = k
		}
		sort.Slice(order, func(a, b int) bool { return colInd[order[a]] < colInd[order[b]] })

		sortedRowInd := make([]int, len(order))
		sortedColInd := make([]int, len(order))
		for k, o := range order {
			sortedRowInd[k] = colInd[o]
			sortedColInd[k] = rowInd[o]
		}
		return sortedRowInd, sortedColInd, total, nil
	}

	if ins.nRows == 0 {
		return []int{}, []int{}, 0, nil
	}

	bestTotal := math.Inf(1)
	var bestPerm []int

	gen := combin.NewPermutationGenerator(ins.nCols, ins.nRows)
	perm := make([]int, ins.nRows)
	for gen.Next() {
		gen.Permutation(perm)

		total := 0.0
		for i, j := range perm {
			total += ins.at(i, j)
		}

		if total < bestTotal {
			bestTotal = total
			if bestPerm == nil {
				bestPerm = make([]int, ins.nRows)
			}
			copy(bestPerm, perm)
		}
	}

	if bestPerm == nil {
		return nil, nil, 0, fmt.Errorf(
			"%w: every complete assignment has infinite cost", assign.ErrInfeasible)
	}

	rowInd := make([]int, ins.nRows)
	for i := range rowInd {
		rowInd[i] = i
	}
	return rowInd, bestPerm, bestTotal, nil
}

// ConstrainedCostsNaive computes the constrained cost matrix one entry
// at a time, each by a full solve on the reduced instance. It is the
// oracle ConstrainedCosts is tested against.
func ConstrainedCostsNaive(ins instance) (assign.Matrix, error) {
	total := assign.Full(ins.nRows, ins.nCols, 0)
	for i := 0; i < ins.nRows; i++ {
		for j := 0; j < ins.nCols; j++ {
			t, err := ConstrainedCost(i, j, ins)
			if err != nil {
				return assign.Matrix{}, err
			}
			total.Set(i, j, t)
		}
	}
	return total, nil
}

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

// A shortest-augmenting-path solver for the linear sum assignment
// problem (Jonker-Volgenant style). Each augmenting step extends the
// partial assignment by one row while keeping the dual potentials
// feasible, so the finished assignment is optimal by complementary
// slackness.
package solvers

import (
	"fmt"
	"math"
	"sort"

	"github.com/snow-abstraction/assign"
)

// augment finds the shortest augmenting path from curRow over the
// reduced costs, updates the dual potentials and flips the path so
// curRow becomes assigned. The state must satisfy dual feasibility and
// complementary slackness for the rows assigned so far.
//
// The search is Dijkstra-like: remaining holds the unvisited columns,
// shortestPathCosts the cheapest known reduced-cost distance to each
// column and path the row preceding each column on that route.
func augment(ins instance, curRow int, s *state) error {
	minVal := 0.0
	rowIdx := curRow

	path := make([]int, ins.nCols)
	shortestPathCosts := make([]float64, ins.nCols)
	for j := range path {
		path[j] = unassigned
		shortestPathCosts[j] = math.Inf(1)
	}

	// The row and column vertices visited by this search, in order.
	visitedRows := make([]int, 0, ins.nRows)
	visitedCols := make([]int, 0, ins.nCols)

	remaining := make([]int, ins.nCols)
	for j := range remaining {
		remaining[j] = j
	}

	sink := unassigned
	for sink == unassigned {
		visitedRows = append(visitedRows, rowIdx)

		idxMin := unassigned
		lowest := math.Inf(1)
		for k, colIdx := range remaining {
			r := minVal + ins.at(rowIdx, colIdx) - s.u[rowIdx] - s.v[colIdx]
			if r < shortestPathCosts[colIdx] {
				path[colIdx] = rowIdx
				shortestPathCosts[colIdx] = r
			}

			// On ties prefer an unassigned column. Without this the
			// search can shuttle between equal-cost zero-slack edges
			// instead of terminating at a free column.
			if shortestPathCosts[colIdx] < lowest ||
				(shortestPathCosts[colIdx] == lowest && s.row4col[colIdx] == unassigned) {
				lowest = shortestPathCosts[colIdx]
				idxMin = k
			}
		}

		minVal = lowest
		if math.IsInf(minVal, 1) {
			return fmt.Errorf(
				"%w: no augmenting path from row %d", assign.ErrInfeasible, curRow)
		}

		colIdx := remaining[idxMin]
		if s.row4col[colIdx] == unassigned {
			sink = colIdx
		} else {
			rowIdx = s.row4col[colIdx]
		}

		visitedCols = append(visitedCols, colIdx)
		remaining[idxMin] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	// Update the duals. The path distance at curRow is zero by
	// convention, so its potential grows by the full path length.
	for _, i := range visitedRows {
		if i == curRow {
			s.u[i] += minVal
		} else {
			s.u[i] += minVal - shortestPathCosts[s.col4row[i]]
		}
	}

	for _, j := range visitedCols {
		s.v[j] -= minVal - shortestPathCosts[j]
	}

	// Flip the path by walking backwards from the sink.
	colIdx := sink
	for {
		i := path[colIdx]
		s.row4col[colIdx] = i
		s.col4row[i], colIdx = colIdx, s.col4row[i]
		if i == curRow {
			break
		}
	}

	return nil
}

// solveLSAP builds an optimal assignment with duals by augmenting once
// per row. The instance must not have more rows than columns.
func solveLSAP(ins instance) (*state, error) {
	if ins.nRows > ins.nCols {
		return nil, fmt.Errorf(
			"%w: expected no more rows than columns, got %d by %d",
			assign.ErrInvalidShape, ins.nRows, ins.nCols)
	}

	if err := checkSolvable(ins); err != nil {
		return nil, err
	}

	s := newState(ins.nRows, ins.nCols)
	for curRow := 0; curRow < ins.nRows; curRow++ {
		if err := augment(ins, curRow, s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// checkSolvable rejects instances that cannot have a complete
// assignment regardless of the search: a row of only +Inf can never be
// matched, and neither can a column of only +Inf when no column can be
// left out.
func checkSolvable(ins instance) error {
	for i := 0; i < ins.nRows; i++ {
		allForbidden := true
		for _, c := range ins.row(i) {
			if !math.IsInf(c, 1) {
				allForbidden = false
				break
			}
		}
		if allForbidden {
			return fmt.Errorf("%w: row %d is entirely +Inf", assign.ErrInfeasible, i)
		}
	}

	if ins.nRows == ins.nCols {
		for j := 0; j < ins.nCols; j++ {
			allForbidden := true
			for i := 0; i < ins.nRows; i++ {
				if !math.IsInf(ins.at(i, j), 1) {
					allForbidden = false
					break
				}
			}
			if allForbidden {
				return fmt.Errorf(
					"%w: column %d is entirely +Inf", assign.ErrInfeasible, j)
			}
		}
	}

	return nil
}

// Solve returns an optimal assignment as parallel row and column index
// slices, compatible with scipy's linear_sum_assignment: the row
// indices come out sorted and the total cost is the sum of the matrix
// entries at the returned pairs. Rectangular instances are allowed in
// both orientations.
func Solve(ins instance, maximize bool) ([]int, []int, error) {
	if maximize {
		ins = ins.negate()
	}

	// After an eventual negation only +Inf may remain as the forbidden
	// marker, so a maximization rejects +Inf inputs and accepts -Inf.
	if err := ins.checkNoNegInf(); err != nil {
		return nil, nil, err
	}

	if ins.nRows > ins.nCols {
		st, err := solveLSAP(ins.transpose())
		if err != nil {
			return nil, nil, err
		}

		// In the transposed solve col4row[j] is the original row matched
		// to original column j. Reorder so the row indices are sorted.
		colInd := make([]int, ins.nCols)
		for j := range colInd {
			colInd[j] = j
		}
		sort.Slice(colInd, func(a, b int) bool {
			return st.col4row[colInd[a]] < st.col4row[colInd[b]]
		})

		rowInd := make([]int, ins.nCols)
		for k, j := range colInd {
			rowInd[k] = st.col4row[j]
		}
		return rowInd, colInd, nil
	}

	st, err := solveLSAP(ins)
	if err != nil {
		return nil, nil, err
	}

	rowInd := make([]int, ins.nRows)
	colInd := make([]int, ins.nRows)
	for i := range rowInd {
		rowInd[i] = i
		colInd[i] = st.col4row[i]
	}
	return rowInd, colInd, nil
}

// SolveWithDuals solves the instance and returns the assignment
// together with its dual potentials. The instance must not have more
// rows than columns.
func SolveWithDuals(ins instance) (assign.Assignment, error) {
	if err := ins.checkNoNegInf(); err != nil {
		return assign.Assignment{}, err
	}

	st, err := solveLSAP(ins)
	if err != nil {
		return assign.Assignment{}, err
	}
	return st.assignment(), nil
}

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

// Incremental re-solves: starting from an optimal assignment with its
// duals, remove one row or one column and repair the solution with a
// single augmenting step instead of solving from scratch.
package solvers

import (
	"fmt"
	"math"

	"github.com/snow-abstraction/assign"
	"gonum.org/v1/gonum/floats"
)

// solveWithRemovedRow re-optimizes s as if rowRemoved were deleted from
// the instance. The removed row stays assigned to a column so the array
// shapes are stable, but its costs are treated as uniformly zero and it
// contributes nothing. The duals are updated accordingly.
func solveWithRemovedRow(ins instance, rowRemoved int, s *state) error {
	// The augmenting step below gives the removed row zero costs, so its
	// edge to the freed column has the smallest reduced cost when no
	// other assigned column carries a larger potential. The search would
	// then stop at the freed column at once: the remaining assignment is
	// already optimal.
	freedCol := s.col4row[rowRemoved]
	improvable := false
	for i := 0; i < ins.nRows; i++ {
		if s.v[s.col4row[i]] > s.v[freedCol] {
			improvable = true
			break
		}
	}
	if !improvable {
		return nil
	}

	zeroed := ins.clone()
	removedRowCosts := zeroed.row(rowRemoved)
	for j := range removedRowCosts {
		removedRowCosts[j] = 0
	}

	// Re-establish dual feasibility for the zeroed row.
	slack := make([]float64, ins.nCols)
	for j := range slack {
		slack[j] = removedRowCosts[j] - s.v[j]
	}
	s.u[rowRemoved] = floats.Min(slack)

	// One augmenting step on the square submatrix restricted to the
	// columns of the current assignment. In this submatrix the freed
	// column has the same index as the removed row, so the substate
	// starts as the identity permutation with that index unassigned.
	m := ins.nRows
	subCosts := make([]float64, m*m)
	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			subCosts[i*m+k] = zeroed.at(i, s.col4row[k])
		}
	}
	subIns := instance{nRows: m, nCols: m, costs: subCosts}

	subV := make([]float64, m)
	for k := 0; k < m; k++ {
		subV[k] = s.v[s.col4row[k]]
	}

	subCol4Row := make([]int, m)
	subRow4Col := make([]int, m)
	for i := 0; i < m; i++ {
		subCol4Row[i] = i
		subRow4Col[i] = i
	}
	subCol4Row[rowRemoved] = unassigned
	subRow4Col[rowRemoved] = unassigned

	subState := &state{col4row: subCol4Row, row4col: subRow4Col, u: s.u, v: subV}
	if err := augment(subIns, rowRemoved, subState); err != nil {
		return err
	}

	// Expand the subresult back into the full state. Every field that
	// indexes through col4row must be updated before col4row itself.
	oldCol4Row := make([]int, m)
	copy(oldCol4Row, s.col4row)
	for k := 0; k < m; k++ {
		s.row4col[oldCol4Row[k]] = subRow4Col[k]
		s.v[oldCol4Row[k]] = subV[k]
	}
	for i := 0; i < m; i++ {
		s.col4row[i] = oldCol4Row[subCol4Row[i]]
	}

	return nil
}

// solveWithRemovedCol re-optimizes s as if colRemoved were deleted from
// the instance: the row it frees up must find a column among the
// survivors via one augmenting step.
func solveWithRemovedCol(ins instance, colRemoved int, s *state) error {
	rowFreed := s.row4col[colRemoved]
	if rowFreed == unassigned {
		return nil
	}

	forbidden := ins.clone()
	for i := 0; i < ins.nRows; i++ {
		forbidden.costs[i*ins.nCols+colRemoved] = math.Inf(1)
	}

	s.col4row[rowFreed] = unassigned
	s.row4col[colRemoved] = unassigned

	return augment(forbidden, rowFreed, s)
}

// SolveWithRemovedRow returns the optimum of the instance with one row
// logically removed, reusing the assignment and duals of a prior solve
// of the same instance. The removed row remains assigned in the result
// as a zero-cost sentinel. When modifyInPlace is set the argument's
// slices are updated directly, otherwise they are cloned first.
func SolveWithRemovedRow(
	ins instance, rowRemoved int, a assign.Assignment, modifyInPlace bool,
) (assign.Assignment, error) {
	if rowRemoved < 0 || rowRemoved >= ins.nRows {
		return assign.Assignment{}, fmt.Errorf(
			"%w: row %d out of range for %d rows",
			assign.ErrInvalidShape, rowRemoved, ins.nRows)
	}

	if !modifyInPlace {
		a = a.Clone()
	}

	if err := solveWithRemovedRow(ins, rowRemoved, stateFromAssignment(a)); err != nil {
		return assign.Assignment{}, err
	}
	return a, nil
}

// SolveWithRemovedCol returns the optimum of the instance with one
// column removed, reusing a prior solve. If the column was unassigned
// the assignment is returned unchanged. When modifyInPlace is set the
// argument's slices are updated directly, otherwise they are cloned
// first.
func SolveWithRemovedCol(
	ins instance, colRemoved int, a assign.Assignment, modifyInPlace bool,
) (assign.Assignment, error) {
	if colRemoved < 0 || colRemoved >= ins.nCols {
		return assign.Assignment{}, fmt.Errorf(
			"%w: column %d out of range for %d columns",
			assign.ErrInvalidShape, colRemoved, ins.nCols)
	}

	if !modifyInPlace {
		a = a.Clone()
	}

	if err := solveWithRemovedCol(ins, colRemoved, stateFromAssignment(a)); err != nil {
		return assign.Assignment{}, err
	}
	return a, nil
}

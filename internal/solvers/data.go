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

	"github.com/snow-abstraction/assign"
)

// unassigned is the sentinel for rows and columns without a partner.
const unassigned = -1

// instance is a checked dense cost matrix. NaN entries are rejected by
// MakeInstance; -Inf entries are rejected by checkNoNegInf once the
// solve direction is known.
type instance struct {
	nRows int
	nCols int
	// costs is row-major with length nRows*nCols.
	costs []float64
}

// MakeInstance checks a matrix and wraps it for the solvers. The shape
// must be consistent and the entries must not contain NaN. -Inf is
// checked later, once the solve direction is known, since negating for
// maximization flips the sign of the forbidden marker.
func MakeInstance(m assign.Matrix) (instance, error) {
	if m.Rows < 0 || m.Cols < 0 {
		return instance{}, fmt.Errorf(
			"%w: dimensions must be non-negative, got %d by %d",
			assign.ErrInvalidShape, m.Rows, m.Cols)
	}

	if len(m.Data) != m.Rows*m.Cols {
		return instance{}, fmt.Errorf(
			"%w: a %d by %d matrix needs %d entries but %d were supplied",
			assign.ErrInvalidShape, m.Rows, m.Cols, m.Rows*m.Cols, len(m.Data))
	}

	for i, c := range m.Data {
		if math.IsNaN(c) {
			return instance{}, fmt.Errorf(
				"%w: entry %d is NaN", assign.ErrInvalidValue, i)
		}
	}

	return instance{nRows: m.Rows, nCols: m.Cols, costs: m.Data}, nil
}

// checkNoNegInf rejects -Inf entries. Only +Inf marks a forbidden
// assignment in a minimization.
func (ins instance) checkNoNegInf() error {
	for i, c := range ins.costs {
		if math.IsInf(c, -1) {
			return fmt.Errorf("%w: entry %d is -Inf", assign.ErrInvalidValue, i)
		}
	}
	return nil
}

func (ins instance) at(i, j int) float64 {
	return ins.costs[i*ins.nCols+j]
}

func (ins instance) row(i int) []float64 {
	return ins.costs[i*ins.nCols : (i+1)*ins.nCols]
}

func (ins instance) clone() instance {
	costs := make([]float64, len(ins.costs))
	copy(costs, ins.costs)
	return instance{nRows: ins.nRows, nCols: ins.nCols, costs: costs}
}

func (ins instance) transpose() instance {
	costs := make([]float64, len(ins.costs))
	for i := 0; i < ins.nRows; i++ {
		for j := 0; j < ins.nCols; j++ {
			costs[j*ins.nRows+i] = ins.costs[i*ins.nCols+j]
		}
	}
	return instance{nRows: ins.nCols, nCols: ins.nRows, costs: costs}
}

// oneHot returns a length-n mask that is true only at idx.
func oneHot(idx, n int) []bool {
	mask := make([]bool, n)
	mask[idx] = true
	return mask
}

// dropRowCol returns the instance with row i and column j omitted.
func (ins instance) dropRowCol(i, j int) instance {
	rowDropped := oneHot(i, ins.nRows)
	colDropped := oneHot(j, ins.nCols)

	costs := make([]float64, 0, (ins.nRows-1)*(ins.nCols-1))
	for r := 0; r < ins.nRows; r++ {
		if rowDropped[r] {
			continue
		}
		for c := 0; c < ins.nCols; c++ {
			if colDropped[c] {
				continue
			}
			costs = append(costs, ins.at(r, c))
		}
	}

	return instance{nRows: ins.nRows - 1, nCols: ins.nCols - 1, costs: costs}
}

// negate returns the instance with every cost negated, for solving
// maximization problems as minimizations.
func (ins instance) negate() instance {
	costs := make([]float64, len(ins.costs))
	for i, c := range ins.costs {
		costs[i] = -c
	}
	return instance{nRows: ins.nRows, nCols: ins.nCols, costs: costs}
}

// state is the mutable assignment being built by the augmenting steps:
// both directions of the bijection plus the dual potentials. A state is
// owned by exactly one solve at a time.
type state struct {
	col4row []int
	row4col []int
	u       []float64
	v       []float64
}

// newState creates an empty state: nothing assigned, zero duals.
func newState(nRows, nCols int) *state {
	s := &state{
		col4row: make([]int, nRows),
		row4col: make([]int, nCols),
		u:       make([]float64, nRows),
		v:       make([]float64, nCols),
	}
	for i := range s.col4row {
		s.col4row[i] = unassigned
	}
	for j := range s.row4col {
		s.row4col[j] = unassigned
	}
	return s
}

func (s *state) clone() *state {
	c := &state{
		col4row: make([]int, len(s.col4row)),
		row4col: make([]int, len(s.row4col)),
		u:       make([]float64, len(s.u)),
		v:       make([]float64, len(s.v)),
	}
	copy(c.col4row, s.col4row)
	copy(c.row4col, s.row4col)
	copy(c.u, s.u)
	copy(c.v, s.v)
	return c
}

// assignment converts the state to the exported representation.
func (s *state) assignment() assign.Assignment {
	a := assign.Assignment{
		Col4Row: make([]int, len(s.col4row)),
		Row4Col: make([]int, len(s.row4col)),
		U:       make([]float64, len(s.u)),
		V:       make([]float64, len(s.v)),
	}
	copy(a.Col4Row, s.col4row)
	copy(a.Row4Col, s.row4col)
	copy(a.U, s.u)
	copy(a.V, s.v)
	return a
}

// stateFromAssignment adopts an exported assignment as solver state. The
// slices are shared, so in-place solves mutate the caller's assignment.
func stateFromAssignment(a assign.Assignment) *state {
	return &state{col4row: a.Col4Row, row4col: a.Row4Col, u: a.U, v: a.V}
}

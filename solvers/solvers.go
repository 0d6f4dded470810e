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

// Package solvers is the public entry point of the assignment solvers.
// Each function validates its matrix and delegates to the internal
// implementation.
package solvers

import (
	"github.com/snow-abstraction/assign"
	internal "github.com/snow-abstraction/assign/internal/solvers"
)

// Solve returns an optimal assignment of rows to distinct columns as
// parallel index slices, with the row indices sorted ascending. The
// total cost is the sum of the matrix entries at the returned pairs.
// Set maximize to find a maximum cost assignment instead; forbidden
// (+Inf) entries are then rejected.
func Solve(m assign.Matrix, maximize bool) (rowInd, colInd []int, err error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return nil, nil, err
	}
	return internal.Solve(ins, maximize)
}

// SolveWithDuals solves the minimization problem and returns the full
// assignment state: both directions of the bijection and the dual
// potentials certifying optimality. The matrix must not have more rows
// than columns.
func SolveWithDuals(m assign.Matrix) (assign.Assignment, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return assign.Assignment{}, err
	}
	return internal.SolveWithDuals(ins)
}

// SolveWithRemovedRow re-optimizes a prior solution of m as if row
// rowRemoved were deleted, in O(n^2) instead of a fresh solve. The
// removed row remains assigned as a zero-cost sentinel so the slices
// keep their shapes. With modifyInPlace the slices of a are mutated,
// otherwise they are cloned first.
func SolveWithRemovedRow(
	m assign.Matrix, rowRemoved int, a assign.Assignment, modifyInPlace bool,
) (assign.Assignment, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return assign.Assignment{}, err
	}
	return internal.SolveWithRemovedRow(ins, rowRemoved, a, modifyInPlace)
}

// SolveWithRemovedCol re-optimizes a prior solution of m as if column
// colRemoved were deleted. If the column was not part of the solution
// the assignment is returned unchanged. With modifyInPlace the slices
// of a are mutated, otherwise they are cloned first.
func SolveWithRemovedCol(
	m assign.Matrix, colRemoved int, a assign.Assignment, modifyInPlace bool,
) (assign.Assignment, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return assign.Assignment{}, err
	}
	return internal.SolveWithRemovedCol(ins, colRemoved, a, modifyInPlace)
}

// ConstrainedCosts returns the matrix T where T[i, j] is the minimum
// total assignment cost subject to row i being assigned to column j,
// with +Inf marking infeasible constraints. When m itself has no
// complete assignment every entry of T is +Inf.
func ConstrainedCosts(m assign.Matrix) (assign.Matrix, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return assign.Matrix{}, err
	}
	return internal.ConstrainedCosts(ins)
}

// ConstrainedCost computes the single constrained total for pinning
// row i to column j by solving the reduced problem from scratch. It
// returns m[i, j] unchanged when that entry is not finite and +Inf
// when the reduced problem is infeasible.
func ConstrainedCost(i, j int, m assign.Matrix) (float64, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return 0, err
	}
	return internal.ConstrainedCost(i, j, ins)
}

// ConstrainedCostsNaive is the entry-by-entry reference implementation
// of ConstrainedCosts. It is exposed for testing and benchmarking only.
func ConstrainedCostsNaive(m assign.Matrix) (assign.Matrix, error) {
	ins, err := internal.MakeInstance(m)
	if err != nil {
		return assign.Matrix{}, err
	}
	return internal.ConstrainedCostsNaive(ins)
}

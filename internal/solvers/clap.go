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

// The constrained assignment driver. For every entry (i, j) it computes
// the minimum total cost of a complete assignment subject to row i
// being assigned to column j. One unconstrained solve plus one
// incremental removed-row solve per row cover most entries; the entries
// where the constraint steals a column from another row are repaired
// locally through the per-row column ranking, falling back to an exact
// incremental removed-column solve when the local repair is ambiguous.
package solvers

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/snow-abstraction/assign"
	"gonum.org/v1/gonum/floats"
)

// ConstrainedCosts returns the matrix T where T[i, j] is the minimum
// total cost over complete assignments with row i pinned to column j,
// or +Inf when no such assignment exists. When the instance itself has
// no complete assignment every entry is +Inf.
func ConstrainedCosts(ins instance) (assign.Matrix, error) {
	if err := ins.checkNoNegInf(); err != nil {
		return assign.Matrix{}, err
	}

	if ins.nRows > ins.nCols {
		t, err := ConstrainedCosts(ins.transpose())
		if err != nil {
			return assign.Matrix{}, err
		}
		return t.T(), nil
	}

	nRows, nCols := ins.nRows, ins.nCols

	st, err := solveLSAP(ins)
	if errors.Is(err, assign.ErrInfeasible) {
		return assign.Full(nRows, nCols, math.Inf(1)), nil
	}
	if err != nil {
		return assign.Matrix{}, err
	}

	lsapCosts := make([]float64, nRows)
	for i, j := range st.col4row {
		lsapCosts[i] = ins.at(i, j)
	}
	lsapTotal := floats.Sum(lsapCosts)

	// For each row, its column indices ordered by cost with ties broken
	// by index. Only the first three matter for the local repairs but
	// the full ordering is also what locates each row's cheapest unused
	// column below.
	rankedCols := make([][]int, nRows)
	for i := range rankedCols {
		idx := make([]int, nCols)
		for j := range idx {
			idx[j] = j
		}
		row := ins.row(i)
		sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] < row[idx[b]] })
		rankedCols[i] = idx
	}

	// The potential columns: the assigned ones plus, per row, the
	// cheapest column outside the assignment. Any single constraint can
	// be repaired within this set, so the fallback subproblems are
	// restricted to it. For square instances it is every column.
	inCol4Row := make([]bool, nCols)
	for _, j := range st.col4row {
		inCol4Row[j] = true
	}
	inPotential := make([]bool, nCols)
	copy(inPotential, inCol4Row)
	for i := 0; i < nRows; i++ {
		for _, j := range rankedCols[i] {
			if !inCol4Row[j] {
				inPotential[j] = true
				break
			}
		}
	}
	potentialCols := make([]int, 0, nCols)
	posInPotential := make([]int, nCols)
	for j := 0; j < nCols; j++ {
		posInPotential[j] = unassigned
		if inPotential[j] {
			posInPotential[j] = len(potentialCols)
			potentialCols = append(potentialCols, j)
		}
	}

	// Seed with the estimate that pinning row i to column j only
	// displaces row i's own column. It is exact whenever the freed
	// column cannot improve another row and column j was unused.
	total := assign.Full(nRows, nCols, 0)
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			total.Set(i, j, lsapTotal-lsapCosts[i]+ins.at(i, j))
		}
	}

	var fallbacks int
	for i := 0; i < nRows; i++ {
		// The optimum with row i removed; its duals also seed the
		// fallback subproblems for this row.
		newA := st.clone()
		if err := solveWithRemovedRow(ins, i, newA); err != nil {
			return assign.Matrix{}, err
		}

		var subTotal float64
		for r := 0; r < nRows; r++ {
			if r != i {
				subTotal += ins.at(r, newA.col4row[r])
			}
		}

		// Exact for every j that does not steal a column the other rows
		// use; the stolen entries are corrected below.
		row := total.RowSlice(i)
		for j := 0; j < nCols; j++ {
			row[j] = ins.at(i, j) + subTotal
		}

		// The one column of the unconstrained solution freed up by
		// removing row i: give it to row i.
		newA.col4row[i] = unassigned
		used := make([]bool, nCols)
		for _, j := range newA.col4row {
			if j != unassigned {
				used[j] = true
			}
		}
		freed := unassigned
		for _, j := range st.col4row {
			if !used[j] {
				freed = j
				break
			}
		}
		newA.col4row[i] = freed
		total.Set(i, freed, ins.at(i, freed)+subTotal)

		for otherI := 0; otherI < nRows; otherI++ {
			if otherI == i {
				continue
			}
			stolenJ := newA.col4row[otherI]

			if math.IsInf(ins.at(i, stolenJ), 1) {
				total.Set(i, stolenJ, math.Inf(1))
				continue
			}

			// Row i steals stolenJ from otherI; otherI needs a new column.
			newA.col4row[i] = stolenJ
			newA.col4row[otherI] = unassigned

			if cand, ok := nextBestFree(ins, otherI, stolenJ, rankedCols[otherI], newA.col4row); ok {
				newA.col4row[otherI] = cand
				var t float64
				for r := 0; r < nRows; r++ {
					t += ins.at(r, newA.col4row[r])
				}
				total.Set(i, stolenJ, t)
			} else {
				fallbacks++
				t, err := repairWithRemovedCol(ins, i, stolenJ, newA, potentialCols, posInPotential)
				if errors.Is(err, assign.ErrInfeasible) {
					t = math.Inf(1)
				} else if err != nil {
					return assign.Matrix{}, err
				}
				total.Set(i, stolenJ, t)
			}

			// Give otherI its column back for the next round.
			newA.col4row[otherI] = stolenJ
			newA.col4row[i] = unassigned
		}
	}

	// The constraints compatible with the unconstrained optimum.
	for i, j := range st.col4row {
		total.Set(i, j, lsapTotal)
	}

	slog.Debug("constrained costs computed",
		"rows", nRows, "cols", nCols, "fallbackSolves", fallbacks)

	return total, nil
}

// nextBestFree picks the column otherI should move to after losing
// stolenJ: its cheapest column overall, or the runner-up when the
// cheapest is the stolen one. The pick is only reported ok when it is
// provably safe, meaning it is unassigned and either strictly cheaper
// than the next-ranked column or tied with one that is also
// unassigned. A candidate that is taken, forbidden or tied with a
// taken column is ambiguous: moving otherI onto an occupied column can
// cascade, so the caller must re-solve exactly instead of guessing.
func nextBestFree(
	ins instance, otherI int, stolenJ int, ranked []int, col4row []int,
) (int, bool) {
	costOf := func(j int) float64 {
		if j == unassigned {
			return math.Inf(1)
		}
		return ins.at(otherI, j)
	}
	free := func(j int) bool {
		if j == unassigned || j == stolenJ {
			return false
		}
		for _, used := range col4row {
			if used == j {
				return false
			}
		}
		return true
	}

	best, second, third := ranked[0], unassigned, unassigned
	if len(ranked) > 1 {
		second = ranked[1]
	}
	if len(ranked) > 2 {
		third = ranked[2]
	}

	cand, runnerUp := best, second
	if best == stolenJ {
		cand, runnerUp = second, third
	}

	if !free(cand) || math.IsInf(costOf(cand), 1) {
		return unassigned, false
	}
	if costOf(cand) < costOf(runnerUp) || free(runnerUp) {
		return cand, true
	}
	return unassigned, false
}

// repairWithRemovedCol computes the constrained total for (i, stolenJ)
// exactly: the other rows are re-solved with stolenJ removed, on the
// subproblem restricted to the potential columns. newA must hold the
// removed-row optimum for row i, with col4row[i] set to stolenJ and the
// displaced row unassigned.
func repairWithRemovedCol(
	ins instance, i int, stolenJ int, newA *state, potentialCols []int, posInPotential []int,
) (float64, error) {
	m := ins.nRows - 1
	nP := len(potentialCols)

	mapRow := func(r int) int {
		if r < i {
			return r
		}
		return r - 1
	}

	subCosts := make([]float64, m*nP)
	subRow := 0
	for r := 0; r < ins.nRows; r++ {
		if r == i {
			continue
		}
		for k, j := range potentialCols {
			subCosts[subRow*nP+k] = ins.at(r, j)
		}
		subRow++
	}
	subIns := instance{nRows: m, nCols: nP, costs: subCosts}

	subRow4Col := make([]int, nP)
	for k, j := range potentialCols {
		r := newA.row4col[j]
		if r == unassigned || r == i {
			subRow4Col[k] = unassigned
		} else {
			subRow4Col[k] = mapRow(r)
		}
	}

	subCol4Row := make([]int, m)
	subU := make([]float64, m)
	subRow = 0
	for r := 0; r < ins.nRows; r++ {
		if r == i {
			continue
		}
		if j := newA.col4row[r]; j == unassigned {
			subCol4Row[subRow] = unassigned
		} else {
			subCol4Row[subRow] = posInPotential[j]
		}
		subU[subRow] = newA.u[r]
		subRow++
	}

	subV := make([]float64, nP)
	for k, j := range potentialCols {
		subV[k] = newA.v[j]
	}

	subState := &state{col4row: subCol4Row, row4col: subRow4Col, u: subU, v: subV}
	if err := solveWithRemovedCol(subIns, posInPotential[stolenJ], subState); err != nil {
		return 0, err
	}

	t := ins.at(i, stolenJ)
	subRow = 0
	for r := 0; r < ins.nRows; r++ {
		if r == i {
			continue
		}
		t += ins.at(r, potentialCols[subState.col4row[subRow]])
		subRow++
	}
	return t, nil
}

// ConstrainedCost computes a single constrained total from scratch: the
// optimum of the instance with row i and column j dropped, plus the
// pinned cost itself. A non-finite pinned cost is returned unchanged
// and +Inf is returned when the reduced problem is infeasible.
func ConstrainedCost(i, j int, ins instance) (float64, error) {
	if i < 0 || i >= ins.nRows || j < 0 || j >= ins.nCols {
		return 0, fmt.Errorf(
			"%w: entry (%d, %d) out of range for a %d by %d matrix",
			assign.ErrInvalidShape, i, j, ins.nRows, ins.nCols)
	}

	if err := ins.checkNoNegInf(); err != nil {
		return 0, err
	}

	pinned := ins.at(i, j)
	if math.IsInf(pinned, 1) {
		return pinned, nil
	}

	sub := ins.dropRowCol(i, j)
	rowInd, colInd, err := Solve(sub, false)
	if errors.Is(err, assign.ErrInfeasible) {
		return math.Inf(1), nil
	}
	if err != nil {
		return 0, err
	}

	total := pinned
	for k := range rowInd {
		total += sub.at(rowInd[k], colInd[k])
	}
	return total, nil
}

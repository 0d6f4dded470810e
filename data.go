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

// Package assign holds the data model for the linear sum assignment
// solvers: dense cost matrices, assignments with their dual potentials
// and the errors shared by every solver entry point.
package assign

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"
)

// Matrix is a dense rows-by-cols matrix of float64 costs in row-major
// order. +Inf marks a forbidden assignment. The fields are exported so
// instances round-trip through JSON.
type Matrix struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// MakeMatrix creates a Matrix and checks that data has exactly
// rows*cols entries.
func MakeMatrix(rows int, cols int, data []float64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf(
			"%w: dimensions must be non-negative, got %d by %d",
			ErrInvalidShape, rows, cols)
	}

	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf(
			"%w: a %d by %d matrix needs %d entries but %d were supplied",
			ErrInvalidShape, rows, cols, rows*cols, len(data))
	}

	return Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

// At returns the entry in row i and column j.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set assigns the entry in row i and column j.
func (m Matrix) Set(i, j int, value float64) {
	m.Data[i*m.Cols+j] = value
}

// RowSlice returns row i backed by the matrix storage.
func (m Matrix) RowSlice(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Clone returns a copy sharing no storage with m.
func (m Matrix) Clone() Matrix {
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: slices.Clone(m.Data)}
}

// T returns the transpose as a new matrix.
func (m Matrix) T() Matrix {
	t := Matrix{Rows: m.Cols, Cols: m.Rows, Data: make([]float64, len(m.Data))}
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Data[j*t.Cols+i] = m.Data[i*m.Cols+j]
		}
	}
	return t
}

// Full returns a rows-by-cols matrix with every entry set to value.
func Full(rows int, cols int, value float64) Matrix {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// Assignment is a complete solution of a linear sum assignment problem:
// the two directions of the row/column bijection together with the dual
// potentials certifying its optimality. Unassigned entries hold -1.
type Assignment struct {
	// Col4Row[i] is the column assigned to row i.
	Col4Row []int
	// Row4Col[j] is the row assigned to column j.
	Row4Col []int
	// U and V are the dual potentials for rows and columns. For every
	// entry, C[i, j] - U[i] - V[j] >= 0 with equality on assigned pairs.
	U []float64
	V []float64
}

// Clone returns a copy sharing no storage with a.
func (a Assignment) Clone() Assignment {
	return Assignment{
		Col4Row: slices.Clone(a.Col4Row),
		Row4Col: slices.Clone(a.Row4Col),
		U:       slices.Clone(a.U),
		V:       slices.Clone(a.V),
	}
}

// TotalCost sums the costs of the assigned pairs. Rows assigned to -1
// contribute nothing.
func (a Assignment) TotalCost(m Matrix) float64 {
	var total float64
	for i, j := range a.Col4Row {
		if j != -1 {
			total += m.At(i, j)
		}
	}
	return total
}

// MakeRandomMatrix generates a rows-by-cols matrix of uniform [0, 1)
// costs from the given seed.
func MakeRandomMatrix(rows int, cols int, seed int64) Matrix {
	gen := rand.New(rand.NewSource(seed))

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = gen.Float64()
	}

	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// MakeRandomIntMatrix generates a rows-by-cols matrix whose costs are
// integers drawn uniformly from [0, maxCost). Integer costs make ties
// likely, which exercises the tie-breaking paths of the solvers.
func MakeRandomIntMatrix(rows int, cols int, maxCost int, seed int64) Matrix {
	gen := rand.New(rand.NewSource(seed))

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(gen.Intn(maxCost))
	}

	return Matrix{Rows: rows, Cols: cols, Data: data}
}

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

package assign

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestMakeMatrix(t *testing.T) {
	m, err := MakeMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.NilError(t, err)
	assert.Equal(t, m.At(0, 0), 1.0)
	assert.Equal(t, m.At(1, 2), 6.0)

	_, err = MakeMatrix(2, 3, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = MakeMatrix(-2, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMatrixTranspose(t *testing.T) {
	m, err := MakeMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.NilError(t, err)

	mT := m.T()
	assert.Equal(t, mT.Rows, 3)
	assert.Equal(t, mT.Cols, 2)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			assert.Equal(t, mT.At(j, i), m.At(i, j))
		}
	}

	assert.DeepEqual(t, mT.T(), m)
}

func TestMatrixCloneSharesNoStorage(t *testing.T) {
	m, err := MakeMatrix(1, 2, []float64{1, 2})
	assert.NilError(t, err)

	c := m.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, m.At(0, 0), 1.0)
}

func TestMakeRandomMatrixIsDeterministic(t *testing.T) {
	a := MakeRandomMatrix(3, 4, 17)
	b := MakeRandomMatrix(3, 4, 17)
	assert.DeepEqual(t, a, b)

	c := MakeRandomMatrix(3, 4, 18)
	assert.Assert(t, !slicesEqual(a.Data, c.Data))

	for _, v := range a.Data {
		assert.Assert(t, 0 <= v && v < 1)
	}
}

func TestMakeRandomIntMatrixDrawsSmallIntegers(t *testing.T) {
	m := MakeRandomIntMatrix(4, 4, 5, 3)
	for _, v := range m.Data {
		assert.Assert(t, v == float64(int(v)))
		assert.Assert(t, 0 <= v && v < 5)
	}
}

func slicesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

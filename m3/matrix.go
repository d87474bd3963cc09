/*
 * matrix.go, part of gosymmetry.
 *
 * Copyright 2024 Sergey Ivlev
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package m3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Appzero is the default tolerance of the package. Everything with an absolute
//value equal or smaller is considered zero. Crystallographic matrix elements
//are multiples of small fractions (1/2, 1/3, 1/4, 1/6, 1/12), so anything
//closer to a value than Appzero can be snapped to it safely.
const Appzero float64 = 1e-8

//Matrix wraps a gonum dense matrix. Within goSymmetry it holds either a dxd
//rotation part or a (d+1)x(d+1) augmented affine matrix, but nothing here
//assumes a particular shape.
type Matrix struct {
	*mat.Dense
}

//NewMatrix builds a Matrix from a slice of rows. It returns an error if
//data is empty or its rows have different lengths.
func NewMatrix(data [][]float64) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, Error{"empty matrix data", []string{"m3.NewMatrix"}, true}
	}
	cols := len(data[0])
	flat := make([]float64, 0, len(data)*cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, Error{fmt.Sprintf("row %d has %d elements, want %d", i, len(row), cols), []string{"m3.NewMatrix"}, true}
		}
		flat = append(flat, row...)
	}
	return &Matrix{mat.NewDense(len(data), cols, flat)}, nil
}

//Identity returns the nxn identity matrix.
func Identity(n int) *Matrix {
	r := Zeros(n, n)
	for i := 0; i < n; i++ {
		r.Set(i, i, 1)
	}
	return r
}

//Zeros returns a zero-filled matrix with the given dimensions.
func Zeros(r, c int) *Matrix {
	return &Matrix{mat.NewDense(r, c, make([]float64, r*c))}
}

//Filled returns an rxc matrix with every element set to v.
func Filled(r, c int, v float64) *Matrix {
	f := make([]float64, r*c)
	for i := range f {
		f[i] = v
	}
	return &Matrix{mat.NewDense(r, c, f)}
}

//Rows returns the number of rows of the matrix.
func (F *Matrix) Rows() int {
	r, _ := F.Dims()
	return r
}

//Cols returns the number of columns of the matrix.
func (F *Matrix) Cols() int {
	_, c := F.Dims()
	return c
}

//Copy returns a deep copy of the matrix.
func (F *Matrix) Copy() *Matrix {
	if F == nil {
		panic(ErrNilMatrix)
	}
	r := &mat.Dense{}
	r.CloneFrom(F.Dense)
	return &Matrix{r}
}

//SubMatrix returns a copy of the submatrix starting at row i, column j and
//spanning r rows and c columns.
func (F *Matrix) SubMatrix(i, j, r, c int) (*Matrix, error) {
	fr, fc := F.Dims()
	if i < 0 || j < 0 || r < 1 || c < 1 || i+r > fr || j+c > fc {
		return nil, Error{fmt.Sprintf("submatrix %d,%d+%dx%d out of the %dx%d matrix", i, j, r, c, fr, fc), []string{"m3.SubMatrix"}, true}
	}
	ret := Zeros(r, c)
	for a := 0; a < r; a++ {
		for b := 0; b < c; b++ {
			ret.Set(a, b, F.At(i+a, j+b))
		}
	}
	return ret, nil
}

//JoinRight returns the matrix [F|A], i.e. A appended to the right of the
//receiver. The matrices must have the same number of rows.
func (F *Matrix) JoinRight(A *Matrix) (*Matrix, error) {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar {
		return nil, Error{fmt.Sprintf("can not join %dx%d and %dx%d matrices horizontally", fr, fc, ar, ac), []string{"m3.JoinRight"}, true}
	}
	r := &mat.Dense{}
	r.Augment(F.Dense, A.Dense)
	return &Matrix{r}, nil
}

//JoinBottom returns A appended below the receiver. The matrices must have
//the same number of columns.
func (F *Matrix) JoinBottom(A *Matrix) (*Matrix, error) {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fc != ac {
		return nil, Error{fmt.Sprintf("can not join %dx%d and %dx%d matrices vertically", fr, fc, ar, ac), []string{"m3.JoinBottom"}, true}
	}
	r := &mat.Dense{}
	r.Stack(F.Dense, A.Dense)
	return &Matrix{r}, nil
}

//Mul returns the matrix product F*A. It returns an error if the inner
//dimensions do not match.
func (F *Matrix) Mul(A *Matrix) (*Matrix, error) {
	_, fc := F.Dims()
	ar, _ := A.Dims()
	if fc != ar {
		return nil, Error{fmt.Sprintf("can not multiply %dx%d by %dx%d", F.Rows(), fc, ar, A.Cols()), []string{"m3.Mul"}, true}
	}
	r := &mat.Dense{}
	r.Mul(F.Dense, A.Dense)
	return &Matrix{r}, nil
}

//Det returns the determinant of the matrix. Panics if the matrix is not
//square.
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != c {
		panic(ErrNotSquare)
	}
	return mat.Det(F.Dense)
}

//Trace returns the sum of the diagonal elements. Panics if the matrix is
//not square.
func (F *Matrix) Trace() float64 {
	r, c := F.Dims()
	if r != c {
		panic(ErrNotSquare)
	}
	return mat.Trace(F.Dense)
}

//Neg returns the matrix with every element negated.
func (F *Matrix) Neg() *Matrix {
	r := F.Copy()
	r.Dense.Scale(-1, F.Dense)
	return r
}

//ScaleBy returns the matrix multiplied by the scalar k.
func (F *Matrix) ScaleBy(k float64) *Matrix {
	r := F.Copy()
	r.Dense.Scale(k, F.Dense)
	return r
}

//Add returns the element-wise sum F+A.
func (F *Matrix) Add(A *Matrix) (*Matrix, error) {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		return nil, Error{fmt.Sprintf("can not add %dx%d and %dx%d matrices", fr, fc, ar, ac), []string{"m3.Add"}, true}
	}
	r := F.Copy()
	r.Dense.Add(F.Dense, A.Dense)
	return r, nil
}

//Sub returns the element-wise difference F-A.
func (F *Matrix) Sub(A *Matrix) (*Matrix, error) {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		return nil, Error{fmt.Sprintf("can not subtract %dx%d from %dx%d matrix", ar, ac, fr, fc), []string{"m3.Sub"}, true}
	}
	r := F.Copy()
	r.Dense.Sub(F.Dense, A.Dense)
	return r, nil
}

//EqualsTol reports whether the receiver and A have the same dimensions and
//element-wise differences within tol.
func (F *Matrix) EqualsTol(A *Matrix, tol float64) bool {
	fr, fc := F.Dims()
	ar, ac := A.Dims()
	if fr != ar || fc != ac {
		return false
	}
	for i := 0; i < fr; i++ {
		for j := 0; j < fc; j++ {
			if math.Abs(F.At(i, j)-A.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

//RREF returns the reduced row echelon form of the matrix, computed by
//Gauss-Jordan elimination with partial pivoting. Elements within Appzero of
//zero are snapped to zero after each elimination step so that the exact
//fractional values used in crystallography survive the float arithmetic.
func (F *Matrix) RREF() *Matrix {
	r, c := F.Dims()
	m := F.Copy()
	row := 0
	for col := 0; col < c && row < r; col++ {
		piv := -1
		max := Appzero
		for i := row; i < r; i++ {
			if a := math.Abs(m.At(i, col)); a > max {
				piv, max = i, a
			}
		}
		if piv < 0 {
			continue //free column
		}
		if piv != row {
			for j := 0; j < c; j++ {
				tmp := m.At(row, j)
				m.Set(row, j, m.At(piv, j))
				m.Set(piv, j, tmp)
			}
		}
		p := m.At(row, col)
		for j := 0; j < c; j++ {
			m.Set(row, j, m.At(row, j)/p)
		}
		for i := 0; i < r; i++ {
			if i == row {
				continue
			}
			f := m.At(i, col)
			if math.Abs(f) <= Appzero {
				continue
			}
			for j := 0; j < c; j++ {
				v := m.At(i, j) - f*m.At(row, j)
				if math.Abs(v) <= Appzero {
					v = 0
				}
				m.Set(i, j, v)
			}
		}
		row++
	}
	return m
}

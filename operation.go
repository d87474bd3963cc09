/*
 * operation.go, part of gosymmetry.
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

package symmetry

import (
	"fmt"
	"math"

	"github.com/sivlev/gosymmetry/m3"
)

//SymmetryOperation is an affine symmetry operation over fractional
//coordinates, stored as an augmented (d+1)x(d+1) matrix: the top-left dxd
//block is the rotation part W, the last column (minus its last row) is the
//translation part t, and the last row is [0,...,0,1].
//
//Operations are created through the factories of this package and never
//mutated afterwards. The derived values (order, intrinsic translation,
//location, characteristic axis) are memoized on first access; each is a
//pure function of the immutable matrix, so a redundant concurrent
//computation writes the same value and is harmless.
type SymmetryOperation struct {
	dim    int
	matrix *m3.Matrix

	rot        *m3.Matrix
	trans      m3.Vector
	powers     []*m3.Matrix //successive powers of W up to the identity
	ord        int
	intrinsic  m3.Vector
	location   m3.Vector
	axis       []int
	haveDecomp bool
	haveAxis   bool
}

//Identity returns the identity operation of the given dimensionality.
func Identity(dim int) *SymmetryOperation {
	op, err := newOperation(m3.Identity(dim + 1))
	if err != nil {
		panic(ErrTable) //the identity matrix is always well-formed
	}
	return op
}

//FromArray builds a symmetry operation from the nested-slice form of its
//augmented matrix. The matrix must be square with side dimensionality+1;
//anything else is an error.
func FromArray(data [][]float64) (*SymmetryOperation, error) {
	m, err := m3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "FromArray")
	}
	op, err := newOperation(m)
	if err != nil {
		return nil, errDecorate(err, "FromArray")
	}
	return op, nil
}

//FromRotationAndTranslation builds a symmetry operation from a dxd rotation
//part and a translation vector of d components.
func FromRotationAndTranslation(rot *m3.Matrix, trans []float64) (*SymmetryOperation, error) {
	r, c := rot.Dims()
	if r != c {
		return nil, Error{fmt.Sprintf("rotation part is %dx%d, want square", r, c), []string{"FromRotationAndTranslation"}, true}
	}
	if len(trans) != r {
		return nil, Error{fmt.Sprintf("translation has %d components, rotation part is %dx%d", len(trans), r, r), []string{"FromRotationAndTranslation"}, true}
	}
	m := m3.Zeros(r+1, r+1)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			m.Set(i, j, rot.At(i, j))
		}
		m.Set(i, r, trans[i])
	}
	m.Set(r, r, 1)
	return newOperation(m)
}

func newOperation(m *m3.Matrix) (*SymmetryOperation, error) {
	r, c := m.Dims()
	if r != c || r < 2 {
		return nil, Error{fmt.Sprintf("augmented matrix is %dx%d, want square of side dimensionality+1", r, c), []string{"newOperation"}, true}
	}
	return &SymmetryOperation{dim: r - 1, matrix: m}, nil
}

//Dimensionality returns the dimensionality d of the operation.
func (S *SymmetryOperation) Dimensionality() int { return S.dim }

//Matrix returns the augmented matrix of the operation. The caller must not
//modify it.
func (S *SymmetryOperation) Matrix() *m3.Matrix { return S.matrix }

//RotationPart returns the dxd rotation part W of the operation. The caller
//must not modify it.
func (S *SymmetryOperation) RotationPart() *m3.Matrix {
	if S.rot == nil {
		w, err := S.matrix.SubMatrix(0, 0, S.dim, S.dim)
		if err != nil {
			panic(ErrTable) //the augmented matrix always contains its rotation block
		}
		S.rot = w
	}
	return S.rot
}

//TranslationPart returns the translation part t of the operation.
func (S *SymmetryOperation) TranslationPart() m3.Vector {
	if S.trans == nil {
		t := make(m3.Vector, S.dim)
		for i := 0; i < S.dim; i++ {
			t[i] = S.matrix.At(i, S.dim)
		}
		S.trans = t
	}
	return S.trans
}

//Order returns the smallest positive integer n for which the rotation part
//of the operation, multiplied by itself n times, is the identity.
//
//The rotation part of every crystallographic operation has a finite
//multiplicative order, and this method assumes it. Calling it on an
//operation with an arbitrary non-crystallographic rotation part will not
//terminate.
func (S *SymmetryOperation) Order() int {
	if S.ord > 0 {
		return S.ord
	}
	w := S.RotationPart()
	ident := m3.Identity(S.dim)
	powers := make([]*m3.Matrix, 0, 6)
	p := w
	for {
		powers = append(powers, p)
		if p.EqualsTol(ident, appzero) {
			break
		}
		var err error
		p, err = p.Mul(w)
		if err != nil {
			panic(ErrTable) //W is square, the product can not fail
		}
	}
	S.powers = powers
	S.ord = len(powers)
	return S.ord
}

//IntrinsicTranslation returns the component of the translation that repeats
//under iteration of the operation: (1/n)*(W^0+W^1+...+W^(n-1))*t, with n the
//order of the operation. It is the screw component of a screw rotation and
//the glide vector of a glide plane; it is zero for every other operation.
func (S *SymmetryOperation) IntrinsicTranslation() m3.Vector {
	S.decompose()
	return S.intrinsic
}

//Location returns the removable part of the translation, t minus the
//intrinsic translation. It vanishes for operations located at the origin.
func (S *SymmetryOperation) Location() m3.Vector {
	S.decompose()
	return S.location
}

func (S *SymmetryOperation) decompose() {
	if S.haveDecomp {
		return
	}
	n := S.Order() //also fills S.powers
	t := S.TranslationPart()
	//powers holds W^1..W^n with W^n the identity, so summing it equals
	//summing W^0..W^(n-1).
	intr := make(m3.Vector, S.dim)
	for _, p := range S.powers {
		for i := 0; i < S.dim; i++ {
			for j := 0; j < S.dim; j++ {
				intr[i] += p.At(i, j) * t[j]
			}
		}
	}
	for i := range intr {
		intr[i] /= float64(n)
		if math.Abs(intr[i]) <= appzero {
			intr[i] = 0
		}
	}
	S.intrinsic = intr
	S.location = t.Sub(intr)
	S.haveDecomp = true
}

//proper returns the rotation part for determinant +1, and its negation for
//determinant -1, i.e. the purely rotational content of the operation.
func (S *SymmetryOperation) proper() *m3.Matrix {
	w := S.RotationPart()
	if w.Det() < 0 {
		return w.Neg()
	}
	return w
}

//CharacteristicAxis returns the direction fixed (or flipped, for improper
//operations) by the rotation part, as integer indices reduced by their
//greatest common divisor. The sign is normalized so that the first nonzero
//index is positive, except for cubic body diagonals, which keep an even
//number of negative indices so that the four 3-fold axes come out as the
//conventional [111], [1-1-1], [-11-1] and [-1-11] set.
//
//Panics with ErrNoAxis for operations whose rotation part fixes every
//direction (identity, inversion, pure translations).
func (S *SymmetryOperation) CharacteristicAxis() []int {
	if S.haveAxis {
		if S.axis == nil {
			panic(ErrNoAxis)
		}
		return S.axis
	}
	w := S.proper()
	a, err := w.Sub(m3.Identity(S.dim))
	if err != nil {
		panic(ErrTable)
	}
	rr := a.RREF()
	pivots := pivotColumns(rr)
	free := -1
	nfree := 0
	for col, row := range pivots {
		if row < 0 {
			nfree++
			free = col
		}
	}
	if nfree != 1 {
		//rank 0 means W is the identity: no single fixed direction exists.
		S.haveAxis = true
		S.axis = nil
		panic(ErrNoAxis)
	}
	v := make(m3.Vector, S.dim)
	v[free] = 1
	for col, row := range pivots {
		if row >= 0 {
			v[col] = -rr.At(row, free)
		}
	}
	S.axis = integerizeAxis(v)
	S.haveAxis = true
	return S.axis
}

//pivotColumns returns, for each column of a matrix in reduced row echelon
//form, the row holding its pivot, or -1 if the column is free. Only the
//first dim columns are inspected, so the same helper serves homogeneous and
//augmented systems.
func pivotColumns(rr *m3.Matrix) []int {
	r, c := rr.Dims()
	n := c
	if r < n {
		n = r //augmented system: the rightmost column is never a pivot
	}
	pivots := make([]int, n)
	for i := range pivots {
		pivots[i] = -1
	}
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(rr.At(i, j)) > appzero {
				if math.Abs(rr.At(i, j)-1) <= appzero && pivots[j] < 0 {
					pivots[j] = i
				}
				break
			}
		}
	}
	return pivots
}

//integerizeAxis turns a rational direction vector into reduced integer
//indices with the sign conventions described in CharacteristicAxis.
func integerizeAxis(v m3.Vector) []int {
	//exact rational reconstruction, then clear the denominators
	den := int64(1)
	nums := make([]int64, len(v))
	dens := make([]int64, len(v))
	for i, x := range v {
		nums[i], dens[i] = m3.FracFromFloat(x).Parts()
		den = lcm(den, dens[i])
	}
	ints := make([]int, len(v))
	for i := range v {
		ints[i] = int(nums[i] * (den / dens[i]))
	}
	g := 0
	for _, x := range ints {
		g = gcd(g, abs(x))
	}
	if g > 1 {
		for i := range ints {
			ints[i] /= g
		}
	}
	//sign conventions
	diagonal := true
	neg := 0
	for _, x := range ints {
		if abs(x) != 1 {
			diagonal = false
		}
		if x < 0 {
			neg++
		}
	}
	if len(ints) == 3 && diagonal {
		if neg%2 == 1 {
			for i := range ints {
				ints[i] = -ints[i]
			}
		}
		return ints
	}
	for _, x := range ints {
		if x == 0 {
			continue
		}
		if x < 0 {
			for i := range ints {
				ints[i] = -ints[i]
			}
		}
		break
	}
	return ints
}

//Product returns the composition of the two operations: the operation whose
//matrix is the product of the two augmented matrices, with the translation
//column canonicalized into [0,1) per axis. It returns an error if the
//dimensionalities differ.
func (S *SymmetryOperation) Product(T *SymmetryOperation) (*SymmetryOperation, error) {
	m, err := S.matrix.Mul(T.matrix)
	if err != nil {
		return nil, errDecorate(err, "Product")
	}
	for i := 0; i < S.dim; i++ {
		m.Set(i, S.dim, reduceNumberPositive(m.At(i, S.dim), appzero))
	}
	return newOperation(m)
}

//Equals reports whether the augmented matrices of the two operations are
//equal within tol.
func (S *SymmetryOperation) Equals(T *SymmetryOperation, tol float64) bool {
	return S.matrix.EqualsTol(T.matrix, tol)
}

//IsIdentity reports whether the operation is the identity, translation
//included.
func (S *SymmetryOperation) IsIdentity() bool {
	return S.matrix.EqualsTol(m3.Identity(S.dim+1), appzero)
}

//HasRotation reports whether the rotation part of the operation differs
//from the identity.
func (S *SymmetryOperation) HasRotation() bool {
	return !S.RotationPart().EqualsTol(m3.Identity(S.dim), appzero)
}

//HasTranslation reports whether the operation carries a nonzero
//translation part.
func (S *SymmetryOperation) HasTranslation() bool {
	return !S.TranslationPart().IsZero(appzero)
}

//String returns the xyz notation of the operation.
func (S *SymmetryOperation) String() string {
	return S.ToXYZ()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := int64(gcd(int(a), int(b)))
	return a / g * b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

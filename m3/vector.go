/*
 * vector.go, part of gosymmetry.
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

import "math"

//Vector is a plain direction or translation vector in fractional
//coordinates. The functions here don't return errors because they are meant
//to be inserted in mathematical expressions; they panic on misuse instead.
type Vector []float64

//Cross returns the cross product of two 3-D vectors. Panics if either
//vector is not 3-D.
func (v Vector) Cross(w Vector) Vector {
	if len(v) != 3 || len(w) != 3 {
		panic(ErrNoCrossProduct)
	}
	return Vector{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

//Sub returns v-w. Panics if the lengths differ.
func (v Vector) Sub(w Vector) Vector {
	if len(v) != len(w) {
		panic(ErrShape)
	}
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i] - w[i]
	}
	return r
}

//Add returns v+w. Panics if the lengths differ.
func (v Vector) Add(w Vector) Vector {
	if len(v) != len(w) {
		panic(ErrShape)
	}
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i] + w[i]
	}
	return r
}

//ScaleBy returns the vector multiplied by the scalar k.
func (v Vector) ScaleBy(k float64) Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i] * k
	}
	return r
}

//IsZero reports whether every component is within tol of zero.
func (v Vector) IsZero(tol float64) bool {
	for _, x := range v {
		if math.Abs(x) > tol {
			return false
		}
	}
	return true
}

//Array returns the vector as a plain float64 slice (a copy).
func (v Vector) Array() []float64 {
	r := make([]float64, len(v))
	copy(r, v)
	return r
}

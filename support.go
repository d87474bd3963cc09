/*
 * support.go, part of gosymmetry.
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

import "math"

//appzero is the tolerance used throughout the package. Everything closer
//than this to a crystallographic fraction is snapped to it.
const appzero float64 = 1e-8

//This file holds the pure numeric-reduction helpers of the package. Two
//distinct canonical ranges are in use and the distinction matters: parsed
//xyz constants are reduced into (-1,1), while composed and expanded
//translations are reduced into [0,1). Each range feeds a different
//invariant (notation canonicality vs. in-cell normalization), so the two
//functions must not be merged.

//reduceNumberPositive canonicalizes x into [0,1). Values within tol of an
//integer are snapped to that integer first, absorbing floating-point error,
//so that e.g. -1e-12 maps to 0 and not to almost-1. An exactly negative
//integer maps to 0.
func reduceNumberPositive(x, tol float64) float64 {
	if near := math.Round(x); math.Abs(x-near) <= tol {
		x = near
	}
	return x - math.Floor(x)
}

//reduceNumber canonicalizes x into (-1,1), keeping its sign: only the
//integer part is stripped, toward zero. The same integer-boundary snapping
//as in reduceNumberPositive applies first.
func reduceNumber(x, tol float64) float64 {
	if near := math.Round(x); math.Abs(x-near) <= tol {
		x = near
	}
	return x - math.Trunc(x)
}

//isRotationPartInArray reports whether the rotation part of op matches,
//within the package tolerance, the rotation part of any operation in list.
//It is the deduplication test of the group-closure algorithm: operations
//that differ only in translation count as one representative.
func isRotationPartInArray(op *SymmetryOperation, list []*SymmetryOperation) bool {
	w := op.RotationPart()
	for _, o := range list {
		if w.EqualsTol(o.RotationPart(), appzero) {
			return true
		}
	}
	return false
}

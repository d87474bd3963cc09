/*
 * doc.go, part of gosymmetry.
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

/*Package m3 contains the linear-algebra substrate of goSymmetry. It wraps a gonum
dense matrix in a Matrix type with the operations needed for crystallographic
symmetry analysis: submatrix extraction, horizontal and vertical joins,
multiplication, determinant, trace, reduced row echelon form and tolerant
equality. The package also provides a small Vector helper for 3-D directions
and a Fraction type for exact rational display of crystallographic
translations ("1/2", "2/3", etc).

Values handled here are fractional crystallographic coordinates, so all the
numbers of interest are small rationals. Floating point is used for storage
(it is what gonum works with), with every comparison done against a tolerance
and with Fraction recovering the exact rational when text output is needed.*/
package m3

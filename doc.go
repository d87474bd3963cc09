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

/*Package symmetry is the main package of the goSymmetry library. It handles
crystallographic symmetry operations and space groups in 3-D fractional
coordinates.


	**goSymmetry capabilities**

    Represents affine symmetry operations as augmented (d+1)x(d+1) matrices
	and decomposes them into rotation and translation parts.

    Derives the group-theoretic invariants of an operation: its order, its
	intrinsic (screw/glide) translation, its location part, and the
	characteristic axis of its rotation part.

    Converts operations to and from algebraic "xyz" notation
	(e.g. "-x+1/2,y,-z+1/2").

    Derives the canonical operator symbol of an operation in the style of the
	International Tables for Crystallography, e.g. "2(1/2,0,0) x,0,1/4" or
	"-3+ -x-1/2,x+1,-x; 0,1/2,1/2".

    Assembles space groups from Hall symbols (e.g. "-I 4bd 2c 3") and from
	explicit symbols (e.g. "FCN$P2C000$P2B000$P3Q000$I2E666").

    Generates the full set of representative operations of a group from its
	generators, expands centered groups into primitive ones, and compares
	groups with and without regard to translations.

goSymmetry implements its own matrix type based on gonum, in the m3 subpackage.
All computation works on floats with a small tolerance: the numbers involved
are crystallographic fractions with denominators up to 12, and every
comparison and canonicalization snaps to them.*/
package symmetry

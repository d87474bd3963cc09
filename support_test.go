/*
 * support_test.go, part of gosymmetry.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceNumberPositive(Te *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{1.5, 0.5},
		{-0.25, 0.75},
		{-2, 0},         //an exact negative integer maps to 0, not to almost-1
		{1e-12, 0},      //snapped to the boundary
		{0.9999999999, 0},
		{-1.0000000001, 0},
		{2.75, 0.75},
	}
	for _, c := range cases {
		assert.InDelta(Te, c.want, reduceNumberPositive(c.in, appzero), appzero, "input %v", c.in)
	}
}

func TestReduceNumberPositiveIdempotent(Te *testing.T) {
	inputs := []float64{-3.7, -1, -0.5, -1e-12, 0, 0.3, 0.9999999999, 1, 2.25, 17.5}
	for _, x := range inputs {
		once := reduceNumberPositive(x, appzero)
		assert.True(Te, once >= 0 && once < 1, "result %v out of [0,1) for input %v", once, x)
		assert.Equal(Te, once, reduceNumberPositive(once, appzero), "not idempotent for %v", x)
	}
}

func TestReduceNumber(Te *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.5},
		{-0.5, -0.5}, //sign is preserved, unlike reduceNumberPositive
		{1.5, 0.5},
		{-1.25, -0.25},
		{2, 0},
		{-3, 0},
		{0.9999999999, 0},
	}
	for _, c := range cases {
		assert.InDelta(Te, c.want, reduceNumber(c.in, appzero), appzero, "input %v", c.in)
	}
}

func TestIsRotationPartInArray(Te *testing.T) {
	a, err := FromXYZ("-x,-y,z")
	require.NoError(Te, err)
	//same rotation part, different translation
	b, err := FromXYZ("-x+1/2,-y,z+1/2")
	require.NoError(Te, err)
	c, err := FromXYZ("x,-y,-z")
	require.NoError(Te, err)

	list := []*SymmetryOperation{Identity(3), a}
	assert.True(Te, isRotationPartInArray(b, list))
	assert.False(Te, isRotationPartInArray(c, list))
}

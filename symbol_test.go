/*
 * symbol_test.go, part of gosymmetry.
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

	"github.com/sivlev/gosymmetry/m3"
)

func TestToSymbolIdentityAndTranslation(Te *testing.T) {
	assert.Equal(Te, "1", mustOp(Te, "x,y,z").ToSymbol())
	assert.Equal(Te, "t (1/2,1/2,0)", mustOp(Te, "x+1/2,y+1/2,z").ToSymbol())
	assert.Equal(Te, "t (0,0,1/2)", mustOp(Te, "x,y,z+1/2").ToSymbol())
}

func TestToSymbolInversion(Te *testing.T) {
	assert.Equal(Te, "-1 (0,0,0)", mustOp(Te, "-x,-y,-z").ToSymbol())
	//translation slides the inversion center to t/2
	assert.Equal(Te, "-1 (1/4,0,0)", mustOp(Te, "-x+1/2,-y,-z").ToSymbol())
}

func TestToSymbolRotations(Te *testing.T) {
	cases := []struct{ text, want string }{
		{"-x,-y,z", "2 0,0,z"},
		{"x,-y,-z", "2 x,0,0"},
		{"-y,x,z", "4+ 0,0,z"},
		{"y,-x,z", "4- 0,0,z"},
		{"-y,x-y,z", "3+ 0,0,z"},
		{"x-y,x,z", "6+ 0,0,z"},
		{"y,-x+1/2,z", "4- 1/4,1/4,z"},
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, mustOp(Te, c.text).ToSymbol(), c.text)
	}
}

func TestToSymbolScrews(Te *testing.T) {
	//two-fold screw along a with its axis at z=1/4
	assert.Equal(Te, "2(1/2,0,0) x,0,1/4", mustOp(Te, "x+1/2,-y,-z+1/2").ToSymbol())
	//4_1 along c
	assert.Equal(Te, "4+(0,0,1/4) 0,0,z", mustOp(Te, "-y,x,z+1/4").ToSymbol())
	//2_1 along c
	assert.Equal(Te, "2(0,0,1/2) 0,0,z", mustOp(Te, "-x,-y,z+1/2").ToSymbol())
}

func TestToSymbolMirrorsAndGlides(Te *testing.T) {
	cases := []struct{ text, want string }{
		{"x,-y+1/2,z", "m x,1/4,z"},
		{"x,-y,z", "m x,0,z"},
		{"y,x,z", "m x,x,z"},
		{"x+1/2,-y,z", "a(1/2,0,0) x,0,z"},
		{"x,-y,z+1/2", "c(0,0,1/2) x,0,z"},
		{"x+1/2,-y,z+1/2", "n(1/2,0,1/2) x,0,z"},
		//d glides carry quarter translations
		{"x+1/4,-y,z+1/4", "d(1/4,0,1/4) x,0,z"},
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, mustOp(Te, c.text).ToSymbol(), c.text)
	}
}

func TestToSymbolRotoinversions(Te *testing.T) {
	assert.Equal(Te, "-4+ 0,0,z; 0,0,0", mustOp(Te, "y,-x,-z").ToSymbol())
	assert.Equal(Te, "-6+ 0,0,z; 0,0,0", mustOp(Te, "y-x,-x,-z").ToSymbol())
	assert.Equal(Te, "-3+ x,x,x; 0,0,0", mustOp(Te, "-z,-x,-y").ToSymbol())
	//a translated -3 along a body diagonal: the line is slid along the
	//axis so that its free coordinate vanishes
	assert.Equal(Te, "-3+ -x-1/2,x+1,-x; 0,1/2,1/2", mustOp(Te, "-z+1/2,x+1/2,y").ToSymbol())
}

func TestToSymbolPanics(Te *testing.T) {
	rot, err := m3.NewMatrix([][]float64{
		{2, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	assert.NoError(Te, err)
	op, err := FromRotationAndTranslation(rot, []float64{0, 0, 0})
	assert.NoError(Te, err)
	assert.PanicsWithValue(Te, ErrNotCrystallographic, func() { op.ToSymbol() })
	assert.Panics(Te, func() { Identity(2).ToSymbol() })
}

/*
 * hall_test.go, part of gosymmetry.
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

func TestHallGenerators(Te *testing.T) {
	//P2_12_12_1: two generators with implied axes c and a
	g, err := MakeFromHallSymbol("P 2ac 2ab", false)
	require.NoError(Te, err)
	require.Len(Te, g.Operations(), 2)
	assert.Equal(Te, "-x+1/2,-y,z+1/2", g.Operations()[0].ToXYZ())
	assert.Equal(Te, "x+1/2,-y+1/2,-z", g.Operations()[1].ToXYZ())
	assert.Empty(Te, g.CenteringTranslations())
}

func TestHallGeneratedGroups(Te *testing.T) {
	cases := []struct {
		symbol string
		count  int //distinct representatives
		order  int //count times the lattice cosets
	}{
		{"P 1", 1, 1},
		{"-P 1", 2, 2},
		{"P 2ac 2ab", 4, 4},
		{"C 2", 2, 4},
		{"P 3 2", 6, 6},      //implied diagonal 2-fold after a 3-fold
		{"-I 4bd 2c 3", 48, 96}, //Ia-3d
	}
	for _, c := range cases {
		g, err := MakeFromHallSymbol(c.symbol, true)
		require.NoError(Te, err, c.symbol)
		assert.Len(Te, g.Operations(), c.count, c.symbol)
		assert.Equal(Te, c.order, g.Order(), c.symbol)
	}
}

func TestHallCentrosymmetric(Te *testing.T) {
	g, err := MakeFromHallSymbol("-P 1", false)
	require.NoError(Te, err)
	//the "-" prefix doubles each generator with its inversion image
	require.Len(Te, g.Operations(), 2)
	assert.Equal(Te, "x,y,z", g.Operations()[0].ToXYZ())
	assert.Equal(Te, "-x,-y,-z", g.Operations()[1].ToXYZ())
}

func TestHallScrew(Te *testing.T) {
	g, err := MakeFromHallSymbol("P 41", false)
	require.NoError(Te, err)
	require.Len(Te, g.Operations(), 1)
	assert.Equal(Te, "-y,x,z+1/4", g.Operations()[0].ToXYZ())
}

func TestHallRhombohedralLattice(Te *testing.T) {
	g, err := MakeFromHallSymbol("R 3", true)
	require.NoError(Te, err)
	assert.Len(Te, g.Operations(), 3)
	assert.Equal(Te, 9, g.Order(), "two rhombohedral centering vectors")
}

func TestHallErrors(Te *testing.T) {
	bad := []string{
		"P",        //no generator
		"X 2",      //unknown lattice
		"--P 2",    //mangled lattice token
		"P 7",      //invalid rotation order
		"P 2q",     //unknown translation letter
		"P 35",     //no 3_5 screw exists
		"P x",      //no rotation order
		"P 2'",     //diacritic axis without a preceding principal axis
	}
	for _, symbol := range bad {
		_, err := MakeFromHallSymbol(symbol, false)
		assert.Error(Te, err, "expected failure for %q", symbol)
	}
}

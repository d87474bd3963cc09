/*
 * explicit_test.go, part of gosymmetry.
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

func TestExplicitSingleGenerator(Te *testing.T) {
	g, err := MakeFromExplicitSymbol("PAC$I1A000", false)
	require.NoError(Te, err)
	require.Len(Te, g.Operations(), 1)
	assert.Equal(Te, "-x,-y,-z", g.Operations()[0].ToXYZ())

	e, err := MakeFromExplicitSymbol("PAC$I1A000", true)
	require.NoError(Te, err)
	assert.Len(Te, e.Operations(), 2)
	assert.Equal(Te, 2, e.Order())
}

func TestExplicitTranslationDigits(Te *testing.T) {
	//digits count twelfths of the cell; 5 stands for 10/12
	g, err := MakeFromExplicitSymbol("PAC$P2C006", false)
	require.NoError(Te, err)
	assert.Equal(Te, "-x,-y,z+1/2", g.Operations()[0].ToXYZ())

	g, err = MakeFromExplicitSymbol("PAC$P6C002", false)
	require.NoError(Te, err)
	assert.Equal(Te, "x-y,x,z+1/6", g.Operations()[0].ToXYZ())

	g, err = MakeFromExplicitSymbol("PAC$P2C005", false)
	require.NoError(Te, err)
	assert.Equal(Te, "-x,-y,z+5/6", g.Operations()[0].ToXYZ())
}

func TestExplicitCubicGroup(Te *testing.T) {
	g, err := MakeFromExplicitSymbol("FCN$P2C000$P2B000$P3Q000$I2E666", true)
	require.NoError(Te, err)
	assert.Len(Te, g.Operations(), 24)
	assert.Equal(Te, 96, g.Order())
	assert.Len(Te, g.CenteringTranslations(), 3)
}

func TestExplicitErrors(Te *testing.T) {
	bad := []string{
		"PAC",          //no generator block
		"PA$P2C000",    //lattice block too short
		"XAC$P2C000",   //unknown lattice letter
		"PAC$X2C000",   //generator must start with P or I
		"PAC$P5C000",   //invalid rotation order
		"PAC$P2Z000",   //unknown axis designator
		"PAC$P2C00x",   //non-digit translation
		"PAC$P2C0000",  //wrong block length
	}
	for _, symbol := range bad {
		_, err := MakeFromExplicitSymbol(symbol, false)
		assert.Error(Te, err, "expected failure for %q", symbol)
	}
}

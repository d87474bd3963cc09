/*
 * operation_test.go, part of gosymmetry.
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

	"github.com/sivlev/gosymmetry/m3"
)

func mustOp(Te *testing.T, text string) *SymmetryOperation {
	op, err := FromXYZ(text)
	require.NoError(Te, err, text)
	return op
}

func TestIdentity(Te *testing.T) {
	id := Identity(3)
	assert.Equal(Te, 3, id.Dimensionality())
	assert.True(Te, id.IsIdentity())
	assert.Equal(Te, 1, id.Order())
	assert.Equal(Te, "x,y,z", id.ToXYZ())
}

func TestOrder(Te *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"x,y,z", 1},
		{"-x,-y,-z", 2},
		{"-y,x-y,z", 3},
		{"-y,x,z", 4},
		{"x-y,x,z", 6},
		{"y,-x,-z", 4},           //rotoinversion -4
		{"x+1/2,-y,-z+1/2", 2},   //screw axes keep the order of their rotation
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, mustOp(Te, c.text).Order(), c.text)
	}
}

func TestProduct(Te *testing.T) {
	two := mustOp(Te, "-x,-y,z")
	p, err := two.Product(two)
	require.NoError(Te, err)
	assert.True(Te, p.IsIdentity())

	//translations of a product are canonicalized into [0,1)
	t := mustOp(Te, "x+1/2,y,z")
	p, err = t.Product(t)
	require.NoError(Te, err)
	assert.True(Te, p.IsIdentity())
}

func TestProductDimensionMismatch(Te *testing.T) {
	a := Identity(3)
	b := Identity(2)
	_, err := a.Product(b)
	assert.Error(Te, err)
}

func TestFromArrayErrors(Te *testing.T) {
	_, err := FromArray([][]float64{{1, 0}, {0, 1}, {0, 0}})
	assert.Error(Te, err, "non-square input")
	_, err = FromArray([][]float64{{1}})
	assert.Error(Te, err, "too small for an augmented matrix")
}

func TestFromRotationAndTranslation(Te *testing.T) {
	rot, err := m3.NewMatrix([][]float64{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	})
	require.NoError(Te, err)
	op, err := FromRotationAndTranslation(rot, []float64{0.5, 0, 0.5})
	require.NoError(Te, err)
	assert.Equal(Te, "-x+1/2,-y,z+1/2", op.ToXYZ())

	small, err := m3.NewMatrix([][]float64{{1, 0}, {0, 1}})
	require.NoError(Te, err)
	_, err = FromRotationAndTranslation(small, []float64{0, 0, 0})
	assert.Error(Te, err, "translation length must match the rotation side")
}

func TestIntrinsicTranslationAndLocation(Te *testing.T) {
	//two-fold screw along x with an off-axis location
	op := mustOp(Te, "x+1/2,-y,-z+1/2")
	intr := op.IntrinsicTranslation()
	loc := op.Location()
	assert.InDeltaSlice(Te, []float64{0.5, 0, 0}, intr.Array(), appzero)
	assert.InDeltaSlice(Te, []float64{0, 0, 0.5}, loc.Array(), appzero)

	//a pure rotation has neither
	rot := mustOp(Te, "-y,x,z")
	assert.True(Te, rot.IntrinsicTranslation().IsZero(appzero))
	assert.True(Te, rot.Location().IsZero(appzero))

	//an axial glide is all intrinsic
	glide := mustOp(Te, "x+1/2,-y,z")
	assert.InDeltaSlice(Te, []float64{0.5, 0, 0}, glide.IntrinsicTranslation().Array(), appzero)
	assert.True(Te, glide.Location().IsZero(appzero))
}

func TestHasTranslation(Te *testing.T) {
	assert.False(Te, Identity(3).HasTranslation())
	assert.True(Te, mustOp(Te, "x+1/2,y,z").HasTranslation())
	assert.False(Te, mustOp(Te, "-x,-y,z").HasTranslation())
}

func TestHasRotation(Te *testing.T) {
	assert.False(Te, Identity(3).HasRotation())
	assert.False(Te, mustOp(Te, "x+1/2,y,z").HasRotation())
	assert.True(Te, mustOp(Te, "-x,-y,z").HasRotation())
}

func TestCharacteristicAxis(Te *testing.T) {
	cases := []struct {
		text string
		want []int
	}{
		{"x,-y,-z", []int{1, 0, 0}},       //2-fold along a
		{"-x,y,-z", []int{0, 1, 0}},       //2-fold along b
		{"-y,x,z", []int{0, 0, 1}},        //4-fold along c
		{"y,x,-z", []int{1, 1, 0}},        //2-fold along [110]
		{"z,x,y", []int{1, 1, 1}},         //3-fold along the body diagonal
		{"x,-y,z", []int{0, 1, 0}},        //mirror: axis is the normal
		{"y,-x,-z", []int{0, 0, 1}},       //-4: axis of the proper part
		{"-z,-x,-y", []int{1, 1, 1}},      //-3 along [111]
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, mustOp(Te, c.text).CharacteristicAxis(), c.text)
	}
}

func TestCharacteristicAxisSignConvention(Te *testing.T) {
	//axes along a body diagonal keep an even number of negative components
	op := mustOp(Te, "z,-x,-y")
	assert.Equal(Te, []int{-1, 1, -1}, op.CharacteristicAxis())
}

func TestCharacteristicAxisPanicsForIdentity(Te *testing.T) {
	assert.PanicsWithValue(Te, ErrNoAxis, func() { Identity(3).CharacteristicAxis() })
}

func TestEquals(Te *testing.T) {
	a := mustOp(Te, "-x,-y,z")
	b := mustOp(Te, "-x,-y,z")
	c := mustOp(Te, "-x+1/2,-y,z")
	assert.True(Te, a.Equals(b, appzero))
	assert.False(Te, a.Equals(c, appzero))
	assert.False(Te, a.Equals(Identity(2), appzero))
}

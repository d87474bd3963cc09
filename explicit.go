/*
 * explicit.go, part of gosymmetry.
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
	"strings"

	"github.com/sivlev/gosymmetry/m3"
)

//Explicit symbols are the generator encoding of the International Tables,
//e.g. "FCN$P2C000$P2B000$P3Q000$I2E666". Blocks are separated by "$". The
//first block is three characters whose first letter is the lattice letter;
//each following block is P or I (proper or improper), the rotation order,
//an axis designator letter and three digits giving the translation in
//twelfths of the cell, with digit 5 standing for 10/12.

const explicitDelimiter = "$"

//explicitRotations are the proper rotation matrices of the explicit-symbol
//notation, keyed by order plus axis designator. A..C designate the cell
//axes, D..G the in-plane diagonals, and Q the body diagonal. The improper
//counterparts are these matrices negated.
var explicitRotations = map[string][][]float64{
	"1A": {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	"2A": {{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	"2B": {{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	"2C": {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	"2D": {{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	"2E": {{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	"2F": {{1, -1, 0}, {0, -1, 0}, {0, 0, -1}},
	"2G": {{1, 0, 0}, {1, -1, 0}, {0, 0, -1}},
	"3Q": {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	"3C": {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	"4A": {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	"4B": {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	"4C": {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	"6C": {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

//MakeFromExplicitSymbol builds a group from an explicit symbol. With expand
//true the generated group is returned; otherwise the group holds the bare
//generators.
func MakeFromExplicitSymbol(text string, expand bool) (*SymmetryGroup, error) {
	blocks := strings.Split(text, explicitDelimiter)
	if len(blocks) < 2 {
		return nil, Error{fmt.Sprintf("explicit symbol %q needs a lattice block and at least one generator block", text), []string{"MakeFromExplicitSymbol"}, true}
	}
	head := blocks[0]
	if len(head) != 3 {
		return nil, Error{fmt.Sprintf("lattice block %q of explicit symbol %q is not 3 characters", head, text), []string{"MakeFromExplicitSymbol"}, true}
	}
	centering, ok := latticeTranslations[head[0]]
	if !ok {
		return nil, Error{fmt.Sprintf("unknown lattice letter %q in explicit symbol %q", head[:1], text), []string{"MakeFromExplicitSymbol"}, true}
	}

	gens := make([]*SymmetryOperation, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		op, err := parseExplicitBlock(block)
		if err != nil {
			return nil, errDecorate(err, "MakeFromExplicitSymbol "+text)
		}
		gens = append(gens, op)
	}

	group, err := MakeManually(3, gens, centering)
	if err != nil {
		return nil, errDecorate(err, "MakeFromExplicitSymbol "+text)
	}
	if expand {
		return group.GenerateGroup()
	}
	return group, nil
}

//parseExplicitBlock parses one generator block of the form [PI][12346][A-Z]ddd.
func parseExplicitBlock(block string) (*SymmetryOperation, error) {
	fail := func(format string, args ...interface{}) (*SymmetryOperation, error) {
		return nil, Error{fmt.Sprintf(format, args...), []string{"parseExplicitBlock"}, true}
	}
	if len(block) != 6 {
		return fail("generator block %q is not 6 characters", block)
	}
	if block[0] != 'P' && block[0] != 'I' {
		return fail("generator block %q must start with P or I", block)
	}
	switch block[1] {
	case '1', '2', '3', '4', '6':
	default:
		return fail("invalid rotation order %q in generator block %q", block[1:2], block)
	}
	if block[2] < 'A' || block[2] > 'Z' {
		return fail("invalid axis designator %q in generator block %q", block[2:3], block)
	}
	data, ok := explicitRotations[block[1:3]]
	if !ok {
		return fail("unknown rotation %q in generator block %q", block[1:3], block)
	}
	rot, err := m3.NewMatrix(data)
	if err != nil {
		panic(ErrTable)
	}
	if block[0] == 'I' {
		rot = rot.Neg()
	}

	trans := make(m3.Vector, 3)
	for i := 0; i < 3; i++ {
		d := block[3+i]
		if !isDigit(d) {
			return fail("invalid translation digit %q in generator block %q", block[3+i:4+i], block)
		}
		trans[i] = twelfths(d)
	}
	op, err := FromRotationAndTranslation(rot, trans)
	if err != nil {
		return nil, errDecorate(err, "parseExplicitBlock")
	}
	return op, nil
}

//twelfths decodes one translation digit: the digit counts twelfths of the
//cell, with "5" standing for 10/12 so that the 5/6 translations of the
//6-fold screws fit in one digit.
func twelfths(d byte) float64 {
	v := float64(d - '0')
	if d == '5' {
		v = 10
	}
	return v / 12.0
}

/*
 * hall.go, part of gosymmetry.
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

//Hall symbols encode a space group as a lattice letter followed by
//generator terms: "P 2ac 2ab", "-I 4bd 2c 3". A leading "-" makes the
//group centrosymmetric by doubling every generator with its inversion
//image. Each generator term is [-]order[screw][axis][translations...]; the
//axis may be omitted and is then implied by the term's position and the
//preceding term, following Hall's defaulting rules.

//latticeTranslations maps a lattice letter to its centering translations.
//Shared by the Hall and the explicit-symbol parsers.
var latticeTranslations = map[byte][]m3.Vector{
	'P': {},
	'A': {{0, 0.5, 0.5}},
	'B': {{0.5, 0, 0.5}},
	'C': {{0.5, 0.5, 0}},
	'I': {{0.5, 0.5, 0.5}},
	'R': {{2.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}, {1.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0}},
	'F': {{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}},
}

//hallRotations are the rotation matrices of Hall notation, keyed by order
//plus axis symbol. The diacritic axes (' and ") are 2-folds along the face
//diagonals relative to a principal axis, and "3*" is the 3-fold along the
//body diagonal.
var hallRotations = map[string][][]float64{
	"2x": {{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	"2y": {{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	"2z": {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	"3x": {{1, 0, 0}, {0, 0, -1}, {0, 1, -1}},
	"3y": {{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	"3z": {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	"4x": {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	"4y": {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	"4z": {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	"6x": {{1, 0, 0}, {0, 1, -1}, {0, 1, 0}},
	"6y": {{0, 0, 1}, {0, 1, 0}, {-1, 0, 1}},
	"6z": {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},

	"2'x": {{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
	"2'y": {{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	"2'z": {{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	`2"x`: {{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	`2"y`: {{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
	`2"z`: {{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},

	"3*": {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
}

//hallTranslations maps the translation letters of a generator term to their
//offset vectors.
var hallTranslations = map[byte]m3.Vector{
	'a': {0.5, 0, 0},
	'b': {0, 0.5, 0},
	'c': {0, 0, 0.5},
	'n': {0.5, 0.5, 0.5},
	'u': {0.25, 0, 0},
	'v': {0, 0.25, 0},
	'w': {0, 0, 0.25},
	'd': {0.25, 0.25, 0.25},
}

//hallScrews maps an (order, subscript digit) pair to the screw fraction
//along the rotation axis: 3 with 1 is the 3_1 screw with translation 1/3,
//4 with 3 is 4_3 with 3/4, and so on.
var hallScrews = map[[2]int]float64{
	{2, 1}: 1.0 / 2.0,
	{3, 1}: 1.0 / 3.0,
	{3, 2}: 2.0 / 3.0,
	{4, 1}: 1.0 / 4.0,
	{4, 2}: 1.0 / 2.0,
	{4, 3}: 3.0 / 4.0,
	{6, 1}: 1.0 / 6.0,
	{6, 2}: 1.0 / 3.0,
	{6, 3}: 1.0 / 2.0,
	{6, 4}: 2.0 / 3.0,
	{6, 5}: 5.0 / 6.0,
}

//MakeFromHallSymbol builds a group from a Hall symbol. With expand true the
//generated group is returned (GenerateGroup applied to the parsed
//generators); otherwise the group holds the bare generators.
func MakeFromHallSymbol(text string, expand bool) (*SymmetryGroup, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, Error{fmt.Sprintf("Hall symbol %q needs a lattice letter and at least one generator", text), []string{"MakeFromHallSymbol"}, true}
	}
	lat := fields[0]
	centro := false
	if strings.HasPrefix(lat, "-") {
		centro = true
		lat = lat[1:]
	}
	if len(lat) != 1 {
		return nil, Error{fmt.Sprintf("bad lattice token %q in Hall symbol %q", fields[0], text), []string{"MakeFromHallSymbol"}, true}
	}
	centering, ok := latticeTranslations[lat[0]]
	if !ok {
		return nil, Error{fmt.Sprintf("unknown lattice letter %q in Hall symbol %q", lat, text), []string{"MakeFromHallSymbol"}, true}
	}

	var gens []*SymmetryOperation
	prevOrder := 0
	prevAxis := byte(0) //no principal axis yet: a leading diacritic axis is an error
	for idx, tok := range fields[1:] {
		op, order, axis, err := parseHallGenerator(tok, idx, prevOrder, prevAxis)
		if err != nil {
			return nil, errDecorate(err, "MakeFromHallSymbol "+text)
		}
		gens = append(gens, op)
		if centro {
			inv, err := FromRotationAndTranslation(op.RotationPart().Neg(), op.TranslationPart())
			if err != nil {
				return nil, errDecorate(err, "MakeFromHallSymbol "+text)
			}
			gens = append(gens, inv)
		}
		prevOrder = order
		prevAxis = axis
	}

	group, err := MakeManually(3, gens, centering)
	if err != nil {
		return nil, errDecorate(err, "MakeFromHallSymbol "+text)
	}
	if expand {
		return group.GenerateGroup()
	}
	return group, nil
}

//parseHallGenerator parses one generator term. It returns the operation,
//the rotation order and the principal axis letter the following term's
//defaulting refers to.
func parseHallGenerator(tok string, idx, prevOrder int, prevAxis byte) (*SymmetryOperation, int, byte, error) {
	fail := func(format string, args ...interface{}) (*SymmetryOperation, int, byte, error) {
		return nil, 0, 0, Error{fmt.Sprintf(format, args...), []string{"parseHallGenerator"}, true}
	}
	i := 0
	neg := false
	if i < len(tok) && tok[i] == '-' {
		neg = true
		i++
	}
	if i >= len(tok) || !isDigit(tok[i]) {
		return fail("generator %q has no rotation order", tok)
	}
	order := int(tok[i] - '0')
	if order != 1 && order != 2 && order != 3 && order != 4 && order != 6 {
		return fail("invalid rotation order %d in generator %q", order, tok)
	}
	i++

	screw := 0
	if i < len(tok) && tok[i] >= '1' && tok[i] <= '5' {
		screw = int(tok[i] - '0')
		i++
	}

	axis := byte(0)
	if i < len(tok) {
		switch tok[i] {
		case 'x', 'y', 'z', '\'', '"', '*':
			axis = tok[i]
			i++
		}
	}
	if axis == 0 && order > 1 {
		//Hall's implied axes: the first rotation is along c; the second is
		//along a after a 2- or 4-fold, and along the diagonal of the
		//preceding axis after a 3- or 6-fold; later rotations are the body
		//diagonal.
		switch {
		case idx == 0:
			axis = 'z'
		case idx == 1:
			if prevOrder == 2 || prevOrder == 4 {
				axis = 'x'
			} else {
				axis = '\''
			}
		default:
			axis = '*'
		}
	}

	var rot *m3.Matrix
	principal := prevAxis
	if order == 1 {
		rot = m3.Identity(3)
	} else {
		key := fmt.Sprintf("%d%c", order, axis)
		if axis == '\'' || axis == '"' {
			if prevAxis != 'x' && prevAxis != 'y' && prevAxis != 'z' {
				return fail("diagonal axis in generator %q has no preceding principal axis", tok)
			}
			key = fmt.Sprintf("%d%c%c", order, axis, prevAxis)
		}
		data, ok := hallRotations[key]
		if !ok {
			return fail("unknown rotation %q in generator %q", key, tok)
		}
		var err error
		rot, err = m3.NewMatrix(data)
		if err != nil {
			panic(ErrTable)
		}
		if axis == 'x' || axis == 'y' || axis == 'z' {
			principal = axis
		}
	}
	if neg {
		rot = rot.Neg()
	}

	trans := make(m3.Vector, 3)
	if screw > 0 {
		frac, ok := hallScrews[[2]int{order, screw}]
		if !ok {
			return fail("no %d_%d screw exists in generator %q", order, screw, tok)
		}
		j := axisIndex(axis)
		if j < 0 {
			return fail("screw %d_%d in generator %q needs a principal axis", order, screw, tok)
		}
		trans[j] += frac
	}
	for ; i < len(tok); i++ {
		v, ok := hallTranslations[tok[i]]
		if !ok {
			return fail("unknown translation letter %q in generator %q", tok[i], tok)
		}
		trans = trans.Add(v)
	}
	for j := range trans {
		trans[j] = reduceNumberPositive(trans[j], appzero)
	}

	op, err := FromRotationAndTranslation(rot, trans)
	if err != nil {
		return nil, 0, 0, errDecorate(err, "parseHallGenerator")
	}
	return op, order, principal, nil
}

/*
 * symbol.go, part of gosymmetry.
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
	"math"
	"strconv"
	"strings"

	"github.com/sivlev/gosymmetry/m3"
)

//This file derives the canonical operator symbol of an operation in the
//style of the International Tables for Crystallography: the geometric type
//of the operation (rotation, screw, mirror, glide, rotoinversion...),
//its intrinsic translation, and the location of its fixed axis, plane or
//point. The geometric type follows from the determinant and the trace of
//the rotation part alone; the locations come from row-reducing the
//fixed-point system (W - I) x = -t.

//properOrders maps the trace of a proper crystallographic rotation to its
//order; improperOrders does the same for the rotoinversions.
var properOrders = map[int]int{-1: 2, 0: 3, 1: 4, 2: 6}
var improperOrders = map[int]int{-2: 6, -1: 4, 0: 3}

//ToSymbol returns the canonical operator symbol of the operation, e.g. "1",
//"t (0,1/2,1/2)", "2(1/2,0,0) x,0,1/4", "m x,1/4,z", "4- 1/4,1/4,z",
//"-1 (0,0,0)" or "-3+ -x-1/2,x+1,-x; 0,1/2,1/2".
//
//It panics with ErrNotCrystallographic if the determinant/trace pair of
//the rotation part matches no crystallographic operation: that is a broken
//invariant of the caller, not a property of any valid input.
func (S *SymmetryOperation) ToSymbol() string {
	if S.dim != 3 {
		panic(ErrNotCrystallographic)
	}
	w := S.RotationPart()
	det := int(math.Round(w.Det()))
	tr := int(math.Round(w.Trace()))
	switch {
	case det == 1 && tr == 3:
		if S.HasTranslation() {
			return "t (" + fracList(S.TranslationPart()) + ")"
		}
		return "1"
	case det == 1 && tr >= -1 && tr <= 2:
		return S.rotationSymbol(properOrders[tr])
	case det == -1 && tr == -3:
		return "-1 (" + fracList(S.pointLocation()) + ")"
	case det == -1 && tr == 1:
		return S.mirrorSymbol()
	case det == -1 && tr >= -2 && tr <= 0:
		return S.rotoinversionSymbol(improperOrders[tr])
	}
	panic(ErrNotCrystallographic)
}

//rotationSymbol builds the symbol of a proper rotation or screw rotation:
//the order, the rotation sense for orders above 2, the intrinsic (screw)
//translation when nonzero, and the fixed line.
func (S *SymmetryOperation) rotationSymbol(order int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(order))
	if order > 2 {
		b.WriteString(S.sense())
	}
	if intr := S.IntrinsicTranslation(); !intr.IsZero(appzero) {
		b.WriteString("(" + fracList(intr) + ")")
	}
	b.WriteString(" ")
	b.WriteString(S.lineLocation())
	return b.String()
}

//mirrorSymbol builds the symbol of a mirror or glide plane. A zero
//intrinsic translation gives a mirror "m"; otherwise the glide letter is
//chosen by matching the glide vector against the canonical vectors of the
//plane-normal direction class, with "g" as the fallback for the general
//glides that only occur in centered settings.
func (S *SymmetryOperation) mirrorSymbol() string {
	intr := S.IntrinsicTranslation()
	if intr.IsZero(appzero) {
		return "m " + S.planeLocation()
	}
	letter := glideLetter(intr, S.CharacteristicAxis())
	return letter + "(" + fracList(intr) + ") " + S.planeLocation()
}

//rotoinversionSymbol builds the symbol of a rotoinversion: the negated
//order, the sense, the fixed line, and after a semicolon the unique fixed
//point.
func (S *SymmetryOperation) rotoinversionSymbol(order int) string {
	var b strings.Builder
	b.WriteString("-" + strconv.Itoa(order))
	b.WriteString(S.sense())
	if intr := S.IntrinsicTranslation(); !intr.IsZero(appzero) {
		b.WriteString("(" + fracList(intr) + ")")
	}
	b.WriteString(" ")
	b.WriteString(S.rotoinversionLine())
	b.WriteString("; ")
	b.WriteString(fracList(S.pointLocation()))
	return b.String()
}

//sense returns "+" or "-" for the rotation sense of an operation whose
//proper part has order above 2. The sense is the sign of the determinant of
//the orientation matrix built from the characteristic axis u, a reference
//direction b not parallel to u, and the image of b under the proper part.
func (S *SymmetryOperation) sense() string {
	u := S.CharacteristicAxis()
	uf := make(m3.Vector, S.dim)
	for i, x := range u {
		uf[i] = float64(x)
	}
	var ref m3.Vector
	for i := 0; i < S.dim; i++ {
		e := make(m3.Vector, S.dim)
		e[i] = 1
		if !uf.Cross(e).IsZero(appzero) {
			ref = e
			break
		}
	}
	wp := S.proper()
	img := make(m3.Vector, S.dim)
	for i := 0; i < S.dim; i++ {
		for j := 0; j < S.dim; j++ {
			img[i] += wp.At(i, j) * ref[j]
		}
	}
	z, err := m3.NewMatrix([][]float64{uf, ref, img})
	if err != nil {
		panic(ErrTable)
	}
	if z.Det() > 0 {
		return "+"
	}
	return "-"
}

//fixedPointSolution row-reduces the augmented system (W - I | -rhs) and
//returns the reduced matrix, the pivot row of each column and the
//particular solution with every free variable set to zero.
func (S *SymmetryOperation) fixedPointSolution(rhs m3.Vector) (*m3.Matrix, []int, m3.Vector) {
	w := S.RotationPart()
	a, err := w.Sub(m3.Identity(S.dim))
	if err != nil {
		panic(ErrTable)
	}
	col := m3.Zeros(S.dim, 1)
	for i := 0; i < S.dim; i++ {
		col.Set(i, 0, -rhs[i])
	}
	aug, err := a.JoinRight(col)
	if err != nil {
		panic(ErrTable)
	}
	rr := aug.RREF()
	pivots := pivotColumns(rr)
	p := make(m3.Vector, S.dim)
	for c, row := range pivots {
		if row >= 0 {
			p[c] = rr.At(row, S.dim)
		}
	}
	return rr, pivots, p
}

//pointLocation returns the unique fixed point of an operation whose
//fixed-point system has full rank (inversions and rotoinversions).
func (S *SymmetryOperation) pointLocation() m3.Vector {
	_, _, p := S.fixedPointSolution(S.Location())
	return p
}

//lineLocation returns the fixed line of a proper rotation, written as a
//point on the line plus a parameter running along the characteristic axis.
func (S *SymmetryOperation) lineLocation() string {
	_, _, p := S.fixedPointSolution(S.Location())
	return formatLine(p, S.CharacteristicAxis())
}

//rotoinversionLine returns the axis line of a rotoinversion. The line runs
//through the unique fixed point along the characteristic axis; the
//particular point is slid along the axis until the coordinate belonging to
//the free column of the proper part's direction system is zero, matching
//the convention used for proper rotations.
func (S *SymmetryOperation) rotoinversionLine() string {
	q := S.pointLocation()
	u := S.CharacteristicAxis()
	a, err := S.proper().Sub(m3.Identity(S.dim))
	if err != nil {
		panic(ErrTable)
	}
	pivots := pivotColumns(a.RREF())
	k := -1
	for c, row := range pivots {
		if row < 0 {
			k = c
			break
		}
	}
	if k < 0 || u[k] == 0 {
		panic(ErrNotCrystallographic)
	}
	s := -q[k] / float64(u[k])
	p := make(m3.Vector, S.dim)
	for i := range p {
		p[i] = q[i] + s*float64(u[i])
		if math.Abs(p[i]) <= appzero {
			p[i] = 0
		}
	}
	return formatLine(p, u)
}

//planeLocation returns the fixed plane of a mirror or glide operation. Free
//coordinates appear as their own parameter letter; each dependent
//coordinate is written in terms of those parameters plus a constant. The
//parameter of a diagonal plane is named after the first coordinate it
//appears in, with its sign normalized so that the first appearance is
//positive ("x,x,z" rather than "-x,-x,z").
func (S *SymmetryOperation) planeLocation() string {
	rr, pivots, p := S.fixedPointSolution(S.Location())
	//coefficient of each free parameter in each coordinate
	coefs := make([][]float64, S.dim)
	for i := range coefs {
		coefs[i] = make([]float64, S.dim)
	}
	for j, row := range pivots {
		if row < 0 { //free column: its own parameter
			coefs[j][j] = 1
			continue
		}
		for k, krow := range pivots {
			if krow < 0 {
				coefs[j][k] = -rr.At(row, k)
			}
		}
	}
	letters := make([]byte, S.dim)
	for j, row := range pivots {
		if row >= 0 {
			continue
		}
		for i := 0; i < S.dim; i++ {
			c := coefs[i][j]
			if math.Abs(c) <= appzero {
				continue
			}
			letters[j] = xyzLetters[i]
			if c < 0 { //normalize the parameter sign
				for k := 0; k < S.dim; k++ {
					coefs[k][j] = -coefs[k][j]
				}
			}
			break
		}
	}
	coords := make([]string, S.dim)
	for i := 0; i < S.dim; i++ {
		var terms []axisTerm
		for j, row := range pivots {
			if row < 0 && math.Abs(coefs[i][j]) > appzero {
				terms = append(terms, axisTerm{coefs[i][j], letters[j]})
			}
		}
		coords[i] = formatCoordinate(terms, p[i])
	}
	return strings.Join(coords, ",")
}

//formatLine writes the line p + s*u with the parameter named after the
//first nonzero index of u.
func formatLine(p m3.Vector, u []int) string {
	var letter byte
	for i, x := range u {
		if x != 0 {
			letter = xyzLetters[i]
			break
		}
	}
	coords := make([]string, len(u))
	for i := range u {
		var terms []axisTerm
		if u[i] != 0 {
			terms = append(terms, axisTerm{float64(u[i]), letter})
		}
		coords[i] = formatCoordinate(terms, p[i])
	}
	return strings.Join(coords, ",")
}

//axisTerm is one parameter monomial of a location coordinate, e.g. the
//"-x" of "-x-1/2".
type axisTerm struct {
	coef   float64
	letter byte
}

//formatCoordinate renders one coordinate of a location string: the
//parameter terms in order, then the constant. A coordinate without terms is
//the constant alone, "0" included.
func formatCoordinate(terms []axisTerm, c float64) string {
	var b strings.Builder
	for _, t := range terms {
		if t.coef < 0 {
			b.WriteByte('-')
		} else if b.Len() > 0 {
			b.WriteByte('+')
		}
		if a := math.Abs(t.coef); math.Abs(a-1) > appzero {
			b.WriteString(m3.FracFromFloat(a).String())
		}
		b.WriteByte(t.letter)
	}
	if math.Abs(c) > appzero {
		if c < 0 {
			b.WriteByte('-')
		} else if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(m3.FracFromFloat(math.Abs(c)).String())
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

//fracList renders a vector as comma-separated exact fractions.
func fracList(v m3.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = m3.FracFromFloat(x).String()
	}
	return strings.Join(parts, ",")
}

//Glide letters. The canonical glide vectors depend on the direction class
//of the plane normal: a plane normal to a cell axis admits the axial glides
//and the in-plane n and d diagonals, while diagonal planes admit the
//half-body-diagonal n and the quarter d glides. Everything unmatched is the
//general glide "g".
var glideAxial = []struct {
	v      [3]float64
	letter string
}{
	{[3]float64{0.5, 0, 0}, "a"},
	{[3]float64{0, 0.5, 0}, "b"},
	{[3]float64{0, 0, 0.5}, "c"},
	{[3]float64{0, 0.5, 0.5}, "n"},
	{[3]float64{0.5, 0, 0.5}, "n"},
	{[3]float64{0.5, 0.5, 0}, "n"},
}

var glideDiagonal = []struct {
	v      [3]float64
	letter string
}{
	{[3]float64{0.5, 0, 0}, "a"},
	{[3]float64{0, 0.5, 0}, "b"},
	{[3]float64{0, 0, 0.5}, "c"},
	{[3]float64{0.5, 0.5, 0.5}, "n"},
	{[3]float64{0.5, 0.5, 0}, "n"},
	{[3]float64{0.5, 0, 0.5}, "n"},
	{[3]float64{0, 0.5, 0.5}, "n"},
}

//glideLetter picks the glide-plane letter for a glide vector and a plane
//normal (the characteristic axis of the operation). The vector is
//canonicalized into [0,1) per axis before matching.
func glideLetter(intr m3.Vector, normal []int) string {
	var g [3]float64
	for i := 0; i < 3; i++ {
		g[i] = reduceNumberPositive(intr[i], appzero)
	}
	nonzero := 0
	for _, x := range normal {
		if x != 0 {
			nonzero++
		}
	}
	table := glideAxial
	if nonzero > 1 {
		table = glideDiagonal
	}
	if nonzero < 3 { //no d glides exist on body-diagonal normals
		if isQuarterVector(g) {
			return "d"
		}
	}
	for _, e := range table {
		if vecMatch(g, e.v) {
			return e.letter
		}
	}
	return "g"
}

//isQuarterVector reports whether every nonzero component of g is 1/4 or
//3/4, with at least two of them nonzero: the shape of every d-glide vector.
func isQuarterVector(g [3]float64) bool {
	nonzero := 0
	for _, x := range g {
		if math.Abs(x) <= appzero {
			continue
		}
		if math.Abs(x-0.25) > appzero && math.Abs(x-0.75) > appzero {
			return false
		}
		nonzero++
	}
	return nonzero >= 2
}

func vecMatch(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > appzero {
			return false
		}
	}
	return true
}

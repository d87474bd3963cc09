/*
 * xyz.go, part of gosymmetry.
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
	"math"
	"strings"

	"github.com/sivlev/gosymmetry/m3"
)

//The xyz notation writes an operation as one algebraic term per coordinate,
//e.g. "-x+1/2,y,-z+1/2". Each term is a sum of signed monomials: an optional
//rational coefficient immediately followed by an axis letter, or a bare
//rational constant. Every axis letter and the constant may appear at most
//once per term.

const xyzLetters = "xyz"

//FromXYZ parses an operation from its xyz notation. The text must contain
//exactly three comma-separated terms. Parsed constants are canonicalized
//into (-1,1) by stripping their integer part toward zero.
func FromXYZ(text string) (*SymmetryOperation, error) {
	terms := strings.Split(text, ",")
	if len(terms) != 3 {
		return nil, Error{fmt.Sprintf("%q has %d terms, want 3", text, len(terms)), []string{"FromXYZ"}, true}
	}
	dim := len(terms)
	m := m3.Zeros(dim+1, dim+1)
	m.Set(dim, dim, 1)
	for i, term := range terms {
		row := make([]float64, dim+1)
		if err := parseXYZTerm(term, row); err != nil {
			return nil, errDecorate(err, "FromXYZ")
		}
		for j := 0; j <= dim; j++ {
			m.Set(i, j, row[j])
		}
	}
	return newOperation(m)
}

//parseXYZTerm scans one term of an xyz string into row, which holds the
//three rotation coefficients followed by the translation constant.
func parseXYZTerm(term string, row []float64) error {
	s := strings.ReplaceAll(term, " ", "")
	if s == "" {
		return Error{"empty term", []string{"parseXYZTerm"}, true}
	}
	dim := len(row) - 1
	seen := make([]bool, len(row))
	i := 0
	for i < len(s) {
		sign := 1.0
		switch s[i] {
		case '+':
			i++
		case '-':
			sign = -1
			i++
		}
		if i >= len(s) {
			return Error{fmt.Sprintf("dangling sign in term %q", term), []string{"parseXYZTerm"}, true}
		}
		numStr, next := scanRational(s, i)
		i = next
		if i < len(s) && axisIndex(s[i]) >= 0 {
			j := axisIndex(s[i])
			if seen[j] {
				return Error{fmt.Sprintf("axis %q appears twice in term %q", s[i], term), []string{"parseXYZTerm"}, true}
			}
			coef := sign
			if numStr != "" {
				f, err := m3.FracFromString(numStr)
				if err != nil {
					return errDecorate(err, "parseXYZTerm")
				}
				coef = sign * f.Float()
			}
			row[j] = coef
			seen[j] = true
			i++
			continue
		}
		if numStr == "" {
			return Error{fmt.Sprintf("unexpected character %q in term %q", s[i], term), []string{"parseXYZTerm"}, true}
		}
		if seen[dim] {
			return Error{fmt.Sprintf("constant appears twice in term %q", term), []string{"parseXYZTerm"}, true}
		}
		f, err := m3.FracFromString(numStr)
		if err != nil {
			return errDecorate(err, "parseXYZTerm")
		}
		row[dim] = reduceNumber(sign*f.Float(), appzero)
		seen[dim] = true
	}
	return nil
}

//scanRational consumes a rational literal ("2", "0.5", "1/2") starting at i
//and returns it together with the position after it. An empty string is
//returned when no literal starts at i.
func scanRational(s string, i int) (string, int) {
	start := i
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i == start {
		return "", start
	}
	if i < len(s) && s[i] == '/' {
		j := i + 1
		for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
			j++
		}
		if j > i+1 {
			i = j
		}
	}
	return s[start:i], i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func axisIndex(b byte) int {
	switch b {
	case 'x', 'X':
		return 0
	case 'y', 'Y':
		return 1
	case 'z', 'Z':
		return 2
	}
	return -1
}

//ToXYZ returns the xyz notation of the operation. Coefficients of magnitude
//one drop their digit; every other value is written as an exact fraction.
func (S *SymmetryOperation) ToXYZ() string {
	rows := make([]string, S.dim)
	for i := 0; i < S.dim; i++ {
		var b strings.Builder
		for j := 0; j < S.dim; j++ {
			c := S.matrix.At(i, j)
			if math.Abs(c) <= appzero {
				continue
			}
			if c > 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			if math.Abs(math.Abs(c)-1) > appzero {
				b.WriteString(m3.FracFromFloat(math.Abs(c)).String())
			}
			b.WriteByte(xyzLetters[j])
		}
		t := S.matrix.At(i, S.dim)
		if math.Abs(t) > appzero {
			if t > 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			b.WriteString(m3.FracFromFloat(math.Abs(t)).String())
		}
		s := strings.TrimPrefix(b.String(), "+")
		if s == "" {
			s = "0"
		}
		rows[i] = s
	}
	return strings.Join(rows, ",")
}

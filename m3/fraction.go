/*
 * fraction.go, part of gosymmetry.
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

package m3

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

//maxDenominator bounds the continued-fraction reconstruction in
//FracFromFloat. Crystallographic translations have denominators up to 12;
//anything beyond this bound means the input was not a crystallographic
//fraction and the closest approximation found so far is returned.
const maxDenominator = 10000

//Fraction is an exact rational number. It exists so that floating-point
//fractional coordinates can be displayed exactly, as in "1/3" or "-5/6".
type Fraction struct {
	r *big.Rat
}

//FracFromFloat reconstructs the exact rational closest to x, using a
//continued-fraction expansion that stops as soon as the approximation is
//within Appzero of x.
func FracFromFloat(x float64) Fraction {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	var h0, h1, k0, k1 int64 = 0, 1, 1, 0
	b := x
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(b))
		h0, h1 = h1, a*h1+h0
		k0, k1 = k1, a*k1+k0
		if k1 > maxDenominator {
			h1, k1 = h0, k0
			break
		}
		if math.Abs(x-float64(h1)/float64(k1)) <= Appzero {
			break
		}
		rest := b - math.Floor(b)
		if rest < 1e-12 {
			break
		}
		b = 1 / rest
	}
	if neg {
		h1 = -h1
	}
	return Fraction{big.NewRat(h1, k1)}
}

//FracFromString parses a fraction from its textual form. Accepted forms are
//a plain integer ("2", "-1"), an explicit fraction ("1/2", "-2/3") and a
//decimal number ("0.25").
func FracFromString(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, Error{fmt.Sprintf("%q is not a valid fraction", s), []string{"m3.FracFromString"}, true}
	}
	return Fraction{r}, nil
}

//Float returns the float64 value of the fraction.
func (f Fraction) Float() float64 {
	if f.r == nil {
		return 0
	}
	v, _ := f.r.Float64()
	return v
}

//IsZero reports whether the fraction is exactly zero.
func (f Fraction) IsZero() bool {
	return f.r == nil || f.r.Sign() == 0
}

//Parts returns the numerator and the (positive) denominator of the
//fraction in lowest terms. Within this library the denominators are the
//small crystallographic ones, so int64 is ample.
func (f Fraction) Parts() (int64, int64) {
	if f.r == nil {
		return 0, 1
	}
	return f.r.Num().Int64(), f.r.Denom().Int64()
}

//String returns the fraction in its exact form: "0", "1", "-1/2", "2/3".
func (f Fraction) String() string {
	if f.r == nil {
		return "0"
	}
	return f.r.RatString()
}

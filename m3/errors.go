/*
 * errors.go, part of gosymmetry.
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

//Error is the error type returned by the factories and fallible operations
//of this package. The Decorate method allows adding information to the error
//as it travels up the call stack, without changing its type.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. If dec is empty, the current decoration is
//returned unchanged.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It signals a broken internal
//invariant rather than bad user input; for the latter use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotSquare      = PanicMsg("goSymmetry/m3: matrix is not square")
	ErrShape          = PanicMsg("goSymmetry/m3: dimension mismatch")
	ErrNoCrossProduct = PanicMsg("goSymmetry/m3: cross product requires 3-D vectors")
	ErrNilMatrix      = PanicMsg("goSymmetry/m3: nil matrix")
)

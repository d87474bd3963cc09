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

package symmetry

//Two kinds of failure exist in this library. Malformed input (bad matrix
//shape, bad xyz/Hall/explicit text, unknown table key) is reported through
//the Error type and always propagated to the caller. A broken domain
//invariant (a rotation part that is not a valid crystallographic operation
//reaching the operator-symbol case analysis) is a bug, not bad input, and
//panics with a PanicMsg.

//Error is the error type for invalid arguments. The Decorate method allows
//adding information to the error as it travels up the call stack, without
//changing its type.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice. If dec is empty, the current
//decoration is returned unchanged.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//errorInt is implemented by the error types of this module, including
//those of the m3 subpackage.
type errorInt interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//errDecorate asserts that err implements errorInt and decorates it with the
//caller's name before returning it. Calling it with any other error type is
//a bug and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It signals a broken invariant,
//not a user-input error; the latter uses Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	//ErrNotCrystallographic means the (determinant, trace) pair of a rotation
	//part matched no branch of the operator-symbol case analysis. Valid
	//crystallographic rotation parts always match one.
	ErrNotCrystallographic = PanicMsg("goSymmetry: rotation part is not a crystallographic operation")
	//ErrNoAxis means a characteristic axis was requested for an operation
	//whose rotation part fixes every direction (identity or inversion).
	ErrNoAxis = PanicMsg("goSymmetry: operation has no characteristic axis")
	ErrTable  = PanicMsg("goSymmetry: malformed internal lookup table")
)

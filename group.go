/*
 * group.go, part of gosymmetry.
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

	"github.com/sivlev/gosymmetry/m3"
)

//SymmetryGroup is an immutable collection of symmetry operations together
//with the primary translation lattice and the centering translations of the
//cell. The operation sequence is ordered: the order matters while a group
//is being generated, not afterwards. GenerateGroup and ExpandGroup return
//new, independent groups; the receiver is never touched.
type SymmetryGroup struct {
	dim        int
	operations []*SymmetryOperation
	primary    []m3.Vector
	centering  []m3.Vector
	ord        int //0 until set by GenerateGroup or ExpandGroup
}

//MakeManually builds a group of the given dimensionality from a list of
//operations and centering translations. The primary translations are the
//standard basis. Every operation must have the group's dimensionality and
//every centering vector exactly dim components.
func MakeManually(dim int, ops []*SymmetryOperation, centering []m3.Vector) (*SymmetryGroup, error) {
	for i, op := range ops {
		if op.Dimensionality() != dim {
			return nil, Error{fmt.Sprintf("operation %d has dimensionality %d, group has %d", i, op.Dimensionality(), dim), []string{"MakeManually"}, true}
		}
	}
	cent := make([]m3.Vector, len(centering))
	for i, c := range centering {
		if len(c) != dim {
			return nil, Error{fmt.Sprintf("centering translation %d has %d components, want %d", i, len(c), dim), []string{"MakeManually"}, true}
		}
		cent[i] = c.Array()
	}
	primary := make([]m3.Vector, dim)
	for i := range primary {
		primary[i] = make(m3.Vector, dim)
		primary[i][i] = 1
	}
	opsCopy := make([]*SymmetryOperation, len(ops))
	copy(opsCopy, ops)
	return &SymmetryGroup{dim: dim, operations: opsCopy, primary: primary, centering: cent}, nil
}

//Dimensionality returns the dimensionality of the group.
func (G *SymmetryGroup) Dimensionality() int { return G.dim }

//Operations returns the operations of the group. The caller must not
//modify the returned slice.
func (G *SymmetryGroup) Operations() []*SymmetryOperation { return G.operations }

//PrimaryTranslations returns the primary lattice basis of the group.
func (G *SymmetryGroup) PrimaryTranslations() []m3.Vector { return G.primary }

//CenteringTranslations returns the centering translations of the group.
func (G *SymmetryGroup) CenteringTranslations() []m3.Vector { return G.centering }

//Order returns the total number of operations of the group, centering
//included. It is only known for groups returned by GenerateGroup or
//ExpandGroup; for any other group it is 0.
func (G *SymmetryGroup) Order() int { return G.ord }

//Multiplicity returns the order the group would have after generation and
//expansion of its current representative set: the operation count times the
//number of lattice cosets.
func (G *SymmetryGroup) Multiplicity() int {
	return len(G.operations) * (len(G.centering) + 1)
}

//GenerateGroup treats the current operations as generators and returns a
//new group holding one representative per distinct rotation part of the
//generated point group: closure with respect to composition, modulo
//translations. For each generator the successive powers up to its rotation
//order are multiplied against every operation collected so far, and each
//product with a new rotation part is kept.
//
//Termination assumes every generator's rotation part has a finite
//multiplicative order, which holds for every crystallographic operation;
//the method does not guard against arbitrary non-crystallographic input.
//The cost is bounded by the generator count times the square of the point
//group order, fine for crystallographic groups.
func (G *SymmetryGroup) GenerateGroup() (*SymmetryGroup, error) {
	ident := m3.Identity(G.dim)
	result := []*SymmetryOperation{Identity(G.dim)}
	for _, g := range G.operations {
		//successive powers of g until the rotation part cycles back
		var powers []*SymmetryOperation
		p := g
		for !p.RotationPart().EqualsTol(ident, appzero) {
			powers = append(powers, p)
			var err error
			p, err = p.Product(g)
			if err != nil {
				return nil, errDecorate(err, "GenerateGroup")
			}
		}
		for _, pw := range powers {
			for i := 0; i < len(result); i++ { //result grows while iterating
				cand, err := result[i].Product(pw)
				if err != nil {
					return nil, errDecorate(err, "GenerateGroup")
				}
				if !isRotationPartInArray(cand, result) {
					result = append(result, cand)
				}
			}
		}
	}
	out, err := MakeManually(G.dim, result, G.centering)
	if err != nil {
		return nil, errDecorate(err, "GenerateGroup")
	}
	out.ord = len(result) * (len(G.centering) + 1)
	return out, nil
}

//ExpandGroup resolves the centering translations into explicit operations:
//for every centering vector and every representative, a new operation with
//the centering added to its translation (canonicalized into [0,1) per axis)
//joins the group. The originals stay as the zero-centering coset. The
//returned group has no centering translations left and its order is the
//full operation count.
func (G *SymmetryGroup) ExpandGroup() (*SymmetryGroup, error) {
	ops := make([]*SymmetryOperation, len(G.operations), len(G.operations)*(len(G.centering)+1))
	copy(ops, G.operations)
	for _, c := range G.centering {
		for _, op := range G.operations {
			t := op.TranslationPart().Add(c)
			for i := range t {
				t[i] = reduceNumberPositive(t[i], appzero)
			}
			nop, err := FromRotationAndTranslation(op.RotationPart(), t)
			if err != nil {
				return nil, errDecorate(err, "ExpandGroup")
			}
			ops = append(ops, nop)
		}
	}
	out, err := MakeManually(G.dim, ops, nil)
	if err != nil {
		return nil, errDecorate(err, "ExpandGroup")
	}
	out.ord = len(ops)
	return out, nil
}

//IsEqualIgnoreTranslations reports whether the two groups hold the same
//operations, compared by their full augmented matrices, in any order and
//without reusing a match. Lattice data is ignored.
func (G *SymmetryGroup) IsEqualIgnoreTranslations(H *SymmetryGroup) bool {
	if len(G.operations) != len(H.operations) {
		return false
	}
	used := make([]bool, len(H.operations))
	for _, op := range G.operations {
		found := false
		for j, other := range H.operations {
			if used[j] {
				continue
			}
			if op.Equals(other, appzero) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

//IsEqual reports whether the two groups are equal: same primary
//translations and centering translations, element-wise and in order, and
//the same operations as in IsEqualIgnoreTranslations.
func (G *SymmetryGroup) IsEqual(H *SymmetryGroup) bool {
	if len(G.primary) != len(H.primary) || len(G.centering) != len(H.centering) {
		return false
	}
	for i := range G.primary {
		if !vectorEquals(G.primary[i], H.primary[i]) {
			return false
		}
	}
	for i := range G.centering {
		if !vectorEquals(G.centering[i], H.centering[i]) {
			return false
		}
	}
	return G.IsEqualIgnoreTranslations(H)
}

func vectorEquals(a, b m3.Vector) bool {
	if len(a) != len(b) {
		return false
	}
	return a.Sub(b).IsZero(appzero)
}

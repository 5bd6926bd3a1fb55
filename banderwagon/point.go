// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package banderwagon implements the Banderwagon group: the prime-order
// quotient of the Bandersnatch curve by its order-2 subgroup {O, (0,-1)},
// used as the Pedersen-commitment group for Verkle-trie IPA proofs. Two
// Bandersnatch points (x,y) and (-x,-y) — related by translation by the
// order-2 point (0,-1) — represent the same Banderwagon element; equality,
// encoding and decoding all respect that quotient.
package banderwagon

import (
	"github.com/mratsim/constantine-go/bandersnatch"
	"github.com/mratsim/constantine-go/bandersnatch/fr"
	basefield "github.com/mratsim/constantine-go/bls12381/fr"
)

// Element is a Banderwagon group element, represented by any Bandersnatch
// point in its equivalence class under the order-2 quotient.
type Element struct {
	p bandersnatch.Point
}

// SetInfinity sets z to the group identity.
func (z *Element) SetInfinity() *Element {
	z.p.SetInfinity()
	return z
}

// IsInfinity reports whether z is the group identity. The identity coset is
// exactly the two points with x == 0 ({(0,1), (0,-1)}, the order-2
// subgroup Banderwagon quotients by), so a strict x == 0 affine check
// covers both representatives without needing y.
func (z *Element) IsInfinity() bool {
	x, _, _ := z.p.Affine()
	return x.IsZero()
}

// Generator returns the standard Banderwagon generator (the Bandersnatch
// generator's class).
func Generator() Element {
	return Element{p: bandersnatch.Generator()}
}

// FromBandersnatch wraps a Bandersnatch point as a Banderwagon element.
func FromBandersnatch(p *bandersnatch.Point) Element {
	return Element{p: *p}
}

// Equal reports whether z and x represent the same Banderwagon element:
// either p == q or p equals q's partner (-x,-y) (quotient by
// (x,y) ~ (-x,-y), which is Edwards negation (-x,y) composed with adding
// the order-2 point (0,-1) — see package doc).
func (z *Element) Equal(x *Element) bool {
	if z.p.Equal(&x.p) {
		return true
	}
	// (-X : -Y : T : Z) is the affine point (-x,-y); T = XY/Z is unchanged.
	partner := bandersnatch.Point{T: x.p.T, Z: x.p.Z}
	partner.X.Neg(&x.p.X)
	partner.Y.Neg(&x.p.Y)
	return z.p.Equal(&partner)
}

// Add computes z = x+y in the quotient group (ordinary Bandersnatch
// addition commutes with the quotient map).
func (z *Element) Add(x, y *Element) *Element {
	z.p.Add(&x.p, &y.p)
	return z
}

// Double computes z = 2x.
func (z *Element) Double(x *Element) *Element {
	z.p.Double(&x.p)
	return z
}

// Neg computes z = -x.
func (z *Element) Neg(x *Element) *Element {
	z.p.Neg(&x.p)
	return z
}

// Sub computes z = x-y.
func (z *Element) Sub(x, y *Element) *Element {
	z.p.Sub(&x.p, &y.p)
	return z
}

// ScalarMul computes z = [s]x in constant time.
func (z *Element) ScalarMul(x *Element, s *fr.Element) *Element {
	z.p.ScalarMul(&x.p, s)
	return z
}

// ScalarMulVartime computes z = [s]x for a public scalar.
func (z *Element) ScalarMulVartime(x *Element, s *fr.Element) *Element {
	z.p.ScalarMulVartime(&x.p, s)
	return z
}

// MSM computes sum(scalars[i] * points[i]) by plain accumulation. Pippenger
// bucketing for this group lives in package scalarmul; this is the
// reference used to cross-check it.
func MSM(points []Element, scalars []fr.Element) Element {
	var acc Element
	acc.SetInfinity()
	for i := range points {
		var term Element
		term.ScalarMulVartime(&points[i], &scalars[i])
		acc.Add(&acc, &term)
	}
	return acc
}

// canonicalAffine returns the affine (x, y) of the coset representative
// whose y is the lexicographically larger of {y, -y} — the canonical
// choice EncodeCompressed relies on, since it lets DecodeCompressed
// recover y from x alone without an extra sign bit.
func (z *Element) canonicalAffine() (basefield.Element, basefield.Element) {
	x, y, _ := z.p.Affine()
	var negY basefield.Element
	negY.Neg(&y)
	yb := y.Bytes()
	nb := negY.Bytes()
	larger := false
	for i := range yb {
		if yb[i] != nb[i] {
			larger = yb[i] > nb[i]
			break
		}
	}
	if !larger {
		x.Neg(&x)
		y.Neg(&y)
	}
	return x, y
}

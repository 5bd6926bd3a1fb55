// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package banderwagon

import (
	"github.com/mratsim/constantine-go/bandersnatch"
	basefield "github.com/mratsim/constantine-go/bls12381/fr"
	"github.com/mratsim/constantine-go/codec"
)

// EncodeCompressed serializes z as the 32-byte big-endian encoding of its
// canonical representative's x-coordinate (§6: "32 bytes encoding x, with
// the implicit choice that y is the lexicographically larger root"). No
// sign bit is needed: the canonical-y convention lets decode recover y
// unambiguously from x via the curve equation.
func EncodeCompressed(z *Element) [32]byte {
	x, _ := z.canonicalAffine()
	return x.Bytes()
}

// DecodeCompressed parses a 32-byte encoding, recomputing y from x via the
// curve equation -5x²+y²=1+dx²y² (solved as y²=(1-ax²)/(1-dx²)), checking
// curve membership, and checking the decoded point's class has order
// dividing n in the quotient (the "order-2 subgroup quotient membership"
// check named in §6): [n]P must collapse to the identity coset (x == 0).
func DecodeCompressed(b []byte) (Element, codec.Status) {
	if len(b) != 32 {
		return Element{}, codec.InvalidEncoding
	}
	var x basefield.Element
	if err := x.FromBigEndianBytes(b); err != nil {
		return Element{}, codec.CoordinateGreaterThanOrEqualModulus
	}

	a := bandersnatch.CurveA()
	d := bandersnatch.CurveD()

	var x2, aX2, dX2, num, den, one basefield.Element
	one.SetOne()
	x2.Square(&x)
	aX2.Mul(&a, &x2)
	num.Sub(&one, &aX2) // 1 - a*x^2
	dX2.Mul(&d, &x2)
	den.Sub(&one, &dX2) // 1 - d*x^2
	if den.IsZero() {
		return Element{}, codec.PointNotOnCurve
	}
	var denInv, y2 basefield.Element
	denInv.Inv(&den)
	y2.Mul(&num, &denInv)

	var y basefield.Element
	if !y.SqrtIfSquare(&y2) {
		return Element{}, codec.PointNotOnCurve
	}

	// Canonicalize to the representative whose y is the larger of {y, -y};
	// since x==0 trivially satisfies this either way, this also handles
	// the identity encoding uniformly.
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
	xCanon := x
	yCanon := y
	if !larger {
		yCanon.Set(&negY)
	}

	p := bandersnatch.FromAffine(&xCanon, &yCanon)
	if !p.IsOnCurve() {
		return Element{}, codec.PointNotOnCurve
	}
	if !isOrderDividingN(&p) {
		return Element{}, codec.PointNotInSubgroup
	}
	return Element{p: p}, codec.Success
}

// isOrderDividingN reports whether [n]p collapses to the identity coset
// (x == 0), i.e. p's Banderwagon class has order dividing n. n cannot be
// represented by bandersnatch/fr.Element (it reduces mod n to 0 there), so
// the multiplication walks bandersnatch.SubgroupOrderBytes directly.
func isOrderDividingN(p *bandersnatch.Point) bool {
	var acc bandersnatch.Point
	acc.SetInfinity()
	base := *p
	nBytes := bandersnatch.SubgroupOrderBytes
	for i := 0; i < 253; i++ {
		byteIdx := 31 - i/8
		bitIdx := uint(i % 8)
		if (nBytes[byteIdx]>>bitIdx)&1 == 1 {
			acc.Add(&acc, &base)
		}
		base.Double(&base)
	}
	x, _, _ := acc.Affine()
	return x.IsZero()
}

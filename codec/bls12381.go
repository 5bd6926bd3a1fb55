// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/mratsim/constantine-go/bls12381/fp"
	"github.com/mratsim/constantine-go/bls12381/fp2"
	"github.com/mratsim/constantine-go/bls12381/g1"
	"github.com/mratsim/constantine-go/bls12381/g2"
)

// The top three bits of a BLS12-381 point encoding's first byte carry the
// compressed/infinity/sign(y) flags (the zkcrypto/blst convention); the
// remaining 381 bits of the x-coordinate (and, for G2, its second Fp
// component) follow big-endian.
const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSignY      = 0x20
	flagMask       = flagCompressed | flagInfinity | flagSignY
)

// groupOrderBLS12381 is r, big-endian, used by the G2 subgroup check (G1's
// cofactor is 1, so on-curve already implies in-subgroup there).
var groupOrderBLS12381 = [32]byte{
	0x73, 0xed, 0xa7, 0x53, 0x29, 0x9d, 0x7d, 0x48, 0x33, 0x39, 0xd8, 0x08, 0x09, 0xa1, 0xd8, 0x05,
	0x53, 0xbd, 0xa4, 0x02, 0xff, 0xfe, 0x5b, 0xfe, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x01,
}

// fpGreaterThanNeg reports whether y's big-endian encoding is
// lexicographically larger than (-y)'s, the "sign" bit convention §6
// specifies for compressed points.
func fpGreaterThanNeg(y *fp.Element) bool {
	var negY fp.Element
	negY.Neg(y)
	yb := y.Bytes()
	nb := negY.Bytes()
	for i := range yb {
		if yb[i] != nb[i] {
			return yb[i] > nb[i]
		}
	}
	return false
}

// EncodeG1Compressed encodes p as the 48-byte compressed form: flag byte
// folded into x's top byte, y reconstructed on decode from the sign flag.
func EncodeG1Compressed(p *g1.Point) [48]byte {
	var out [48]byte
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	xb := x.Bytes()
	copy(out[:], xb[:])
	out[0] |= flagCompressed
	if fpGreaterThanNeg(&y) {
		out[0] |= flagSignY
	}
	return out
}

// DecodeG1Compressed decodes a 48-byte compressed BLS12-381 G1 point.
func DecodeG1Compressed(b []byte) (g1.Point, Status) {
	if len(b) != 48 {
		return g1.Point{}, InvalidEncoding
	}
	flags := b[0] & flagMask
	if flags&flagCompressed == 0 {
		return g1.Point{}, InvalidEncoding
	}
	if flags&flagInfinity != 0 {
		var p g1.Point
		p.SetInfinity()
		return p, PointAtInfinity
	}
	signY := flags&flagSignY != 0

	var xb [48]byte
	copy(xb[:], b)
	xb[0] &^= flagMask
	var x fp.Element
	if err := x.FromBigEndianBytes(xb[:]); err != nil {
		return g1.Point{}, CoordinateGreaterThanOrEqualModulus
	}

	var rhs, four fp.Element
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	four.FromUint64(4)
	rhs.Add(&rhs, &four)
	var y fp.Element
	if !y.SqrtIfSquare(&rhs) {
		return g1.Point{}, PointNotOnCurve
	}
	if fpGreaterThanNeg(&y) != signY {
		y.Neg(&y)
	}
	p := g1.FromAffine(&x, &y)
	if !p.IsOnCurve() {
		return g1.Point{}, PointNotOnCurve
	}
	return p, Success
}

// EncodeG1Uncompressed encodes p as the 96-byte uncompressed form (x || y,
// no sign bit, infinity flag only).
func EncodeG1Uncompressed(p *g1.Point) [96]byte {
	var out [96]byte
	if p.IsInfinity() {
		out[0] = flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[:48], xb[:])
	copy(out[48:], yb[:])
	return out
}

// DecodeG1Uncompressed decodes a 96-byte uncompressed BLS12-381 G1 point.
func DecodeG1Uncompressed(b []byte) (g1.Point, Status) {
	if len(b) != 96 {
		return g1.Point{}, InvalidEncoding
	}
	if b[0]&flagCompressed != 0 {
		return g1.Point{}, InvalidEncoding
	}
	if b[0]&flagInfinity != 0 {
		var p g1.Point
		p.SetInfinity()
		return p, PointAtInfinity
	}
	var xb, yb [48]byte
	copy(xb[:], b[:48])
	copy(yb[:], b[48:])
	xb[0] &^= flagMask
	var x, y fp.Element
	if err := x.FromBigEndianBytes(xb[:]); err != nil {
		return g1.Point{}, CoordinateGreaterThanOrEqualModulus
	}
	if err := y.FromBigEndianBytes(yb[:]); err != nil {
		return g1.Point{}, CoordinateGreaterThanOrEqualModulus
	}
	p := g1.FromAffine(&x, &y)
	if !p.IsOnCurve() {
		return g1.Point{}, PointNotOnCurve
	}
	return p, Success
}

// EncodeG2Compressed encodes q as the 96-byte compressed form: flag byte
// folded into x.C1's top byte (gnark-crypto/blst component ordering), y
// reconstructed on decode from the sign flag applied to y.C1.
func EncodeG2Compressed(q *g2.Point) [96]byte {
	var out [96]byte
	if q.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := q.Affine()
	c1b := x.C1.Bytes()
	c0b := x.C0.Bytes()
	copy(out[:48], c1b[:])
	copy(out[48:], c0b[:])
	out[0] |= flagCompressed
	if fpGreaterThanNeg(&y.C1) {
		out[0] |= flagSignY
	}
	return out
}

// DecodeG2Compressed decodes a 96-byte compressed BLS12-381 G2 point,
// checking both the twist equation and prime-order subgroup membership
// (G2's cofactor is not 1, unlike G1's).
func DecodeG2Compressed(b []byte) (g2.Point, Status) {
	if len(b) != 96 {
		return g2.Point{}, InvalidEncoding
	}
	flags := b[0] & flagMask
	if flags&flagCompressed == 0 {
		return g2.Point{}, InvalidEncoding
	}
	if flags&flagInfinity != 0 {
		var p g2.Point
		p.SetInfinity()
		return p, PointAtInfinity
	}
	signY := flags&flagSignY != 0

	var c1b, c0b [48]byte
	copy(c1b[:], b[:48])
	copy(c0b[:], b[48:])
	c1b[0] &^= flagMask
	var x fp2.Element
	if err := x.C1.FromBigEndianBytes(c1b[:]); err != nil {
		return g2.Point{}, CoordinateGreaterThanOrEqualModulus
	}
	if err := x.C0.FromBigEndianBytes(c0b[:]); err != nil {
		return g2.Point{}, CoordinateGreaterThanOrEqualModulus
	}

	var rhs, bTwist fp2.Element
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	bTwist.C0.FromUint64(4)
	bTwist.C1.FromUint64(4)
	rhs.Add(&rhs, &bTwist)
	y, ok := sqrtFp2(&rhs)
	if !ok {
		return g2.Point{}, PointNotOnCurve
	}
	if fpGreaterThanNeg(&y.C1) != signY {
		y.Neg(&y)
	}
	p := g2.FromAffine(&x, &y)
	if !p.IsOnCurve() {
		return g2.Point{}, PointNotOnCurve
	}
	if !isInSubgroupG2(&p) {
		return g2.Point{}, PointNotInSubgroup
	}
	return p, Success
}

// sqrtFp2 computes a square root in 𝔽p² via the complex method: writing
// a = a0+a1*u, a root exists whenever Norm(a) = a0²+a1² is a square in 𝔽p,
// reduced from there to two 𝔽p square roots.
func sqrtFp2(a *fp2.Element) (fp2.Element, bool) {
	if a.IsZero() {
		var z fp2.Element
		return z, true
	}
	var norm, rootNorm fp.Element
	norm.Square(&a.C0)
	var a1sq fp.Element
	a1sq.Square(&a.C1)
	norm.Add(&norm, &a1sq)
	if !rootNorm.SqrtIfSquare(&norm) {
		return fp2.Element{}, false
	}

	var two, twoInv, alpha, delta fp.Element
	two.FromUint64(2)
	twoInv.Inv(&two)
	alpha.Add(&a.C0, &rootNorm)
	alpha.Mul(&alpha, &twoInv)

	var c0 fp.Element
	if !c0.SqrtIfSquare(&alpha) {
		delta.Sub(&a.C0, &rootNorm)
		delta.Mul(&delta, &twoInv)
		if !c0.SqrtIfSquare(&delta) {
			return fp2.Element{}, false
		}
	}
	var c0Inv, c1 fp.Element
	c0Inv.Inv(&c0)
	c1.Mul(&a.C1, &c0Inv)
	c1.Mul(&c1, &twoInv)

	var z fp2.Element
	z.C0.Set(&c0)
	z.C1.Set(&c1)

	var check fp2.Element
	check.Square(&z)
	if !check.Equal(a) {
		return fp2.Element{}, false
	}
	return z, true
}

// isInSubgroupG2 reports whether [r]p is the identity, the prime-order
// subgroup test for BLS12-381 G2 (cofactor != 1, unlike G1).
func isInSubgroupG2(p *g2.Point) bool {
	var acc g2.Point
	acc.SetInfinity()
	for i := 0; i < 256; i++ {
		acc.Double(&acc)
		byteIdx := i / 8
		bitIdx := 7 - uint(i%8)
		if (groupOrderBLS12381[byteIdx]>>bitIdx)&1 == 1 {
			acc.Add(&acc, p)
		}
	}
	return acc.IsInfinity()
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/fp2"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/bn254/g2"
)

// groupOrderBN254 is r, big-endian, used by the G2 subgroup check (G1's
// cofactor is 1, so on-curve already implies in-subgroup there).
var groupOrderBN254 = [32]byte{
	0x30, 0x64, 0x4e, 0x72, 0xe1, 0x31, 0xa0, 0x29, 0xb8, 0x50, 0x45, 0xb6, 0x81, 0x81, 0x58, 0x5d,
	0x28, 0x33, 0xe8, 0x48, 0x79, 0xb9, 0x70, 0x91, 0x43, 0xe1, 0xf5, 0x93, 0xf0, 0x00, 0x00, 0x01,
}

func fpGreaterThanNegBN254(y *fp.Element) bool {
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

// EncodeG1Compressed encodes p as the 32-byte compressed form, same flag
// convention as bls12381.go's G1 codec.
func EncodeG1Compressed(p *g1.Point) [32]byte {
	var out [32]byte
	if p.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	xb := x.Bytes()
	copy(out[:], xb[:])
	out[0] |= flagCompressed
	if fpGreaterThanNegBN254(&y) {
		out[0] |= flagSignY
	}
	return out
}

// DecodeG1Compressed decodes a 32-byte compressed BN254 G1 point.
func DecodeG1Compressed(b []byte) (g1.Point, Status) {
	if len(b) != 32 {
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

	var xb [32]byte
	copy(xb[:], b)
	xb[0] &^= flagMask
	var x fp.Element
	if err := x.FromBigEndianBytes(xb[:]); err != nil {
		return g1.Point{}, CoordinateGreaterThanOrEqualModulus
	}

	var rhs, three fp.Element
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	three.FromUint64(3)
	rhs.Add(&rhs, &three)
	var y fp.Element
	if !y.SqrtIfSquare(&rhs) {
		return g1.Point{}, PointNotOnCurve
	}
	if fpGreaterThanNegBN254(&y) != signY {
		y.Neg(&y)
	}
	p := g1.FromAffine(&x, &y)
	if !p.IsOnCurve() {
		return g1.Point{}, PointNotOnCurve
	}
	return p, Success
}

// EncodeG1Uncompressed encodes p as the 64-byte uncompressed form (x || y).
func EncodeG1Uncompressed(p *g1.Point) [64]byte {
	var out [64]byte
	if p.IsInfinity() {
		out[0] = flagInfinity
		return out
	}
	x, y, _ := p.Affine()
	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[:32], xb[:])
	copy(out[32:], yb[:])
	return out
}

// DecodeG1Uncompressed decodes a 64-byte uncompressed BN254 G1 point.
func DecodeG1Uncompressed(b []byte) (g1.Point, Status) {
	if len(b) != 64 {
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
	var xb, yb [32]byte
	copy(xb[:], b[:32])
	copy(yb[:], b[32:])
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

// EncodeG2Compressed encodes q as the 64-byte compressed form: flag byte
// folded into x.C1's top byte, y reconstructed on decode from the sign
// flag applied to y.C1.
func EncodeG2Compressed(q *g2.Point) [64]byte {
	var out [64]byte
	if q.IsInfinity() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y, _ := q.Affine()
	c1b := x.C1.Bytes()
	c0b := x.C0.Bytes()
	copy(out[:32], c1b[:])
	copy(out[32:], c0b[:])
	out[0] |= flagCompressed
	if fpGreaterThanNegBN254(&y.C1) {
		out[0] |= flagSignY
	}
	return out
}

// DecodeG2Compressed decodes a 64-byte compressed BN254 G2 point, checking
// both the twist equation and prime-order subgroup membership (BN254 G2's
// cofactor is not 1, unlike G1's).
func DecodeG2Compressed(b []byte) (g2.Point, Status) {
	if len(b) != 64 {
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

	var c1b, c0b [32]byte
	copy(c1b[:], b[:32])
	copy(c0b[:], b[32:])
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
	bTwist.C0 = fp.Element{0x3bf938e377b802a8, 0x020b1b273633535d, 0x26b7edf049755260, 0x2514c6324384a86d}
	bTwist.C1 = fp.Element{0x38e7ecccd1dcff67, 0x65f0b37d93ce0d3e, 0xd749d0dd22ac00aa, 0x0141b9ce4a688d4d}
	rhs.Add(&rhs, &bTwist)
	y, ok := sqrtFp2BN254(&rhs)
	if !ok {
		return g2.Point{}, PointNotOnCurve
	}
	if fpGreaterThanNegBN254(&y.C1) != signY {
		y.Neg(&y)
	}
	p := g2.FromAffine(&x, &y)
	if !p.IsOnCurve() {
		return g2.Point{}, PointNotOnCurve
	}
	if !isInSubgroupG2BN254(&p) {
		return g2.Point{}, PointNotInSubgroup
	}
	return p, Success
}

// sqrtFp2BN254 computes a square root in 𝔽p² via the complex method, the
// same algorithm as bls12381.go's sqrtFp2.
func sqrtFp2BN254(a *fp2.Element) (fp2.Element, bool) {
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

// isInSubgroupG2BN254 reports whether [r]p is the identity.
func isInSubgroupG2BN254(p *g2.Point) bool {
	var acc g2.Point
	acc.SetInfinity()
	for i := 0; i < 256; i++ {
		acc.Double(&acc)
		byteIdx := i / 8
		bitIdx := 7 - uint(i%8)
		if (groupOrderBN254[byteIdx]>>bitIdx)&1 == 1 {
			acc.Add(&acc, p)
		}
	}
	return acc.IsInfinity()
}

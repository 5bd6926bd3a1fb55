// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashtocurve implements RFC 9380 hash-to-curve for BLS12-381 G1 via
// the Shallue-van de Woestijne (SVDW) map, built on the shared
// expand_message_xmd byte expansion. The real BLS12-381 hash-to-curve suite
// specifies simplified SWU with an isogeny; this package instead uses SVDW
// directly on the curve, one of the three curve-agnostic options RFC 9380
// allows, trading suite compatibility for fewer hand-transcribed constants.
// BLS12-381 G1's cofactor is 1, so no cofactor clearing is needed after
// mapping. G2 hash-to-curve is not implemented.
package hashtocurve

import (
	"math/big"

	"github.com/mratsim/constantine-go/bls12381/fp"
	"github.com/mratsim/constantine-go/bls12381/g1"
	"github.com/mratsim/constantine-go/internal/xmd"
)

// svdw constants for y² = x³+4 (A=0, B=4), Z=p-12 — found by the RFC 9380
// §6.6.1 SVDW Z-search (smallest Z, in absolute-value-from-p order, passing
// the four preconditions on g(Z), 3Z²+4A and their signs).
var (
	svdwZ  = fp.Element{0x7588ffffffd8557d, 0x41f3ff646e0bffdf, 0xf7b1e8d2ac426aca, 0xb3741acd32dbb6f8, 0xe9daf5b9482d581f, 0x167f53e0ba7431b8}
	svdwC1 = fp.Element{0xafb2ffffe9e66b6f, 0x91bba952fe43edde, 0x9ffcda03d2af58c5, 0xf959fdc58ddbfc2c, 0xb88e6f2bc05284af, 0x18f0c64644ec23c5}
	svdwC2 = fp.Element{0x223b00000013aa97, 0xee5c004d21a40010, 0x37bf74e7253745ac, 0xd881985be054ade3, 0xb0a058fe7d8f2a5b, 0x01c0df04bf85da70}
	svdwC3 = fp.Element{0x43c4a571f846903b, 0x68340d93e9c05b78, 0x3290fe859a8a3d0f, 0xe2558bb44bde1919, 0x4b52df369a310ab5, 0x0f24aa50df58cddd}
	svdwC4 = fp.Element{0xd90ebda12f9c9dd2, 0xd2d639b0c14fb450, 0x19b1d19a85b87d42, 0x1ab52d850f39060d, 0xcce53e6567bfba74, 0x04d34fdeabba3d19}
)

// DST is the default domain separation tag this package's exported
// functions use when the caller doesn't need a protocol-specific one.
var DST = []byte("BLS12381G1_XMD:SHA-256_SVDW_RO_")

// HashToField hashes msg to count field elements using expand_message_xmd
// with L=64 bytes per element (⌈(⌈log2 p⌉+128)/8⌉ for BLS12-381's 381-bit p).
func HashToField(msg, dst []byte, count int) ([]fp.Element, error) {
	const l = 64
	bytes, err := xmd.ExpandMessageXMD(xmd.NewSHA256(), msg, dst, count*l)
	if err != nil {
		return nil, err
	}
	out := make([]fp.Element, count)
	modulus := fpModulusBig()
	for i := 0; i < count; i++ {
		chunk := bytes[i*l : (i+1)*l]
		v := new(big.Int).SetBytes(chunk)
		v.Mod(v, modulus)
		var b [48]byte
		v.FillBytes(b[:])
		if err := out[i].FromBigEndianBytes(b[:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fpModulusBig is the BLS12-381 base field prime; fp.Element doesn't expose
// its modulus as a big.Int, so hash_to_field's reduction step reconstructs
// it from the well-known curve parameter.
func fpModulusBig() *big.Int {
	p, _ := new(big.Int).SetString("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	return p
}

// MapToCurve implements the SVDW map of a single field element u onto an
// affine BLS12-381 G1 point (RFC 9380 §6.6.1, specialized to A=0).
func MapToCurve(u *fp.Element) (fp.Element, fp.Element) {
	var tv1, tv2, tv3, tv4 fp.Element
	tv1.Square(u)
	tv1.Mul(&tv1, &svdwC1)
	tv2.SetOne()
	tv2.Add(&tv2, &tv1)
	var one fp.Element
	one.SetOne()
	var tv1Sq fp.Element
	tv1Sq.Set(&tv1)
	tv1.Sub(&one, &tv1Sq)
	tv3.Mul(&tv1, &tv2)
	tv3.Inv(&tv3)
	tv4.Mul(u, &tv1)
	tv4.Mul(&tv4, &tv3)
	tv4.Mul(&tv4, &svdwC3)

	var x1, gx1 fp.Element
	x1.Sub(&svdwC2, &tv4)
	gx1.Square(&x1)
	gx1.Mul(&gx1, &x1)
	var four fp.Element
	four.FromUint64(4)
	gx1.Add(&gx1, &four)
	var rootGx1 fp.Element
	e1 := rootGx1.SqrtIfSquare(&gx1)

	var x2, gx2 fp.Element
	x2.Add(&svdwC2, &tv4)
	gx2.Square(&x2)
	gx2.Mul(&gx2, &x2)
	gx2.Add(&gx2, &four)
	var rootGx2 fp.Element
	gx2Square := rootGx2.SqrtIfSquare(&gx2)
	e2 := gx2Square && !e1

	var x3, x fp.Element
	x3.Square(&tv2)
	x3.Mul(&x3, &tv3)
	x3.Square(&x3)
	x3.Mul(&x3, &svdwC4)
	x3.Add(&x3, &svdwZ)

	switch {
	case e1:
		x.Set(&x1)
	case e2:
		x.Set(&x2)
	default:
		x.Set(&x3)
	}

	var gx, y fp.Element
	gx.Square(&x)
	gx.Mul(&gx, &x)
	gx.Add(&gx, &four)
	y.SqrtIfSquare(&gx)

	if sgn0(u) != sgn0(&y) {
		y.Neg(&y)
	}
	return x, y
}

func sgn0(x *fp.Element) uint {
	b := x.Bytes()
	return uint(b[47] & 1)
}

// HashToCurve hashes msg to a uniformly distributed BLS12-381 G1 point,
// implementing the random-oracle hash_to_curve suite (RFC 9380 §3): two
// field elements, each mapped independently, summed on the curve.
func HashToCurve(msg, dst []byte) (g1.Point, error) {
	us, err := HashToField(msg, dst, 2)
	if err != nil {
		return g1.Point{}, err
	}
	x0, y0 := MapToCurve(&us[0])
	x1, y1 := MapToCurve(&us[1])
	p0 := g1.FromAffine(&x0, &y0)
	p1 := g1.FromAffine(&x1, &y1)
	var result g1.Point
	result.Add(&p0, &p1)
	return result, nil
}

// EncodeToCurve implements the non-uniform encode_to_curve suite (RFC 9380
// §3): a single field element, mapped once, with no final curve addition.
func EncodeToCurve(msg, dst []byte) (g1.Point, error) {
	us, err := HashToField(msg, dst, 1)
	if err != nil {
		return g1.Point{}, err
	}
	x, y := MapToCurve(&us[0])
	return g1.FromAffine(&x, &y), nil
}

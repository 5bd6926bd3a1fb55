// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashtocurve implements RFC 9380 hash-to-curve for BN254 G1 via
// the Shallue-van de Woestijne (SVDW) map, built on the shared
// expand_message_xmd byte expansion. BN254 G1's cofactor is 1, so no
// cofactor clearing is needed after mapping.
package hashtocurve

import (
	"math/big"

	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/internal/xmd"
)

// svdw constants for y² = x³+3 (A=0, B=3), Z=1 — the smallest Z satisfying
// RFC 9380's SVDW preconditions for this curve.
var (
	svdwZ  fp.Element
	svdwC1 = fp.Element{0x115482203dbf392d, 0x926242126eaa626a, 0xe16a48076063c052, 0x07c5909386eddc93}
	svdwC2 = fp.Element{0xb461a4448976f7d5, 0xc6843fb439555fa7, 0x28f0d12384840918, 0x112ceb58a394e07d}
	svdwC3 = fp.Element{0x7c8487078735ab72, 0x51da7e0048bfb8d4, 0x945cfd183cbd7bf4, 0x0b70b1ec48ae62c6}
	svdwC4 = fp.Element{0xa79a2bdca0800831, 0x19fd7617e49815a1, 0xbb8d0c885550c7b1, 0x05c4aeb6ec7e0f48}
)

func init() {
	svdwZ.SetOne()
}

// DST is the default domain separation tag this package's exported
// functions use when the caller doesn't need a protocol-specific one.
var DST = []byte("BN254G1_XMD:SHA-256_SVDW_RO_")

// HashToField hashes msg to count field elements using expand_message_xmd
// with L=48 bytes per element (⌈(⌈log2 p⌉+128)/8⌉ for BN254's 254-bit p).
func HashToField(msg, dst []byte, count int) ([]fp.Element, error) {
	const l = 48
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
		var b [32]byte
		v.FillBytes(b[:])
		if err := out[i].FromBigEndianBytes(b[:]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fpModulusBig is the BN254 base field prime; fp.Element doesn't expose its
// modulus as a big.Int, so hash_to_field's reduction step reconstructs it
// from the well-known curve parameter.
func fpModulusBig() *big.Int {
	p, _ := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	return p
}

// MapToCurve implements the SVDW map of a single field element u onto an
// affine BN254 G1 point (RFC 9380 §6.6.1, specialized to A=0).
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
	var three fp.Element
	three.FromUint64(3)
	gx1.Add(&gx1, &three)
	var rootGx1 fp.Element
	e1 := rootGx1.SqrtIfSquare(&gx1)

	var x2, gx2 fp.Element
	x2.Add(&svdwC2, &tv4)
	gx2.Square(&x2)
	gx2.Mul(&gx2, &x2)
	gx2.Add(&gx2, &three)
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
	gx.Add(&gx, &three)
	y.SqrtIfSquare(&gx)

	if sgn0(u) != sgn0(&y) {
		y.Neg(&y)
	}
	return x, y
}

func sgn0(x *fp.Element) uint {
	b := x.Bytes()
	return uint(b[31] & 1)
}

// HashToCurve hashes msg to a uniformly distributed BN254 G1 point,
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

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package g2 implements the BN254 G2 group: the order-r subgroup of the
// sextic twist y² = x³+b' over 𝔽p², b' = 3/(9+u), in homogeneous
// projective coordinates using the same Renes-Costello-Batina complete
// addition formulas as bn254/g1.
package g2

import (
	"errors"

	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/fp2"
	"github.com/mratsim/constantine-go/bn254/fr"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Point is a BN254 G2 element in projective (X:Y:Z) coordinates over 𝔽p²;
// the point at infinity is represented by Z == 0.
type Point struct {
	X, Y, Z fp2.Element
}

var (
	bTwist fp2.Element
	b3     fp2.Element
)

func init() {
	bTwist.C0 = fp.Element{0x3bf938e377b802a8, 0x020b1b273633535d, 0x26b7edf049755260, 0x2514c6324384a86d}
	bTwist.C1 = fp.Element{0x38e7ecccd1dcff67, 0x65f0b37d93ce0d3e, 0xd749d0dd22ac00aa, 0x0141b9ce4a688d4d}
	b3.Double(&bTwist)
	b3.Add(&b3, &bTwist)
}

// SetInfinity sets z to the group identity.
func (z *Point) SetInfinity() *Point {
	z.X.SetZero()
	z.Y.SetOne()
	z.Z.SetZero()
	return z
}

// IsInfinity reports whether z is the group identity.
func (z *Point) IsInfinity() bool {
	return z.Z.IsZero()
}

// Set copies x into z.
func (z *Point) Set(x *Point) *Point {
	*z = *x
	return z
}

// Generator returns the standard BN254 G2 generator.
func Generator() Point {
	var p Point
	p.X.C0 = fp.Element{0x8e83b5d102bc2026, 0xdceb1935497b0172, 0xfbb8264797811adf, 0x19573841af96503b}
	p.X.C1 = fp.Element{0xafb4737da84c6140, 0x6043dd5a5802d8c4, 0x09e950fc52a02f86, 0x14fef0833aea7b6b}
	p.Y.C0 = fp.Element{0x619dfa9d886be9f6, 0xfe7fd297f59e9b78, 0xff9e1a62231b7dfe, 0x28fd7eebae9e4206}
	p.Y.C1 = fp.Element{0x64095b56c71856ee, 0xdc57f922327d3cbb, 0x55f935be33351076, 0x0da4a0e693fd6482}
	p.Z.SetOne()
	return p
}

// FromAffine builds a projective point from affine coordinates.
func FromAffine(x, y *fp2.Element) Point {
	var p Point
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetOne()
	return p
}

// Affine returns the affine (x,y) coordinates of z, and true, or (0,0) and
// false when z is the point at infinity.
func (z *Point) Affine() (fp2.Element, fp2.Element, bool) {
	if z.IsInfinity() {
		var zero fp2.Element
		return zero, zero, false
	}
	var zInv, x, y fp2.Element
	zInv.Inv(&z.Z)
	x.Mul(&z.X, &zInv)
	y.Mul(&z.Y, &zInv)
	return x, y, true
}

// Equal reports whether z and x represent the same group element.
func (z *Point) Equal(x *Point) bool {
	if z.IsInfinity() || x.IsInfinity() {
		return z.IsInfinity() && x.IsInfinity()
	}
	var l, r fp2.Element
	l.Mul(&z.X, &x.Z)
	r.Mul(&x.X, &z.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&z.Y, &x.Z)
	r.Mul(&x.Y, &z.Z)
	return l.Equal(&r)
}

// Neg computes z = -x.
func (z *Point) Neg(x *Point) *Point {
	z.X.Set(&x.X)
	z.Y.Neg(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// Add computes z = p1+p2 using RCB Algorithm 7 (complete, a=0).
func (z *Point) Add(p1, p2 *Point) *Point {
	var t0, t1, t2, t3, t4, x3, y3, z3 fp2.Element

	t0.Mul(&p1.X, &p2.X)
	t1.Mul(&p1.Y, &p2.Y)
	t2.Mul(&p1.Z, &p2.Z)
	t3.Add(&p1.X, &p1.Y)
	t4.Add(&p2.X, &p2.Y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)
	t4.Add(&p1.Y, &p1.Z)
	x3.Add(&p2.Y, &p2.Z)
	t4.Mul(&t4, &x3)
	x3.Add(&t1, &t2)
	t4.Sub(&t4, &x3)
	x3.Add(&p1.X, &p1.Z)
	y3.Add(&p2.X, &p2.Z)
	x3.Mul(&x3, &y3)
	var t0PlusT2 fp2.Element
	t0PlusT2.Add(&t0, &t2)
	y3.Sub(&x3, &t0PlusT2)
	x3.Add(&t0, &t0)
	var t0Old fp2.Element
	t0Old.Set(&t0)
	t0.Add(&x3, &t0Old)
	t2.Mul(&b3, &t2)
	z3.Add(&t1, &t2)
	t1.Sub(&t1, &t2)
	y3.Mul(&b3, &y3)
	x3.Mul(&t4, &y3)
	t2.Mul(&t3, &t1)
	var x3Old fp2.Element
	x3Old.Set(&x3)
	x3.Sub(&t2, &x3Old)
	y3.Mul(&y3, &t0)
	t1.Mul(&t1, &z3)
	var y3Old fp2.Element
	y3Old.Set(&y3)
	y3.Add(&t1, &y3Old)
	t0.Mul(&t0, &t3)
	z3.Mul(&z3, &t4)
	z3.Add(&z3, &t0)

	z.X.Set(&x3)
	z.Y.Set(&y3)
	z.Z.Set(&z3)
	return z
}

// Double computes z = 2x using RCB Algorithm 9 (complete, a=0).
func (z *Point) Double(x *Point) *Point {
	var t0, t1, t2, x3, y3, z3 fp2.Element

	t0.Square(&x.Y)
	z3.Double(&t0)
	z3.Double(&z3)
	z3.Double(&z3)
	t1.Mul(&x.Y, &x.Z)
	t2.Square(&x.Z)
	t2.Mul(&b3, &t2)
	x3.Mul(&t2, &z3)
	y3.Add(&t0, &t2)
	z3.Mul(&t1, &z3)
	t1.Add(&t2, &t2)
	var t2Old fp2.Element
	t2Old.Set(&t2)
	t2.Add(&t1, &t2Old)
	t0.Sub(&t0, &t2)
	y3.Mul(&t0, &y3)
	var y3Old fp2.Element
	y3Old.Set(&y3)
	y3.Add(&x3, &y3Old)
	t1.Mul(&x.X, &x.Y)
	x3.Mul(&t0, &t1)
	x3.Double(&x3)

	z.X.Set(&x3)
	z.Y.Set(&y3)
	z.Z.Set(&z3)
	return z
}

// Sub computes z = p1-p2.
func (z *Point) Sub(p1, p2 *Point) *Point {
	var neg Point
	neg.Neg(p2)
	return z.Add(p1, &neg)
}

// ScalarMul computes z = [s]x in constant time; see bn254/g1.Point.ScalarMul.
func (z *Point) ScalarMul(x *Point, s *fr.Element) *Point {
	var acc Point
	acc.SetInfinity()
	bitLen := 254
	for i := bitLen - 1; i >= 0; i-- {
		acc.Double(&acc)
		var added Point
		added.Add(&acc, x)
		bit := platform.SecretBool(-platform.Word(s.Bit(i)))
		acc.X.CMov(&added.X, bit)
		acc.Y.CMov(&added.Y, bit)
		acc.Z.CMov(&added.Z, bit)
	}
	*z = acc
	return z
}

// ScalarMulVartime computes z = [s]x via plain double-and-add; only for
// public scalars.
func (z *Point) ScalarMulVartime(x *Point, s *fr.Element) *Point {
	var acc Point
	acc.SetInfinity()
	base := *x
	bitLen := s.BitLen()
	for i := 0; i < bitLen; i++ {
		if s.Bit(i) == 1 {
			acc.Add(&acc, &base)
		}
		base.Double(&base)
	}
	*z = acc
	return z
}

// ErrNotOnCurve is returned by decoding routines when a point fails the
// twist equation check.
var ErrNotOnCurve = errors.New("g2: point is not on curve")

// IsOnCurve reports whether the affine image of z satisfies y² = x³+b'.
func (z *Point) IsOnCurve() bool {
	if z.IsInfinity() {
		return true
	}
	x, y, _ := z.Affine()
	var lhs, rhs, x3 fp2.Element
	lhs.Square(&y)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	x3.Add(&rhs, &bTwist)
	return lhs.Equal(&x3)
}

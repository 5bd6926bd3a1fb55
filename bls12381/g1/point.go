// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package g1 implements the BLS12-381 G1 group: the order-r subgroup of the
// short-Weierstrass curve y² = x³+4 over 𝔽p, in homogeneous projective
// coordinates with the complete (exception-free) addition formulas of
// Renes, Costello and Batina ("Complete addition formulas for prime order
// elliptic curves", EUROCRYPT 2016) specialized to a=0.
package g1

import (
	"errors"

	"github.com/mratsim/constantine-go/bls12381/fp"
	"github.com/mratsim/constantine-go/bls12381/fr"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Point is a BLS12-381 G1 element in projective (X:Y:Z) coordinates; the
// point at infinity is represented by Z == 0.
type Point struct {
	X, Y, Z fp.Element
}

var b3 fp.Element

func init() {
	b3.FromUint64(12)
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

// genX, genY are the standard BLS12-381 G1 generator coordinates, already
// in Montgomery form.
var (
	genX = fp.Element{0x5cb38790fd530c16, 0x7817fc679976fff5, 0x154f95c7143ba1c1, 0xf0ae6acdf3d0e747, 0xedce6ecc21dbf440, 0x120177419e0bfb75}
	genY = fp.Element{0xbaac93d50ce72271, 0x8c22631a7918fd8e, 0xdd595f13570725ce, 0x51ac582950405194, 0x0e1c8c3fad0059c0, 0x0bbc3efc5008a26a}
)

// Generator returns the standard BLS12-381 G1 generator.
func Generator() Point {
	var p Point
	p.X.Set(&genX)
	p.Y.Set(&genY)
	p.Z.SetOne()
	return p
}

// FromAffine builds a projective point from affine coordinates.
func FromAffine(x, y *fp.Element) Point {
	var p Point
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetOne()
	return p
}

// Affine returns the affine (x,y) coordinates of z, and true, or (0,0) and
// false when z is the point at infinity.
func (z *Point) Affine() (fp.Element, fp.Element, bool) {
	if z.IsInfinity() {
		var zero fp.Element
		return zero, zero, false
	}
	var zInv, x, y fp.Element
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
	var l, r fp.Element
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

// Add computes z = p1+p2 using RCB Algorithm 7 (complete, a=0): correct
// (including identity operands and p1==p2/-p2) with no exceptional cases.
func (z *Point) Add(p1, p2 *Point) *Point {
	var t0, t1, t2, t3, t4, x3, y3, z3 fp.Element

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
	var t0PlusT2 fp.Element
	t0PlusT2.Add(&t0, &t2)
	y3.Sub(&x3, &t0PlusT2)
	x3.Add(&t0, &t0)
	var t0Old fp.Element
	t0Old.Set(&t0)
	t0.Add(&x3, &t0Old)
	t2.Mul(&b3, &t2)
	z3.Add(&t1, &t2)
	t1.Sub(&t1, &t2)
	y3.Mul(&b3, &y3)
	x3.Mul(&t4, &y3)
	t2.Mul(&t3, &t1)
	var x3Old fp.Element
	x3Old.Set(&x3)
	x3.Sub(&t2, &x3Old)
	y3.Mul(&y3, &t0)
	t1.Mul(&t1, &z3)
	var y3Old fp.Element
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
	var t0, t1, t2, x3, y3, z3 fp.Element

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
	var t2Old fp.Element
	t2Old.Set(&t2)
	t2.Add(&t1, &t2Old)
	t0.Sub(&t0, &t2)
	y3.Mul(&t0, &y3)
	var y3Old fp.Element
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

// ScalarMul computes z = [s]x in constant time: fixed-length (Bits(r))
// double-and-always-add, each iteration selecting between "doubled" and
// "doubled-then-added" via CMov on every coordinate so the trace never
// depends on s's bits. Safe at every step because Add/Double are complete.
func (z *Point) ScalarMul(x *Point, s *fr.Element) *Point {
	var acc Point
	acc.SetInfinity()
	bitLen := fr.Bits
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

// ScalarMulVartime computes z = [s]x via plain double-and-add, branching on
// s's bits. Only for public scalars, never secret keys.
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
// curve equation check.
var ErrNotOnCurve = errors.New("g1: point is not on curve")

// IsOnCurve reports whether the affine image of z satisfies y² = x³+4.
func (z *Point) IsOnCurve() bool {
	if z.IsInfinity() {
		return true
	}
	x, y, _ := z.Affine()
	var lhs, rhs, four fp.Element
	lhs.Square(&y)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	four.FromUint64(4)
	rhs.Add(&rhs, &four)
	return lhs.Equal(&rhs)
}

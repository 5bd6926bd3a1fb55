// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bandersnatch implements the Bandersnatch twisted-Edwards curve
// -5x²+y² = 1+dx²y² over the BLS12-381 scalar field 𝔽r (reused directly as
// this curve's base field — Bandersnatch is defined over exactly that
// field), in extended twisted-Edwards coordinates (X, Y, T, Z) with
// x = X/Z, y = Y/Z, T = XY/Z, using the unified addition and doubling
// formulas of Hisil, Wong, Carter and Dawson ("Twisted Edwards Curves
// Revisited", ASIACRYPT 2008).
package bandersnatch

import (
	"github.com/mratsim/constantine-go/bandersnatch/fr"
	basefield "github.com/mratsim/constantine-go/bls12381/fr"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Point is a Bandersnatch element in extended twisted-Edwards coordinates.
type Point struct {
	X, Y, T, Z basefield.Element
}

var (
	curveA basefield.Element
	curveD basefield.Element
)

// dBytes is the twisted-Edwards 'd' parameter, d = -15-10√2 reduced mod the
// base field, matching the Bandersnatch curve definition (Masson, Sanso,
// Zhang, "Bandersnatch: a fast elliptic curve built over the BLS12-381
// scalar field", 2021).
var dBytes = [32]byte{
	0x63, 0x89, 0xc1, 0x26, 0x33, 0xc2, 0x67, 0xcb, 0xc6, 0x6e, 0x3b, 0xf8, 0x6b, 0xe3, 0xb6, 0xd8,
	0xcb, 0x66, 0x67, 0x71, 0x77, 0xe5, 0x4f, 0x92, 0xb3, 0x69, 0xf2, 0xf5, 0x18, 0x8d, 0x58, 0xe7,
}

var genXBytes = [32]byte{
	0x29, 0xc1, 0x32, 0xcc, 0x2c, 0x0b, 0x34, 0xc5, 0x74, 0x37, 0x11, 0x77, 0x7b, 0xbe, 0x42, 0xf3,
	0x2b, 0x79, 0xc0, 0x22, 0xad, 0x99, 0x84, 0x65, 0xe1, 0xe7, 0x18, 0x66, 0xa2, 0x52, 0xae, 0x18,
}

var genYBytes = [32]byte{
	0x2a, 0x6c, 0x66, 0x9e, 0xda, 0x12, 0x3e, 0x0f, 0x15, 0x7d, 0x8b, 0x50, 0xba, 0xdc, 0xd5, 0x86,
	0x35, 0x8c, 0xad, 0x81, 0xee, 0xe4, 0x64, 0x60, 0x5e, 0x31, 0x67, 0xb6, 0xcc, 0x97, 0x41, 0x66,
}

func init() {
	var five basefield.Element
	five.FromUint64(5)
	curveA.Neg(&five)
	if err := curveD.FromBigEndianBytes(dBytes[:]); err != nil {
		panic("bandersnatch: invalid d constant: " + err.Error())
	}
}

// SetInfinity sets z to the group identity (0, 1).
func (z *Point) SetInfinity() *Point {
	z.X.SetZero()
	z.Y.SetOne()
	z.T.SetZero()
	z.Z.SetOne()
	return z
}

// IsInfinity reports whether z is the group identity.
func (z *Point) IsInfinity() bool {
	x, y, _ := z.Affine()
	return x.IsZero() && y.Equal(oneElement())
}

func oneElement() *basefield.Element {
	var one basefield.Element
	one.SetOne()
	return &one
}

// CurveA returns the twisted-Edwards 'a' parameter (-5 mod the base field).
func CurveA() basefield.Element { return curveA }

// CurveD returns the twisted-Edwards 'd' parameter.
func CurveD() basefield.Element { return curveD }

// SubgroupOrderBytes is n, the prime order of the Bandersnatch order-n
// subgroup, big-endian. n cannot be represented by bandersnatch/fr.Element
// (it reduces mod n to 0), so subgroup checks that need the literal value
// walk these bytes directly.
var SubgroupOrderBytes = [32]byte{
	0x1c, 0xfb, 0x69, 0xd4, 0xca, 0x67, 0x5f, 0x52, 0x0c, 0xce, 0x76, 0x02, 0x02, 0x68, 0x76, 0x00,
	0xff, 0x8f, 0x87, 0x00, 0x74, 0x19, 0x04, 0x71, 0x74, 0xfd, 0x06, 0xb5, 0x28, 0x76, 0xe7, 0xe1,
}

// Set copies x into z.
func (z *Point) Set(x *Point) *Point {
	*z = *x
	return z
}

// Generator returns the standard Bandersnatch generator, the conventional
// base point of the order-n subgroup (cofactor 4).
func Generator() Point {
	var p Point
	if err := p.X.FromBigEndianBytes(genXBytes[:]); err != nil {
		panic(err)
	}
	if err := p.Y.FromBigEndianBytes(genYBytes[:]); err != nil {
		panic(err)
	}
	p.Z.SetOne()
	p.T.Mul(&p.X, &p.Y)
	return p
}

// FromAffine builds an extended-coordinate point from affine (x, y).
func FromAffine(x, y *basefield.Element) Point {
	var p Point
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetOne()
	p.T.Mul(x, y)
	return p
}

// Affine returns the affine (x, y) coordinates of z.
func (z *Point) Affine() (basefield.Element, basefield.Element, bool) {
	var zInv, x, y basefield.Element
	zInv.Inv(&z.Z)
	x.Mul(&z.X, &zInv)
	y.Mul(&z.Y, &zInv)
	return x, y, true
}

// Equal reports whether z and x represent the same extended-coordinate
// point (strict curve equality, not the Banderwagon quotient equivalence —
// see package banderwagon for that).
func (z *Point) Equal(x *Point) bool {
	var l, r basefield.Element
	l.Mul(&z.X, &x.Z)
	r.Mul(&x.X, &z.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&z.Y, &x.Z)
	r.Mul(&x.Y, &z.Z)
	return l.Equal(&r)
}

// Neg computes z = -x: (-X, Y, -T, Z).
func (z *Point) Neg(x *Point) *Point {
	z.X.Neg(&x.X)
	z.Y.Set(&x.Y)
	z.T.Neg(&x.T)
	z.Z.Set(&x.Z)
	return z
}

// Add computes z = p1+p2 via the Hisil-Wong-Carter-Dawson unified addition
// formula in extended coordinates.
func (z *Point) Add(p1, p2 *Point) *Point {
	var a, b, c, d, e, f, g, h basefield.Element

	a.Mul(&p1.X, &p2.X)
	b.Mul(&p1.Y, &p2.Y)
	c.Mul(&p1.T, &curveD)
	c.Mul(&c, &p2.T)
	d.Mul(&p1.Z, &p2.Z)

	var xSum, ySum basefield.Element
	xSum.Add(&p1.X, &p1.Y)
	ySum.Add(&p2.X, &p2.Y)
	e.Mul(&xSum, &ySum)
	e.Sub(&e, &a)
	e.Sub(&e, &b)

	f.Sub(&d, &c)
	g.Add(&d, &c)
	var aA basefield.Element
	aA.Mul(&curveA, &a)
	h.Sub(&b, &aA)

	z.X.Mul(&e, &f)
	z.Y.Mul(&g, &h)
	z.T.Mul(&e, &h)
	z.Z.Mul(&f, &g)
	return z
}

// Double computes z = 2x via the dedicated extended-coordinate doubling
// formula.
func (z *Point) Double(x *Point) *Point {
	var a, b, c, d, e, g, f, h basefield.Element

	a.Square(&x.X)
	b.Square(&x.Y)
	c.Square(&x.Z)
	c.Double(&c)

	d.Mul(&curveA, &a)
	var sum basefield.Element
	sum.Add(&x.X, &x.Y)
	e.Square(&sum)
	e.Sub(&e, &a)
	e.Sub(&e, &b)

	g.Add(&d, &b)
	f.Sub(&g, &c)
	h.Sub(&d, &b)

	z.X.Mul(&e, &f)
	z.Y.Mul(&g, &h)
	z.T.Mul(&e, &h)
	z.Z.Mul(&f, &g)
	return z
}

// Sub computes z = p1-p2.
func (z *Point) Sub(p1, p2 *Point) *Point {
	var neg Point
	neg.Neg(p2)
	return z.Add(p1, &neg)
}

// IsOnCurve reports whether the affine image of z satisfies
// -5x²+y² = 1+dx²y².
func (z *Point) IsOnCurve() bool {
	x, y, _ := z.Affine()
	var x2, y2, lhs, rhs basefield.Element
	x2.Square(&x)
	y2.Square(&y)
	lhs.Mul(&curveA, &x2)
	lhs.Add(&lhs, &y2)
	rhs.Mul(&x2, &y2)
	rhs.Mul(&rhs, &curveD)
	var one basefield.Element
	one.SetOne()
	rhs.Add(&rhs, &one)
	return lhs.Equal(&rhs)
}

// ScalarMul computes z = [s]x in constant time: fixed-length (Bits(n))
// double-and-always-add, selecting between "doubled" and "doubled-then
// -added" via CMov so memory access is scalar-independent. Safe because
// Add/Double are exception-free for all inputs on this curve shape.
func (z *Point) ScalarMul(x *Point, s *fr.Element) *Point {
	var acc Point
	acc.SetInfinity()
	for i := fr.Bits - 1; i >= 0; i-- {
		acc.Double(&acc)
		var added Point
		added.Add(&acc, x)
		bit := platform.SecretBool(-platform.Word(s.Bit(i)))
		acc.X.CMov(&added.X, bit)
		acc.Y.CMov(&added.Y, bit)
		acc.T.CMov(&added.T, bit)
		acc.Z.CMov(&added.Z, bit)
	}
	*z = acc
	return z
}

// ScalarMulVartime computes z = [s]x via plain double-and-add, branching on
// s's bits. Only for public scalars.
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

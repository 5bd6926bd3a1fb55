// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp6 implements the sextic extension 𝔽p⁶ = 𝔽p²[v]/(v³-ξ), ξ = 9+u,
// the middle story of the BN254 pairing tower.
package fp6

import (
	"github.com/mratsim/constantine-go/bn254/fp2"
)

// Element is c0 + c1*v + c2*v², v³ = ξ = 9+u.
type Element struct {
	C0, C1, C2 fp2.Element
}

// SetZero sets z to 0.
func (z *Element) SetZero() *Element {
	z.C0.SetZero()
	z.C1.SetZero()
	z.C2.SetZero()
	return z
}

// SetOne sets z to 1.
func (z *Element) SetOne() *Element {
	z.C0.SetOne()
	z.C1.SetZero()
	z.C2.SetZero()
	return z
}

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero() && z.C2.IsZero()
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1) && z.C2.Equal(&x.C2)
}

// Add computes z = x+y.
func (z *Element) Add(x, y *Element) *Element {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	z.C2.Add(&x.C2, &y.C2)
	return z
}

// Sub computes z = x-y.
func (z *Element) Sub(x, y *Element) *Element {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	z.C2.Sub(&x.C2, &y.C2)
	return z
}

// Neg computes z = -x.
func (z *Element) Neg(x *Element) *Element {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	z.C2.Neg(&x.C2)
	return z
}

// Double computes z = 2x.
func (z *Element) Double(x *Element) *Element {
	z.C0.Double(&x.C0)
	z.C1.Double(&x.C1)
	z.C2.Double(&x.C2)
	return z
}

// MulByNonResidue computes z = x*v (shifts the tower up one story: the
// top coefficient wraps around through fp2's own non-residue multiply).
func (z *Element) MulByNonResidue(x *Element) *Element {
	var c2 fp2.Element
	c2.Set(&x.C2)
	var newC0 fp2.Element
	newC0.MulByNonResidue(&c2)
	z.C2.Set(&x.C1)
	z.C1.Set(&x.C0)
	z.C0.Set(&newC0)
	return z
}

// Mul computes z = x*y via the Karatsuba-style scheme for cubic extensions
// (Devegili-OhEigeartaigh-Scott-Dahab, "multiplication and squaring on
// pairing-friendly fields").
func (z *Element) Mul(x, y *Element) *Element {
	var t0, t1, t2, t3, t4 fp2.Element

	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)
	t2.Mul(&x.C2, &y.C2)

	// c0 = t0 + ξ*((x1+x2)(y1+y2) - t1 - t2)
	t3.Add(&x.C1, &x.C2)
	t4.Add(&y.C1, &y.C2)
	t3.Mul(&t3, &t4)
	t3.Sub(&t3, &t1)
	t3.Sub(&t3, &t2)
	t3.MulByNonResidue(&t3)
	var c0 fp2.Element
	c0.Add(&t0, &t3)

	// c1 = (x0+x1)(y0+y1) - t0 - t1 + ξ*t2
	t3.Add(&x.C0, &x.C1)
	t4.Add(&y.C0, &y.C1)
	t3.Mul(&t3, &t4)
	t3.Sub(&t3, &t0)
	t3.Sub(&t3, &t1)
	var xit2 fp2.Element
	xit2.MulByNonResidue(&t2)
	var c1 fp2.Element
	c1.Add(&t3, &xit2)

	// c2 = (x0+x2)(y0+y2) - t0 - t2 + t1
	t3.Add(&x.C0, &x.C2)
	t4.Add(&y.C0, &y.C2)
	t3.Mul(&t3, &t4)
	t3.Sub(&t3, &t0)
	t3.Sub(&t3, &t2)
	var c2 fp2.Element
	c2.Add(&t3, &t1)

	z.C0.Set(&c0)
	z.C1.Set(&c1)
	z.C2.Set(&c2)
	return z
}

// Square computes z = x² via Mul(x, x). A dedicated CH-SQR2 squaring chain
// is not implemented: the Fp12 cyclotomic squaring (spec component 4.D)
// is where the squaring fast path actually matters.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Inv computes z = x⁻¹ via the standard cubic-extension inversion formula,
// z = 0 when x == 0.
func (z *Element) Inv(x *Element) *Element {
	var t0, t1, t2, t3, t4, t5, c0, c1, c2, normInv fp2.Element

	t0.Square(&x.C0)
	t1.Square(&x.C1)
	t2.Square(&x.C2)
	t3.Mul(&x.C0, &x.C1)
	t4.Mul(&x.C0, &x.C2)
	t5.Mul(&x.C1, &x.C2)

	var nrT5 fp2.Element
	nrT5.MulByNonResidue(&t5)
	c0.Sub(&t0, &nrT5) // c0 = t0 - ξ*t5

	var nrT2 fp2.Element
	nrT2.MulByNonResidue(&t2)
	c1.Sub(&nrT2, &t3) // c1 = ξ*t2 - t3

	c2.Sub(&t1, &t4) // c2 = t1 - t4

	var norm, part2, part3 fp2.Element
	norm.Mul(&x.C0, &c0)
	part2.Mul(&x.C2, &c1)
	part2.MulByNonResidue(&part2)
	norm.Add(&norm, &part2)
	part3.Mul(&x.C1, &c2)
	part3.MulByNonResidue(&part3)
	norm.Add(&norm, &part3)

	normInv.Inv(&norm)
	z.C0.Mul(&c0, &normInv)
	z.C1.Mul(&c1, &normInv)
	z.C2.Mul(&c2, &normInv)
	return z
}

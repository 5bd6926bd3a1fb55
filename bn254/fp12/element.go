// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp12 implements the dodecic extension 𝔽p¹² = 𝔽p⁶[w]/(w²-v), the
// target field of the BN254 optimal-ate pairing.
package fp12

import (
	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/fp2"
	"github.com/mratsim/constantine-go/bn254/fp6"
)

// Element is c0 + c1*w, w² = v (fp6's own non-residue).
type Element struct {
	C0, C1 fp6.Element
}

// SetZero sets z to 0.
func (z *Element) SetZero() *Element {
	z.C0.SetZero()
	z.C1.SetZero()
	return z
}

// SetOne sets z to 1.
func (z *Element) SetOne() *Element {
	z.C0.SetOne()
	z.C1.SetZero()
	return z
}

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// IsOne reports whether z == 1.
func (z *Element) IsOne() bool {
	var one fp6.Element
	one.SetOne()
	return z.C0.Equal(&one) && z.C1.IsZero()
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// Mul computes z = x*y.
func (z *Element) Mul(x, y *Element) *Element {
	var a0b0, a1b1, sum, t, cross fp6.Element
	a0b0.Mul(&x.C0, &y.C0)
	a1b1.Mul(&x.C1, &y.C1)

	sum.Add(&x.C0, &x.C1)
	t.Add(&y.C0, &y.C1)
	cross.Mul(&sum, &t)
	cross.Sub(&cross, &a0b0)
	cross.Sub(&cross, &a1b1)

	var nrA1b1 fp6.Element
	nrA1b1.MulByNonResidue(&a1b1)

	z.C1.Set(&cross)
	z.C0.Add(&a0b0, &nrA1b1)
	return z
}

// Square computes z = x² via the complex-squaring identity over the fp6
// non-residue v.
func (z *Element) Square(x *Element) *Element {
	var a0a1, sum, nrA1, c0, c1 fp6.Element
	a0a1.Mul(&x.C0, &x.C1)
	nrA1.MulByNonResidue(&x.C1)
	sum.Add(&x.C0, &x.C1)
	var t fp6.Element
	t.Add(&x.C0, &nrA1)
	c0.Mul(&sum, &t)
	c0.Sub(&c0, &a0a1)
	var nrA0a1 fp6.Element
	nrA0a1.MulByNonResidue(&a0a1)
	c0.Sub(&c0, &nrA0a1)
	c1.Double(&a0a1)
	z.C0.Set(&c0)
	z.C1.Set(&c1)
	return z
}

// CyclotomicSquare computes z = x² for x known to lie in the order-(p⁴-p²+1)
// cyclotomic subgroup (the image of the easy part of final exponentiation).
// This port uses the same general-purpose Square rather than the compressed
// Granger-Scott basis; it is correct but does not take the subgroup shortcut
// a fully-optimized pairing would.
func (z *Element) CyclotomicSquare(x *Element) *Element {
	return z.Square(x)
}

// Conjugate computes z = c0 - c1*w, the 𝔽p⁶/𝔽p¹² automorphism used by the
// easy part of final exponentiation (raising to p⁶-1 folds to a conjugate
// followed by an inverse since x^(p^6) == conjugate(x) on this tower).
func (z *Element) Conjugate(x *Element) *Element {
	z.C0.Set(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Inv computes z = x⁻¹, z = 0 when x == 0.
func (z *Element) Inv(x *Element) *Element {
	var a0sq, a1sq, nrA1sq, norm, normInv fp6.Element
	a0sq.Square(&x.C0)
	a1sq.Square(&x.C1)
	nrA1sq.MulByNonResidue(&a1sq)
	norm.Sub(&a0sq, &nrA1sq)
	normInv.Inv(&norm)
	z.C0.Mul(&x.C0, &normInv)
	z.C1.Neg(&x.C1)
	z.C1.Mul(&z.C1, &normInv)
	return z
}

// Frobenius computes z = x^p using the precomputed Frobenius coefficients
// for the 𝔽p¹²/𝔽p tower, applied componentwise through the fp6/fp2 stack.
func (z *Element) Frobenius(x *Element) *Element {
	var c0 fp6.Element
	conjugateFp2(&c0.C0, &x.C0.C0)
	conjugateFp2(&c0.C1, &x.C0.C1)
	c0.C1.Mul(&c0.C1, &frobC1Coeffs[0])
	conjugateFp2(&c0.C2, &x.C0.C2)
	c0.C2.Mul(&c0.C2, &frobC1Coeffs[1])

	var c1 fp6.Element
	conjugateFp2(&c1.C0, &x.C1.C0)
	c1.C0.Mul(&c1.C0, &frobC1Coeffs[2])
	conjugateFp2(&c1.C1, &x.C1.C1)
	c1.C1.Mul(&c1.C1, &frobC1Coeffs[3])
	conjugateFp2(&c1.C2, &x.C1.C2)
	c1.C2.Mul(&c1.C2, &frobC1Coeffs[4])

	z.C0.Set(&c0)
	z.C1.Set(&c1)
	return z
}

func conjugateFp2(z, x *fp2.Element) {
	z.Conjugate(x)
}

// frobC1Coeffs are the five 𝔽p² scalars the 𝔽p¹²/𝔽p Frobenius endomorphism
// multiplies in after conjugating each tower coefficient: powers of the
// cubic/sextic non-residue ξ=9+u, ξ^((p-1)/3), ξ^(2(p-1)/3), ξ^((p-1)/6), and
// the last two scaled by ξ^((p-1)/6) again. All values are stored already in
// Montgomery form.
var frobC1Coeffs = [5]fp2.Element{
	{ // gamma1 = ξ^((p-1)/3)
		C0: fp.Element{0xb5773b104563ab30, 0x347f91c8a9aa6454, 0x7a007127242e0991, 0x1956bcd8118214ec},
		C1: fp.Element{0x6e849f1ea0aa4757, 0xaa1c7b6d89f89141, 0xb6e713cdfae0ca3a, 0x26694fbb4e82ebc3},
	},
	{ // gamma2 = ξ^(2(p-1)/3) = gamma1²
		C0: fp.Element{0x7361d77f843abe92, 0xa5bb2bd3273411fb, 0x9c941f314b3e2399, 0x15df9cddbb9fd3ec},
		C1: fp.Element{0x5dddfd154bd8c949, 0x62cb29a5a4445b60, 0x37bc870a0c7dd2b9, 0x24830a9d3171f0fd},
	},
	{ // gammaW = ξ^((p-1)/6)
		C0: fp.Element{0xaf9ba69633144907, 0xca6b1d7387afb78a, 0x11bded5ef08a2087, 0x02f34d751a1f3a7c},
		C1: fp.Element{0xa222ae234c492d72, 0xd00f02a4565de15b, 0xdc2ff3a253dfc926, 0x10a75716b3899551},
	},
	{ // gamma1*gammaW
		C0: fp.Element{0xe4bbdd0c2936b629, 0xbb30f162e133bacb, 0x31a9d1b6f9645366, 0x253570bea500f8dd},
		C1: fp.Element{0xa1d77ce45ffe77c7, 0x07affd117826d1db, 0x6d16bd27bb7edc6b, 0x2c87200285defecc},
	},
	{ // gamma2*gammaW
		C0: fp.Element{0xc970692f41690fe7, 0xe240342127694b0b, 0x32bee66b83c459e8, 0x12aabced0ab08841},
		C1: fp.Element{0x0d485d2340aebfa9, 0x05193418ab2fcc57, 0xd3b0a40b8a4910f5, 0x2f21ebb535d2925a},
	},
}

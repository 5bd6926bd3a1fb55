// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp12 implements the dodecic extension 𝔽p¹² = 𝔽p⁶[w]/(w²-v), the
// target field of the BLS12-381 optimal-ate pairing.
package fp12

import (
	"github.com/mratsim/constantine-go/bls12381/fp"
	"github.com/mratsim/constantine-go/bls12381/fp2"
	"github.com/mratsim/constantine-go/bls12381/fp6"
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
// cyclotomic subgroup. This port uses the same general-purpose Square
// rather than the compressed Granger-Scott basis; it is correct but does
// not take the subgroup shortcut a fully-optimized pairing would.
func (z *Element) CyclotomicSquare(x *Element) *Element {
	return z.Square(x)
}

// Conjugate computes z = c0 - c1*w, the 𝔽p⁶/𝔽p¹² automorphism used by the
// easy part of final exponentiation and by the negative-seed correction of
// the BLS12 Miller loop.
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
// cubic/sextic non-residue ξ=1+u, ξ^((p-1)/3), ξ^(2(p-1)/3), ξ^((p-1)/6), and
// the last two scaled by ξ^((p-1)/6) again. All values are stored already in
// Montgomery form.
var frobC1Coeffs = [5]fp2.Element{
	{ // gamma1 = ξ^((p-1)/3)
		C0: fp.Element{},
		C1: fp.Element{0xcd03c9e48671f071, 0x5dab22461fcda5d2, 0x587042afd3851b95, 0x8eb60ebe01bacb9e, 0x03f97d6e83d050d2, 0x18f0206554638741},
	},
	{ // gamma2 = ξ^(2(p-1)/3) = gamma1²
		C0: fp.Element{0x890dc9e4867545c3, 0x2af322533285a5d5, 0x50880866309b7e2c, 0xa20d1b8c7e881024, 0x14e4f04fe2db9068, 0x14e56d3f1564853a},
		C1: fp.Element{},
	},
	{ // gammaW = ξ^((p-1)/6)
		C0: fp.Element{0x07089552b319d465, 0xc6695f92b50a8313, 0x97e83cccd117228f, 0xa35baecab2dc29ee, 0x1ce393ea5daace4d, 0x08f2220fb0fb66eb},
		C1: fp.Element{0xb2f66aad4ce5d646, 0x5842a06bfc497cec, 0xcf4895d42599d394, 0xc11b9cba40a8e8d0, 0x2e3813cbe5a0de89, 0x110eefda88847faf},
	},
	{ // gamma1*gammaW
		C0: fp.Element{0x7bcfa7a25aa30fda, 0xdc17dec12a927e7c, 0x2f088dd86b4ebef1, 0xd1ca2087da74d4a7, 0x2da2596696cebc1d, 0x0e2b7eedbbfd87d2},
		C1: fp.Element{0x7bcfa7a25aa30fda, 0xdc17dec12a927e7c, 0x2f088dd86b4ebef1, 0xd1ca2087da74d4a7, 0x2da2596696cebc1d, 0x0e2b7eedbbfd87d2},
	},
	{ // gamma2*gammaW
		C0: fp.Element{0x82d83cf50dbce43f, 0xa2813e53df9d018f, 0xc6f0caa53c65e181, 0x7525cf528d50fe95, 0x4a85ed50f4798a6b, 0x171da0fd6cf8eebd},
		C1: fp.Element{0x3726c30af242c66c, 0x7c2ac1aad1b6fe70, 0xa04007fbba4b14a2, 0xef517c3266341429, 0x0095ba654ed2226b, 0x02e370eccc86f7dd},
	},
}

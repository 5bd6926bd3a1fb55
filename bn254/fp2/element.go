// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp2 implements the quadratic extension 𝔽p² = 𝔽p[u]/(u²+1) used as
// the base field of BN254's G2 subgroup and as the first story of the
// 𝔽p²→𝔽p⁶→𝔽p¹² tower backing the optimal-ate pairing.
package fp2

import (
	"errors"

	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/internal/platform"
)

// ErrLength is returned when decoding a byte slice of the wrong length.
var ErrLength = errors.New("fp2: expected 64 bytes")

// Element is c0 + c1*u, u² = -1.
type Element struct {
	C0, C1 fp.Element
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

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// CMov sets z = x iff flag is SecretTrue.
func (z *Element) CMov(x *Element, flag platform.SecretBool) *Element {
	z.C0.CMov(&x.C0, flag)
	z.C1.CMov(&x.C1, flag)
	return z
}

// Add computes z = x+y.
func (z *Element) Add(x, y *Element) *Element {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub computes z = x-y.
func (z *Element) Sub(x, y *Element) *Element {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg computes z = -x.
func (z *Element) Neg(x *Element) *Element {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Double computes z = 2x.
func (z *Element) Double(x *Element) *Element {
	z.C0.Double(&x.C0)
	z.C1.Double(&x.C1)
	return z
}

// Conjugate computes z = c0 - c1*u (the nontrivial 𝔽p²/𝔽p automorphism).
func (z *Element) Conjugate(x *Element) *Element {
	z.C0.Set(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Mul computes z = x*y via a 3-multiplication Karatsuba scheme:
// (a0+a1)(b0+b1) - a0*b0 - a1*b1 gives the cross term without a fourth mul.
func (z *Element) Mul(x, y *Element) *Element {
	var a0b0, a1b1, sum, crossSum, t fp.Element
	a0b0.Mul(&x.C0, &y.C0)
	a1b1.Mul(&x.C1, &y.C1)

	sum.Add(&x.C0, &x.C1)
	t.Add(&y.C0, &y.C1)
	crossSum.Mul(&sum, &t)
	crossSum.Sub(&crossSum, &a0b0)
	crossSum.Sub(&crossSum, &a1b1)

	z.C1.Set(&crossSum)
	z.C0.Sub(&a0b0, &a1b1)
	return z
}

// Square computes z = x² via ((a0+a1)(a0-a1), 2*a0*a1).
func (z *Element) Square(x *Element) *Element {
	var sum, diff, c0, c1 fp.Element
	sum.Add(&x.C0, &x.C1)
	diff.Sub(&x.C0, &x.C1)
	c0.Mul(&sum, &diff)
	c1.Mul(&x.C0, &x.C1)
	c1.Double(&c1)
	z.C0.Set(&c0)
	z.C1.Set(&c1)
	return z
}

// MulByNonResidue computes z = x*ξ where ξ = 9+u is the cubic non-residue
// 𝔽p⁶ (and, one story up, 𝔽p¹²) is built from:
// (a0+a1*u)(9+u) = (9*a0-a1) + (a0+9*a1)*u.
func (z *Element) MulByNonResidue(x *Element) *Element {
	var nineA0, nineA1, a0, a1 fp.Element
	nineA0.Double(&x.C0)
	nineA0.Double(&nineA0)
	nineA0.Double(&nineA0)
	nineA0.Add(&nineA0, &x.C0)
	nineA1.Double(&x.C1)
	nineA1.Double(&nineA1)
	nineA1.Double(&nineA1)
	nineA1.Add(&nineA1, &x.C1)

	a0.Sub(&nineA0, &x.C1)
	a1.Add(&x.C0, &nineA1)
	z.C0.Set(&a0)
	z.C1.Set(&a1)
	return z
}

// Inv computes z = x⁻¹, z = 0 when x == 0. 1/(a0+a1 u) = (a0-a1 u)/(a0²+a1²).
func (z *Element) Inv(x *Element) *Element {
	var a0sq, a1sq, norm, normInv, c0, c1 fp.Element
	a0sq.Square(&x.C0)
	a1sq.Square(&x.C1)
	norm.Add(&a0sq, &a1sq)
	normInv.Inv(&norm)
	c0.Mul(&x.C0, &normInv)
	c1.Neg(&x.C1)
	c1.Mul(&c1, &normInv)
	z.C0.Set(&c0)
	z.C1.Set(&c1)
	return z
}

// FromBigEndianBytes decodes 64 bytes (c1 || c0, each 32-byte big-endian) as
// gnark-crypto's 𝔽p² serialization orders the components.
func (z *Element) FromBigEndianBytes(b []byte) error {
	if len(b) != 64 {
		return ErrLength
	}
	if err := z.C1.FromBigEndianBytes(b[:32]); err != nil {
		return err
	}
	return z.C0.FromBigEndianBytes(b[32:])
}

// Bytes encodes z as 64 bytes (c1 || c0).
func (z *Element) Bytes() [64]byte {
	var out [64]byte
	c1 := z.C1.Bytes()
	c0 := z.C0.Bytes()
	copy(out[:32], c1[:])
	copy(out[32:], c0[:])
	return out
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fr implements the BLS12-381 scalar field 𝔽r in Montgomery form:
// the residue a·R mod r for R = 2^256, r the order of the BLS12-381 G1/G2
// groups, r = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001.
package fr

import (
	"encoding/hex"
	"errors"

	"github.com/mratsim/constantine-go/internal/bigint"
	"github.com/mratsim/constantine-go/internal/field"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Element is a field element in Montgomery form, little-endian limbs.
type Element [4]uint64

// NumLimbs is the number of 64-bit limbs backing an Element.
const NumLimbs = 4

// Bits is the bit length of the modulus.
const Bits = 255

var (
	rElement = [4]uint64{0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48}
	rSquare  = [4]uint64{0xc999e990f3f29c6d, 0x2b6cedcb87925c23, 0x05d314967254398f, 0x0748d9d99f59ff11}
	oneMont  = [4]uint64{0x00000001fffffffe, 0x5884b7fa00034802, 0x998c4fefecbc4ff5, 0x1824b159acc5056f}
	negPInv  = uint64(0xfffffffeffffffff)

	// r - 1 = tonelliQ * 2^tonelliS, tonelliQ odd.
	tonelliQ = [4]uint64{0xfffe5bfeffffffff, 0x09a1d80553bda402, 0x299d7d483339d808, 0x0000000073eda753}
	tonelliS = 32
	// (tonelliQ+1)/2
	qPlus1Over2 = [4]uint64{0x7fff2dff80000000, 0x04d0ec02a9ded201, 0x94cebea4199cec04, 0x0000000039f6d3a9}
	// smallest quadratic non-residue mod r, 5, in Montgomery form (set in init).
	nonResidueMont [4]uint64

	modulus = field.Modulus{P: rElement[:], NegPInv: negPInv, R2: rSquare[:], One: oneMont[:]}

	// ErrNotCanonical is returned when decoding bytes that encode a value
	// >= the modulus.
	ErrNotCanonical = errors.New("fr: value is not a canonical residue (>= modulus)")
)

func init() {
	var plain Element
	plain[0] = 5
	field.ToMont(nonResidueMont[:], plain[:], &modulus)
}

// Modulus exposes the compile-time field parameters shared with the
// curve-group layer built on top of this package.
func Modulus() *field.Modulus { return &modulus }

// SetZero sets z to the additive identity.
func (z *Element) SetZero() *Element {
	*z = Element{}
	return z
}

// SetOne sets z to the multiplicative identity (Montgomery form of 1).
func (z *Element) SetOne() *Element {
	copy(z[:], oneMont[:])
	return z
}

// IsZero reports whether z is the additive identity.
func (z *Element) IsZero() bool {
	return bigint.IsZero(z[:]) == platform.SecretTrue
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return bigint.Eq(z[:], x[:]) == platform.SecretTrue
}

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// CMov sets z = x iff flag is SecretTrue.
func (z *Element) CMov(x *Element, flag platform.SecretBool) *Element {
	for i := range z {
		z[i] = platform.CMov(z[i], x[i], flag)
	}
	return z
}

// BitLen returns the bit length of z's plain (non-Montgomery) integer value.
func (z *Element) BitLen() int {
	var plain Element
	field.FromMont(plain[:], z[:], &modulus)
	return bigint.BitLen(plain[:])
}

// Bit returns bit i of z's plain (non-Montgomery) integer value.
func (z *Element) Bit(i int) uint {
	var plain Element
	field.FromMont(plain[:], z[:], &modulus)
	return bigint.Bit(plain[:], i)
}

// Add computes z = x+y.
func (z *Element) Add(x, y *Element) *Element {
	field.Add(z[:], x[:], y[:], &modulus)
	return z
}

// Sub computes z = x-y.
func (z *Element) Sub(x, y *Element) *Element {
	field.Sub(z[:], x[:], y[:], &modulus)
	return z
}

// Double computes z = 2x.
func (z *Element) Double(x *Element) *Element {
	field.Double(z[:], x[:], &modulus)
	return z
}

// Neg computes z = -x.
func (z *Element) Neg(x *Element) *Element {
	field.Neg(z[:], x[:], &modulus)
	return z
}

// Mul computes z = x*y.
func (z *Element) Mul(x, y *Element) *Element {
	field.Mul(z[:], x[:], y[:], &modulus)
	return z
}

// Square computes z = x^2.
func (z *Element) Square(x *Element) *Element {
	field.Square(z[:], x[:], &modulus)
	return z
}

// Div2 computes z = x/2.
func (z *Element) Div2(x *Element) *Element {
	field.Half(z[:], x[:], &modulus)
	return z
}

// Inv computes z = x^-1, and z = 0 when x == 0.
func (z *Element) Inv(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	var exponent [4]uint64
	copy(exponent[:], rElement[:])
	bigint.Sub(exponent[:], []uint64{2, 0, 0, 0})
	field.Pow(z[:], x[:], exponent[:], &modulus)
	return z
}

// SqrtIfSquare attempts z = sqrt(x) and reports whether x was a quadratic
// residue; z is left unchanged on a false result.
func (z *Element) SqrtIfSquare(x *Element) bool {
	var cand Element
	if !field.SqrtTonelliShanks(cand[:], x[:], &modulus, tonelliQ[:], qPlus1Over2[:], nonResidueMont[:], tonelliS) {
		return false
	}
	*z = cand
	return true
}

// Pow computes z = x^e for a public, plain-integer (little-endian limb)
// exponent e.
func (z *Element) Pow(x *Element, e []uint64) *Element {
	field.Pow(z[:], x[:], e, &modulus)
	return z
}

// FromUint64 sets z to the Montgomery form of the small plain integer v.
func (z *Element) FromUint64(v uint64) *Element {
	var plain Element
	plain[0] = v
	field.ToMont(z[:], plain[:], &modulus)
	return z
}

// FromBigEndianBytes decodes a 32-byte big-endian canonical residue into
// Montgomery form, rejecting values >= the modulus.
func (z *Element) FromBigEndianBytes(b []byte) error {
	if len(b) != 32 {
		return errors.New("fr: expected 32 bytes")
	}
	var plain Element
	for i := 0; i < 4; i++ {
		var limb uint64
		for j := 0; j < 8; j++ {
			limb = (limb << 8) | uint64(b[i*8+j])
		}
		plain[3-i] = limb
	}
	if bigint.Lt(plain[:], rElement[:]) != platform.SecretTrue {
		return ErrNotCanonical
	}
	field.ToMont(z[:], plain[:], &modulus)
	return nil
}

// Bytes encodes z as 32 big-endian bytes in plain (non-Montgomery) form.
func (z *Element) Bytes() [32]byte {
	var plain Element
	field.FromMont(plain[:], z[:], &modulus)
	var out [32]byte
	for i := 0; i < 4; i++ {
		limb := plain[i]
		for j := 0; j < 8; j++ {
			out[31-(i*8+j)] = byte(limb)
			limb >>= 8
		}
	}
	return out
}

// Hex returns the big-endian hex encoding (no 0x prefix) of z's plain value.
func (z *Element) Hex() string {
	b := z.Bytes()
	return hex.EncodeToString(b[:])
}

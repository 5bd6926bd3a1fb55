// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp implements the BLS12-381 base field 𝔽p in Montgomery form: the
// residue a·R mod p for R = 2^384, p =
// 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab.
package fp

import (
	"encoding/hex"
	"errors"

	"github.com/mratsim/constantine-go/internal/bigint"
	"github.com/mratsim/constantine-go/internal/field"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Element is a field element in Montgomery form, little-endian limbs.
type Element [6]uint64

// NumLimbs is the number of 64-bit limbs backing an Element.
const NumLimbs = 6

// Bits is the bit length of the modulus.
const Bits = 381

var (
	qElement = [6]uint64{0xb9feffffffffaaab, 0x1eabfffeb153ffff, 0x6730d2a0f6b0f624, 0x64774b84f38512bf, 0x4b1ba7b6434bacd7, 0x1a0111ea397fe69a}
	rSquare  = [6]uint64{0xf4df1f341c341746, 0x0a76e6a609d104f1, 0x8de5476c4c95b6d5, 0x67eb88a9939d83c0, 0x9a793e85b519952d, 0x11988fe592cae3aa}
	oneMont  = [6]uint64{0x760900000002fffd, 0xebf4000bc40c0002, 0x5f48985753c758ba, 0x77ce585370525745, 0x5c071a97a256ec6d, 0x15f65ec3fa80e493}
	// -p^-1 mod 2^64
	negPInv = uint64(0x89f3fffcfffcfffd)

	pPlus1Over4 = [6]uint64{0xee7fbfffffffeaab, 0x07aaffffac54ffff, 0xd9cc34a83dac3d89, 0xd91dd2e13ce144af, 0x92c6e9ed90d2eb35, 0x0680447a8e5ff9a6}

	modulus = field.Modulus{P: qElement[:], NegPInv: negPInv, R2: rSquare[:], One: oneMont[:]}

	// ErrNotCanonical is returned when decoding bytes that encode a value
	// >= the modulus.
	ErrNotCanonical = errors.New("fp: value is not a canonical residue (>= modulus)")
)

// Modulus exposes the compile-time field parameters shared with the
// tower-extension and curve-group layers built on top of this package.
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

// CMov sets z = x iff flag is SecretTrue, touching every limb of both
// operands regardless of flag so the memory trace stays data-independent.
func (z *Element) CMov(x *Element, flag platform.SecretBool) *Element {
	for i := range z {
		z[i] = platform.CMov(z[i], x[i], flag)
	}
	return z
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

// Inv computes z = x^-1, and z = 0 when x == 0 (required so that
// projective-to-affine conversion of the point at infinity stays total).
func (z *Element) Inv(x *Element) *Element {
	if x.IsZero() {
		return z.SetZero()
	}
	exponent := subTwo(qElement)
	field.Pow(z[:], x[:], exponent[:], &modulus)
	return z
}

func subTwo(p [6]uint64) [6]uint64 {
	var r [6]uint64
	copy(r[:], p[:])
	bigint.Sub(r[:], []uint64{2, 0, 0, 0, 0, 0})
	return r
}

// SqrtIfSquare attempts z = sqrt(x) and reports whether x was a quadratic
// residue; z is left unchanged on a false result. p ≡ 3 (mod 4), so the
// closed-form x^((p+1)/4) applies directly.
func (z *Element) SqrtIfSquare(x *Element) bool {
	var cand Element
	if !field.SqrtP3Mod4(cand[:], x[:], &modulus, pPlus1Over4[:]) {
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

// FromBigEndianBytes decodes a 48-byte big-endian canonical residue into
// Montgomery form, rejecting values >= the modulus.
func (z *Element) FromBigEndianBytes(b []byte) error {
	if len(b) != 48 {
		return errors.New("fp: expected 48 bytes")
	}
	var plain Element
	for i := 0; i < 6; i++ {
		var limb uint64
		for j := 0; j < 8; j++ {
			limb = (limb << 8) | uint64(b[i*8+j])
		}
		plain[5-i] = limb
	}
	if bigint.Lt(plain[:], qElement[:]) != platform.SecretTrue {
		return ErrNotCanonical
	}
	field.ToMont(z[:], plain[:], &modulus)
	return nil
}

// Bytes encodes z as 48 big-endian bytes in plain (non-Montgomery) form.
func (z *Element) Bytes() [48]byte {
	var plain Element
	field.FromMont(plain[:], z[:], &modulus)
	var out [48]byte
	for i := 0; i < 6; i++ {
		limb := plain[i]
		for j := 0; j < 8; j++ {
			out[47-(i*8+j)] = byte(limb)
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

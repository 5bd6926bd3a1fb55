// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fp implements the BN254 base field 𝔽p in Montgomery form: the
// residue a·R mod p for R = 2^256, p = 21888242871839275222246405745257275088696311157297823662689037894645226208583.
package fp

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
const Bits = 254

var (
	qElement = [4]uint64{0x3c208c16d87cfd47, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029}
	rSquare  = [4]uint64{0xf32cfc5b538afa89, 0xb5e71911d44501fb, 0x47ab1eff0a417ff6, 0x06d89f71cab8351f}
	oneMont  = [4]uint64{0xd35d438dc58f0d9d, 0x0a78eb28f5c70b3d, 0x666ea36f7879462c, 0x0e0a77c19a07df2f}
	// -p^-1 mod 2^64
	negPInv = uint64(0x87d20782e4866389)

	pPlus1Over4 = [4]uint64{0x4f082305b61f3f52, 0x65e05aa45a1c72a3, 0x6e14116da0605617, 0x0c19139cb84c680a}

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

func subTwo(p [4]uint64) [4]uint64 {
	var r [4]uint64
	copy(r[:], p[:])
	bigint.Sub(r[:], []uint64{2, 0, 0, 0})
	return r
}

// SqrtIfSquare attempts z = sqrt(x) and reports whether x was a quadratic
// residue; z is left unchanged on a false result.
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

// FromBigEndianBytes decodes a 32-byte big-endian canonical residue into
// Montgomery form, rejecting values >= the modulus.
func (z *Element) FromBigEndianBytes(b []byte) error {
	if len(b) != 32 {
		return errors.New("fp: expected 32 bytes")
	}
	var plain Element
	for i := 0; i < 4; i++ {
		var limb uint64
		for j := 0; j < 8; j++ {
			limb = (limb << 8) | uint64(b[i*8+j])
		}
		plain[3-i] = limb
	}
	if bigint.Lt(plain[:], qElement[:]) != platform.SecretTrue {
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

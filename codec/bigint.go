// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"strings"

	"github.com/holiman/uint256"
)

// ParseHex decodes a hex string (optionally "0x"-prefixed, optionally
// carrying "_" separators for readability) into big-endian bytes of the
// given byte length. It rejects odd nibble counts and non-hex characters
// as InvalidEncoding.
func ParseHex(s string, byteLen int) ([]byte, Status) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	s = strings.ReplaceAll(s, "_", "")
	if len(s)%2 != 0 {
		return nil, InvalidEncoding
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return nil, InvalidEncoding
		}
		out[i] = hi<<4 | lo
	}
	if len(out) > byteLen {
		return nil, InvalidEncoding
	}
	if len(out) < byteLen {
		padded := make([]byte, byteLen)
		copy(padded[byteLen-len(out):], out)
		out = padded
	}
	return out, Success
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ToHex encodes b as a lowercase "0x"-prefixed hex string.
func ToHex(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 2+2*len(b))
	out[0], out[1] = '0', 'x'
	for i, v := range b {
		out[2+2*i] = hexDigits[v>>4]
		out[2+2*i+1] = hexDigits[v&0xf]
	}
	return string(out)
}

// ReverseBytes returns a new slice with b's bytes in the opposite order,
// converting between the module's big-endian canonical form and a
// little-endian wire encoding (e.g. the scalar codec, §6).
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// CheckLessThanModulus range-checks big-endian bytes against a big-endian
// modulus using holiman/uint256's fixed-width comparison rather than
// math/big, the fast path this module's codec boundary standardizes on
// for 256-bit-or-smaller integers. Both byte slices must be the same
// length (left zero-padded); longer moduli fall back to a manual compare.
func CheckLessThanModulus(value, modulus []byte) bool {
	if len(value) <= 32 && len(modulus) <= 32 {
		v := new(uint256.Int).SetBytes(value)
		m := new(uint256.Int).SetBytes(modulus)
		return v.Lt(m)
	}
	return bytesLess(value, modulus)
}

// bytesLess compares two equal-length big-endian byte slices as unsigned
// integers, for moduli wider than uint256's 256 bits (e.g. BLS12-381's
// 381-bit base field).
func bytesLess(a, b []byte) bool {
	if len(a) != len(b) {
		// Shorter padded implicitly: compare byte-by-byte from the front
		// after aligning lengths by zero-extension.
		n := len(a)
		if len(b) > n {
			n = len(b)
		}
		pa := make([]byte, n)
		pb := make([]byte, n)
		copy(pa[n-len(a):], a)
		copy(pb[n-len(b):], b)
		a, b = pa, pb
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

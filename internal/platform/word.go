// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package platform implements the word-level primitives the rest of the
// constant-time arithmetic stack is built on: carry-propagating add/sub,
// wide multiplication, and the branchless conditional-move building block
// every higher layer (BigInt, Fp, curve group law) composes into bigger
// constant-time operations.
//
// Every exported function here runs in time and with a memory-access
// pattern independent of its secret inputs. None of them allocate.
package platform

import "math/bits"

// Word is one machine limb of a multiprecision integer.
type Word = uint64

// WordBits is the bit width of a single limb.
const WordBits = 64

// SecretBool is a boolean carried with constant-time discipline: every
// operation that consumes one is required to touch the same memory and take
// the same number of instructions regardless of whether it is set. Its zero
// value is "false". Do not compare a SecretBool with == in code that must
// stay constant-time; use it only to drive CMov/CSwap-style primitives.
type SecretBool uint64

// SecretWord is a machine word that may hold secret data.
type SecretWord = uint64

const (
	// SecretTrue is the canonical all-ones encoding of a true SecretBool.
	SecretTrue SecretBool = ^SecretBool(0)
	// SecretFalse is the canonical all-zero encoding of a false SecretBool.
	SecretFalse SecretBool = 0
)

// BoolToSecret promotes a public boolean to a SecretBool. The branch here is
// on public control flow (which bit pattern to use), not secret data, so it
// does not violate constant-time discipline.
func BoolToSecret(b bool) SecretBool {
	if b {
		return SecretTrue
	}
	return SecretFalse
}

// AddWithCarry computes a+b+cIn mod 2^64 and the carry out of bit 63.
func AddWithCarry(a, b, cIn Word) (sum, cOut Word) {
	sum, c := bits.Add64(a, b, cIn)
	return sum, c
}

// SubWithBorrow computes a-b-bIn mod 2^64 and the borrow out of bit 63.
func SubWithBorrow(a, b, bIn Word) (diff, bOut Word) {
	diff, borrow := bits.Sub64(a, b, bIn)
	return diff, borrow
}

// MulWide computes the full 128-bit product a*b, split into high and low words.
func MulWide(a, b Word) (hi, lo Word) {
	hi, lo = bits.Mul64(a, b)
	return hi, lo
}

// MulAddWideCarry computes a*b + c + d as a 128-bit value, returning
// (hi, lo). Used by schoolbook multiplication and Montgomery reduction to
// fold a running carry into each limb product without widening to
// math/big.
func MulAddWideCarry(a, b, c, d Word) (hi, lo Word) {
	hi, lo = bits.Mul64(a, b)
	var carry Word
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	lo, carry = bits.Add64(lo, d, 0)
	hi += carry
	return hi, lo
}

// CMov sets dst = src if flag is SecretTrue, leaving dst unchanged
// otherwise. It always reads and writes dst and src, so the memory traffic
// is identical for both values of flag.
func CMov(dst, src Word, flag SecretBool) Word {
	mask := Word(flag)
	return (dst &^ mask) | (src & mask)
}

// CSwap exchanges a and b iff flag is SecretTrue.
func CSwap(a, b *Word, flag SecretBool) {
	mask := Word(flag)
	t := mask & (*a ^ *b)
	*a ^= t
	*b ^= t
}

// CZero returns flag = SecretTrue iff w == 0, without branching on w.
func CZero(w Word) SecretBool {
	// Standard branchless "is zero" trick: for nonzero w, w | -w has its top
	// bit set; for w == 0 it stays 0.
	v := w | (-w)
	return SecretBool((v >> 63) - 1)
}

// CEq returns SecretTrue iff a == b.
func CEq(a, b Word) SecretBool {
	return CZero(a ^ b)
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bigint implements fixed-width, little-endian, constant-time
// multiprecision integer arithmetic on limb slices. Every curve-scoped
// field package ([4]uint64 for ~256-bit moduli, [6]uint64 for ~384-bit
// ones, and so on) slices its backing array and calls into this package
// for the actual limb arithmetic, so the CIOS Montgomery reduction, the
// binary extended-GCD inverse, and the schoolbook multiply are written
// exactly once regardless of how many curves use them.
//
// All functions expect every slice argument to already have the declared
// length (no bounds-driven branching on secret lengths); the slices
// themselves may hold secret data, but their *lengths* are always public
// (fixed by the calling curve package), so length-based control flow does
// not break constant-time discipline.
package bigint

import "github.com/mratsim/constantine-go/internal/platform"

// CAdd sets a = a + b (mod 2^(64*len(a))) iff flag is set, and returns the
// carry out of the top limb, computed unconditionally for both values of
// flag so memory traffic never depends on it.
func CAdd(a, b []platform.Word, flag platform.SecretBool) platform.Word {
	var carry platform.Word
	for i := range a {
		sum, c := platform.AddWithCarry(a[i], b[i], carry)
		carry = c
		a[i] = platform.CMov(a[i], sum, flag)
	}
	return carry & platform.Word(flag)
}

// CSub sets a = a - b (mod 2^(64*len(a))) iff flag is set, returning the
// borrow out of the top limb.
func CSub(a, b []platform.Word, flag platform.SecretBool) platform.Word {
	var borrow platform.Word
	for i := range a {
		diff, bo := platform.SubWithBorrow(a[i], b[i], borrow)
		borrow = bo
		a[i] = platform.CMov(a[i], diff, flag)
	}
	return borrow & platform.Word(flag)
}

// Add sets a = a + b and returns the carry out; unconditional shorthand for
// CAdd with an always-true flag, used by routines that are already outside
// the constant-time boundary (reduction scratch space, codec parsing).
func Add(a, b []platform.Word) platform.Word {
	var carry platform.Word
	for i := range a {
		a[i], carry = platform.AddWithCarry(a[i], b[i], carry)
	}
	return carry
}

// Sub sets a = a - b and returns the borrow out.
func Sub(a, b []platform.Word) platform.Word {
	var borrow platform.Word
	for i := range a {
		a[i], borrow = platform.SubWithBorrow(a[i], b[i], borrow)
	}
	return borrow
}

// CNeg negates a in place (two's complement over len(a) limbs) iff flag is
// set.
func CNeg(a []platform.Word, flag platform.SecretBool) {
	var borrow platform.Word
	for i := range a {
		diff, bo := platform.SubWithBorrow(0, a[i], borrow)
		borrow = bo
		a[i] = platform.CMov(a[i], diff, flag)
	}
}

// CSwap exchanges a and b (equal length) iff flag is set.
func CSwap(a, b []platform.Word, flag platform.SecretBool) {
	for i := range a {
		platform.CSwap(&a[i], &b[i], flag)
	}
}

// CCopy sets dst = src iff flag is set.
func CCopy(dst, src []platform.Word, flag platform.SecretBool) {
	for i := range dst {
		dst[i] = platform.CMov(dst[i], src[i], flag)
	}
}

// IsZero reports, as a SecretBool, whether every limb of a is zero.
func IsZero(a []platform.Word) platform.SecretBool {
	acc := platform.Word(0)
	for _, w := range a {
		acc |= w
	}
	return platform.CZero(acc)
}

// Eq reports, as a SecretBool, whether a == b.
func Eq(a, b []platform.Word) platform.SecretBool {
	acc := platform.Word(0)
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return platform.CZero(acc)
}

// Lt reports, as a SecretBool, whether a < b (unsigned, both len(a) limbs).
func Lt(a, b []platform.Word) platform.SecretBool {
	_, borrow := subBorrowOut(a, b)
	return platform.SecretBool(-borrow)
}

func subBorrowOut(a, b []platform.Word) (borrowOut platform.Word, borrow platform.Word) {
	for i := range a {
		_, borrow = platform.SubWithBorrow(a[i], b[i], borrow)
	}
	return borrow, borrow
}

// ShiftRight logically shifts a right by k bits (0 <= k < 64*len(a)) in
// place.
func ShiftRight(a []platform.Word, k int) {
	n := len(a)
	wordShift := k / platform.WordBits
	bitShift := uint(k % platform.WordBits)

	if wordShift > 0 {
		for i := 0; i < n; i++ {
			src := i + wordShift
			if src < n {
				a[i] = a[src]
			} else {
				a[i] = 0
			}
		}
	}
	if bitShift == 0 {
		return
	}
	for i := 0; i < n; i++ {
		lo := a[i] >> bitShift
		var hi platform.Word
		if i+1 < n {
			hi = a[i+1] << (platform.WordBits - bitShift)
		}
		a[i] = lo | hi
	}
}

// ShiftLeft logically shifts a left by k bits (0 <= k < 64*len(a)) in place,
// discarding bits shifted out of the top limb.
func ShiftLeft(a []platform.Word, k int) {
	n := len(a)
	wordShift := k / platform.WordBits
	bitShift := uint(k % platform.WordBits)

	if wordShift > 0 {
		for i := n - 1; i >= 0; i-- {
			src := i - wordShift
			if src >= 0 {
				a[i] = a[src]
			} else {
				a[i] = 0
			}
		}
	}
	if bitShift == 0 {
		return
	}
	for i := n - 1; i >= 0; i-- {
		hi := a[i] << bitShift
		var lo platform.Word
		if i > 0 {
			lo = a[i-1] >> (platform.WordBits - bitShift)
		}
		a[i] = hi | lo
	}
}

// Bit returns bit i (0 = least significant) of a as 0 or 1.
func Bit(a []platform.Word, i int) uint {
	w := i / platform.WordBits
	b := uint(i % platform.WordBits)
	return uint((a[w] >> b) & 1)
}

// BitLen returns the public bit length of a (index of the highest set bit,
// plus one; 0 for the zero value). This is used only on public moduli and
// orders, never on secret scalars, so it is allowed to be data-dependent.
func BitLen(a []platform.Word) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*platform.WordBits + bitsLen64(a[i])
		}
	}
	return 0
}

func bitsLen64(w platform.Word) int {
	n := 0
	for w != 0 {
		w >>= 1
		n++
	}
	return n
}

// Prod computes the full double-width product r = a*b via schoolbook
// multiplication. len(r) must be len(a)+len(b); r is zero-padded above the
// product's natural length.
func Prod(r, a, b []platform.Word) {
	for i := range r {
		r[i] = 0
	}
	for i := 0; i < len(a); i++ {
		var carry platform.Word
		ai := a[i]
		for j := 0; j < len(b); j++ {
			hi, lo := platform.MulAddWideCarry(ai, b[j], r[i+j], carry)
			r[i+j] = lo
			carry = hi
		}
		r[i+len(b)] = carry
	}
}

// ProdHighWords computes the product a*b but discards the low startWord
// limbs, writing only the remaining len(a)+len(b)-startWord limbs into r
// (len(r) == len(a)+len(b)-startWord). The carry that the discarded region
// would have propagated into limb startWord of the full product is still
// folded in: this function first materializes the full double-width
// product in a scratch buffer and only then truncates, which is what keeps
// the carry out of the very first discarded limb correct (see DESIGN.md,
// open question (a)).
func ProdHighWords(r, a, b []platform.Word, startWord int) {
	full := make([]platform.Word, len(a)+len(b))
	Prod(full, a, b)
	copy(r, full[startWord:])
}

// Reduce computes r = a mod m for a double-width dividend a and an
// len(m)-limb modulus m, using conditional subtraction from the top down
// (schoolbook long division by repeated compare-and-subtract on shifted
// copies of m). len(r) == len(m); len(a) may exceed len(m).
func Reduce(r, a, m []platform.Word) {
	n := len(m)
	rem := make([]platform.Word, len(a))
	copy(rem, a)

	shifted := make([]platform.Word, len(a))
	totalBits := len(a) * platform.WordBits
	mBits := BitLen(m)
	if mBits == 0 {
		copy(r, rem[:n])
		return
	}
	shift := totalBits - mBits
	if shift < 0 {
		shift = 0
	}
	for s := shift; s >= 0; s-- {
		copy(shifted, m)
		ShiftLeft(shifted, s)
		if !Lt2(rem, shifted) {
			Sub(rem, shifted)
		}
	}
	copy(r, rem[:n])
}

// Lt2 is like Lt but for equal-length slices of arbitrary (not necessarily
// curve-fixed) length, used internally by Reduce which operates on
// double-width scratch buffers.
func Lt2(a, b []platform.Word) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// InvMod computes r = a^-1 mod m via the binary extended Euclidean
// algorithm in Kaliski's constant-structure form: a fixed 2*bits(m)
// iteration count, every step executed for both branches and blended with
// CMov/CSwap so the instruction trace does not depend on a's value. Follows
// the "gcd(a,m) != 1 yields 0" convention the tower-field inversion
// formulas rely on. mHalfPlusOne must equal (m+1)/2 (supplied by the caller
// so this routine never needs to divide).
func InvMod(r, a, m, mHalfPlusOne []platform.Word) {
	n := len(m)
	u := make([]platform.Word, n)
	v := make([]platform.Word, n)
	copy(u, a)
	copy(v, m)

	x1 := make([]platform.Word, n)
	x1[0] = 1
	x2 := make([]platform.Word, n)

	iterations := 2 * len(m) * platform.WordBits

	for i := 0; i < iterations; i++ {
		uOdd := platform.SecretBool(-(u[0] & 1))
		uIsZero := IsZero(u)
		vIsZero := IsZero(v)
		done := uIsZero | vIsZero

		// Halve u when even: u>>=1; x1 halved mod m (add m first if odd).
		uEven := ^uOdd
		halveU := uEven &^ done
		x1Odd := platform.SecretBool(-(x1[0] & 1))
		x1plusM := make([]platform.Word, n)
		copy(x1plusM, x1)
		CAdd(x1plusM, m, x1Odd)
		shiftedX1 := make([]platform.Word, n)
		copy(shiftedX1, x1plusM)
		ShiftRight(shiftedX1, 1)
		shiftedU := make([]platform.Word, n)
		copy(shiftedU, u)
		ShiftRight(shiftedU, 1)
		CCopy(u, shiftedU, halveU)
		CCopy(x1, shiftedX1, halveU)

		vOdd := platform.SecretBool(-(v[0] & 1))
		vEven := ^vOdd
		halveV := vEven &^ done
		x2Odd := platform.SecretBool(-(x2[0] & 1))
		x2plusM := make([]platform.Word, n)
		copy(x2plusM, x2)
		CAdd(x2plusM, m, x2Odd)
		shiftedX2 := make([]platform.Word, n)
		copy(shiftedX2, x2plusM)
		ShiftRight(shiftedX2, 1)
		shiftedV := make([]platform.Word, n)
		copy(shiftedV, v)
		ShiftRight(shiftedV, 1)
		CCopy(v, shiftedV, halveV)
		CCopy(x2, shiftedX2, halveV)

		// Once both u and v are odd, subtract the smaller from the larger.
		bothOdd := platform.SecretBool(-(u[0] & 1)) & platform.SecretBool(-(v[0] & 1)) &^ done
		vLtU := Lt(v, u)
		subUfromV := bothOdd & vLtU
		subVfromU := bothOdd &^ vLtU

		uMinusV := make([]platform.Word, n)
		copy(uMinusV, u)
		CSub(uMinusV, v, subVfromU)
		CCopy(u, uMinusV, subVfromU)
		x1MinusX2 := constantTimeSubMod(x1, x2, m)
		CCopy(x1, x1MinusX2, subVfromU)

		vMinusU := make([]platform.Word, n)
		copy(vMinusU, v)
		CSub(vMinusU, u, subUfromV)
		CCopy(v, vMinusU, subUfromV)
		x2MinusX1 := constantTimeSubMod(x2, x1, m)
		CCopy(x2, x2MinusX1, subUfromV)
	}

	// Result is x2 iff v ended at 1 (gcd==1); otherwise the convention is 0.
	one := make([]platform.Word, n)
	one[0] = 1
	vIsOne := Eq(v, one)
	for i := range r {
		r[i] = 0
	}
	CCopy(r, x2, vIsOne)
}

// constantTimeSubMod returns (a-b) mod m without branching on the sign of
// a-b: it always computes a-m+... no, it computes a-b and conditionally
// adds m back when a < b, folding the add into the same pass every time.
func constantTimeSubMod(a, b, m []platform.Word) []platform.Word {
	n := len(m)
	r := make([]platform.Word, n)
	copy(r, a)
	borrowFlag := Lt(a, b)
	CAdd(r, m, borrowFlag)
	Sub(r, b)
	return r
}

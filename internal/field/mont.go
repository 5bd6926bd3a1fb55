// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package field implements the limb-count-generic half of Montgomery-form
// prime field arithmetic: CIOS multiplication/reduction, addition,
// subtraction, conditional selection, and fixed-window modular
// exponentiation. Every curve-scoped fp/fr package (bn254/fp, bn254/fr,
// bls12381/fp, ...) declares its own concrete `[N]uint64` Element type and
// its own modulus/negPInv/R2 constants, and calls through to this package
// for the actual arithmetic — the same generated logic gnark-crypto emits
// per curve, hand-written once and shared.
package field

import (
	"github.com/mratsim/constantine-go/internal/bigint"
	"github.com/mratsim/constantine-go/internal/platform"
)

// Modulus bundles the compile-time-constant parameters of one Montgomery
// field: its prime, the CIOS reduction constant -p^-1 mod 2^64, and R^2 mod
// p used to move values into Montgomery form. All three are pure read-only
// data, computed once from the prime at package-init time by the owning
// curve package (or supplied as literals) — never recomputed per element.
type Modulus struct {
	P       []platform.Word // the prime, len == NumLimbs
	NegPInv platform.Word   // -P^-1 mod 2^64
	R2      []platform.Word // R^2 mod P, R = 2^(64*NumLimbs)
	One     []platform.Word // Montgomery form of 1 (== R mod P)
}

// Mul computes z = x*y*R^-1 mod P (Montgomery multiplication) via the
// coarsely-integrated operand scanning (CIOS) method: the reduction is
// folded into the same pass as the multiplication so no double-width
// scratch product is ever fully materialized.
func Mul(z, x, y []platform.Word, m *Modulus) {
	n := len(m.P)
	t := make([]platform.Word, n+2)

	for i := 0; i < n; i++ {
		// t[0..n-1] += x[i]*y[0..n-1], carry into t[n]; t[n+1] catches the
		// single extra carry bit out of that add.
		var carry platform.Word
		xi := x[i]
		for j := 0; j < n; j++ {
			hi, lo := platform.MulAddWideCarry(xi, y[j], t[j], carry)
			t[j] = lo
			carry = hi
		}
		sum, c := platform.AddWithCarry(t[n], carry, 0)
		t[n] = sum
		t[n+1] = c

		// Reduce: m' = t[0]*negPInv mod 2^64; t += m'*P; the low limb of
		// that addition is (by construction of negPInv) congruent to 0 mod
		// 2^64, so it is discarded and everything shifts down one limb.
		mPrime := t[0] * m.NegPInv
		hi0, lo0 := platform.MulAddWideCarry(mPrime, m.P[0], t[0], 0)
		_ = lo0 // == 0 by construction of negPInv; kept only for clarity
		carry = hi0
		for j := 1; j < n; j++ {
			hi, lo := platform.MulAddWideCarry(mPrime, m.P[j], t[j], carry)
			t[j-1] = lo
			carry = hi
		}
		sum, c = platform.AddWithCarry(t[n], carry, 0)
		t[n-1] = sum
		t[n] = t[n+1] + c
		t[n+1] = 0
	}

	copy(z, t[:n])
	// t[n] may still hold a carry bit (result can reach 2P-1, which needs
	// n limbs plus one bit given P's spare top bit); fold it into the
	// conditional subtraction below by treating any nonzero t[n] as "z is
	// definitely >= P".
	condSubWithCarry(z, m.P, t[n])
}

// condSubWithCarry subtracts p from z in place when z (whose true value may
// include an extra carry bit beyond len(z) limbs, passed in extra) is >= p.
func condSubWithCarry(z, p []platform.Word, extra platform.Word) {
	n := len(z)
	scratch := make([]platform.Word, n)
	copy(scratch, z)
	borrow := bigint.Sub(scratch, p)
	// extra != 0 means the true value is >= 2^(64n) > p unconditionally.
	// Otherwise take the subtracted value iff it did not borrow.
	takeReduced := platform.SecretBool(-(b2i(extra != 0) | (1 ^ borrow)))
	bigint.CCopy(z, scratch, takeReduced)
}

// Square computes z = x^2*R^-1 mod P. Implemented as Mul(z, x, x, m); a
// dedicated Chung-Hasan-style squaring (component 4.D mentions the
// technique for tower fields, where it pays for itself) is not worth the
// extra code path at the base-field limb counts used here.
func Square(z, x []platform.Word, m *Modulus) {
	Mul(z, x, x, m)
}


// Add computes z = x+y mod P.
func Add(z, x, y []platform.Word, m *Modulus) {
	n := len(m.P)
	copy(z, x)
	carry := bigint.Add(z, y)
	scratch := make([]platform.Word, n)
	copy(scratch, z)
	borrow := bigint.Sub(scratch, m.P)
	// Take the reduced value when either there was an outgoing carry (z
	// overflowed the limb width, so it is >= P unconditionally) or the
	// subtraction did not borrow (z - P did not go negative).
	takeReduced := platform.SecretBool(-(carry | (1 ^ borrow)))
	bigint.CCopy(z, scratch, takeReduced)
}

// Sub computes z = x-y mod P.
func Sub(z, x, y []platform.Word, m *Modulus) {
	n := len(m.P)
	copy(z, x)
	borrow := bigint.Sub(z, y)
	scratch := make([]platform.Word, n)
	copy(scratch, z)
	bigint.Add(scratch, m.P)
	flag := platform.SecretBool(-borrow)
	bigint.CCopy(z, scratch, flag)
}

// Neg computes z = -x mod P (z = 0 when x == 0).
func Neg(z, x []platform.Word, m *Modulus) {
	n := len(m.P)
	isZero := bigint.IsZero(x)
	scratch := make([]platform.Word, n)
	copy(scratch, m.P)
	bigint.Sub(scratch, x)
	copy(z, scratch)
	for i := range z {
		z[i] = platform.CMov(z[i], 0, isZero)
	}
}

// Double computes z = 2*x mod P.
func Double(z, x []platform.Word, m *Modulus) {
	Add(z, x, x, m)
}

// ToMont computes z = x*R mod P given z, x in plain (non-Montgomery) form,
// by Montgomery-multiplying by R^2.
func ToMont(z, x []platform.Word, m *Modulus) {
	Mul(z, x, m.R2, m)
}

// FromMont computes z = x*R^-1 mod P, undoing the Montgomery
// representation, by multiplying by 1 in the Montgomery domain.
func FromMont(z, x []platform.Word, m *Modulus) {
	one := make([]platform.Word, len(m.P))
	one[0] = 1
	Mul(z, x, one, m)
}

// Pow computes z = x^e mod P (Montgomery domain throughout) using
// fixed-window (w=4) left-to-right exponentiation. The window index used
// to pick a table entry is revealed only through public exponent bits when
// exponent is public (curve constants, p-2 for inversion); when exponent
// bits are secret the caller must instead route through CMov-selected table
// scans — Pow always scans the whole 16-entry table and blends with CMov,
// so it is safe either way.
func Pow(z, x []platform.Word, exponent []platform.Word, m *Modulus) {
	n := len(m.P)
	const windowBits = 4
	const tableSize = 1 << windowBits

	table := make([][]platform.Word, tableSize)
	table[0] = make([]platform.Word, n)
	copy(table[0], m.One)
	table[1] = make([]platform.Word, n)
	copy(table[1], x)
	for i := 2; i < tableSize; i++ {
		table[i] = make([]platform.Word, n)
		Mul(table[i], table[i-1], x, m)
	}

	acc := make([]platform.Word, n)
	copy(acc, m.One)

	bitLen := bigint.BitLen(exponent)
	if bitLen == 0 {
		copy(z, m.One)
		return
	}
	// Round up to a whole number of windows from the top.
	numWindows := (bitLen + windowBits - 1) / windowBits
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			Square(acc, acc, m)
		}
		idx := windowAt(exponent, w, windowBits)
		selected := make([]platform.Word, n)
		for k := 0; k < tableSize; k++ {
			flag := platform.SecretBool(-b2i(uint(k) == idx))
			for limb := 0; limb < n; limb++ {
				selected[limb] = platform.CMov(selected[limb], table[k][limb], flag)
			}
		}
		Mul(acc, acc, selected, m)
	}
	copy(z, acc)
}

func windowAt(e []platform.Word, windowIdx, windowBits int) uint {
	start := windowIdx * windowBits
	var v uint
	for i := 0; i < windowBits; i++ {
		bitPos := start + i
		if bitPos/platform.WordBits >= len(e) {
			continue
		}
		v |= uint(bigint.Bit(e, bitPos)) << uint(i)
	}
	return v
}

func b2i(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// PowVartime is the public-exponent counterpart of Pow: ordinary
// square-and-multiply that branches on exponent bits. Exists for
// curve-parameter exponentiations (Frobenius coefficient derivation,
// cofactor tables) where the exponent is a compile-time constant and
// constant-time discipline buys nothing.
func PowVartime(z, x []platform.Word, exponent []platform.Word, m *Modulus) {
	n := len(m.P)
	acc := make([]platform.Word, n)
	copy(acc, m.One)
	base := make([]platform.Word, n)
	copy(base, x)

	bitLen := bigint.BitLen(exponent)
	for i := 0; i < bitLen; i++ {
		if bigint.Bit(exponent, i) == 1 {
			Mul(acc, acc, base, m)
		}
		Square(base, base, m)
	}
	copy(z, acc)
}

// Half computes z = x/2 mod P without division: P is prime hence odd, so
// x/2 mod P is x>>1 when x is even and (x+P)>>1 when x is odd, chosen with
// a CMov rather than a branch on x's parity.
func Half(z, x []platform.Word, m *Modulus) {
	n := len(m.P)
	xOdd := platform.SecretBool(-(x[0] & 1))
	plusP := make([]platform.Word, n)
	copy(plusP, x)
	carry := bigint.Add(plusP, m.P)
	shifted := make([]platform.Word, n)
	copy(shifted, x)
	bigint.ShiftRight(shifted, 1)
	shiftedPlusP := make([]platform.Word, n)
	copy(shiftedPlusP, plusP)
	bigint.ShiftRight(shiftedPlusP, 1)
	// Fold the carry bit from x+P back in as the new top bit.
	if n > 0 {
		shiftedPlusP[n-1] |= carry << 63
	}
	copy(z, shifted)
	bigint.CCopy(z, shiftedPlusP, xOdd)
}

// SqrtP3Mod4 computes z = sqrt(x) mod P for a modulus with P ≡ 3 (mod 4),
// via the closed form x^((P+1)/4), and reports whether x was actually a
// quadratic residue. z is written only on a true return; on a false return
// it is left unchanged.
func SqrtP3Mod4(z, x []platform.Word, m *Modulus, pPlus1Over4 []platform.Word) bool {
	n := len(m.P)
	cand := make([]platform.Word, n)
	Pow(cand, x, pPlus1Over4, m)
	check := make([]platform.Word, n)
	Square(check, cand, m)
	if bigint.Eq(check, x) != platform.SecretTrue {
		return false
	}
	copy(z, cand)
	return true
}

// SqrtTonelliShanks computes z = sqrt(x) mod P for a general odd prime P
// (P ≡ 1 mod 4 included) via Tonelli-Shanks: write P-1 = Q*2^S with Q odd,
// find a quadratic non-residue n, and iteratively fix up the exponent of
// the candidate root's discrepancy from a true square root. exponentQ must
// equal Q, qPlus1Over2 must equal (Q+1)/2, and nonResidue must be a
// Montgomery-form quadratic non-residue of the field. Reports whether x was
// a quadratic residue.
func SqrtTonelliShanks(z, x []platform.Word, m *Modulus, exponentQ, qPlus1Over2, nonResidue []platform.Word, s int) bool {
	n := len(m.P)
	if bigint.IsZero(x) == platform.SecretTrue {
		copy(z, x)
		return true
	}

	c := make([]platform.Word, n)
	Pow(c, nonResidue, exponentQ, m) // c = n^Q

	t := make([]platform.Word, n)
	Pow(t, x, exponentQ, m) // t = x^Q

	r := make([]platform.Word, n)
	Pow(r, x, qPlus1Over2, m) // r = x^((Q+1)/2), candidate root

	m_ := s
	for {
		if bigint.Eq(t, m.One) == platform.SecretTrue {
			break
		}
		// Find least i in (0, m_) with t^(2^i) == 1.
		tt := make([]platform.Word, n)
		copy(tt, t)
		i := 0
		for i = 1; i < m_; i++ {
			Square(tt, tt, m)
			if bigint.Eq(tt, m.One) == platform.SecretTrue {
				break
			}
		}
		if i == m_ {
			return false
		}
		// b = c^(2^(m_-i-1))
		b := make([]platform.Word, n)
		copy(b, c)
		for j := 0; j < m_-i-1; j++ {
			Square(b, b, m)
		}
		Mul(r, r, b, m)
		Square(b, b, m)
		Mul(t, t, b, m)
		copy(c, b)
		m_ = i
	}
	check := make([]platform.Word, n)
	Square(check, r, m)
	if bigint.Eq(check, x) != platform.SecretTrue {
		return false
	}
	copy(z, r)
	return true
}

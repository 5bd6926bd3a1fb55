// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package g1

import (
	"math/big"

	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/fr"
)

// glvBeta is a primitive cube root of unity mod p: Endomorphism maps
// (X:Y:Z) to (beta*X:Y:Z), which sends any G1 point to [lambda]·that same
// point for the matching cube root lambda of unity mod r.
var glvBeta fp.Element

func init() {
	glvBeta = fp.Element{0x71930c11d782e155, 0xa6bb947cffbe3323, 0xaa303344d4741444, 0x2c3b3f0d26594943}
}

// Endomorphism computes z = phi(x), BN254 G1's efficiently computable GLV
// endomorphism.
func (z *Point) Endomorphism(x *Point) *Point {
	z.X.Mul(&x.X, &glvBeta)
	z.Y.Set(&x.Y)
	z.Z.Set(&x.Z)
	return z
}

// GLV lattice basis: a1+b1*lambda ≡ 0 (mod r) and a2+b2*lambda ≡ 0 (mod r),
// found via the half-GCD of (r, lambda); |a1|,|b1|,|a2|,|b2| ≈ sqrt(r).
var (
	glvA1  = bigFromDecimal("147946756881789319010696353538189108491")
	glvB1  = bigFromDecimal("9931322734385697763")
	glvA2  = bigFromDecimal("9931322734385697763")
	glvB2  = bigFromDecimal("-147946756881789319000765030803803410728")
	glvDet = new(big.Int).Sub(
		new(big.Int).Mul(glvA1, glvB2),
		new(big.Int).Mul(glvA2, glvB1),
	)
)

func bigFromDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("g1: malformed GLV constant literal")
	}
	return v
}

// roundDiv returns round(num/den) to the nearest integer (ties away from
// zero), for signed num, den.
func roundDiv(num, den *big.Int) *big.Int {
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	doubled := new(big.Int).Abs(rem)
	doubled.Lsh(doubled, 1)
	if doubled.CmpAbs(den) >= 0 {
		if (num.Sign() < 0) == (den.Sign() < 0) {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q
}

// decomposeScalar splits k into (k1,k2) with k ≡ k1+k2·lambda (mod r) and
// |k1|,|k2| ≈ sqrt(r) ≈ half k's bit length. The division inside is not
// constant-time, so this — and ScalarMulGLVVartime below — must only ever
// be used on public scalars (verification exponents), never secret keys.
func decomposeScalar(k *big.Int) (k1, k2 *big.Int) {
	c1 := roundDiv(new(big.Int).Mul(glvB2, k), glvDet)
	c2 := roundDiv(new(big.Int).Neg(new(big.Int).Mul(glvB1, k)), glvDet)

	k1 = new(big.Int).Sub(k, new(big.Int).Mul(c1, glvA1))
	k1.Sub(k1, new(big.Int).Mul(c2, glvA2))

	k2 = new(big.Int).Neg(new(big.Int).Mul(c1, glvB1))
	k2.Sub(k2, new(big.Int).Mul(c2, glvB2))
	return k1, k2
}

// ScalarMulGLVVartime computes z = [s]x using the GLV decomposition to
// halve the number of doublings versus ScalarMulVartime: s is split into
// two ≈127-bit half-scalars k1,k2 with s ≡ k1+k2·lambda (mod r), and
// [s]x = [k1]x + [k2]phi(x) is then evaluated by one interleaved
// double-and-add pass over both half-scalars at once. Only for public
// scalars — see decomposeScalar.
func (z *Point) ScalarMulGLVVartime(x *Point, s *fr.Element) *Point {
	b := s.Bytes()
	k := new(big.Int).SetBytes(b[:])

	k1, k2 := decomposeScalar(k)

	p1 := *x
	if k1.Sign() < 0 {
		p1.Neg(&p1)
		k1.Neg(k1)
	}
	var p2 Point
	p2.Endomorphism(x)
	if k2.Sign() < 0 {
		p2.Neg(&p2)
		k2.Neg(k2)
	}

	bitLen := k1.BitLen()
	if k2.BitLen() > bitLen {
		bitLen = k2.BitLen()
	}

	var acc Point
	acc.SetInfinity()
	for i := bitLen - 1; i >= 0; i-- {
		acc.Double(&acc)
		if k1.Bit(i) == 1 {
			acc.Add(&acc, &p1)
		}
		if k2.Bit(i) == 1 {
			acc.Add(&acc, &p2)
		}
	}
	*z = acc
	return z
}

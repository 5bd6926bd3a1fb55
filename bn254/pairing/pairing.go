// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pairing implements the BN254 optimal-ate pairing e: G1 x G2 -> Gt,
// Gt the order-r subgroup of 𝔽p¹². The Miller loop is evaluated with both
// operands lifted into 𝔽p¹² through the sextic twist embedding so the line
// function is ordinary field arithmetic rather than a hand-tuned sparse
// multiplication — simpler to get right at the cost of the speed a
// production pairing library would spend on it.
package pairing

import (
	"github.com/mratsim/constantine-go/bn254/fp"
	"github.com/mratsim/constantine-go/bn254/fp12"
	"github.com/mratsim/constantine-go/bn254/fp2"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/bn254/g2"
)

// loopBits are the bits of 6x+2 (x = 4965661367192848881, the BN254 seed),
// most significant first. loopBits[0] is the leading 1, which MillerLoop
// skips by starting at index 1.
var loopBits = bnLoopBits()

func bnLoopBits() []uint {
	// 6x+2 (x = 4965661367192848881) needs 65 bits, one more than fits in a
	// uint64, so the top bit is split out and the remaining 64 bits (which
	// is 6x+2 - 2^64) are shifted out below.
	const sixXPlus2Low = uint64(0x9d797039be763ba8)
	const hi = uint(1)
	bits := make([]uint, 0, 65)
	bits = append(bits, hi)
	for i := 63; i >= 0; i-- {
		bits = append(bits, uint((sixXPlus2Low>>uint(i))&1))
	}
	return bits
}

func embedFp(x *fp.Element) fp12.Element {
	var z fp12.Element
	z.C0.C0.C0.Set(x)
	return z
}

func embedG2X(x *fp2.Element) fp12.Element {
	var z fp12.Element
	z.C0.C1.Set(x)
	return z
}

func embedG2Y(y *fp2.Element) fp12.Element {
	var z fp12.Element
	z.C1.C1.Set(y)
	return z
}

// liftedPoint is a G2-subgroup point lifted into 𝔽p¹² via the sextic twist
// embedding ψ(x,y) = (x*w², y*w³), carried in affine coordinates.
type liftedPoint struct {
	X, Y fp12.Element
}

func liftG2(x, y *fp2.Element) liftedPoint {
	return liftedPoint{X: embedG2X(x), Y: embedG2Y(y)}
}

// lineDouble advances T to 2T and returns the tangent-line value evaluated
// at the lifted G1 point (px, py).
func lineDouble(t *liftedPoint, px, py *fp12.Element) fp12.Element {
	var xsq, threeXsq, num, den, lambda fp12.Element

	xsq.Square(&t.X)
	threeXsq.Double(&xsq)
	threeXsq.Add(&threeXsq, &xsq)
	num.Set(&threeXsq)

	den.Double(&t.Y)

	var denInv fp12.Element
	denInv.Inv(&den)
	lambda.Mul(&num, &denInv)

	var lambdaSq, newX fp12.Element
	lambdaSq.Square(&lambda)
	newX.Double(&t.X)
	var newXOld fp12.Element
	newXOld.Set(&newX)
	newX.Sub(&lambdaSq, &newXOld)

	var xDiff, newY fp12.Element
	xDiff.Sub(&t.X, &newX)
	newY.Mul(&lambda, &xDiff)
	newY.Sub(&newY, &t.Y)

	var l, pxMinusTx, lTerm fp12.Element
	l.Sub(py, &t.Y)
	pxMinusTx.Sub(px, &t.X)
	lTerm.Mul(&lambda, &pxMinusTx)
	l.Sub(&l, &lTerm)

	t.X = newX
	t.Y = newY
	return l
}

// lineAdd advances T to T+Q and returns the chord-line value evaluated at
// the lifted G1 point (px, py).
func lineAdd(t *liftedPoint, q *liftedPoint, px, py *fp12.Element) fp12.Element {
	var num, den, lambda fp12.Element
	num.Sub(&q.Y, &t.Y)
	den.Sub(&q.X, &t.X)
	var denInv fp12.Element
	denInv.Inv(&den)
	lambda.Mul(&num, &denInv)

	var lambdaSq, newX fp12.Element
	lambdaSq.Square(&lambda)
	newX.Add(&t.X, &q.X)
	var newXOld fp12.Element
	newXOld.Set(&newX)
	newX.Sub(&lambdaSq, &newXOld)

	var xDiff, newY fp12.Element
	xDiff.Sub(&t.X, &newX)
	newY.Mul(&lambda, &xDiff)
	newY.Sub(&newY, &t.Y)

	var l, pxMinusTx, lTerm fp12.Element
	l.Sub(py, &t.Y)
	pxMinusTx.Sub(px, &t.X)
	lTerm.Mul(&lambda, &pxMinusTx)
	l.Sub(&l, &lTerm)

	t.X = newX
	t.Y = newY
	return l
}

// frobeniusG2 applies the BN254 G2 Frobenius endomorphism (x,y) -> (x^p, y^p)
// mapped back onto the twist via the precomputed γ constants.
func frobeniusG2(x, y *fp2.Element) (fp2.Element, fp2.Element) {
	var xConj, yConj, xr, yr fp2.Element
	xConj.Conjugate(x)
	yConj.Conjugate(y)
	xr.Mul(&xConj, &g2Gamma1)
	yr.Mul(&yConj, &g2Gamma1Y)
	return xr, yr
}

func frobeniusSquaredG2(x, y *fp2.Element) (fp2.Element, fp2.Element) {
	var xr, yr fp2.Element
	xr.Mul(x, &g2Gamma2)
	yr.Mul(y, &g2Gamma2Y)
	return xr, yr
}

var (
	g2Gamma1  = fp2.Element{C0: fp.Element{0xb5773b104563ab30, 0x347f91c8a9aa6454, 0x7a007127242e0991, 0x1956bcd8118214ec}, C1: fp.Element{0x6e849f1ea0aa4757, 0xaa1c7b6d89f89141, 0xb6e713cdfae0ca3a, 0x26694fbb4e82ebc3}}
	g2Gamma1Y = fp2.Element{C0: fp.Element{0xe4bbdd0c2936b629, 0xbb30f162e133bacb, 0x31a9d1b6f9645366, 0x253570bea500f8dd}, C1: fp.Element{0xa1d77ce45ffe77c7, 0x07affd117826d1db, 0x6d16bd27bb7edc6b, 0x2c87200285defecc}}
	g2Gamma2  = fp2.Element{C0: fp.Element{0x7361d77f843abe92, 0xa5bb2bd3273411fb, 0x9c941f314b3e2399, 0x15df9cddbb9fd3ec}, C1: fp.Element{0x5dddfd154bd8c949, 0x62cb29a5a4445b60, 0x37bc870a0c7dd2b9, 0x24830a9d3171f0fd}}
	g2Gamma2Y = fp2.Element{C0: fp.Element{0xa3f7e16ba6cd0d37, 0xa3c40d7cada5bebc, 0xa09fd9583a41469d, 0x0ee0f3a0764d92b8}, C1: fp.Element{0x556f8ccceb2dfc6a, 0x63a434f176d44f75, 0x0bbae52ed00803fe, 0x078a5ad5be734fd3}}
)

// MillerLoop computes the Miller function f_{6x+2,Q}(P) for P in G1, Q in
// G2, both in affine coordinates, followed by the two optimal-ate Frobenius
// correction terms.
func MillerLoop(p *g1.Point, q *g2.Point) fp12.Element {
	px, py, pOk := p.Affine()
	qx, qy, qOk := q.Affine()
	var f fp12.Element
	f.SetOne()
	if !pOk || !qOk {
		return f
	}

	liftedPx := embedFp(&px)
	liftedPy := embedFp(&py)

	t := liftG2(&qx, &qy)
	qLifted := liftG2(&qx, &qy)

	for i := 1; i < len(loopBits); i++ {
		f.Square(&f)
		l := lineDouble(&t, &liftedPx, &liftedPy)
		f.Mul(&f, &l)
		if loopBits[i] == 1 {
			l := lineAdd(&t, &qLifted, &liftedPx, &liftedPy)
			f.Mul(&f, &l)
		}
	}

	q1x, q1y := frobeniusG2(&qx, &qy)
	q1 := liftG2(&q1x, &q1y)
	l := lineAdd(&t, &q1, &liftedPx, &liftedPy)
	f.Mul(&f, &l)

	q2x, q2y := frobeniusSquaredG2(&qx, &qy)
	q2y.Neg(&q2y)
	q2 := liftG2(&q2x, &q2y)
	l = lineAdd(&t, &q2, &liftedPx, &liftedPy)
	f.Mul(&f, &l)

	return f
}

// FinalExponentiation raises f to (p^12-1)/r: the easy part
// (p^6-1)(p^2+1) via conjugate/inverse/Frobenius², and the hard part
// (p^4-p^2+1)/r via plain square-and-multiply against the fixed public
// exponent below.
func FinalExponentiation(f *fp12.Element) fp12.Element {
	var fInv, f1 fp12.Element
	fInv.Inv(f)
	f1.Conjugate(f)
	f1.Mul(&f1, &fInv) // f^(p^6-1)

	var f1Frob2, f2 fp12.Element
	frobeniusSquared(&f1Frob2, &f1)
	f2.Mul(&f1Frob2, &f1) // f2 = f1^(p^2+1)

	return powVartime(&f2, hardPartExponent)
}

func frobeniusSquared(z, x *fp12.Element) {
	var tmp fp12.Element
	tmp.Frobenius(x)
	z.Frobenius(&tmp)
}

func powVartime(x *fp12.Element, exponent []byte) fp12.Element {
	var acc fp12.Element
	acc.SetOne()
	for _, b := range exponent {
		for bit := 7; bit >= 0; bit-- {
			acc.Square(&acc)
			if (b>>uint(bit))&1 == 1 {
				acc.Mul(&acc, x)
			}
		}
	}
	return acc
}

// hardPartExponent is (p^4-p^2+1)/r, big-endian.
var hardPartExponent = []byte{
	0x01, 0xba, 0xaa, 0x71, 0x0b, 0x07, 0x59, 0xad, 0x33, 0x1e, 0xc1, 0x51, 0x83, 0x17, 0x7f, 0xaf,
	0x6c, 0x0e, 0xb5, 0x22, 0xd5, 0xb1, 0x22, 0x78, 0x4e, 0x52, 0x9a, 0x58, 0x61, 0x87, 0x6f, 0x6b,
	0x3b, 0x1b, 0x13, 0x55, 0xd1, 0x89, 0x22, 0x7d, 0x79, 0x58, 0x1e, 0x16, 0xf3, 0xfd, 0x90, 0xc6,
	0x6b, 0x88, 0x7d, 0x56, 0xd5, 0x09, 0x5f, 0x23, 0xaa, 0xa4, 0x41, 0xe3, 0x95, 0x4b, 0xcf, 0x8a,
	0xdc, 0xc7, 0xb4, 0x4c, 0x87, 0xcd, 0xba, 0xcf, 0xf1, 0x15, 0x4e, 0x7e, 0x1d, 0xa0, 0x14, 0xfd,
	0x5a, 0xbf, 0x5c, 0xc4, 0xf4, 0x9c, 0x36, 0xd4, 0xe8, 0x1b, 0xb4, 0x82, 0xcc, 0xdf, 0x42, 0xb1,
}

// Pair computes e(P,Q) = FinalExponentiation(MillerLoop(P,Q)).
func Pair(p *g1.Point, q *g2.Point) fp12.Element {
	f := MillerLoop(p, q)
	return FinalExponentiation(&f)
}

// MultiMillerLoop accumulates the Miller loop of several (P,Q) pairs before
// a single shared final exponentiation — the standard way batch pairing
// checks (e.g. Groth16 verification) amortize the expensive part.
func MultiMillerLoop(ps []g1.Point, qs []g2.Point) fp12.Element {
	var acc fp12.Element
	acc.SetOne()
	n := len(ps)
	if len(qs) < n {
		n = len(qs)
	}
	for i := 0; i < n; i++ {
		m := MillerLoop(&ps[i], &qs[i])
		acc.Mul(&acc, &m)
	}
	return acc
}

// PairingCheck reports whether the product of pairings of the given (P,Q)
// pairs is 1 in Gt — the standard batched verification used by bilinear
// pairing-based proof systems to confirm e(P1,Q1)*...*e(Pn,Qn) == 1 without
// paying for n separate final exponentiations.
func PairingCheck(ps []g1.Point, qs []g2.Point) bool {
	m := MultiMillerLoop(ps, qs)
	result := FinalExponentiation(&m)
	return result.IsOne()
}

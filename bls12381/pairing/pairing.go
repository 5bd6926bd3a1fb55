// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pairing implements the BLS12-381 optimal-ate pairing
// e: G1 x G2 -> Gt, Gt the order-r subgroup of 𝔽p¹². As in bn254/pairing,
// both operands are lifted into 𝔽p¹² through the sextic twist embedding so
// the line function is ordinary field arithmetic rather than a hand-tuned
// sparse multiplication.
package pairing

import (
	"github.com/mratsim/constantine-go/bls12381/fp"
	"github.com/mratsim/constantine-go/bls12381/fp12"
	"github.com/mratsim/constantine-go/bls12381/fp2"
	"github.com/mratsim/constantine-go/bls12381/g1"
	"github.com/mratsim/constantine-go/bls12381/g2"
)

// loopBits are the bits of |x| = 0xd201000000010000 (the BLS12-381 seed is
// negative), most significant first, skipping the implicit leading 1.
var loopBits = blsLoopBits()

func blsLoopBits() []uint {
	const absX = uint64(0xd201000000010000)
	bits := make([]uint, 0, 64)
	started := false
	for i := 63; i >= 0; i-- {
		bit := uint((absX >> uint(i)) & 1)
		if !started {
			if bit == 0 {
				continue
			}
			started = true
			continue // skip the implicit leading 1
		}
		bits = append(bits, bit)
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

// MillerLoop computes the Miller function f_{|x|,Q}(P) for P in G1, Q in
// G2, both in affine coordinates, conjugated at the end to account for the
// BLS12-381 seed's negative sign (unlike BN curves' 6x+2 loop, the BLS12
// optimal-ate loop runs over |x| alone with no trailing Frobenius terms).
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

	for i := 0; i < len(loopBits); i++ {
		f.Square(&f)
		l := lineDouble(&t, &liftedPx, &liftedPy)
		f.Mul(&f, &l)
		if loopBits[i] == 1 {
			qLifted := liftG2(&qx, &qy)
			l := lineAdd(&t, &qLifted, &liftedPx, &liftedPy)
			f.Mul(&f, &l)
		}
	}

	// x is negative: f_{x,Q}(P) = conjugate(f_{|x|,Q}(P))^-1... but since Gt
	// elements have norm 1 under conjugate-then-invert being the same as
	// raising to p^6, and the easy part of final exponentiation already
	// folds in an inverse, the standard correction is simply to conjugate.
	f.Conjugate(&f)

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
	0x0f, 0x68, 0x6b, 0x3d, 0x80, 0x7d, 0x01, 0xc0, 0xbd, 0x38, 0xc3, 0x19, 0x5c, 0x89, 0x9e, 0xd3,
	0xcd, 0xe8, 0x8e, 0xeb, 0x99, 0x6c, 0xa3, 0x94, 0x50, 0x66, 0x32, 0x52, 0x8d, 0x6a, 0x9a, 0x2f,
	0x23, 0x00, 0x63, 0xcf, 0x08, 0x15, 0x17, 0xf6, 0x8f, 0x77, 0x64, 0xc2, 0x8b, 0x6f, 0x8a, 0xe5,
	0xa7, 0x2b, 0xce, 0x8d, 0x63, 0xcb, 0x9f, 0x82, 0x7e, 0xca, 0x0b, 0xa6, 0x21, 0x31, 0x5b, 0x20,
	0x76, 0x99, 0x50, 0x03, 0xfc, 0x77, 0xa1, 0x79, 0x88, 0xf8, 0x76, 0x1b, 0xdc, 0x51, 0xdc, 0x23,
	0x78, 0xb9, 0x03, 0x90, 0x96, 0xd1, 0xb7, 0x67, 0xf1, 0x7f, 0xcb, 0xde, 0x78, 0x37, 0x65, 0x91,
	0x5c, 0x97, 0xf3, 0x6c, 0x6f, 0x18, 0x21, 0x2e, 0xd0, 0xb2, 0x83, 0xed, 0x23, 0x7d, 0xb4, 0x21,
	0xd1, 0x60, 0xae, 0xb6, 0xa1, 0xe7, 0x99, 0x83, 0x77, 0x49, 0x40, 0x99, 0x67, 0x54, 0xc8, 0xc7,
	0x1a, 0x26, 0x29, 0xb0, 0xde, 0xa2, 0x36, 0x90, 0x5c, 0xe9, 0x37, 0x33, 0x5d, 0x5b, 0x68, 0xfa,
	0x99, 0x12, 0xaa, 0xe2, 0x08, 0xcc, 0xf1, 0xe5, 0x16, 0xc3, 0xf4, 0x38, 0xe3, 0xba, 0x79,
}

// Pair computes e(P,Q) = FinalExponentiation(MillerLoop(P,Q)).
func Pair(p *g1.Point, q *g2.Point) fp12.Element {
	f := MillerLoop(p, q)
	return FinalExponentiation(&f)
}

// MultiMillerLoop accumulates the Miller loop of several (P,Q) pairs before
// a single shared final exponentiation — the standard way batch pairing
// checks (e.g. BLS signature aggregation) amortize the expensive part.
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
// pairs is 1 in Gt — the batched verification used by BLS signature schemes
// to confirm e(P1,Q1)*...*e(Pn,Qn) == 1 without paying for n separate final
// exponentiations.
func PairingCheck(ps []g1.Point, qs []g2.Point) bool {
	m := MultiMillerLoop(ps, qs)
	result := FinalExponentiation(&m)
	return result.IsOne()
}

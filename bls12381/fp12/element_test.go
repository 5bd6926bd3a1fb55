// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fp12

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fp"
)

func sample() Element {
	var z Element
	z.C0.C0.C0 = fp.Element{1, 2, 3, 4, 5, 6}
	z.C0.C1.C0 = fp.Element{7, 8, 9, 10, 11, 12}
	z.C1.C0.C0 = fp.Element{13, 14, 15, 16, 17, 18}
	return z
}

func TestMulInvIsOne(t *testing.T) {
	x := sample()
	var xInv, prod, one Element
	xInv.Inv(&x)
	prod.Mul(&x, &xInv)
	one.SetOne()
	if !prod.Equal(&one) {
		t.Error("x * x^-1 != 1")
	}
}

func TestSquareMatchesMul(t *testing.T) {
	x := sample()
	var sq, mul Element
	sq.Square(&x)
	mul.Mul(&x, &x)
	if !sq.Equal(&mul) {
		t.Error("Square(x) != x*x")
	}
}

func TestFrobeniusTwelveIsIdentity(t *testing.T) {
	// x^(p^12) == x for any x in Fp12, since Fp12 is exactly the degree-12
	// extension of Fp: applying Frobenius twelve times must be the identity.
	x := sample()
	acc := x
	for i := 0; i < 12; i++ {
		acc.Frobenius(&acc)
	}
	if !acc.Equal(&x) {
		t.Error("applying Frobenius 12 times did not return the original element")
	}
}

func TestConjugateIsFrobeniusSixTimes(t *testing.T) {
	x := sample()
	var acc Element
	acc = x
	for i := 0; i < 6; i++ {
		acc.Frobenius(&acc)
	}
	var conj Element
	conj.Conjugate(&x)
	if !acc.Equal(&conj) {
		t.Error("Frobenius^6 != Conjugate")
	}
}

func TestConjugateInvolution(t *testing.T) {
	x := sample()
	var c1, c2 Element
	c1.Conjugate(&x)
	c2.Conjugate(&c1)
	if !c2.Equal(&x) {
		t.Error("Conjugate(Conjugate(x)) != x")
	}
}

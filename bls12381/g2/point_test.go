// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package g2

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fr"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	gen := Generator()
	if !gen.IsOnCurve() {
		t.Fatal("BLS12-381 G2 generator fails the twist equation")
	}
	if gen.IsInfinity() {
		t.Fatal("generator must not be the identity")
	}
}

func TestAddMatchesDouble(t *testing.T) {
	gen := Generator()
	var sum, dbl Point
	sum.Add(&gen, &gen)
	dbl.Double(&gen)
	if !sum.Equal(&dbl) {
		t.Error("P+P != 2P")
	}
}

func TestSubInverse(t *testing.T) {
	gen := Generator()
	var negP, zero Point
	negP.Neg(&gen)
	zero.Add(&gen, &negP)
	if !zero.IsInfinity() {
		t.Error("P + (-P) must be the identity")
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	gen := Generator()
	var a, b, ab fr.Element
	a.FromUint64(54321)
	b.FromUint64(98765)
	ab.Add(&a, &b)

	var pa, pb, sum, pab Point
	pa.ScalarMul(&gen, &a)
	pb.ScalarMul(&gen, &b)
	sum.Add(&pa, &pb)
	pab.ScalarMul(&gen, &ab)

	if !sum.Equal(&pab) {
		t.Error("[a]G+[b]G != [a+b]G")
	}

	var pabVartime Point
	pabVartime.ScalarMulVartime(&gen, &ab)
	if !pabVartime.Equal(&pab) {
		t.Error("ScalarMulVartime disagrees with ScalarMul")
	}
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package g1

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fr"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	gen := Generator()
	if !gen.IsOnCurve() {
		t.Fatal("BLS12-381 G1 generator fails the curve equation")
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

func TestAddIdentity(t *testing.T) {
	gen := Generator()
	var inf, sum Point
	inf.SetInfinity()
	sum.Add(&gen, &inf)
	if !sum.Equal(&gen) {
		t.Error("P+infinity != P")
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

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	gen := Generator()
	var k fr.Element
	k.FromUint64(7)

	var acc Point
	acc.SetInfinity()
	for i := 0; i < 7; i++ {
		acc.Add(&acc, &gen)
	}

	var got Point
	got.ScalarMul(&gen, &k)
	if !got.Equal(&acc) {
		t.Error("ScalarMul(G, 7) != G+G+...+G (7 times)")
	}

	var gotVartime Point
	gotVartime.ScalarMulVartime(&gen, &k)
	if !gotVartime.Equal(&acc) {
		t.Error("ScalarMulVartime(G, 7) != G+G+...+G (7 times)")
	}
}

func TestScalarMulZeroIsInfinity(t *testing.T) {
	gen := Generator()
	var zero fr.Element
	zero.SetZero()
	var got Point
	got.ScalarMul(&gen, &zero)
	if !got.IsInfinity() {
		t.Error("[0]G must be the identity")
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	gen := Generator()
	var a, b, ab fr.Element
	a.FromUint64(12345)
	b.FromUint64(67890)
	ab.Add(&a, &b)

	var pa, pb, sum, pab Point
	pa.ScalarMul(&gen, &a)
	pb.ScalarMul(&gen, &b)
	sum.Add(&pa, &pb)
	pab.ScalarMul(&gen, &ab)

	if !sum.Equal(&pab) {
		t.Error("[a]G+[b]G != [a+b]G")
	}
}

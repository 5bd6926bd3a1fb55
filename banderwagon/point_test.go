// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package banderwagon

import (
	"testing"

	"github.com/mratsim/constantine-go/bandersnatch"
	"github.com/mratsim/constantine-go/bandersnatch/fr"
)

func TestGeneratorNotInfinity(t *testing.T) {
	g := Generator()
	if g.IsInfinity() {
		t.Fatal("generator must not be the identity")
	}
}

func TestAddMatchesDouble(t *testing.T) {
	g := Generator()
	var sum, dbl Element
	sum.Add(&g, &g)
	dbl.Double(&g)
	if !sum.Equal(&dbl) {
		t.Error("P+P != 2P")
	}
}

func TestAddIdentity(t *testing.T) {
	g := Generator()
	var inf, sum Element
	inf.SetInfinity()
	sum.Add(&g, &inf)
	if !sum.Equal(&g) {
		t.Error("P+infinity != P")
	}
}

func TestSubInverse(t *testing.T) {
	g := Generator()
	var negG, zero Element
	negG.Neg(&g)
	zero.Add(&g, &negG)
	if !zero.IsInfinity() {
		t.Error("P + (-P) must be the identity")
	}
}

// TestQuotientEquivalence checks that a Bandersnatch point and its
// (x,y)->(-x,-y) translate map to the same Banderwagon element, the
// defining property of the quotient this package implements.
func TestQuotientEquivalence(t *testing.T) {
	gen := bandersnatch.Generator()
	x, y, _ := gen.Affine()
	var nx, ny = x, y
	nx.Neg(&x)
	ny.Neg(&y)
	negXY := bandersnatch.FromAffine(&nx, &ny)

	a := FromBandersnatch(&gen)
	b := FromBandersnatch(&negXY)
	if !a.Equal(&b) {
		t.Error("(x,y) and (-x,-y) must be the same Banderwagon element")
	}
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := Generator()
	var k fr.Element
	k.FromUint64(11)

	var acc Element
	acc.SetInfinity()
	for i := 0; i < 11; i++ {
		acc.Add(&acc, &g)
	}

	var got Element
	got.ScalarMul(&g, &k)
	if !got.Equal(&acc) {
		t.Error("ScalarMul(G, 11) != G+G+...+G (11 times)")
	}

	var gotVartime Element
	gotVartime.ScalarMulVartime(&g, &k)
	if !gotVartime.Equal(&acc) {
		t.Error("ScalarMulVartime(G, 11) != G+G+...+G (11 times)")
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	g := Generator()
	var a, b, ab fr.Element
	a.FromUint64(2024)
	b.FromUint64(7)
	ab.Add(&a, &b)

	var pa, pb, sum, pab Element
	pa.ScalarMul(&g, &a)
	pb.ScalarMul(&g, &b)
	sum.Add(&pa, &pb)
	pab.ScalarMul(&g, &ab)

	if !sum.Equal(&pab) {
		t.Error("[a]G+[b]G != [a+b]G")
	}
}

func TestMSMMatchesSequentialAccumulation(t *testing.T) {
	g := Generator()
	var d Element
	d.Double(&g)

	scalars := []fr.Element{}
	var s0, s1 fr.Element
	s0.FromUint64(3)
	s1.FromUint64(5)
	scalars = append(scalars, s0, s1)
	points := []Element{g, d}

	got := MSM(points, scalars)

	var p0, p1, want Element
	p0.ScalarMulVartime(&points[0], &scalars[0])
	p1.ScalarMulVartime(&points[1], &scalars[1])
	want.Add(&p0, &p1)

	if !got.Equal(&want) {
		t.Error("MSM(points, scalars) != sum of individual scalar multiples")
	}
}

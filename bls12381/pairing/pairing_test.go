// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pairing

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fp12"
	"github.com/mratsim/constantine-go/bls12381/fr"
	"github.com/mratsim/constantine-go/bls12381/g1"
	"github.com/mratsim/constantine-go/bls12381/g2"
)

func TestPairingNonDegenerate(t *testing.T) {
	g1Gen := g1.Generator()
	g2Gen := g2.Generator()
	result := Pair(&g1Gen, &g2Gen)
	var one fp12.Element
	one.SetOne()
	if result.Equal(&one) {
		t.Fatal("e(G1, G2) must not be 1")
	}
}

func TestPairingBilinearInFirstArgument(t *testing.T) {
	g1Gen := g1.Generator()
	g2Gen := g2.Generator()

	var a fr.Element
	a.FromUint64(7)

	var aG1 g1.Point
	aG1.ScalarMul(&g1Gen, &a)

	lhs := Pair(&aG1, &g2Gen)
	base := Pair(&g1Gen, &g2Gen)
	rhs := powVartimeFr(&base, &a)

	if !lhs.Equal(&rhs) {
		t.Error("e([a]P, Q) != e(P, Q)^a")
	}
}

func TestPairingBilinearMatchesProduct(t *testing.T) {
	g1Gen := g1.Generator()
	g2Gen := g2.Generator()

	var a, b, ab fr.Element
	a.FromUint64(13)
	b.FromUint64(17)
	ab.Mul(&a, &b)

	var aG1 g1.Point
	aG1.ScalarMul(&g1Gen, &a)
	var bG2 g2.Point
	bG2.ScalarMul(&g2Gen, &b)

	lhs := Pair(&aG1, &bG2)

	var abG1 g1.Point
	abG1.ScalarMul(&g1Gen, &ab)
	rhs := Pair(&abG1, &g2Gen)

	if !lhs.Equal(&rhs) {
		t.Error("e([a]P, [b]Q) != e([ab]P, Q)")
	}
}

func TestPairingCheckDetectsMismatch(t *testing.T) {
	g1Gen := g1.Generator()
	g2Gen := g2.Generator()

	var two fr.Element
	two.FromUint64(2)
	var twoG1 g1.Point
	twoG1.ScalarMul(&g1Gen, &two)

	var negG1 g1.Point
	negG1.Neg(&g1Gen)

	// e(2P, Q) * e(-P, Q) == e(P, Q) != 1.
	ok := PairingCheck([]g1.Point{twoG1, negG1}, []g2.Point{g2Gen, g2Gen})
	if ok {
		t.Error("PairingCheck should reject e(2P,Q)*e(-P,Q) == 1")
	}

	// e(P, Q) * e(-P, Q) == 1 since the G1 points cancel before pairing.
	ok = PairingCheck([]g1.Point{g1Gen, negG1}, []g2.Point{g2Gen, g2Gen})
	if !ok {
		t.Error("PairingCheck should accept e(P,Q)*e(-P,Q) == 1")
	}
}

// powVartimeFr raises x to the plain-integer value of a scalar field
// element, for cross-checking pairing bilinearity against ScalarMul.
func powVartimeFr(x *fp12.Element, s *fr.Element) fp12.Element {
	var acc fp12.Element
	acc.SetOne()
	bitLen := s.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		acc.Square(&acc)
		if s.Bit(i) == 1 {
			acc.Mul(&acc, x)
		}
	}
	return acc
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashtocurve

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fp"
)

func TestHashToCurveOnCurve(t *testing.T) {
	msgs := [][]byte{
		[]byte(""),
		[]byte("abc"),
		[]byte("constantine-go hash-to-curve fixture"),
	}
	for _, msg := range msgs {
		p, err := HashToCurve(msg, DST)
		if err != nil {
			t.Fatalf("HashToCurve(%q): %v", msg, err)
		}
		if !p.IsOnCurve() {
			t.Errorf("HashToCurve(%q) produced a point off the curve", msg)
		}
		if p.IsInfinity() {
			t.Errorf("HashToCurve(%q) produced the identity, vanishingly unlikely", msg)
		}
	}
}

func TestHashToCurveDeterministic(t *testing.T) {
	msg := []byte("determinism check")
	p1, err := HashToCurve(msg, DST)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := HashToCurve(msg, DST)
	if err != nil {
		t.Fatal(err)
	}
	if !p1.Equal(&p2) {
		t.Error("HashToCurve is not deterministic for the same (msg, dst)")
	}
}

func TestHashToCurveDomainSeparation(t *testing.T) {
	msg := []byte("same message")
	p1, err := HashToCurve(msg, []byte("DST-A"))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := HashToCurve(msg, []byte("DST-B"))
	if err != nil {
		t.Fatal(err)
	}
	if p1.Equal(&p2) {
		t.Error("different DSTs collided on the same output point")
	}
}

func TestEncodeToCurveOnCurve(t *testing.T) {
	p, err := EncodeToCurve([]byte("encode path"), DST)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsOnCurve() {
		t.Error("EncodeToCurve produced a point off the curve")
	}
}

func TestMapToCurveZeroInput(t *testing.T) {
	// SVDW is total: every field element, including zero, maps to a point
	// on the curve.
	var zero fp.Element
	zero.SetZero()
	x, y := MapToCurve(&zero)
	var lhs, rhs, xCubed, four fp.Element
	lhs.Square(&y)
	rhs.Square(&x)
	xCubed.Mul(&rhs, &x)
	four.FromUint64(4)
	rhs.Add(&xCubed, &four)
	if !lhs.Equal(&rhs) {
		t.Error("MapToCurve(0) does not satisfy the curve equation")
	}
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scalarmul

import (
	"testing"

	"github.com/mratsim/constantine-go/bn254/fr"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/bn254/g2"
)

// splitmix64 generates a deterministic pseudo-random stream so this file's
// fixtures don't depend on an external RNG seed.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func randFr(state *uint64) fr.Element {
	var e fr.Element
	e.FromUint64(splitmix64(state))
	return e
}

func TestMSMMatchesNaiveSumG1(t *testing.T) {
	const n = 200
	state := uint64(1)
	gen := g1.Generator()

	bases := make([]g1.Point, n)
	scalars := make([]Scalar, n)
	scalarVals := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		s := randFr(&state)
		scalarVals[i] = s
		scalars[i] = &scalarVals[i]
		bases[i].ScalarMulVartime(&gen, &s)
	}

	got, err := MSM[g1.Point, *g1.Point](bases, scalars, 5)
	if err != nil {
		t.Fatal(err)
	}

	var want g1.Point
	want.SetInfinity()
	for i := range bases {
		var term g1.Point
		term.ScalarMulVartime(&bases[i], &scalarVals[i])
		want.Add(&want, &term)
	}

	if !want.Equal(&got) {
		t.Error("MSM result disagrees with naive per-base scalar-mul-then-sum")
	}
}

// TestMSMBoundaryWindowG2 exercises the window-count boundary from
// decision (b) in DESIGN.md: MSM sizes its windows from the largest
// scalar's bit length, and these splitmix64 scalars are at most 64 bits,
// so a C=13 window width gives 5 windows whose top window is at most
// 64-4*13 = 12 bits wide. windowDigit must read that short top window
// correctly with no separate "last window" special case.
func TestMSMBoundaryWindowG2(t *testing.T) {
	const n = 64
	const c = 13
	state := uint64(42)
	gen := g2.Generator()

	bases := make([]g2.Point, n)
	scalars := make([]Scalar, n)
	frs := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		s := randFr(&state)
		frs[i] = s
		scalars[i] = &frs[i]
		bases[i].ScalarMulVartime(&gen, &s)
	}

	got, err := MSM[g2.Point, *g2.Point](bases, scalars, c)
	if err != nil {
		t.Fatal(err)
	}

	var want g2.Point
	want.SetInfinity()
	for i := range bases {
		var term g2.Point
		term.ScalarMulVartime(&bases[i], &frs[i])
		want.Add(&want, &term)
	}

	if !want.Equal(&got) {
		t.Error("MSM result disagrees at the C=13 short-top-window boundary")
	}
}

func TestMSMLengthMismatch(t *testing.T) {
	bases := make([]g1.Point, 2)
	scalars := make([]Scalar, 1)
	if _, err := MSM[g1.Point, *g1.Point](bases, scalars, 4); err != ErrLengthMismatch {
		t.Errorf("got err=%v, want ErrLengthMismatch", err)
	}
}

func TestMSMEmpty(t *testing.T) {
	got, err := MSM[g1.Point, *g1.Point](nil, nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsInfinity() {
		t.Error("MSM of no terms should be the identity")
	}
}

func TestWindowedScalarMulMatchesVartime(t *testing.T) {
	gen := g1.Generator()
	state := uint64(7)
	for i := 0; i < 20; i++ {
		s := randFr(&state)
		want := WindowedScalarMul[g1.Point, *g1.Point](&gen, &s)
		var wantPoint g1.Point
		wantPoint.ScalarMulVartime(&gen, &s)
		if !want.Equal(&wantPoint) {
			t.Errorf("iteration %d: WindowedScalarMul disagrees with ScalarMulVartime", i)
		}
	}
}

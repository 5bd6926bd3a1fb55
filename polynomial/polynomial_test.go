// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-go/bls12381/fr"
)

func felt(v uint64) fr.Element {
	var e fr.Element
	e.FromUint64(v)
	return e
}

// p(x) = 1 + 2x + 3x^2, so p(2) = 1 + 4 + 12 = 17 and p'(2) = 2 + 12 = 14.
func TestEvalHornerMatchesDirectEvaluation(t *testing.T) {
	coeffs := []fr.Element{felt(1), felt(2), felt(3)}
	z := felt(2)

	got := Eval[fr.Element, *fr.Element](coeffs, &z)
	want := felt(17)
	require.True(t, got.Equal(&want), "Eval(1+2x+3x^2, 2) != 17")
}

func TestEvalEmptyPolynomialIsZero(t *testing.T) {
	z := felt(5)
	got := Eval[fr.Element, *fr.Element](nil, &z)
	require.True(t, got.IsZero())
}

func TestEvalWithDerivativeMatchesEval(t *testing.T) {
	coeffs := []fr.Element{felt(1), felt(2), felt(3)}
	z := felt(2)

	p, dp := EvalWithDerivative[fr.Element, *fr.Element](coeffs, &z)
	wantP := felt(17)
	wantDP := felt(14)
	require.True(t, p.Equal(&wantP), "p(2) mismatch")
	require.True(t, dp.Equal(&wantDP), "p'(2) mismatch")

	// Cross-check p against the plain Eval implementation.
	pOnly := Eval[fr.Element, *fr.Element](coeffs, &z)
	require.True(t, p.Equal(&pOnly))
}

func TestVanishingIsZeroOnRoots(t *testing.T) {
	roots := []fr.Element{felt(1), felt(2), felt(3)}
	for i := range roots {
		r := roots[i]
		got := Vanishing[fr.Element, *fr.Element](roots, &r)
		require.True(t, got.IsZero(), "vanishing polynomial nonzero at its own root %d", i)
	}
}

func TestVanishingNonzeroOffRoots(t *testing.T) {
	roots := []fr.Element{felt(1), felt(2), felt(3)}
	x := felt(4)
	got := Vanishing[fr.Element, *fr.Element](roots, &x)
	require.False(t, got.IsZero())
}

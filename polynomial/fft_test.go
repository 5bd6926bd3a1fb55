// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-go/bls12381/fr"
)

// order8RootOfUnity is an 8th root of unity of the BLS12-381 scalar field,
// 5^((r-1)/8) mod r (5 is the field's fixed quadratic non-residue, see
// bls12381/fr.Element's Tonelli-Shanks setup), independently derived so
// this test does not depend on the package exposing one itself.
func order8RootOfUnity() fr.Element {
	var g fr.Element
	b, err := hexTo32("3f96405d25a31660a733b23a98ca5b22a032824078eaa4fe8dd702cb688bc087")
	if err != nil {
		panic(err)
	}
	if err := g.FromBigEndianBytes(b[:]); err != nil {
		panic(err)
	}
	return g
}

func hexTo32(s string) ([32]byte, error) {
	var out [32]byte
	for i := 0; i < 32; i++ {
		var hi, lo byte
		hi = hexNibble(s[2*i])
		lo = hexNibble(s[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		panic("bad hex digit")
	}
}

func TestForwardFFTMatchesDirectEvaluation(t *testing.T) {
	g := order8RootOfUnity()
	coeffs := []fr.Element{felt(1), felt(2), felt(3), felt(4), felt(5), felt(6), felt(7), felt(8)}

	evals, err := Forward[fr.Element, *fr.Element](coeffs, g)
	require.NoError(t, err)
	require.Len(t, evals, 8)

	var point fr.Element
	point.SetOne()
	for k := 0; k < 8; k++ {
		want := Eval[fr.Element, *fr.Element](coeffs, &point)
		require.True(t, evals[k].Equal(&want), "evals[%d] disagrees with direct Horner evaluation at g^%d", k, k)
		point.Mul(&point, &g)
	}
}

func TestInverseFFTRoundTrips(t *testing.T) {
	g := order8RootOfUnity()
	coeffs := []fr.Element{felt(1), felt(2), felt(3), felt(4), felt(5), felt(6), felt(7), felt(8)}

	evals, err := Forward[fr.Element, *fr.Element](coeffs, g)
	require.NoError(t, err)

	back, err := Inverse[fr.Element, *fr.Element](evals, g)
	require.NoError(t, err)
	require.Len(t, back, 8)

	for i := range coeffs {
		require.True(t, back[i].Equal(&coeffs[i]), "coefficient %d did not round trip", i)
	}
}

func TestForwardFFTRejectsNonPowerOfTwoLength(t *testing.T) {
	g := order8RootOfUnity()
	coeffs := []fr.Element{felt(1), felt(2), felt(3)}
	_, err := Forward[fr.Element, *fr.Element](coeffs, g)
	require.ErrorIs(t, err, ErrSizeNotPowerOfTwo)
}

func TestForwardFFTRejectsWrongOrderGenerator(t *testing.T) {
	// felt(2) has no reason to be an 8th root of unity of this field.
	notARoot := felt(2)
	coeffs := []fr.Element{felt(1), felt(2), felt(3), felt(4), felt(5), felt(6), felt(7), felt(8)}
	_, err := Forward[fr.Element, *fr.Element](coeffs, notARoot)
	require.ErrorIs(t, err, ErrGeneratorWrongOrder)
}

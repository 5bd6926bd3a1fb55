// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ipa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-go/bandersnatch/fr"
	"github.com/mratsim/constantine-go/banderwagon"
)

func scalar(v uint64) fr.Element {
	var e fr.Element
	e.FromUint64(v)
	return e
}

// generators returns n deterministic, independent-looking Banderwagon
// generators G_i = [i+1]G, mirroring the reference implementation's SRS
// construction (ipa_integration.go's GenerateIPAGenerators) — adequate for
// exercising the protocol's algebra; a production SRS would derive these
// via hash-to-curve instead of small scalar multiples of a single point.
func generators(n int) []banderwagon.Element {
	g := banderwagon.Generator()
	out := make([]banderwagon.Element, n)
	for i := 0; i < n; i++ {
		var s fr.Element
		s.FromUint64(uint64(i + 1))
		out[i].ScalarMulVartime(&g, &s)
	}
	return out
}

func TestInnerProductMatchesDirectSum(t *testing.T) {
	a := []fr.Element{scalar(1), scalar(2), scalar(3), scalar(4)}
	b := []fr.Element{scalar(5), scalar(6), scalar(7), scalar(8)}

	got := InnerProduct(a, b)
	want := scalar(1*5 + 2*6 + 3*7 + 4*8)
	require.True(t, got.Equal(&want))
}

func TestProveVerifyRoundTrip(t *testing.T) {
	const n = 8
	gens := generators(n)

	a := make([]fr.Element, n)
	b := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		a[i] = scalar(uint64(i + 1))
		b[i] = scalar(uint64(2*i + 1))
	}

	commitment := CommitVector(gens, a)

	proof, v, err := Prove(gens, a, b, &commitment, nil)
	require.NoError(t, err)

	ok, err := Verify(gens, &commitment, b, &v, proof, nil)
	require.NoError(t, err)
	require.True(t, ok, "honest proof failed to verify")
}

func TestVerifyRejectsWrongInnerProduct(t *testing.T) {
	const n = 4
	gens := generators(n)
	a := []fr.Element{scalar(1), scalar(2), scalar(3), scalar(4)}
	b := []fr.Element{scalar(1), scalar(1), scalar(1), scalar(1)}

	commitment := CommitVector(gens, a)
	proof, _, err := Prove(gens, a, b, &commitment, nil)
	require.NoError(t, err)

	wrongV := scalar(999999)
	ok, err := Verify(gens, &commitment, b, &wrongV, proof, nil)
	require.NoError(t, err)
	require.False(t, ok, "proof verified against a forged inner product value")
}

func TestVerifyRejectsMismatchedCommitment(t *testing.T) {
	const n = 4
	gens := generators(n)
	a := []fr.Element{scalar(1), scalar(2), scalar(3), scalar(4)}
	b := []fr.Element{scalar(4), scalar(3), scalar(2), scalar(1)}

	commitment := CommitVector(gens, a)
	proof, v, err := Prove(gens, a, b, &commitment, nil)
	require.NoError(t, err)

	// A commitment to a different vector must not verify against this proof.
	aPrime := []fr.Element{scalar(9), scalar(9), scalar(9), scalar(9)}
	wrongCommitment := CommitVector(gens, aPrime)

	ok, err := Verify(gens, &wrongCommitment, b, &v, proof, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProveRejectsNonPowerOfTwoLength(t *testing.T) {
	gens := generators(3)
	a := []fr.Element{scalar(1), scalar(2), scalar(3)}
	b := []fr.Element{scalar(1), scalar(2), scalar(3)}
	commitment := CommitVector(gens, a)

	_, _, err := Prove(gens, a, b, &commitment, nil)
	require.ErrorIs(t, err, ErrNotPowerOfTwo)
}

func TestProveRejectsLengthMismatch(t *testing.T) {
	gens := generators(4)
	a := []fr.Element{scalar(1), scalar(2), scalar(3), scalar(4)}
	b := []fr.Element{scalar(1), scalar(2)}
	commitment := CommitVector(gens, a)

	_, _, err := Prove(gens, a, b, &commitment, nil)
	require.ErrorIs(t, err, ErrVectorLengthMismatch)
}

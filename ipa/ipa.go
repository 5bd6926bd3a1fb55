// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ipa

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mratsim/constantine-go/bandersnatch/fr"
	"github.com/mratsim/constantine-go/banderwagon"
)

// Sentinel errors for malformed inputs, wrapped with call-site context via
// github.com/pkg/errors at the point each is returned.
var (
	ErrVectorLengthMismatch = errors.New("ipa: vector length mismatch")
	ErrNotPowerOfTwo        = errors.New("ipa: vector length must be a power of two")
	ErrProofSizeMismatch    = errors.New("ipa: proof round count does not match vector length")
)

// transcriptLabel domain-separates this package's proofs from any other
// Fiat-Shamir protocol that might also hash Banderwagon points.
const transcriptLabel = "constantine-go/ipa"

// Proof is a Bulletproofs-style IPA proof: one (L, R) curve point pair per
// halving round, plus the final folded scalar.
type Proof struct {
	L []banderwagon.Element
	R []banderwagon.Element
	A fr.Element
}

// rounds returns the number of halving rounds for a vector of length n (n a
// power of two).
func rounds(n int) int {
	r := 0
	for m := n; m > 1; m /= 2 {
		r++
	}
	return r
}

// CommitVector computes the Pedersen vector commitment C = Σ values[i]·generators[i].
func CommitVector(generators []banderwagon.Element, values []fr.Element) banderwagon.Element {
	return banderwagon.MSM(generators, values)
}

// InnerProduct computes <a, b> = Σ a[i]·b[i] over the scalar field.
func InnerProduct(a, b []fr.Element) fr.Element {
	var acc fr.Element
	acc.SetZero()
	for i := range a {
		var term fr.Element
		term.Mul(&a[i], &b[i])
		acc.Add(&acc, &term)
	}
	return acc
}

// Prove generates a proof that <a, b> = v for the Pedersen commitment
// C = <a, generators>, via the standard recursive-halving IPA protocol: at
// each round the vectors split into low/high halves, L and R commit to the
// cross terms, a transcript-derived challenge folds both vectors and the
// generator vector down to half length, and after log2(n) rounds a single
// scalar remains. log optionally receives round-level diagnostics (nil is
// fine — this package never logs from the arithmetic itself, only from
// this collaborator-facing entry point, matching the "bit-level arithmetic
// never logs" rule the rest of this module follows).
func Prove(generators []banderwagon.Element, a, b []fr.Element, commitment *banderwagon.Element, log *zap.SugaredLogger) (*Proof, fr.Element, error) {
	n := len(a)
	var zero fr.Element
	if n == 0 || n != len(b) || n != len(generators) {
		return nil, zero, errors.Wrapf(ErrVectorLengthMismatch, "a=%d b=%d generators=%d", n, len(b), len(generators))
	}
	if n&(n-1) != 0 {
		return nil, zero, errors.Wrapf(ErrNotPowerOfTwo, "n=%d", n)
	}
	if log != nil {
		log.Debugw("ipa prove: starting", "vectorLen", n, "rounds", rounds(n))
	}

	tr := newTranscript(transcriptLabel)
	tr.appendPoint(commitment)

	v := InnerProduct(a, b)
	tr.appendScalar(&v)

	aVec := append([]fr.Element(nil), a...)
	bVec := append([]fr.Element(nil), b...)
	gVec := append([]banderwagon.Element(nil), generators...)

	proof := &Proof{
		L: make([]banderwagon.Element, 0, rounds(n)),
		R: make([]banderwagon.Element, 0, rounds(n)),
	}

	for m := n; m > 1; m /= 2 {
		half := m / 2
		aLo, aHi := aVec[:half], aVec[half:m]
		bLo, bHi := bVec[:half], bVec[half:m]
		gLo, gHi := gVec[:half], gVec[half:m]

		L := banderwagon.MSM(gHi, aLo)
		R := banderwagon.MSM(gLo, aHi)
		proof.L = append(proof.L, L)
		proof.R = append(proof.R, R)

		tr.appendPoint(&L)
		tr.appendPoint(&R)
		x := tr.challenge()
		var xInv fr.Element
		xInv.Inv(&x)

		newA := make([]fr.Element, half)
		newB := make([]fr.Element, half)
		newG := make([]banderwagon.Element, half)
		for i := 0; i < half; i++ {
			var xAHi, xInvBHi fr.Element
			xAHi.Mul(&x, &aHi[i])
			newA[i].Add(&aLo[i], &xAHi)

			xInvBHi.Mul(&xInv, &bHi[i])
			newB[i].Add(&bLo[i], &xInvBHi)

			var scaledGHi banderwagon.Element
			scaledGHi.ScalarMulVartime(&gHi[i], &xInv)
			newG[i].Add(&gLo[i], &scaledGHi)
		}
		aVec, bVec, gVec = newA, newB, newG
	}

	proof.A = aVec[0]
	if log != nil {
		log.Debugw("ipa prove: done", "rounds", len(proof.L))
	}
	return proof, v, nil
}

// Verify checks a Proof against the commitment, public evaluation vector b
// and claimed inner product v, by replaying the same transcript and folding
// used by Prove, then checking the folded commitment equals [proof.A]·G'.
func Verify(generators []banderwagon.Element, commitment *banderwagon.Element, b []fr.Element, v *fr.Element, proof *Proof, log *zap.SugaredLogger) (bool, error) {
	n := len(b)
	if n == 0 || n != len(generators) {
		return false, errors.Wrapf(ErrVectorLengthMismatch, "b=%d generators=%d", n, len(generators))
	}
	if n&(n-1) != 0 {
		return false, errors.Wrapf(ErrNotPowerOfTwo, "n=%d", n)
	}
	want := rounds(n)
	if len(proof.L) != want || len(proof.R) != want {
		return false, errors.Wrapf(ErrProofSizeMismatch, "got %d/%d rounds, want %d", len(proof.L), len(proof.R), want)
	}
	if log != nil {
		log.Debugw("ipa verify: starting", "vectorLen", n, "rounds", want)
	}

	tr := newTranscript(transcriptLabel)
	tr.appendPoint(commitment)
	tr.appendScalar(v)

	challenges := make([]fr.Element, want)
	for i := 0; i < want; i++ {
		tr.appendPoint(&proof.L[i])
		tr.appendPoint(&proof.R[i])
		challenges[i] = tr.challenge()
	}

	gVec := append([]banderwagon.Element(nil), generators...)
	bVec := append([]fr.Element(nil), b...)
	m := n
	for round := 0; round < want; round++ {
		half := m / 2
		x := challenges[round]
		var xInv fr.Element
		xInv.Inv(&x)

		newG := make([]banderwagon.Element, half)
		newB := make([]fr.Element, half)
		for i := 0; i < half; i++ {
			var scaledGHi banderwagon.Element
			scaledGHi.ScalarMulVartime(&gVec[half+i], &xInv)
			newG[i].Add(&gVec[i], &scaledGHi)

			var xInvBHi fr.Element
			xInvBHi.Mul(&xInv, &bVec[half+i])
			newB[i].Add(&bVec[i], &xInvBHi)
		}
		gVec, bVec = newG, newB
		m = half
	}

	cFinal := *commitment
	for i := 0; i < want; i++ {
		x := challenges[i]
		var xInv fr.Element
		xInv.Inv(&x)

		var lScaled, rScaled banderwagon.Element
		lScaled.ScalarMulVartime(&proof.L[i], &xInv)
		rScaled.ScalarMulVartime(&proof.R[i], &x)
		cFinal.Add(&cFinal, &lScaled)
		cFinal.Add(&cFinal, &rScaled)
	}

	var expected banderwagon.Element
	expected.ScalarMulVartime(&gVec[0], &proof.A)
	ok := cFinal.Equal(&expected)
	if log != nil {
		log.Debugw("ipa verify: done", "ok", ok)
	}
	return ok, nil
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package g1

import (
	"math/big"
	"testing"

	"github.com/mratsim/constantine-go/bn254/fr"
)

func TestScalarMulGLVMatchesVartime(t *testing.T) {
	gen := Generator()
	scalars := []uint64{0, 1, 2, 3, 12345, 0xffffffffffffffff}
	for _, sv := range scalars {
		var s fr.Element
		s.FromUint64(sv)

		var want, got Point
		want.ScalarMulVartime(&gen, &s)
		got.ScalarMulGLVVartime(&gen, &s)

		if !want.Equal(&got) {
			t.Errorf("scalar %d: GLV result disagrees with plain double-and-add", sv)
		}
	}
}

// lambdaDecimal is the cube root of unity mod r such that phi(P) = [lambda]P
// for BN254's GLV endomorphism — the same lambda the half-GCD in glv.go was
// derived from.
const lambdaDecimal = "4407920970296243842393367215006156084916469457145843978461"

func TestEndomorphismIsLambdaMultiplication(t *testing.T) {
	gen := Generator()
	var phiG Point
	phiG.Endomorphism(&gen)
	if !phiG.IsOnCurve() {
		t.Fatal("phi(G) is not on curve")
	}

	lambdaInt, ok := new(big.Int).SetString(lambdaDecimal, 10)
	if !ok {
		t.Fatal("malformed lambda literal")
	}
	var lambdaBytes [32]byte
	lambdaInt.FillBytes(lambdaBytes[:])
	var lambda fr.Element
	if err := lambda.FromBigEndianBytes(lambdaBytes[:]); err != nil {
		t.Fatal(err)
	}

	var lambdaG Point
	lambdaG.ScalarMulVartime(&gen, &lambda)

	if !lambdaG.Equal(&phiG) {
		t.Error("phi(G) != [lambda]G")
	}
}

func TestDecomposeScalarRecombines(t *testing.T) {
	r, _ := new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	lambda, _ := new(big.Int).SetString(lambdaDecimal, 10)

	ks := []string{"0", "1", "123456789", "21888242871839275222246405745257275088548364400416034343698204186575808495616"}
	for _, ks := range ks {
		k, _ := new(big.Int).SetString(ks, 10)
		k1, k2 := decomposeScalar(k)

		recombined := new(big.Int).Mul(k2, lambda)
		recombined.Add(recombined, k1)
		recombined.Mod(recombined, r)

		want := new(big.Int).Mod(k, r)
		if recombined.Cmp(want) != 0 {
			t.Errorf("decomposeScalar(%s): k1+k2*lambda mod r = %s, want %s", ks, recombined, want)
		}
		halfBits := r.BitLen()/2 + 2
		if new(big.Int).Abs(k1).BitLen() > halfBits || new(big.Int).Abs(k2).BitLen() > halfBits {
			t.Errorf("decomposeScalar(%s): half-scalars not short: k1 bits=%d k2 bits=%d", ks, k1.BitLen(), k2.BitLen())
		}
	}
}

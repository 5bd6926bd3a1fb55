// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package banderwagon

import (
	"bytes"
	"testing"

	"github.com/mratsim/constantine-go/bandersnatch/fr"
	"github.com/mratsim/constantine-go/codec"
)

func TestCompressedRoundTripGenerator(t *testing.T) {
	g := Generator()
	enc := EncodeCompressed(&g)
	got, status := DecodeCompressed(enc[:])
	if status != codec.Success {
		t.Fatalf("decode status = %v, want Success", status)
	}
	if !got.Equal(&g) {
		t.Error("DecodeCompressed(EncodeCompressed(G)) != G")
	}
}

func TestCompressedRoundTripIdentity(t *testing.T) {
	var inf Element
	inf.SetInfinity()
	enc := EncodeCompressed(&inf)
	got, status := DecodeCompressed(enc[:])
	if status != codec.Success {
		t.Fatalf("decode status = %v, want Success", status)
	}
	if !got.IsInfinity() {
		t.Error("decoded identity encoding must be the identity")
	}
}

func TestCompressedRoundTripScalarMultiples(t *testing.T) {
	g := Generator()
	for _, k := range []uint64{1, 2, 3, 5, 17, 257, 65537} {
		var s fr.Element
		s.FromUint64(k)
		var p Element
		p.ScalarMulVartime(&g, &s)

		enc := EncodeCompressed(&p)
		got, status := DecodeCompressed(enc[:])
		if status != codec.Success {
			t.Fatalf("k=%d: decode status = %v, want Success", k, status)
		}
		if !got.Equal(&p) {
			t.Errorf("k=%d: round trip mismatch", k)
		}
	}
}

func TestCompressedRejectsBadLength(t *testing.T) {
	g := Generator()
	enc := EncodeCompressed(&g)
	if _, status := DecodeCompressed(enc[:31]); status != codec.InvalidEncoding {
		t.Errorf("status = %v, want InvalidEncoding", status)
	}
	if _, status := DecodeCompressed(append(enc[:], 0)); status != codec.InvalidEncoding {
		t.Errorf("status = %v, want InvalidEncoding", status)
	}
}

func TestCompressedRejectsCoordinateAtOrAboveModulus(t *testing.T) {
	// 2^255 - 19's worth of 0xff bytes comfortably exceeds the ~255-bit
	// Bandersnatch base field modulus; any all-0xff 32-byte string does.
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xff
	}
	if _, status := DecodeCompressed(bad[:]); status != codec.CoordinateGreaterThanOrEqualModulus {
		t.Errorf("status = %v, want CoordinateGreaterThanOrEqualModulus", status)
	}
}

func TestCompressedRejectsOffCurve(t *testing.T) {
	g := Generator()
	enc := EncodeCompressed(&g)
	// Flipping the low byte of x almost certainly leaves no y satisfying
	// the curve equation.
	enc[31] ^= 0x01
	if _, status := DecodeCompressed(enc[:]); status == codec.Success {
		t.Error("expected decode to fail after perturbing x, got Success")
	}
}

// TestSuccessiveDoublingEncodingsAreDistinctAndCanonical exercises the
// scenario named in spec.md's end-to-end scenario 4: starting from the
// generator and successively doubling, each of the first 16 points must
// compress to a distinct 32-byte encoding that round-trips through decode
// back to the same element. The pack carries no external golden fixture
// for this specific generator (see DESIGN.md), so this checks the
// encoding's internal consistency and canonicalization rather than byte
// equality against an external oracle.
func TestSuccessiveDoublingEncodingsAreDistinctAndCanonical(t *testing.T) {
	const n = 16
	p := Generator()
	seen := make(map[[32]byte]bool, n)
	for i := 0; i < n; i++ {
		enc := EncodeCompressed(&p)
		if seen[enc] {
			t.Fatalf("doubling %d: encoding collided with an earlier point", i)
		}
		seen[enc] = true

		got, status := DecodeCompressed(enc[:])
		if status != codec.Success {
			t.Fatalf("doubling %d: decode status = %v, want Success", i, status)
		}
		if !got.Equal(&p) {
			t.Fatalf("doubling %d: round trip mismatch", i)
		}

		// Re-encoding the decoded value must reproduce the same bytes:
		// the canonical-y choice is a function of the coset, not of
		// which representative happened to be in memory.
		reenc := EncodeCompressed(&got)
		if !bytes.Equal(enc[:], reenc[:]) {
			t.Fatalf("doubling %d: re-encoding decoded value changed the bytes", i)
		}

		var next Element
		next.Double(&p)
		p = next
	}
}

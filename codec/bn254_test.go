// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/mratsim/constantine-go/bn254/fr"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/bn254/g2"
)

func TestBN254G1CompressedRoundTrip(t *testing.T) {
	gen := g1.Generator()
	var k fr.Element
	k.FromUint64(777)
	var p g1.Point
	p.ScalarMul(&gen, &k)

	enc := EncodeG1Compressed(&p)
	got, status := DecodeG1Compressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG1Compressed: unexpected status %v", status)
	}
	if !got.Equal(&p) {
		t.Error("BN254 G1 compressed round trip produced a different point")
	}
}

func TestBN254G1CompressedInfinity(t *testing.T) {
	var inf g1.Point
	inf.SetInfinity()
	enc := EncodeG1Compressed(&inf)
	got, status := DecodeG1Compressed(enc[:])
	if status != PointAtInfinity {
		t.Fatalf("expected PointAtInfinity, got %v", status)
	}
	if !got.IsInfinity() {
		t.Error("decoded point should be infinity")
	}
}

func TestBN254G1UncompressedRoundTrip(t *testing.T) {
	gen := g1.Generator()
	enc := EncodeG1Uncompressed(&gen)
	got, status := DecodeG1Uncompressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG1Uncompressed: unexpected status %v", status)
	}
	if !got.Equal(&gen) {
		t.Error("BN254 G1 uncompressed round trip produced a different point")
	}
}

func TestBN254G1CompressedRejectsBadLength(t *testing.T) {
	_, status := DecodeG1Compressed(make([]byte, 31))
	if status != InvalidEncoding {
		t.Errorf("expected InvalidEncoding, got %v", status)
	}
}

func TestBN254G2CompressedRoundTrip(t *testing.T) {
	gen := g2.Generator()
	var k fr.Element
	k.FromUint64(888)
	var q g2.Point
	q.ScalarMul(&gen, &k)

	enc := EncodeG2Compressed(&q)
	got, status := DecodeG2Compressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG2Compressed: unexpected status %v", status)
	}
	if !got.Equal(&q) {
		t.Error("BN254 G2 compressed round trip produced a different point")
	}
}

func TestBN254G2CompressedInfinity(t *testing.T) {
	var inf g2.Point
	inf.SetInfinity()
	enc := EncodeG2Compressed(&inf)
	got, status := DecodeG2Compressed(enc[:])
	if status != PointAtInfinity {
		t.Fatalf("expected PointAtInfinity, got %v", status)
	}
	if !got.IsInfinity() {
		t.Error("decoded point should be infinity")
	}
}

func TestScalarCodecBN254RoundTrip(t *testing.T) {
	var z fr.Element
	z.FromUint64(13579)
	enc := EncodeScalarBN254(&z)
	got, status := DecodeScalarBN254(enc[:])
	if status != Success {
		t.Fatalf("DecodeScalarBN254: unexpected status %v", status)
	}
	if !got.Equal(&z) {
		t.Error("scalar round trip produced a different value")
	}
}

func TestScalarCodecBN254RejectsOutOfRange(t *testing.T) {
	beR := groupOrderBN254
	var leR [32]byte
	for i := range beR {
		leR[i] = beR[31-i]
	}
	_, status := DecodeScalarBN254(leR[:])
	if status != CoordinateGreaterThanOrEqualModulus {
		t.Errorf("expected CoordinateGreaterThanOrEqualModulus for r itself, got %v", status)
	}
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/mratsim/constantine-go/bls12381/fr"
	"github.com/mratsim/constantine-go/bls12381/g1"
	"github.com/mratsim/constantine-go/bls12381/g2"
)

func TestG1CompressedRoundTrip(t *testing.T) {
	gen := g1.Generator()
	var k fr.Element
	k.FromUint64(12345)
	var p g1.Point
	p.ScalarMul(&gen, &k)

	enc := EncodeG1Compressed(&p)
	got, status := DecodeG1Compressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG1Compressed: unexpected status %v", status)
	}
	if !got.Equal(&p) {
		t.Error("G1 compressed round trip produced a different point")
	}
}

func TestG1CompressedInfinity(t *testing.T) {
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

func TestG1UncompressedRoundTrip(t *testing.T) {
	gen := g1.Generator()
	enc := EncodeG1Uncompressed(&gen)
	got, status := DecodeG1Uncompressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG1Uncompressed: unexpected status %v", status)
	}
	if !got.Equal(&gen) {
		t.Error("G1 uncompressed round trip produced a different point")
	}
}

func TestG1CompressedRejectsBadLength(t *testing.T) {
	_, status := DecodeG1Compressed(make([]byte, 47))
	if status != InvalidEncoding {
		t.Errorf("expected InvalidEncoding, got %v", status)
	}
}

func TestG1CompressedRejectsOffCurve(t *testing.T) {
	var b [48]byte
	b[0] = flagCompressed
	b[47] = 0x02 // x = 2, not on curve for a cryptographically negligible chance
	_, status := DecodeG1Compressed(b[:])
	if status == Success {
		t.Error("expected decode failure for an x with no valid y")
	}
}

func TestG2CompressedRoundTrip(t *testing.T) {
	gen := g2.Generator()
	var k fr.Element
	k.FromUint64(54321)
	var q g2.Point
	q.ScalarMul(&gen, &k)

	enc := EncodeG2Compressed(&q)
	got, status := DecodeG2Compressed(enc[:])
	if status != Success {
		t.Fatalf("DecodeG2Compressed: unexpected status %v", status)
	}
	if !got.Equal(&q) {
		t.Error("G2 compressed round trip produced a different point")
	}
}

func TestG2CompressedInfinity(t *testing.T) {
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

func TestScalarCodecBLS12381RoundTrip(t *testing.T) {
	var z fr.Element
	z.FromUint64(424242)
	enc := EncodeScalarBLS12381(&z)
	got, status := DecodeScalarBLS12381(enc[:])
	if status != Success {
		t.Fatalf("DecodeScalarBLS12381: unexpected status %v", status)
	}
	if !got.Equal(&z) {
		t.Error("scalar round trip produced a different value")
	}
}

func TestScalarCodecBLS12381RejectsOutOfRange(t *testing.T) {
	// r, big-endian, little-endian-encoded as the wire format requires.
	beR := groupOrderBLS12381
	var leR [32]byte
	for i := range beR {
		leR[i] = beR[31-i]
	}
	_, status := DecodeScalarBLS12381(leR[:])
	if status != CoordinateGreaterThanOrEqualModulus {
		t.Errorf("expected CoordinateGreaterThanOrEqualModulus for r itself, got %v", status)
	}
}

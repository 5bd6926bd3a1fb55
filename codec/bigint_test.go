// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"testing"
)

func TestParseHexRoundTrip(t *testing.T) {
	cases := []string{
		"0x0000000000000000000000000000000000000000000000000000000000000001",
		"ff_ff_ff_ff",
		"0X1234ABCD",
	}
	for _, c := range cases {
		b, status := ParseHex(c, 32)
		if status != Success {
			t.Fatalf("ParseHex(%q): unexpected status %v", c, status)
		}
		hex := ToHex(b)
		b2, status2 := ParseHex(hex, 32)
		if status2 != Success {
			t.Fatalf("ParseHex(ToHex(...)): unexpected status %v", status2)
		}
		if !bytes.Equal(b, b2) {
			t.Errorf("round trip mismatch for %q", c)
		}
	}
}

func TestParseHexRejectsOddNibbles(t *testing.T) {
	_, status := ParseHex("0xabc", 32)
	if status != InvalidEncoding {
		t.Errorf("expected InvalidEncoding for odd nibble count, got %v", status)
	}
}

func TestParseHexRejectsNonHex(t *testing.T) {
	_, status := ParseHex("0xgg", 32)
	if status != InvalidEncoding {
		t.Errorf("expected InvalidEncoding for non-hex digits, got %v", status)
	}
}

func TestParseHexRejectsOverlong(t *testing.T) {
	overlong := "0x" + string(bytes.Repeat([]byte("ab"), 33)[:66])
	_, status := ParseHex(string(overlong), 32)
	if status != InvalidEncoding {
		t.Errorf("expected InvalidEncoding for overlong value, got %v", status)
	}
}

func TestCheckLessThanModulus(t *testing.T) {
	modulus := []byte{0x01, 0x00} // 256
	small := []byte{0x00, 0x05}
	large := []byte{0x01, 0x00}
	if !CheckLessThanModulus(small, modulus) {
		t.Error("5 < 256 should hold")
	}
	if CheckLessThanModulus(large, modulus) {
		t.Error("256 < 256 should not hold")
	}
}

func TestReverseBytesInvolution(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	r := ReverseBytes(b)
	rr := ReverseBytes(r)
	if !bytes.Equal(b, rr) {
		t.Error("ReverseBytes(ReverseBytes(x)) != x")
	}
}

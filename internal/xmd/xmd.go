// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package xmd implements expand_message_xmd from RFC 9380 ("Hashing to
// Elliptic Curves"), the hash-based uniform byte expansion every curve's
// hash-to-field routine in this module builds on, regardless of which map
// (SSWU, SVDW) or embedding degree that curve ultimately uses.
package xmd

import (
	"crypto/sha256"
	"errors"
	"hash"
)

// ErrTooLong is returned when the requested output length exceeds the
// RFC 9380 bound of 255*b_in_bytes for the underlying hash.
var ErrTooLong = errors.New("xmd: requested length too long for hash function")

// NewSHA256 returns a sha256.New-based hasher constructor, the default H for every
// curve's expand_message_xmd in this module.
func NewSHA256() func() hash.Hash { return sha256.New }

// ExpandMessageXMD implements RFC 9380 section 5.4.1: expand msg (with the
// given domain separation tag dst) into lenInBytes pseudorandom bytes using
// the hash constructed by newHash (sha256.New for every curve wired up
// here).
func ExpandMessageXMD(newHash func() hash.Hash, msg, dst []byte, lenInBytes int) ([]byte, error) {
	h := newHash()
	bInBytes := h.Size()
	rInBytes := h.BlockSize()

	ell := (lenInBytes + bInBytes - 1) / bInBytes
	if ell > 255 || lenInBytes > 65535 || len(dst) > 255 {
		return nil, ErrTooLong
	}

	dstPrime := appendLenByte(dst)

	zPad := make([]byte, rInBytes)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h.Reset()
	h.Write(zPad)
	h.Write(msg)
	h.Write(libStr)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bi := h.Sum(nil)

	out := make([]byte, 0, ell*bInBytes)
	out = append(out, bi...)

	for i := 2; i <= ell; i++ {
		strXor := xorBytes(b0, bi)
		h.Reset()
		h.Write(strXor)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)
		out = append(out, bi...)
	}

	return out[:lenInBytes], nil
}

func appendLenByte(dst []byte) []byte {
	out := make([]byte, len(dst)+1)
	copy(out, dst)
	out[len(dst)] = byte(len(dst))
	return out
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

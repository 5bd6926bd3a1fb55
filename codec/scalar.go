// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	bls12381fr "github.com/mratsim/constantine-go/bls12381/fr"
	bn254fr "github.com/mratsim/constantine-go/bn254/fr"
)

// DecodeScalarBN254 decodes a little-endian 32-byte integer into a BN254
// scalar, rejecting values >= the group order r.
func DecodeScalarBN254(b []byte) (bn254fr.Element, Status) {
	var z bn254fr.Element
	if len(b) != 32 {
		return z, InvalidEncoding
	}
	if err := z.FromBigEndianBytes(ReverseBytes(b)); err != nil {
		return bn254fr.Element{}, CoordinateGreaterThanOrEqualModulus
	}
	return z, Success
}

// EncodeScalarBN254 encodes z as a little-endian 32-byte integer.
func EncodeScalarBN254(z *bn254fr.Element) [32]byte {
	be := z.Bytes()
	var out [32]byte
	copy(out[:], ReverseBytes(be[:]))
	return out
}

// DecodeScalarBLS12381 decodes a little-endian 32-byte integer into a
// BLS12-381 scalar, rejecting values >= the group order r.
func DecodeScalarBLS12381(b []byte) (bls12381fr.Element, Status) {
	var z bls12381fr.Element
	if len(b) != 32 {
		return z, InvalidEncoding
	}
	if err := z.FromBigEndianBytes(ReverseBytes(b)); err != nil {
		return bls12381fr.Element{}, CoordinateGreaterThanOrEqualModulus
	}
	return z, Success
}

// EncodeScalarBLS12381 encodes z as a little-endian 32-byte integer.
func EncodeScalarBLS12381(z *bls12381fr.Element) [32]byte {
	be := z.Bytes()
	var out [32]byte
	copy(out[:], ReverseBytes(be[:]))
	return out
}

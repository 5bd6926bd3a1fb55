// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scalarmul provides curve-agnostic windowed scalar multiplication
// and Pippenger multi-scalar multiplication, sequenced over each curve's
// own hand-written complete addition/doubling formulas. It performs no
// field arithmetic of its own — every curve package (bn254/g1, bn254/g2,
// ...) still owns its group law; this package only owns the control flow
// that windows over a scalar's bits and buckets a batch of (point, scalar)
// pairs, expressed once via a minimal generic constraint instead of being
// duplicated per curve.
package scalarmul

import "errors"

// ErrLengthMismatch is returned by MSM when bases and scalars have
// different lengths.
var ErrLengthMismatch = errors.New("scalarmul: bases and scalars must have equal length")

// PointOps is the minimal group-element surface Pippenger MSM and windowed
// scalar multiplication need: identity, doubling, and addition, expressed
// on pointer receivers of the concrete curve point type T. Every curve
// package here (bn254/g1.Point, bn254/g2.Point, ...) already implements
// this shape off its own Renes-Costello-Batina complete formulas.
type PointOps[T any] interface {
	*T
	SetInfinity() *T
	Add(p1, p2 *T) *T
	Double(x *T) *T
}

// Scalar is the bit-access surface this package needs from a scalar-field
// element (bn254/fr.Element and its per-curve equivalents).
type Scalar interface {
	BitLen() int
	Bit(i int) uint
}

// WindowedScalarMul computes [s]x via plain (variable-time) left-to-right
// double-and-add over s's bits. Use a curve's own constant-time ScalarMul
// for secret scalars; this is for MSM's per-base accumulation and other
// public-scalar paths.
func WindowedScalarMul[T any, PT PointOps[T]](x *T, s Scalar) T {
	var acc T
	PT(&acc).SetInfinity()
	base := *x
	n := s.BitLen()
	for i := 0; i < n; i++ {
		if s.Bit(i) == 1 {
			PT(&acc).Add(&acc, &base)
		}
		PT(&base).Double(&base)
	}
	return acc
}

// MSM computes sum_i [scalars[i]]bases[i] using Pippenger's bucket method
// with a fixed window width c (bits per window). len(bases) must equal
// len(scalars); c must be >= 1. The top window's bit width need not divide
// evenly into c — bucket assignment (windowDigit) simply reads zero for any
// bit position at or beyond a scalar's BitLen, so no separate "last window"
// case is needed regardless of how orderBits relates to c.
func MSM[T any, PT PointOps[T]](bases []T, scalars []Scalar, c int) (T, error) {
	var zero T
	if len(bases) != len(scalars) {
		return zero, ErrLengthMismatch
	}
	if len(bases) == 0 {
		PT(&zero).SetInfinity()
		return zero, nil
	}

	maxBits := 0
	for _, s := range scalars {
		if b := s.BitLen(); b > maxBits {
			maxBits = b
		}
	}
	if maxBits == 0 {
		PT(&zero).SetInfinity()
		return zero, nil
	}
	numWindows := (maxBits + c - 1) / c
	numBuckets := 1 << uint(c)

	var result T
	PT(&result).SetInfinity()

	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < c; i++ {
			PT(&result).Double(&result)
		}

		buckets := make([]T, numBuckets)
		for i := range buckets {
			PT(&buckets[i]).SetInfinity()
		}

		for i, s := range scalars {
			digit := windowDigit(s, w, c)
			if digit == 0 {
				continue
			}
			PT(&buckets[digit]).Add(&buckets[digit], &bases[i])
		}

		var windowSum, running T
		PT(&windowSum).SetInfinity()
		PT(&running).SetInfinity()
		for b := numBuckets - 1; b >= 1; b-- {
			PT(&running).Add(&running, &buckets[b])
			PT(&windowSum).Add(&windowSum, &running)
		}
		PT(&result).Add(&result, &windowSum)
	}

	return result, nil
}

// windowDigit extracts the c-bit digit of s at window index w (bits
// [w*c, w*c+c)), reading zero for any bit position at or beyond s.BitLen().
func windowDigit(s Scalar, w, c int) int {
	digit := 0
	base := w * c
	n := s.BitLen()
	for j := 0; j < c; j++ {
		bitPos := base + j
		if bitPos >= n {
			break
		}
		if s.Bit(bitPos) == 1 {
			digit |= 1 << uint(j)
		}
	}
	return digit
}

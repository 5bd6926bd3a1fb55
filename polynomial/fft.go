// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polynomial

import "errors"

// ErrSizeNotPowerOfTwo is returned when the transform length is not a
// power of two.
var ErrSizeNotPowerOfTwo = errors.New("polynomial: transform size must be a power of two")

// ErrGeneratorWrongOrder is returned when the supplied generator does not
// have order exactly equal to the transform size (generator^size != 1, or
// generator^(size/2) == 1).
var ErrGeneratorWrongOrder = errors.New("polynomial: generator does not have the required order")

// FOps is the scalar-field surface the FFT additionally needs beyond
// FieldOps: modular exponentiation by a public exponent, to validate the
// supplied root of unity's order.
type FOps[T any] interface {
	FieldOps[T]
	Pow(x *T, e []uint64) *T
}

// Forward computes the forward FFT of coeffs (ascending-degree
// coefficients, length a power of two n) over the domain
// {g^0, g^1, ..., g^(n-1)} for a generator g of a subgroup of order n:
// out[k] = sum_i coeffs[i] * g^(i*k).
func Forward[T any, PT FOps[T]](coeffs []T, generator T) ([]T, error) {
	n := len(coeffs)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrSizeNotPowerOfTwo
	}
	if err := checkOrder[T, PT](generator, n); err != nil {
		return nil, err
	}
	return fft[T, PT](coeffs, generator), nil
}

// Inverse computes the inverse FFT: given evaluations over
// {g^0, ..., g^(n-1)}, recovers the ascending-degree coefficients.
// Uses the standard identity inverse_fft(evals, g) = (1/n) * fft(evals, g^-1).
func Inverse[T any, PT FOps[T]](evals []T, generator T) ([]T, error) {
	n := len(evals)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrSizeNotPowerOfTwo
	}
	if err := checkOrder[T, PT](generator, n); err != nil {
		return nil, err
	}
	var genInv T
	PT(&genInv).Inv(&generator)

	result := fft[T, PT](evals, genInv)

	var nElem, nInv T
	PT(&nElem).SetZero()
	for i := 0; i < n; i++ {
		PT(&nElem).Add(&nElem, pt1[T, PT]())
	}
	PT(&nInv).Inv(&nElem)
	for i := range result {
		PT(&result[i]).Mul(&result[i], &nInv)
	}
	return result, nil
}

// pt1 returns the multiplicative identity of T as a value.
func pt1[T any, PT FOps[T]]() *T {
	var one T
	PT(&one).SetOne()
	return &one
}

// checkOrder verifies generator^n == 1 and generator^(n/2) != 1 (n a power
// of two, n > 1); order exactly n is the property the radix-2 recursion
// relies on. n == 1 trivially holds for any generator.
func checkOrder[T any, PT FOps[T]](generator T, n int) error {
	if n == 1 {
		return nil
	}
	var full T
	PT(&full).Pow(&generator, []uint64{uint64(n)})
	var one T
	PT(&one).SetOne()
	if !PT(&full).Equal(&one) {
		return ErrGeneratorWrongOrder
	}
	var half T
	PT(&half).Pow(&generator, []uint64{uint64(n / 2)})
	if PT(&half).Equal(&one) {
		return ErrGeneratorWrongOrder
	}
	return nil
}

// fft performs the recursive radix-2 Cooley-Tukey transform. values has a
// power-of-two length; generator has order exactly len(values) (verified
// by the caller-facing Forward/Inverse).
func fft[T any, PT FOps[T]](values []T, generator T) []T {
	n := len(values)
	if n == 1 {
		out := make([]T, 1)
		out[0] = values[0]
		return out
	}

	even := make([]T, n/2)
	odd := make([]T, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = values[2*i]
		odd[i] = values[2*i+1]
	}

	var genSq T
	PT(&genSq).Mul(&generator, &generator)

	evenFFT := fft[T, PT](even, genSq)
	oddFFT := fft[T, PT](odd, genSq)

	out := make([]T, n)
	var w T
	PT(&w).SetOne()
	for k := 0; k < n/2; k++ {
		var t T
		PT(&t).Mul(&w, &oddFFT[k])

		PT(&out[k]).Add(&evenFFT[k], &t)
		PT(&out[k+n/2]).Sub(&evenFFT[k], &t)

		PT(&w).Mul(&w, &generator)
	}
	return out
}

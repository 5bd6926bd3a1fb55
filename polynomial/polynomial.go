// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package polynomial provides curve-agnostic coefficient-form polynomial
// evaluation, the vanishing polynomial, barycentric/Lagrange evaluation
// over a fixed domain, and a radix-2 FFT, expressed once via a minimal
// generic field constraint (the same pattern package scalarmul uses for
// curve points) instead of being duplicated per scalar field.
package polynomial

// FieldOps is the arithmetic surface this package needs from a scalar-field
// element (bn254/fr.Element, bls12381/fr.Element, bandersnatch/fr.Element,
// ...). Every field package here already implements this shape.
type FieldOps[T any] interface {
	*T
	SetZero() *T
	SetOne() *T
	Add(x, y *T) *T
	Sub(x, y *T) *T
	Mul(x, y *T) *T
	Neg(x *T) *T
	Inv(x *T) *T
	IsZero() bool
	Equal(x *T) bool
}

// Eval computes p(z) = sum_i coeffs[i]*z^i via Horner's method, coeffs in
// ascending degree order. Returns the additive identity for an empty
// polynomial.
func Eval[T any, PT FieldOps[T]](coeffs []T, z *T) T {
	var acc T
	PT(&acc).SetZero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		PT(&acc).Mul(&acc, z)
		PT(&acc).Add(&acc, &coeffs[i])
	}
	return acc
}

// EvalWithDerivative computes p(z) and its formal derivative p'(z) in one
// pass, via the standard joint Horner recurrence:
// b_n = a_n, b_n' = 0; b_i = a_i + z*b_{i+1}, b_i' = b_{i+1} + z*b_{i+1}'.
func EvalWithDerivative[T any, PT FieldOps[T]](coeffs []T, z *T) (T, T) {
	var p, dp T
	PT(&p).SetZero()
	PT(&dp).SetZero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		var zdp T
		PT(&zdp).Mul(z, &dp)
		PT(&dp).Add(&p, &zdp)

		PT(&p).Mul(&p, z)
		PT(&p).Add(&p, &coeffs[i])
	}
	return p, dp
}

// Vanishing evaluates the vanishing polynomial Z(x) = prod_i (x - roots[i])
// at x. Z(r) = 0 for every r in roots, by construction.
func Vanishing[T any, PT FieldOps[T]](roots []T, x *T) T {
	var acc T
	PT(&acc).SetOne()
	for i := range roots {
		var diff T
		PT(&diff).Sub(x, &roots[i])
		PT(&acc).Mul(&acc, &diff)
	}
	return acc
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polynomial

import "errors"

// ErrPointOnDomain is returned by EvalOutsideDomain when z coincides with
// one of the domain's own points; callers should read the value directly
// out of the values slice instead (the barycentric formula divides by
// z - points[i], which is zero in that case).
var ErrPointOnDomain = errors.New("polynomial: evaluation point lies on the domain")

// BarycentricWeights precomputes w_i = 1 / prod_{j != i} (points[i] - points[j])
// for a polynomial given in values-at-domain form over the given nodes.
func BarycentricWeights[T any, PT FieldOps[T]](points []T) []T {
	n := len(points)
	weights := make([]T, n)
	for i := 0; i < n; i++ {
		var denom T
		PT(&denom).SetOne()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var diff T
			PT(&diff).Sub(&points[i], &points[j])
			PT(&denom).Mul(&denom, &diff)
		}
		PT(&weights[i]).Inv(&denom)
	}
	return weights
}

// EvalOutsideDomain evaluates, via the (first form) barycentric formula,
// the polynomial that takes values[i] at points[i], at a point z not in
// points:
//
//	p(z) = Z(z) * sum_i ( w_i * values[i] / (z - points[i]) )
//
// where Z is the vanishing polynomial of points and w_i are the
// precomputed barycentric weights.
func EvalOutsideDomain[T any, PT FieldOps[T]](points, weights, values []T, z *T) (T, error) {
	n := len(points)
	var sum T
	PT(&sum).SetZero()
	for i := 0; i < n; i++ {
		var diff T
		PT(&diff).Sub(z, &points[i])
		if PT(&diff).IsZero() {
			var zero T
			return zero, ErrPointOnDomain
		}
		var diffInv, term T
		PT(&diffInv).Inv(&diff)
		PT(&term).Mul(&weights[i], &values[i])
		PT(&term).Mul(&term, &diffInv)
		PT(&sum).Add(&sum, &term)
	}

	vanishing := Vanishing[T, PT](points, z)
	var result T
	PT(&result).Mul(&sum, &vanishing)
	return result, nil
}

// DivideOnDomain computes the values-at-domain-points representation of
// q(x) = (p(x) - p(points[i])) / (x - points[i]), given p in
// values-at-domain form, without an explicit polynomial division. At
// points[j] for j != i, q(points[j]) = (values[j]-values[i]) / (points[j]-points[i]).
// At points[i] itself, the formula is indeterminate (0/0); q(points[i]) is
// instead obtained from the weighted sum of the other evaluations, the
// standard barycentric "diagonal" entry:
//
//	q(points[i]) = -sum_{j != i} (w_j/w_i) * q(points[j])
func DivideOnDomain[T any, PT FieldOps[T]](points, weights, values []T, i int) []T {
	n := len(points)
	out := make([]T, n)
	var wiInv T
	PT(&wiInv).Inv(&weights[i])

	var diag T
	PT(&diag).SetZero()
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		var numerator, denom T
		PT(&numerator).Sub(&values[j], &values[i])
		PT(&denom).Sub(&points[j], &points[i])
		var denomInv T
		PT(&denomInv).Inv(&denom)
		PT(&out[j]).Mul(&numerator, &denomInv)

		var ratio, term T
		PT(&ratio).Mul(&weights[j], &wiInv)
		PT(&term).Mul(&ratio, &out[j])
		PT(&diag).Add(&diag, &term)
	}
	PT(&out[i]).Neg(&diag)
	return out
}

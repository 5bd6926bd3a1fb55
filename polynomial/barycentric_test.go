// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mratsim/constantine-go/bls12381/fr"
)

// buildDomain evaluates p at domain points 0..n-1 in values form.
func buildDomain(coeffs []fr.Element, n int) (points, values []fr.Element) {
	points = make([]fr.Element, n)
	values = make([]fr.Element, n)
	for i := 0; i < n; i++ {
		points[i] = felt(uint64(i))
		v := Eval[fr.Element, *fr.Element](coeffs, &points[i])
		values[i] = v
	}
	return points, values
}

func TestEvalOutsideDomainMatchesCoefficientEval(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2 + 4x^3 over domain {0,1,2,3}.
	coeffs := []fr.Element{felt(1), felt(2), felt(3), felt(4)}
	points, values := buildDomain(coeffs, 4)
	weights := BarycentricWeights[fr.Element, *fr.Element](points)

	z := felt(10)
	want := Eval[fr.Element, *fr.Element](coeffs, &z)

	got, err := EvalOutsideDomain[fr.Element, *fr.Element](points, weights, values, &z)
	require.NoError(t, err)
	require.True(t, got.Equal(&want), "barycentric evaluation disagrees with direct evaluation")
}

func TestEvalOutsideDomainRejectsPointOnDomain(t *testing.T) {
	coeffs := []fr.Element{felt(1), felt(2), felt(3)}
	points, values := buildDomain(coeffs, 3)
	weights := BarycentricWeights[fr.Element, *fr.Element](points)

	z := points[1]
	_, err := EvalOutsideDomain[fr.Element, *fr.Element](points, weights, values, &z)
	require.ErrorIs(t, err, ErrPointOnDomain)
}

// TestDivideOnDomainMatchesExplicitDivision checks q = (p - p(r_i)) / (x - r_i)
// against direct coefficient-form polynomial division by (x - r_i).
func TestDivideOnDomainMatchesExplicitDivision(t *testing.T) {
	// p(x) = 2 + 3x + 5x^2, evaluated on domain {0,1,2,3}.
	p := []fr.Element{felt(2), felt(3), felt(5)}
	points, values := buildDomain(p, 4)
	weights := BarycentricWeights[fr.Element, *fr.Element](points)

	for i := range points {
		q := DivideOnDomain[fr.Element, *fr.Element](points, weights, values, i)

		// Check q(points[j]) * (points[j] - points[i]) == values[j] - values[i]
		// for every j != i — the defining relation, independent of how q
		// was produced.
		for j := range points {
			if j == i {
				continue
			}
			var lhs, diff fr.Element
			diff.Sub(&points[j], &points[i])
			lhs.Mul(&q[j], &diff)

			var rhs fr.Element
			rhs.Sub(&values[j], &values[i])
			require.True(t, lhs.Equal(&rhs), "i=%d j=%d: q(r_j)*(r_j-r_i) != p(r_j)-p(r_i)", i, j)
		}
	}
}

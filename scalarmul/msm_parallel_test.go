// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scalarmul

import (
	"context"
	"testing"

	"github.com/mratsim/constantine-go/bn254/fr"
	"github.com/mratsim/constantine-go/bn254/g1"
	"github.com/mratsim/constantine-go/internal/workerpool"
)

func TestMSMParallelMatchesSequentialMSM(t *testing.T) {
	const n = 200
	state := uint64(99)
	gen := g1.Generator()

	bases := make([]g1.Point, n)
	scalars := make([]Scalar, n)
	scalarVals := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		s := randFr(&state)
		scalarVals[i] = s
		scalars[i] = &scalarVals[i]
		bases[i].ScalarMulVartime(&gen, &s)
	}

	want, err := MSM[g1.Point, *g1.Point](bases, scalars, 5)
	if err != nil {
		t.Fatal(err)
	}

	pool := workerpool.Limit(context.Background(), 4)
	got, err := MSMParallel[g1.Point, *g1.Point](bases, scalars, 5, 4, pool)
	if err != nil {
		t.Fatal(err)
	}

	if !want.Equal(&got) {
		t.Error("MSMParallel disagrees with sequential MSM over identical input")
	}
}

func TestMSMParallelSingleShardMatchesWholeVectorMSM(t *testing.T) {
	const n = 17 // deliberately not a multiple of any small shard count
	state := uint64(123)
	gen := g1.Generator()

	bases := make([]g1.Point, n)
	scalars := make([]Scalar, n)
	scalarVals := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		s := randFr(&state)
		scalarVals[i] = s
		scalars[i] = &scalarVals[i]
		bases[i].ScalarMulVartime(&gen, &s)
	}

	want, err := MSM[g1.Point, *g1.Point](bases, scalars, 4)
	if err != nil {
		t.Fatal(err)
	}

	pool := workerpool.New(context.Background())
	got, err := MSMParallel[g1.Point, *g1.Point](bases, scalars, 4, 5, pool)
	if err != nil {
		t.Fatal(err)
	}

	if !want.Equal(&got) {
		t.Error("sharded MSMParallel disagrees with sequential MSM on a non-evenly-divisible input")
	}
}

func TestMSMParallelEmpty(t *testing.T) {
	pool := workerpool.Limit(context.Background(), 2)
	got, err := MSMParallel[g1.Point, *g1.Point](nil, nil, 4, 2, pool)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsInfinity() {
		t.Error("MSMParallel of no terms should be the identity")
	}
}

func TestMSMParallelLengthMismatch(t *testing.T) {
	bases := make([]g1.Point, 2)
	scalars := make([]Scalar, 1)
	pool := workerpool.Limit(context.Background(), 2)
	if _, err := MSMParallel[g1.Point, *g1.Point](bases, scalars, 4, 2, pool); err != ErrLengthMismatch {
		t.Errorf("got err=%v, want ErrLengthMismatch", err)
	}
}

// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scalarmul

import (
	"context"

	"github.com/mratsim/constantine-go/internal/workerpool"
)

// MSMParallel computes the same result as MSM, but splits bases/scalars
// into shards of contiguous work and evaluates each shard's Pippenger pass
// concurrently through pool. Per §5's ordering guarantee ("bit-identical
// serial/parallel results... an associative, deterministic reduction
// tree, not fetch_add on a shared accumulator"), partial sums are combined
// in shard order after every shard has finished, never accumulated as
// shards complete.
func MSMParallel[T any, PT PointOps[T]](bases []T, scalars []Scalar, c int, shards int, pool *workerpool.Pool) (T, error) {
	var zero T
	if len(bases) != len(scalars) {
		return zero, ErrLengthMismatch
	}
	if len(bases) == 0 {
		PT(&zero).SetInfinity()
		return zero, nil
	}
	if shards < 1 {
		shards = 1
	}
	n := len(bases)
	if shards > n {
		shards = n
	}

	partials := make([]T, shards)
	chunk := (n + shards - 1) / shards

	for s := 0; s < shards; s++ {
		s := s
		lo := s * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			PT(&partials[s]).SetInfinity()
			continue
		}
		pool.Go(func() error {
			part, err := MSM[T, PT](bases[lo:hi], scalars[lo:hi], c)
			if err != nil {
				return err
			}
			partials[s] = part
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return zero, err
	}

	var result T
	PT(&result).SetInfinity()
	for i := range partials {
		PT(&result).Add(&result, &partials[i])
	}
	return result, nil
}

// DefaultPool is a convenience constructor for callers that just want a
// bounded worker pool without threading a context through; it derives one
// from context.Background().
func DefaultPool(limit int) *workerpool.Pool {
	return workerpool.Limit(context.Background(), limit)
}

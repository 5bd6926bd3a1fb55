// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package workerpool is the caller-supplied concurrency primitive named in
// §5: "parallelism is opt-in at the multi-scalar multiplication, batch
// verification... layers via an explicit worker pool passed by the
// caller; the pool's contract is submit a closure on owned data, await
// completion." It is a thin wrapper over golang.org/x/sync/errgroup, which
// already supplies exactly that shape and is part of this module's
// declared stack.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool runs work submitted via Go, at most n tasks at a time for a pool
// built by Limit(ctx, n) (unbounded for one built by New), and collects the
// first error from any of them.
type Pool struct {
	g   *errgroup.Group
	ctx context.Context
}

// New creates a Pool with no concurrency bound (errgroup's default:
// unbounded, limited only by what the caller submits).
func New(ctx context.Context) *Pool {
	g, ctx := errgroup.WithContext(ctx)
	return &Pool{g: g, ctx: ctx}
}

// Limit creates a Pool that runs at most n submitted tasks concurrently.
func Limit(ctx context.Context, n int) *Pool {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	return &Pool{g: g, ctx: ctx}
}

// Go submits a closure on data the caller owns exclusively for the
// closure's duration. fn may observe p.Context() cancelled if a sibling
// task already failed.
func (p *Pool) Go(fn func() error) {
	p.g.Go(fn)
}

// Wait blocks until every submitted task has returned, and reports the
// first non-nil error among them (if any).
func (p *Pool) Wait() error {
	return p.g.Wait()
}

// Context returns the pool's derived context, cancelled once any submitted
// task returns a non-nil error — tasks doing their own blocking I/O should
// select on it to stop early.
func (p *Pool) Context() context.Context {
	return p.ctx
}

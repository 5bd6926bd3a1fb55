// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllSubmittedTasks(t *testing.T) {
	const n = 50
	var counter int64
	pool := Limit(context.Background(), 4)
	for i := 0; i < n; i++ {
		pool.Go(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		t.Fatalf("Wait() = %v, want nil", err)
	}
	if counter != n {
		t.Errorf("counter = %d, want %d", counter, n)
	}
}

func TestPoolPropagatesFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	pool := Limit(context.Background(), 2)
	pool.Go(func() error { return wantErr })
	pool.Go(func() error { return nil })

	if err := pool.Wait(); err == nil {
		t.Fatal("Wait() = nil, want an error")
	}
}

func TestPoolContextCancelledAfterError(t *testing.T) {
	wantErr := errors.New("boom")
	pool := Limit(context.Background(), 1)
	pool.Go(func() error { return wantErr })
	_ = pool.Wait()

	select {
	case <-pool.Context().Done():
	default:
		t.Error("pool context should be cancelled after a task error")
	}
}

func TestNewPoolUnbounded(t *testing.T) {
	pool := New(context.Background())
	var counter int64
	for i := 0; i < 10; i++ {
		pool.Go(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		})
	}
	if err := pool.Wait(); err != nil {
		t.Fatal(err)
	}
	if counter != 10 {
		t.Errorf("counter = %d, want 10", counter)
	}
}

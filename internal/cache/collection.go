// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides a small time-based cache for file-backed
// collections. A Collection holds one snapshot of a slice, considers it
// fresh for a fixed TTL, and is explicitly invalidated after every write to
// the backing file so readers never observe state older than the last
// in-process mutation.
package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collection is a thread-safe single-value cache for a slice of T.
type Collection[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	clone     func(T) T
	items     []T
	fetchedAt time.Time
	valid     bool

	// Statistics
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCollection creates a collection cache with the given freshness window.
// A non-nil clone is applied to each element when a snapshot is handed out,
// keeping values with reference fields (slices, maps) isolated from the
// cached copy. Pass nil for plain value types.
func NewCollection[T any](ttl time.Duration, clone func(T) T) *Collection[T] {
	return &Collection[T]{ttl: ttl, clone: clone}
}

// GetOrLoad returns the cached snapshot when it is younger than the TTL,
// otherwise calls load, caches its result, and returns it. The returned
// slice is always a fresh copy; callers may mutate it freely.
func (c *Collection[T]) GetOrLoad(load func() ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && time.Since(c.fetchedAt) < c.ttl {
		c.hits.Add(1)
		return c.snapshot(c.items), nil
	}

	c.misses.Add(1)
	items, err := load()
	if err != nil {
		return nil, err
	}

	c.items = items
	c.fetchedAt = time.Now()
	c.valid = true
	return c.snapshot(items), nil
}

// Invalidate drops the cached snapshot. The next GetOrLoad reloads.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.valid = false
}

// Stats returns hit/miss counters.
func (c *Collection[T]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *Collection[T]) snapshot(items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if c.clone != nil {
		for i := range out {
			out[i] = c.clone(out[i])
		}
	}
	return out
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import "sync"

// Allocator holds caller-supplied allocation hooks for context objects.
// Alloc and Free must be supplied together (both nil selects the package's
// default heap allocator); supplying exactly one is an error. Alloc is called
// once when a context is created and Free once when it is closed, with the
// value Alloc returned. That value is not used as the context's storage: the
// hash table, and every buffer the codec uses, is allocated by the Go runtime.
type Allocator struct {
	Alloc  func(opaque any, size int) any
	Free   func(opaque any, ptr any)
	Opaque any
}

// validateAllocator enforces the "both or neither" contract.
func validateAllocator(a *Allocator) error {
	if a == nil {
		return nil
	}
	if (a.Alloc == nil) != (a.Free == nil) {
		return ErrInvalidParams
	}
	return nil
}

// CompressContext owns a reusable hash table so repeated CompressBlock calls
// avoid allocating one per block. A context is NOT safe for concurrent use
// from multiple goroutines; distinct contexts are fully independent.
type CompressContext struct {
	finder    *matchFinder
	alloc     *Allocator
	allocated any
}

// NewCompressContext creates a context using alloc (nil selects the default
// heap allocator). The allocator is consulted exactly once here.
func NewCompressContext(alloc *Allocator) (*CompressContext, error) {
	if err := validateAllocator(alloc); err != nil {
		return nil, err
	}

	ctx := &CompressContext{alloc: alloc, finder: &matchFinder{}}
	if alloc != nil && alloc.Alloc != nil {
		ctx.allocated = alloc.Alloc(alloc.Opaque, hashTableSize*4)
	}
	return ctx, nil
}

// Close releases any resources acquired from the injected allocator. The
// allocator is consulted exactly once here, mirroring NewCompressContext.
func (c *CompressContext) Close() error {
	if c == nil {
		return ErrInvalidContext
	}
	if c.alloc != nil && c.alloc.Free != nil {
		c.alloc.Free(c.alloc.Opaque, c.allocated)
		c.allocated = nil
	}
	return nil
}

// DecompressContext is stateless beyond its injected allocator; it exists
// for API symmetry with CompressContext and so callers have one consistent
// lifecycle pattern across both directions.
type DecompressContext struct {
	alloc     *Allocator
	allocated any
}

// NewDecompressContext creates a context using alloc (nil selects the
// default heap allocator).
func NewDecompressContext(alloc *Allocator) (*DecompressContext, error) {
	if err := validateAllocator(alloc); err != nil {
		return nil, err
	}

	ctx := &DecompressContext{alloc: alloc}
	if alloc != nil && alloc.Alloc != nil {
		ctx.allocated = alloc.Alloc(alloc.Opaque, 0)
	}
	return ctx, nil
}

// Close releases any resources acquired from the injected allocator.
func (c *DecompressContext) Close() error {
	if c == nil {
		return ErrInvalidContext
	}
	if c.alloc != nil && c.alloc.Free != nil {
		c.alloc.Free(c.alloc.Opaque, c.allocated)
		c.allocated = nil
	}
	return nil
}

// matchFinderPool pools the hash tables used by the package-level pooled
// Compress convenience function, so one-shot callers don't pay a 64KB
// allocation per call.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder gets a hash table from the pool. The table may still
// hold entries from an earlier call; compressBlockCore clears it before use.
func acquireMatchFinder() *matchFinder {
	m := matchFinderPool.Get().(*matchFinder)
	return m
}

// releaseMatchFinder returns a hash table to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}
	matchFinderPool.Put(m)
}

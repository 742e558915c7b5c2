// Copyright 2026 The densim authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package staterep

import (
	"io"

	"github.com/densim-go/densim/internal/staterep"
)

// Type aliases for the public API

// StateRep is a dense density-matrix state: a flat vector of real
// coefficients of fixed dimension, either owning its buffer or viewing
// memory owned elsewhere.
type StateRep = staterep.StateRep

// Allocator supplies and reclaims the buffers behind owned states.
type Allocator = staterep.Allocator

// HeapAllocator is the default Allocator; it allocates from the Go heap
// and lets the garbage collector reclaim.
type HeapAllocator = staterep.HeapAllocator

// TrackingAllocator wraps another Allocator and counts alloc/free calls,
// for tests and lifecycle audits.
type TrackingAllocator = staterep.TrackingAllocator

// Batch is one owned contiguous arena holding many equal-dimension states,
// exposed as views.
type Batch = staterep.Batch

// Errors returned by construction and copying.
var (
	ErrNegativeDim   = staterep.ErrNegativeDim
	ErrNegativeCount = staterep.ErrNegativeCount
	ErrShortBuffer   = staterep.ErrShortBuffer
	ErrDimMismatch   = staterep.ErrDimMismatch
	ErrReleased      = staterep.ErrReleased
)

// Construction functions

// New allocates an owned, zero-initialized state of the given dimension.
func New(dim int) (*StateRep, error) {
	return staterep.New(dim)
}

// NewWithAllocator is New with an explicit allocator.
func NewWithAllocator(dim int, a Allocator) (*StateRep, error) {
	return staterep.NewWithAllocator(dim, a)
}

// FromData builds a state from the first dim elements of data: an
// independent owned copy when dup is true, a view of data[:dim] when dup
// is false.
func FromData(data []float64, dim int, dup bool) (*StateRep, error) {
	return staterep.FromData(data, dim, dup)
}

// FromDataWithAllocator is FromData with an explicit allocator for the
// dup=true path.
func FromDataWithAllocator(data []float64, dim int, dup bool, a Allocator) (*StateRep, error) {
	return staterep.FromDataWithAllocator(data, dim, dup, a)
}

// NewBatch allocates one arena for n states of the given dimension and
// returns it with per-state views.
func NewBatch(n, dim int) (*Batch, error) {
	return staterep.NewBatch(n, dim)
}

// NewBatchWithAllocator is NewBatch with an explicit allocator.
func NewBatchWithAllocator(n, dim int, a Allocator) (*Batch, error) {
	return staterep.NewBatchWithAllocator(n, dim, a)
}

// NewTrackingAllocator wraps inner (or the default allocator when inner
// is nil) with alloc/free counting.
func NewTrackingAllocator(inner Allocator) *TrackingAllocator {
	return staterep.NewTrackingAllocator(inner)
}

// SetLogOutput redirects the diagnostic output written by Dump.
func SetLogOutput(w io.Writer) {
	staterep.SetLogOutput(w)
}

package staterep

import "sync/atomic"

// Allocator supplies the buffers behind owned states. The heap allocator
// is all most callers need; TrackingAllocator exists so tests and
// embedding simulators can audit buffer lifecycles.
//
// Alloc must return a zeroed buffer of exactly n elements. An allocation
// that cannot be satisfied is fatal (the Go runtime aborts), matching the
// rest of the simulation core: there is no meaningful recovery from
// running out of state memory mid-computation.
type Allocator interface {
	Alloc(n int) []float64
	Free(buf []float64)
}

// HeapAllocator allocates from the Go heap and leaves reclamation to the
// garbage collector, so Free is a no-op.
type HeapAllocator struct{}

// Alloc returns a zeroed buffer of n float64s.
func (HeapAllocator) Alloc(n int) []float64 {
	return make([]float64, n)
}

// Free does nothing; the garbage collector reclaims heap buffers.
func (HeapAllocator) Free([]float64) {}

// DefaultAllocator backs New, FromData copies and NewBatch.
var DefaultAllocator Allocator = HeapAllocator{}

// TrackingAllocator wraps another Allocator and counts Alloc and Free
// calls. Counters are atomic so parallel tests can share one instance.
type TrackingAllocator struct {
	inner  Allocator
	allocs atomic.Int64
	frees  atomic.Int64
}

// NewTrackingAllocator wraps inner, or the default allocator when inner
// is nil.
func NewTrackingAllocator(inner Allocator) *TrackingAllocator {
	if inner == nil {
		inner = DefaultAllocator
	}
	return &TrackingAllocator{inner: inner}
}

// Alloc counts the call and delegates to the wrapped allocator.
func (t *TrackingAllocator) Alloc(n int) []float64 {
	t.allocs.Add(1)
	return t.inner.Alloc(n)
}

// Free counts the call and delegates to the wrapped allocator.
func (t *TrackingAllocator) Free(buf []float64) {
	t.frees.Add(1)
	t.inner.Free(buf)
}

// Allocs returns the number of Alloc calls seen so far.
func (t *TrackingAllocator) Allocs() int64 {
	return t.allocs.Load()
}

// Frees returns the number of Free calls seen so far.
func (t *TrackingAllocator) Frees() int64 {
	return t.frees.Load()
}

// Live returns the number of buffers allocated but not yet freed.
func (t *TrackingAllocator) Live() int64 {
	return t.allocs.Load() - t.frees.Load()
}

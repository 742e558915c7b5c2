package staterep

import "fmt"

// Batch owns one contiguous arena holding n states of equal dimension and
// hands out view StateReps into it. State i occupies the arena slice
// [i*dim, (i+1)*dim). This is the usual source of viewing states: a
// forward simulator allocates one arena per evaluation and walks it state
// by state instead of paying n separate allocations.
//
// Releasing the batch invalidates every view it handed out; their
// accessors panic afterwards. Batch does no locking.
type Batch struct {
	buf    []float64
	dim    int
	states []*StateRep
	alloc  Allocator
	freed  bool
}

// NewBatch allocates an arena for n states of the given dimension using
// the default allocator. The arena, like any owned buffer, starts zeroed.
func NewBatch(n, dim int) (*Batch, error) {
	return NewBatchWithAllocator(n, dim, DefaultAllocator)
}

// NewBatchWithAllocator is NewBatch with an explicit allocator.
func NewBatchWithAllocator(n, dim int, a Allocator) (*Batch, error) {
	if n < 0 {
		return nil, fmt.Errorf("staterep: batch of %d states: %w", n, ErrNegativeCount)
	}
	if dim < 0 {
		return nil, fmt.Errorf("staterep: dim %d: %w", dim, ErrNegativeDim)
	}
	b := &Batch{
		buf:    a.Alloc(n * dim),
		dim:    dim,
		states: make([]*StateRep, n),
		alloc:  a,
	}
	for i := range b.states {
		st, err := FromData(b.buf[i*dim:(i+1)*dim], dim, false)
		if err != nil {
			panic(err) // arena slicing guarantees length == dim
		}
		b.states[i] = st
	}
	return b, nil
}

// Len returns the number of states in the batch.
func (b *Batch) Len() int {
	return len(b.states)
}

// Dim returns the dimension shared by every state in the batch.
func (b *Batch) Dim() int {
	return b.dim
}

// State returns the i-th view into the arena.
// Panics if i is out of bounds.
func (b *Batch) State(i int) *StateRep {
	if i < 0 || i >= len(b.states) {
		panic(fmt.Sprintf("state index %d out of bounds for batch of %d", i, len(b.states)))
	}
	return b.states[i]
}

// States returns all views into the arena, in arena order.
func (b *Batch) States() []*StateRep {
	return b.states
}

// Buffer returns the whole arena (zero-copy).
//
// WARNING: writes through the returned slice are visible through every
// state view in the batch.
func (b *Batch) Buffer() []float64 {
	if b.freed {
		panic("staterep: Buffer called on released batch")
	}
	return b.buf
}

// Release frees the arena exactly once and invalidates every view handed
// out by this batch. Safe to call more than once.
func (b *Batch) Release() {
	if b.freed {
		return
	}
	b.freed = true
	for _, st := range b.states {
		st.released = true
	}
	b.alloc.Free(b.buf)
}

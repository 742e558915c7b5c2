// Package staterep provides the dense density-matrix state representation
// used by the densim simulation core.
package staterep

import (
	"errors"
	"fmt"
)

// Errors returned by state construction and copying.
var (
	ErrNegativeDim   = errors.New("negative dimension")
	ErrNegativeCount = errors.New("negative state count")
	ErrShortBuffer   = errors.New("buffer shorter than dimension")
	ErrDimMismatch   = errors.New("dimension mismatch")
	ErrReleased      = errors.New("state already released")
)

// StateRep is a dense quantum state in the density-matrix representation:
// a flat vector of real (float64) coefficients whose length is the
// representation dimension, fixed at construction.
//
// A StateRep either owns its buffer or is a view into memory owned
// elsewhere, typically a Batch arena or a caller-supplied slice. Which of
// the two it is gets decided by the constructor and never changes
// afterwards. Owned memory is returned to its Allocator by Release,
// exactly once; a view never releases anything, and is only valid while
// the viewed buffer is.
//
// StateRep does no locking. Callers that share an instance, or share a
// viewed buffer through several instances, across goroutines must
// serialize access themselves.
type StateRep struct {
	data     []float64 // len(data) is the dimension, always
	owned    bool
	released bool
	alloc    Allocator // nil for views
}

// New allocates an owned, zero-initialized state of the given dimension
// using the default allocator. Zeroed contents are part of the contract:
// callers preparing a default state rely on it.
func New(dim int) (*StateRep, error) {
	return NewWithAllocator(dim, DefaultAllocator)
}

// NewWithAllocator is New with an explicit allocator. The allocator is
// remembered and receives the buffer back on Release.
func NewWithAllocator(dim int, a Allocator) (*StateRep, error) {
	if dim < 0 {
		return nil, fmt.Errorf("staterep: dim %d: %w", dim, ErrNegativeDim)
	}
	return &StateRep{
		data:  a.Alloc(dim),
		owned: true,
		alloc: a,
	}, nil
}

// FromData builds a state from the first dim elements of an existing
// buffer, which must hold at least dim values.
//
// With dup=true the values are duplicated into a fresh owned buffer and
// the result is fully independent of data. With dup=false no allocation
// happens and the result is a view of data[:dim]: writes through either
// side are visible to the other, and the caller must keep the buffer
// alive for as long as the view is in use.
func FromData(data []float64, dim int, dup bool) (*StateRep, error) {
	return FromDataWithAllocator(data, dim, dup, DefaultAllocator)
}

// FromDataWithAllocator is FromData with an explicit allocator for the
// dup=true path. The allocator is ignored for views, which allocate
// nothing.
func FromDataWithAllocator(data []float64, dim int, dup bool, a Allocator) (*StateRep, error) {
	if dim < 0 {
		return nil, fmt.Errorf("staterep: dim %d: %w", dim, ErrNegativeDim)
	}
	if len(data) < dim {
		return nil, fmt.Errorf("staterep: buffer has %d elements, need %d: %w",
			len(data), dim, ErrShortBuffer)
	}
	if !dup {
		return &StateRep{data: data[:dim:dim]}, nil
	}
	st, err := NewWithAllocator(dim, a)
	if err != nil {
		return nil, err
	}
	copy(st.data, data)
	return st, nil
}

// Dim returns the representation dimension.
func (r *StateRep) Dim() int {
	return len(r.data)
}

// IsView reports whether r borrows its buffer from elsewhere.
func (r *StateRep) IsView() bool {
	return !r.owned
}

// Data returns the coefficient slice backing the state (zero-copy).
//
// WARNING: writes through the returned slice mutate the state, and for a
// view they mutate the shared underlying buffer.
func (r *StateRep) Data() []float64 {
	if r.released {
		panic("staterep: Data called on released state")
	}
	return r.data
}

// At returns the coefficient at index i.
// Panics if i is out of bounds.
func (r *StateRep) At(i int) float64 {
	if i < 0 || i >= len(r.data) {
		panic(fmt.Sprintf("index %d out of bounds for dimension %d", i, len(r.data)))
	}
	return r.Data()[i]
}

// Set stores v at index i.
// Panics if i is out of bounds.
func (r *StateRep) Set(i int, v float64) {
	if i < 0 || i >= len(r.data) {
		panic(fmt.Sprintf("index %d out of bounds for dimension %d", i, len(r.data)))
	}
	r.Data()[i] = v
}

// CopyFrom overwrites every coefficient of r with the corresponding
// coefficient of other, in index order. Dimensions must match exactly; a
// mismatch leaves r untouched. Neither dimension nor ownership changes,
// and no allocation happens.
func (r *StateRep) CopyFrom(other *StateRep) error {
	if r.released || other.released {
		return fmt.Errorf("staterep: copy involving released state: %w", ErrReleased)
	}
	if r.Dim() != other.Dim() {
		return fmt.Errorf("staterep: cannot copy dim %d state into dim %d state: %w",
			other.Dim(), r.Dim(), ErrDimMismatch)
	}
	copy(r.data, other.data)
	return nil
}

// Clone returns an independent owned copy of r. An owned state's clone
// comes from the same allocator; a view's clone uses the default.
func (r *StateRep) Clone() *StateRep {
	a := r.alloc
	if a == nil {
		a = DefaultAllocator
	}
	st, err := FromDataWithAllocator(r.Data(), r.Dim(), true, a)
	if err != nil {
		panic(err) // dimension comes from a live state, cannot be invalid
	}
	return st
}

// Release returns an owned buffer to its allocator. For a view it
// releases nothing. Calling Release more than once is safe; only the
// first call frees.
func (r *StateRep) Release() {
	if r.released {
		return
	}
	r.released = true
	if r.owned {
		r.alloc.Free(r.data)
	}
}

// String returns a short human-readable summary.
func (r *StateRep) String() string {
	mode := "owned"
	if !r.owned {
		mode = "view"
	}
	if r.released {
		mode += ", released"
	}
	return fmt.Sprintf("StateRep(dim=%d, %s)", r.Dim(), mode)
}

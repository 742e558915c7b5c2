// Copyright 2026 The densim authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package staterep provides dense density-matrix state representations
// for the densim simulation core.
//
// # Overview
//
// A StateRep is a flat vector of real coefficients of fixed dimension,
// the storage primitive every higher layer (operator application,
// measurement, forward simulation) reads and writes through. This package
// covers storage and ownership only; it never transforms the numbers it
// holds.
//
// A state either owns its buffer or views memory owned elsewhere:
//   - New and FromData with dup=true produce owning states whose buffers
//     come from an Allocator and go back to it on Release.
//   - FromData with dup=false and Batch produce views; releasing a view
//     never frees the underlying memory, and the caller keeps the viewed
//     buffer alive for as long as the view is used.
//
// # Basic Usage
//
//	import "github.com/densim-go/densim/staterep"
//
//	func main() {
//	    rho, _ := staterep.New(4)          // owned, zeroed
//	    rho.Set(0, 1)                      // prepare |0><0| in this basis
//
//	    snap := rho.Clone()                // independent owned copy
//	    view, _ := staterep.FromData(rho.Data(), 4, false) // aliases rho
//
//	    _ = snap
//	    _ = view
//	}
//
// # Batches
//
// Simulators that sweep many states of one dimension allocate a Batch:
// one contiguous arena plus per-state views into it. This keeps the whole
// sweep in one allocation and gives operator kernels a single contiguous
// buffer to walk.
//
//	b, _ := staterep.NewBatch(1024, 4)
//	for _, st := range b.States() {
//	    // st.Data() is a window into the shared arena
//	    _ = st
//	}
//	b.Release()
//
// # Concurrency
//
// StateRep and Batch do no locking. Confine an instance to one goroutine
// or serialize access externally, including access to a buffer shared by
// several views.
package staterep

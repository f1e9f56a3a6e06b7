// Package gate implements a spin-based multiple-reader/single-writer
// admission gate sized for protecting a small mutable table whose write
// path is cold (first-sight registration).
package gate

import (
	"runtime"
	"sync/atomic"
)

// Gate admits either any number of concurrent readers or exactly one
// writer, never both. The zero value is an open gate.
//
// Admission spins rather than parking, trading scheduler fairness for a
// short, allocation-free path. Sustained write contention can starve a
// writer; the intended workload never sustains writes.
type Gate struct {
	readers atomic.Int32
	writer  atomic.Bool
}

// EnterRead admits the caller as a reader, spinning while a writer holds or
// is draining the gate. Pair with ExitRead.
func (g *Gate) EnterRead() {
	for {
		g.readers.Add(1)
		if !g.writer.Load() {
			return
		}
		// A writer is present: retract the optimistic claim and wait for
		// it to leave before trying again.
		g.readers.Add(-1)
		for g.writer.Load() {
			runtime.Gosched()
		}
	}
}

// ExitRead releases a reader admission.
func (g *Gate) ExitRead() {
	g.readers.Add(-1)
}

// EnterWrite claims the single writer slot, then waits for admitted readers
// to drain. Pair with ExitWrite.
func (g *Gate) EnterWrite() {
	for !g.writer.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
	for g.readers.Load() != 0 {
		runtime.Gosched()
	}
}

// ExitWrite releases the writer slot.
func (g *Gate) ExitWrite() {
	g.writer.Store(false)
}

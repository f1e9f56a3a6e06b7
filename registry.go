package goinstr

import (
	"fmt"
	"sync/atomic"

	"github.com/ardnew/goinstr/internal/goid"
	"github.com/ardnew/goinstr/internal/list"
)

// instr is the process-wide profile registry.
//
//nolint:gochecknoglobals
var instr registry

// slot holds one goroutine's ordinal and its exclusively-owned event map.
// The owning goroutine is the only mutator of events; any cross-goroutine
// read is an unsynchronized snapshot, trustworthy once the owner is
// quiescent. Slots persist for the life of the process so ordinals stay
// valid; clearing empties the map without touching the ordinal.
type slot struct {
	events map[EventKind]*EventData
	gid    uint64
	id     uint32
}

// registry maps calling-goroutine identity to its slot. Entries are
// appended and never removed. Two goroutines racing to create their own
// slots push distinct nodes and never conflict; a goroutine cannot race
// itself, so the find-then-push window admits no duplicate identity.
type registry struct {
	slots list.List[*slot]
	count atomic.Uint32
}

// forGID finds or creates the slot for the given goroutine identity. The
// ordinal of a fresh slot is drawn from a monotonic counter at creation.
func (r *registry) forGID(gid uint64) *slot {
	for s := range r.slots.All() {
		if s.gid == gid {
			return s
		}
	}

	s := &slot{
		events: make(map[EventKind]*EventData),
		gid:    gid,
		id:     r.count.Add(1) - 1,
	}
	r.slots.Push(s)

	return s
}

// mine resolves the calling goroutine's slot, creating it on first use.
func (r *registry) mine() *slot {
	return r.forGID(goid.ID())
}

// size reports how many goroutines have slots, at least as of a recent
// moment under concurrent insertion.
func (r *registry) size() uint32 {
	return r.count.Load()
}

// byOrdinal returns the slot holding ordinal n. Ordinals are dense, so any
// n below size resolves; anything else is a caller bug.
func (r *registry) byOrdinal(n uint32) *slot {
	for s := range r.slots.All() {
		if s.id == n {
			return s
		}
	}

	panic(fmt.Sprintf("goinstr: unknown thread ordinal %d (have %d)", n, r.size()))
}

// fold combines every slot's map into one ActivityMap using EventData.Add.
func (r *registry) fold() ActivityMap {
	m := make(ActivityMap)
	for s := range r.slots.All() {
		for k, ed := range s.events {
			d := m[k]
			d.Add(*ed)
			m[k] = d
		}
	}

	return m
}

// clear empties every slot's map, preserving ordinals.
func (r *registry) clear() {
	for s := range r.slots.All() {
		for k := range s.events {
			delete(s.events, k)
		}
	}
}

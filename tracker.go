package goinstr

import (
	"fmt"
	"time"
)

// beginActivity records that the calling goroutine entered kind. Nesting
// different kinds is fine; re-entering a kind already running on the same
// goroutine is a programmer error and fails fast.
func beginActivity(kind EventKind) {
	s := instr.mine()

	ed := s.events[kind]
	if ed == nil {
		ed = new(EventData)
		s.events[kind] = ed
	}

	if ed.Running {
		panic(fmt.Sprintf("goinstr: begin of already-running activity %s", describe(kind)))
	}

	ed.Invocations++
	ed.Last = time.Now()
	ed.Running = true
}

// endActivity records that the calling goroutine left kind, accumulating
// the elapsed interval since the matching begin.
func endActivity(kind EventKind) {
	now := time.Now()
	s := instr.mine()

	ed, ok := s.events[kind]
	if !ok {
		panic(fmt.Sprintf("goinstr: end of never-begun activity %s", describe(kind)))
	}
	if !ed.Running {
		panic(fmt.Sprintf("goinstr: end of already-ended activity %s", describe(kind)))
	}

	ed.Time += now.Sub(ed.Last).Seconds()
	ed.Last = now
	ed.Running = false
}

// describe renders a kind for failure messages, preferring its interned
// name when one exists.
func describe(kind EventKind) string {
	if name, ok := names.name(kind); ok {
		return fmt.Sprintf("%d (%s)", kind, name)
	}

	return fmt.Sprintf("%d", kind)
}

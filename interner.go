package goinstr

import (
	"github.com/ardnew/goinstr/internal/gate"
	"github.com/ardnew/goinstr/internal/list"
)

// names is the process-wide name table shared by the profiling and logging
// paths.
//
//nolint:gochecknoglobals
var names = newNameTable()

// nameEntry is one row of the bidirectional name table. Entries are
// immutable once pushed.
type nameEntry struct {
	name string
	code EventKind
}

// nameTable assigns dense, zero-based, process-stable codes to event names.
// The forward index (name to code) is a map guarded by the admission gate;
// the reverse direction is a gate-free linear scan of the append-only push
// list, where a scan racing an insert can only miss a just-added name, never
// observe a torn entry.
type nameTable struct {
	entries list.List[nameEntry]
	index   map[string]EventKind
	gate    gate.Gate
}

func newNameTable() *nameTable {
	return &nameTable{index: make(map[string]EventKind)}
}

// code returns the interned code for name, assigning the next dense code on
// first sight. The lookup is optimistic under a read admission; a miss
// escalates to the write side and re-checks, since another writer may have
// inserted the name between the two admissions.
func (t *nameTable) code(name string) EventKind {
	t.gate.EnterRead()
	c, ok := t.index[name]
	t.gate.ExitRead()
	if ok {
		return c
	}

	t.gate.EnterWrite()
	defer t.gate.ExitWrite()

	if c, ok := t.index[name]; ok {
		return c
	}

	c = EventKind(len(t.index))
	t.index[name] = c
	t.entries.Push(nameEntry{name: name, code: c})

	return c
}

// name resolves a code back to its interned name, or reports false for a
// code never assigned (or assigned so recently the scan missed it).
func (t *nameTable) name(code EventKind) (string, bool) {
	for e := range t.entries.All() {
		if e.code == code {
			return e.name, true
		}
	}

	return "", false
}

package goinstr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/ardnew/goinstr/internal/gate"
	"github.com/ardnew/goinstr/internal/goid"
	"github.com/ardnew/goinstr/internal/list"
)

// LogPrinter renders the payload of one event kind for the dump.
type LogPrinter func(data any) string

// FallbackPrinter renders any event whose kind has no specific printer.
type FallbackPrinter func(kind EventKind, data any) string

// startTime is the start-of-process reference for timed log offsets.
//
//nolint:gochecknoglobals
var startTime = time.Now()

// elog is the process-wide event log. It resolves thread ordinals through
// the profile registry and event names through the shared name table.
//
//nolint:gochecknoglobals
var elog = newEventLog(&instr, names)

// logRecord is one appended entry. Records arrive ordered but are stored in
// reverse-arrival order inside the push list; the dump restores arrival
// order before rendering.
type logRecord struct {
	when time.Time // zero unless the entry was requested as timed
	data any
	gid  uint64
	kind EventKind
}

// eventLog is an append-mostly shared sequence of log records. Appends are
// lock-free and may come from any goroutine; the dump side assumes a single
// designated consumer with producers quiesced (or accepts the interleaving
// anomaly of records landing mid-dump).
type eventLog struct {
	reg      *registry
	names    *nameTable
	specific map[EventKind]LogPrinter
	fallback FallbackPrinter
	records  list.List[logRecord]
	limit    atomic.Uint32
	muted    atomic.Bool
	printers gate.Gate
}

func newEventLog(reg *registry, names *nameTable) *eventLog {
	return &eventLog{
		reg:      reg,
		names:    names,
		specific: make(map[EventKind]LogPrinter),
	}
}

// append pushes one record unless the log is administratively muted. Muting
// silences new entries without dropping anything already queued.
func (e *eventLog) append(kind EventKind, data any, timed bool) {
	if e.muted.Load() {
		return
	}

	r := logRecord{data: data, gid: goid.ID(), kind: kind}
	if timed {
		r.when = time.Now()
	}

	e.records.Push(r)
}

// dump destructively renders the log to w in arrival order: reverse the
// storage, discard the oldest arrivals beyond the retention limit, then pop
// and render every remaining record. The log is left empty of everything
// examined. Single-consumer: the caller must quiesce producers for exact
// results.
func (e *eventLog) dump(w io.Writer) error {
	e.records.Reverse()

	if limit := e.limit.Load(); limit > 0 {
		for n := e.records.Len(); n > int(limit); n-- {
			e.records.PopHead()
		}
	}

	for {
		r, ok := e.records.PopHead()
		if !ok {
			return nil
		}

		ordinal := e.reg.forGID(r.gid).id

		var err error
		if r.when.IsZero() {
			_, err = fmt.Fprintf(w, "Th %3d %s\n", ordinal, e.render(r))
		} else {
			when := r.when.Sub(startTime).Seconds()
			_, err = fmt.Fprintf(w, "Th %3d %f %s\n", ordinal, when, e.render(r))
		}

		if err != nil {
			return fmt.Errorf("dump log: %w", err)
		}
	}
}

// dumpFile dumps to the named file, appending or truncating per mode.
func (e *eventLog) dumpFile(path string, appendTo bool) error {
	mode := os.O_TRUNC
	if appendTo {
		mode = os.O_APPEND
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|mode, 0o644)
	if err != nil {
		return fmt.Errorf("open log dump file: %w", err)
	}
	defer f.Close()

	return e.dump(f)
}

// render resolves the string for one record: the kind's specific printer
// wins, then the registered fallback, then the built-in default.
func (e *eventLog) render(r logRecord) string {
	e.printers.EnterRead()
	p := e.specific[r.kind]
	fb := e.fallback
	e.printers.ExitRead()

	switch {
	case p != nil:
		return p(r.data)
	case fb != nil:
		return fb(r.kind, r.data)
	default:
		return e.defaultRender(r.kind, r.data)
	}
}

// defaultRender shows the interned name when one exists, else the numeric
// kind, followed by the payload.
func (e *eventLog) defaultRender(kind EventKind, data any) string {
	name, ok := e.names.name(kind)
	if !ok {
		name = strconv.Itoa(int(kind))
	}

	return name + " " + fmt.Sprint(data)
}

func (e *eventLog) registerPrinter(kind EventKind, p LogPrinter) {
	e.printers.EnterWrite()
	e.specific[kind] = p
	e.printers.ExitWrite()
}

func (e *eventLog) registerFallback(p FallbackPrinter) {
	e.printers.EnterWrite()
	e.fallback = p
	e.printers.ExitWrite()
}

func (e *eventLog) clear() {
	e.records.Clear()
}

func (e *eventLog) setLimit(n uint32) {
	e.limit.Store(n)
}

func (e *eventLog) mute(silenced bool) {
	e.muted.Store(silenced)
}

// TimelinePrinter is a fallback printer tuned for the companion timeline
// tool: it renders the event name with a " BEGIN" suffix for payload 0 and
// " END" otherwise, forming the line grammar
//
//	<thread-ordinal> <timestamp> <event-name> <BEGIN|END>
//
// when dumped entries are timed. Register it with
// [RegisterFallbackPrinter].
func TimelinePrinter(kind EventKind, data any) string {
	name, ok := names.name(kind)
	if !ok {
		name = strconv.Itoa(int(kind))
	}

	if isZeroPayload(data) {
		return name + " BEGIN"
	}

	return name + " END"
}

// isZeroPayload reports whether data is the integer zero under any of the
// integer types a caller plausibly logs.
func isZeroPayload(data any) bool {
	switch v := data.(type) {
	case nil:
		return true
	case int:
		return v == 0
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	case uintptr:
		return v == 0
	default:
		return false
	}
}

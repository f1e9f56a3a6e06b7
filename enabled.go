//go:build goinstr

package goinstr

import "io"

// The watcher consumes dump signals for the life of the process; starting
// it here mirrors registering the handler at program start.
func init() {
	watchDumpSignal()
}

// ThreadsWithActivity reports how many goroutines have recorded profiling
// or logging activity, at least as of a recent moment.
func ThreadsWithActivity() uint32 { return instr.size() }

// MyThreadNumber returns the calling goroutine's ordinal, assigning one on
// first use. Ordinals are dense, start at zero, and remain valid for the
// life of the process.
func MyThreadNumber() uint32 { return instr.mine().id }

// Activity returns the live event map of the goroutine holding ordinal n.
// It panics if n is not below [ThreadsWithActivity]. The map is mutated by
// its owner without synchronization: trust the contents only once the owner
// is quiescent, or accept an eventually-consistent snapshot.
func Activity(n uint32) map[EventKind]*EventData { return instr.byOrdinal(n).events }

// AllActivity folds every goroutine's event map into one combined snapshot
// using [EventData.Add]. The same quiescence caveat as [Activity] applies.
func AllActivity() ActivityMap { return instr.fold() }

// ClearAllActivity empties every goroutine's event map. Ordinals and
// [ThreadsWithActivity] are unchanged.
func ClearAllActivity() { instr.clear() }

// BeginActivity records that the calling goroutine entered the activity
// kind. Activities of different kinds may nest; beginning a kind already
// running on the same goroutine panics.
func BeginActivity(kind EventKind) { beginActivity(kind) }

// EndActivity records that the calling goroutine left the activity kind,
// accumulating the interval since the matching [BeginActivity]. Ending a
// kind that is not running panics.
func EndActivity(kind EventKind) { endActivity(kind) }

// BeginNamed is [BeginActivity] for an activity identified by interned
// name. Use either names or raw kinds for a given activity, never both.
func BeginNamed(name string) { beginActivity(names.code(name)) }

// EndNamed is [EndActivity] for an activity identified by interned name.
func EndNamed(name string) { endActivity(names.code(name)) }

// Scoped begins the activity kind and returns the matching end, for use
// with defer:
//
//	defer goinstr.Scoped(kindCompute)()
func Scoped(kind EventKind) func() {
	beginActivity(kind)

	return func() { endActivity(kind) }
}

// ScopedNamed is [Scoped] for an activity identified by interned name.
func ScopedNamed(name string) func() {
	kind := names.code(name)
	beginActivity(kind)

	return func() { endActivity(kind) }
}

// Log appends an untimed record for kind carrying data, a small integer or
// an opaque pointer-sized value interpreted only by printers.
func Log(kind EventKind, data any) { elog.append(kind, data, false) }

// TimedLog appends a record stamped with the elapsed time since process
// start. Timed records are required by the companion timeline grammar.
func TimedLog(kind EventKind, data any) { elog.append(kind, data, true) }

// LogNamed is [Log] for an event identified by interned name.
func LogNamed(name string, data any) { elog.append(names.code(name), data, false) }

// TimedLogNamed is [TimedLog] for an event identified by interned name.
func TimedLogNamed(name string, data any) { elog.append(names.code(name), data, true) }

// DumpLog destructively renders the log to w in arrival order, applying the
// retention limit first. The caller must quiesce logging goroutines for
// exact results; records appended mid-dump may be missed or interleaved.
func DumpLog(w io.Writer) error { return elog.dump(w) }

// DumpLogFile dumps the log to the named file, appending when appendTo is
// true and truncating otherwise.
func DumpLogFile(path string, appendTo bool) error { return elog.dumpFile(path, appendTo) }

// ClearLog unconditionally drops all queued records.
func ClearLog() { elog.clear() }

// SetLogRetention caps subsequent dumps at the n most recent records; zero
// restores unlimited retention.
func SetLogRetention(n uint32) { elog.setLimit(n) }

// SetLogEnabled opens or closes the administrative append gate. While
// disabled, new records are discarded and queued records are preserved.
func SetLogEnabled(enabled bool) { elog.mute(!enabled) }

// RegisterPrinter installs the renderer for one event kind, replacing any
// previous registration. A specific printer always beats the fallback.
func RegisterPrinter(kind EventKind, p LogPrinter) { elog.registerPrinter(kind, p) }

// RegisterFallbackPrinter installs the renderer for kinds without a
// specific printer, replacing any previous fallback. See [TimelinePrinter]
// for the companion-tool fallback.
func RegisterFallbackPrinter(p FallbackPrinter) { elog.registerFallback(p) }

// EventCode interns name, assigning the next dense code on first sight and
// returning the same code on every later call.
func EventCode(name string) EventKind { return names.code(name) }

// EventName resolves an interned code back to its name.
func EventName(code EventKind) (string, bool) { return names.name(code) }

// RegisterInspector installs fn to run in place of the default dump when
// [DumpSignal] is delivered. Only one inspector is active; the last
// registration wins, and registering nil restores the default dump.
func RegisterInspector(fn func()) { registerInspector(fn) }

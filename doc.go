// Package goinstr is a low-overhead, opt-in instrumentation library for
// multithreaded Go programs. It records per-goroutine timing and activity
// profiles and a globally-ordered event log, usable from arbitrarily many
// concurrent goroutines, with an external dump trigger (SIGUSR1) that
// inspects state without stopping the program.
//
// # Enabling instrumentation
//
// The whole library is gated behind the goinstr build tag. Without it,
// every exported function is an empty inline-able stub with zero overhead;
// build with
//
//	go build -tags goinstr
//
// to compile the instrumentation in. Calls can stay in production code
// unconditionally.
//
// # Profiling
//
// Activities are identified by an [EventKind] (caller-chosen integer) or by
// an interned name, never both for one logical event. Each goroutine owns
// its profile slot:
//
//	goinstr.BeginActivity(kindCompute)
//	// ... work ...
//	goinstr.EndActivity(kindCompute)
//
//	// or, scoped:
//	defer goinstr.ScopedNamed("compute")()
//
// [AllActivity] aggregates every goroutine's times and invocation counts;
// [Activity] exposes one goroutine's map by ordinal. Nesting different
// kinds is allowed; re-entering a running kind on the same goroutine is a
// programmer error and panics.
//
// # Logging
//
// [Log] and [TimedLog] append to a shared lock-free log; [DumpLog] drains
// it in arrival order, rendering each record through per-kind printers with
// an optional fallback. [SetLogRetention] keeps only the most recent
// records across a dump. Timed records rendered through [TimelinePrinter]
// form the line grammar consumed by the companion cmd/timeline tool:
//
//	<thread-ordinal> <timestamp> <event-name> <BEGIN|END>
//
// # Signal dump
//
// Delivering [DumpSignal] (SIGUSR1) runs the registered inspector, or the
// default dump to standard error. The handler context only forwards on a
// channel; dumps always execute on a dedicated watcher goroutine.
package goinstr

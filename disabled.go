//go:build !goinstr

package goinstr

import "io"

// This file is the no-op rendition of the public API, compiled when the
// goinstr build tag is absent. Every function is an empty leaf the compiler
// inlines away, preserving the zero-overhead guarantee for uninstrumented
// builds. See enabled.go for the documented behavior.

// ThreadsWithActivity reports zero when instrumentation is compiled out.
func ThreadsWithActivity() uint32 { return 0 }

// MyThreadNumber reports zero when instrumentation is compiled out.
func MyThreadNumber() uint32 { return 0 }

// Activity reports no data when instrumentation is compiled out.
func Activity(uint32) map[EventKind]*EventData { return nil }

// AllActivity reports no data when instrumentation is compiled out.
func AllActivity() ActivityMap { return nil }

// ClearAllActivity does nothing when instrumentation is compiled out.
func ClearAllActivity() {}

// BeginActivity does nothing when instrumentation is compiled out.
func BeginActivity(EventKind) {}

// EndActivity does nothing when instrumentation is compiled out.
func EndActivity(EventKind) {}

// BeginNamed does nothing when instrumentation is compiled out.
func BeginNamed(string) {}

// EndNamed does nothing when instrumentation is compiled out.
func EndNamed(string) {}

// Scoped returns an inert closure when instrumentation is compiled out.
func Scoped(EventKind) func() { return func() {} }

// ScopedNamed returns an inert closure when instrumentation is compiled out.
func ScopedNamed(string) func() { return func() {} }

// Log does nothing when instrumentation is compiled out.
func Log(EventKind, any) {}

// TimedLog does nothing when instrumentation is compiled out.
func TimedLog(EventKind, any) {}

// LogNamed does nothing when instrumentation is compiled out.
func LogNamed(string, any) {}

// TimedLogNamed does nothing when instrumentation is compiled out.
func TimedLogNamed(string, any) {}

// DumpLog writes nothing when instrumentation is compiled out.
func DumpLog(io.Writer) error { return nil }

// DumpLogFile writes nothing when instrumentation is compiled out.
func DumpLogFile(string, bool) error { return nil }

// ClearLog does nothing when instrumentation is compiled out.
func ClearLog() {}

// SetLogRetention does nothing when instrumentation is compiled out.
func SetLogRetention(uint32) {}

// SetLogEnabled does nothing when instrumentation is compiled out.
func SetLogEnabled(bool) {}

// RegisterPrinter does nothing when instrumentation is compiled out.
func RegisterPrinter(EventKind, LogPrinter) {}

// RegisterFallbackPrinter does nothing when instrumentation is compiled out.
func RegisterFallbackPrinter(FallbackPrinter) {}

// EventCode reports zero when instrumentation is compiled out.
func EventCode(string) EventKind { return 0 }

// EventName reports no name when instrumentation is compiled out.
func EventName(EventKind) (string, bool) { return "", false }

// RegisterInspector does nothing when instrumentation is compiled out.
func RegisterInspector(func()) {}

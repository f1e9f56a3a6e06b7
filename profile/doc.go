// Package profile provides optional runtime profiling for the timeline
// tool, integrating [github.com/pkg/profile] behind the "pprof" build tag.
//
// When built without the tag (default), all operations are no-ops with zero
// runtime overhead. With the tag, the supported modes are those of
// [github.com/pkg/profile]: allocs, block, clock, cpu, goroutine, heap,
// mem, mutex, thread, and trace; use [Modes] to retrieve the list
// programmatically. Profile files are written to the configured directory
// with names matching the mode (cpu.pprof, mem.pprof, ...) for analysis
// with go tool pprof.
//
//	ctrl := profile.Make(profile.WithMode("cpu"), profile.WithPath(dir)).Start()
//	defer ctrl.Stop()
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

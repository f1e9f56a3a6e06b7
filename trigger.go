package goinstr

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/ardnew/goinstr/log"
)

// inspector holds the user callback invoked in place of the default dump
// when the dump signal arrives. At most one is active; the last
// registration wins.
//
//nolint:gochecknoglobals
var inspector atomic.Pointer[func()]

//nolint:gochecknoglobals
var watchOnce sync.Once

// registerInspector installs fn as the signal-time action, replacing the
// default dump (and any previously registered inspector). The inspector is
// responsible for dumping if it wants the log drained. Registering nil
// removes the current inspector and restores the default dump.
func registerInspector(fn func()) {
	if fn == nil {
		inspector.Store(nil)

		return
	}

	inspector.Store(&fn)
}

// onDumpSignal runs one delivery of the dump signal. It executes on the
// watcher goroutine, never inside signal context, so it is free to allocate
// and perform buffered output.
func onDumpSignal() {
	if fn := inspector.Load(); fn != nil {
		(*fn)()

		return
	}

	if err := elog.dump(os.Stderr); err != nil {
		log.Error("signal-triggered log dump failed", log.ErrAttr(err))
	}
}

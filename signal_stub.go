//go:build !unix

package goinstr

import "github.com/ardnew/goinstr/log"

// watchDumpSignal reports once that dump-on-signal is unavailable on this
// platform. The rest of the library is unaffected.
func watchDumpSignal() {
	watchOnce.Do(func() {
		log.Warn("dump-on-signal unavailable: no SIGUSR1 on this platform")
	})
}

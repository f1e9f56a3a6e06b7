//go:build unix

package goinstr

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// DumpSignal is the external trigger for a state dump. Delivering it to the
// process invokes the registered inspector, or the default dump to standard
// error when none is registered.
const DumpSignal = unix.SIGUSR1

// watchDumpSignal starts the dedicated consumer for the dump signal. The
// signal handler itself only forwards on a channel; every dump runs on this
// goroutine, outside signal context.
func watchDumpSignal() {
	watchOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, DumpSignal)

		go func() {
			for range ch {
				onDumpSignal()
			}
		}()
	})
}

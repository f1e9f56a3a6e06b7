package goinstr

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// FprintActivity writes one line per event kind in m to w, in ascending
// kind order, resolving interned names where known:
//
//	Event          COMPUTE : 1.234567 seconds 42 invocations
//
// It is a plain formatter over a snapshot and carries no synchronization.
func FprintActivity(w io.Writer, m ActivityMap) error {
	for _, kind := range slices.Sorted(maps.Keys(m)) {
		d := m[kind]

		var err error
		if name, ok := names.name(kind); ok {
			_, err = fmt.Fprintf(w, "Event %16s : %f seconds %d invocations\n", name, d.Time, d.Invocations)
		} else {
			_, err = fmt.Fprintf(w, "Event %16d : %f seconds %d invocations\n", kind, d.Time, d.Invocations)
		}

		if err != nil {
			return fmt.Errorf("print activity: %w", err)
		}
	}

	return nil
}

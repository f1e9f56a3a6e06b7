// Package parser reads the activity dump emitted by the instrumented
// process and turns it into a stream of begin/end events.
//
// Each line of input follows the grammar
//
//	[prefix] <thread> <timestamp> <activity> <BEGIN|END>
//
// where prefix is any run of non-digit characters (typically "Th"),
// thread is a decimal ordinal, timestamp a floating point second count,
// and activity an arbitrary token without whitespace. Blank lines are
// skipped.
package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ardnew/goinstr/pkg"
)

// Phase distinguishes the two halves of an activity interval.
type Phase int

const (
	Begin Phase = iota
	End
)

// String returns the wire token for the phase.
func (p Phase) String() string {
	if p == End {
		return "END"
	}

	return "BEGIN"
}

// Event is one parsed line of a dump.
type Event struct {
	Name   string
	Time   float64
	Thread int
	Phase  Phase
}

// ParseLine parses one dump line. The leading non-digit prefix, if any,
// is discarded before the four fields are read.
func ParseLine(line string) (Event, error) {
	trimmed := strings.TrimLeftFunc(line, func(r rune) bool {
		return r < '0' || r > '9'
	})

	fields := strings.Fields(trimmed)
	if len(fields) != 4 {
		return Event{}, pkg.ErrParseLine.Wrapf("%d fields in %q", len(fields), line)
	}

	thread, err := strconv.Atoi(fields[0])
	if err != nil {
		return Event{}, pkg.ErrParseLine.Wrapf("thread %q: %v", fields[0], err)
	}

	stamp, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Event{}, pkg.ErrParseLine.Wrapf("timestamp %q: %v", fields[1], err)
	}

	var phase Phase
	switch fields[3] {
	case "BEGIN":
		phase = Begin
	case "END":
		phase = End
	default:
		return Event{}, pkg.ErrParseLine.Wrapf("phase %q in %q", fields[3], line)
	}

	return Event{
		Name:   fields[2],
		Time:   stamp,
		Thread: thread,
		Phase:  phase,
	}, nil
}

// Parse reads every line of r, returning the events in input order.
// Lines that are empty or all whitespace are skipped. The first
// malformed line aborts the parse with its line number attached.
func Parse(r io.Reader) ([]Event, error) {
	var events []Event

	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNo := 1; scan.Scan(); lineNo++ {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ev, err := ParseLine(line)
		if err != nil {
			return nil, pkg.MakeError(err).Wrapf("line %d", lineNo)
		}

		events = append(events, ev)
	}

	if err := scan.Err(); err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	if len(events) == 0 {
		return nil, pkg.ErrNoEvents
	}

	return events, nil
}

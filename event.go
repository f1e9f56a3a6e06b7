package goinstr

import "time"

// EventKind identifies an activity or log event type. Kinds are small
// non-negative integers chosen by the caller, or assigned densely by
// [EventCode] when events are identified by name. The two schemes must not
// be mixed for the same logical event: a program either picks its own codes
// or interns names, never both for one event.
type EventKind int

// EventData accumulates the per-goroutine profile of one event kind.
type EventData struct {
	// Last is the moment of the most recent begin or end transition.
	Last time.Time
	// Time is the total seconds spent running this event.
	Time float64
	// Invocations counts how many times the event began.
	Invocations uint32
	// Running reports whether the event is between a begin and its end.
	Running bool
}

// Add combines other into d for cross-goroutine aggregation: times and
// invocation counts sum, running flags OR. The combination is commutative
// and associative, so fold order does not matter.
func (d *EventData) Add(other EventData) {
	d.Time += other.Time
	d.Invocations += other.Invocations
	d.Running = d.Running || other.Running
}

// ActivityMap is an aggregated snapshot of event data keyed by kind.
type ActivityMap map[EventKind]EventData

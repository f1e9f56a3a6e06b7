// Package timeline builds a per-thread interval model from parsed dump
// events and renders it as an ANSI chart or a LaTeX timing table.
package timeline

import (
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/goinstr/cmd/timeline/parser"
	"github.com/ardnew/goinstr/pkg"
)

// Interval is one contiguous span of an activity on a single thread.
type Interval struct {
	Activity string
	Begin    float64
	End      float64
}

// Lane holds the intervals recorded by one thread, ordered by begin time.
type Lane struct {
	Intervals []Interval
	Thread    int
}

// Model is the chart-ready form of a dump: one lane per thread plus the
// activity legend in order of first appearance.
type Model struct {
	Lanes      []Lane
	Activities []string
	Span       float64
}

// open tracks a BEGIN awaiting its END.
type open struct {
	name  string
	begin float64
}

// Build pairs BEGIN and END events per thread into intervals. Nested and
// overlapping activities are paired innermost-first: an END closes the
// most recent open BEGIN of the same name on its thread. A BEGIN still
// open when the input ends is closed at the latest timestamp seen.
func Build(events []parser.Event) (*Model, error) {
	lanes := make(map[int]*Lane)
	opens := make(map[int][]open)
	seen := make(map[string]bool)

	var m Model

	for _, ev := range events {
		if ev.Time > m.Span {
			m.Span = ev.Time
		}
		if !seen[ev.Name] {
			seen[ev.Name] = true
			m.Activities = append(m.Activities, ev.Name)
		}

		switch ev.Phase {
		case parser.Begin:
			opens[ev.Thread] = append(opens[ev.Thread], open{name: ev.Name, begin: ev.Time})

		case parser.End:
			stack := opens[ev.Thread]
			at := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == ev.Name {
					at = i

					break
				}
			}
			if at < 0 {
				return nil, pkg.ErrUnmatchedEnd.Wrapf(
					"%s at %f on thread %d", ev.Name, ev.Time, ev.Thread,
				)
			}

			lane := lanes[ev.Thread]
			if lane == nil {
				lane = &Lane{Thread: ev.Thread}
				lanes[ev.Thread] = lane
			}
			lane.Intervals = append(lane.Intervals, Interval{
				Activity: stack[at].name,
				Begin:    stack[at].begin,
				End:      ev.Time,
			})
			opens[ev.Thread] = slices.Delete(stack, at, at+1)
		}
	}

	// Close dangling BEGINs at the end of the observed timeline.
	for thread, stack := range opens {
		for _, o := range stack {
			lane := lanes[thread]
			if lane == nil {
				lane = &Lane{Thread: thread}
				lanes[thread] = lane
			}
			lane.Intervals = append(lane.Intervals, Interval{
				Activity: o.name,
				Begin:    o.begin,
				End:      m.Span,
			})
		}
	}

	for _, lane := range lanes {
		slices.SortFunc(lane.Intervals, func(a, b Interval) int {
			switch {
			case a.Begin < b.Begin:
				return -1
			case a.Begin > b.Begin:
				return 1
			default:
				return 0
			}
		})
		m.Lanes = append(m.Lanes, *lane)
	}
	slices.SortFunc(m.Lanes, func(a, b Lane) int { return a.Thread - b.Thread })

	return &m, nil
}

// Merge joins consecutive same-activity intervals within each lane when
// the idle gap between them does not exceed gap seconds.
func (m *Model) Merge(gap float64) {
	for i := range m.Lanes {
		lane := &m.Lanes[i]

		merged := lane.Intervals[:0]
		for _, iv := range lane.Intervals {
			if n := len(merged); n > 0 &&
				merged[n-1].Activity == iv.Activity &&
				iv.Begin-merged[n-1].End <= gap {
				if iv.End > merged[n-1].End {
					merged[n-1].End = iv.End
				}

				continue
			}

			merged = append(merged, iv)
		}
		lane.Intervals = merged
	}
}

// Keep restricts the model to the activities named by selectors.
// Selectors resolve by exact name first, then by best fuzzy match.
func (m *Model) Keep(selectors []string) error {
	want, err := m.resolve(selectors)
	if err != nil {
		return err
	}

	m.filter(func(name string) bool { return want[name] })

	return nil
}

// Silence removes the activities named by selectors from the model.
// Selectors resolve by exact name first, then by best fuzzy match.
func (m *Model) Silence(selectors []string) error {
	drop, err := m.resolve(selectors)
	if err != nil {
		return err
	}

	m.filter(func(name string) bool { return !drop[name] })

	return nil
}

// resolve maps each selector to an activity present in the model.
func (m *Model) resolve(selectors []string) (map[string]bool, error) {
	out := make(map[string]bool, len(selectors))

	for _, sel := range selectors {
		if slices.Contains(m.Activities, sel) {
			out[sel] = true

			continue
		}

		matches := fuzzy.Find(sel, m.Activities)
		if len(matches) == 0 {
			return nil, pkg.ErrUnknownActivity.Wrapf("%q", sel)
		}

		out[matches[0].Str] = true
	}

	return out, nil
}

// filter keeps only intervals whose activity satisfies keep, dropping
// lanes and legend entries left empty.
func (m *Model) filter(keep func(string) bool) {
	lanes := m.Lanes[:0]
	for _, lane := range m.Lanes {
		kept := lane.Intervals[:0]
		for _, iv := range lane.Intervals {
			if keep(iv.Activity) {
				kept = append(kept, iv)
			}
		}
		lane.Intervals = kept

		if len(kept) > 0 {
			lanes = append(lanes, lane)
		}
	}
	m.Lanes = lanes

	acts := m.Activities[:0]
	for _, name := range m.Activities {
		if keep(name) {
			acts = append(acts, name)
		}
	}
	m.Activities = acts
}

package timeline

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/goinstr/cmd/timeline/parser"
	"github.com/ardnew/goinstr/pkg"
)

// Filter reports whether an event survives a --filter expression.
type Filter func(parser.Event) (bool, error)

// filterEnv builds the expression environment for one event. The same
// keys, with zero values, serve as the typed exemplar at compile time.
func filterEnv(ev parser.Event) map[string]any {
	return map[string]any{
		"thread": ev.Thread,
		"time":   ev.Time,
		"name":   ev.Name,
		"phase":  ev.Phase.String(),
	}
}

// CompileFilter compiles an expr-lang boolean expression over the fields
// thread, time, name, and phase.
func CompileFilter(source string) (Filter, error) {
	program, err := expr.Compile(source,
		expr.Env(filterEnv(parser.Event{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, pkg.ErrFilter.Wrapf("%q", source).Wrap(err)
	}

	return func(ev parser.Event) (bool, error) {
		result, err := vm.Run(program, filterEnv(ev))
		if err != nil {
			return false, pkg.ErrFilter.Wrapf("%q", source).Wrap(err)
		}

		keep, ok := result.(bool)
		if !ok {
			return false, pkg.ErrFilter.Wrapf("%q is not boolean", source)
		}

		return keep, nil
	}, nil
}

// ApplyFilter runs the filter over events and returns the survivors.
func ApplyFilter(events []parser.Event, keep Filter) ([]parser.Event, error) {
	out := events[:0]
	for _, ev := range events {
		ok, err := keep(ev)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ev)
		}
	}

	if len(out) == 0 {
		return nil, pkg.ErrNoEvents
	}

	return out, nil
}

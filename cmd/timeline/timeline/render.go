package timeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/goinstr/pkg"
)

// RenderText writes an ANSI chart of the model: one row per thread, one
// colored cell per time slice, followed by a legend. When labels is set
// the activity name is written into its own blocks where it fits.
func RenderText(w io.Writer, m *Model, s Style, width int, labels bool) error {
	if width < 1 {
		return pkg.ErrChartWidth.Wrapf("%d", width)
	}
	if m.Span <= 0 || len(m.Lanes) == 0 {
		return pkg.ErrNoEvents
	}

	ordinals := make(map[string]int, len(m.Activities))
	for i, name := range m.Activities {
		ordinals[name] = i
	}

	scale := float64(width) / m.Span

	for _, lane := range m.Lanes {
		cells := make([]string, width)
		for _, iv := range lane.Intervals {
			from := min(int(iv.Begin*scale), width-1)
			to := min(int(iv.End*scale), width-1)
			for c := from; c <= to; c++ {
				cells[c] = iv.Activity
			}
		}

		var row strings.Builder
		fmt.Fprintf(&row, "Th %3d ", lane.Thread)
		for c := 0; c < width; {
			name := cells[c]
			run := c + 1
			for run < width && cells[run] == name {
				run++
			}

			if name == "" {
				row.WriteString(strings.Repeat(" ", run-c))
			} else {
				block := strings.Repeat(" ", run-c)
				if labels && run-c >= len(name) {
					pad := run - c - len(name)
					block = strings.Repeat(" ", pad/2) + name +
						strings.Repeat(" ", pad-pad/2)
				}
				style := lipgloss.NewStyle().
					Background(s.TermColor(name, ordinals[name])).
					Foreground(lipgloss.Color("#000000"))
				row.WriteString(style.Render(block))
			}

			c = run
		}

		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	// Time axis under the lanes.
	axis := fmt.Sprintf("%-*s%s", width-len(fmt.Sprintf("%.3fs", m.Span)),
		"0s", fmt.Sprintf("%.3fs", m.Span))
	if _, err := fmt.Fprintf(w, "%7s%s\n\n", "", axis); err != nil {
		return err
	}

	for i, name := range m.Activities {
		swatch := lipgloss.NewStyle().
			Background(s.TermColor(name, i)).
			Render("  ")
		if _, err := fmt.Fprintf(w, "%s %s\n", swatch, name); err != nil {
			return err
		}
	}

	return nil
}

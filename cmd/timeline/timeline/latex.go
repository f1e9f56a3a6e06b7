package timeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/goinstr/pkg"
)

// latexEscaper protects activity names inside tikz-timing labels.
var latexEscaper = strings.NewReplacer(
	"_", `\_`,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"$", `\$`,
)

// RenderLaTeX writes the model as a standalone LaTeX document built on
// the tikz-timing package: one timing row per thread, D segments for
// activity intervals, Z segments for idle gaps, and a color legend of
// \texttiming swatches. The chart spans width timing characters.
func RenderLaTeX(w io.Writer, m *Model, s Style, width int, labels bool) error {
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

	var doc strings.Builder

	doc.WriteString("\\documentclass[11pt]{article}\n")
	doc.WriteString("\\usepackage{tikz-timing}\n")
	doc.WriteString("\\begin{document}\n\n")
	fmt.Fprintf(&doc, "%% %f s. mapped\n", m.Span)
	doc.WriteString("\\begin{tikztimingtable}[timing/rowdist=2ex]\n")

	ratio := float64(width) / m.Span

	for _, lane := range m.Lanes {
		fmt.Fprintf(&doc, "T%d & G", lane.Thread)

		cursor := 0.0
		for _, iv := range lane.Intervals {
			if gap := (iv.Begin - cursor) * ratio; gap >= 0.01 {
				fmt.Fprintf(&doc, " %.2fZ", gap)
			}

			label := ""
			if labels {
				label = latexEscaper.Replace(iv.Activity)
			}
			fmt.Fprintf(&doc,
				" [[timing/d/background/.style={fill=%s}]]%.2fD{%s}",
				s.LaTeXColor(iv.Activity, ordinals[iv.Activity]),
				max((iv.End-iv.Begin)*ratio, 0.01),
				label,
			)

			cursor = iv.End
		}
		if tail := (m.Span - cursor) * ratio; tail >= 0.01 {
			fmt.Fprintf(&doc, " %.2fZ", tail)
		}

		doc.WriteString(" \\\\\n")
	}

	doc.WriteString("\\end{tikztimingtable}\n\n")

	for i, name := range m.Activities {
		fmt.Fprintf(&doc,
			"\\texttiming[Z]{[[timing/d/background/.style={fill=%s}]]2D{}0.01Z} %s\n",
			s.LaTeXColor(name, i), latexEscaper.Replace(name),
		)
	}

	doc.WriteString("\n\\end{document}\n")

	_, err := io.WriteString(w, doc.String())

	return err
}

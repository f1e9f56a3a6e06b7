// Package cmd implements the timeline subcommands.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/goinstr/cmd/timeline/parser"
	"github.com/ardnew/goinstr/cmd/timeline/timeline"
	"github.com/ardnew/goinstr/log"
	"github.com/ardnew/goinstr/pkg"
)

// Render reads an activity dump and draws its timeline.
type Render struct {
	Source string `arg:"" default:"-" help:"Activity dump to read, or '-' for stdin."`
	Output string `default:"-" help:"File to write, or '-' for stdout." short:"o"`

	Format string `default:"ansi" enum:"ansi,latex" help:"Chart renderer." short:"f"`
	Width  int    `default:"72"                     help:"Chart width in timing cells." short:"w"`
	Labels bool   `help:"Write activity names into their chart blocks." negatable:""`

	Merge bool    `help:"Join consecutive runs of one activity."            negatable:""`
	Gap   float64 `default:"0.05" help:"Largest idle gap merged away, in seconds."`

	Filter  string   `help:"Boolean expression over thread, time, name, and phase selecting events."`
	Only    []string `help:"Chart only these activities (fuzzy matched)."    sep:","`
	Silence []string `help:"Drop these activities from the chart (fuzzy matched)." sep:","`

	Style string `help:"YAML style file assigning activity colors." type:"existingfile"`
}

// Run parses the dump, shapes the interval model, and renders it.
func (r Render) Run(ctx context.Context) error {
	in, err := r.reader()
	if err != nil {
		return pkg.ErrReadInput.Wrapf("%s", r.Source).Wrap(err)
	}
	defer in.Close()

	events, err := parser.Parse(in)
	if err != nil {
		return err
	}

	log.Debug("dump parsed",
		slog.String("source", r.Source),
		slog.Int("events", len(events)),
	)

	if r.Filter != "" {
		keep, err := timeline.CompileFilter(r.Filter)
		if err != nil {
			return err
		}

		if events, err = timeline.ApplyFilter(events, keep); err != nil {
			return err
		}
	}

	model, err := timeline.Build(events)
	if err != nil {
		return err
	}

	if r.Merge {
		model.Merge(r.Gap)
	}
	if len(r.Only) > 0 {
		if err := model.Keep(r.Only); err != nil {
			return err
		}
	}
	if len(r.Silence) > 0 {
		if err := model.Silence(r.Silence); err != nil {
			return err
		}
	}

	style := timeline.DefaultStyle()
	if r.Style != "" {
		if style, err = timeline.LoadStyle(r.Style); err != nil {
			return err
		}
	}

	out, err := r.writer()
	if err != nil {
		return err
	}
	defer out.Close()

	log.Debug("rendering timeline",
		slog.String("format", r.Format),
		slog.Int("threads", len(model.Lanes)),
		slog.Int("activities", len(model.Activities)),
		slog.Float64("span", model.Span),
	)

	if r.Format == "latex" {
		return timeline.RenderLaTeX(out, model, style, r.Width, r.Labels)
	}

	return timeline.RenderText(out, model, style, r.Width, r.Labels)
}

// reader opens the dump source, honoring '-' as stdin.
func (r Render) reader() (io.ReadCloser, error) {
	if r.Source == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(r.Source)
}

// writer opens the chart destination, honoring '-' as stdout.
func (r Render) writer() (io.WriteCloser, error) {
	if r.Output == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(r.Output)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

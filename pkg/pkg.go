//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the goinstr module embedded at build
// time. It is printed by the timeline CLI when users invoke --version.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical module identifier used across the project. It
	// appears in help text and diagnostic output.
	Name = "goinstr"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Goroutine activity instrumentation"

	// TimelineName is the command identifier of the companion timeline tool.
	TimelineName = "timeline"
	// TimelineDescription summarizes the companion tool for its help output.
	TimelineDescription = "Render dumped goinstr logs as per-thread timelines"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

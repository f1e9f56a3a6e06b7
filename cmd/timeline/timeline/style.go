package timeline

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/goinstr/pkg"
)

// Style assigns colors to activities. Colors maps an activity name to a
// color given as an xcolor name or a #rrggbb hex triplet. Activities not
// named there cycle through Palette in legend order.
type Style struct {
	Colors  map[string]string `yaml:"colors"`
	Palette []string          `yaml:"palette"`
}

// defaultPalette cycles through the xcolor names every LaTeX toolchain
// ships, so both renderers can use the same assignment.
var defaultPalette = []string{
	"red", "green", "blue", "cyan", "magenta", "yellow",
	"brown", "lime", "olive", "orange", "pink", "purple",
	"teal", "violet", "gray", "darkgray",
}

// hexByName translates the palette names for terminal rendering.
var hexByName = map[string]string{
	"red":       "#ff0000",
	"green":     "#00c000",
	"blue":      "#0000ff",
	"cyan":      "#00c0c0",
	"magenta":   "#c000c0",
	"yellow":    "#c0c000",
	"brown":     "#a0522d",
	"lime":      "#80ff00",
	"olive":     "#808000",
	"orange":    "#ff8000",
	"pink":      "#ff80c0",
	"purple":    "#8000ff",
	"teal":      "#008080",
	"violet":    "#c080ff",
	"gray":      "#808080",
	"darkgray":  "#404040",
	"lightgray": "#c0c0c0",
	"black":     "#000000",
	"white":     "#ffffff",
}

// DefaultStyle returns the built-in palette with no per-activity colors.
func DefaultStyle() Style {
	return Style{
		Colors:  map[string]string{},
		Palette: defaultPalette,
	}
}

// LoadStyle decodes a YAML style file over the defaults. Per-activity
// colors merge with the defaults; a non-empty palette replaces it.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()

	buf, err := os.ReadFile(path)
	if err != nil {
		return s, pkg.ErrStyle.Wrap(err)
	}

	var loaded Style
	if err := yaml.Unmarshal(buf, &loaded); err != nil {
		return s, pkg.ErrStyle.Wrapf("%s", path).Wrap(err)
	}

	for name, color := range loaded.Colors {
		s.Colors[name] = color
	}
	if len(loaded.Palette) > 0 {
		s.Palette = loaded.Palette
	}

	return s, nil
}

// pick resolves the color token for an activity: its explicit entry if
// present, otherwise the palette slot for its legend ordinal.
func (s Style) pick(activity string, ordinal int) string {
	if c, ok := s.Colors[activity]; ok {
		return c
	}

	return s.Palette[ordinal%len(s.Palette)]
}

// LaTeXColor returns the xcolor token for an activity.
func (s Style) LaTeXColor(activity string, ordinal int) string {
	return s.pick(activity, ordinal)
}

// TermColor returns the terminal color for an activity, translating
// palette names to hex. Unrecognized names pass through untouched so
// hex triplets and ANSI indices work as written.
func (s Style) TermColor(activity string, ordinal int) lipgloss.Color {
	c := s.pick(activity, ordinal)
	if hex, ok := hexByName[c]; ok {
		c = hex
	}

	return lipgloss.Color(c)
}

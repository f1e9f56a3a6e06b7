package timeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/goinstr/pkg"
)

func TestDefaultStyle_PaletteCycles(t *testing.T) {
	s := DefaultStyle()

	n := len(s.Palette)
	if n == 0 {
		t.Fatal("default palette is empty")
	}
	if s.pick("anything", 0) != s.pick("something", n) {
		t.Error("palette did not wrap around")
	}
}

func TestStyle_ExplicitColorWins(t *testing.T) {
	s := DefaultStyle()
	s.Colors["COMPUTE"] = "teal"

	if got := s.LaTeXColor("COMPUTE", 3); got != "teal" {
		t.Errorf("LaTeXColor = %q, want teal", got)
	}
	if got := s.TermColor("COMPUTE", 3); got != lipgloss.Color("#008080") {
		t.Errorf("TermColor = %q, want translated teal", got)
	}
}

func TestStyle_HexPassthrough(t *testing.T) {
	s := DefaultStyle()
	s.Colors["IO"] = "#123456"

	if got := s.TermColor("IO", 0); got != lipgloss.Color("#123456") {
		t.Errorf("TermColor = %q, want #123456", got)
	}
}

func TestLoadStyle_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	src := "colors:\n  REDUCE: orange\npalette:\n  - blue\n  - pink\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}

	if s.Colors["REDUCE"] != "orange" {
		t.Errorf("colors not loaded: %v", s.Colors)
	}
	if len(s.Palette) != 2 || s.Palette[0] != "blue" {
		t.Errorf("palette not replaced: %v", s.Palette)
	}
}

func TestLoadStyle_Errors(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, pkg.ErrStyle) {
		t.Errorf("missing file = %v, want ErrStyle", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("colors: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyle(path); !errors.Is(err, pkg.ErrStyle) {
		t.Errorf("bad yaml = %v, want ErrStyle", err)
	}
}

package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDump = `Th   0 0.200000 COMPUTE_MATRIX BEGIN
Th   1 0.210000 COMPUTE_MATRIX BEGIN
Th   0 0.450000 COMPUTE_MATRIX END
Th   0 0.460000 REDUCE BEGIN
Th   1 0.500000 COMPUTE_MATRIX END
Th   0 0.550000 REDUCE END
`

func writeDump(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dump.log")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun_RenderANSI(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.txt")

	err := Run(context.Background(), func(int) {},
		writeDump(t), "-o", out, "--width", "40",
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	buf, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	chart := string(buf)
	if !strings.Contains(chart, "Th   0 ") || !strings.Contains(chart, "Th   1 ") {
		t.Errorf("chart missing thread rows:\n%s", chart)
	}
	if !strings.Contains(chart, "COMPUTE_MATRIX") {
		t.Errorf("chart missing legend:\n%s", chart)
	}
}

func TestRun_RenderLaTeX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.tex")

	err := Run(context.Background(), func(int) {},
		writeDump(t), "-o", out, "--format", "latex", "--labels",
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	buf, _ := os.ReadFile(out)
	if !strings.Contains(string(buf), "\\begin{tikztimingtable}") {
		t.Errorf("LaTeX preamble missing:\n%s", buf)
	}
}

func TestRun_FilterAndSelect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.txt")

	err := Run(context.Background(), func(int) {},
		writeDump(t), "-o", out,
		"--filter", `thread == 0`,
		"--silence", "REDUCE",
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	buf, _ := os.ReadFile(out)
	chart := string(buf)
	if strings.Contains(chart, "Th   1 ") {
		t.Errorf("filtered thread still charted:\n%s", chart)
	}
	if strings.Contains(chart, "REDUCE") {
		t.Errorf("silenced activity still charted:\n%s", chart)
	}
}

func TestRun_WidthBelowOneCell(t *testing.T) {
	err := Run(context.Background(), func(int) {},
		writeDump(t), "-o", filepath.Join(t.TempDir(), "chart.txt"),
		"--width", "0",
	)
	if err == nil || !strings.Contains(err.Error(), "width") {
		t.Fatalf("Run with zero width = %v, want width error", err)
	}
}

func TestRun_MissingInput(t *testing.T) {
	err := Run(context.Background(), func(int) {},
		filepath.Join(t.TempDir(), "absent.log"),
	)
	if err == nil {
		t.Fatal("Run with missing input did not fail")
	}
}

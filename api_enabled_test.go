//go:build goinstr

package goinstr

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestAPI_ScopedRecordsActivity(t *testing.T) {
	func() {
		defer ScopedNamed("api_scoped")()
		time.Sleep(time.Millisecond)
	}()

	kind := EventCode("api_scoped")
	d := AllActivity()[kind]
	if d.Invocations == 0 {
		t.Fatal("scoped activity not recorded")
	}
	if d.Running {
		t.Error("scoped activity still running after closure returned")
	}
}

func TestAPI_OrdinalsAndThreadCount(t *testing.T) {
	mine := MyThreadNumber()
	if count := ThreadsWithActivity(); mine >= count {
		t.Fatalf("ordinal %d not below thread count %d", mine, count)
	}

	if Activity(mine) == nil {
		t.Fatal("own activity map not resolvable by ordinal")
	}
}

func TestAPI_WorkersFoldIntoAllActivity(t *testing.T) {
	const workers = 4
	kind := EventCode("api_workers")

	before := AllActivity()[kind]

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			BeginActivity(kind)
			time.Sleep(10 * time.Millisecond)
			EndActivity(kind)
		}()
	}
	wg.Wait()

	d := AllActivity()[kind]
	if d.Invocations-before.Invocations != workers {
		t.Errorf("invocations delta = %d, want %d", d.Invocations-before.Invocations, workers)
	}
	if spent := d.Time - before.Time; spent < 0.03 || spent >= 1.0 {
		t.Errorf("time delta = %f, want within [0.03, 1.0)", spent)
	}
}

func TestAPI_LogDumpRoundTrip(t *testing.T) {
	ClearLog()
	RegisterFallbackPrinter(TimelinePrinter)
	defer RegisterFallbackPrinter(nil)

	TimedLogNamed("api_log", 0)
	TimedLogNamed("api_log", 1)

	var buf bytes.Buffer
	if err := DumpLog(&buf); err != nil {
		t.Fatalf("DumpLog: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("dump rendered %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "api_log BEGIN") || !strings.HasSuffix(lines[1], "api_log END") {
		t.Errorf("timeline grammar not produced: %v", lines)
	}

	buf.Reset()
	if err := DumpLog(&buf); err != nil {
		t.Fatalf("second DumpLog: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("second dump rendered %q, want nothing", buf.String())
	}
}

func TestAPI_InternRoundTrip(t *testing.T) {
	code := EventCode("api_intern")
	if again := EventCode("api_intern"); again != code {
		t.Fatalf("EventCode not stable: %d then %d", code, again)
	}
	if name, ok := EventName(code); !ok || name != "api_intern" {
		t.Fatalf("EventName(%d) = %q, %t", code, name, ok)
	}
}

func TestAPI_ClearAllActivityKeepsCount(t *testing.T) {
	BeginNamed("api_clear")
	EndNamed("api_clear")

	count := ThreadsWithActivity()
	ClearAllActivity()

	if got := ThreadsWithActivity(); got != count {
		t.Errorf("thread count changed by clear: %d then %d", count, got)
	}
	if len(Activity(MyThreadNumber())) != 0 {
		t.Error("own activity map not empty after clear")
	}
}

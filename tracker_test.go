package goinstr

import (
	"sync"
	"testing"
	"time"
)

// Each test function runs on its own goroutine, so every test here owns a
// fresh profile slot in the process-wide registry.

func TestTracker_MatchedPairsAccumulate(t *testing.T) {
	const kind EventKind = 101
	const pairs = 5

	var elapsed float64
	for range pairs {
		start := time.Now()
		beginActivity(kind)
		time.Sleep(2 * time.Millisecond)
		endActivity(kind)
		elapsed += time.Since(start).Seconds()
	}

	ed := instr.mine().events[kind]
	if ed == nil {
		t.Fatal("no event data recorded")
	}
	if ed.Invocations != pairs {
		t.Errorf("invocations = %d, want %d", ed.Invocations, pairs)
	}
	if ed.Running {
		t.Error("running after an even number of transitions")
	}
	if ed.Time <= 0 || ed.Time > elapsed {
		t.Errorf("accumulated time %f outside (0, %f]", ed.Time, elapsed)
	}
}

func TestTracker_TimeMonotonic(t *testing.T) {
	const kind EventKind = 102

	var last float64
	for range 3 {
		beginActivity(kind)
		endActivity(kind)

		now := instr.mine().events[kind].Time
		if now < last {
			t.Fatalf("accumulated time decreased: %f then %f", last, now)
		}
		last = now
	}
}

func TestTracker_NestingDifferentKinds(t *testing.T) {
	const outer, inner EventKind = 103, 104

	beginActivity(outer)
	beginActivity(inner)
	endActivity(inner)
	endActivity(outer)

	m := instr.mine().events
	if m[outer].Invocations != 1 || m[inner].Invocations != 1 {
		t.Error("nested distinct kinds not both recorded")
	}
}

func TestTracker_ReentrantSameKindPanics(t *testing.T) {
	const kind EventKind = 105

	beginActivity(kind)
	defer endActivity(kind)

	defer func() {
		if recover() == nil {
			t.Fatal("re-entrant begin did not panic")
		}
	}()
	beginActivity(kind)
}

func TestTracker_EndNeverBegunPanics(t *testing.T) {
	const kind EventKind = 106

	defer func() {
		if recover() == nil {
			t.Fatal("end of never-begun activity did not panic")
		}
	}()
	endActivity(kind)
}

func TestTracker_EndAlreadyEndedPanics(t *testing.T) {
	const kind EventKind = 107

	beginActivity(kind)
	endActivity(kind)

	defer func() {
		if recover() == nil {
			t.Fatal("double end did not panic")
		}
	}()
	endActivity(kind)
}

func TestTracker_ConcurrentWorkersAggregate(t *testing.T) {
	const kind EventKind = 108
	const workers = 4

	before := instr.fold()[kind]

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			beginActivity(kind)
			time.Sleep(10 * time.Millisecond)
			endActivity(kind)
		}()
	}
	wg.Wait()

	d := instr.fold()[kind]
	d.Invocations -= before.Invocations
	d.Time -= before.Time

	if d.Invocations != workers {
		t.Errorf("combined invocations = %d, want %d", d.Invocations, workers)
	}
	if d.Running {
		t.Error("combined running flag set after all workers ended")
	}
	if d.Time < 0.03 || d.Time >= 1.0 {
		t.Errorf("combined time = %f, want within [0.03, 1.0)", d.Time)
	}
}

func TestTracker_ClearAllIdempotence(t *testing.T) {
	const kind EventKind = 109

	beginActivity(kind)
	endActivity(kind)

	count := instr.size()
	instr.clear()

	if instr.size() != count {
		t.Errorf("thread count changed by clear: %d then %d", count, instr.size())
	}
	for s := range instr.slots.All() {
		if len(s.events) != 0 {
			t.Fatalf("slot %d not empty after clear", s.id)
		}
	}
}

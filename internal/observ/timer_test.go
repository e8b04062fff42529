package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("discover")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("rules", time.Millisecond)
		}()
	}
	wg.Wait()

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %+v", rep.Phases)
	}
	rules := rep.Phases[1]
	if rules.Name != "rules" || rules.Count != 4 || rules.DurationMS < 4 {
		t.Errorf("accumulated phase = %+v", rules)
	}
	// накопленные фазы не входят в total
	if rep.TotalMS != rep.Phases[0].DurationMS {
		t.Errorf("total %.3f, want %.3f", rep.TotalMS, rep.Phases[0].DurationMS)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "// 3 files") || !strings.Contains(sum, "// 4 files") {
		t.Errorf("summary:\n%s", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("y", time.Second)
	if rep := tm.Report(); len(rep.Phases) != 0 {
		t.Errorf("nil timer report = %+v", rep)
	}
}

package views

import (
	"sort"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestTracker_InvalidateAndDrain(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	tr.Invalidate(Dashboard, Plots)
	tr.Invalidate(Plots) // repeat collapses

	got := tr.Drain()
	sort.Strings(got)
	want := []string{Dashboard, Plots}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("Drain = %v; want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Drain[%d] = %q; want %q", i, got[i], want[i])
		}
	}

	if again := tr.Drain(); len(again) != 0 {
		t.Errorf("second Drain = %v; want empty", again)
	}
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Invalidate(Dashboard, DashboardContacts)
		}()
	}
	wg.Wait()

	if got := tr.Drain(); len(got) != 2 {
		t.Errorf("Drain = %v; want exactly 2 paths", got)
	}
}

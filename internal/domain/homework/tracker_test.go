package homework

import (
	"sync"
	"testing"
)

func TestStatusTracker_KeyedByHomework(t *testing.T) {
	tracker := NewStatusTracker()

	if got := tracker.LastSeen("hw1"); got != "" {
		t.Fatalf("expected empty status for unseen homework, got %q", got)
	}

	tracker.Remember("hw1", StatusApproved)
	tracker.Remember("hw2", StatusReviewing)

	if got := tracker.LastSeen("hw1"); got != StatusApproved {
		t.Errorf("hw1: expected %q, got %q", StatusApproved, got)
	}
	if got := tracker.LastSeen("hw2"); got != StatusReviewing {
		t.Errorf("hw2: expected %q, got %q", StatusReviewing, got)
	}
}

func TestStatusTracker_SnapshotSorted(t *testing.T) {
	tracker := NewStatusTracker()
	tracker.Remember("b", StatusRejected)
	tracker.Remember("a", StatusApproved)

	snapshot := tracker.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(snapshot))
	}
	if snapshot[0].HomeworkName != "a" || snapshot[1].HomeworkName != "b" {
		t.Errorf("expected entries sorted by name, got %+v", snapshot)
	}
}

// TestStatusTracker_ConcurrentAccess exercises the tracker from the poll loop
// and command handlers at once. Run with -race.
func TestStatusTracker_ConcurrentAccess(t *testing.T) {
	tracker := NewStatusTracker()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.Remember("hw", StatusReviewing)
		}()
		go func() {
			defer wg.Done()
			_ = tracker.Snapshot()
			_ = tracker.LastSeen("hw")
		}()
	}
	wg.Wait()

	if got := tracker.LastSeen("hw"); got != StatusReviewing {
		t.Errorf("expected %q, got %q", StatusReviewing, got)
	}
}

func TestStatus_IsKnown(t *testing.T) {
	for _, s := range []Status{StatusApproved, StatusReviewing, StatusRejected} {
		if !s.IsKnown() {
			t.Errorf("expected %q to be known", s)
		}
	}
	if Status("unknown_value").IsKnown() {
		t.Error("expected unknown_value to be unknown")
	}
}

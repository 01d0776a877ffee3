package homework

import (
	"sort"
	"sync"
)

// StatusTracker remembers the last notified status per homework name.
// It lives only in memory; a restart begins with an empty tracker.
type StatusTracker struct {
	mu       sync.RWMutex
	statuses map[string]Status
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{statuses: make(map[string]Status)}
}

// LastSeen returns the last notified status for name, or "" if none.
func (t *StatusTracker) LastSeen(name string) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.statuses[name]
}

// Remember records status as the last notified status for name.
func (t *StatusTracker) Remember(name string, status Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[name] = status
}

// TrackedStatus is a single entry of a tracker snapshot.
type TrackedStatus struct {
	HomeworkName string
	Status       Status
}

// Snapshot returns all tracked statuses ordered by homework name.
func (t *StatusTracker) Snapshot() []TrackedStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]TrackedStatus, 0, len(t.statuses))
	for name, status := range t.statuses {
		out = append(out, TrackedStatus{HomeworkName: name, Status: status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HomeworkName < out[j].HomeworkName })
	return out
}

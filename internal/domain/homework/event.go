// internal/domain/homework/event.go
package homework

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StatusEvent is a journal entry for a status change that was notified.
// Corresponds to the 'homework_status_events' table.
type StatusEvent struct {
	ID           uuid.UUID
	HomeworkName string
	Status       Status
	Message      string
	Delivered    bool // false when the Telegram send failed
	CreatedAt    time.Time
}

// NewStatusEvent creates a journal entry for n with a fresh ID.
func NewStatusEvent(n Notification, delivered bool, at time.Time) *StatusEvent {
	return &StatusEvent{
		ID:           uuid.New(),
		HomeworkName: n.HomeworkName,
		Status:       n.Status,
		Message:      n.Text,
		Delivered:    delivered,
		CreatedAt:    at,
	}
}

// EventRepository persists status change events. It is write-only from the
// poller's point of view; events are never read back to seed the tracker.
type EventRepository interface {
	SaveEvent(ctx context.Context, event *StatusEvent) error
	ListRecentEvents(ctx context.Context, limit int) ([]*StatusEvent, error)
}

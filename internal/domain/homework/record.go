// internal/domain/homework/record.go
package homework

import "fmt"

// Record is one element of the "homeworks" array as decoded from JSON.
// Only "status" and "homework_name" are interpreted; other keys are ignored.
type Record map[string]any

// Notification is the outcome of comparing a record against the last notified status.
type Notification struct {
	HomeworkName string
	Status       Status
	Text         string
	Changed      bool // false when Status equals the previously notified status
}

// Status returns the record's status and whether the key holds a string.
func (r Record) Status() (Status, bool) {
	raw, ok := r["status"]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return Status(s), true
}

// Name returns the record's homework_name and whether the key holds a string.
func (r Record) Name() (string, bool) {
	raw, ok := r["homework_name"]
	if !ok || raw == nil {
		return "", false
	}
	name, ok := raw.(string)
	return name, ok
}

// ParseStatus builds the notification for record given the last status notified
// for it. The returned Notification.Status is the status to remember.
func ParseStatus(record Record, lastSeen Status, verdicts Verdicts) (Notification, error) {
	status, ok := record.Status()
	if !ok {
		return Notification{}, ErrMissingStatus
	}

	verdict, ok := verdicts.Lookup(status)
	if !ok || !status.IsKnown() {
		return Notification{}, fmt.Errorf("%w: %q", ErrUnknownVerdict, status)
	}

	name, ok := record.Name()
	if !ok {
		return Notification{}, ErrMissingName
	}

	if status == lastSeen {
		return Notification{
			HomeworkName: name,
			Status:       lastSeen,
			Text:         fmt.Sprintf("Статус работы не изменился \"%s\". %s", name, verdict),
			Changed:      false,
		}, nil
	}

	return Notification{
		HomeworkName: name,
		Status:       status,
		Text:         fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict),
		Changed:      true,
	}, nil
}

package homework

import (
	"errors"
	"strings"
	"testing"
)

func TestParseStatus_ChangedThenUnchanged(t *testing.T) {
	verdicts := DefaultVerdicts()
	record := Record{"status": "approved", "homework_name": "hw1"}

	first, err := ParseStatus(record, "", verdicts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Changed {
		t.Error("expected first notification to report a change")
	}
	if first.Status != StatusApproved {
		t.Errorf("expected status %q, got %q", StatusApproved, first.Status)
	}
	if !strings.Contains(first.Text, "hw1") || !strings.Contains(first.Text, verdicts[StatusApproved]) {
		t.Errorf("message should contain name and verdict, got %q", first.Text)
	}
	if !strings.HasPrefix(first.Text, "Изменился статус") {
		t.Errorf("expected a status changed message, got %q", first.Text)
	}

	second, err := ParseStatus(record, first.Status, verdicts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Changed {
		t.Error("expected second notification to report no change")
	}
	if second.Status != StatusApproved {
		t.Errorf("last seen status should stay %q, got %q", StatusApproved, second.Status)
	}
	if !strings.HasPrefix(second.Text, "Статус работы не изменился") {
		t.Errorf("expected a status unchanged message, got %q", second.Text)
	}
}

func TestParseStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{
			name:    "missing status",
			record:  Record{"homework_name": "hw1"},
			wantErr: ErrMissingStatus,
		},
		{
			name:    "null status",
			record:  Record{"status": nil, "homework_name": "hw1"},
			wantErr: ErrMissingStatus,
		},
		{
			name:    "unknown status",
			record:  Record{"status": "unknown_value", "homework_name": "hw1"},
			wantErr: ErrUnknownVerdict,
		},
		{
			name:    "missing name",
			record:  Record{"status": "reviewing"},
			wantErr: ErrMissingName,
		},
		{
			// status is checked before the name
			name:    "missing both",
			record:  Record{},
			wantErr: ErrMissingStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.record, "", DefaultVerdicts())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseStatus_StatusTransition(t *testing.T) {
	n, err := ParseStatus(Record{"status": "rejected", "homework_name": "hw2"}, StatusReviewing, DefaultVerdicts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.Changed || n.Status != StatusRejected {
		t.Errorf("expected change to rejected, got %+v", n)
	}
	if n.HomeworkName != "hw2" {
		t.Errorf("expected homework name hw2, got %q", n.HomeworkName)
	}
}

func TestParseStatus_CustomVerdicts(t *testing.T) {
	verdicts := DefaultVerdicts()
	verdicts[StatusReviewing] = "On review"

	n, err := ParseStatus(Record{"status": "reviewing", "homework_name": "hw1"}, "", verdicts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(n.Text, "On review") {
		t.Errorf("expected custom verdict text, got %q", n.Text)
	}
}

package telegram

import (
	"strings"
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"

	"gopkg.in/telebot.v3"
)

func TestIsAllowedChat(t *testing.T) {
	tests := []struct {
		name   string
		chat   *telebot.Chat
		chatID string
		want   bool
	}{
		{"matching numeric id", &telebot.Chat{ID: 12345}, "12345", true},
		{"other numeric id", &telebot.Chat{ID: 999}, "12345", false},
		{"negative group id", &telebot.Chat{ID: -1001}, "-1001", true},
		{"matching username", &telebot.Chat{ID: 1, Username: "Student"}, "@student", true},
		{"other username", &telebot.Chat{ID: 1, Username: "someone"}, "@student", false},
		{"nil chat", nil, "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedChat(tt.chat, tt.chatID); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatStatusReport(t *testing.T) {
	cursor := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Unix()

	empty := FormatStatusReport(nil, cursor)
	if !strings.Contains(empty, "Изменений статуса пока не было") {
		t.Errorf("expected empty-state text, got %q", empty)
	}
	if !strings.Contains(empty, "2024-03-01 10:00:00 UTC") {
		t.Errorf("expected cursor time in report, got %q", empty)
	}

	report := FormatStatusReport([]homework.TrackedStatus{
		{HomeworkName: "hw1", Status: homework.StatusApproved},
		{HomeworkName: "hw2", Status: homework.StatusReviewing},
	}, cursor)
	if !strings.Contains(report, "- hw1: approved") || !strings.Contains(report, "- hw2: reviewing") {
		t.Errorf("expected both homeworks in report, got %q", report)
	}
}

func TestFormatHistory(t *testing.T) {
	if got := FormatHistory(nil); got != "Журнал уведомлений пуст." {
		t.Errorf("unexpected empty history text: %q", got)
	}

	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	got := FormatHistory([]*homework.StatusEvent{
		{HomeworkName: "hw1", Status: homework.StatusRejected, Delivered: true, CreatedAt: at},
		{HomeworkName: "hw2", Status: homework.StatusApproved, Delivered: false, CreatedAt: at},
	})
	if !strings.Contains(got, "2024-03-01 10:30 hw1: rejected (доставлено)") {
		t.Errorf("expected delivered event line, got %q", got)
	}
	if !strings.Contains(got, "hw2: approved (не доставлено)") {
		t.Errorf("expected undelivered event line, got %q", got)
	}
}

func TestChatRecipient(t *testing.T) {
	if got := chatRecipient("@student").Recipient(); got != "@student" {
		t.Errorf("expected @student, got %q", got)
	}
}

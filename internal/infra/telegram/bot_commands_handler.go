// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const historyLimit = 10

// StatusReporter exposes the poller state shown by /status.
type StatusReporter interface {
	Snapshot() []homework.TrackedStatus
	Cursor() int64
}

// RegisterBotCommands registers /start, /help, /status and /history.
// Commands are answered only in the configured chat. history may be nil when
// the journal is disabled.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	chatID string,
	reporter StatusReporter,
	history homework.EventRepository,
	baseLogger *logrus.Entry, // For contextual logging
) {
	commandLogger := baseLogger.WithField("handler_group", "commands")

	guard := func(command string, next func(c telebot.Context, logCtx *logrus.Entry) error) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			logCtx := commandLogger.WithField("command", command)
			if c.Chat() != nil {
				logCtx = logCtx.WithField("chat_id", c.Chat().ID)
			}
			if !isAllowedChat(c.Chat(), chatID) {
				logCtx.Warn("Command from unknown chat ignored")
				return nil
			}
			logCtx.Info("Processing command")
			return next(c, logCtx)
		}
	}

	b.Handle("/start", guard("/start", func(c telebot.Context, _ *logrus.Entry) error {
		return c.Send("Привет! Я слежу за статусом проверки домашних работ и сообщу, когда он изменится. /help - список команд.")
	}))

	b.Handle("/help", guard("/help", func(c telebot.Context, _ *logrus.Entry) error {
		var helpText strings.Builder
		helpText.WriteString("Доступные команды:\n\n")
		helpText.WriteString("/status - последние известные статусы работ.\n")
		helpText.WriteString("/history - последние отправленные уведомления.\n")
		helpText.WriteString("/help - показать это сообщение.")
		return c.Send(helpText.String())
	}))

	b.Handle("/status", guard("/status", func(c telebot.Context, _ *logrus.Entry) error {
		return c.Send(FormatStatusReport(reporter.Snapshot(), reporter.Cursor()))
	}))

	b.Handle("/history", guard("/history", func(c telebot.Context, logCtx *logrus.Entry) error {
		if history == nil {
			return c.Send("Журнал уведомлений отключен.")
		}
		events, err := history.ListRecentEvents(ctx, historyLimit)
		if err != nil {
			logCtx.WithError(err).Error("Failed to list recent events")
			return c.Send("Не удалось получить журнал уведомлений. Попробуйте позже.")
		}
		return c.Send(FormatHistory(events))
	}))
}

func isAllowedChat(chat *telebot.Chat, chatID string) bool {
	if chat == nil {
		return false
	}
	if strings.HasPrefix(chatID, "@") {
		return strings.EqualFold(chat.Username, strings.TrimPrefix(chatID, "@"))
	}
	return strconv.FormatInt(chat.ID, 10) == chatID
}

// FormatStatusReport renders the /status reply.
func FormatStatusReport(statuses []homework.TrackedStatus, cursor int64) string {
	var report strings.Builder
	if len(statuses) == 0 {
		report.WriteString("Изменений статуса пока не было.\n")
	} else {
		report.WriteString("Последние статусы:\n")
		for _, s := range statuses {
			report.WriteString(fmt.Sprintf("- %s: %s\n", s.HomeworkName, s.Status))
		}
	}
	report.WriteString(fmt.Sprintf("Проверяю изменения с %s.", time.Unix(cursor, 0).UTC().Format("2006-01-02 15:04:05 MST")))
	return report.String()
}

// FormatHistory renders the /history reply.
func FormatHistory(events []*homework.StatusEvent) string {
	if len(events) == 0 {
		return "Журнал уведомлений пуст."
	}
	var out strings.Builder
	out.WriteString("Последние уведомления:\n")
	for _, e := range events {
		delivered := "доставлено"
		if !e.Delivered {
			delivered = "не доставлено"
		}
		out.WriteString(fmt.Sprintf("%s %s: %s (%s)\n", e.CreatedAt.UTC().Format("2006-01-02 15:04"), e.HomeworkName, e.Status, delivered))
	}
	return out.String()
}

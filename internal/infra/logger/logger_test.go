package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNew_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "warn", Environment: "production"}, &buf)

	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter in production, got %T", log.Formatter)
	}

	log.Warn("disk almost full")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "disk almost full" {
		t.Errorf("unexpected msg field: %v", line["msg"])
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&config.AppConfig{LogLevel: "chatty", Environment: "development"}, &buf)

	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected info level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("expected text formatter in development, got %T", log.Formatter)
	}
	if !strings.Contains(buf.String(), "Invalid log level") {
		t.Errorf("expected a warning about the level, got %q", buf.String())
	}
}

func TestCritical(t *testing.T) {
	log, hook := test.NewNullLogger()

	Critical(logrus.NewEntry(log), errors.New("endpoint down"), "Program failure")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.ErrorLevel {
		t.Errorf("expected error level, got %s", entry.Level)
	}
	if entry.Data["severity"] != "critical" {
		t.Errorf("expected severity=critical, got %v", entry.Data["severity"])
	}
	if entry.Message != "Program failure: endpoint down" {
		t.Errorf("unexpected message %q", entry.Message)
	}
}

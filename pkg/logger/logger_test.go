package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewLoggerLevelAndFormat(t *testing.T) {
	log := NewLogger("warn", "text")
	if log.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", log.Formatter)
	}

	log = NewLogger("nonsense", "json")
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected fallback info level, got %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected json formatter, got %T", log.Formatter)
	}
}

func TestLoggerFields(t *testing.T) {
	log := NewLogger("debug", "json")
	hook := test.NewLocal(log.Logger)

	log.WithFields(map[string]interface{}{"profile_id": "abc"}).Info("profile approved")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Data["profile_id"] != "abc" {
		t.Fatalf("expected profile_id field, got %v", entry.Data)
	}
}

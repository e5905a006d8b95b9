package util

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger("debug", false)
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}

	logger = NewLogger("invalid", false)
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %s", logger.GetLevel())
	}

	logger = NewLogger("", false)
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info fallback for empty level, got %s", logger.GetLevel())
	}
}

func TestNewLoggerPretty(t *testing.T) {
	logger := NewLogger("warn", true)
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", logger.GetLevel())
	}
}

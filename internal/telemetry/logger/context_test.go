package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  "info",
		Format: "json",
		Output: &buf,
	}

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)

	retrieved := FromContext(ctx)
	if retrieved == nil {
		t.Fatal("FromContext returned nil")
	}

	retrieved.Info("test message")

	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestWithLoadID(t *testing.T) {
	ctx := WithLoadID(context.Background(), "01HZX3V5Q2J8K9M4N6P7R8S9T0")

	if got := LoadIDFromContext(ctx); got != "01HZX3V5Q2J8K9M4N6P7R8S9T0" {
		t.Errorf("LoadIDFromContext() = %q, want %q", got, "01HZX3V5Q2J8K9M4N6P7R8S9T0")
	}
}

func TestLoadIDFromContext_Empty(t *testing.T) {
	if got := LoadIDFromContext(context.Background()); got != "" {
		t.Errorf("LoadIDFromContext() = %q, want empty string", got)
	}
}

func TestL_WithLoadID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	ctx = WithLoadID(ctx, "load-1")

	L(ctx).Info("settings reloaded")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if id, ok := logEntry["load_id"].(string); !ok || id != "load-1" {
		t.Errorf("Expected load_id='load-1', got %v", logEntry["load_id"])
	}
}

func TestL_NoLoadID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	L(WithLogger(context.Background(), l)).Info("test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if _, ok := logEntry["load_id"]; ok {
		t.Error("Should not have load_id when not set")
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestRedactSensitive_SensitiveKeyName(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("connecting", "db_password", "hunter2", "api_token", "abc", "host", "db.local")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["db_password"] != RedactedValue {
		t.Errorf("db_password = %v, want redacted", logEntry["db_password"])
	}
	if logEntry["api_token"] != RedactedValue {
		t.Errorf("api_token = %v, want redacted", logEntry["api_token"])
	}
	if logEntry["host"] != "db.local" {
		t.Errorf("host = %v, want db.local", logEntry["host"])
	}
}

func TestRedactSensitive_EmptyValueKept(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("no secret configured", "secret", "")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["secret"] != "" {
		t.Errorf("empty secret should stay empty, got %v", logEntry["secret"])
	}
}

func TestRedactSensitive_Group(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	Slog(l).WithGroup("database").Info("db", "password", "hunter2")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	group, _ := logEntry["database"].(map[string]any)
	if group["password"] != RedactedValue {
		t.Errorf("grouped password = %v, want redacted", group["password"])
	}
}

func TestRedactMap(t *testing.T) {
	in := map[string]any{
		"name":     "svc",
		"password": "hunter2",
		"port":     float64(5080),
		"api_key":  float64(1234),
		"database": map[string]any{
			"host":   "db.local",
			"secret": "s3cr3t",
		},
		"tokens":       []any{"a", "b"},
		"empty_secret": "",
		"auth":         nil,
	}

	want := map[string]any{
		"name":     "svc",
		"password": RedactedValue,
		"port":     float64(5080),
		"api_key":  RedactedValue,
		"database": map[string]any{
			"host":   "db.local",
			"secret": RedactedValue,
		},
		"tokens":       []any{RedactedValue, RedactedValue},
		"empty_secret": "",
		"auth":         nil,
	}

	got := RedactMap(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RedactMap() = %v, want %v", got, want)
	}

	if in["password"] != "hunter2" {
		t.Error("RedactMap() must not modify its input")
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"DB_PASSWORD", true},
		{"client_secret", true},
		{"access_token", true},
		{"api_key", true},
		{"credentials", true},
		{"authorization", true},
		{"database_dsn", true},
		{"host", false},
		{"port", false},
		{"testint", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsSensitiveKey(tt.key); got != tt.want {
				t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

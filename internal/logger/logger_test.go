package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "table scored",
			fields:  Fields{"position": "QB"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := buf.Len()

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > before
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"position": "DST", "status": 503}, errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v (line %q)", err, buf.String())
	}

	if entry["msg"] != "fetch failed" {
		t.Errorf("msg = %v, want 'fetch failed'", entry["msg"])
	}
	if entry["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", entry["level"])
	}
	if entry["position"] != "DST" {
		t.Errorf("position = %v, want DST", entry["position"])
	}
	if entry["status"] != float64(503) {
		t.Errorf("status = %v, want 503", entry["status"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With(Fields{"run_id": "abc"})

	logger.Info("league built", nil)

	if !strings.Contains(buf.String(), `"run_id":"abc"`) {
		t.Errorf("output %q missing run_id", buf.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, LevelDebug, true},
		{"info logs at debug", LevelDebug, LevelInfo, true},
		{"debug doesn't log at info", LevelInfo, LevelDebug, false},
		{"warn doesn't log at error", LevelError, LevelWarn, false},
		{"error always logs", LevelDebug, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			logger.log(tt.logLevel, "test", nil, nil)

			if logged := buf.Len() > 0; logged != tt.shouldLog {
				t.Errorf("shouldLog = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)
	child := logger.With(Fields{"k": "v"})

	logger.SetLevel(LevelDebug)
	child.Debug("now visible", nil)

	if buf.Len() == 0 {
		t.Error("SetLevel() did not apply to derived logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(prev)

	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("logged %d lines, want 4", got)
	}
}

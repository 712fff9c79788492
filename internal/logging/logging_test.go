package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	// Create a buffer to capture output
	var buf bytes.Buffer

	// Save original logger
	oldLogger := defaultLogger

	// Create a new logger that writes to the buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	// Execute function
	f()

	// Restore original logger
	defaultLogger = oldLogger

	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{
			name:   "Debug level JSON format",
			level:  LevelDebug,
			format: FormatJSON,
		},
		{
			name:   "Info level JSON format",
			level:  LevelInfo,
			format: FormatJSON,
		},
		{
			name:   "Warn level JSON format",
			level:  LevelWarn,
			format: FormatJSON,
		},
		{
			name:   "Error level JSON format",
			level:  LevelError,
			format: FormatJSON,
		},
		{
			name:   "Info level Text format",
			level:  LevelInfo,
			format: FormatText,
		},
		{
			name:   "Default level (invalid value)",
			level:  Level(999),
			format: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			logger := GetLogger()
			if logger == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}

	// Restore defaults for other tests
	InitLogger(LevelInfo, FormatJSON)
}

func TestWithRunID(t *testing.T) {
	ctx := context.Background()
	runID := "test-run-id-123"

	newCtx := WithRunID(ctx, runID)

	retrievedID := GetRunID(newCtx)
	if retrievedID != runID {
		t.Errorf("Expected run ID %s, got %s", runID, retrievedID)
	}
}

func TestGetRunID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "Context with run ID",
			ctx:      context.WithValue(context.Background(), RunIDKey, "test-id"),
			expected: "test-id",
		},
		{
			name:     "Context without run ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "Context with wrong type value",
			ctx:      context.WithValue(context.Background(), RunIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetRunID(tt.ctx)
			if result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "Debug",
			fn: func() {
				Debug("debug message", "key", "value")
			},
		},
		{
			name: "Info",
			fn: func() {
				Info("info message", "key", "value")
			},
		},
		{
			name: "Warn",
			fn: func() {
				Warn("warning message", "key", "value")
			},
		},
		{
			name: "Error",
			fn: func() {
				Error("error message", "key", "value")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if output == "" {
				t.Error("Expected log output, got empty string")
			}
		})
	}
}

func TestContextLoggingFunctions(t *testing.T) {
	ctx := WithRunID(context.Background(), "test-run-id")

	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "DebugContext",
			fn: func() {
				DebugContext(ctx, "debug message", "key", "value")
			},
		},
		{
			name: "InfoContext",
			fn: func() {
				InfoContext(ctx, "info message", "key", "value")
			},
		},
		{
			name: "WarnContext",
			fn: func() {
				WarnContext(ctx, "warning message", "key", "value")
			},
		},
		{
			name: "ErrorContext",
			fn: func() {
				ErrorContext(ctx, "error message", "key", "value")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.fn)
			if output == "" {
				t.Error("Expected log output, got empty string")
			}
			if !strings.Contains(output, "test-run-id") {
				t.Error("Expected output to contain run ID")
			}
		})
	}
}

func TestFileParsed(t *testing.T) {
	output := captureLogOutput(func() {
		FileParsed("corpus/gen.usfm", 412, 30*time.Millisecond)
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "corpus/gen.usfm") {
		t.Error("Expected output to contain path")
	}
	if !strings.Contains(output, "file_parsed") {
		t.Error("Expected output to contain file_parsed")
	}
}

func TestBatchStarted(t *testing.T) {
	output := captureLogOutput(func() {
		BatchStarted("run-1", 66, 8)
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "batch_started") {
		t.Error("Expected output to contain batch_started")
	}
	if !strings.Contains(output, "run-1") {
		t.Error("Expected output to contain run ID")
	}
}

func TestBatchFinished(t *testing.T) {
	output := captureLogOutput(func() {
		BatchFinished("run-2", 66, 14023, 300*time.Millisecond, "root", "corpus")
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "batch_finished") {
		t.Error("Expected output to contain batch_finished")
	}
	if !strings.Contains(output, "root") {
		t.Error("Expected output to contain custom args")
	}
}

func TestPathSkipped(t *testing.T) {
	output := captureLogOutput(func() {
		PathSkipped("/no/such/path")
	})

	if output == "" {
		t.Error("Expected log output, got empty string")
	}
	if !strings.Contains(output, "path_skipped") {
		t.Error("Expected output to contain path_skipped")
	}
	if !strings.Contains(output, "/no/such/path") {
		t.Error("Expected output to contain path")
	}
}

func TestContextKeyType(t *testing.T) {
	// Test that ContextKey is a distinct type
	var key ContextKey = "test"
	if string(key) != "test" {
		t.Errorf("Expected key to be 'test', got '%s'", string(key))
	}

	// Verify RunIDKey constant
	if RunIDKey != "run_id" {
		t.Errorf("Expected RunIDKey to be 'run_id', got '%s'", RunIDKey)
	}
}

func TestLevelConstants(t *testing.T) {
	// Verify level constants are in correct order
	if LevelDebug >= LevelInfo {
		t.Error("Expected LevelDebug < LevelInfo")
	}
	if LevelInfo >= LevelWarn {
		t.Error("Expected LevelInfo < LevelWarn")
	}
	if LevelWarn >= LevelError {
		t.Error("Expected LevelWarn < LevelError")
	}
}

func TestFormatConstants(t *testing.T) {
	// Verify format constants exist
	if FormatJSON == FormatText {
		t.Error("Expected FormatJSON != FormatText")
	}
}

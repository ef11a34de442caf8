package logging

import (
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "secret is redacted",
			input:    "fec-api-key-12345",
			expected: "[REDACTED]",
		},
		{
			name:     "empty secret is still redacted",
			input:    "",
			expected: "[REDACTED]",
		},
		{
			name:     "complex secret is redacted",
			input:    "DEMO_KEY!@#$%",
			expected: "[REDACTED]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Secret(tt.input).String()
			if result != tt.expected {
				t.Errorf("Secret(%q).String() = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSecretGoString(t *testing.T) {
	// %#v formatting must not leak either.
	goString := Secret("fec-api-key-12345").GoString()
	if goString != "[REDACTED]" {
		t.Errorf("Expected [REDACTED] for GoString, got %s", goString)
	}
}

func TestLoggerLevels(t *testing.T) {
	// Test that logger methods exist and can be called
	logger := New(true, true)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")
	logger.Debug("debug message")
}

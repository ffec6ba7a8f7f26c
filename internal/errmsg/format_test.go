//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpQuotesSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "load operation",
			op:       OpQuotesLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load quotes: permission denied",
		},
		{
			name:     "save operation",
			op:       OpQuotesSave,
			err:      errors.New("context deadline exceeded"),
			expected: "Failed to save quotes: context deadline exceeded",
		},
		{
			name:     "initialize operation",
			op:       OpInitialize,
			err:      errors.New("bad config"),
			expected: "Failed to initialize application: bad config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpQuoteAdd,
			context:  "Anon",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpQuoteAdd,
			context:  "",
			err:      errors.New("invalid"),
			expected: "Failed to add quote: invalid",
		},
		{
			name:     "with context",
			op:       OpQuotesSave,
			context:  "/data/quotations.json",
			err:      errors.New("disk full"),
			expected: "Failed to save quotes '/data/quotations.json': disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

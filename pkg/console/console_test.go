//go:build !integration

package console

import (
	"strings"
	"testing"
)

func TestMessageFormatting(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		prefix string
	}{
		{name: "error", format: FormatErrorMessage, prefix: "✗"},
		{name: "warning", format: FormatWarningMessage, prefix: "⚠"},
		{name: "success", format: FormatSuccessMessage, prefix: "✓"},
		{name: "info", format: FormatInfoMessage, prefix: "ℹ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("something happened")
			if !strings.Contains(out, tt.prefix) {
				t.Errorf("formatted message %q missing prefix %q", out, tt.prefix)
			}
			if !strings.Contains(out, "something happened") {
				t.Errorf("formatted message %q missing original text", out)
			}
		})
	}
}

func TestFormatVerboseMessagePreservesText(t *testing.T) {
	out := FormatVerboseMessage("checking references")
	if !strings.Contains(out, "checking references") {
		t.Errorf("FormatVerboseMessage dropped text: %q", out)
	}
}

func TestFormatCountSummary(t *testing.T) {
	tests := []struct {
		errors   int
		warnings int
		expected string
	}{
		{0, 0, "0 errors, 0 warnings"},
		{1, 0, "1 error, 0 warnings"},
		{2, 1, "2 errors, 1 warning"},
		{1, 1, "1 error, 1 warning"},
	}

	for _, tt := range tests {
		if got := FormatCountSummary(tt.errors, tt.warnings); got != tt.expected {
			t.Errorf("FormatCountSummary(%d, %d) = %q, want %q", tt.errors, tt.warnings, got, tt.expected)
		}
	}
}

// Package console formats messages for terminal output with consistent
// severity prefixes and colors. Styling degrades to plain text when the
// output stream is not a terminal.
package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/githubnext/agentlint/pkg/styles"
	"github.com/githubnext/agentlint/pkg/tty"
)

var colorEnabled = tty.IsStderrTerminal() && os.Getenv("NO_COLOR") == ""

// FormatErrorMessage formats an error message with the ✗ prefix.
func FormatErrorMessage(message string) string {
	return render(styles.Error, "✗", message)
}

// FormatWarningMessage formats a warning message with the ⚠ prefix.
func FormatWarningMessage(message string) string {
	return render(styles.Warning, "⚠", message)
}

// FormatSuccessMessage formats a success message with the ✓ prefix.
func FormatSuccessMessage(message string) string {
	return render(styles.Success, "✓", message)
}

// FormatInfoMessage formats an informational message with the ℹ prefix.
func FormatInfoMessage(message string) string {
	return render(styles.Info, "ℹ", message)
}

// FormatVerboseMessage formats a low-priority message in muted styling with
// no prefix.
func FormatVerboseMessage(message string) string {
	if !colorEnabled {
		return message
	}
	return styles.Muted.Render(message)
}

// FormatCountSummary formats an "N errors, M warnings" trailer for a
// validation run.
func FormatCountSummary(errors, warnings int) string {
	return fmt.Sprintf("%d %s, %d %s",
		errors, pluralize("error", errors),
		warnings, pluralize("warning", warnings))
}

func render(style lipgloss.Style, prefix, message string) string {
	if !colorEnabled {
		return prefix + " " + message
	}
	return style.Render(prefix+" "+message)
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

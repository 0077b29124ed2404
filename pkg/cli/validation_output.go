package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/githubnext/agentlint/pkg/console"
	"github.com/githubnext/agentlint/pkg/validation"
)

// jsonRunResult is the machine-readable shape of a validation run.
type jsonRunResult struct {
	Valid          bool                    `json:"valid"`
	FilesValidated int                     `json:"files_validated"`
	ErrorCount     int                     `json:"error_count"`
	WarningCount   int                     `json:"warning_count"`
	Files          []validation.FileResult `json:"files"`
}

// RenderRunResult writes a validation run to w, either as styled console
// output or as JSON when configured.
func RenderRunResult(w io.Writer, run validation.RunResult, config ValidateConfig) error {
	if config.JSONOutput {
		return renderJSON(w, run, config)
	}
	renderConsole(w, run, config)
	return nil
}

func renderJSON(w io.Writer, run validation.RunResult, config ValidateConfig) error {
	out := jsonRunResult{
		Valid:          run.Valid(config.Strict),
		FilesValidated: run.FilesValidated(),
		ErrorCount:     run.TotalErrors(),
		WarningCount:   run.TotalWarnings(),
		Files:          run.Files,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func renderConsole(w io.Writer, run validation.RunResult, config ValidateConfig) {
	for i := range run.Files {
		result := &run.Files[i]
		if result.Valid() && len(result.Warnings) == 0 {
			if config.Verbose {
				fmt.Fprintln(w, console.FormatSuccessMessage(result.File))
			}
			continue
		}

		for _, issue := range result.Errors {
			fmt.Fprintln(w, console.FormatErrorMessage(formatIssue(issue)))
		}
		for _, issue := range result.Warnings {
			fmt.Fprintln(w, console.FormatWarningMessage(formatIssue(issue)))
		}
	}

	summary := fmt.Sprintf("%d files validated: %s",
		run.FilesValidated(),
		console.FormatCountSummary(run.TotalErrors(), run.TotalWarnings()))
	if run.Valid(config.Strict) {
		fmt.Fprintln(w, console.FormatSuccessMessage(summary))
		return
	}
	fmt.Fprintln(w, console.FormatErrorMessage(summary))
}

// formatIssue renders one issue as file[:line] [rule] message.
func formatIssue(issue validation.Issue) string {
	location := issue.File
	if issue.Line > 0 {
		location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
	}
	if issue.RuleID == "" {
		return fmt.Sprintf("%s: %s", location, issue.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", location, issue.RuleID, issue.Message)
}

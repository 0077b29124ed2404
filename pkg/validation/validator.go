package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/iter"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/fileutil"
	"github.com/githubnext/agentlint/pkg/logger"
	"github.com/githubnext/agentlint/pkg/parser"
)

var validatorLog = logger.New("validation:validator")

// Options configures a validation run. The zero value validates with no
// ignored rules and no reference checking.
type Options struct {
	// IgnoreRules lists rule IDs whose issues are discarded at generation
	// time: never counted, never rendered.
	IgnoreRules []string
	// CheckReferences enables resolving relative markdown links in the body
	// against the file system.
	CheckReferences bool
}

// FileResult is the outcome of validating one agent definition file.
// Validity is derived from the error list, never stored separately.
type FileResult struct {
	File     string  `json:"file"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Valid reports whether the file passed: true iff there are zero errors.
// Warnings never affect per-file validity.
func (r *FileResult) Valid() bool {
	return len(r.Errors) == 0
}

// RunResult aggregates file results across one validation run.
type RunResult struct {
	Files []FileResult `json:"files"`
}

// FilesValidated returns the number of files in the run.
func (r *RunResult) FilesValidated() int {
	return len(r.Files)
}

// TotalErrors returns the error count across all files.
func (r *RunResult) TotalErrors() int {
	total := 0
	for i := range r.Files {
		total += len(r.Files[i].Errors)
	}
	return total
}

// TotalWarnings returns the warning count across all files.
func (r *RunResult) TotalWarnings() int {
	total := 0
	for i := range r.Files {
		total += len(r.Files[i].Warnings)
	}
	return total
}

// Valid reports whether the whole run passed. In strict mode warnings also
// fail the run; the escalation applies at the run level only, individual
// FileResults are unaffected.
func (r *RunResult) Valid(strict bool) bool {
	for i := range r.Files {
		if !r.Files[i].Valid() {
			return false
		}
		if strict && len(r.Files[i].Warnings) > 0 {
			return false
		}
	}
	return true
}

// ValidateFile validates one agent definition file on disk. Structural
// failures (unreadable file, oversize file, missing or malformed
// frontmatter) terminate validation for the file with a single error; field
// and body validation run only on a successfully parsed document. The
// function never fails: collaborator errors convert into issues.
func ValidateFile(path string, opts Options) FileResult {
	validatorLog.Printf("Validating file: %s", path)
	result := FileResult{File: path}
	c := NewCollector(path, opts.IgnoreRules)

	size, err := fileutil.FileSize(path)
	if err != nil {
		c.AddStructural(fmt.Sprintf("cannot read file: %s", err))
		return finish(c, result)
	}
	if size > constants.MaxAgentFileSize {
		c.AddStructural(fmt.Sprintf("file size %d bytes exceeds the maximum of %d bytes", size, constants.MaxAgentFileSize))
		return finish(c, result)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		c.AddStructural(fmt.Sprintf("cannot read file: %s", err))
		return finish(c, result)
	}

	validateContent(c, string(content), filepath.Dir(path), opts)
	return finish(c, result)
}

// ValidateContent validates in-memory content as if it were the file at
// path. The size precondition is assumed already checked by the caller.
func ValidateContent(path, content string, opts Options) FileResult {
	result := FileResult{File: path}
	c := NewCollector(path, opts.IgnoreRules)
	validateContent(c, content, filepath.Dir(path), opts)
	return finish(c, result)
}

// validateContent runs the parse / field-validation / body-validation
// pipeline into the collector. A parse failure is terminal: field values are
// undefined without a parsed header, so no field validation is attempted.
func validateContent(c *Collector, content, dir string, opts Options) {
	doc, err := parser.ExtractFrontmatter(content)
	if err != nil {
		var malformed *parser.MalformedFrontmatterError
		switch {
		case errors.Is(err, parser.ErrFrontmatterMissing):
			c.Add(RuleFrontmatterRequired, "")
		case errors.As(err, &malformed):
			c.Add(RuleFrontmatterValid, malformed.Detail)
		default:
			c.Add(RuleFrontmatterValid, err.Error())
		}
		return
	}

	ValidateFields(c, doc.Fields)
	ValidateBody(c, doc.Body, BodyOptions{
		CheckReferences: opts.CheckReferences,
		Dir:             dir,
		LineOffset:      doc.BodyOffset,
	})
}

func finish(c *Collector, result FileResult) FileResult {
	result.Errors = c.Errors()
	result.Warnings = c.Warnings()
	validatorLog.Printf("Validation finished: file=%s, errors=%d, warnings=%d", result.File, len(result.Errors), len(result.Warnings))
	return result
}

// ValidateFiles validates files sequentially and aggregates the results in
// input order.
func ValidateFiles(paths []string, opts Options) RunResult {
	validatorLog.Printf("Validating %d files sequentially", len(paths))
	run := RunResult{Files: make([]FileResult, 0, len(paths))}
	for _, path := range paths {
		run.Files = append(run.Files, ValidateFile(path, opts))
	}
	return run
}

// ValidateFilesParallel validates files concurrently. Files share no mutable
// state, so per-file validation is safe to parallelize; results keep input
// order.
func ValidateFilesParallel(paths []string, opts Options) RunResult {
	validatorLog.Printf("Validating %d files in parallel", len(paths))
	results := iter.Map(paths, func(path *string) FileResult {
		return ValidateFile(*path, opts)
	})
	return RunResult{Files: results}
}

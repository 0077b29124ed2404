// Package parser extracts and decodes the YAML frontmatter block from agent
// definition files. It is the only package that touches the YAML library;
// the validation engine consumes the decoded map and classified errors.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/logger"
)

var log = logger.New("parser:frontmatter")

// Document is the decoded form of an agent definition file: the frontmatter
// mapping plus the markdown body. It is read-only to validators.
type Document struct {
	Fields map[string]any
	Body   string
	// BodyOffset is the number of file lines preceding the body: the two
	// delimiter lines plus the frontmatter lines.
	BodyOffset int
}

// ErrFrontmatterMissing indicates the file has no frontmatter block: the
// opening delimiter is absent or no closing delimiter was found.
var ErrFrontmatterMissing = errors.New("no frontmatter block found")

// MalformedFrontmatterError indicates the frontmatter block exists but could
// not be decoded into a mapping, either because the YAML is syntactically
// invalid or because it decodes to a scalar or sequence.
type MalformedFrontmatterError struct {
	Detail string
}

func (e *MalformedFrontmatterError) Error() string {
	return e.Detail
}

// SplitFrontmatter splits raw file content into the frontmatter text and the
// body. The frontmatter is recognized only when the content starts with a
// delimiter line followed by a matching closing delimiter line; both LF and
// CRLF line endings are tolerated. When no frontmatter block is found the
// entire content is returned as body. This function is total: it never fails.
func SplitFrontmatter(content string) (frontmatter string, body string, found bool) {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || !isDelimiterLine(lines[0]) {
		return "", content, false
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), true
		}
	}

	// Opening delimiter without a closing one: treat the whole file as body.
	return "", content, false
}

// isDelimiterLine checks whether a line (with or without its line ending) is
// exactly the frontmatter delimiter.
func isDelimiterLine(line string) bool {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line == constants.FrontmatterDelimiter
}

// ExtractFrontmatter splits content and decodes the frontmatter block into a
// Document. Three failure classes are distinguished for reporting:
//   - no frontmatter block: ErrFrontmatterMissing
//   - invalid YAML syntax: MalformedFrontmatterError with the decoder detail
//   - YAML that is not a mapping: MalformedFrontmatterError
//
// An empty frontmatter block ("---" immediately followed by "---") decodes to
// an empty mapping rather than an error; required-field checks still apply.
func ExtractFrontmatter(content string) (*Document, error) {
	frontmatter, body, found := SplitFrontmatter(content)
	if !found {
		log.Print("No frontmatter block found")
		return nil, ErrFrontmatterMissing
	}

	var raw any
	if err := yaml.Unmarshal([]byte(frontmatter), &raw); err != nil {
		log.Printf("Frontmatter YAML parse failed: %v", err)
		return nil, &MalformedFrontmatterError{Detail: fmt.Sprintf("invalid YAML: %s", err)}
	}

	offset := strings.Count(frontmatter, "\n") + 2

	switch fields := raw.(type) {
	case nil:
		return &Document{Fields: map[string]any{}, Body: body, BodyOffset: offset}, nil
	case map[string]any:
		log.Printf("Frontmatter decoded: %d top-level fields", len(fields))
		return &Document{Fields: fields, Body: body, BodyOffset: offset}, nil
	default:
		log.Printf("Frontmatter decoded to non-mapping type %T", raw)
		return nil, &MalformedFrontmatterError{Detail: "frontmatter must be a YAML mapping of fields"}
	}
}

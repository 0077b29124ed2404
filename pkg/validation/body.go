package validation

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/fileutil"
	"github.com/githubnext/agentlint/pkg/logger"
)

var bodyLog = logger.New("validation:body")

// markdownLinkPattern matches inline markdown links and captures the target.
var markdownLinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)(?:\s[^)]*)?\)`)

// BodyOptions configures body validation for one file.
type BodyOptions struct {
	// CheckReferences enables resolving relative link targets against Dir
	// and flagging targets that do not exist on disk.
	CheckReferences bool
	// Dir is the directory containing the file, used to resolve relative
	// link targets.
	Dir string
	// LineOffset is the number of file lines preceding the body (delimiters
	// plus frontmatter), used to report 1-based file line numbers.
	LineOffset int
}

// ValidateBody checks the markdown body: non-emptiness, the line-count
// ceiling, and optionally that relative link targets exist. This is the one
// validator that touches the file system, and the one whose cost grows with
// body size rather than field count.
func ValidateBody(c *Collector, body string, opts BodyOptions) {
	if strings.TrimSpace(body) == "" {
		c.Add(RuleBodyEmpty, "")
		return
	}

	// A single trailing newline terminates the last line; it does not start
	// an empty extra one.
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	bodyLog.Printf("Body has %d lines", len(lines))
	if len(lines) > constants.MaxBodyLines {
		c.Add(RuleBodyTooLong, strconv.Itoa(len(lines)))
	}

	if opts.CheckReferences {
		checkReferences(c, lines, opts)
	}
}

// checkReferences scans body lines for markdown links and flags relative
// targets that do not resolve to an existing path.
func checkReferences(c *Collector, lines []string, opts BodyOptions) {
	for i, line := range lines {
		for _, match := range markdownLinkPattern.FindAllStringSubmatch(line, -1) {
			target := match[1]
			if isExternalTarget(target) {
				continue
			}

			resolved := filepath.Join(opts.Dir, stripFragment(target))
			if !fileutil.PathExists(resolved) {
				bodyLog.Printf("Broken reference: %s (resolved %s)", target, resolved)
				c.AddAt(RuleReferenceNotFound, target, opts.LineOffset+i+1)
			}
		}
	}
}

// isExternalTarget reports whether a link target points outside the local
// file tree: absolute URLs and in-document anchors are never checked.
func isExternalTarget(target string) bool {
	if strings.HasPrefix(target, "#") {
		return true
	}
	return strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:")
}

// stripFragment removes an in-document anchor from a link target before the
// path is resolved.
func stripFragment(target string) string {
	if idx := strings.Index(target, "#"); idx >= 0 {
		return target[:idx]
	}
	return target
}

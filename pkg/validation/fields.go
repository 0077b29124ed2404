package validation

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/logger"
)

var fieldsLog = logger.New("validation:fields")

// fieldValidator checks one recognized frontmatter field. Validators are
// total: they never fail, they only append issues to the collector. The
// present flag distinguishes a missing key from an explicit null value;
// except for description, both mean "absent" and are always allowed.
type fieldValidator func(c *Collector, value any, present bool)

// fieldValidators is the declarative dispatch table pairing every recognized
// field with its checker. ValidateFields iterates it once per file, so "all
// known fields get exactly one validator" holds by construction.
var fieldValidators = []struct {
	name     string
	validate fieldValidator
}{
	{"description", validateDescription},
	{"name", stringField(RuleNameFormat)},
	{"argument-hint", stringField(RuleArgumentHintFormat)},
	{"tools", validateTools},
	{"agents", validateAgents},
	{"model", validateModel},
	{"user-invokable", boolField(RuleUserInvokableFormat)},
	{"disable-model-invocation", boolField(RuleDisableModelInvocationFormat)},
	{"infer", validateInfer},
	{"target", validateTarget},
	{"mcp-servers", validateMCPServers},
	{"handoffs", validateHandoffs},
}

// ValidateFields runs every field validator against the frontmatter mapping
// and flags unknown top-level keys. Validators run exhaustively: one
// malformed field never masks issues in another.
func ValidateFields(c *Collector, fields map[string]any) {
	fieldsLog.Printf("Validating %d frontmatter fields", len(fields))

	for _, fv := range fieldValidators {
		value, present := fields[fv.name]
		fv.validate(c, value, present)
	}

	validateUnknownFields(c, fields)
}

// validateDescription enforces the one required field. A missing key, an
// explicit null, a non-string, or a blank string all count as missing. A
// present description shorter than the quality threshold gets a warning
// carrying the observed length.
func validateDescription(c *Collector, value any, present bool) {
	if !present || value == nil {
		c.Add(RuleDescriptionFormat, "")
		return
	}

	s, ok := value.(string)
	if !ok {
		c.Add(RuleDescriptionFormat, "")
		return
	}
	if strings.TrimSpace(s) == "" {
		c.Add(RuleDescriptionFormat, "")
		return
	}

	if length := utf8.RuneCountInString(s); length < constants.MinDescriptionLength {
		c.Add(RuleDescriptionQuality, strconv.Itoa(length))
	}
}

// stringField returns a validator for an optional plain-string field.
func stringField(id RuleID) fieldValidator {
	return func(c *Collector, value any, present bool) {
		if !present || value == nil {
			return
		}
		if _, ok := value.(string); !ok {
			c.Add(id, "got "+typeName(value))
		}
	}
}

// boolField returns a validator for an optional boolean field.
func boolField(id RuleID) fieldValidator {
	return func(c *Collector, value any, present bool) {
		if !present || value == nil {
			return
		}
		if _, ok := value.(bool); !ok {
			c.Add(id, "got "+typeName(value))
		}
	}
}

// validateTools requires an array value and flags each non-string element
// individually by index.
func validateTools(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}

	elements, ok := value.([]any)
	if !ok {
		c.Add(RuleToolsFormat, "got "+typeName(value))
		return
	}
	for i, element := range elements {
		if _, ok := element.(string); !ok {
			c.Add(RuleToolsFormat, fmt.Sprintf("element %d is not a string", i))
		}
	}
}

// validateAgents accepts the wildcard string as-is; any other value must be
// an array of strings, each element flagged individually.
func validateAgents(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}

	if s, ok := value.(string); ok && s == constants.AgentsWildcard {
		return
	}

	elements, ok := value.([]any)
	if !ok {
		c.Add(RuleAgentsFormat, "got "+typeName(value))
		return
	}
	for i, element := range elements {
		if _, ok := element.(string); !ok {
			c.Add(RuleAgentsFormat, fmt.Sprintf("element %d is not a string", i))
		}
	}
}

// validateModel accepts a single string or an array of strings.
func validateModel(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}

	switch v := value.(type) {
	case string:
		return
	case []any:
		for i, element := range v {
			if _, ok := element.(string); !ok {
				c.Add(RuleModelFormat, fmt.Sprintf("element %d is not a string", i))
			}
		}
	default:
		c.Add(RuleModelFormat, "got "+typeName(value))
	}
}

// validateInfer warns on presence alone; the value is never inspected.
func validateInfer(c *Collector, _ any, present bool) {
	if present {
		c.Add(RuleInferDeprecated, "")
	}
}

// validateTarget requires a string from the fixed valid-target set.
func validateTarget(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}

	s, ok := value.(string)
	if !ok {
		c.Add(RuleTargetFormat, "got "+typeName(value))
		return
	}
	if !slices.Contains(constants.ValidTargets, s) {
		c.Add(RuleTargetFormat, fmt.Sprintf("got %q", s))
	}
}

// validateMCPServers requires an array; server entries are open-shaped and
// not inspected further.
func validateMCPServers(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}
	if _, ok := value.([]any); !ok {
		c.Add(RuleMCPServersFormat, "got "+typeName(value))
	}
}

// validateHandoffs requires an array and delegates per-element checks.
func validateHandoffs(c *Collector, value any, present bool) {
	if !present || value == nil {
		return
	}

	elements, ok := value.([]any)
	if !ok {
		c.Add(RuleHandoffsFormat, "got "+typeName(value))
		return
	}
	for i, element := range elements {
		validateHandoffElement(c, i, element)
	}
}

// validateUnknownFields warns once per top-level key outside the known-field
// set, in sorted order so repeated runs produce identical issue lists.
func validateUnknownFields(c *Collector, fields map[string]any) {
	var unknown []string
	for key := range fields {
		if !slices.Contains(constants.KnownAgentFields, key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		fieldsLog.Printf("Unknown frontmatter field: %s", key)
		c.Add(RuleUnknownField, key)
	}
}

// typeName describes a decoded YAML value for error messages in document
// terms rather than Go type names.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// Package validation implements the agent definition validation engine: the
// rule table, per-field checkers, body checks, and per-file result
// aggregation.
package validation

import (
	"strings"

	"github.com/githubnext/agentlint/pkg/constants"
)

// Severity classifies an issue as blocking (error) or advisory (warning).
// Severity is a static property of the rule, never of the occurrence.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleID identifies one checkable condition. The set is closed: every rule
// the engine can emit appears in the Rules table below.
type RuleID string

const (
	RuleFrontmatterRequired          RuleID = "frontmatter-required"
	RuleFrontmatterValid             RuleID = "frontmatter-valid"
	RuleDescriptionFormat            RuleID = "description-format"
	RuleDescriptionQuality           RuleID = "description-quality"
	RuleNameFormat                   RuleID = "name-format"
	RuleArgumentHintFormat           RuleID = "argument-hint-format"
	RuleToolsFormat                  RuleID = "tools-format"
	RuleAgentsFormat                 RuleID = "agents-format"
	RuleModelFormat                  RuleID = "model-format"
	RuleUserInvokableFormat          RuleID = "user-invokable-format"
	RuleDisableModelInvocationFormat RuleID = "disable-model-invocation-format"
	RuleTargetFormat                 RuleID = "target-format"
	RuleMCPServersFormat             RuleID = "mcp-servers-format"
	RuleHandoffsFormat               RuleID = "handoffs-format"
	RuleHandoffLabelRequired         RuleID = "handoff-label-required"
	RuleHandoffAgentRequired         RuleID = "handoff-agent-required"
	RuleHandoffSendFormat            RuleID = "handoff-send-format"
	RuleHandoffModelFormat           RuleID = "handoff-model-format"
	RuleInferDeprecated              RuleID = "infer-deprecated"
	RuleUnknownField                 RuleID = "unknown-field"
	RuleBodyEmpty                    RuleID = "body-empty"
	RuleBodyTooLong                  RuleID = "body-too-long"
	RuleReferenceNotFound            RuleID = "reference-not-found"
)

// detailToken is the placeholder substituted with an issue's detail when the
// message template is rendered. Templates without the token ignore the detail.
const detailToken = "{detail}"

// Rule pairs a severity with a message template.
type Rule struct {
	Severity Severity
	Template string
}

// Rules is the static rule table. Every RuleID maps to exactly one severity;
// an issue's severity is looked up here, never stored per occurrence.
var Rules = map[RuleID]Rule{
	RuleFrontmatterRequired: {SeverityError,
		"agent file must begin with YAML frontmatter delimited by '---' lines"},
	RuleFrontmatterValid: {SeverityError,
		"frontmatter could not be parsed: {detail}"},
	RuleDescriptionFormat: {SeverityError,
		"description is required and must be a non-empty string"},
	RuleDescriptionQuality: {SeverityWarning,
		"description should be at least 50 characters explaining when to use this agent (got {detail})"},
	RuleNameFormat: {SeverityError,
		"name must be a string ({detail})"},
	RuleArgumentHintFormat: {SeverityError,
		"argument-hint must be a string ({detail})"},
	RuleToolsFormat: {SeverityError,
		"tools must be an array of strings ({detail})"},
	RuleAgentsFormat: {SeverityError,
		"agents must be \"*\" or an array of agent name strings ({detail})"},
	RuleModelFormat: {SeverityError,
		"model must be a string or an array of strings ({detail})"},
	RuleUserInvokableFormat: {SeverityError,
		"user-invokable must be a boolean ({detail})"},
	RuleDisableModelInvocationFormat: {SeverityError,
		"disable-model-invocation must be a boolean ({detail})"},
	RuleTargetFormat: {SeverityError,
		"target must be one of: " + strings.Join(constants.ValidTargets, ", ") + " ({detail})"},
	RuleMCPServersFormat: {SeverityError,
		"mcp-servers must be an array ({detail})"},
	RuleHandoffsFormat: {SeverityError,
		"handoffs must be an array of handoff objects ({detail})"},
	RuleHandoffLabelRequired: {SeverityError,
		"handoffs[{detail}] must have a non-empty string 'label'"},
	RuleHandoffAgentRequired: {SeverityError,
		"handoffs[{detail}] must have a non-empty string 'agent'"},
	RuleHandoffSendFormat: {SeverityError,
		"handoffs[{detail}].send must be a boolean"},
	RuleHandoffModelFormat: {SeverityError,
		"handoffs[{detail}].model must be a string"},
	RuleInferDeprecated: {SeverityWarning,
		"infer is deprecated and ignored; use user-invokable and disable-model-invocation instead"},
	RuleUnknownField: {SeverityWarning,
		"unknown field \"{detail}\"; known fields: " + strings.Join(constants.KnownAgentFields, ", ")},
	RuleBodyEmpty: {SeverityWarning,
		"agent body is empty; add instructions describing how the agent should behave"},
	RuleBodyTooLong: {SeverityWarning,
		"agent body has {detail} lines, exceeding the maximum of 1000"},
	RuleReferenceNotFound: {SeverityError,
		"linked file '{detail}' does not exist"},
}

// RenderMessage substitutes the detail into a rule's message template. It
// never fails: an unknown rule renders the detail itself, and a template
// without the detail token leaves the detail out.
func RenderMessage(id RuleID, detail string) string {
	rule, ok := Rules[id]
	if !ok {
		return detail
	}
	return strings.ReplaceAll(rule.Template, detailToken, detail)
}

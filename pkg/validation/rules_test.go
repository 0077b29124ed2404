//go:build !integration

package validation

import (
	"strings"
	"testing"
)

func TestEveryRuleHasExactlyOneSeverity(t *testing.T) {
	allRules := []RuleID{
		RuleFrontmatterRequired,
		RuleFrontmatterValid,
		RuleDescriptionFormat,
		RuleDescriptionQuality,
		RuleNameFormat,
		RuleArgumentHintFormat,
		RuleToolsFormat,
		RuleAgentsFormat,
		RuleModelFormat,
		RuleUserInvokableFormat,
		RuleDisableModelInvocationFormat,
		RuleTargetFormat,
		RuleMCPServersFormat,
		RuleHandoffsFormat,
		RuleHandoffLabelRequired,
		RuleHandoffAgentRequired,
		RuleHandoffSendFormat,
		RuleHandoffModelFormat,
		RuleInferDeprecated,
		RuleUnknownField,
		RuleBodyEmpty,
		RuleBodyTooLong,
		RuleReferenceNotFound,
	}

	if len(Rules) != len(allRules) {
		t.Errorf("Rules table has %d entries, want %d", len(Rules), len(allRules))
	}

	for _, id := range allRules {
		rule, ok := Rules[id]
		if !ok {
			t.Errorf("rule %q missing from Rules table", id)
			continue
		}
		if rule.Severity != SeverityError && rule.Severity != SeverityWarning {
			t.Errorf("rule %q has invalid severity %q", id, rule.Severity)
		}
		if rule.Template == "" {
			t.Errorf("rule %q has empty message template", id)
		}
	}
}

func TestWarningRules(t *testing.T) {
	warnings := []RuleID{
		RuleDescriptionQuality,
		RuleInferDeprecated,
		RuleUnknownField,
		RuleBodyEmpty,
		RuleBodyTooLong,
	}
	for _, id := range warnings {
		if Rules[id].Severity != SeverityWarning {
			t.Errorf("rule %q should be a warning", id)
		}
	}
}

func TestRenderMessage(t *testing.T) {
	t.Run("substitutes detail token", func(t *testing.T) {
		msg := RenderMessage(RuleBodyTooLong, "1234")
		if !strings.Contains(msg, "1234 lines") {
			t.Errorf("rendered message %q missing substituted detail", msg)
		}
	})

	t.Run("template without token ignores detail", func(t *testing.T) {
		msg := RenderMessage(RuleBodyEmpty, "ignored")
		if strings.Contains(msg, "ignored") {
			t.Errorf("rendered message %q should not contain the detail", msg)
		}
		if msg != Rules[RuleBodyEmpty].Template {
			t.Errorf("rendered message %q differs from template", msg)
		}
	})

	t.Run("unknown rule renders detail", func(t *testing.T) {
		if got := RenderMessage(RuleID("no-such-rule"), "raw detail"); got != "raw detail" {
			t.Errorf("RenderMessage = %q, want raw detail", got)
		}
	})

	t.Run("unknown-field message lists known fields", func(t *testing.T) {
		msg := RenderMessage(RuleUnknownField, "foo")
		for _, field := range []string{"description", "tools", "handoffs", "mcp-servers", "target"} {
			if !strings.Contains(msg, field) {
				t.Errorf("unknown-field message %q does not list %q", msg, field)
			}
		}
	})
}

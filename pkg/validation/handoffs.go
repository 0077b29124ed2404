package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// validateHandoffElement checks one entry of the handoffs array. A non-object
// element gets a single issue and no further checks, since its internals are
// meaningless. For objects, label and agent are required non-empty strings,
// and send/model are shape-checked independently only when present. The
// element index keys every issue so entries can be told apart.
func validateHandoffElement(c *Collector, index int, element any) {
	obj, ok := element.(map[string]any)
	if !ok || obj == nil {
		c.Add(RuleHandoffsFormat, fmt.Sprintf("element %d is not an object", index))
		return
	}

	idx := strconv.Itoa(index)

	if !isNonEmptyString(obj["label"]) {
		c.Add(RuleHandoffLabelRequired, idx)
	}
	if !isNonEmptyString(obj["agent"]) {
		c.Add(RuleHandoffAgentRequired, idx)
	}

	if send, present := obj["send"]; present && send != nil {
		if _, ok := send.(bool); !ok {
			c.Add(RuleHandoffSendFormat, idx)
		}
	}
	if model, present := obj["model"]; present && model != nil {
		if _, ok := model.(string); !ok {
			c.Add(RuleHandoffModelFormat, idx)
		}
	}
}

func isNonEmptyString(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

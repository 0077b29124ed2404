package validation

// Issue is one validation finding. Issues are immutable once created: they
// are only filtered and aggregated downstream, never modified.
type Issue struct {
	RuleID   RuleID   `json:"rule,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"`
}

// Collector accumulates issues for a single file, applying the ignore-list
// filter at generation time and routing by the rule table's static severity.
// Its lists are append-only; validators share a Collector but never read or
// rewrite each other's issues.
type Collector struct {
	file     string
	ignored  map[RuleID]bool
	errors   []Issue
	warnings []Issue
}

// NewCollector creates a Collector for one file. Rule IDs in ignoreRules are
// discarded silently: never counted, never rendered.
func NewCollector(file string, ignoreRules []string) *Collector {
	ignored := make(map[RuleID]bool, len(ignoreRules))
	for _, id := range ignoreRules {
		ignored[RuleID(id)] = true
	}
	return &Collector{file: file, ignored: ignored}
}

// Add records an issue for the given rule with no line information.
func (c *Collector) Add(id RuleID, detail string) {
	c.AddAt(id, detail, 0)
}

// AddAt records an issue for the given rule at a specific 1-based line.
func (c *Collector) AddAt(id RuleID, detail string, line int) {
	if c.ignored[id] {
		return
	}

	severity := SeverityError
	if rule, ok := Rules[id]; ok {
		severity = rule.Severity
	}

	issue := Issue{
		RuleID:   id,
		Message:  RenderMessage(id, detail),
		Severity: severity,
		File:     c.file,
		Line:     line,
	}

	if severity == SeverityWarning {
		c.warnings = append(c.warnings, issue)
		return
	}
	c.errors = append(c.errors, issue)
}

// AddStructural records a terminal file-level failure that carries no rule
// ID: an unreadable or oversize file. Structural failures cannot be ignored.
func (c *Collector) AddStructural(message string) {
	c.errors = append(c.errors, Issue{
		Message:  message,
		Severity: SeverityError,
		File:     c.file,
	})
}

// Errors returns the accumulated error issues in insertion order.
func (c *Collector) Errors() []Issue {
	return c.errors
}

// Warnings returns the accumulated warning issues in insertion order.
func (c *Collector) Warnings() []Issue {
	return c.warnings
}

package check

import (
	"time"

	"github.com/google/uuid"
)

// Config controls which rules run and at what severity.
type Config struct {
	// DisabledRules contains rule ids to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// Disable disables a rule by id.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Analyzer runs registered rules against a document context.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze evaluates every enabled rule against the context and returns
// the complete finding sequence. Rules run in id order and each rule
// visits entities in a stable order, so two runs over the same document
// produce identical sequences. The analyzer never stops at the first
// finding.
func (a *Analyzer) Analyze(ctx *Context) []Finding {
	if ctx == nil || ctx.Doc == nil {
		return nil
	}

	var findings []Finding
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		results := rule.Check(ctx)
		for i := range results {
			results[i].Severity = a.config.GetSeverity(rule.ID, results[i].Severity)
		}
		findings = append(findings, results...)
	}
	return findings
}

// Report is the outcome of one analyzer run.
type Report struct {
	// RunID identifies this run in logs and exports.
	RunID    string
	Findings []Finding
	Elapsed  time.Duration
}

// Run analyzes the context and wraps the findings in a stamped report.
func (a *Analyzer) Run(ctx *Context) *Report {
	start := time.Now()
	findings := a.Analyze(ctx)
	return &Report{
		RunID:    uuid.NewString(),
		Findings: findings,
		Elapsed:  time.Since(start),
	}
}

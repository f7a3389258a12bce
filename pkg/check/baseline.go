package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Baseline lists known findings to suppress, so existing data issues can
// be acknowledged without silencing a whole rule.
type Baseline struct {
	Suppress []Suppression `yaml:"suppress"`
}

// Suppression matches a finding by rule id and exact subject ids.
type Suppression struct {
	Rule     string   `yaml:"rule"`
	Subjects []string `yaml:"subjects"`
}

// LoadBaseline reads a baseline file.
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	var b Baseline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", path, err)
	}
	return &b, nil
}

// Filter returns the findings not matched by the baseline, preserving
// order.
func (b *Baseline) Filter(findings []Finding) []Finding {
	if b == nil || len(b.Suppress) == 0 {
		return findings
	}

	var kept []Finding
	for _, f := range findings {
		if !b.matches(f) {
			kept = append(kept, f)
		}
	}
	return kept
}

func (b *Baseline) matches(f Finding) bool {
	for _, s := range b.Suppress {
		if s.Rule != f.RuleID || len(s.Subjects) != len(f.Subjects) {
			continue
		}
		match := true
		for i, id := range s.Subjects {
			if f.Subjects[i] != id {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

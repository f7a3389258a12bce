// Package check runs consistency rules over a parsed genealogy document
// and its relationship graph. Rules are independent, registered at init
// time and executed in a fixed order so finding sequences are
// reproducible run to run.
package check

import (
	"sort"
	"strings"

	"github.com/lineagelabs/gedtree/pkg/gedcom"
	"github.com/lineagelabs/gedtree/pkg/kin"
)

// Severity indicates the importance of a finding.
type Severity int

// Severity levels.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "hint"
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityError, false
	}
}

// Finding is a single inconsistency reported by one rule against specific
// subjects. Findings are immutable once produced.
type Finding struct {
	RuleID   string   `json:"rule"`
	Severity Severity `json:"severity"`
	// Subjects are the individual/family ids the finding is about, in
	// rule-defined order.
	Subjects []string `json:"subjects"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Evidence holds the compared values (rendered dates).
	Evidence []string `json:"evidence,omitempty"`
}

// MarshalJSON renders the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Context carries everything a rule may inspect. The reference date is
// injected by the caller so future-date checks never read the wall clock,
// and the traversal depth bounds any graph walk a rule performs.
type Context struct {
	Doc   *gedcom.Document
	Graph *kin.Graph
	// Today is the reference date for future-date checks. When absent,
	// future-date rules report nothing.
	Today gedcom.Date
	// MaxDepth bounds ancestor/descendant traversals.
	MaxDepth int
}

// Individuals returns the document's individuals sorted by id so rule
// output order is stable regardless of map iteration.
func (c *Context) Individuals() []*gedcom.Individual {
	result := make([]*gedcom.Individual, 0, len(c.Doc.Individuals))
	for _, indi := range c.Doc.Individuals {
		result = append(result, indi)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Families returns the document's families sorted by id.
func (c *Context) Families() []*gedcom.Family {
	result := make([]*gedcom.Family, 0, len(c.Doc.Families))
	for _, fam := range c.Doc.Families {
		result = append(result, fam)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Label renders an individual's id with their name when one is recorded.
func Label(indi *gedcom.Individual) string {
	if indi == nil {
		return "?"
	}
	if indi.Name == "" {
		return indi.ID
	}
	return indi.ID + " (" + indi.Name + ")"
}

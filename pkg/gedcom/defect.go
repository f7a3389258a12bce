package gedcom

import "fmt"

// DefectKind classifies structural integrity problems in the input.
type DefectKind int

// Defect kinds.
const (
	// DefectUnresolvedReference marks a cross-reference to an id that
	// does not exist in the document.
	DefectUnresolvedReference DefectKind = iota
	// DefectDuplicateID marks a top-level id declared more than once.
	DefectDuplicateID
)

// String returns the defect kind name.
func (k DefectKind) String() string {
	switch k {
	case DefectDuplicateID:
		return "duplicate-id"
	default:
		return "unresolved-reference"
	}
}

// Defect is a structural integrity problem recorded during building or
// resolution. Defects never abort a run; the affected slot is left empty
// and processing continues. They are reported separately from validation
// findings so callers can tell broken input from inconsistent data.
type Defect struct {
	Kind DefectKind `json:"kind"`
	// Subject is the id of the entity carrying the problem
	Subject string `json:"subject"`
	// Field is the record tag the problem occurred on (HUSB, CHIL, ...)
	Field string `json:"field,omitempty"`
	// Target is the referenced id, for unresolved references
	Target string `json:"target,omitempty"`
}

// MarshalJSON renders the defect kind by name.
func (k DefectKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// String renders the defect for reporting.
func (d Defect) String() string {
	switch d.Kind {
	case DefectDuplicateID:
		return fmt.Sprintf("duplicate id %s", d.Subject)
	default:
		return fmt.Sprintf("%s %s references unknown id %s", d.Subject, d.Field, d.Target)
	}
}

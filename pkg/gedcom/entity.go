package gedcom

// Sex is the recorded sex of an individual.
type Sex int

// Sex values.
const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// String returns the single-letter GEDCOM form (M, F, U).
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	default:
		return "U"
	}
}

// ParseSex maps a SEX record value to a Sex. Anything other than M or F
// is treated as unknown.
func ParseSex(value string) Sex {
	switch value {
	case "M", "m":
		return SexMale
	case "F", "f":
		return SexFemale
	default:
		return SexUnknown
	}
}

// EventKind identifies the type of a life event.
type EventKind int

// Event kinds.
const (
	EventOther EventKind = iota
	EventBirth
	EventDeath
	EventMarriage
)

// String returns the lower-case kind name.
func (k EventKind) String() string {
	switch k {
	case EventBirth:
		return "birth"
	case EventDeath:
		return "death"
	case EventMarriage:
		return "marriage"
	default:
		return "other"
	}
}

// Event is a dated life event attached to an individual or family.
type Event struct {
	Kind  EventKind
	Date  Date
	Place string
}

// Individual is a parsed INDI record. An individual with no name is
// legal; data quality is a validation concern, not a construction error.
type Individual struct {
	// ID is the cross-reference identifier, unique within a document
	ID string
	// Name is the full name with GEDCOM surname slashes removed
	Name string
	// Sex is the recorded sex
	Sex Sex
	// Birth and Death are optional life events
	Birth *Event
	Death *Event
	// ParentFamilyIDs are families this individual is a child of (FAMC)
	ParentFamilyIDs []string
	// SpouseFamilyIDs are families this individual is a spouse in (FAMS)
	SpouseFamilyIDs []string
}

// BirthDate returns the birth event date, or an absent date.
func (i *Individual) BirthDate() Date {
	if i.Birth == nil {
		return Date{}
	}
	return i.Birth.Date
}

// DeathDate returns the death event date, or an absent date.
func (i *Individual) DeathDate() Date {
	if i.Death == nil {
		return Date{}
	}
	return i.Death.Date
}

// Family is a parsed FAM record. Spouse slots are optional; ChildIDs
// preserves input order, which downstream birth-order heuristics rely on.
type Family struct {
	// ID is the cross-reference identifier, unique within a document
	ID string
	// HusbandID and WifeID are the spouse slots; either may be empty
	HusbandID string
	WifeID    string
	// ChildIDs lists children in input order; raw input may repeat an id
	ChildIDs []string
	// Marriage is the optional marriage event
	Marriage *Event
}

// SpouseIDs returns the non-empty spouse ids in husband, wife order.
func (f *Family) SpouseIDs() []string {
	var ids []string
	if f.HusbandID != "" {
		ids = append(ids, f.HusbandID)
	}
	if f.WifeID != "" {
		ids = append(ids, f.WifeID)
	}
	return ids
}

// MarriageDate returns the marriage event date, or an absent date.
func (f *Family) MarriageDate() Date {
	if f.Marriage == nil {
		return Date{}
	}
	return f.Marriage.Date
}

package gedcom

import "strings"

// DraftSet holds entities built from a record sequence before
// cross-references have been resolved. Reference fields still contain the
// raw ids found in the input.
type DraftSet struct {
	Individuals map[string]*Individual
	Families    map[string]*Family
	// IndividualOrder and FamilyOrder preserve input order for
	// deterministic iteration.
	IndividualOrder []string
	FamilyOrder     []string
	// Defects collects duplicate-id problems found while grouping.
	Defects []Defect
}

// builder groups a flat record sequence into entity drafts. It tracks the
// entity and event the next sub-record attaches to.
type builder struct {
	set *DraftSet

	indi  *Individual
	fam   *Family
	event *Event
}

// Build groups the ordered record sequence into individual and family
// drafts. Unknown or unsupported tags are skipped so unfamiliar files
// still parse; a duplicate top-level id keeps the first record and is
// recorded as a defect.
func Build(records []Record) *DraftSet {
	b := &builder{set: &DraftSet{
		Individuals: make(map[string]*Individual),
		Families:    make(map[string]*Family),
	}}

	for _, rec := range records {
		switch {
		case rec.Level == 0:
			b.startEntity(rec)
		case rec.Level == 1:
			b.attachField(rec)
		case rec.Level == 2 && b.event != nil:
			b.attachEventDetail(rec)
		}
	}

	return b.set
}

func (b *builder) startEntity(rec Record) {
	b.indi, b.fam, b.event = nil, nil, nil

	switch rec.Tag {
	case "INDI":
		if rec.XRef == "" {
			return
		}
		if _, exists := b.set.Individuals[rec.XRef]; exists {
			b.set.Defects = append(b.set.Defects, Defect{
				Kind:    DefectDuplicateID,
				Subject: rec.XRef,
				Field:   "INDI",
			})
			return
		}
		b.indi = &Individual{ID: rec.XRef}
		b.set.Individuals[rec.XRef] = b.indi
		b.set.IndividualOrder = append(b.set.IndividualOrder, rec.XRef)
	case "FAM":
		if rec.XRef == "" {
			return
		}
		if _, exists := b.set.Families[rec.XRef]; exists {
			b.set.Defects = append(b.set.Defects, Defect{
				Kind:    DefectDuplicateID,
				Subject: rec.XRef,
				Field:   "FAM",
			})
			return
		}
		b.fam = &Family{ID: rec.XRef}
		b.set.Families[rec.XRef] = b.fam
		b.set.FamilyOrder = append(b.set.FamilyOrder, rec.XRef)
	}
}

func (b *builder) attachField(rec Record) {
	// A new level-1 record ends any open event sub-block.
	b.event = nil

	switch {
	case b.indi != nil:
		b.attachIndividualField(rec)
	case b.fam != nil:
		b.attachFamilyField(rec)
	}
}

func (b *builder) attachIndividualField(rec Record) {
	switch rec.Tag {
	case "NAME":
		b.indi.Name = cleanName(rec.Value)
	case "SEX":
		b.indi.Sex = ParseSex(rec.Value)
	case "BIRT":
		b.indi.Birth = &Event{Kind: EventBirth}
		b.event = b.indi.Birth
	case "DEAT":
		b.indi.Death = &Event{Kind: EventDeath}
		b.event = b.indi.Death
	case "FAMC":
		if id := trimXRef(rec.Value); id != "" {
			b.indi.ParentFamilyIDs = append(b.indi.ParentFamilyIDs, id)
		}
	case "FAMS":
		if id := trimXRef(rec.Value); id != "" {
			b.indi.SpouseFamilyIDs = append(b.indi.SpouseFamilyIDs, id)
		}
	}
}

func (b *builder) attachFamilyField(rec Record) {
	switch rec.Tag {
	case "HUSB":
		b.fam.HusbandID = trimXRef(rec.Value)
	case "WIFE":
		b.fam.WifeID = trimXRef(rec.Value)
	case "CHIL":
		if id := trimXRef(rec.Value); id != "" {
			b.fam.ChildIDs = append(b.fam.ChildIDs, id)
		}
	case "MARR":
		b.fam.Marriage = &Event{Kind: EventMarriage}
		b.event = b.fam.Marriage
	}
}

func (b *builder) attachEventDetail(rec Record) {
	switch rec.Tag {
	case "DATE":
		b.event.Date = ParseDate(rec.Value)
	case "PLAC":
		b.event.Place = rec.Value
	}
}

// cleanName strips the GEDCOM surname slashes: "John /Smith/" -> "John Smith".
func cleanName(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, "/", " ")), " ")
}

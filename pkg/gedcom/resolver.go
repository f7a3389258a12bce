package gedcom

// Resolve turns a draft set into a fully cross-linked Document. Every raw
// reference is either verified against the entity maps or recorded as an
// unresolved-reference defect with its slot emptied; resolution never
// fails the run. Family-side links are back-filled onto individuals so
// both directions agree. Lookups are map-based, one pass over entities.
func Resolve(set *DraftSet) *Document {
	doc := &Document{
		Individuals:     set.Individuals,
		Families:        set.Families,
		IndividualOrder: set.IndividualOrder,
		FamilyOrder:     set.FamilyOrder,
		Defects:         set.Defects,
	}

	for _, id := range doc.FamilyOrder {
		fam := doc.Families[id]

		if fam.HusbandID != "" {
			if _, ok := doc.Individuals[fam.HusbandID]; !ok {
				doc.addDefect(fam.ID, "HUSB", fam.HusbandID)
				fam.HusbandID = ""
			}
		}
		if fam.WifeID != "" {
			if _, ok := doc.Individuals[fam.WifeID]; !ok {
				doc.addDefect(fam.ID, "WIFE", fam.WifeID)
				fam.WifeID = ""
			}
		}

		children := fam.ChildIDs[:0]
		for _, childID := range fam.ChildIDs {
			if _, ok := doc.Individuals[childID]; !ok {
				doc.addDefect(fam.ID, "CHIL", childID)
				continue
			}
			children = append(children, childID)
		}
		fam.ChildIDs = children
	}

	// Drop individual-declared family links that point nowhere.
	for _, id := range doc.IndividualOrder {
		indi := doc.Individuals[id]
		indi.ParentFamilyIDs = doc.resolveFamilyRefs(indi.ID, "FAMC", indi.ParentFamilyIDs)
		indi.SpouseFamilyIDs = doc.resolveFamilyRefs(indi.ID, "FAMS", indi.SpouseFamilyIDs)
	}

	// Back-fill the individual side from resolved family links so both
	// directions are consistent even when FAMC/FAMS records are missing.
	for _, id := range doc.FamilyOrder {
		fam := doc.Families[id]
		for _, spouseID := range fam.SpouseIDs() {
			indi := doc.Individuals[spouseID]
			indi.SpouseFamilyIDs = appendUnique(indi.SpouseFamilyIDs, fam.ID)
		}
		for _, childID := range fam.ChildIDs {
			indi := doc.Individuals[childID]
			indi.ParentFamilyIDs = appendUnique(indi.ParentFamilyIDs, fam.ID)
		}
	}

	return doc
}

func (doc *Document) addDefect(subject, field, target string) {
	doc.Defects = append(doc.Defects, Defect{
		Kind:    DefectUnresolvedReference,
		Subject: subject,
		Field:   field,
		Target:  target,
	})
}

func (doc *Document) resolveFamilyRefs(subject, field string, refs []string) []string {
	resolved := refs[:0]
	for _, famID := range refs {
		if _, ok := doc.Families[famID]; !ok {
			doc.addDefect(subject, field, famID)
			continue
		}
		resolved = appendUnique(resolved, famID)
	}
	return resolved
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

package gedcom

import "io"

// Document is the resolved, read-only snapshot of one parsed GEDCOM file.
// No mutation happens after Resolve returns; downstream consumers (graph,
// checks, statistics) treat it as immutable.
type Document struct {
	Individuals map[string]*Individual
	Families    map[string]*Family
	// IndividualOrder and FamilyOrder preserve input order.
	IndividualOrder []string
	FamilyOrder     []string
	// Defects are the structural problems found while building and
	// resolving, separate from validation findings.
	Defects []Defect
}

// Parse reads, builds and resolves a GEDCOM document in one call.
// Only I/O failures return an error; data problems end up in Defects.
func Parse(r io.Reader) (*Document, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return Resolve(Build(records)), nil
}

// Individual returns the individual with the given id.
func (doc *Document) Individual(id string) (*Individual, bool) {
	indi, ok := doc.Individuals[id]
	return indi, ok
}

// Family returns the family with the given id.
func (doc *Document) Family(id string) (*Family, bool) {
	fam, ok := doc.Families[id]
	return fam, ok
}

// IndividualsInOrder returns individuals in input order.
func (doc *Document) IndividualsInOrder() []*Individual {
	result := make([]*Individual, 0, len(doc.IndividualOrder))
	for _, id := range doc.IndividualOrder {
		result = append(result, doc.Individuals[id])
	}
	return result
}

// FamiliesInOrder returns families in input order.
func (doc *Document) FamiliesInOrder() []*Family {
	result := make([]*Family, 0, len(doc.FamilyOrder))
	for _, id := range doc.FamilyOrder {
		result = append(result, doc.Families[id])
	}
	return result
}

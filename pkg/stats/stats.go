// Package stats computes aggregate statistics over a resolved genealogy
// document. Entities missing the dates a statistic needs are excluded
// from that aggregate rather than counted as zero; every aggregate
// reports how many entities it actually included so callers can judge
// coverage.
package stats

import (
	"sort"
	"strings"

	"github.com/lineagelabs/gedtree/pkg/gedcom"
)

// Report is the full statistics bundle for one document.
type Report struct {
	TotalIndividuals int
	TotalFamilies    int

	Names        NameStats
	BirthYears   BirthYearStats
	FamilySizes  FamilySizeStats
	Lifespans    LifespanStats
	MarriageAges MarriageAgeStats
}

// TokenCount is one name token with its occurrence count.
type TokenCount struct {
	Token string
	Count int
}

// NameStats holds name-token frequencies, sorted by count descending and
// token ascending for ties.
type NameStats struct {
	Tokens []TokenCount
	// Included is the number of individuals with a non-empty name.
	Included int
}

// DecadeCount is the number of births in one decade.
type DecadeCount struct {
	Decade int // e.g. 1900 covers 1900-1909
	Count  int
}

// BirthYearStats summarizes known birth years.
type BirthYearStats struct {
	Min     int
	Max     int
	Decades []DecadeCount
	// Included is the number of individuals with a known birth year.
	Included int
}

// SizeCount is the number of families with a given child count.
type SizeCount struct {
	Size  int
	Count int
}

// FamilySizeStats is the distribution of children per family.
type FamilySizeStats struct {
	Sizes []SizeCount
	// Included counts all families; child lists are always present.
	Included int
}

// Lifespan is one individual's death year minus birth year.
type Lifespan struct {
	IndividualID string
	Years        int
}

// LifespanStats summarizes lifespans of individuals with both a birth
// and a death year.
type LifespanStats struct {
	Min         int
	Max         int
	Mean        float64
	Individuals []Lifespan
	Included    int
}

// MarriageAge is one spouse's age at a family's marriage.
type MarriageAge struct {
	FamilyID string
	SpouseID string
	Age      int
}

// MarriageAgeStats summarizes spouse ages at marriage where both the
// marriage year and the spouse's birth year are known.
type MarriageAgeStats struct {
	Min      int
	Max      int
	Mean     float64
	Spouses  []MarriageAge
	Included int
}

// Compute builds the statistics report for a resolved document.
func Compute(doc *gedcom.Document) *Report {
	r := &Report{
		TotalIndividuals: len(doc.Individuals),
		TotalFamilies:    len(doc.Families),
	}

	r.Names = computeNames(doc)
	r.BirthYears = computeBirthYears(doc)
	r.FamilySizes = computeFamilySizes(doc)
	r.Lifespans = computeLifespans(doc)
	r.MarriageAges = computeMarriageAges(doc)
	return r
}

func computeNames(doc *gedcom.Document) NameStats {
	counts := make(map[string]int)
	included := 0

	for _, indi := range doc.IndividualsInOrder() {
		if indi.Name == "" {
			continue
		}
		included++
		for _, tok := range strings.Fields(indi.Name) {
			counts[strings.ToLower(tok)]++
		}
	}

	tokens := make([]TokenCount, 0, len(counts))
	for tok, n := range counts {
		tokens = append(tokens, TokenCount{Token: tok, Count: n})
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Count != tokens[j].Count {
			return tokens[i].Count > tokens[j].Count
		}
		return tokens[i].Token < tokens[j].Token
	})

	return NameStats{Tokens: tokens, Included: included}
}

func computeBirthYears(doc *gedcom.Document) BirthYearStats {
	s := BirthYearStats{}
	decades := make(map[int]int)

	for _, indi := range doc.IndividualsInOrder() {
		year := indi.BirthDate().Year
		if year == 0 {
			continue
		}
		if s.Included == 0 || year < s.Min {
			s.Min = year
		}
		if year > s.Max {
			s.Max = year
		}
		s.Included++
		decades[year/10*10]++
	}

	s.Decades = make([]DecadeCount, 0, len(decades))
	for decade, n := range decades {
		s.Decades = append(s.Decades, DecadeCount{Decade: decade, Count: n})
	}
	sort.Slice(s.Decades, func(i, j int) bool { return s.Decades[i].Decade < s.Decades[j].Decade })
	return s
}

func computeFamilySizes(doc *gedcom.Document) FamilySizeStats {
	sizes := make(map[int]int)
	for _, fam := range doc.FamiliesInOrder() {
		sizes[len(fam.ChildIDs)]++
	}

	s := FamilySizeStats{Included: len(doc.Families)}
	s.Sizes = make([]SizeCount, 0, len(sizes))
	for size, n := range sizes {
		s.Sizes = append(s.Sizes, SizeCount{Size: size, Count: n})
	}
	sort.Slice(s.Sizes, func(i, j int) bool { return s.Sizes[i].Size < s.Sizes[j].Size })
	return s
}

func computeLifespans(doc *gedcom.Document) LifespanStats {
	s := LifespanStats{}
	total := 0

	for _, indi := range doc.IndividualsInOrder() {
		birth := indi.BirthDate().Year
		death := indi.DeathDate().Year
		if birth == 0 || death == 0 {
			continue
		}
		years := death - birth
		if s.Included == 0 || years < s.Min {
			s.Min = years
		}
		if s.Included == 0 || years > s.Max {
			s.Max = years
		}
		s.Included++
		total += years
		s.Individuals = append(s.Individuals, Lifespan{IndividualID: indi.ID, Years: years})
	}

	if s.Included > 0 {
		s.Mean = float64(total) / float64(s.Included)
	}
	return s
}

func computeMarriageAges(doc *gedcom.Document) MarriageAgeStats {
	s := MarriageAgeStats{}
	total := 0

	for _, fam := range doc.FamiliesInOrder() {
		marriage := fam.MarriageDate().Year
		if marriage == 0 {
			continue
		}
		for _, spouseID := range fam.SpouseIDs() {
			spouse, ok := doc.Individual(spouseID)
			if !ok {
				continue
			}
			birth := spouse.BirthDate().Year
			if birth == 0 {
				continue
			}
			age := marriage - birth
			if s.Included == 0 || age < s.Min {
				s.Min = age
			}
			if s.Included == 0 || age > s.Max {
				s.Max = age
			}
			s.Included++
			total += age
			s.Spouses = append(s.Spouses, MarriageAge{
				FamilyID: fam.ID,
				SpouseID: spouseID,
				Age:      age,
			})
		}
	}

	if s.Included > 0 {
		s.Mean = float64(total) / float64(s.Included)
	}
	return s
}

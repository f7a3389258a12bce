package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD05",
		Name:        "marriage.before-spouse-birth",
		Group:       "marriage",
		Description: "Family's marriage date is before a spouse's birth date",
		Severity:    check.SeverityError,
		Check:       checkMarriageBeforeSpouseBirth,
	})
}

// checkMarriageBeforeSpouseBirth flags marriages recorded before a spouse
// was born. Each affected spouse gets its own finding, husband first.
func checkMarriageBeforeSpouseBirth(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, fam := range ctx.Families() {
		marriage := fam.MarriageDate()
		if marriage.IsZero() {
			continue
		}

		for _, spouseID := range fam.SpouseIDs() {
			spouse, ok := ctx.Doc.Individual(spouseID)
			if !ok {
				continue
			}
			birth := spouse.BirthDate()
			if !marriage.Before(birth) {
				continue
			}

			findings = append(findings, check.Finding{
				RuleID:   "GD05",
				Severity: check.SeverityError,
				Subjects: []string{fam.ID, spouse.ID},
				Message: fmt.Sprintf("family %s has marriage date %s before %s's birth %s",
					fam.ID, marriage, check.Label(spouse), birth),
				Evidence: []string{marriage.String(), birth.String()},
			})
		}
	}

	return findings
}

package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD01",
		Name:        "dates.birth-after-death",
		Group:       "dates",
		Description: "Individual's birth date is after their death date",
		Severity:    check.SeverityError,
		Check:       checkBirthAfterDeath,
	})
}

// checkBirthAfterDeath flags individuals whose birth date is later than
// their death date. Partial dates are compared on the components they
// share; if either date is absent the pair is skipped.
func checkBirthAfterDeath(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, indi := range ctx.Individuals() {
		birth := indi.BirthDate()
		death := indi.DeathDate()

		c, ok := birth.Compare(death)
		if !ok || c <= 0 {
			continue
		}

		findings = append(findings, check.Finding{
			RuleID:   "GD01",
			Severity: check.SeverityError,
			Subjects: []string{indi.ID},
			Message: fmt.Sprintf("%s was born %s, after death %s",
				check.Label(indi), birth, death),
			Evidence: []string{birth.String(), death.String()},
		})
	}

	return findings
}

package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD03",
		Name:        "dates.birth-in-future",
		Group:       "dates",
		Description: "Individual's birth date is after the reference date",
		Severity:    check.SeverityError,
		Check:       checkBirthInFuture,
	})
}

// checkBirthInFuture flags birth dates later than the injected reference
// date, with the same reference-date semantics as GD02.
func checkBirthInFuture(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, indi := range ctx.Individuals() {
		birth := indi.BirthDate()
		if !birth.After(ctx.Today) {
			continue
		}

		findings = append(findings, check.Finding{
			RuleID:   "GD03",
			Severity: check.SeverityError,
			Subjects: []string{indi.ID},
			Message: fmt.Sprintf("%s has birth date %s after reference date %s",
				check.Label(indi), birth, ctx.Today),
			Evidence: []string{birth.String(), ctx.Today.String()},
		})
	}

	return findings
}

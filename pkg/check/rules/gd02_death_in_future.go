package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD02",
		Name:        "dates.death-in-future",
		Group:       "dates",
		Description: "Individual's death date is after the reference date",
		Severity:    check.SeverityError,
		Check:       checkDeathInFuture,
	})
}

// checkDeathInFuture flags death dates later than the injected reference
// date. The reference date comes from the context, never the wall clock,
// so runs are reproducible; when it is absent nothing fires.
func checkDeathInFuture(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, indi := range ctx.Individuals() {
		death := indi.DeathDate()
		if !death.After(ctx.Today) {
			continue
		}

		findings = append(findings, check.Finding{
			RuleID:   "GD02",
			Severity: check.SeverityError,
			Subjects: []string{indi.ID},
			Message: fmt.Sprintf("%s has death date %s after reference date %s",
				check.Label(indi), death, ctx.Today),
			Evidence: []string{death.String(), ctx.Today.String()},
		})
	}

	return findings
}

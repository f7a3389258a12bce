package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD06",
		Name:        "marriage.after-child-birth",
		Group:       "marriage",
		Description: "Family's marriage date is after a listed child's birth date",
		Severity:    check.SeverityError,
		Check:       checkMarriageAfterChildBirth,
	})
}

// checkMarriageAfterChildBirth flags children born before the family's
// recorded marriage. This is a heuristic: the data is flagged for review,
// not rejected. Children are visited in input order.
func checkMarriageAfterChildBirth(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, fam := range ctx.Families() {
		marriage := fam.MarriageDate()
		if marriage.IsZero() {
			continue
		}

		seen := make(map[string]bool, len(fam.ChildIDs))
		for _, childID := range fam.ChildIDs {
			if seen[childID] {
				continue
			}
			seen[childID] = true

			child, ok := ctx.Doc.Individual(childID)
			if !ok {
				continue
			}
			birth := child.BirthDate()
			if !marriage.After(birth) {
				continue
			}

			findings = append(findings, check.Finding{
				RuleID:   "GD06",
				Severity: check.SeverityError,
				Subjects: []string{fam.ID, child.ID},
				Message: fmt.Sprintf("family %s has marriage date %s after %s's birth %s",
					fam.ID, marriage, check.Label(child), birth),
				Evidence: []string{marriage.String(), birth.String()},
			})
		}
	}

	return findings
}

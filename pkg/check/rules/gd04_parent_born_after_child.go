package rules

import (
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/check"
)

func init() {
	check.Register(check.RuleDef{
		ID:          "GD04",
		Name:        "lineage.parent-born-after-child",
		Group:       "lineage",
		Description: "Parent's birth date is on or after a child's birth date",
		Severity:    check.SeverityError,
		Check:       checkParentBornAfterChild,
	})
}

// checkParentBornAfterChild walks every parent->child edge and flags
// parents not born before their child. Both dates must carry at least a
// year; edges with an absent date on either side are skipped.
func checkParentBornAfterChild(ctx *check.Context) []check.Finding {
	var findings []check.Finding

	for _, child := range ctx.Individuals() {
		childBirth := child.BirthDate()
		if childBirth.IsZero() {
			continue
		}

		for _, e := range ctx.Graph.ParentEdges(child.ID) {
			parent, ok := ctx.Doc.Individual(e.ParentID)
			if !ok {
				continue
			}
			parentBirth := parent.BirthDate()

			c, ok := parentBirth.Compare(childBirth)
			if !ok || c < 0 {
				continue
			}

			findings = append(findings, check.Finding{
				RuleID:   "GD04",
				Severity: check.SeverityError,
				Subjects: []string{parent.ID, child.ID},
				Message: fmt.Sprintf("%s born %s is a parent of %s born %s (family %s)",
					check.Label(parent), parentBirth, check.Label(child), childBirth, e.FamilyID),
				Evidence: []string{parentBirth.String(), childBirth.String()},
			})
		}
	}

	return findings
}

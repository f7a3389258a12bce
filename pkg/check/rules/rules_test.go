package rules_test

import (
	"strings"
	"testing"

	"github.com/lineagelabs/gedtree/pkg/check"
	_ "github.com/lineagelabs/gedtree/pkg/check/rules"
	"github.com/lineagelabs/gedtree/pkg/gedcom"
	"github.com/lineagelabs/gedtree/pkg/kin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, input string) []check.Finding {
	t.Helper()
	doc, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)
	ctx := &check.Context{
		Doc:      doc,
		Graph:    kin.Build(doc),
		Today:    gedcom.Date{Year: 2000},
		MaxDepth: 50,
	}
	return check.NewAnalyzer(nil).Analyze(ctx)
}

func findingsFor(findings []check.Finding, ruleID string) []check.Finding {
	var matched []check.Finding
	for _, f := range findings {
		if f.RuleID == ruleID {
			matched = append(matched, f)
		}
	}
	return matched
}

func TestCatalogRegistered(t *testing.T) {
	for _, id := range []string{"GD01", "GD02", "GD03", "GD04", "GD05", "GD06"} {
		if _, ok := check.GetByID(id); !ok {
			t.Errorf("rule %s not registered", id)
		}
	}
}

func TestBirthAfterDeath(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
1 NAME Test /Person/
1 BIRT
2 DATE 1950
1 DEAT
2 DATE 1940`)

	matched := findingsFor(findings, "GD01")
	require.Len(t, matched, 1)
	assert.Equal(t, []string{"I1"}, matched[0].Subjects)
	assert.Equal(t, check.SeverityError, matched[0].Severity)
	assert.Equal(t, []string{"1950", "1940"}, matched[0].Evidence)
}

func TestBirthAfterDeath_SameYearNotFlagged(t *testing.T) {
	// Year-only dates equal on the shared component are not known bad.
	findings := analyze(t, `0 @I1@ INDI
1 BIRT
2 DATE 1950
1 DEAT
2 DATE 1950`)
	assert.Empty(t, findingsFor(findings, "GD01"))
}

func TestFutureDates(t *testing.T) {
	// Reference date in analyze is year 2000.
	findings := analyze(t, `0 @I1@ INDI
1 BIRT
2 DATE 2050
0 @I2@ INDI
1 DEAT
2 DATE 2049`)

	birthFuture := findingsFor(findings, "GD03")
	require.Len(t, birthFuture, 1)
	assert.Equal(t, []string{"I1"}, birthFuture[0].Subjects)

	deathFuture := findingsFor(findings, "GD02")
	require.Len(t, deathFuture, 1)
	assert.Equal(t, []string{"I2"}, deathFuture[0].Subjects)
}

func TestParentBornAfterChild(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
1 NAME Parent /One/
1 BIRT
2 DATE 1900
0 @I2@ INDI
1 NAME Child /One/
1 BIRT
2 DATE 1899
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@`)

	matched := findingsFor(findings, "GD04")
	require.Len(t, matched, 1)
	assert.Equal(t, []string{"I1", "I2"}, matched[0].Subjects)
}

func TestParentBornSameYearAsChildFlagged(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
1 BIRT
2 DATE 1900
0 @I2@ INDI
1 BIRT
2 DATE 1900
0 @F1@ FAM
1 WIFE @I1@
1 CHIL @I2@`)

	assert.Len(t, findingsFor(findings, "GD04"), 1)
}

func TestMarriageBeforeSpouseBirth_BothSpouses(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
1 BIRT
2 DATE 1960
0 @I2@ INDI
1 BIRT
2 DATE 1962
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 MARR
2 DATE 1950`)

	matched := findingsFor(findings, "GD05")
	require.Len(t, matched, 2)
	assert.Equal(t, []string{"F1", "I1"}, matched[0].Subjects, "husband first")
	assert.Equal(t, []string{"F1", "I2"}, matched[1].Subjects)
}

func TestMarriageAfterChildBirth(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
0 @I2@ INDI
1 BIRT
2 DATE 1948
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@
1 MARR
2 DATE 1950`)

	matched := findingsFor(findings, "GD06")
	require.Len(t, matched, 1)
	assert.Equal(t, []string{"F1", "I2"}, matched[0].Subjects)
}

func TestDatelessIndividualProducesNoFindings(t *testing.T) {
	findings := analyze(t, `0 @I1@ INDI
1 NAME No /Dates/
0 @I2@ INDI
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I2@`)

	assert.Empty(t, findings)
}

func TestFullRunIsDeterministic(t *testing.T) {
	input := `0 @I1@ INDI
1 BIRT
2 DATE 1950
1 DEAT
2 DATE 1940
0 @I2@ INDI
1 BIRT
2 DATE 2050
0 @I3@ INDI
1 BIRT
2 DATE 1960
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I3@
1 MARR
2 DATE 1950`

	first := analyze(t, input)
	second := analyze(t, input)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	// Findings arrive grouped by rule id in ascending order.
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].RuleID, first[i].RuleID)
	}
}

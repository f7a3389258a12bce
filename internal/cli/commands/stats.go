package commands

import (
	"fmt"
	"strconv"

	"github.com/lineagelabs/gedtree/pkg/stats"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	var topNames int

	cmd := &cobra.Command{
		Use:   "stats <file.ged>",
		Short: "Compute aggregate statistics for a GEDCOM file",
		Long: `Compute name frequencies, birth year ranges, family sizes, lifespans
and marriage ages over a parsed GEDCOM file.

Entities missing the dates a statistic needs are excluded from that
aggregate rather than counted as zero; each section reports how many
entities it included so coverage stays visible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0], topNames)
		},
	}

	cmd.Flags().IntVar(&topNames, "top-names", 10, "Number of name tokens to show")
	return cmd
}

func runStats(cmd *cobra.Command, path string, topNames int) error {
	_, r := fromCommand(cmd)

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	report := stats.Compute(doc)

	if r.IsJSON() {
		return r.JSON(report)
	}

	r.Header("Overview")
	r.Table([]string{"Metric", "Value", "Included"}, [][]string{
		{"Individuals", strconv.Itoa(report.TotalIndividuals), strconv.Itoa(report.TotalIndividuals)},
		{"Families", strconv.Itoa(report.TotalFamilies), strconv.Itoa(report.TotalFamilies)},
		{"Named individuals", strconv.Itoa(report.Names.Included), strconv.Itoa(report.Names.Included)},
		{"Known birth years", fmt.Sprintf("%d-%d", report.BirthYears.Min, report.BirthYears.Max), strconv.Itoa(report.BirthYears.Included)},
		{"Lifespan (mean years)", formatMean(report.Lifespans.Mean, report.Lifespans.Included), strconv.Itoa(report.Lifespans.Included)},
		{"Marriage age (mean years)", formatMean(report.MarriageAges.Mean, report.MarriageAges.Included), strconv.Itoa(report.MarriageAges.Included)},
	})

	if len(report.Names.Tokens) > 0 {
		r.Printf("\n")
		r.Header("Most frequent name tokens")
		limit := topNames
		if limit > len(report.Names.Tokens) {
			limit = len(report.Names.Tokens)
		}
		rows := make([][]string, 0, limit)
		for _, tc := range report.Names.Tokens[:limit] {
			rows = append(rows, []string{tc.Token, strconv.Itoa(tc.Count)})
		}
		r.Table([]string{"Token", "Count"}, rows)
	}

	if len(report.BirthYears.Decades) > 0 {
		r.Printf("\n")
		r.Header("Births per decade")
		rows := make([][]string, 0, len(report.BirthYears.Decades))
		for _, dc := range report.BirthYears.Decades {
			rows = append(rows, []string{fmt.Sprintf("%ds", dc.Decade), strconv.Itoa(dc.Count)})
		}
		r.Table([]string{"Decade", "Births"}, rows)
	}

	if len(report.FamilySizes.Sizes) > 0 {
		r.Printf("\n")
		r.Header("Family sizes")
		rows := make([][]string, 0, len(report.FamilySizes.Sizes))
		for _, sc := range report.FamilySizes.Sizes {
			rows = append(rows, []string{strconv.Itoa(sc.Size), strconv.Itoa(sc.Count)})
		}
		r.Table([]string{"Children", "Families"}, rows)
	}

	return nil
}

func formatMean(mean float64, included int) string {
	if included == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", mean)
}

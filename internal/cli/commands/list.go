package commands

import (
	"strconv"
	"strings"

	"github.com/lineagelabs/gedtree/internal/cli/output"
	"github.com/lineagelabs/gedtree/pkg/gedcom"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var families bool

	cmd := &cobra.Command{
		Use:   "list <file.ged>",
		Short: "List the individuals or families in a GEDCOM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], families)
		},
	}

	cmd.Flags().BoolVar(&families, "families", false, "List families instead of individuals")
	return cmd
}

func runList(cmd *cobra.Command, path string, families bool) error {
	_, r := fromCommand(cmd)

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	if families {
		return listFamilies(r, doc)
	}
	return listIndividuals(r, doc)
}

func listIndividuals(r *output.Renderer, doc *gedcom.Document) error {
	individuals := doc.IndividualsInOrder()
	if r.IsJSON() {
		return r.JSON(individuals)
	}

	rows := make([][]string, 0, len(individuals))
	for _, indi := range individuals {
		rows = append(rows, []string{
			indi.ID,
			indi.Name,
			indi.Sex.String(),
			indi.BirthDate().String(),
			indi.DeathDate().String(),
		})
	}
	r.Table([]string{"ID", "Name", "Sex", "Born", "Died"}, rows)
	r.Printf("\n%d individual(s)\n", len(individuals))
	return nil
}

func listFamilies(r *output.Renderer, doc *gedcom.Document) error {
	fams := doc.FamiliesInOrder()
	if r.IsJSON() {
		return r.JSON(fams)
	}

	rows := make([][]string, 0, len(fams))
	for _, fam := range fams {
		rows = append(rows, []string{
			fam.ID,
			fam.HusbandID,
			fam.WifeID,
			strconv.Itoa(len(fam.ChildIDs)),
			strings.Join(fam.ChildIDs, ", "),
			fam.MarriageDate().String(),
		})
	}
	r.Table([]string{"ID", "Husband", "Wife", "Children", "Child IDs", "Married"}, rows)
	r.Printf("\n%d family(ies)\n", len(fams))
	return nil
}

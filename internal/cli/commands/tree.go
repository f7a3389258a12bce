package commands

import (
	"strconv"
	"strings"

	"github.com/lineagelabs/gedtree/pkg/gedcom"
	"github.com/lineagelabs/gedtree/pkg/kin"
	"github.com/spf13/cobra"
)

// TreeOptions holds options for the tree command.
type TreeOptions struct {
	Descendants bool // Walk child edges instead of parent edges
	Depth       int  // Override the configured traversal depth
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	opts := &TreeOptions{}
	cmd := &cobra.Command{
		Use:   "tree <file.ged> <individual-id>",
		Short: "Show the relatives of an individual",
		Long: `Show an individual's immediate relatives and walk their ancestors (or
descendants with --descendants) breadth-first.

Traversal depth is always bounded and revisited branches stop, so files
that record someone as their own forebear still terminate.`,
		Example: `  # Ancestors of I1, up to the configured depth
  gedtree tree family.ged I1

  # Three generations of descendants
  gedtree tree family.ged I1 --descendants --depth 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Descendants, "descendants", false, "Walk descendants instead of ancestors")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Traversal depth (default: max-depth setting)")
	return cmd
}

func runTree(cmd *cobra.Command, path, id string, opts *TreeOptions) error {
	cfg, r := fromCommand(cmd)

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	graph := kin.Build(doc)

	depth := opts.Depth
	if depth <= 0 {
		depth = cfg.MaxDepth
	}

	parents, err := graph.ParentsOf(id)
	if err != nil {
		return err
	}
	spouses, _ := graph.SpousesOf(id)
	children, _ := graph.ChildrenOf(id)
	siblings, _ := graph.SiblingsOf(id)

	var walked []string
	direction := "ancestors"
	if opts.Descendants {
		direction = "descendants"
		walked, err = graph.DescendantsOf(id, depth)
	} else {
		walked, err = graph.AncestorsOf(id, depth)
	}
	if err != nil {
		return err
	}

	if r.IsJSON() {
		return r.JSON(map[string]any{
			"id":       id,
			"parents":  parents,
			"spouses":  spouses,
			"children": children,
			"siblings": siblings,
			direction:  walked,
			"depth":    depth,
		})
	}

	indi, _ := doc.Individual(id)
	r.Header("Individual " + label(doc, id))
	if indi != nil {
		r.Table([]string{"Sex", "Born", "Died"}, [][]string{{
			indi.Sex.String(),
			indi.BirthDate().String(),
			indi.DeathDate().String(),
		}})
	}

	r.Printf("\nParents:  %s\n", labels(doc, parents))
	r.Printf("Spouses:  %s\n", labels(doc, spouses))
	r.Printf("Children: %s\n", labels(doc, children))
	r.Printf("Siblings: %s\n", labels(doc, siblings))

	r.Printf("\n")
	r.Header(direction + " (depth " + strconv.Itoa(depth) + ")")
	if len(walked) == 0 {
		r.Printf("none\n")
		return nil
	}
	rows := make([][]string, 0, len(walked))
	for _, wid := range walked {
		rows = append(rows, []string{wid, nameOf(doc, wid)})
	}
	r.Table([]string{"ID", "Name"}, rows)
	return nil
}

func label(doc *gedcom.Document, id string) string {
	if name := nameOf(doc, id); name != "" {
		return id + " (" + name + ")"
	}
	return id
}

func labels(doc *gedcom.Document, ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, label(doc, id))
	}
	return strings.Join(parts, ", ")
}

func nameOf(doc *gedcom.Document, id string) string {
	if indi, ok := doc.Individual(id); ok {
		return indi.Name
	}
	return ""
}

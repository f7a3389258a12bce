package commands

import (
	"github.com/lineagelabs/gedtree/pkg/check"
	_ "github.com/lineagelabs/gedtree/pkg/check/rules" // register built-in rules
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the available consistency rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRules(cmd, group)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only show rules in this group (dates, lineage, marriage)")
	return cmd
}

func runRules(cmd *cobra.Command, group string) error {
	_, r := fromCommand(cmd)

	rules := check.GetAll()
	if group != "" {
		rules = check.GetByGroup(group)
	}

	if r.IsJSON() {
		infos := make([]check.RuleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, rule.Info())
		}
		return r.JSON(infos)
	}

	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{
			rule.ID,
			rule.Name,
			rule.Group,
			rule.Severity.String(),
			rule.Description,
		})
	}
	r.Table([]string{"ID", "Name", "Group", "Severity", "Description"}, rows)
	return nil
}

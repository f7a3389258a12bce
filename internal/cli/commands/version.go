package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, r := fromCommand(cmd)
			if r.IsJSON() {
				return r.JSON(map[string]string{
					"version":    version,
					"build_date": buildDate,
					"git_commit": gitCommit,
				})
			}
			r.Printf("gedtree %s (built %s, commit %s)\n", version, buildDate, gitCommit)
			return nil
		},
	}
}

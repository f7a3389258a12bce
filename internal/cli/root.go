// Package cli provides the command-line interface for gedtree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lineagelabs/gedtree/internal/cli/commands"
	"github.com/lineagelabs/gedtree/internal/cli/output"
	"github.com/lineagelabs/gedtree/internal/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gedtree",
		Short: "gedtree - GEDCOM consistency checker and analyzer",
		Long: `gedtree parses GEDCOM genealogy files, builds a relationship graph
over the individuals and families they describe, and checks the result
against a catalog of temporal and structural consistency rules.

Broken input (dangling cross-references, duplicate ids) is reported
separately from genealogical inconsistencies, and neither stops a run.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			cmd.SetContext(commands.NewContext(cmd.Context(), cfg, renderer))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gedtree.yaml)")
	rootCmd.PersistentFlags().String("reference-date", "", "Reference date for future-date checks (YYYY[-MM[-DD]], default: today)")
	rootCmd.PersistentFlags().Int("max-depth", config.DefaultMaxDepth, "Maximum depth for ancestor/descendant traversals")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|markdown|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewTreeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

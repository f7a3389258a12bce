// Package commands implements the gedtree subcommands.
package commands

import (
	"context"

	"github.com/lineagelabs/gedtree/internal/cli/output"
	"github.com/lineagelabs/gedtree/internal/config"
	"github.com/spf13/cobra"
)

type ctxKey int

const (
	configKey ctxKey = iota
	rendererKey
)

// NewContext stores the loaded config and renderer on a context for
// retrieval inside command run functions.
func NewContext(ctx context.Context, cfg *config.Config, r *output.Renderer) context.Context {
	ctx = context.WithValue(ctx, configKey, cfg)
	return context.WithValue(ctx, rendererKey, r)
}

// fromCommand extracts the config and renderer placed on the command
// context by the root command. Both fall back to usable defaults so
// commands can also be run directly in tests.
func fromCommand(cmd *cobra.Command) (*config.Config, *output.Renderer) {
	cfg, _ := cmd.Context().Value(configKey).(*config.Config)
	if cfg == nil {
		cfg = &config.Config{
			MaxDepth:     config.DefaultMaxDepth,
			OutputFormat: config.DefaultOutput,
		}
	}

	r, _ := cmd.Context().Value(rendererKey).(*output.Renderer)
	if r == nil {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeText)
	}
	return cfg, r
}

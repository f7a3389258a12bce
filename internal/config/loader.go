package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "gedtree.yaml"
	ConfigFileNameAlt = "gedtree.yml"
)

// configFileUsed tracks which file the last Load read, for verbose output.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > gedtree.yaml > gedtree.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration with layered precedence: defaults, then the
// yaml config file, then GEDTREE_ environment variables, then CLI flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	configFileUsed = ""

	defaults := map[string]any{
		"max_depth": DefaultMaxDepth,
		"output":    DefaultOutput,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		configFileUsed = path
	} else if cfgFile != "" {
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	// GEDTREE_MAX_DEPTH=10 -> max_depth
	err := k.Load(env.Provider("GEDTREE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GEDTREE_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		// --max-depth -> max_depth
		p := posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "_"), value
		})
		if err := k.Load(p, nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.Verbose {
		slog.Debug("configuration loaded",
			"file", configFileUsed,
			"max_depth", cfg.MaxDepth,
			"reference_date", cfg.ReferenceDate,
		)
	}

	return &cfg, nil
}

// GetConfigFileUsed returns the path of the config file read by the last
// Load call, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

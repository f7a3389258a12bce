// Package config provides configuration management for the gedtree CLI.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lineagelabs/gedtree/pkg/gedcom"
)

// Config holds all CLI configuration options.
type Config struct {
	// ReferenceDate is the injected "today" for future-date checks,
	// as YYYY, YYYY-MM or YYYY-MM-DD. Empty means the CLI stamps the
	// current date once at invocation time.
	ReferenceDate string `koanf:"reference_date"`
	// MaxDepth bounds ancestor/descendant traversals.
	MaxDepth     int          `koanf:"max_depth"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Check        *CheckConfig `koanf:"check"`
}

// CheckConfig holds validation-engine settings.
type CheckConfig struct {
	// Disabled lists rule ids to skip
	Disabled []string `koanf:"disabled"`
	// Severity maps rule id to an override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`
	// Baseline is a path to a findings suppression file
	Baseline string `koanf:"baseline"`
}

// Default configuration values.
const (
	DefaultMaxDepth = 50
	DefaultOutput   = "text"
)

// ResolveReferenceDate returns the configured reference date, falling
// back to the given clock time when none is configured. Validation rules
// themselves never read the wall clock; the fallback happens once here
// at the pipeline boundary.
func (c *Config) ResolveReferenceDate(now time.Time) (gedcom.Date, error) {
	if c.ReferenceDate == "" {
		return gedcom.Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}, nil
	}
	return ParseReferenceDate(c.ReferenceDate)
}

// ParseReferenceDate parses a YYYY[-MM[-DD]] date string. Unlike GEDCOM
// date parsing this is strict: a malformed reference date is caller
// misconfiguration, not input data.
func ParseReferenceDate(s string) (gedcom.Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) > 3 {
		return gedcom.Date{}, fmt.Errorf("invalid reference date %q", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return gedcom.Date{}, fmt.Errorf("invalid reference date %q", s)
		}
		nums[i] = n
	}

	d := gedcom.Date{Year: nums[0]}
	if len(nums) > 1 {
		if nums[1] > 12 {
			return gedcom.Date{}, fmt.Errorf("invalid reference date %q", s)
		}
		d.Month = time.Month(nums[1])
	}
	if len(nums) > 2 {
		if nums[2] > 31 {
			return gedcom.Date{}, fmt.Errorf("invalid reference date %q", s)
		}
		d.Day = nums[2]
	}
	return d, nil
}

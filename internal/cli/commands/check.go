package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lineagelabs/gedtree/internal/cli/output"
	"github.com/lineagelabs/gedtree/internal/config"
	"github.com/lineagelabs/gedtree/pkg/check"
	_ "github.com/lineagelabs/gedtree/pkg/check/rules" // register built-in rules
	"github.com/lineagelabs/gedtree/pkg/gedcom"
	"github.com/lineagelabs/gedtree/pkg/kin"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Disable  []string // Rule ids to disable
	Rules    []string // Run only specific rules
	Severity string   // Minimum severity: error, warning, info, hint
	Baseline string   // Findings suppression file
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file.ged>",
		Short: "Run consistency rules against a GEDCOM file",
		Long: `Parse a GEDCOM file, resolve its cross-references and evaluate every
consistency rule against the resulting relationship graph.

Structural defects (dangling references, duplicate ids) are listed
separately from rule findings: the former mean the input itself is
broken, the latter mean the recorded genealogy is inconsistent.`,
		Example: `  # Check a file
  gedtree check family.ged

  # Pin the reference date so future-date checks are reproducible
  gedtree check family.ged --reference-date 2000-01-01

  # Disable specific rules
  gedtree check family.ged --disable GD02,GD03

  # Machine-readable output
  gedtree check family.ged -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule ids to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringVar(&opts.Baseline, "baseline", "", "Findings suppression file")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *CheckOptions) error {
	cfg, r := fromCommand(cmd)

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	graph := kin.Build(doc)

	today, err := cfg.ResolveReferenceDate(time.Now())
	if err != nil {
		return err
	}
	slog.Debug("running checks",
		"individuals", len(doc.Individuals),
		"families", len(doc.Families),
		"reference_date", today.String(),
	)

	analyzer := check.NewAnalyzer(buildCheckConfig(cfg, opts))
	report := analyzer.Run(&check.Context{
		Doc:      doc,
		Graph:    graph,
		Today:    today,
		MaxDepth: cfg.MaxDepth,
	})

	findings := report.Findings
	if baselinePath := baselinePath(cfg, opts); baselinePath != "" {
		baseline, err := check.LoadBaseline(baselinePath)
		if err != nil {
			return err
		}
		findings = baseline.Filter(findings)
	}
	findings = filterBySeverity(findings, opts.Severity)

	if r.IsJSON() {
		if err := r.JSON(checkResult{
			RunID:    report.RunID,
			File:     path,
			Findings: findings,
			Defects:  doc.Defects,
		}); err != nil {
			return err
		}
	} else {
		renderDefects(r, doc.Defects)
		renderFindings(r, findings)
		r.Printf("\nChecked %d individuals, %d families in %s: %d finding(s), %d defect(s)\n",
			len(doc.Individuals), len(doc.Families),
			report.Elapsed.Round(time.Millisecond), len(findings), len(doc.Defects))
	}

	if len(findings) > 0 {
		return fmt.Errorf("found %d finding(s)", len(findings))
	}
	return nil
}

// checkResult is the JSON output shape of the check command.
type checkResult struct {
	RunID    string          `json:"run_id"`
	File     string          `json:"file"`
	Findings []check.Finding `json:"findings"`
	Defects  []gedcom.Defect `json:"defects"`
}

func buildCheckConfig(cfg *config.Config, opts *CheckOptions) *check.Config {
	checkCfg := check.NewConfig()

	// Project config first (lower precedence)
	if cfg.Check != nil {
		for _, id := range cfg.Check.Disabled {
			checkCfg.Disable(strings.TrimSpace(id))
		}
		for id, name := range cfg.Check.Severity {
			if sev, ok := check.ParseSeverity(name); ok {
				checkCfg.SetSeverity(id, sev)
			}
		}
	}

	// CLI overrides
	for _, id := range opts.Disable {
		checkCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule is given, disable everything else
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			enabled[strings.TrimSpace(id)] = true
		}
		for _, rule := range check.GetAll() {
			if !enabled[rule.ID] {
				checkCfg.Disable(rule.ID)
			}
		}
	}

	return checkCfg
}

func baselinePath(cfg *config.Config, opts *CheckOptions) string {
	if opts.Baseline != "" {
		return opts.Baseline
	}
	if cfg.Check != nil {
		return cfg.Check.Baseline
	}
	return ""
}

func filterBySeverity(findings []check.Finding, threshold string) []check.Finding {
	limit, ok := check.ParseSeverity(threshold)
	if !ok {
		limit = check.SeverityHint
	}

	var kept []check.Finding
	for _, f := range findings {
		if f.Severity <= limit {
			kept = append(kept, f)
		}
	}
	return kept
}

func renderDefects(r *output.Renderer, defects []gedcom.Defect) {
	if len(defects) == 0 {
		return
	}

	r.Header("Structural defects")
	rows := make([][]string, 0, len(defects))
	for _, d := range defects {
		rows = append(rows, []string{d.Kind.String(), d.Subject, d.Field, d.Target})
	}
	r.Table([]string{"Kind", "Subject", "Field", "Target"}, rows)
	r.Printf("\n")
}

func renderFindings(r *output.Renderer, findings []check.Finding) {
	if len(findings) == 0 {
		r.Success("No findings")
		return
	}

	r.Header("Findings")
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			r.Severity(f.Severity.String()),
			f.RuleID,
			strings.Join(f.Subjects, ", "),
			f.Message,
		})
	}
	r.Table([]string{"Severity", "Rule", "Subjects", "Message"}, rows)
}

// loadDocument opens and fully parses a GEDCOM file.
func loadDocument(path string) (*gedcom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := gedcom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

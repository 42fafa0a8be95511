package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/marketlint/marketlint/internal/backend"
	"github.com/marketlint/marketlint/internal/config"
	"github.com/marketlint/marketlint/internal/engine"
	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/i18n"
	"github.com/marketlint/marketlint/internal/manifest"
	"github.com/marketlint/marketlint/internal/report"
	"github.com/marketlint/marketlint/internal/tui"
)

var (
	validateType        string
	validateStrict      bool
	validateThreshold   string
	validateHidden      bool
	validateGitignore   bool
	validateHTTPSOnly   bool
	validateFormat      string
	validateOutput      string
	validateFull        bool
	validateInteractive bool
	validateRecurse     bool
	validateBackend     string
	validateSkipDocs    bool
	validateSave        bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a plugin or marketplace directory",
	Long: `Validate the manifests under a directory, scan its file tree for
security problems, check its documentation and print a scored report.

Example:
  marketlint validate ./my-plugin
  marketlint validate ./my-marketplace --strict --format json
  marketlint validate . --severity-threshold important`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	defaults := config.Get().Defaults

	validateCmd.Flags().StringVarP(&validateType, "type", "t", "", "target type (plugin or marketplace; default: auto-detect)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", defaults.Strict, "treat missing recommended fields as blocking")
	validateCmd.Flags().StringVar(&validateThreshold, "severity-threshold", "", "drop findings below this severity (critical, important, recommended)")
	validateCmd.Flags().BoolVar(&validateHidden, "include-hidden", true, "descend into hidden directories")
	validateCmd.Flags().BoolVar(&validateGitignore, "check-gitignore", defaults.CheckGitignore, "soften findings for gitignored files")
	validateCmd.Flags().BoolVar(&validateHTTPSOnly, "https-only", false, "raise non-HTTPS URL findings to high severity")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", defaults.Format, "output format (text, json, markdown, compact)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "write the report to a file instead of stdout")
	validateCmd.Flags().BoolVar(&validateFull, "full", false, "show every finding instead of the truncated tiers")
	validateCmd.Flags().BoolVarP(&validateInteractive, "interactive", "i", false, "browse findings in the interactive TUI")
	validateCmd.Flags().BoolVar(&validateRecurse, "recurse", true, "validate the local plugin entries of a marketplace")
	validateCmd.Flags().StringVar(&validateBackend, "backend", defaults.Backend, "JSON backend (auto, jq, native)")
	validateCmd.Flags().BoolVar(&validateSkipDocs, "skip-docs", false, "skip the README and LICENSE checks")
	validateCmd.Flags().BoolVar(&validateSave, "save", false, "also keep a copy of the report under the reports directory")
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := buildEngineOptions()
	if err != nil {
		return err
	}

	rep, err := engine.Run(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if validateInteractive {
		if err := tui.RunBrowser(rep); err != nil {
			return err
		}
	} else if err := emitReport(rep, validateFormat, validateOutput, validateFull); err != nil {
		return err
	}

	if validateSave {
		if err := saveReport(rep, validateFormat, validateFull); err != nil {
			return err
		}
	}

	if rep.HasBlocking(validateStrict) {
		return errBlockingFindings
	}
	return nil
}

// saveReport keeps a timestamped copy of the report under the reports
// directory.
func saveReport(rep *report.ValidationReport, format string, full bool) error {
	if err := config.EnsureDir(config.ReportsDir()); err != nil {
		return err
	}

	ext := "txt"
	switch format {
	case "json":
		ext = "json"
	case "markdown":
		ext = "md"
	}
	path := filepath.Join(config.ReportsDir(), fmt.Sprintf("report-%s.%s", time.Now().Format("20060102-150405"), ext))

	if err := emitReport(rep, format, path, full); err != nil {
		return err
	}
	fmt.Println(i18n.T("ReportSaved", map[string]interface{}{"Path": path}))
	return nil
}

func buildEngineOptions() (engine.Options, error) {
	opts := engine.DefaultOptions()
	opts.Strict = validateStrict
	opts.Recurse = validateRecurse
	opts.SkipDocs = validateSkipDocs
	opts.Security.IncludeHidden = validateHidden
	opts.Security.CheckGitignore = validateGitignore
	opts.Security.HTTPSOnly = validateHTTPSOnly

	switch validateType {
	case "":
	case "plugin":
		opts.TargetType = manifest.TargetPlugin
	case "marketplace":
		opts.TargetType = manifest.TargetMarketplace
	default:
		return opts, fmt.Errorf(i18n.T("InvalidType", map[string]interface{}{"Value": validateType}))
	}

	switch validateBackend {
	case "", "auto":
		opts.Backend = backend.PreferAuto
	case "jq":
		opts.Backend = backend.PreferJQ
	case "native":
		opts.Backend = backend.PreferNative
	default:
		return opts, fmt.Errorf(i18n.T("InvalidBackend", map[string]interface{}{"Value": validateBackend}))
	}

	if validateThreshold != "" {
		sev := finding.Severity(validateThreshold)
		if sev.Rank() == 0 {
			return opts, fmt.Errorf(i18n.T("InvalidThreshold", map[string]interface{}{"Value": validateThreshold}))
		}
		opts.SeverityThreshold = sev
	}

	return opts, nil
}

// emitReport renders the report in the requested format and writes it to
// stdout or to the --output file.
func emitReport(rep *report.ValidationReport, format, output string, full bool) error {
	var out string
	switch format {
	case "", "text":
		out = report.RenderText(rep, full)
	case "json":
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	case "markdown":
		out = report.RenderMarkdown(rep)
	case "compact":
		out = report.RenderCompact(rep) + "\n"
	default:
		return fmt.Errorf(i18n.T("InvalidFormat", map[string]interface{}{"Value": format}))
	}

	if output != "" {
		return os.WriteFile(output, []byte(out), 0644)
	}
	fmt.Print(out)
	return nil
}

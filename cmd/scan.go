package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/marketlint/marketlint/internal/config"
	"github.com/marketlint/marketlint/internal/finding"
	"github.com/marketlint/marketlint/internal/i18n"
	"github.com/marketlint/marketlint/internal/score"
	"github.com/marketlint/marketlint/internal/security"
)

var (
	scanHidden       bool
	scanGitignore    bool
	scanHTTPSOnly    bool
	scanNoLocalhost  bool
	scanNoCode       bool
	scanFormat       string
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Run only the security scan",
	Long: `Scan a directory tree for dangerous files, unsafe URLs and
suspicious permissions, without validating manifests.

Example:
  marketlint scan ./my-plugin
  marketlint scan . --https-only`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	defaults := config.Get().Defaults

	scanCmd.Flags().BoolVar(&scanHidden, "include-hidden", true, "descend into hidden directories")
	scanCmd.Flags().BoolVar(&scanGitignore, "check-gitignore", defaults.CheckGitignore, "soften findings for gitignored files")
	scanCmd.Flags().BoolVar(&scanHTTPSOnly, "https-only", false, "raise non-HTTPS URL findings to high severity")
	scanCmd.Flags().BoolVar(&scanNoLocalhost, "no-localhost", false, "flag http://localhost URLs too")
	scanCmd.Flags().BoolVar(&scanNoCode, "no-code-patterns", false, "skip the remote-code-execution pattern scan")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "output format (text or json)")
}

var (
	scanCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	scanHighStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	scanDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScan(cmd *cobra.Command, args []string) error {
	opts := security.DefaultOptions()
	opts.IncludeHidden = scanHidden
	opts.CheckGitignore = scanGitignore
	opts.HTTPSOnly = scanHTTPSOnly
	opts.AllowLocalhost = !scanNoLocalhost
	opts.CheckCodePatterns = !scanNoCode

	findings, err := security.Scan(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	sec := score.Security(findings)

	if scanFormat == "json" {
		return emitScanJSON(args[0], findings, sec)
	}

	fmt.Println(i18n.T("ScanHeader", map[string]interface{}{"Path": args[0]}))
	fmt.Printf("%s\n\n", i18n.T("ScanScore", map[string]interface{}{
		"Value":    sec.Value,
		"Critical": sec.Critical,
		"High":     sec.High,
		"Medium":   sec.Medium,
		"Low":      sec.Low,
	}))

	if len(findings) == 0 {
		fmt.Println(i18n.T("ScanClean", nil))
		return nil
	}

	for _, f := range findings {
		line := fmt.Sprintf("[%s] %s", f.Severity, f.Message)
		switch f.Severity {
		case finding.SeverityCritical:
			fmt.Println(scanCriticalStyle.Render(line))
		case finding.SeverityHigh:
			fmt.Println(scanHighStyle.Render(line))
		default:
			fmt.Println(line)
		}
		if f.Location != "" {
			fmt.Println(scanDimStyle.Render("  " + i18n.T("FindingLocation", map[string]interface{}{"Location": f.Location})))
		}
		if f.SuggestedFix != "" {
			fmt.Println(scanDimStyle.Render("  " + i18n.T("FindingFix", map[string]interface{}{"Fix": f.SuggestedFix})))
		}
	}

	if sec.Critical > 0 {
		return errBlockingFindings
	}
	return nil
}

func emitScanJSON(target string, findings []finding.Finding, sec score.SecurityScore) error {
	payload := struct {
		TargetPath    string              `json:"target_path"`
		SecurityScore score.SecurityScore `json:"security_score"`
		Findings      []finding.Finding   `json:"findings"`
	}{target, sec, findings}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if sec.Critical > 0 {
		return errBlockingFindings
	}
	return nil
}

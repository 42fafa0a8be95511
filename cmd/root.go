package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errBlockingFindings signals that validation completed but found blocking
// problems. The report is already printed; Execute only maps it to exit 1.
var errBlockingFindings = errors.New("blocking findings")

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "marketlint",
		Short:         "Validator and quality scorer for Claude Code plugin manifests",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `marketlint validates plugin.json and marketplace.json manifests,
scans plugin trees for dangerous files and unsafe URLs, and scores
the result on a 0-100 quality scale.

Commands:
  validate     Validate a plugin or marketplace directory
  scan         Run only the security scan
  score        Compute a quality score from finding counts
  browse       Browse a report's findings interactively
  config       Manage configuration
  version      Print version information

Shortcuts (aliases):
  check        = validate
  sec          = scan`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

// createAliasCommand creates a root-level alias that shares flags with a subcommand
func createAliasCommand(sub *cobra.Command, name string) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:   name,
		Short: sub.Short + " (alias)",
		Long:  sub.Long,
		Args:  sub.Args,
		RunE:  sub.RunE,
	}
	// Copy all flags from the original command
	sub.Flags().VisitAll(func(f *pflag.Flag) {
		aliasCmd.Flags().AddFlag(f)
	})
	return aliasCmd
}

// Execute runs the root command and maps errors to exit codes:
// 0 clean, 1 blocking findings, 2 invocation or environment failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errBlockingFindings) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}

// RegisterAliases registers the root-level shortcuts.
// Must be called after the subcommands are initialized.
func RegisterAliases() {
	rootCmd.AddCommand(createAliasCommand(validateCmd, "check"))
	rootCmd.AddCommand(createAliasCommand(scanCmd, "sec"))
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marketlint/marketlint/internal/engine"
	"github.com/marketlint/marketlint/internal/tui"
)

var browseStrict bool

var browseCmd = &cobra.Command{
	Use:   "browse <path>",
	Short: "Browse a target's findings interactively",
	Long: `Validate a target and open the interactive finding browser.

Filter findings by typing, cycle the priority tier with Tab.

Example:
  marketlint browse ./my-plugin`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseStrict, "strict", false, "treat missing recommended fields as blocking")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts := engine.DefaultOptions()
	opts.Strict = browseStrict

	rep, err := engine.Run(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	return tui.RunBrowser(rep)
}

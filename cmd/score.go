package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marketlint/marketlint/internal/i18n"
	"github.com/marketlint/marketlint/internal/score"
)

var scoreCmd = &cobra.Command{
	Use:   "score <critical> <warnings> <missing>",
	Short: "Compute a quality score from finding counts",
	Long: `Compute the 0-100 quality score for a given number of critical
errors, warnings and missing recommended fields, without running a
validation.

Example:
  marketlint score 0 0 0
  marketlint score 2 0 0`,
	Args: cobra.ExactArgs(3),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	counts := make([]int, 3)
	names := []string{"critical", "warnings", "missing"}
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf(i18n.T("InvalidCount", map[string]interface{}{"Name": names[i], "Value": arg}))
		}
		counts[i] = n
	}

	s := score.FromCounts(counts[0], counts[1], counts[2])

	fmt.Println(i18n.T("ScoreSummary", map[string]interface{}{
		"Value":  s.Value,
		"Stars":  score.Stars(s.Stars),
		"Rating": s.Rating,
	}))
	fmt.Println()
	fmt.Printf("  %s\n", i18n.T("ScoreBase", map[string]interface{}{"Base": s.Breakdown.Base}))
	fmt.Printf("  %s\n", i18n.T("ScoreErrorsPenalty", map[string]interface{}{"Penalty": s.Breakdown.ErrorPenalty, "Count": counts[0]}))
	fmt.Printf("  %s\n", i18n.T("ScoreWarningsPenalty", map[string]interface{}{"Penalty": s.Breakdown.WarningPenalty, "Count": counts[1]}))
	fmt.Printf("  %s\n", i18n.T("ScoreMissingPenalty", map[string]interface{}{"Penalty": s.Breakdown.MissingPenalty, "Count": counts[2]}))
	fmt.Println()
	fmt.Println(i18n.T("ScorePublicationReady", map[string]interface{}{"Ready": s.PublicationReady}))

	return nil
}

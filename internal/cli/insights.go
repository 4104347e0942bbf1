package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var insightsJSON bool

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show insights over the last 30 days",
	Args:  cobra.NoArgs,
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "print as JSON")
}

func runInsights(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		ins := j.Insights()
		out := cmd.OutOrStdout()

		if insightsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ins)
		}

		fmt.Fprintln(out, "## Insights (last 30 days)")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  mood:          %s (%s)\n", ins.AverageMood, ins.MoodTrend)
		fmt.Fprintf(out, "  gifts:         %d total, average significance %.1f\n", ins.TotalGifts, ins.AverageSignificance)
		if ins.DaysSinceLastGift != nil {
			fmt.Fprintf(out, "  last gift:     %d days ago\n", *ins.DaysSinceLastGift)
		}
		fmt.Fprintf(out, "  fights:        %d\n", ins.FightFrequency)

		if len(ins.Recommendations) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "## Recommendations")
			for _, r := range ins.Recommendations {
				fmt.Fprintf(out, "- %s\n", r)
			}
		}
		return nil
	})
}

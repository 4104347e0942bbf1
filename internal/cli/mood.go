package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review moods",
}

var (
	moodNotes string
	moodDate  string
	moodLimit int
)

var moodLogCmd = &cobra.Command{
	Use:   "log <mood>",
	Short: "Log a mood (happy, sad, excited, calm, anxious, romantic, neutral)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoodLog,
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent moods, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMoodList,
}

func init() {
	moodLogCmd.Flags().StringVar(&moodNotes, "notes", "", "optional notes")
	moodLogCmd.Flags().StringVar(&moodDate, "date", "", "day as YYYY-MM-DD (default now)")
	moodListCmd.Flags().IntVarP(&moodLimit, "limit", "n", 7, "maximum number of entries (0 for all)")

	moodCmd.AddCommand(moodLogCmd)
	moodCmd.AddCommand(moodListCmd)
}

func runMoodLog(cmd *cobra.Command, args []string) error {
	date, err := parseDay(moodDate)
	if err != nil {
		return err
	}
	in := model.MoodInput{Date: date, Mood: model.Mood(args[0])}
	if moodNotes != "" {
		in.Notes = &moodNotes
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return withJournal(cmd.Context(), func(j *journal) error {
		m := j.AddMoodEntry(in)
		fmt.Fprintf(cmd.OutOrStdout(), "logged %s %s\n", m.Mood, m.ID)
		return nil
	})
}

func runMoodList(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		out := cmd.OutOrStdout()
		moods := j.RecentMoods(moodLimit)
		if len(moods) == 0 {
			fmt.Fprintln(out, "No moods logged.")
			return nil
		}
		for _, m := range moods {
			fmt.Fprintf(out, "%s  %-8s", m.Date.Local().Format(dateLayout), m.Mood)
			if m.Notes != nil {
				fmt.Fprintf(out, "  %s", *m.Notes)
			}
			fmt.Fprintln(out)
		}
		return nil
	})
}

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

const dateLayout = "2006-01-02"

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar events",
}

var (
	eventType        string
	eventTitle       string
	eventDate        string
	eventDescription string
	eventMood        string
	eventCost        int
	eventRomance     int
	eventScale       int
	eventCompleted   bool
	eventReason      string
	eventNotes       string
	eventListDay     string
)

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an event",
	Long: "Add a gift, date, activity, reminder or fight. Gifts, dates and activities may carry " +
		"--cost, --romance and --scale ratings (1-10); fights take --reason and --notes.",
	Args: cobra.NoArgs,
	RunE: runEventAdd,
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, optionally for one day",
	Args:  cobra.NoArgs,
	RunE:  runEventList,
}

var eventCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an event completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventComplete,
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventDelete,
}

func init() {
	f := eventAddCmd.Flags()
	f.StringVarP(&eventType, "type", "t", "", "gift, date, activity, reminder or fight")
	f.StringVar(&eventTitle, "title", "", "event title")
	f.StringVar(&eventDate, "date", "", "event day as YYYY-MM-DD (default today)")
	f.StringVar(&eventDescription, "description", "", "free-text description")
	f.StringVar(&eventMood, "mood", "", "mood attached to the event")
	f.IntVar(&eventCost, "cost", 0, "cost rating 1-10")
	f.IntVar(&eventRomance, "romance", 0, "romanticism rating 1-10")
	f.IntVar(&eventScale, "scale", 0, "scale rating 1-10")
	f.BoolVar(&eventCompleted, "completed", false, "mark the event as already done")
	f.StringVar(&eventReason, "reason", "", "fight reason")
	f.StringVar(&eventNotes, "notes", "", "fight notes")
	eventAddCmd.MarkFlagRequired("type")
	eventAddCmd.MarkFlagRequired("title")

	eventListCmd.Flags().StringVar(&eventListDay, "day", "", "only events on this day (YYYY-MM-DD)")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventCompleteCmd)
	eventCmd.AddCommand(eventDeleteCmd)
}

// parseDay parses a YYYY-MM-DD flag in local time; empty means now.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func eventInputFromFlags(cmd *cobra.Command) (model.EventInput, error) {
	date, err := parseDay(eventDate)
	if err != nil {
		return model.EventInput{}, err
	}
	in := model.EventInput{
		Date:      date,
		Type:      model.EventType(eventType),
		Title:     eventTitle,
		Completed: eventCompleted,
	}
	if eventDescription != "" {
		in.Description = &eventDescription
	}
	if eventMood != "" {
		m := model.Mood(eventMood)
		in.Mood = &m
	}
	f := cmd.Flags()
	if f.Changed("cost") || f.Changed("romance") || f.Changed("scale") {
		in.Ratings = &model.Ratings{Cost: eventCost, Romanticism: eventRomance, Scale: eventScale}
	}
	if f.Changed("reason") || f.Changed("notes") || in.Type == model.EventFight {
		in.FightDetails = &model.FightDetails{Reason: eventReason, Notes: eventNotes}
	}
	return in, in.Validate()
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	in, err := eventInputFromFlags(cmd)
	if err != nil {
		return err
	}
	return withJournal(cmd.Context(), func(j *journal) error {
		e := j.AddEvent(in)
		fmt.Fprintf(cmd.OutOrStdout(), "added %s %s\n", e.Type, e.ID)
		return nil
	})
}

func runEventList(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		events := j.Events()
		if eventListDay != "" {
			day, err := parseDay(eventListDay)
			if err != nil {
				return err
			}
			events = j.EventsOn(day)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No events.")
			return nil
		}
		for _, e := range events {
			printEvent(out, e)
		}
		return nil
	})
}

func printEvent(w io.Writer, e model.Event) {
	done := " "
	if e.Completed {
		done = "x"
	}
	fmt.Fprintf(w, "[%s] %s  %-8s %s  (%s)", done, e.Date.Local().Format(dateLayout), e.Type, e.Title, e.ID)
	if e.Significance != nil {
		fmt.Fprintf(w, "  significance %.1f", *e.Significance)
	}
	if e.FightDetails != nil && e.FightDetails.Reason != "" {
		fmt.Fprintf(w, "  reason: %s", e.FightDetails.Reason)
	}
	fmt.Fprintln(w)
}

func runEventComplete(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		done := true
		if !j.UpdateEvent(args[0], model.EventPatch{Completed: &done}) {
			return fmt.Errorf("event %s not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "completed %s\n", args[0])
		return nil
	})
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		j.DeleteEvent(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	})
}

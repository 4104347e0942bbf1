package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show reminder status",
	Args:  cobra.NoArgs,
	RunE:  runReminders,
}

var reminderAddCmd = &cobra.Command{
	Use:   "add <gift|date|activity> <every-days>",
	Short: "Add a recurring reminder",
	Args:  cobra.ExactArgs(2),
	RunE:  runReminderAdd,
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminderDelete,
}

func init() {
	remindersCmd.AddCommand(reminderAddCmd)
	remindersCmd.AddCommand(reminderDeleteCmd)
}

func runReminders(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		out := cmd.OutOrStdout()
		reports := j.ReminderStatuses()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reminders.")
			return nil
		}
		for _, rep := range reports {
			r := rep.Reminder
			switch {
			case rep.Status == nil:
				fmt.Fprintf(out, "  %-8s every %dd  disabled  (%s)\n", r.EventType, r.FrequencyDays, r.ID)
			case rep.Status.NeedsReminder:
				fmt.Fprintf(out, "! %-8s every %dd  %s  (%s)\n", r.EventType, r.FrequencyDays, rep.Status.Message, r.ID)
			default:
				fmt.Fprintf(out, "  %-8s every %dd  %s  (%s)\n", r.EventType, r.FrequencyDays, rep.Status.Message, r.ID)
			}
		}
		return nil
	})
}

func runReminderAdd(cmd *cobra.Command, args []string) error {
	days, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("every-days must be a number: %w", err)
	}
	in := model.ReminderInput{EventType: model.EventType(args[0]), FrequencyDays: days}
	if err := in.Validate(); err != nil {
		return err
	}
	return withJournal(cmd.Context(), func(j *journal) error {
		r := j.AddReminder(in)
		fmt.Fprintf(cmd.OutOrStdout(), "added reminder %s\n", r.ID)
		return nil
	})
}

func runReminderDelete(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		j.DeleteReminder(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	})
}

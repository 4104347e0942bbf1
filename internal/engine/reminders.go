package engine

import (
	"fmt"
	"time"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// MsgNeverCompleted is reported when no completed event of the reminder's
// type exists.
const MsgNeverCompleted = "never completed"

// EvaluateReminder decides whether a reminder is due. Disabled reminders
// yield nil. The reminder's LastDone field is not consulted; the most recent
// completed event of the matching type is.
func EvaluateReminder(r model.Reminder, events []model.Event, now time.Time) *model.ReminderStatus {
	if !r.Enabled {
		return nil
	}

	var last *model.Event
	for i := range events {
		e := &events[i]
		if e.Type != r.EventType || !e.Completed {
			continue
		}
		if last == nil || e.Date.After(last.Date) {
			last = e
		}
	}
	if last == nil {
		return &model.ReminderStatus{NeedsReminder: true, Message: MsgNeverCompleted}
	}

	daysSince := DaysSince(last.Date, now)
	if daysSince >= r.FrequencyDays {
		return &model.ReminderStatus{
			NeedsReminder: true,
			Message:       fmt.Sprintf("%d days passed (remind every %d)", daysSince, r.FrequencyDays),
		}
	}
	return &model.ReminderStatus{
		NeedsReminder: false,
		Message:       fmt.Sprintf("%d days left", r.FrequencyDays-daysSince),
	}
}

// ReminderReport pairs a reminder with its evaluated status.
type ReminderReport struct {
	Reminder model.Reminder        `json:"reminder"`
	Status   *model.ReminderStatus `json:"status"`
}

// EvaluateReminders evaluates every reminder in order.
func EvaluateReminders(reminders []model.Reminder, events []model.Event, now time.Time) []ReminderReport {
	out := make([]ReminderReport, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ReminderReport{Reminder: r, Status: EvaluateReminder(r, events, now)})
	}
	return out
}

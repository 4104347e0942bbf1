package engine

import (
	"time"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func gift(date time.Time, completed bool, sig *float64) model.Event {
	return model.Event{
		ID:           "gift-" + date.Format(time.RFC3339),
		Date:         date,
		Type:         model.EventGift,
		Title:        "gift",
		Ratings:      &model.Ratings{Cost: 5, Romanticism: 5, Scale: 5},
		Significance: sig,
		Completed:    completed,
	}
}

func fight(date time.Time) model.Event {
	return model.Event{
		Date:         date,
		Type:         model.EventFight,
		Title:        "fight",
		FightDetails: &model.FightDetails{Reason: "chores"},
	}
}

func moodAt(date time.Time, m model.Mood) model.MoodEntry {
	return model.MoodEntry{Date: date, Mood: m}
}

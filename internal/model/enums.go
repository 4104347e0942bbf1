package model

// EventType is the kind of a calendar event.
type EventType string

const (
	EventGift     EventType = "gift"
	EventDate     EventType = "date"
	EventActivity EventType = "activity"
	EventReminder EventType = "reminder"
	EventFight    EventType = "fight"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventGift, EventDate, EventActivity, EventReminder, EventFight:
		return true
	}
	return false
}

// Remindable reports whether reminders may be configured for this type.
func (t EventType) Remindable() bool {
	switch t {
	case EventGift, EventDate, EventActivity:
		return true
	}
	return false
}

// Mood is a logged emotional state.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodCalm     Mood = "calm"
	MoodAnxious  Mood = "anxious"
	MoodRomantic Mood = "romantic"
	MoodNeutral  Mood = "neutral"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodExcited, MoodCalm, MoodAnxious, MoodRomantic, MoodNeutral:
		return true
	}
	return false
}

// MoodTrend is the direction of mood over the insights window.
type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendStable    MoodTrend = "stable"
	TrendDeclining MoodTrend = "declining"
)

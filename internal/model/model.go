package model

import "time"

// Ratings are the user's 1-10 scores for a gift, date or activity.
type Ratings struct {
	Cost        int `json:"cost"`
	Romanticism int `json:"romanticism"`
	Scale       int `json:"scale"`
}

// FightDetails describe a fight event.
type FightDetails struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// Event is a single calendar entry.
//
// Ratings and FightDetails are mutually exclusive: fights carry details,
// everything else carries ratings. Significance is derived from Ratings by the
// record store and is never set by callers.
type Event struct {
	ID           string        `json:"id"`
	Date         time.Time     `json:"date"`
	Type         EventType     `json:"type"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Mood         *Mood         `json:"mood,omitempty"`
	Ratings      *Ratings      `json:"ratings,omitempty"`
	Significance *float64      `json:"significance,omitempty"`
	FightDetails *FightDetails `json:"fightDetails,omitempty"`
	Completed    bool          `json:"completed"`
}

// Wish is an item on the partner's wish list.
type Wish struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Fulfilled     bool       `json:"fulfilled"`
	FulfilledDate *time.Time `json:"fulfilledDate,omitempty"`
}

// Reminder asks for an event type to recur every FrequencyDays days.
type Reminder struct {
	ID            string     `json:"id"`
	EventType     EventType  `json:"eventType"`
	LastDone      *time.Time `json:"lastDone,omitempty"` // not read by the evaluator
	FrequencyDays int        `json:"frequencyDays"`
	Enabled       bool       `json:"enabled"`
}

// MoodEntry is one logged mood.
type MoodEntry struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Mood  Mood      `json:"mood"`
	Notes *string   `json:"notes,omitempty"`
}

// Formula holds the weights of the significance score. Weights are a plain
// weighted sum and need not add up to 1.
type Formula struct {
	CostWeight        float64 `json:"costWeight"`
	RomanticismWeight float64 `json:"romanticismWeight"`
	ScaleWeight       float64 `json:"scaleWeight"`
}

// DefaultFormula returns the out-of-the-box significance weights.
func DefaultFormula() Formula {
	return Formula{
		CostWeight:        0.3,
		RomanticismWeight: 0.5,
		ScaleWeight:       0.2,
	}
}

// Settings is the single configuration record.
type Settings struct {
	IsPremium           bool    `json:"isPremium"`
	AvatarPhoto         *string `json:"avatarPhoto,omitempty"`
	PartnerName         string  `json:"partnerName"`
	SignificanceFormula Formula `json:"significanceFormula"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		IsPremium:           false,
		PartnerName:         "Partner",
		SignificanceFormula: DefaultFormula(),
	}
}

// Snapshot is the full persisted state.
type Snapshot struct {
	Events      []Event     `json:"events"`
	Wishes      []Wish      `json:"wishes"`
	Reminders   []Reminder  `json:"reminders"`
	MoodEntries []MoodEntry `json:"moodEntries"`
	Settings    Settings    `json:"settings"`
}

// DefaultSnapshot is an empty state with default settings.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Events:      []Event{},
		Wishes:      []Wish{},
		Reminders:   []Reminder{},
		MoodEntries: []MoodEntry{},
		Settings:    DefaultSettings(),
	}
}

// Normalize replaces nil collections with empty ones so the snapshot
// serialises as arrays.
func (s *Snapshot) Normalize() {
	if s.Events == nil {
		s.Events = []Event{}
	}
	if s.Wishes == nil {
		s.Wishes = []Wish{}
	}
	if s.Reminders == nil {
		s.Reminders = []Reminder{}
	}
	if s.MoodEntries == nil {
		s.MoodEntries = []MoodEntry{}
	}
}

// Insights is the aggregate report over the rolling window.
type Insights struct {
	AverageMood         Mood       `json:"averageMood"`
	MoodTrend           MoodTrend  `json:"moodTrend"`
	TotalGifts          int        `json:"totalGifts"`
	AverageSignificance float64    `json:"averageSignificance"`
	LastGiftDate        *time.Time `json:"lastGiftDate,omitempty"`
	DaysSinceLastGift   *int       `json:"daysSinceLastGift,omitempty"`
	FightFrequency      int        `json:"fightFrequency"`
	Recommendations     []string   `json:"recommendations"`
}

// ReminderStatus is the evaluator's verdict for one enabled reminder.
type ReminderStatus struct {
	NeedsReminder bool   `json:"needsReminder"`
	Message       string `json:"message"`
}

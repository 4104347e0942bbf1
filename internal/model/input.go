package model

import "time"

// EventInput is the data for a new event. ID and Significance are assigned
// by the record store.
type EventInput struct {
	Date         time.Time     `json:"date"`
	Type         EventType     `json:"type"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Mood         *Mood         `json:"mood,omitempty"`
	Ratings      *Ratings      `json:"ratings,omitempty"`
	FightDetails *FightDetails `json:"fightDetails,omitempty"`
	Completed    bool          `json:"completed"`
}

// EventPatch is a partial event update. Nil fields are left untouched.
type EventPatch struct {
	Date         *time.Time    `json:"date,omitempty"`
	Type         *EventType    `json:"type,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Mood         *Mood         `json:"mood,omitempty"`
	Ratings      *Ratings      `json:"ratings,omitempty"`
	FightDetails *FightDetails `json:"fightDetails,omitempty"`
	Completed    *bool         `json:"completed,omitempty"`
}

// Apply merges the non-nil fields of p onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = ptr(*p.Description)
	}
	if p.Mood != nil {
		e.Mood = ptr(*p.Mood)
	}
	if p.Ratings != nil {
		e.Ratings = ptr(*p.Ratings)
	}
	if p.FightDetails != nil {
		e.FightDetails = ptr(*p.FightDetails)
	}
	if p.Completed != nil {
		e.Completed = *p.Completed
	}
}

// WishInput is the data for a new wish.
type WishInput struct {
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Fulfilled     bool       `json:"fulfilled"`
	FulfilledDate *time.Time `json:"fulfilledDate,omitempty"`
}

// WishPatch is a partial wish update.
type WishPatch struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Fulfilled     *bool      `json:"fulfilled,omitempty"`
	FulfilledDate *time.Time `json:"fulfilledDate,omitempty"`
}

func (p WishPatch) Apply(w *Wish) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = ptr(*p.Description)
	}
	if p.Category != nil {
		w.Category = ptr(*p.Category)
	}
	if p.Fulfilled != nil {
		w.Fulfilled = *p.Fulfilled
	}
	if p.FulfilledDate != nil {
		w.FulfilledDate = ptr(*p.FulfilledDate)
	}
}

// ReminderInput is the data for a new reminder. Enabled defaults to true.
type ReminderInput struct {
	EventType     EventType  `json:"eventType"`
	LastDone      *time.Time `json:"lastDone,omitempty"`
	FrequencyDays int        `json:"frequencyDays"`
	Enabled       *bool      `json:"enabled,omitempty"`
}

// ReminderPatch is a partial reminder update.
type ReminderPatch struct {
	EventType     *EventType `json:"eventType,omitempty"`
	LastDone      *time.Time `json:"lastDone,omitempty"`
	FrequencyDays *int       `json:"frequencyDays,omitempty"`
	Enabled       *bool      `json:"enabled,omitempty"`
}

func (p ReminderPatch) Apply(r *Reminder) {
	if p.EventType != nil {
		r.EventType = *p.EventType
	}
	if p.LastDone != nil {
		r.LastDone = ptr(*p.LastDone)
	}
	if p.FrequencyDays != nil {
		r.FrequencyDays = *p.FrequencyDays
	}
	if p.Enabled != nil {
		r.Enabled = *p.Enabled
	}
}

// MoodInput is the data for a new mood entry.
type MoodInput struct {
	Date  time.Time `json:"date"`
	Mood  Mood      `json:"mood"`
	Notes *string   `json:"notes,omitempty"`
}

// MoodPatch is a partial mood entry update.
type MoodPatch struct {
	Date  *time.Time `json:"date,omitempty"`
	Mood  *Mood      `json:"mood,omitempty"`
	Notes *string    `json:"notes,omitempty"`
}

func (p MoodPatch) Apply(m *MoodEntry) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Mood != nil {
		m.Mood = *p.Mood
	}
	if p.Notes != nil {
		m.Notes = ptr(*p.Notes)
	}
}

// SettingsPatch is a shallow settings update. SignificanceFormula replaces
// the whole formula when set.
type SettingsPatch struct {
	IsPremium           *bool    `json:"isPremium,omitempty"`
	AvatarPhoto         *string  `json:"avatarPhoto,omitempty"`
	PartnerName         *string  `json:"partnerName,omitempty"`
	SignificanceFormula *Formula `json:"significanceFormula,omitempty"`
}

func (p SettingsPatch) Apply(s *Settings) {
	if p.IsPremium != nil {
		s.IsPremium = *p.IsPremium
	}
	if p.AvatarPhoto != nil {
		s.AvatarPhoto = ptr(*p.AvatarPhoto)
	}
	if p.PartnerName != nil {
		s.PartnerName = *p.PartnerName
	}
	if p.SignificanceFormula != nil {
		s.SignificanceFormula = *p.SignificanceFormula
	}
}

func ptr[T any](v T) *T { return &v }

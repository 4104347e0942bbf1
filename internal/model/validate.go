package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation error")

// FieldError describes a problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field-level problems found at the API boundary.
// The record store never validates; callers do.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type fieldErrors []FieldError

func (fe *fieldErrors) add(field, msg string) {
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Errors: fe}
}

func (r Ratings) validate(errs *fieldErrors) {
	check := func(name string, v int) {
		if v < 1 || v > 10 {
			errs.add("ratings."+name, "must be between 1 and 10")
		}
	}
	check("cost", r.Cost)
	check("romanticism", r.Romanticism)
	check("scale", r.Scale)
}

// Validate checks a new event, including the fight/ratings exclusivity.
func (in EventInput) Validate() error {
	var errs fieldErrors
	if !in.Type.IsValid() {
		errs.add("type", fmt.Sprintf("unknown event type %q", in.Type))
	}
	if strings.TrimSpace(in.Title) == "" {
		errs.add("title", "required")
	}
	if in.Date.IsZero() {
		errs.add("date", "required")
	}
	if in.Mood != nil && !in.Mood.IsValid() {
		errs.add("mood", fmt.Sprintf("unknown mood %q", *in.Mood))
	}
	if in.Type == EventFight {
		if in.Ratings != nil {
			errs.add("ratings", "not allowed for fights")
		}
		if in.FightDetails == nil {
			errs.add("fightDetails", "required for fights")
		}
	} else {
		if in.FightDetails != nil {
			errs.add("fightDetails", "only allowed for fights")
		}
		if in.Ratings != nil {
			in.Ratings.validate(&errs)
		}
	}
	return errs.err()
}

// Validate checks the fields present in a patch.
func (p EventPatch) Validate() error {
	var errs fieldErrors
	if p.Type != nil && !p.Type.IsValid() {
		errs.add("type", fmt.Sprintf("unknown event type %q", *p.Type))
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs.add("title", "must not be empty")
	}
	if p.Mood != nil && !p.Mood.IsValid() {
		errs.add("mood", fmt.Sprintf("unknown mood %q", *p.Mood))
	}
	if p.Ratings != nil {
		p.Ratings.validate(&errs)
	}
	if p.Ratings != nil && p.FightDetails != nil {
		errs.add("ratings", "ratings and fightDetails are mutually exclusive")
	}
	return errs.err()
}

func (in WishInput) Validate() error {
	var errs fieldErrors
	if strings.TrimSpace(in.Title) == "" {
		errs.add("title", "required")
	}
	if in.Fulfilled && in.FulfilledDate == nil {
		errs.add("fulfilledDate", "required when fulfilled")
	}
	return errs.err()
}

func (p WishPatch) Validate() error {
	var errs fieldErrors
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs.add("title", "must not be empty")
	}
	if p.Fulfilled != nil && *p.Fulfilled && p.FulfilledDate == nil {
		errs.add("fulfilledDate", "required when fulfilled")
	}
	return errs.err()
}

func (in ReminderInput) Validate() error {
	var errs fieldErrors
	if !in.EventType.Remindable() {
		errs.add("eventType", "must be gift, date or activity")
	}
	if in.FrequencyDays <= 0 {
		errs.add("frequencyDays", "must be positive")
	}
	return errs.err()
}

func (p ReminderPatch) Validate() error {
	var errs fieldErrors
	if p.EventType != nil && !p.EventType.Remindable() {
		errs.add("eventType", "must be gift, date or activity")
	}
	if p.FrequencyDays != nil && *p.FrequencyDays <= 0 {
		errs.add("frequencyDays", "must be positive")
	}
	return errs.err()
}

func (in MoodInput) Validate() error {
	var errs fieldErrors
	if !in.Mood.IsValid() {
		errs.add("mood", fmt.Sprintf("unknown mood %q", in.Mood))
	}
	if in.Date.IsZero() {
		errs.add("date", "required")
	}
	return errs.err()
}

func (p MoodPatch) Validate() error {
	var errs fieldErrors
	if p.Mood != nil && !p.Mood.IsValid() {
		errs.add("mood", fmt.Sprintf("unknown mood %q", *p.Mood))
	}
	return errs.err()
}

func (p SettingsPatch) Validate() error {
	var errs fieldErrors
	if p.PartnerName != nil && strings.TrimSpace(*p.PartnerName) == "" {
		errs.add("partnerName", "must not be empty")
	}
	return errs.err()
}

// Validate checks a stored event, typically the result of applying a patch.
// Unlike EventInput it does not require fightDetails on a fight, since
// older journals carry fights without them.
func (e Event) Validate() error {
	var errs fieldErrors
	if !e.Type.IsValid() {
		errs.add("type", fmt.Sprintf("unknown event type %q", e.Type))
	}
	if strings.TrimSpace(e.Title) == "" {
		errs.add("title", "required")
	}
	if e.Date.IsZero() {
		errs.add("date", "required")
	}
	if e.Mood != nil && !e.Mood.IsValid() {
		errs.add("mood", fmt.Sprintf("unknown mood %q", *e.Mood))
	}
	if e.Type == EventFight {
		if e.Ratings != nil {
			errs.add("ratings", "not allowed for fights")
		}
	} else {
		if e.FightDetails != nil {
			errs.add("fightDetails", "only allowed for fights")
		}
		if e.Ratings != nil {
			e.Ratings.validate(&errs)
		}
	}
	return errs.err()
}

// Validate checks an imported state before it replaces the journal: every
// record must be well formed and ids must be unique within a collection.
func (s Snapshot) Validate() error {
	var errs fieldErrors

	ids := make(map[string]bool, len(s.Events))
	for i, e := range s.Events {
		prefix := fmt.Sprintf("events[%d]", i)
		errs.checkID(prefix, e.ID, ids)
		errs.nest(prefix, e.Validate())
	}

	ids = make(map[string]bool, len(s.Wishes))
	for i, w := range s.Wishes {
		prefix := fmt.Sprintf("wishes[%d]", i)
		errs.checkID(prefix, w.ID, ids)
		if strings.TrimSpace(w.Title) == "" {
			errs.add(prefix+".title", "required")
		}
	}

	ids = make(map[string]bool, len(s.Reminders))
	for i, r := range s.Reminders {
		prefix := fmt.Sprintf("reminders[%d]", i)
		errs.checkID(prefix, r.ID, ids)
		if !r.EventType.Remindable() {
			errs.add(prefix+".eventType", "must be gift, date or activity")
		}
		if r.FrequencyDays <= 0 {
			errs.add(prefix+".frequencyDays", "must be positive")
		}
	}

	ids = make(map[string]bool, len(s.MoodEntries))
	for i, m := range s.MoodEntries {
		prefix := fmt.Sprintf("moodEntries[%d]", i)
		errs.checkID(prefix, m.ID, ids)
		if !m.Mood.IsValid() {
			errs.add(prefix+".mood", fmt.Sprintf("unknown mood %q", m.Mood))
		}
	}
	return errs.err()
}

func (fe *fieldErrors) checkID(prefix, id string, seen map[string]bool) {
	switch {
	case id == "":
		fe.add(prefix+".id", "required")
	case seen[id]:
		fe.add(prefix+".id", fmt.Sprintf("duplicate id %q", id))
	default:
		seen[id] = true
	}
}

func (fe *fieldErrors) nest(prefix string, err error) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return
	}
	for _, e := range ve.Errors {
		fe.add(prefix+"."+e.Field, e.Message)
	}
}

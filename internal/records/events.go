package records

import (
	"time"

	"github.com/kupikrutcher/relationship-app/internal/engine"
	"github.com/kupikrutcher/relationship-app/internal/model"
)

// AddEvent appends a new event. When ratings are present its significance is
// computed once with the current formula.
func (s *Store) AddEvent(in model.EventInput) model.Event {
	s.mu.Lock()
	e := model.Event{
		ID:           s.newID(),
		Date:         in.Date,
		Type:         in.Type,
		Title:        in.Title,
		Description:  clonePtr(in.Description),
		Mood:         clonePtr(in.Mood),
		Ratings:      clonePtr(in.Ratings),
		FightDetails: clonePtr(in.FightDetails),
		Completed:    in.Completed,
	}
	if e.Ratings != nil {
		sig := engine.Significance(e.Ratings, s.settings.SignificanceFormula)
		e.Significance = &sig
	}
	s.events = append(s.events, e)
	s.mu.Unlock()

	s.scheduleSave()
	return cloneEvent(e)
}

// UpdateEvent merges p onto the event with the given id and reports whether
// it exists.
//
// Significance is recomputed only when p carries ratings. It is not refreshed
// when the formula changes between writes.
func (s *Store) UpdateEvent(id string, p model.EventPatch) bool {
	s.mu.Lock()
	i := s.eventIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	e := &s.events[i]
	p.Apply(e)
	if p.Ratings != nil && e.Ratings != nil {
		sig := engine.Significance(e.Ratings, s.settings.SignificanceFormula)
		e.Significance = &sig
	}
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// DeleteEvent removes the event with the given id, if any.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	i := s.eventIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.events = append(s.events[:i], s.events[i+1:]...)
	s.mu.Unlock()

	s.scheduleSave()
}

// Event returns the event with the given id.
func (s *Store) Event(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.eventIndex(id)
	if i < 0 {
		return model.Event{}, false
	}
	return cloneEvent(s.events[i]), true
}

// Events returns all events in insertion order.
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.events, cloneEvent)
}

// EventsOn returns the events falling on the calendar day of day, compared in
// day's location.
func (s *Store) EventsOn(day time.Time) []model.Event {
	y, m, d := day.Date()
	loc := day.Location()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Event{}
	for _, e := range s.events {
		ey, em, ed := e.Date.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}

func (s *Store) eventIndex(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

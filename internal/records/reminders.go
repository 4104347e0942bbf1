package records

import (
	"github.com/kupikrutcher/relationship-app/internal/engine"
	"github.com/kupikrutcher/relationship-app/internal/model"
)

// AddReminder appends a reminder, enabled unless the input says otherwise.
func (s *Store) AddReminder(in model.ReminderInput) model.Reminder {
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	s.mu.Lock()
	r := model.Reminder{
		ID:            s.newID(),
		EventType:     in.EventType,
		LastDone:      clonePtr(in.LastDone),
		FrequencyDays: in.FrequencyDays,
		Enabled:       enabled,
	}
	s.reminders = append(s.reminders, r)
	s.mu.Unlock()

	s.scheduleSave()
	return cloneReminder(r)
}

// UpdateReminder merges p into the reminder. It reports false for an unknown id.
func (s *Store) UpdateReminder(id string, p model.ReminderPatch) bool {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	p.Apply(&s.reminders[i])
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// DeleteReminder removes the reminder; unknown ids are ignored.
func (s *Store) DeleteReminder(id string) {
	s.mu.Lock()
	i := s.reminderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	s.mu.Unlock()

	s.scheduleSave()
}

// Reminder returns the reminder with the given id.
func (s *Store) Reminder(id string) (model.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.reminderIndex(id)
	if i < 0 {
		return model.Reminder{}, false
	}
	return cloneReminder(s.reminders[i]), true
}

// Reminders returns all reminders in insertion order.
func (s *Store) Reminders() []model.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.reminders, cloneReminder)
}

// ReminderStatuses evaluates every reminder against the current events.
func (s *Store) ReminderStatuses() []engine.ReminderReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.EvaluateReminders(
		cloneSlice(s.reminders, cloneReminder),
		cloneSlice(s.events, cloneEvent),
		s.now(),
	)
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

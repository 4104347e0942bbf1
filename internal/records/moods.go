package records

import (
	"sort"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// AddMoodEntry appends a mood entry with a fresh id.
func (s *Store) AddMoodEntry(in model.MoodInput) model.MoodEntry {
	s.mu.Lock()
	m := model.MoodEntry{
		ID:    s.newID(),
		Date:  in.Date,
		Mood:  in.Mood,
		Notes: clonePtr(in.Notes),
	}
	s.moodEntries = append(s.moodEntries, m)
	s.mu.Unlock()

	s.scheduleSave()
	return cloneMood(m)
}

// UpdateMoodEntry merges p into the entry. It reports false for an unknown id.
func (s *Store) UpdateMoodEntry(id string, p model.MoodPatch) bool {
	s.mu.Lock()
	i := s.moodIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	p.Apply(&s.moodEntries[i])
	s.mu.Unlock()

	s.scheduleSave()
	return true
}

// MoodEntry returns the entry with the given id.
func (s *Store) MoodEntry(id string) (model.MoodEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.moodIndex(id)
	if i < 0 {
		return model.MoodEntry{}, false
	}
	return cloneMood(s.moodEntries[i]), true
}

// MoodEntries returns all mood entries in insertion order.
func (s *Store) MoodEntries() []model.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.moodEntries, cloneMood)
}

// RecentMoods returns up to limit entries, newest first. A non-positive
// limit returns all of them.
func (s *Store) RecentMoods(limit int) []model.MoodEntry {
	out := s.MoodEntries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Store) moodIndex(id string) int {
	for i := range s.moodEntries {
		if s.moodEntries[i].ID == id {
			return i
		}
	}
	return -1
}

package records

import "github.com/kupikrutcher/relationship-app/internal/model"

// Settings returns a copy of the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.settings)
}

// UpdateSettings shallow-merges p into the settings. Cached event
// significances are left as they are.
func (s *Store) UpdateSettings(p model.SettingsPatch) {
	s.mu.Lock()
	p.Apply(&s.settings)
	s.mu.Unlock()

	s.scheduleSave()
}

package records

import (
	"github.com/kupikrutcher/relationship-app/internal/engine"
	"github.com/kupikrutcher/relationship-app/internal/model"
)

// Insights computes the insights report as of now.
func (s *Store) Insights() model.Insights {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.ComputeInsights(s.events, s.moodEntries, s.now())
}

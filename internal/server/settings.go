package server

import (
	"net/http"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.Settings())
}

// handleUpdateSettings shallow-merges the body over the current settings.
// Existing event significance is not recomputed when the formula changes.
func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var p model.SettingsPatch
	if !bind(w, r, &p) {
		return
	}
	s.records.UpdateSettings(p)
	writeJSON(w, http.StatusOK, s.records.Settings())
}

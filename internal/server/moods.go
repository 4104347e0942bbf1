package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// handleListMoods returns mood entries newest first. ?limit=N caps the
// list; 0 or absent means all.
func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, s.records.RecentMoods(limit))
}

func (s *Server) handleAddMood(w http.ResponseWriter, r *http.Request) {
	var in model.MoodInput
	if !bind(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusCreated, s.records.AddMoodEntry(in))
}

func (s *Server) handleUpdateMood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p model.MoodPatch
	if !bind(w, r, &p) {
		return
	}
	if !s.records.UpdateMoodEntry(id, p) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	m, _ := s.records.MoodEntry(id)
	writeJSON(w, http.StatusOK, m)
}

package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// dayLayout is the ?day= query format.
const dayLayout = "2006-01-02"

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("day")
	if raw == "" {
		writeJSON(w, http.StatusOK, s.records.Events())
		return
	}
	day, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
		return
	}
	writeJSON(w, http.StatusOK, s.records.EventsOn(day))
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var in model.EventInput
	if !bind(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusCreated, s.records.AddEvent(in))
}

// handleUpdateEvent answers 204 for an unknown id: updates of missing
// records are no-ops, not errors. The patch is checked against the event it
// merges into, so a fight can never end up with ratings.
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p model.EventPatch
	if !bind(w, r, &p) {
		return
	}
	current, ok := s.records.Event(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	merged := current
	p.Apply(&merged)
	if err := merged.Validate(); err != nil {
		writeValidation(w, err)
		return
	}
	if !s.records.UpdateEvent(id, p) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	e, _ := s.records.Event(id)
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteEvent(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

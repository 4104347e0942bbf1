package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.Reminders())
}

func (s *Server) handleAddReminder(w http.ResponseWriter, r *http.Request) {
	var in model.ReminderInput
	if !bind(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusCreated, s.records.AddReminder(in))
}

func (s *Server) handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p model.ReminderPatch
	if !bind(w, r, &p) {
		return
	}
	if !s.records.UpdateReminder(id, p) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	rem, _ := s.records.Reminder(id)
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteReminder(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleReminderStatus reports the evaluator verdict for every reminder.
// Disabled reminders carry a null status.
func (s *Server) handleReminderStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.ReminderStatuses())
}

package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/kupikrutcher/relationship-app/internal/store"
)

// handleGetData returns the whole state in the {state, version} envelope.
func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	data, err := store.EncodeSnapshot(s.records.Snapshot())
	if err != nil {
		s.logger.Error("encode snapshot", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "encode failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleReplaceData replaces the whole state. Both the envelope and a bare
// state object are accepted. A state that fails validation leaves the
// journal untouched.
func (s *Server) handleReplaceData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body failed")
		return
	}
	snap, err := store.DecodeSnapshot(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := snap.Validate(); err != nil {
		writeValidation(w, err)
		return
	}
	s.records.Replace(snap)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.Insights())
}

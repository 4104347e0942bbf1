package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kupikrutcher/relationship-app/internal/model"
	"github.com/kupikrutcher/relationship-app/internal/records"
)

func (s *Server) handleListWishes(w http.ResponseWriter, r *http.Request) {
	filter := records.AllWishes
	switch r.URL.Query().Get("fulfilled") {
	case "":
	case "true":
		filter = records.FulfilledWishes
	case "false":
		filter = records.OpenWishes
	default:
		writeError(w, http.StatusBadRequest, "fulfilled must be true or false")
		return
	}
	writeJSON(w, http.StatusOK, s.records.Wishes(filter))
}

func (s *Server) handleAddWish(w http.ResponseWriter, r *http.Request) {
	var in model.WishInput
	if !bind(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusCreated, s.records.AddWish(in))
}

func (s *Server) handleUpdateWish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p model.WishPatch
	if !bind(w, r, &p) {
		return
	}
	if !s.records.UpdateWish(id, p) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	wish, _ := s.records.Wish(id)
	writeJSON(w, http.StatusOK, wish)
}

func (s *Server) handleFulfillWish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.records.FulfillWish(id) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	wish, _ := s.records.Wish(id)
	writeJSON(w, http.StatusOK, wish)
}

func (s *Server) handleDeleteWish(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteWish(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

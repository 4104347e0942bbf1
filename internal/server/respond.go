package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// maxBodyBytes bounds request bodies; avatar photos arrive as data URLs.
const maxBodyBytes = 8 << 20

type errorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeValidation reports a *model.ValidationError as 400 with its field list.
func writeValidation(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// validator is implemented by every model input and patch type.
type validator interface {
	Validate() error
}

// bind decodes and validates a request body, writing the 400 response
// itself. It reports whether the handler should continue.
func bind(w http.ResponseWriter, r *http.Request, v validator) bool {
	if err := decodeJSON(w, r, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := v.Validate(); err != nil {
		writeValidation(w, err)
		return false
	}
	return true
}

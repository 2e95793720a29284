// Package http provides the HTTP handlers fronting the mutation
// pipelines: plots, users, contacts, registrations, inquiries, login,
// and the optional content-generation endpoints.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/apperr"
)

// State is the wire shape for pipeline results: a success flag, a
// top-level message, optional field-keyed error lists, and the id of a
// created or updated record.
type State struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	ID      string              `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders a pipeline error as its State shape with the
// status its kind maps to. Unclassified errors surface only the generic
// internal message.
func writeError(w http.ResponseWriter, err error) {
	ae := apperr.From(err)
	writeJSON(w, ae.Status(), State{Success: false, Message: ae.Message, Errors: ae.Fields})
}

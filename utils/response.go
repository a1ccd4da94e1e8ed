package utils

import (
	"encoding/json"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// RespondWithFieldErrors writes the per-field error shape the form controller
// displays: {"errors": {"name": "Required", ...}}.
func RespondWithFieldErrors(w http.ResponseWriter, code int, fields map[string]string) {
	RespondWithJSON(w, code, map[string]interface{}{"errors": fields})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

type M map[string]interface{}

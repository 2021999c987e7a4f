package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrewpaige1/edusense-api/models"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) error {
	return writeJSON(w, status, models.ErrorResponse{Error: msg})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/weihan-tan/touchpoint/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the usecase error taxonomy onto HTTP: field errors are
// 400 with the per-field list, missing records 404, broken cascades 500 with
// a distinct code.
func respondError(w http.ResponseWriter, err error) {
	if ve, ok := usecase.AsValidationErrors(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": ve})
		return
	}
	if usecase.IsNotFound(err) {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if usecase.IsIntegrityError(err) {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
			"code":  "INTEGRITY_ERROR",
		})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

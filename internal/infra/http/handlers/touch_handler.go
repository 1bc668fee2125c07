package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/weihan-tan/touchpoint/internal/usecase"
)

type TouchHandler struct {
	UC *usecase.TouchUseCase
}

func NewTouchHandler(uc *usecase.TouchUseCase) *TouchHandler {
	return &TouchHandler{UC: uc}
}

// Replace swaps the prospect's whole touch sequence (PUT semantics; there is
// no partial reorder).
func (h *TouchHandler) Replace(w http.ResponseWriter, r *http.Request) {
	prospectID := chi.URLParam(r, "id")

	var inputs []usecase.TouchInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	touches, err := h.UC.ReplaceSequence(r.Context(), prospectID, inputs)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, touches)
}

func (h *TouchHandler) Complete(w http.ResponseWriter, r *http.Request) {
	prospectID := chi.URLParam(r, "id")
	touchID := chi.URLParam(r, "touchID")

	if err := h.UC.Complete(r.Context(), prospectID, touchID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

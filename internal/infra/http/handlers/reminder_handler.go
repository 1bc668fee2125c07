package handlers

import (
	"net/http"
	"time"

	"github.com/weihan-tan/touchpoint/internal/infra/http/middleware"
	"github.com/weihan-tan/touchpoint/internal/usecase"
)

type ReminderHandler struct {
	UC *usecase.DispatchRemindersUseCase
}

func NewReminderHandler(uc *usecase.DispatchRemindersUseCase) *ReminderHandler {
	return &ReminderHandler{UC: uc}
}

// Dispatch publishes reminders for everything due as of now. Normally driven
// by the daily ticker; exposed for manual runs.
func (h *ReminderHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	published, err := h.UC.Execute(r.Context(), time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordRemindersPublished(published)
	respondJSON(w, http.StatusOK, map[string]int{"published": published})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/weihan-tan/touchpoint/internal/usecase"
)

type DashboardHandler struct {
	UC *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{UC: uc}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	out, err := h.UC.Build(r.Context(), time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

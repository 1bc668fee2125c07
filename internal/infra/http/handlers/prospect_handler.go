package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/weihan-tan/touchpoint/internal/usecase"
)

type ProspectHandler struct {
	CreateUC *usecase.CreateProspectUseCase
	UpdateUC *usecase.UpdateProspectUseCase
	GetUC    *usecase.GetProspectUseCase
	DeleteUC *usecase.DeleteProspectUseCase
}

func NewProspectHandler(
	createUC *usecase.CreateProspectUseCase,
	updateUC *usecase.UpdateProspectUseCase,
	getUC *usecase.GetProspectUseCase,
	deleteUC *usecase.DeleteProspectUseCase,
) *ProspectHandler {
	return &ProspectHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		GetUC:    getUC,
		DeleteUC: deleteUC,
	}
}

func (h *ProspectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	p, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.GetUC.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, prospects)
}

func (h *ProspectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.GetUC.ByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *ProspectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.ProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	p, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *ProspectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.DeleteUC.Execute(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

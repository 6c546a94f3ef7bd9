package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadHandler struct {
	Leads *usecase.LeadUseCase
}

func NewLeadHandler(leads *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{Leads: leads}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid JSON"})
		return
	}

	lead, err := h.Leads.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	lead, err := h.Leads.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid JSON"})
		return
	}

	lead, err := h.Leads.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Leads.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Lead deleted"})
}

func (h *LeadHandler) Search(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	url := r.URL.Query().Get("url")

	leads, err := h.Leads.Search(r.Context(), status, url)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

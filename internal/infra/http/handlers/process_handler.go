package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ProcessHandler struct {
	Processes usecase.ProcessRepositoryInterface
}

func NewProcessHandler(processes usecase.ProcessRepositoryInterface) *ProcessHandler {
	return &ProcessHandler{Processes: processes}
}

func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	process, err := h.Processes.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, process)
}

func (h *ProcessHandler) Search(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	processes, err := h.Processes.Search(r.Context(), status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, processes)
}

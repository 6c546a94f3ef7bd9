package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ActionHandler struct {
	Recorder *usecase.RecordActionUseCase
	Actions  usecase.ActionRepositoryInterface
}

func NewActionHandler(recorder *usecase.RecordActionUseCase, actions usecase.ActionRepositoryInterface) *ActionHandler {
	return &ActionHandler{Recorder: recorder, Actions: actions}
}

// Create records the action and reconciles the lead's process before
// answering; a reconciliation failure fails the whole request.
func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordActionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid JSON"})
		return
	}

	output, err := h.Recorder.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordActionRecorded()
	middleware.RecordProcessReconciled()
	respondJSON(w, http.StatusCreated, output)
}

func (h *ActionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	action, err := h.Actions.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, usecase.NewActionOutput(action))
}

func (h *ActionHandler) Search(w http.ResponseWriter, r *http.Request) {
	actionType := r.URL.Query().Get("action_type")

	actions, err := h.Actions.Search(r.Context(), actionType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, usecase.NewActionOutputs(actions))
}

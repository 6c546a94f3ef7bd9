package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, errorStatus(err), errorBody{Detail: err.Error()})
}

// errorStatus maps the domain error taxonomy to transport codes. A bad
// email format is the one validation failure that answers 422; every other
// validation or conflict failure is a 400.
func errorStatus(err error) int {
	if errors.Is(err, entity.ErrInvalidEmail) {
		return http.StatusUnprocessableEntity
	}
	switch {
	case entity.IsValidationError(err), entity.IsConflictError(err):
		return http.StatusBadRequest
	case entity.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &entity.ValidationError{Message: "Invalid id"}
	}
	return id, nil
}

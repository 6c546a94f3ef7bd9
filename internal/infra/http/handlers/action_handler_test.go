package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type passthroughStore struct{}

func (passthroughStore) WithinTx(ctx context.Context, fn func(q database.Querier) error) error {
	return fn(nil)
}

// MockActionRepository
type MockActionRepository struct {
	mock.Mock
}

func (m *MockActionRepository) Create(ctx context.Context, q database.Querier, action *entity.Action) error {
	args := m.Called(ctx, q, action)
	return args.Error(0)
}

func (m *MockActionRepository) GetByID(ctx context.Context, id int64) (*entity.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Action), args.Error(1)
}

func (m *MockActionRepository) Search(ctx context.Context, actionType string) ([]entity.Action, error) {
	args := m.Called(ctx, actionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Action), args.Error(1)
}

// MockProcessRepository
type MockProcessRepository struct {
	mock.Mock
}

func (m *MockProcessRepository) Upsert(ctx context.Context, q database.Querier, process *entity.Process) error {
	args := m.Called(ctx, q, process)
	return args.Error(0)
}

func (m *MockProcessRepository) GetByID(ctx context.Context, id int64) (*entity.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Process), args.Error(1)
}

func (m *MockProcessRepository) Search(ctx context.Context, status string) ([]entity.Process, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Process), args.Error(1)
}

func newActionRouter(actions *MockActionRepository, processes *MockProcessRepository) *chi.Mux {
	engine := usecase.NewProcessEngine(processes, "active")
	recorder := usecase.NewRecordActionUseCase(passthroughStore{}, actions, engine)
	h := NewActionHandler(recorder, actions)

	r := chi.NewRouter()
	r.Post("/actions", h.Create)
	r.Get("/actions", h.Search)
	r.Get("/actions/{id}", h.Get)
	return r
}

func TestCreateActionHandlerEmitsBothAliases(t *testing.T) {
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)

	actions.On("Create", mock.Anything, nil, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(2).(*entity.Action).ID = 1
	}).Return(nil)
	processes.On("Upsert", mock.Anything, nil, mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/actions",
		bytes.NewBufferString(`{"lead_id": 1, "action_type": "email", "description": "hi", "timestamp": "2024-03-20 10:00:00"}`))
	newActionRouter(actions, processes).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "hi", body["details"])
	assert.Equal(t, "hi", body["description"])
	assert.Equal(t, "email", body["action_type"])
}

func TestCreateActionHandlerFailsWhenReconcileFails(t *testing.T) {
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)

	actions.On("Create", mock.Anything, nil, mock.Anything).Return(nil)
	processes.On("Upsert", mock.Anything, nil, mock.Anything).
		Return(&entity.StorageError{Op: "upsert process", Err: assert.AnError})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/actions",
		bytes.NewBufferString(`{"lead_id": 1, "timestamp": "2024-03-20 10:00:00"}`))
	newActionRouter(actions, processes).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetActionHandler(t *testing.T) {
	actions := new(MockActionRepository)
	actions.On("GetByID", mock.Anything, int64(1)).Return(
		&entity.Action{ID: 1, LeadID: 2, ActionType: "email", Details: "X", Timestamp: "2024-03-20 10:00:00"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/actions/1", nil)
	newActionRouter(actions, new(MockProcessRepository)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "X", body["details"])
	assert.Equal(t, "X", body["description"])
}

func TestGetActionHandlerNotFound(t *testing.T) {
	actions := new(MockActionRepository)
	actions.On("GetByID", mock.Anything, int64(9)).Return(nil, entity.ErrActionNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/actions/9", nil)
	newActionRouter(actions, new(MockProcessRepository)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Action not found", decodeBody(t, rec)["detail"])
}

func TestSearchActionsHandlerForwardsTypeFilter(t *testing.T) {
	actions := new(MockActionRepository)
	actions.On("Search", mock.Anything, "email").Return(
		[]entity.Action{{ID: 1, LeadID: 2, ActionType: "email", Details: "X", Timestamp: "2024-03-20 10:00:00"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/actions?action_type=email", nil)
	newActionRouter(actions, new(MockProcessRepository)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var outputs []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outputs))
	assert.Len(t, outputs, 1)
	assert.Equal(t, "X", outputs[0]["description"])
}

package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
)

// passthroughStore runs the callback without a real transaction.
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

func newRecorder(actions *MockActionRepository, processes *MockProcessRepository) *RecordActionUseCase {
	engine := NewProcessEngine(processes, "active")
	return NewRecordActionUseCase(passthroughStore{}, actions, engine)
}

func TestRecordActionComputesFollowUp(t *testing.T) {
	ctx := context.Background()
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)

	actions.On("Create", ctx, nil, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(2).(*entity.Action).ID = 7
	}).Return(nil)

	var upserted *entity.Process
	processes.On("Upsert", ctx, nil, mock.Anything).Run(func(args mock.Arguments) {
		upserted = args.Get(2).(*entity.Process)
		upserted.ID = 3
	}).Return(nil)

	uc := newRecorder(actions, processes)
	details := "hi"
	output, err := uc.Execute(ctx, RecordActionInput{
		LeadID:     1,
		ActionType: "email",
		Details:    &details,
		Timestamp:  "2024-03-20 10:00:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), output.ID)
	assert.Equal(t, "hi", output.Details)
	assert.Equal(t, "hi", output.Description)

	assert.Equal(t, int64(1), upserted.LeadID)
	assert.Equal(t, "email", upserted.Channel)
	assert.Equal(t, int64(7), upserted.LastActionID)
	assert.Equal(t, "2024-03-27 10:00:00", upserted.NextFollowupDatetime)
	assert.Equal(t, "active", upserted.Status)
}

func TestRecordActionDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)

	var recorded *entity.Action
	actions.On("Create", ctx, nil, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(2).(*entity.Action)
		recorded.ID = 1
	}).Return(nil)
	processes.On("Upsert", ctx, nil, mock.Anything).Return(nil)

	uc := newRecorder(actions, processes)
	_, err := uc.Execute(ctx, RecordActionInput{LeadID: 1, ActionType: "call"})

	assert.NoError(t, err)
	parsed, err := time.ParseInLocation(entity.TimestampLayout, recorded.Timestamp, time.Local)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
}

func TestRecordActionDescriptionAlias(t *testing.T) {
	var input RecordActionInput
	err := json.Unmarshal([]byte(`{"lead_id": 1, "action_type": "email", "description": "hi"}`), &input)
	assert.NoError(t, err)
	assert.Equal(t, "hi", input.details())

	// description wins when both aliases are sent
	err = json.Unmarshal([]byte(`{"lead_id": 1, "details": "a", "description": "b"}`), &input)
	assert.NoError(t, err)
	assert.Equal(t, "b", input.details())
}

func TestActionOutputEmitsBothAliases(t *testing.T) {
	output := NewActionOutput(&entity.Action{ID: 1, LeadID: 2, Details: "X", Timestamp: "2024-03-20 10:00:00"})

	raw, err := json.Marshal(output)
	assert.NoError(t, err)

	var fields map[string]any
	assert.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "X", fields["details"])
	assert.Equal(t, "X", fields["description"])
}

func TestRecordActionRequiresLeadID(t *testing.T) {
	uc := newRecorder(new(MockActionRepository), new(MockProcessRepository))

	_, err := uc.Execute(context.Background(), RecordActionInput{ActionType: "email"})

	assert.True(t, entity.IsValidationError(err))
}

func TestRecordActionFailsWhenReconcileFails(t *testing.T) {
	ctx := context.Background()
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)

	actions.On("Create", ctx, nil, mock.Anything).Return(nil)
	processes.On("Upsert", ctx, nil, mock.Anything).
		Return(&entity.StorageError{Op: "upsert process", Err: assert.AnError})

	uc := newRecorder(actions, processes)
	_, err := uc.Execute(ctx, RecordActionInput{LeadID: 1, Timestamp: "2024-03-20 10:00:00"})

	assert.Error(t, err)
	var storageErr *entity.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestRecordActionRejectsMalformedTimestamp(t *testing.T) {
	ctx := context.Background()
	actions := new(MockActionRepository)
	processes := new(MockProcessRepository)
	actions.On("Create", ctx, nil, mock.Anything).Return(nil)

	uc := newRecorder(actions, processes)
	_, err := uc.Execute(ctx, RecordActionInput{LeadID: 1, Timestamp: "20/03/2024"})

	assert.True(t, entity.IsValidationError(err))
	processes.AssertNotCalled(t, "Upsert")
}

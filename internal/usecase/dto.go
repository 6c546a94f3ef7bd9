package usecase

import (
	"encoding/json"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// OptionalString distinguishes an absent JSON key from an explicit null.
// Set is true whenever the key was present; Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

type CreateLeadInput struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Status OptionalString `json:"status"`
	URL    string         `json:"url"`
}

type UpdateLeadInput struct {
	Name   OptionalString `json:"name"`
	Email  OptionalString `json:"email"`
	Status OptionalString `json:"status"`
	URL    OptionalString `json:"url"`
}

// RecordActionInput accepts the action details under either of its two
// wire names. When both are sent, description wins (original contract).
type RecordActionInput struct {
	LeadID      int64   `json:"lead_id"`
	ActionType  string  `json:"action_type"`
	Details     *string `json:"details"`
	Description *string `json:"description"`
	Timestamp   string  `json:"timestamp"`
}

func (in RecordActionInput) details() string {
	if in.Description != nil {
		return *in.Description
	}
	if in.Details != nil {
		return *in.Details
	}
	return ""
}

// ActionOutput always carries both details and description, equal, no
// matter which alias wrote the value.
type ActionOutput struct {
	ID          int64  `json:"id"`
	LeadID      int64  `json:"lead_id"`
	ActionType  string `json:"action_type,omitempty"`
	Details     string `json:"details"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func NewActionOutput(action *entity.Action) *ActionOutput {
	return &ActionOutput{
		ID:          action.ID,
		LeadID:      action.LeadID,
		ActionType:  action.ActionType,
		Details:     action.Details,
		Description: action.Details,
		Timestamp:   action.Timestamp,
	}
}

func NewActionOutputs(actions []entity.Action) []ActionOutput {
	outputs := make([]ActionOutput, 0, len(actions))
	for i := range actions {
		outputs = append(outputs, *NewActionOutput(&actions[i]))
	}
	return outputs
}

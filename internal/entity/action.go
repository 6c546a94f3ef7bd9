package entity

// Action is a timestamped event performed against a lead (an email sent,
// a call made, ...). Actions are immutable once recorded.
type Action struct {
	ID         int64  `json:"id"`
	LeadID     int64  `json:"lead_id"`
	ActionType string `json:"action_type,omitempty"`
	Details    string `json:"details"`
	Timestamp  string `json:"timestamp"`
}

package entity

// Process is the per-lead follow-up summary, materialized from that lead's
// most recent action. There is at most one process per lead.
type Process struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name,omitempty"`
	LeadID               int64  `json:"lead_id"`
	Channel              string `json:"channel,omitempty"`
	LastActionID         int64  `json:"last_action_id"`
	NextFollowupDatetime string `json:"next_followup_datetime"`
	Status               string `json:"status,omitempty"`
}

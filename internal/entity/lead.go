package entity

// Lead is a prospective customer record.
type Lead struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email"` // always stored lowercase
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

// DefaultLeadStatus is assigned when a lead is created without a status.
const DefaultLeadStatus = "new"

package models

import "time"

type EventType string

const (
	EventSubmitted     EventType = "submitted"
	EventStatusChanged EventType = "status-changed"
)

// ComplaintEvent is the payload published on the Redis events channel so
// that dashboards can follow lifecycle changes live.
type ComplaintEvent struct {
	Type        EventType       `json:"type"`
	ComplaintID string          `json:"complaint_id"`
	UserID      string          `json:"user_id"`
	Department  string          `json:"department,omitempty"`
	Status      ComplaintStatus `json:"status"`
	OldStatus   ComplaintStatus `json:"old_status,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

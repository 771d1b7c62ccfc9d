package events

import "time"

const (
	StaffLifecycleTopic   = "school.staff.lifecycle.v1"
	StaffCreatedEventType = "staff_created"
)

type StaffCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	StaffID    string    `json:"staff_id"`
	SchoolID   string    `json:"school_id"`
	JoinDate   string    `json:"join_date"`
	OccurredAt time.Time `json:"occurred_at"`
}

package events

import "time"

const (
	SalaryPayslipRequestedTopic     = "school.salary.payslip.requested.v1"
	SalaryPayslipRequestedEventType = "salary_payslip_requested"
)

type SalaryPayslipRequestedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SalaryRecordID string    `json:"salary_record_id"`
	SchoolID       string    `json:"school_id"`
	RequestedBy    string    `json:"requested_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

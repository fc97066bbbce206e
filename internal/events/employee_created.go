package events

import "time"

const EmployeeLifecycleTopic = "employees.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType            string    `json:"event_type"`
	RequestID            string    `json:"request_id,omitempty"`
	EmployeeID           string    `json:"employee_id"`
	EmployeeRegistration int       `json:"employee_registration"`
	OccurredAt           time.Time `json:"occurred_at"`
}

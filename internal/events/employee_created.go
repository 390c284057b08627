package events

import "time"

const EmployeeLifecycleTopic = "construction.employee.lifecycle.v1"

const EmployeeCreatedEventType = "employee.created"

type EmployeeCreatedEvent struct {
	EventType   string    `json:"event_type"`
	EmployeeID  string    `json:"employee_id"`
	FullName    string    `json:"full_name"`
	DailySalary string    `json:"daily_salary"`
	OccurredAt  time.Time `json:"occurred_at"`
}

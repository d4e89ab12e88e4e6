package models

import "time"

// Approval records a single approver's disposition of an expense. Rows are
// written by future workflow tooling; nothing in this service transitions
// them yet.
type Approval struct {
	ID         int64
	ExpenseID  int64
	ApproverID string
	Status     string
	Comments   *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
}

package models

import "time"

// UserRelationship links an employee to their manager. The
// (manager_id, employee_id) pair is unique at the store level.
type UserRelationship struct {
	ID         int64
	ManagerID  string
	EmployeeID string
	CreatedAt  time.Time
}

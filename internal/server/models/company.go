package models

import "time"

type Company struct {
	ID          string
	Name        string
	Currency    string
	Country     string
	AdminUserID string
	CreatedAt   time.Time
}

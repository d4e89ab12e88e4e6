package models

import (
	"time"

	"github.com/expenso-app/expenso/internal/moneyx"
)

// Expense statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Expense struct {
	ID          int64
	UserID      string
	CompanyID   string
	Amount      moneyx.Amount
	Currency    string
	Category    string
	Description *string
	ExpenseDate time.Time
	ReceiptURL  *string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

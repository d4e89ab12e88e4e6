// Package services contains server-side business logic. This file implements
// ExpenseService: submitting expense claims and listing a user's history.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/moneyx"
	"github.com/expenso-app/expenso/internal/server/auth"
	"github.com/expenso-app/expenso/internal/server/models"
	"github.com/expenso-app/expenso/internal/server/repositories/repomanager"
)

// Field length limits matching the column definitions.
const (
	maxCurrencyLen = 10
	maxCategoryLen = 100
)

// ExpenseInput is the validated payload for a new claim.
type ExpenseInput struct {
	Amount      moneyx.Amount
	Currency    string
	Category    string
	Description *string
	ExpenseDate time.Time
	ReceiptURL  *string
}

// ExpenseService provides expense claim operations:
// - Submit: persist a new claim with status "pending"
// - ListMine: the acting user's full expense history
type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewExpenseService constructs an ExpenseService using repositories.
func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

func (s *ExpenseService) validate(in ExpenseInput) error {
	if !in.Amount.Positive() {
		return fmt.Errorf("%w: amount must be greater than zero", common.ErrorValidation)
	}
	if in.Currency == "" || len(in.Currency) > maxCurrencyLen {
		return fmt.Errorf("%w: currency must be 1-%d characters", common.ErrorValidation, maxCurrencyLen)
	}
	if in.Category == "" || len(in.Category) > maxCategoryLen {
		return fmt.Errorf("%w: category must be 1-%d characters", common.ErrorValidation, maxCategoryLen)
	}
	if in.ExpenseDate.IsZero() {
		return fmt.Errorf("%w: expense_date is required", common.ErrorValidation)
	}
	return nil
}

// Submit validates in, persists a new expense owned by the acting user and
// returns the created record including its assigned id. The claim is written
// in its own transaction; on failure nothing is left observable.
func (s *ExpenseService) Submit(ctx context.Context, identity *auth.Identity, in ExpenseInput) (*models.Expense, error) {

	if err := s.validate(in); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      identity.UserID,
		CompanyID:   identity.CompanyID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Category:    in.Category,
		Description: in.Description,
		ExpenseDate: in.ExpenseDate,
		ReceiptURL:  in.ReceiptURL,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Expenses(tx)
		_, err := repo.Create(ctx, expense)
		return err
	}); err != nil {
		return nil, fmt.Errorf("error creating expense: %w", err)
	}

	return expense, nil
}

// ListMine returns all expenses owned by the acting user, newest expense
// date first.
func (s *ExpenseService) ListMine(ctx context.Context, identity *auth.Identity) ([]*models.Expense, error) {
	repo := s.repomanager.Expenses(s.db)
	result, err := repo.ListByUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	return result, nil
}

// ListApprovals returns the approval rows recorded against one of the acting
// user's expenses. An expense owned by someone else is reported as not found
// rather than revealing its existence.
func (s *ExpenseService) ListApprovals(ctx context.Context, identity *auth.Identity, expenseID int64) ([]*models.Approval, error) {
	expense, err := s.repomanager.Expenses(s.db).GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != identity.UserID {
		return nil, common.ErrorNotFound
	}

	result, err := s.repomanager.Approvals(s.db).ListByExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("error listing approvals: %w", err)
	}
	return result, nil
}

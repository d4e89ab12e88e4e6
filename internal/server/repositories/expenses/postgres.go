package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/moneyx"
	"github.com/expenso-app/expenso/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {

	query :=
		`INSERT INTO expenses (user_id, company_id, amount, currency, category, description, expense_date, receipt_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, status, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		expense.UserID, expense.CompanyID, expense.Amount.String(), expense.Currency,
		expense.Category, expense.Description, expense.ExpenseDate, expense.ReceiptURL).
		Scan(&expense.ID, &expense.Status, &expense.CreatedAt, &expense.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return expense, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	query :=
		`SELECT id, user_id, company_id, amount, currency, category, description, expense_date, receipt_url, status, created_at, updated_at
		 FROM expenses
		 WHERE id = $1
		 `

	e := &models.Expense{}
	var amount string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.UserID, &e.CompanyID, &amount, &e.Currency, &e.Category,
			&e.Description, &e.ExpenseDate, &e.ReceiptURL, &e.Status, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if e.Amount, err = moneyx.Parse(amount); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

// ListByUser returns the user's expenses ordered by expense_date descending,
// then id descending, so the listing is deterministic.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	query :=
		`SELECT id, user_id, company_id, amount, currency, category, description, expense_date, receipt_url, status, created_at, updated_at
		 FROM expenses
		 WHERE user_id = $1
		 ORDER BY expense_date DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var amount string
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &amount, &e.Currency, &e.Category,
			&e.Description, &e.ExpenseDate, &e.ReceiptURL, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if e.Amount, err = moneyx.Parse(amount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

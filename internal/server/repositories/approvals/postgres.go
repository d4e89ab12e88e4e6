package approvals

import (
	"context"
	"fmt"

	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, approval *models.Approval) (*models.Approval, error) {

	query :=
		`INSERT INTO approvals (expense_id, approver_id, comments)
		 VALUES ($1, $2, $3)
		 RETURNING id, status, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		approval.ExpenseID, approval.ApproverID, approval.Comments).
		Scan(&approval.ID, &approval.Status, &approval.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return approval, nil
}

func (r *PostgresRepository) ListByExpense(ctx context.Context, expenseID int64) ([]*models.Approval, error) {
	query :=
		`SELECT id, expense_id, approver_id, status, comments, approved_at, created_at FROM approvals
		 WHERE expense_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Approval
	for rows.Next() {
		a := &models.Approval{}
		if err := rows.Scan(&a.ID, &a.ExpenseID, &a.ApproverID, &a.Status,
			&a.Comments, &a.ApprovedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

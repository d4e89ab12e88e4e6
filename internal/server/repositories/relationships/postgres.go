package relationships

import (
	"context"
	"fmt"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rel *models.UserRelationship) (*models.UserRelationship, error) {

	query :=
		`INSERT INTO user_relationships (manager_id, employee_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, rel.ManagerID, rel.EmployeeID).
		Scan(&rel.ID, &rel.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rel, nil
}

func (r *PostgresRepository) ListByManager(ctx context.Context, managerID string) ([]*models.UserRelationship, error) {
	query :=
		`SELECT id, manager_id, employee_id, created_at FROM user_relationships
		 WHERE manager_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.UserRelationship
	for rows.Next() {
		rel := &models.UserRelationship{}
		if err := rows.Scan(&rel.ID, &rel.ManagerID, &rel.EmployeeID, &rel.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

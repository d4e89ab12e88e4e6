package companies

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {

	query :=
		`INSERT INTO companies (id, name, currency, country, admin_user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		company.ID, company.Name, company.Currency, company.Country, company.AdminUserID).
		Scan(&company.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	query :=
		`SELECT id, name, currency, country, admin_user_id, created_at FROM companies
		 WHERE id = $1
		 `

	company := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&company.ID, &company.Name, &company.Currency, &company.Country,
			&company.AdminUserID, &company.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return company, nil
}

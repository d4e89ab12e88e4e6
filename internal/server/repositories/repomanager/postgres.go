// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/server/migrations"
	"github.com/expenso-app/expenso/internal/server/repositories/approvals"
	"github.com/expenso-app/expenso/internal/server/repositories/companies"
	"github.com/expenso-app/expenso/internal/server/repositories/expenses"
	"github.com/expenso-app/expenso/internal/server/repositories/relationships"
	"github.com/expenso-app/expenso/internal/server/repositories/rules"
	"github.com/expenso-app/expenso/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Companies returns a companies.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Companies(db dbx.DBTX) companies.Repository {
	return companies.NewPostgresRepository(db)
}

// Relationships returns a relationships.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Relationships(db dbx.DBTX) relationships.Repository {
	return relationships.NewPostgresRepository(db)
}

// Expenses returns an expenses.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewPostgresRepository(db)
}

// Approvals returns an approvals.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Approvals(db dbx.DBTX) approvals.Repository {
	return approvals.NewPostgresRepository(db)
}

// Rules returns a rules.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Rules(db dbx.DBTX) rules.Repository {
	return rules.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

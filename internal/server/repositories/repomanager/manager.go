package repomanager

import (
	"context"
	"database/sql"

	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/server/repositories/approvals"
	"github.com/expenso-app/expenso/internal/server/repositories/companies"
	"github.com/expenso-app/expenso/internal/server/repositories/expenses"
	"github.com/expenso-app/expenso/internal/server/repositories/relationships"
	"github.com/expenso-app/expenso/internal/server/repositories/rules"
	"github.com/expenso-app/expenso/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Companies(db dbx.DBTX) companies.Repository
	Relationships(db dbx.DBTX) relationships.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Approvals(db dbx.DBTX) approvals.Repository
	Rules(db dbx.DBTX) rules.Repository
}

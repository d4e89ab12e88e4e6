package rules

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_MarshalsConfig(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "is_active", "created_at"}).
		AddRow(int64(3), true, time.Now())
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+approval_rules`).
		WithArgs("acme", "High Value", "conditional", []byte(`{"approvers":["cfo"],"amount_threshold":1000}`)).
		WillReturnRows(rows)

	threshold := 1000.0
	rule := &models.ApprovalRule{
		CompanyID: "acme",
		RuleName:  "High Value",
		RuleType:  models.RuleTypeConditional,
		Config:    models.RuleConfig{Approvers: []string{"cfo"}, AmountThreshold: &threshold},
	}
	got, err := repo.Create(context.Background(), rule)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 || !got.IsActive {
		t.Fatalf("unexpected rule: %+v", got)
	}
}

func TestListByCompany_UnmarshalsConfig(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	cols := []string{"id", "company_id", "rule_name", "rule_type", "rule_config", "is_active", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(int64(1), "acme", "Percentage", "percentage", []byte(`{"approvers":["a","b"],"percentage":60}`), true, time.Now())
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+approval_rules\s+WHERE\s+company_id`).
		WithArgs("acme").
		WillReturnRows(rows)

	got, err := repo.ListByCompany(context.Background(), "acme")
	if err != nil {
		t.Fatalf("ListByCompany error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 rule, got %d", len(got))
	}
	if got[0].Config.Percentage == nil || *got[0].Config.Percentage != 60 {
		t.Fatalf("unexpected config: %+v", got[0].Config)
	}
}

func TestSetActive_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+approval_rules\s+SET\s+is_active\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+company_id\s*=\s*\$2`

	mock.ExpectQuery(q).
		WithArgs(int64(1), "acme", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if err := repo.SetActive(context.Background(), 1, "acme", false); err != nil {
		t.Fatalf("SetActive error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetActive_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE\s+approval_rules\s+SET\s+is_active`).
		WithArgs(int64(404), "acme", false).
		WillReturnError(sql.ErrNoRows)

	err := repo.SetActive(context.Background(), 404, "acme", false)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

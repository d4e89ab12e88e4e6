package rules

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, rule *models.ApprovalRule) (*models.ApprovalRule, error) {

	config, err := json.Marshal(rule.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal rule config: %w", err)
	}

	query :=
		`INSERT INTO approval_rules (company_id, rule_name, rule_type, rule_config)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_active, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		rule.CompanyID, rule.RuleName, rule.RuleType, config).
		Scan(&rule.ID, &rule.IsActive, &rule.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rule, nil
}

func (r *PostgresRepository) ListByCompany(ctx context.Context, companyID string) ([]*models.ApprovalRule, error) {
	query :=
		`SELECT id, company_id, rule_name, rule_type, rule_config, is_active, created_at FROM approval_rules
		 WHERE company_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ApprovalRule
	for rows.Next() {
		rule := &models.ApprovalRule{}
		var config []byte
		if err := rows.Scan(&rule.ID, &rule.CompanyID, &rule.RuleName, &rule.RuleType,
			&config, &rule.IsActive, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(config, &rule.Config); err != nil {
			return nil, fmt.Errorf("unmarshal rule config: %w", err)
		}
		result = append(result, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// SetActive toggles a rule's is_active flag. The company id scopes the
// update so one company cannot touch another's rules.
func (r *PostgresRepository) SetActive(ctx context.Context, id int64, companyID string, active bool) error {
	query :=
		`UPDATE approval_rules SET is_active = $3
		 WHERE id = $1 AND company_id = $2
		 RETURNING id
		 `

	var updated int64
	err := r.db.QueryRowContext(ctx, query, id, companyID, active).Scan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

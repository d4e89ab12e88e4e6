package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/server/auth"
	"github.com/expenso-app/expenso/internal/server/models"
	"github.com/expenso-app/expenso/internal/server/repositories/repomanager"
)

// RuleService stores and lists approval-rule definitions for a company.
// Rules are configuration only: nothing in this service evaluates them
// against expenses.
type RuleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewRuleService constructs a RuleService using repositories.
func NewRuleService(db *sql.DB, m repomanager.RepositoryManager) *RuleService {
	return &RuleService{db: db, repomanager: m}
}

func validRuleType(t string) bool {
	switch t {
	case models.RuleTypeSequential, models.RuleTypeConditional, models.RuleTypePercentage:
		return true
	}
	return false
}

// Create stores a new approval rule scoped to the acting user's company.
func (s *RuleService) Create(ctx context.Context, identity *auth.Identity, name, ruleType string, config models.RuleConfig) (*models.ApprovalRule, error) {

	if name == "" {
		return nil, fmt.Errorf("%w: rule name is required", common.ErrorValidation)
	}
	if !validRuleType(ruleType) {
		return nil, fmt.Errorf("%w: unknown rule type %q", common.ErrorValidation, ruleType)
	}
	if ruleType == models.RuleTypePercentage && config.Percentage == nil {
		return nil, fmt.Errorf("%w: percentage rules need a percentage", common.ErrorValidation)
	}

	rule := &models.ApprovalRule{
		CompanyID: identity.CompanyID,
		RuleName:  name,
		RuleType:  ruleType,
		Config:    config,
	}

	repo := s.repomanager.Rules(s.db)
	created, err := repo.Create(ctx, rule)
	if err != nil {
		return nil, fmt.Errorf("error creating rule: %w", err)
	}

	return created, nil
}

// SetActive toggles a rule on or off. The update is scoped to the acting
// user's company; a rule belonging to another company reads as not found.
func (s *RuleService) SetActive(ctx context.Context, identity *auth.Identity, id int64, active bool) error {
	repo := s.repomanager.Rules(s.db)
	if err := repo.SetActive(ctx, id, identity.CompanyID, active); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating rule: %w", err)
	}
	return nil
}

// List returns the approval rules of the acting user's company.
func (s *RuleService) List(ctx context.Context, identity *auth.Identity) ([]*models.ApprovalRule, error) {
	repo := s.repomanager.Rules(s.db)
	result, err := repo.ListByCompany(ctx, identity.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("error listing rules: %w", err)
	}
	return result, nil
}

package rules

import (
	"context"

	"github.com/expenso-app/expenso/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, rule *models.ApprovalRule) (*models.ApprovalRule, error)
	ListByCompany(ctx context.Context, companyID string) ([]*models.ApprovalRule, error)
	SetActive(ctx context.Context, id int64, companyID string, active bool) error
}

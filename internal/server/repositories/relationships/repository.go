package relationships

import (
	"context"

	"github.com/expenso-app/expenso/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, rel *models.UserRelationship) (*models.UserRelationship, error)
	ListByManager(ctx context.Context, managerID string) ([]*models.UserRelationship, error)
}

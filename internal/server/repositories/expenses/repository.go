package expenses

import (
	"context"

	"github.com/expenso-app/expenso/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	GetByID(ctx context.Context, id int64) (*models.Expense, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Expense, error)
}

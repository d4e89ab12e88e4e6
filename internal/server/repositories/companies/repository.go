package companies

import (
	"context"

	"github.com/expenso-app/expenso/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	GetByID(ctx context.Context, id string) (*models.Company, error)
}

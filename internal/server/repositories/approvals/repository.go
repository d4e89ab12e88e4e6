package approvals

import (
	"context"

	"github.com/expenso-app/expenso/internal/server/models"
)

// Repository stores approval rows. Writes come from future workflow tooling;
// this service only reads them back per expense.
type Repository interface {
	Create(ctx context.Context, approval *models.Approval) (*models.Approval, error)
	ListByExpense(ctx context.Context, expenseID int64) ([]*models.Approval, error)
}

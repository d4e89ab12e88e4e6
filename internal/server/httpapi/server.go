// Package httpapi exposes the expense service over HTTP. Routing and request
// decoding live here; business rules stay in the services package.
package httpapi

import (
	"context"
	"net/http"

	"github.com/expenso-app/expenso/internal/logging"
	"github.com/expenso-app/expenso/internal/server/auth"
	"github.com/expenso-app/expenso/internal/server/models"
	"github.com/expenso-app/expenso/internal/server/rates"
	"github.com/expenso-app/expenso/internal/server/services"

	"github.com/gin-gonic/gin"
)

// ExpenseService is the expense operations the handlers need.
type ExpenseService interface {
	Submit(ctx context.Context, identity *auth.Identity, in services.ExpenseInput) (*models.Expense, error)
	ListMine(ctx context.Context, identity *auth.Identity) ([]*models.Expense, error)
	ListApprovals(ctx context.Context, identity *auth.Identity, expenseID int64) ([]*models.Approval, error)
}

// DirectoryService covers user, company and relationship management.
type DirectoryService interface {
	CreateUser(ctx context.Context, email, password, role string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateCompany(ctx context.Context, id, name, currency, country, adminUserID string) (*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	AssignManager(ctx context.Context, managerID, employeeID string) (*models.UserRelationship, error)
	ListReports(ctx context.Context, managerID string) ([]*models.UserRelationship, error)
}

// RuleService covers approval rule management.
type RuleService interface {
	Create(ctx context.Context, identity *auth.Identity, name, ruleType string, config models.RuleConfig) (*models.ApprovalRule, error)
	List(ctx context.Context, identity *auth.Identity) ([]*models.ApprovalRule, error)
	SetActive(ctx context.Context, identity *auth.Identity, id int64, active bool) error
}

// RateService fetches live exchange rates for a base currency.
type RateService interface {
	GetRates(ctx context.Context, base string) (*rates.Rates, error)
}

// ReceiptService issues presigned receipt upload and download URLs.
type ReceiptService interface {
	GetUploadURL(ctx context.Context) (string, string, error)
	GetDownloadURL(ctx context.Context, key string) (string, error)
}

// Pinger reports storage liveness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	logger    logging.Logger
	secretKey []byte

	db        Pinger
	expenses  ExpenseService
	directory DirectoryService
	rules     RuleService
	rates     RateService
	receipts  ReceiptService
}

func NewServer(logger logging.Logger, secretKey []byte, db Pinger,
	expenses ExpenseService, directory DirectoryService, rules RuleService,
	rateService RateService, receipts ReceiptService) *Server {
	return &Server{
		logger:    logger,
		secretKey: secretKey,
		db:        db,
		expenses:  expenses,
		directory: directory,
		rules:     rules,
		rates:     rateService,
		receipts:  receipts,
	}
}

// Router builds the gin engine with all routes registered. Everything under
// /api requires a bearer token.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api", s.authenticate())
	api.POST("/expenses", s.handleSubmitExpense)
	api.GET("/expenses/my", s.handleListMyExpenses)
	api.GET("/expenses/:id/approvals", s.handleListApprovals)
	api.POST("/expenses/receipt-upload-url", s.handleReceiptUploadURL)
	api.GET("/expenses/receipt-download-url", s.handleReceiptDownloadURL)
	api.GET("/currencies/exchange-rate/:base", s.handleExchangeRate)
	api.GET("/users/:email", s.handleGetUser)
	api.POST("/users", s.handleCreateUser)
	api.POST("/companies", s.handleCreateCompany)
	api.GET("/companies/:id", s.handleGetCompany)
	api.POST("/relationships", s.handleCreateRelationship)
	api.GET("/relationships", s.handleListReports)
	api.POST("/approval-rules", s.handleCreateRule)
	api.GET("/approval-rules", s.handleListRules)
	api.PATCH("/approval-rules/:id/active", s.handleSetRuleActive)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

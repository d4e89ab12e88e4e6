package httpapi

import (
	"time"

	"github.com/expenso-app/expenso/internal/moneyx"
	"github.com/expenso-app/expenso/internal/server/models"
)

// Dates travel as plain calendar days, not timestamps.
const dateLayout = "2006-01-02"

type submitExpenseRequest struct {
	Amount      moneyx.Amount `json:"amount"`
	Currency    string        `json:"currency" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Description *string       `json:"description"`
	ExpenseDate string        `json:"expense_date" binding:"required"`
	ReceiptURL  *string       `json:"receipt_url"`
}

type expenseResponse struct {
	ID          int64         `json:"id"`
	UserID      string        `json:"user_id"`
	CompanyID   string        `json:"company_id"`
	Amount      moneyx.Amount `json:"amount"`
	Currency    string        `json:"currency"`
	Category    string        `json:"category"`
	Description *string       `json:"description,omitempty"`
	ExpenseDate string        `json:"expense_date"`
	ReceiptURL  *string       `json:"receipt_url,omitempty"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		CompanyID:   e.CompanyID,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    e.Category,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate.Format(dateLayout),
		ReceiptURL:  e.ReceiptURL,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toExpenseResponses(list []*models.Expense) []expenseResponse {
	out := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=manager employee"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

type createCompanyRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Country     string `json:"country"`
	AdminUserID string `json:"admin_user_id" binding:"required"`
}

type companyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Currency    string    `json:"currency"`
	Country     string    `json:"country"`
	AdminUserID string    `json:"admin_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCompanyResponse(c *models.Company) companyResponse {
	return companyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Currency:    c.Currency,
		Country:     c.Country,
		AdminUserID: c.AdminUserID,
		CreatedAt:   c.CreatedAt,
	}
}

type approvalResponse struct {
	ID         int64      `json:"id"`
	ExpenseID  int64      `json:"expense_id"`
	ApproverID string     `json:"approver_id"`
	Status     string     `json:"status"`
	Comments   *string    `json:"comments,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toApprovalResponse(a *models.Approval) approvalResponse {
	return approvalResponse{
		ID:         a.ID,
		ExpenseID:  a.ExpenseID,
		ApproverID: a.ApproverID,
		Status:     a.Status,
		Comments:   a.Comments,
		ApprovedAt: a.ApprovedAt,
		CreatedAt:  a.CreatedAt,
	}
}

type createRelationshipRequest struct {
	ManagerID  string `json:"manager_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
}

type relationshipResponse struct {
	ID         int64     `json:"id"`
	ManagerID  string    `json:"manager_id"`
	EmployeeID string    `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toRelationshipResponse(r *models.UserRelationship) relationshipResponse {
	return relationshipResponse{
		ID:         r.ID,
		ManagerID:  r.ManagerID,
		EmployeeID: r.EmployeeID,
		CreatedAt:  r.CreatedAt,
	}
}

type createRuleRequest struct {
	RuleName string            `json:"rule_name" binding:"required"`
	RuleType string            `json:"rule_type" binding:"required"`
	Config   models.RuleConfig `json:"rule_config"`
}

type ruleResponse struct {
	ID        int64             `json:"id"`
	CompanyID string            `json:"company_id"`
	RuleName  string            `json:"rule_name"`
	RuleType  string            `json:"rule_type"`
	Config    models.RuleConfig `json:"rule_config"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
}

func toRuleResponse(r *models.ApprovalRule) ruleResponse {
	return ruleResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		RuleName:  r.RuleName,
		RuleType:  r.RuleType,
		Config:    r.Config,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

// IsActive is a pointer so that an explicit false still satisfies the
// required binding.
type setRuleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type receiptUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

type receiptDownloadResponse struct {
	DownloadURL string `json:"download_url"`
}

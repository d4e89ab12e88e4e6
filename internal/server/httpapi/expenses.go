package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/expenso-app/expenso/internal/server/services"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleSubmitExpense(c *gin.Context) {
	var req submitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense_date must be YYYY-MM-DD"})
		return
	}

	expense, err := s.expenses.Submit(c.Request.Context(), identityFrom(c), services.ExpenseInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
		ExpenseDate: expenseDate,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "submit expense", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

func (s *Server) handleListMyExpenses(c *gin.Context) {
	list, err := s.expenses.ListMine(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.logger.Error(c.Request.Context(), "list expenses", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponses(list))
}

func (s *Server) handleListApprovals(c *gin.Context) {
	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
		return
	}

	list, err := s.expenses.ListApprovals(c.Request.Context(), identityFrom(c), expenseID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]approvalResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toApprovalResponse(a))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleReceiptUploadURL(c *gin.Context) {
	key, url, err := s.receipts.GetUploadURL(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "receipt upload url", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receiptUploadResponse{Key: key, UploadURL: url})
}

func (s *Server) handleReceiptDownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}
	url, err := s.receipts.GetDownloadURL(c.Request.Context(), key)
	if err != nil {
		s.logger.Error(c.Request.Context(), "receipt download url", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receiptDownloadResponse{DownloadURL: url})
}

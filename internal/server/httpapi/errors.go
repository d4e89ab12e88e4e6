package httpapi

import (
	"errors"
	"net/http"

	"github.com/expenso-app/expenso/internal/common"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses. Validation details are
// safe to return verbatim; everything else gets a generic message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package httpapi

import (
	"errors"
	"net/http"

	"github.com/expenso-app/expenso/internal/server/rates"

	"github.com/gin-gonic/gin"
)

// handleExchangeRate proxies the rate provider. Upstream error responses are
// relayed with their original status and body; transport failures become 503
// and unparseable payloads 500.
func (s *Server) handleExchangeRate(c *gin.Context) {
	result, err := s.rates.GetRates(c.Request.Context(), c.Param("base"))
	if err != nil {
		var upstream *rates.UpstreamError
		switch {
		case errors.As(err, &upstream):
			c.Data(upstream.StatusCode, "application/json", []byte(upstream.Body))
		case errors.Is(err, rates.ErrProviderUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rate provider unavailable"})
		case errors.Is(err, rates.ErrMalformedResponse):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "malformed rate provider response"})
		default:
			s.logger.Error(c.Request.Context(), "exchange rate", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/expenso-app/expenso/internal/server/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// authenticate resolves the Authorization bearer token into an Identity and
// stores it in the gin context. Requests without a valid token get 401.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		identity, err := auth.IdentityFromToken(token, s.secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFrom returns the Identity set by the authenticate middleware.
func identityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

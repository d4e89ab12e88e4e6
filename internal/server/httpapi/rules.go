package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleCreateRule(c *gin.Context) {
	var req createRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rule, err := s.rules.Create(c.Request.Context(), identityFrom(c), req.RuleName, req.RuleType, req.Config)
	if err != nil {
		s.logger.Error(c.Request.Context(), "create rule", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRuleResponse(rule))
}

func (s *Server) handleListRules(c *gin.Context) {
	list, err := s.rules.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		s.logger.Error(c.Request.Context(), "list rules", "error", err)
		writeError(c, err)
		return
	}
	out := make([]ruleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRuleResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleSetRuleActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}
	var req setRuleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.rules.SetActive(c.Request.Context(), identityFrom(c), id, *req.IsActive); err != nil {
		s.logger.Error(c.Request.Context(), "set rule active", "error", err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.directory.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := s.directory.CreateUser(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		s.logger.Error(c.Request.Context(), "create user", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleCreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	company, err := s.directory.CreateCompany(c.Request.Context(), req.ID, req.Name, req.Currency, req.Country, req.AdminUserID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "create company", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompanyResponse(company))
}

func (s *Server) handleGetCompany(c *gin.Context) {
	company, err := s.directory.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (s *Server) handleCreateRelationship(c *gin.Context) {
	var req createRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rel, err := s.directory.AssignManager(c.Request.Context(), req.ManagerID, req.EmployeeID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "create relationship", "error", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRelationshipResponse(rel))
}

// handleListReports lists the direct reports of a manager. Without an
// explicit manager_id the caller's own reports are returned.
func (s *Server) handleListReports(c *gin.Context) {
	managerID := c.Query("manager_id")
	if managerID == "" {
		managerID = identityFrom(c).UserID
	}
	list, err := s.directory.ListReports(c.Request.Context(), managerID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "list reports", "error", err)
		writeError(c, err)
		return
	}
	out := make([]relationshipResponse, 0, len(list))
	for _, rel := range list {
		out = append(out, toRelationshipResponse(rel))
	}
	c.JSON(http.StatusOK, out)
}

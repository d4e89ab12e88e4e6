package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/expenso-app/expenso/internal/common"
	"github.com/expenso-app/expenso/internal/dbx"
	"github.com/expenso-app/expenso/internal/server/models"
	"github.com/expenso-app/expenso/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DirectoryService manages the user directory: account records created by
// company admins, lookups, and manager/employee links. Credential flows
// (login, password reset) belong to the auth collaborator, not here.
type DirectoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDirectoryService constructs a DirectoryService using repositories.
func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager) *DirectoryService {
	return &DirectoryService{db: db, repomanager: m}
}

// CreateUser stores a new user with a bcrypt-hashed password. The email must
// be unique; a conflicting address yields common.ErrorDuplicate.
func (s *DirectoryService) CreateUser(ctx context.Context, email, password, role string) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if role != models.RoleManager && role != models.RoleEmployee {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	repo := s.repomanager.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// CreateCompany registers a company under a caller-chosen identifier. The
// currency must be a 3-letter code and the admin must be an existing user;
// both are checked before anything is written.
func (s *DirectoryService) CreateCompany(ctx context.Context, id, name, currency, country, adminUserID string) (*models.Company, error) {

	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: company id and name are required", common.ErrorValidation)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", common.ErrorValidation)
	}

	company := &models.Company{
		ID:          id,
		Name:        name,
		Currency:    currency,
		Country:     country,
		AdminUserID: adminUserID,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).GetByID(ctx, adminUserID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: admin user does not exist", common.ErrorValidation)
			}
			return err
		}
		_, err := s.repomanager.Companies(tx).Create(ctx, company)
		return err
	}); err != nil {
		if errors.Is(err, common.ErrorValidation) || errors.Is(err, common.ErrorDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating company: %w", err)
	}

	return company, nil
}

// GetCompany looks a company up by its identifier.
func (s *DirectoryService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	return s.repomanager.Companies(s.db).GetByID(ctx, id)
}

// GetUserByEmail looks a user up by their (case-insensitive) email address.
func (s *DirectoryService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AssignManager links an employee to a manager. The pair must be distinct
// users; a repeated link yields common.ErrorDuplicate.
func (s *DirectoryService) AssignManager(ctx context.Context, managerID, employeeID string) (*models.UserRelationship, error) {

	if managerID == "" || employeeID == "" {
		return nil, fmt.Errorf("%w: manager and employee are required", common.ErrorValidation)
	}
	if managerID == employeeID {
		return nil, fmt.Errorf("%w: a user cannot manage themselves", common.ErrorValidation)
	}

	rel := &models.UserRelationship{ManagerID: managerID, EmployeeID: employeeID}

	repo := s.repomanager.Relationships(s.db)
	created, err := repo.Create(ctx, rel)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("error creating relationship: %w", err)
	}

	return created, nil
}

// ListReports returns the manager/employee links where the given user is the
// manager. An unknown manager simply has no reports.
func (s *DirectoryService) ListReports(ctx context.Context, managerID string) ([]*models.UserRelationship, error) {
	repo := s.repomanager.Relationships(s.db)
	result, err := repo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("error listing relationships: %w", err)
	}
	return result, nil
}

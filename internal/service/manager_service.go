package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// ManagerService administers agency operators and resolves display
// names for lead rendering.
type ManagerService struct {
	managers   repository.ManagerRepository
	bcryptCost int
}

// ManagerCreateInput describes operator creation payload.
type ManagerCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.ManagerRole
	Avatar   *string
}

// NewManagerService builds the service.
func NewManagerService(managers repository.ManagerRepository, bcryptCost int) *ManagerService {
	return &ManagerService{managers: managers, bcryptCost: bcryptCost}
}

// CreateManager registers a new operator with a hashed password.
func (s *ManagerService) CreateManager(ctx context.Context, input ManagerCreateInput) (*domain.Manager, error) {
	if _, err := s.managers.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	manager := &domain.Manager{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		AvatarURL:    input.Avatar,
		Active:       true,
	}
	if manager.Role == "" {
		manager.Role = domain.RoleUser
	}
	if err := s.managers.Create(ctx, manager); err != nil {
		return nil, err
	}
	return manager, nil
}

// UpdateManager changes name, role, avatar and active flag.
func (s *ManagerService) UpdateManager(ctx context.Context, id string, name string, role domain.ManagerRole, avatar *string, active bool) (*domain.Manager, error) {
	manager, err := s.managers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	manager.Name = strings.TrimSpace(name)
	manager.Role = role
	manager.AvatarURL = avatar
	manager.Active = active
	if err := s.managers.Update(ctx, manager); err != nil {
		return nil, err
	}
	return manager, nil
}

// GetManager fetches one operator.
func (s *ManagerService) GetManager(ctx context.Context, id string) (*domain.Manager, error) {
	return s.managers.GetByID(ctx, id)
}

// ListManagers returns all operators.
func (s *ManagerService) ListManagers(ctx context.Context) ([]domain.Manager, error) {
	return s.managers.List(ctx)
}

// DisplayName resolves a responsible id to a manager name. Unknown or
// absent ids yield the sentinel; this lookup never fails on absence.
func (s *ManagerService) DisplayName(ctx context.Context, responsibleID *string) string {
	if responsibleID == nil || *responsibleID == "" {
		return domain.UnknownManagerName
	}
	manager, err := s.managers.GetByID(ctx, *responsibleID)
	if err != nil {
		return domain.UnknownManagerName
	}
	return manager.Name
}

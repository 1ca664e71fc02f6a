package service

import (
	"context"
	"errors"
	"time"

	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/config"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/repository"
)

// AuthService coordinates manager login and password changes.
type AuthService struct {
	managers   repository.ManagerRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, managers repository.ManagerRepository) *AuthService {
	return &AuthService{
		managers:   managers,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates a manager and returns a role-bearing token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Manager, string, time.Time, error) {
	manager, err := s.managers.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !manager.Active {
		return nil, "", time.Time{}, errors.New("manager inactive")
	}
	if err := auth.ComparePassword(manager.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(manager.ID, manager.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return manager, token, exp, nil
}

// ChangePassword verifies the current password before updating the hash.
func (s *AuthService) ChangePassword(ctx context.Context, managerID, currentPassword, newPassword string) error {
	manager, err := s.managers.GetByID(ctx, managerID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(manager.PasswordHash, currentPassword); err != nil {
		return errors.New("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	manager.PasswordHash = hash
	return s.managers.Update(ctx, manager)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

package dto

import (
	"time"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the issued token and profile.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Manager   ManagerResponse `json:"manager"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateManagerRequest payload.
type CreateManagerRequest struct {
	Name     string             `json:"nome"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Role     domain.ManagerRole `json:"role"`
	Avatar   *string            `json:"avatar_url"`
}

// UpdateManagerRequest payload.
type UpdateManagerRequest struct {
	Name   string             `json:"nome"`
	Role   domain.ManagerRole `json:"role"`
	Avatar *string            `json:"avatar_url"`
	Active bool               `json:"ativo"`
}

// ManagerResponse represents one operator; the password hash never leaves.
type ManagerResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"nome"`
	Email     string             `json:"email"`
	Role      domain.ManagerRole `json:"role"`
	AvatarURL *string            `json:"avatar_url,omitempty"`
	Active    bool               `json:"ativo"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewManagerResponse maps the domain model.
func NewManagerResponse(manager *domain.Manager) ManagerResponse {
	return ManagerResponse{
		ID:        manager.ID,
		Name:      manager.Name,
		Email:     manager.Email,
		Role:      manager.Role,
		AvatarURL: manager.AvatarURL,
		Active:    manager.Active,
		CreatedAt: manager.CreatedAt,
	}
}

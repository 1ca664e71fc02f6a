package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// ManagersHandler manages login and operator administration.
type ManagersHandler struct {
	authService *service.AuthService
	managers    *service.ManagerService
}

// NewManagersHandler constructs handler.
func NewManagersHandler(authService *service.AuthService, managers *service.ManagerService) *ManagersHandler {
	return &ManagersHandler{authService: authService, managers: managers}
}

// Login POST /auth/login.
func (h *ManagersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	manager, token, exp, err := h.authService.Login(c.UserContext(), strings.ToLower(req.Email), req.Password)
	if err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Manager:   dto.NewManagerResponse(manager),
	}})
}

// ChangePassword POST /auth/password/change.
func (h *ManagersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Manager == nil {
		return apperrors.NewUnauthorized("manager required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.NewPassword == "" {
		return apperrors.NewValidationError("new password required", nil)
	}
	if err := h.authService.ChangePassword(c.UserContext(), principal.Manager.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"changed": true}})
}

// CreateManager POST /managers.
func (h *ManagersHandler) CreateManager(c *fiber.Ctx) error {
	var req dto.CreateManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("nome, email, password required", nil)
	}
	manager, err := h.managers.CreateManager(c.UserContext(), service.ManagerCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewManagerResponse(manager)})
}

// UpdateManager PUT /managers/:id.
func (h *ManagersHandler) UpdateManager(c *fiber.Ctx) error {
	var req dto.UpdateManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	manager, err := h.managers.UpdateManager(c.UserContext(), c.Params("id"), req.Name, req.Role, req.Avatar, req.Active)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewManagerResponse(manager)})
}

// ListManagers GET /managers.
func (h *ManagersHandler) ListManagers(c *fiber.Ctx) error {
	managers, err := h.managers.ListManagers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ManagerResponse, 0, len(managers))
	for i := range managers {
		items = append(items, dto.NewManagerResponse(&managers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Me GET /auth/me.
func (h *ManagersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Manager == nil {
		return apperrors.NewUnauthorized("manager required")
	}
	return c.JSON(fiber.Map{"data": dto.NewManagerResponse(principal.Manager)})
}

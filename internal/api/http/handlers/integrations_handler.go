package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// IntegrationsHandler manages ad platform connection endpoints.
type IntegrationsHandler struct {
	adAccounts *service.AdAccountService
}

// NewIntegrationsHandler constructs handler.
func NewIntegrationsHandler(adAccounts *service.AdAccountService) *IntegrationsHandler {
	return &IntegrationsHandler{adAccounts: adAccounts}
}

// Connect POST /integrations/ad-accounts.
func (h *IntegrationsHandler) Connect(c *fiber.Ctx) error {
	var req dto.ConnectAdAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.AccountID == "" || req.ExternalAccountID == "" {
		return apperrors.NewValidationError("conta_id and external_account_id required", nil)
	}
	conn, err := h.adAccounts.Connect(c.UserContext(), service.ConnectInput{
		AccountID:         req.AccountID,
		Provider:          req.Provider,
		ExternalAccountID: req.ExternalAccountID,
		TokenRef:          req.TokenRef,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAdAccountResponse(conn)})
}

// MarkStatus PATCH /integrations/ad-accounts/:id/status.
func (h *IntegrationsHandler) MarkStatus(c *fiber.Ctx) error {
	var req struct {
		Status domain.AdConnectionStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	switch req.Status {
	case domain.ConnectionActive, domain.ConnectionExpired, domain.ConnectionError:
	default:
		return apperrors.NewValidationError("invalid status", map[string]any{"status": req.Status})
	}
	conn, err := h.adAccounts.MarkStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAdAccountResponse(conn)})
}

// ListByAccount GET /integrations/ad-accounts.
func (h *IntegrationsHandler) ListByAccount(c *fiber.Ctx) error {
	accountID := c.Query("conta_id")
	if accountID == "" {
		return apperrors.NewValidationError("conta_id required", nil)
	}
	conns, err := h.adAccounts.ListByAccount(c.UserContext(), accountID)
	if err != nil {
		return err
	}
	items := make([]dto.AdAccountResponse, 0, len(conns))
	for i := range conns {
		items = append(items, dto.NewAdAccountResponse(&conns[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

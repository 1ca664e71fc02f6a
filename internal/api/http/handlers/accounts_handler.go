package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agenciaflow/backoffice/internal/api/dto"
	"github.com/agenciaflow/backoffice/internal/service"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// AccountsHandler manages agency client endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

// CreateAccount POST /accounts.
func (h *AccountsHandler) CreateAccount(c *fiber.Ctx) error {
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	account, err := h.accounts.CreateAccount(c.UserContext(), service.AccountInput{
		Name:               req.Name,
		Company:            req.Company,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		MonthlyBudgetCents: req.MonthlyBudgetCents,
		Active:             true,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAccountResponse(account)})
}

// UpdateAccount PUT /accounts/:id.
func (h *AccountsHandler) UpdateAccount(c *fiber.Ctx) error {
	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	account, err := h.accounts.UpdateAccount(c.UserContext(), c.Params("id"), service.AccountInput{
		Name:               req.Name,
		Company:            req.Company,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		MonthlyBudgetCents: req.MonthlyBudgetCents,
		Active:             req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAccountResponse(account)})
}

// GetAccount GET /accounts/:id.
func (h *AccountsHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.accounts.GetAccount(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAccountResponse(account)})
}

// ListAccounts GET /accounts.
func (h *AccountsHandler) ListAccounts(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("ativas", false)
	accounts, err := h.accounts.ListAccounts(c.UserContext(), activeOnly)
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

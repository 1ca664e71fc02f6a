package dto

import (
	"time"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// AccountRequest payload for create/update.
type AccountRequest struct {
	Name               string  `json:"nome"`
	Company            string  `json:"empresa"`
	ContactEmail       string  `json:"email_contato"`
	ContactPhone       *string `json:"telefone_contato"`
	MonthlyBudgetCents int64   `json:"orcamento_mensal_centavos"`
	Active             bool    `json:"ativa"`
}

// AccountResponse represents one agency client.
type AccountResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"nome"`
	Company            string    `json:"empresa"`
	ContactEmail       string    `json:"email_contato"`
	ContactPhone       *string   `json:"telefone_contato,omitempty"`
	MonthlyBudgetCents int64     `json:"orcamento_mensal_centavos"`
	Active             bool      `json:"ativa"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewAccountResponse maps the domain model.
func NewAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                 account.ID,
		Name:               account.Name,
		Company:            account.Company,
		ContactEmail:       account.ContactEmail,
		ContactPhone:       account.ContactPhone,
		MonthlyBudgetCents: account.MonthlyBudgetCents,
		Active:             account.Active,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

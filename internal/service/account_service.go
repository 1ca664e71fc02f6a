package service

import (
	"context"
	"strings"

	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// AccountService administers agency clients.
type AccountService struct {
	accounts repository.AccountRepository
}

// AccountInput describes account create/update payload.
type AccountInput struct {
	Name               string
	Company            string
	ContactEmail       string
	ContactPhone       *string
	MonthlyBudgetCents int64
	Active             bool
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// CreateAccount registers a new client.
func (s *AccountService) CreateAccount(ctx context.Context, input AccountInput) (*domain.Account, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	account := &domain.Account{
		Name:               strings.TrimSpace(input.Name),
		Company:            strings.TrimSpace(input.Company),
		ContactEmail:       strings.TrimSpace(input.ContactEmail),
		ContactPhone:       input.ContactPhone,
		MonthlyBudgetCents: input.MonthlyBudgetCents,
		Active:             true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount replaces editable fields of an existing client.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, input AccountInput) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Name = strings.TrimSpace(input.Name)
	account.Company = strings.TrimSpace(input.Company)
	account.ContactEmail = strings.TrimSpace(input.ContactEmail)
	account.ContactPhone = input.ContactPhone
	account.MonthlyBudgetCents = input.MonthlyBudgetCents
	account.Active = input.Active
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount fetches one client.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// ListAccounts returns clients, optionally active only.
func (s *AccountService) ListAccounts(ctx context.Context, activeOnly bool) ([]domain.Account, error) {
	return s.accounts.List(ctx, activeOnly)
}

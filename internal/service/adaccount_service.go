package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/events"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// AdAccountService manages ad platform connections per account. Token
// exchange with Meta/Google happens in an external edge layer.
type AdAccountService struct {
	connections repository.AdAccountRepository
	accounts    repository.AccountRepository
	dispatcher  events.Dispatcher
}

// ConnectInput describes a new platform link.
type ConnectInput struct {
	AccountID         string
	Provider          domain.AdProvider
	ExternalAccountID string
	TokenRef          string
}

// NewAdAccountService builds the service.
func NewAdAccountService(connections repository.AdAccountRepository, accounts repository.AccountRepository, dispatcher events.Dispatcher) *AdAccountService {
	return &AdAccountService{connections: connections, accounts: accounts, dispatcher: dispatcher}
}

// Connect links an account to an ad platform account.
func (s *AdAccountService) Connect(ctx context.Context, input ConnectInput) (*domain.AdAccountConnection, error) {
	if input.Provider != domain.ProviderMeta && input.Provider != domain.ProviderGoogle {
		return nil, apperrors.NewValidationError("unknown provider", map[string]any{"provider": input.Provider})
	}
	if _, err := s.accounts.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	conn := &domain.AdAccountConnection{
		AccountID:         input.AccountID,
		Provider:          input.Provider,
		ExternalAccountID: input.ExternalAccountID,
		TokenRef:          input.TokenRef,
		Status:            domain.ConnectionActive,
	}
	if err := s.connections.Create(ctx, conn); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAdAccountConnected,
			Timestamp: time.Now(),
			Payload: events.AdAccountConnectedPayload{
				ConnectionID: conn.ID,
				AccountID:    conn.AccountID,
				Provider:     conn.Provider,
			},
		})
	}
	return conn, nil
}

// MarkStatus updates connection health, stamping the sync time.
func (s *AdAccountService) MarkStatus(ctx context.Context, id string, status domain.AdConnectionStatus) (*domain.AdAccountConnection, error) {
	conn, err := s.connections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	conn.Status = status
	conn.LastSyncedAt = &now
	if err := s.connections.Update(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// ListByAccount returns all connections for a client.
func (s *AdAccountService) ListByAccount(ctx context.Context, accountID string) ([]domain.AdAccountConnection, error) {
	return s.connections.ListByAccount(ctx, accountID)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/agenciaflow/backoffice/internal/events"
)

// NotificationService logs domain events for operational visibility.
// User-facing delivery (email, chat) is handled by n8n workflows.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeadFeedbackUpdated, n.handleLeadFeedbackUpdated)
	n.dispatcher.Subscribe(events.EventReportDispatched, n.handleReportDispatched)
	n.dispatcher.Subscribe(events.EventAdAccountConnected, n.handleAdAccountConnected)
}

func (n *NotificationService) handleLeadFeedbackUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("LeadFeedbackUpdated", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReportDispatched(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportDispatched", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleAdAccountConnected(ctx context.Context, event events.Event) error {
	n.logger.Info("AdAccountConnected", zap.Any("payload", event.Payload))
	return nil
}

package events

import (
	"time"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadFeedbackUpdated EventType = "lead_feedback_updated"
	EventReportDispatched    EventType = "report_dispatched"
	EventAdAccountConnected  EventType = "adaccount_connected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadFeedbackUpdatedPayload payload.
type LeadFeedbackUpdatedPayload struct {
	LeadID    string            `json:"lead_id"`
	AccountID string            `json:"account_id"`
	OldStatus domain.LeadStatus `json:"old_status"`
	NewStatus domain.LeadStatus `json:"new_status"`
}

// ReportDispatchedPayload payload.
type ReportDispatchedPayload struct {
	ScheduleID string                 `json:"schedule_id"`
	AccountID  string                 `json:"account_id"`
	Frequency  domain.ReportFrequency `json:"frequency"`
	Recipient  string                 `json:"recipient"`
}

// AdAccountConnectedPayload payload.
type AdAccountConnectedPayload struct {
	ConnectionID string            `json:"connection_id"`
	AccountID    string            `json:"account_id"`
	Provider     domain.AdProvider `json:"provider"`
}

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenciaflow/backoffice/internal/cache"
	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/events"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// csvHeader is the fixed export header. Column order is part of the
// export contract and must not change.
var csvHeader = []string{"Nome", "Telefone", "Email", "Origem", "Campanha", "Status", "Criado em"}

// LeadStats partitions a filtered lead set by funnel status. Total is
// always the sum of the four buckets; the status enumeration is closed.
type LeadStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pendentes"`
	Qualified    int `json:"qualificados"`
	Disqualified int `json:"desqualificados"`
	Converted    int `json:"convertidos"`
}

// FeedbackService coordinates the lead feedback pipeline: filtered
// listing, feedback writes, aggregate counts and CSV export.
type FeedbackService struct {
	leads      repository.LeadRepository
	leadCache  cache.LeadCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// FeedbackDependencies bundles collaborators for the feedback service.
// Cache, dispatcher and logger are optional.
type FeedbackDependencies struct {
	LeadRepo   repository.LeadRepository
	LeadCache  cache.LeadCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	return &FeedbackService{
		leads:      deps.LeadRepo,
		leadCache:  deps.LeadCache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        time.Now,
	}
}

// ListLeads returns leads matching the filter, newest first. Read-only;
// storage failures propagate untouched.
func (s *FeedbackService) ListLeads(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, error) {
	return s.leads.ListWithFilter(ctx, filter)
}

// GetLead fetches one lead by id. Absence surfaces as the storage
// layer's no-rows error and is mapped to NOT_FOUND at the HTTP boundary.
func (s *FeedbackService) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	if s.leadCache != nil {
		if cached, err := s.leadCache.FindByID(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.leadCache != nil {
		if err := s.leadCache.Cache(ctx, lead); err != nil && s.logger != nil {
			s.logger.Warn("lead cache write failed", zap.String("lead_id", id), zap.Error(err))
		}
	}
	return lead, nil
}

// UpdateFeedback replaces the lead's status and whole feedback record
// from the payload, stamping updatedAt/updatedBy. The write is a single
// atomic statement; concurrent writers race last-writer-wins.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id string, payload domain.FeedbackPayload, actorID string) (*domain.Lead, error) {
	if !domain.ValidLeadStatus(payload.Status) {
		return nil, apperrors.NewValidationError("invalid lead status", map[string]any{"status": payload.Status})
	}

	current, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		Status:      payload.Status,
		Reasons:     payload.Reasons,
		Stage:       payload.Stage,
		Rating:      payload.Rating,
		Tags:        payload.Tags,
		Comment:     payload.Comment,
		Attachments: payload.Attachments,
		UpdatedAt:   s.now(),
		UpdatedBy:   actorID,
	}
	if feedback.Tags == nil {
		feedback.Tags = []string{}
	}
	if feedback.Attachments == nil {
		feedback.Attachments = []string{}
	}

	if err := s.leads.UpdateFeedback(ctx, id, payload.Status, feedback); err != nil {
		return nil, err
	}

	if s.leadCache != nil {
		if err := s.leadCache.EvictByID(ctx, id); err != nil && s.logger != nil {
			s.logger.Warn("lead cache evict failed", zap.String("lead_id", id), zap.Error(err))
		}
	}

	oldStatus := current.Status
	current.Status = payload.Status
	current.Feedback = feedback

	s.publishEvent(ctx, events.Event{
		Type:    events.EventLeadFeedbackUpdated,
		ActorID: actorID,
		Payload: events.LeadFeedbackUpdatedPayload{
			LeadID:    current.ID,
			AccountID: current.AccountID,
			OldStatus: oldStatus,
			NewStatus: payload.Status,
		},
	})
	return current, nil
}

// GetStats counts the filtered set per status.
func (s *FeedbackService) GetStats(ctx context.Context, filter repository.LeadFilter) (*LeadStats, error) {
	leads, err := s.leads.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &LeadStats{Total: len(leads)}
	for _, lead := range leads {
		switch lead.Status {
		case domain.LeadStatusPending:
			stats.Pending++
		case domain.LeadStatusQualified:
			stats.Qualified++
		case domain.LeadStatusDisqualified:
			stats.Disqualified++
		case domain.LeadStatusConverted:
			stats.Converted++
		}
	}
	return stats, nil
}

// ExportCSV renders the filtered set as CSV: fixed header, one row per
// lead, columns Nome, Telefone, Email, Origem, Campanha, Status,
// Criado em. Values are quoted by the encoder where needed.
func (s *FeedbackService) ExportCSV(ctx context.Context, filter repository.LeadFilter) ([]byte, error) {
	leads, err := s.leads.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, lead := range leads {
		row := []string{
			lead.Name,
			stringOrEmpty(lead.Phone),
			stringOrEmpty(lead.Email),
			string(lead.Origin),
			stringOrEmpty(lead.Campaign),
			string(lead.Status),
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *FeedbackService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

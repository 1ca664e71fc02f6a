package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/events"
	"github.com/agenciaflow/backoffice/internal/integration/n8n"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// ReportTrigger abstracts the n8n webhook for testability.
type ReportTrigger interface {
	TriggerReport(ctx context.Context, trigger n8n.ReportTrigger) error
}

// ReportService manages report schedules and dispatches due runs to
// the external n8n automation.
type ReportService struct {
	schedules  repository.ReportScheduleRepository
	accounts   repository.AccountRepository
	trigger    ReportTrigger
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// ScheduleInput describes a schedule create/update payload.
type ScheduleInput struct {
	AccountID      string
	Frequency      domain.ReportFrequency
	RecipientEmail string
	NextRunAt      time.Time
	Active         bool
}

// NewReportService builds the service.
func NewReportService(schedules repository.ReportScheduleRepository, accounts repository.AccountRepository, trigger ReportTrigger, dispatcher events.Dispatcher, logger *zap.Logger) *ReportService {
	return &ReportService{
		schedules:  schedules,
		accounts:   accounts,
		trigger:    trigger,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateSchedule registers a recurring report for an account.
func (s *ReportService) CreateSchedule(ctx context.Context, input ScheduleInput) (*domain.ReportSchedule, error) {
	if !validFrequency(input.Frequency) {
		return nil, apperrors.NewValidationError("invalid frequency", map[string]any{"frequency": input.Frequency})
	}
	if _, err := s.accounts.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	schedule := &domain.ReportSchedule{
		AccountID:      input.AccountID,
		Frequency:      input.Frequency,
		RecipientEmail: input.RecipientEmail,
		NextRunAt:      input.NextRunAt,
		Active:         true,
	}
	if schedule.NextRunAt.IsZero() {
		schedule.NextRunAt = s.now()
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// UpdateSchedule replaces cadence and destination.
func (s *ReportService) UpdateSchedule(ctx context.Context, id string, input ScheduleInput) (*domain.ReportSchedule, error) {
	if !validFrequency(input.Frequency) {
		return nil, apperrors.NewValidationError("invalid frequency", map[string]any{"frequency": input.Frequency})
	}
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Frequency = input.Frequency
	schedule.RecipientEmail = input.RecipientEmail
	if !input.NextRunAt.IsZero() {
		schedule.NextRunAt = input.NextRunAt
	}
	schedule.Active = input.Active
	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ListByAccount returns all schedules for a client.
func (s *ReportService) ListByAccount(ctx context.Context, accountID string) ([]domain.ReportSchedule, error) {
	return s.schedules.ListByAccount(ctx, accountID)
}

// DispatchDue fires one n8n trigger per due schedule and advances each
// successful one. A failed trigger leaves NextRunAt untouched so the
// next scan picks it up again. Returns the count of dispatched runs.
func (s *ReportService) DispatchDue(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.schedules.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for i := range due {
		schedule := &due[i]

		accountName := ""
		if account, err := s.accounts.GetByID(ctx, schedule.AccountID); err == nil {
			accountName = account.Name
		}

		err := s.trigger.TriggerReport(ctx, n8n.ReportTrigger{
			ScheduleID:     schedule.ID,
			AccountID:      schedule.AccountID,
			AccountName:    accountName,
			Frequency:      string(schedule.Frequency),
			RecipientEmail: schedule.RecipientEmail,
			TriggeredAt:    now.UTC().Format(time.RFC3339),
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("report trigger failed",
					zap.String("schedule_id", schedule.ID),
					zap.Error(err))
			}
			continue
		}

		schedule.Advance(now)
		if err := s.schedules.Update(ctx, schedule); err != nil {
			if s.logger != nil {
				s.logger.Error("advance schedule failed", zap.String("schedule_id", schedule.ID), zap.Error(err))
			}
			continue
		}
		dispatched++

		if s.dispatcher != nil {
			_ = s.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventReportDispatched,
				Timestamp: now,
				Payload: events.ReportDispatchedPayload{
					ScheduleID: schedule.ID,
					AccountID:  schedule.AccountID,
					Frequency:  schedule.Frequency,
					Recipient:  schedule.RecipientEmail,
				},
			})
		}
	}
	return dispatched, nil
}

func validFrequency(f domain.ReportFrequency) bool {
	switch f {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyMonthly:
		return true
	}
	return false
}

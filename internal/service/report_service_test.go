package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/integration/n8n"
)

type memoryScheduleRepository struct {
	schedules map[string]*domain.ReportSchedule
	nextID    int
}

func newMemoryScheduleRepository(schedules ...*domain.ReportSchedule) *memoryScheduleRepository {
	repo := &memoryScheduleRepository{schedules: make(map[string]*domain.ReportSchedule)}
	for _, schedule := range schedules {
		repo.schedules[schedule.ID] = schedule
	}
	return repo
}

func (r *memoryScheduleRepository) Create(_ context.Context, schedule *domain.ReportSchedule) error {
	r.nextID++
	schedule.ID = "sched_" + string(rune('0'+r.nextID))
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *memoryScheduleRepository) Update(_ context.Context, schedule *domain.ReportSchedule) error {
	if _, ok := r.schedules[schedule.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *memoryScheduleRepository) GetByID(_ context.Context, id string) (*domain.ReportSchedule, error) {
	schedule, ok := r.schedules[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *schedule
	return &copied, nil
}

func (r *memoryScheduleRepository) ListByAccount(_ context.Context, accountID string) ([]domain.ReportSchedule, error) {
	var result []domain.ReportSchedule
	for _, schedule := range r.schedules {
		if schedule.AccountID == accountID {
			result = append(result, *schedule)
		}
	}
	return result, nil
}

func (r *memoryScheduleRepository) ListDue(_ context.Context, now time.Time) ([]domain.ReportSchedule, error) {
	var result []domain.ReportSchedule
	for _, schedule := range r.schedules {
		if schedule.Active && !schedule.NextRunAt.After(now) {
			result = append(result, *schedule)
		}
	}
	return result, nil
}

type memoryAccountRepository struct {
	accounts map[string]*domain.Account
}

func newMemoryAccountRepository(accounts ...*domain.Account) *memoryAccountRepository {
	repo := &memoryAccountRepository{accounts: make(map[string]*domain.Account)}
	for _, account := range accounts {
		repo.accounts[account.ID] = account
	}
	return repo
}

func (r *memoryAccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *memoryAccountRepository) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *memoryAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (r *memoryAccountRepository) List(_ context.Context, activeOnly bool) ([]domain.Account, error) {
	var result []domain.Account
	for _, account := range r.accounts {
		if activeOnly && !account.Active {
			continue
		}
		result = append(result, *account)
	}
	return result, nil
}

type stubTrigger struct {
	calls   []n8n.ReportTrigger
	failFor map[string]error
}

func (s *stubTrigger) TriggerReport(_ context.Context, trigger n8n.ReportTrigger) error {
	s.calls = append(s.calls, trigger)
	if err, ok := s.failFor[trigger.ScheduleID]; ok {
		return err
	}
	return nil
}

func newTestReportService(schedules *memoryScheduleRepository, accounts *memoryAccountRepository, trigger *stubTrigger, now time.Time) *ReportService {
	svc := NewReportService(schedules, accounts, trigger, nil, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateScheduleRejectsInvalidFrequency(t *testing.T) {
	svc := newTestReportService(newMemoryScheduleRepository(), newMemoryAccountRepository(), &stubTrigger{}, time.Now())

	_, err := svc.CreateSchedule(context.Background(), ScheduleInput{
		AccountID: "cli_001",
		Frequency: "quinzenal",
	})
	require.Error(t, err)
}

func TestCreateScheduleRequiresExistingAccount(t *testing.T) {
	svc := newTestReportService(newMemoryScheduleRepository(), newMemoryAccountRepository(), &stubTrigger{}, time.Now())

	_, err := svc.CreateSchedule(context.Background(), ScheduleInput{
		AccountID: "cli_missing",
		Frequency: domain.FrequencyWeekly,
	})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestDispatchDueAdvancesSuccessfulSchedules(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	account := &domain.Account{ID: "cli_001", Name: "Imobiliária Central", Active: true}
	due := &domain.ReportSchedule{
		ID:             "sched_a",
		AccountID:      "cli_001",
		Frequency:      domain.FrequencyWeekly,
		RecipientEmail: "dono@example.com",
		NextRunAt:      now.Add(-time.Hour),
		Active:         true,
	}
	notDue := &domain.ReportSchedule{
		ID:        "sched_b",
		AccountID: "cli_001",
		Frequency: domain.FrequencyDaily,
		NextRunAt: now.Add(time.Hour),
		Active:    true,
	}

	scheduleRepo := newMemoryScheduleRepository(due, notDue)
	trigger := &stubTrigger{}
	svc := newTestReportService(scheduleRepo, newMemoryAccountRepository(account), trigger, now)

	dispatched, err := svc.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)

	require.Len(t, trigger.calls, 1)
	assert.Equal(t, "sched_a", trigger.calls[0].ScheduleID)
	assert.Equal(t, "Imobiliária Central", trigger.calls[0].AccountName)
	assert.Equal(t, "semanal", trigger.calls[0].Frequency)

	advanced, err := scheduleRepo.GetByID(context.Background(), "sched_a")
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 7), advanced.NextRunAt)
	require.NotNil(t, advanced.LastRunAt)
	assert.Equal(t, now, *advanced.LastRunAt)

	untouched, err := scheduleRepo.GetByID(context.Background(), "sched_b")
	require.NoError(t, err)
	assert.Nil(t, untouched.LastRunAt)
}

func TestDispatchDueLeavesFailedTriggerForNextScan(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	due := &domain.ReportSchedule{
		ID:        "sched_a",
		AccountID: "cli_001",
		Frequency: domain.FrequencyDaily,
		NextRunAt: now.Add(-time.Minute),
		Active:    true,
	}

	scheduleRepo := newMemoryScheduleRepository(due)
	trigger := &stubTrigger{failFor: map[string]error{"sched_a": errors.New("webhook down")}}
	svc := newTestReportService(scheduleRepo, newMemoryAccountRepository(), trigger, now)

	dispatched, err := svc.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dispatched)

	stored, err := scheduleRepo.GetByID(context.Background(), "sched_a")
	require.NoError(t, err)
	assert.Equal(t, now.Add(-time.Minute), stored.NextRunAt, "failed dispatch must stay due")
	assert.Nil(t, stored.LastRunAt)
}

func TestAdvancePerFrequency(t *testing.T) {
	ranAt := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)

	daily := domain.ReportSchedule{Frequency: domain.FrequencyDaily}
	daily.Advance(ranAt)
	assert.Equal(t, ranAt.AddDate(0, 0, 1), daily.NextRunAt)

	weekly := domain.ReportSchedule{Frequency: domain.FrequencyWeekly}
	weekly.Advance(ranAt)
	assert.Equal(t, ranAt.AddDate(0, 0, 7), weekly.NextRunAt)

	monthly := domain.ReportSchedule{Frequency: domain.FrequencyMonthly}
	monthly.Advance(ranAt)
	assert.Equal(t, ranAt.AddDate(0, 1, 0), monthly.NextRunAt)
}

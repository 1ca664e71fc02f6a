package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// ReportScheduleRepository stores report delivery schedules.
type ReportScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.ReportSchedule) error
	Update(ctx context.Context, schedule *domain.ReportSchedule) error
	GetByID(ctx context.Context, id string) (*domain.ReportSchedule, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.ReportSchedule, error)
	ListDue(ctx context.Context, now time.Time) ([]domain.ReportSchedule, error)
}

type reportScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewReportScheduleRepository builds repository.
func NewReportScheduleRepository(pool *pgxpool.Pool) ReportScheduleRepository {
	return &reportScheduleRepository{pool: pool}
}

const scheduleColumns = `id, account_id, frequency, recipient_email, next_run_at, last_run_at, active, created_at, updated_at`

func (r *reportScheduleRepository) Create(ctx context.Context, schedule *domain.ReportSchedule) error {
	const query = `
        INSERT INTO report_schedules (account_id, frequency, recipient_email, next_run_at, active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		schedule.AccountID,
		schedule.Frequency,
		schedule.RecipientEmail,
		schedule.NextRunAt,
		schedule.Active,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
}

func (r *reportScheduleRepository) Update(ctx context.Context, schedule *domain.ReportSchedule) error {
	const query = `
        UPDATE report_schedules SET frequency=$1, recipient_email=$2, next_run_at=$3, last_run_at=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		schedule.Frequency,
		schedule.RecipientEmail,
		schedule.NextRunAt,
		schedule.LastRunAt,
		schedule.Active,
		schedule.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportScheduleRepository) GetByID(ctx context.Context, id string) (*domain.ReportSchedule, error) {
	var schedule domain.ReportSchedule
	if err := r.pool.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM report_schedules WHERE id=$1`, id).Scan(
		&schedule.ID,
		&schedule.AccountID,
		&schedule.Frequency,
		&schedule.RecipientEmail,
		&schedule.NextRunAt,
		&schedule.LastRunAt,
		&schedule.Active,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *reportScheduleRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.ReportSchedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM report_schedules WHERE account_id=$1 ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func (r *reportScheduleRepository) ListDue(ctx context.Context, now time.Time) ([]domain.ReportSchedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scheduleColumns+` FROM report_schedules WHERE active=true AND next_run_at <= $1 ORDER BY next_run_at ASC`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSchedules(rows)
}

func scanSchedules(rows pgx.Rows) ([]domain.ReportSchedule, error) {
	var result []domain.ReportSchedule
	for rows.Next() {
		var schedule domain.ReportSchedule
		if err := rows.Scan(
			&schedule.ID,
			&schedule.AccountID,
			&schedule.Frequency,
			&schedule.RecipientEmail,
			&schedule.NextRunAt,
			&schedule.LastRunAt,
			&schedule.Active,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, schedule)
	}
	return result, rows.Err()
}

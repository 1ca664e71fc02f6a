package repository

import (
	"fmt"
	"strings"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// LeadFilter captures lead search parameters. Absent fields place no
// constraint on their dimension; present fields combine with AND.
type LeadFilter struct {
	Search        *string
	AccountID     *string
	Status        *domain.LeadStatus
	Origin        *domain.LeadOrigin
	ResponsibleID *string
}

// Matches reports whether a lead satisfies every non-absent predicate.
// The Postgres implementation expresses the same contract in SQL; this
// form serves in-memory stores and tests.
func (f LeadFilter) Matches(lead *domain.Lead) bool {
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		term := strings.ToLower(strings.TrimSpace(*f.Search))
		if !containsFold(lead.Name, term) &&
			!containsFoldPtr(lead.Phone, term) &&
			!containsFoldPtr(lead.Email, term) {
			return false
		}
	}
	if f.AccountID != nil && lead.AccountID != *f.AccountID {
		return false
	}
	if f.Status != nil && lead.Status != *f.Status {
		return false
	}
	if f.Origin != nil && lead.Origin != *f.Origin {
		return false
	}
	if f.ResponsibleID != nil {
		if lead.ResponsibleID == nil || *lead.ResponsibleID != *f.ResponsibleID {
			return false
		}
	}
	return true
}

func containsFold(value, lowered string) bool {
	return strings.Contains(strings.ToLower(value), lowered)
}

func containsFoldPtr(value *string, lowered string) bool {
	if value == nil {
		return false
	}
	return containsFold(*value, lowered)
}

// LeadRepository encapsulates lead persistence. Leads are created by an
// external ingestion pipeline; the application only reads them and
// writes feedback.
type LeadRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	ListWithFilter(ctx context.Context, filter LeadFilter) ([]domain.Lead, error)
	UpdateFeedback(ctx context.Context, id string, status domain.LeadStatus, feedback *domain.Feedback) error
}

type leadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository instantiates a Postgres-backed repository.
func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &leadRepository{pool: pool}
}

const leadColumns = `id, account_id, name, phone, email, origin, campaign, responsible_id, status, feedback, created_at, updated_at`

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id=$1`, leadColumns)

	var lead domain.Lead
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.AccountID,
		&lead.Name,
		&lead.Phone,
		&lead.Email,
		&lead.Origin,
		&lead.Campaign,
		&lead.ResponsibleID,
		&lead.Status,
		&lead.Feedback,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) ListWithFilter(ctx context.Context, filter LeadFilter) ([]domain.Lead, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		clauses = append(clauses, fmt.Sprintf("account_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Origin != nil {
		args = append(args, *filter.Origin)
		clauses = append(clauses, fmt.Sprintf("origin=$%d", len(args)))
	}
	if filter.ResponsibleID != nil {
		args = append(args, *filter.ResponsibleID)
		clauses = append(clauses, fmt.Sprintf("responsible_id=$%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(name) LIKE %s OR LOWER(COALESCE(phone,'')) LIKE %s OR LOWER(COALESCE(email,'')) LIKE %s)",
			placeholder, placeholder, placeholder))
	}

	query := fmt.Sprintf(`SELECT %s FROM leads WHERE %s ORDER BY created_at DESC`,
		leadColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeads(rows)
}

// UpdateFeedback replaces status and the whole feedback record in a
// single statement. Last writer wins; there is no version check.
func (r *leadRepository) UpdateFeedback(ctx context.Context, id string, status domain.LeadStatus, feedback *domain.Feedback) error {
	const query = `
        UPDATE leads SET status=$1, feedback=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, status, feedback, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanLeads(rows pgx.Rows) ([]domain.Lead, error) {
	var result []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.AccountID,
			&lead.Name,
			&lead.Phone,
			&lead.Email,
			&lead.Origin,
			&lead.Campaign,
			&lead.ResponsibleID,
			&lead.Status,
			&lead.Feedback,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lead)
	}
	return result, rows.Err()
}

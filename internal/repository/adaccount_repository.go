package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// AdAccountRepository stores ad platform connections.
type AdAccountRepository interface {
	Create(ctx context.Context, conn *domain.AdAccountConnection) error
	Update(ctx context.Context, conn *domain.AdAccountConnection) error
	GetByID(ctx context.Context, id string) (*domain.AdAccountConnection, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.AdAccountConnection, error)
}

type adAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAdAccountRepository builds repository.
func NewAdAccountRepository(pool *pgxpool.Pool) AdAccountRepository {
	return &adAccountRepository{pool: pool}
}

const adConnColumns = `id, account_id, provider, external_account_id, token_ref, status, last_synced_at, created_at, updated_at`

func (r *adAccountRepository) Create(ctx context.Context, conn *domain.AdAccountConnection) error {
	const query = `
        INSERT INTO ad_account_connections (account_id, provider, external_account_id, token_ref, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		conn.AccountID,
		conn.Provider,
		conn.ExternalAccountID,
		conn.TokenRef,
		conn.Status,
	).Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
}

func (r *adAccountRepository) Update(ctx context.Context, conn *domain.AdAccountConnection) error {
	const query = `
        UPDATE ad_account_connections SET external_account_id=$1, token_ref=$2, status=$3, last_synced_at=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		conn.ExternalAccountID,
		conn.TokenRef,
		conn.Status,
		conn.LastSyncedAt,
		conn.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adAccountRepository) GetByID(ctx context.Context, id string) (*domain.AdAccountConnection, error) {
	var conn domain.AdAccountConnection
	if err := r.pool.QueryRow(ctx, `SELECT `+adConnColumns+` FROM ad_account_connections WHERE id=$1`, id).Scan(
		&conn.ID,
		&conn.AccountID,
		&conn.Provider,
		&conn.ExternalAccountID,
		&conn.TokenRef,
		&conn.Status,
		&conn.LastSyncedAt,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *adAccountRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.AdAccountConnection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+adConnColumns+` FROM ad_account_connections WHERE account_id=$1 ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdAccountConnection
	for rows.Next() {
		var conn domain.AdAccountConnection
		if err := rows.Scan(
			&conn.ID,
			&conn.AccountID,
			&conn.Provider,
			&conn.ExternalAccountID,
			&conn.TokenRef,
			&conn.Status,
			&conn.LastSyncedAt,
			&conn.CreatedAt,
			&conn.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, conn)
	}
	return result, rows.Err()
}

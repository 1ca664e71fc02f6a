package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// ManagerRepository defines persistence access for agency operators.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) error
	Update(ctx context.Context, manager *domain.Manager) error
	GetByID(ctx context.Context, id string) (*domain.Manager, error)
	GetByEmail(ctx context.Context, email string) (*domain.Manager, error)
	List(ctx context.Context) ([]domain.Manager, error)
}

type managerRepository struct {
	pool *pgxpool.Pool
}

// NewManagerRepository returns a Postgres-backed implementation.
func NewManagerRepository(pool *pgxpool.Pool) ManagerRepository {
	return &managerRepository{pool: pool}
}

const managerColumns = `id, name, email, password_hash, role, avatar_url, active, created_at, updated_at`

func (r *managerRepository) Create(ctx context.Context, manager *domain.Manager) error {
	const query = `
        INSERT INTO managers (name, email, password_hash, role, avatar_url, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		manager.Name,
		manager.Email,
		manager.PasswordHash,
		manager.Role,
		manager.AvatarURL,
		manager.Active,
	).Scan(&manager.ID, &manager.CreatedAt, &manager.UpdatedAt)
}

func (r *managerRepository) Update(ctx context.Context, manager *domain.Manager) error {
	const query = `
        UPDATE managers SET name=$1, email=$2, password_hash=$3, role=$4, avatar_url=$5, active=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		manager.Name,
		manager.Email,
		manager.PasswordHash,
		manager.Role,
		manager.AvatarURL,
		manager.Active,
		manager.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *managerRepository) GetByID(ctx context.Context, id string) (*domain.Manager, error) {
	return r.fetchSingle(ctx, `SELECT `+managerColumns+` FROM managers WHERE id=$1`, id)
}

func (r *managerRepository) GetByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	return r.fetchSingle(ctx, `SELECT `+managerColumns+` FROM managers WHERE email=$1`, email)
}

func (r *managerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Manager, error) {
	var manager domain.Manager
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&manager.ID,
		&manager.Name,
		&manager.Email,
		&manager.PasswordHash,
		&manager.Role,
		&manager.AvatarURL,
		&manager.Active,
		&manager.CreatedAt,
		&manager.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) List(ctx context.Context) ([]domain.Manager, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+managerColumns+` FROM managers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Manager
	for rows.Next() {
		var manager domain.Manager
		if err := rows.Scan(
			&manager.ID,
			&manager.Name,
			&manager.Email,
			&manager.PasswordHash,
			&manager.Role,
			&manager.AvatarURL,
			&manager.Active,
			&manager.CreatedAt,
			&manager.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, manager)
	}
	return result, rows.Err()
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// TrainingRepository stores training content records.
type TrainingRepository interface {
	Create(ctx context.Context, content *domain.TrainingContent) error
	Update(ctx context.Context, content *domain.TrainingContent) error
	GetByID(ctx context.Context, id string) (*domain.TrainingContent, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.TrainingContent, error)
}

type trainingRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingRepository builds repository.
func NewTrainingRepository(pool *pgxpool.Pool) TrainingRepository {
	return &trainingRepository{pool: pool}
}

func (r *trainingRepository) Create(ctx context.Context, content *domain.TrainingContent) error {
	const query = `
        INSERT INTO training_contents (title, category, video_url, description, published)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		content.Title,
		content.Category,
		content.VideoURL,
		content.Description,
		content.Published,
	).Scan(&content.ID, &content.CreatedAt, &content.UpdatedAt)
}

func (r *trainingRepository) Update(ctx context.Context, content *domain.TrainingContent) error {
	const query = `
        UPDATE training_contents SET title=$1, category=$2, video_url=$3, description=$4, published=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		content.Title,
		content.Category,
		content.VideoURL,
		content.Description,
		content.Published,
		content.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trainingRepository) GetByID(ctx context.Context, id string) (*domain.TrainingContent, error) {
	const query = `
        SELECT id, title, category, video_url, description, published, created_at, updated_at
        FROM training_contents WHERE id=$1`

	var content domain.TrainingContent
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&content.ID,
		&content.Title,
		&content.Category,
		&content.VideoURL,
		&content.Description,
		&content.Published,
		&content.CreatedAt,
		&content.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *trainingRepository) List(ctx context.Context, publishedOnly bool) ([]domain.TrainingContent, error) {
	query := `
        SELECT id, title, category, video_url, description, published, created_at, updated_at
        FROM training_contents`
	if publishedOnly {
		query += ` WHERE published=true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TrainingContent
	for rows.Next() {
		var content domain.TrainingContent
		if err := rows.Scan(
			&content.ID,
			&content.Title,
			&content.Category,
			&content.VideoURL,
			&content.Description,
			&content.Published,
			&content.CreatedAt,
			&content.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, content)
	}
	return result, rows.Err()
}

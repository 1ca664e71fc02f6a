package service

import (
	"context"
	"strings"

	"github.com/agenciaflow/backoffice/internal/domain"
	"github.com/agenciaflow/backoffice/internal/repository"
	apperrors "github.com/agenciaflow/backoffice/pkg/util"
)

// TrainingService manages training content.
type TrainingService struct {
	contents repository.TrainingRepository
}

// TrainingInput describes content create/update payload.
type TrainingInput struct {
	Title       string
	Category    string
	VideoURL    string
	Description string
	Published   bool
}

// NewTrainingService builds the service.
func NewTrainingService(contents repository.TrainingRepository) *TrainingService {
	return &TrainingService{contents: contents}
}

// CreateContent registers a new training item.
func (s *TrainingService) CreateContent(ctx context.Context, input TrainingInput) (*domain.TrainingContent, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	content := &domain.TrainingContent{
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Description: input.Description,
		Published:   input.Published,
	}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// UpdateContent replaces editable fields.
func (s *TrainingService) UpdateContent(ctx context.Context, id string, input TrainingInput) (*domain.TrainingContent, error) {
	content, err := s.contents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	content.Title = strings.TrimSpace(input.Title)
	content.Category = strings.TrimSpace(input.Category)
	content.VideoURL = strings.TrimSpace(input.VideoURL)
	content.Description = input.Description
	content.Published = input.Published
	if err := s.contents.Update(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// ListContents returns training items; non-admin callers see published only.
func (s *TrainingService) ListContents(ctx context.Context, publishedOnly bool) ([]domain.TrainingContent, error) {
	return s.contents.List(ctx, publishedOnly)
}

package dto

import (
	"time"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// ConnectAdAccountRequest payload.
type ConnectAdAccountRequest struct {
	AccountID         string            `json:"conta_id"`
	Provider          domain.AdProvider `json:"provider"`
	ExternalAccountID string            `json:"external_account_id"`
	TokenRef          string            `json:"token_ref"`
}

// AdAccountResponse represents one platform link.
type AdAccountResponse struct {
	ID                string                    `json:"id"`
	AccountID         string                    `json:"conta_id"`
	Provider          domain.AdProvider         `json:"provider"`
	ExternalAccountID string                    `json:"external_account_id"`
	Status            domain.AdConnectionStatus `json:"status"`
	LastSyncedAt      *time.Time                `json:"last_synced_at,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// NewAdAccountResponse maps the domain model. The token reference is
// intentionally omitted from responses.
func NewAdAccountResponse(conn *domain.AdAccountConnection) AdAccountResponse {
	return AdAccountResponse{
		ID:                conn.ID,
		AccountID:         conn.AccountID,
		Provider:          conn.Provider,
		ExternalAccountID: conn.ExternalAccountID,
		Status:            conn.Status,
		LastSyncedAt:      conn.LastSyncedAt,
		CreatedAt:         conn.CreatedAt,
	}
}

// TrainingRequest payload for create/update.
type TrainingRequest struct {
	Title       string `json:"titulo"`
	Category    string `json:"categoria"`
	VideoURL    string `json:"video_url"`
	Description string `json:"descricao"`
	Published   bool   `json:"publicado"`
}

// TrainingResponse represents one content item.
type TrainingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Category    string    `json:"categoria"`
	VideoURL    string    `json:"video_url"`
	Description string    `json:"descricao"`
	Published   bool      `json:"publicado"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTrainingResponse maps the domain model.
func NewTrainingResponse(content *domain.TrainingContent) TrainingResponse {
	return TrainingResponse{
		ID:          content.ID,
		Title:       content.Title,
		Category:    content.Category,
		VideoURL:    content.VideoURL,
		Description: content.Description,
		Published:   content.Published,
		CreatedAt:   content.CreatedAt,
	}
}

// ReportScheduleRequest payload for create/update.
type ReportScheduleRequest struct {
	AccountID      string                 `json:"conta_id"`
	Frequency      domain.ReportFrequency `json:"frequencia"`
	RecipientEmail string                 `json:"email_destinatario"`
	NextRunAt      *time.Time             `json:"proxima_execucao"`
	Active         bool                   `json:"ativo"`
}

// ReportScheduleResponse represents one schedule.
type ReportScheduleResponse struct {
	ID             string                 `json:"id"`
	AccountID      string                 `json:"conta_id"`
	Frequency      domain.ReportFrequency `json:"frequencia"`
	RecipientEmail string                 `json:"email_destinatario"`
	NextRunAt      time.Time              `json:"proxima_execucao"`
	LastRunAt      *time.Time             `json:"ultima_execucao,omitempty"`
	Active         bool                   `json:"ativo"`
	CreatedAt      time.Time              `json:"created_at"`
}

// NewReportScheduleResponse maps the domain model.
func NewReportScheduleResponse(schedule *domain.ReportSchedule) ReportScheduleResponse {
	return ReportScheduleResponse{
		ID:             schedule.ID,
		AccountID:      schedule.AccountID,
		Frequency:      schedule.Frequency,
		RecipientEmail: schedule.RecipientEmail,
		NextRunAt:      schedule.NextRunAt,
		LastRunAt:      schedule.LastRunAt,
		Active:         schedule.Active,
		CreatedAt:      schedule.CreatedAt,
	}
}

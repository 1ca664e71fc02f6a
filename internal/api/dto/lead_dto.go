package dto

import (
	"time"

	"github.com/agenciaflow/backoffice/internal/domain"
)

// tableDateLayout is the fixed locale pattern used by the lead table.
const tableDateLayout = "02/01/06 15:04"

// FeedbackResponse mirrors the stored feedback record.
type FeedbackResponse struct {
	Status      domain.LeadStatus     `json:"status"`
	Reasons     []string              `json:"motivos,omitempty"`
	Stage       *domain.FeedbackStage `json:"etapa,omitempty"`
	Rating      *int                  `json:"nota,omitempty"`
	Tags        []string              `json:"tags"`
	Comment     string                `json:"comentario,omitempty"`
	Attachments []string              `json:"anexos"`
	UpdatedAt   time.Time             `json:"updated_at"`
	UpdatedBy   string                `json:"updated_by"`
}

// LeadSummary is one row of the lead table. ResponsibleName is resolved
// from the manager lookup and CreatedAtLabel is preformatted for display.
type LeadSummary struct {
	ID              string            `json:"id"`
	AccountID       string            `json:"conta_id"`
	Name            string            `json:"nome"`
	Phone           *string           `json:"telefone,omitempty"`
	Email           *string           `json:"email,omitempty"`
	Origin          domain.LeadOrigin `json:"origem"`
	Campaign        *string           `json:"campanha,omitempty"`
	ResponsibleID   *string           `json:"responsavel_id,omitempty"`
	ResponsibleName string            `json:"responsavel_nome"`
	Status          domain.LeadStatus `json:"status"`
	Feedback        *FeedbackResponse `json:"feedback,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	CreatedAtLabel  string            `json:"criado_em"`
}

// UpdateFeedbackRequest carries the full desired feedback state.
type UpdateFeedbackRequest struct {
	Status      domain.LeadStatus     `json:"status"`
	Reasons     []string              `json:"motivos"`
	Stage       *domain.FeedbackStage `json:"etapa"`
	Rating      *int                  `json:"nota"`
	Tags        []string              `json:"tags"`
	Comment     string                `json:"comentario"`
	Attachments []string              `json:"anexos"`
}

// NewLeadSummary maps a lead to its table row.
func NewLeadSummary(lead *domain.Lead, responsibleName string) LeadSummary {
	summary := LeadSummary{
		ID:              lead.ID,
		AccountID:       lead.AccountID,
		Name:            lead.Name,
		Phone:           lead.Phone,
		Email:           lead.Email,
		Origin:          lead.Origin,
		Campaign:        lead.Campaign,
		ResponsibleID:   lead.ResponsibleID,
		ResponsibleName: responsibleName,
		Status:          lead.Status,
		CreatedAt:       lead.CreatedAt,
		CreatedAtLabel:  lead.CreatedAt.Format(tableDateLayout),
	}
	if lead.Feedback != nil {
		fb := FeedbackResponse(*lead.Feedback)
		summary.Feedback = &fb
	}
	return summary
}

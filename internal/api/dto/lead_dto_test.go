package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenciaflow/backoffice/internal/domain"
)

func TestNewLeadSummaryFormatsTableDate(t *testing.T) {
	lead := &domain.Lead{
		ID:        "lead_001",
		AccountID: "cli_001",
		Name:      "Maria Silva",
		Origin:    domain.LeadOriginMeta,
		Status:    domain.LeadStatusPending,
		CreatedAt: time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC),
	}

	summary := NewLeadSummary(lead, "Bruno Alves")

	assert.Equal(t, "05/03/26 14:30", summary.CreatedAtLabel)
	assert.Equal(t, "Bruno Alves", summary.ResponsibleName)
	assert.Nil(t, summary.Feedback)
}

func TestNewLeadSummaryCarriesFeedback(t *testing.T) {
	rating := 5
	lead := &domain.Lead{
		ID:     "lead_002",
		Name:   "João Souza",
		Status: domain.LeadStatusConverted,
		Feedback: &domain.Feedback{
			Status:  domain.LeadStatusConverted,
			Rating:  &rating,
			Tags:    []string{"fechado"},
			Comment: "Contrato assinado",
		},
	}

	summary := NewLeadSummary(lead, domain.UnknownManagerName)

	require.NotNil(t, summary.Feedback)
	assert.Equal(t, domain.LeadStatusConverted, summary.Feedback.Status)
	assert.Equal(t, []string{"fechado"}, summary.Feedback.Tags)
	assert.Equal(t, domain.UnknownManagerName, summary.ResponsibleName)
}

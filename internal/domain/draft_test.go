package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedbackDraftDefaults(t *testing.T) {
	draft := NewFeedbackDraft(nil)

	assert.Equal(t, LeadStatusPending, draft.Status)
	assert.Empty(t, draft.Reasons)
	assert.NotNil(t, draft.Reasons)
	assert.Empty(t, draft.Tags)
	assert.Nil(t, draft.Stage)
	assert.Nil(t, draft.Rating)
	assert.Empty(t, draft.Comment)
}

func TestNewFeedbackDraftSeedsFromExistingFeedback(t *testing.T) {
	stage := StageContacted
	rating := 3
	fb := &Feedback{
		Status:    LeadStatusQualified,
		Reasons:   []string{"Orçamento aprovado"},
		Stage:     &stage,
		Rating:    &rating,
		Tags:      []string{"vip"},
		Comment:   "Ligou de volta",
		UpdatedAt: time.Now(),
		UpdatedBy: "mgr_001",
	}

	draft := NewFeedbackDraft(fb)

	assert.Equal(t, fb.Status, draft.Status)
	assert.Equal(t, fb.Reasons, draft.Reasons)
	assert.Equal(t, fb.Tags, draft.Tags)
	assert.Equal(t, fb.Comment, draft.Comment)

	// Draft edits must not leak into the source record.
	draft.ToggleReason("Sem resposta")
	draft.ToggleTag("quente")
	assert.Len(t, fb.Reasons, 1)
	assert.Len(t, fb.Tags, 1)
}

func TestToggleReasonIsItsOwnInverse(t *testing.T) {
	draft := NewFeedbackDraft(nil)

	draft.ToggleReason("Sem resposta")
	assert.Equal(t, []string{"Sem resposta"}, draft.Reasons)

	draft.ToggleReason("Sem resposta")
	assert.Empty(t, draft.Reasons)
}

func TestToggleNeverDuplicates(t *testing.T) {
	draft := NewFeedbackDraft(nil)

	draft.ToggleTag("quente")
	draft.ToggleTag("frio")
	draft.ToggleTag("quente")
	draft.ToggleTag("quente")

	assert.Equal(t, []string{"frio", "quente"}, draft.Tags)
}

func TestSetRatingClampsToRange(t *testing.T) {
	draft := NewFeedbackDraft(nil)

	draft.SetRating(0)
	require.NotNil(t, draft.Rating)
	assert.Equal(t, 1, *draft.Rating)

	draft.SetRating(9)
	assert.Equal(t, 5, *draft.Rating)

	draft.SetRating(3)
	assert.Equal(t, 3, *draft.Rating)
}

func TestPayloadCarriesFullDraftState(t *testing.T) {
	draft := NewFeedbackDraft(nil)
	draft.SetStatus(LeadStatusDisqualified)
	draft.ToggleReason("Fora da região")
	draft.SetStage(StageExpired)
	draft.SetComment("Mudou de cidade")

	payload := draft.Payload()

	assert.Equal(t, LeadStatusDisqualified, payload.Status)
	assert.Equal(t, []string{"Fora da região"}, payload.Reasons)
	require.NotNil(t, payload.Stage)
	assert.Equal(t, StageExpired, *payload.Stage)
	assert.Equal(t, "Mudou de cidade", payload.Comment)
	assert.NotNil(t, payload.Tags)
	assert.NotNil(t, payload.Attachments)
}

func TestValidLeadStatus(t *testing.T) {
	for _, status := range []LeadStatus{LeadStatusPending, LeadStatusQualified, LeadStatusDisqualified, LeadStatusConverted} {
		assert.True(t, ValidLeadStatus(status))
	}
	assert.False(t, ValidLeadStatus("EmNegociacao"))
	assert.False(t, ValidLeadStatus(""))
}

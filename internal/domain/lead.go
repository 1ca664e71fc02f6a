package domain

import "time"

// LeadStatus enumerates funnel states for leads. Values are the
// Portuguese labels stored and exposed on the wire.
type LeadStatus string

const (
	LeadStatusPending      LeadStatus = "Pendente"
	LeadStatusQualified    LeadStatus = "Qualificado"
	LeadStatusDisqualified LeadStatus = "Desqualificado"
	LeadStatusConverted    LeadStatus = "Convertido"
)

// ValidLeadStatus reports whether s is one of the four funnel states.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusPending, LeadStatusQualified, LeadStatusDisqualified, LeadStatusConverted:
		return true
	}
	return false
}

// LeadOrigin enumerates acquisition channels.
type LeadOrigin string

const (
	LeadOriginMeta    LeadOrigin = "Meta"
	LeadOriginGoogle  LeadOrigin = "Google"
	LeadOriginOrganic LeadOrigin = "Orgânico"
	LeadOriginOther   LeadOrigin = "Outro"
)

// FeedbackStage enumerates funnel sub-stages, an axis independent of status.
type FeedbackStage string

const (
	StageNew       FeedbackStage = "Novo"
	StageContacted FeedbackStage = "Contato"
	StageScheduled FeedbackStage = "Agendado"
	StageVisited   FeedbackStage = "Visitou"
	StageProposal  FeedbackStage = "Proposta"
	StageExpired   FeedbackStage = "Expirado"
)

// Feedback records a manager's disposition of a lead. It is replaced
// wholesale on every write; there is no partial-field patch.
type Feedback struct {
	Status      LeadStatus     `json:"status"`
	Reasons     []string       `json:"motivos,omitempty"`
	Stage       *FeedbackStage `json:"etapa,omitempty"`
	Rating      *int           `json:"nota,omitempty"`
	Tags        []string       `json:"tags"`
	Comment     string         `json:"comentario,omitempty"`
	Attachments []string       `json:"anexos"`
	UpdatedAt   time.Time      `json:"updated_at"`
	UpdatedBy   string         `json:"updated_by"`
}

// Lead is the aggregate for prospective customers captured from ad channels.
// Status is duplicated inside Feedback when present; the feedback write path
// keeps both in sync.
type Lead struct {
	ID            string
	AccountID     string
	Name          string
	Phone         *string
	Email         *string
	Origin        LeadOrigin
	Campaign      *string
	ResponsibleID *string
	Status        LeadStatus
	Feedback      *Feedback
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

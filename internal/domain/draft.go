package domain

// FeedbackDraft is an uncommitted feedback edit, seeded from a lead's
// existing feedback or from defaults when the lead was never triaged.
// Toggle operations are their own inverse and never duplicate entries.
type FeedbackDraft struct {
	Status      LeadStatus
	Reasons     []string
	Stage       *FeedbackStage
	Rating      *int
	Tags        []string
	Comment     string
	Attachments []string
}

// NewFeedbackDraft seeds a draft from existing feedback, or defaults
// (status Pendente, empty sets) when fb is nil.
func NewFeedbackDraft(fb *Feedback) *FeedbackDraft {
	if fb == nil {
		return &FeedbackDraft{
			Status:      LeadStatusPending,
			Reasons:     []string{},
			Tags:        []string{},
			Attachments: []string{},
		}
	}
	return &FeedbackDraft{
		Status:      fb.Status,
		Reasons:     append([]string{}, fb.Reasons...),
		Stage:       fb.Stage,
		Rating:      fb.Rating,
		Tags:        append([]string{}, fb.Tags...),
		Comment:     fb.Comment,
		Attachments: append([]string{}, fb.Attachments...),
	}
}

// ToggleReason adds the reason if absent, removes it if present.
func (d *FeedbackDraft) ToggleReason(reason string) {
	d.Reasons = toggle(d.Reasons, reason)
}

// ToggleTag adds the tag if absent, removes it if present.
func (d *FeedbackDraft) ToggleTag(tag string) {
	d.Tags = toggle(d.Tags, tag)
}

// SetRating stores a star rating clamped to 1..5. There is no way to
// unset a rating once given.
func (d *FeedbackDraft) SetRating(rating int) {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	d.Rating = &rating
}

// SetStage sets the funnel sub-stage.
func (d *FeedbackDraft) SetStage(stage FeedbackStage) {
	d.Stage = &stage
}

// SetStatus sets the target funnel status.
func (d *FeedbackDraft) SetStatus(status LeadStatus) {
	d.Status = status
}

// SetComment replaces the free-text comment.
func (d *FeedbackDraft) SetComment(comment string) {
	d.Comment = comment
}

// Payload emits the full desired feedback state for UpdateFeedback.
func (d *FeedbackDraft) Payload() FeedbackPayload {
	return FeedbackPayload{
		Status:      d.Status,
		Reasons:     append([]string{}, d.Reasons...),
		Stage:       d.Stage,
		Rating:      d.Rating,
		Tags:        append([]string{}, d.Tags...),
		Comment:     d.Comment,
		Attachments: append([]string{}, d.Attachments...),
	}
}

// FeedbackPayload carries the full desired feedback state of a lead.
type FeedbackPayload struct {
	Status      LeadStatus
	Reasons     []string
	Stage       *FeedbackStage
	Rating      *int
	Tags        []string
	Comment     string
	Attachments []string
}

func toggle(set []string, value string) []string {
	for i, existing := range set {
		if existing == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

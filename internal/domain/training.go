package domain

import "time"

// TrainingContent is a published training item shown to agency users.
type TrainingContent struct {
	ID          string
	Title       string
	Category    string
	VideoURL    string
	Description string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

// ReportFrequency enumerates schedule intervals.
type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "diario"
	FrequencyWeekly  ReportFrequency = "semanal"
	FrequencyMonthly ReportFrequency = "mensal"
)

// ReportSchedule configures recurring report delivery for an account.
// Dispatch happens through an external n8n webhook; this record only
// tracks cadence and destination.
type ReportSchedule struct {
	ID             string
	AccountID      string
	Frequency      ReportFrequency
	RecipientEmail string
	NextRunAt      time.Time
	LastRunAt      *time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Advance moves NextRunAt forward one interval from the given run time.
func (s *ReportSchedule) Advance(ranAt time.Time) {
	s.LastRunAt = &ranAt
	switch s.Frequency {
	case FrequencyDaily:
		s.NextRunAt = ranAt.AddDate(0, 0, 1)
	case FrequencyWeekly:
		s.NextRunAt = ranAt.AddDate(0, 0, 7)
	case FrequencyMonthly:
		s.NextRunAt = ranAt.AddDate(0, 1, 0)
	default:
		s.NextRunAt = ranAt.AddDate(0, 0, 1)
	}
}

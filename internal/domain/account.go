package domain

import "time"

// Account models an agency client (conta). Leads, ad connections and
// report schedules all hang off an account.
type Account struct {
	ID                 string
	Name               string
	Company            string
	ContactEmail       string
	ContactPhone       *string
	MonthlyBudgetCents int64
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package domain

import "time"

// AdProvider enumerates supported ad platforms.
type AdProvider string

const (
	ProviderMeta   AdProvider = "meta"
	ProviderGoogle AdProvider = "google"
)

// AdConnectionStatus enumerates link health states.
type AdConnectionStatus string

const (
	ConnectionActive  AdConnectionStatus = "ativa"
	ConnectionExpired AdConnectionStatus = "expirada"
	ConnectionError   AdConnectionStatus = "erro"
)

// AdAccountConnection links an account to an external ad platform
// account. Token exchange with the platform happens in an external
// edge layer; only the reference is stored here.
type AdAccountConnection struct {
	ID                string
	AccountID         string
	Provider          AdProvider
	ExternalAccountID string
	TokenRef          string
	Status            AdConnectionStatus
	LastSyncedAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

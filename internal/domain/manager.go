package domain

import "time"

// ManagerRole enumerates back-office roles.
type ManagerRole string

const (
	RoleAdmin   ManagerRole = "admin"
	RoleManager ManagerRole = "gestor"
	RoleUser    ManagerRole = "usuario"
)

// UnknownManagerName is the sentinel returned when a responsible id
// does not resolve to a manager. Lookups never error on absence.
const UnknownManagerName = "Gestor não encontrado"

// Manager models an agency operator who triages leads.
type Manager struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         ManagerRole
	AvatarURL    *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package domain

import "time"

// ClientStatus is the billing/engagement state shown on the admin dashboard.
type ClientStatus string

const (
	StatusActive     ClientStatus = "ACTIVE"
	StatusPaymentDue ClientStatus = "PAYMENT DUE"
	StatusOverdue    ClientStatus = "OVERDUE"
	StatusInactive   ClientStatus = "INACTIVE"
)

// Valid reports whether s is one of the known client statuses.
func (s ClientStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaymentDue, StatusOverdue, StatusInactive:
		return true
	}
	return false
}

// Client models an account in the portal. The first account ever registered is
// the admin; every later one is a studio client. Email is stored lowercased so
// uniqueness is case-insensitive.
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	IsAdmin      bool         `json:"isAdmin"`
	Status       ClientStatus `json:"status"`
	ProjectID    string       `json:"projectId,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant. It is visible to its creator and to
// users holding a membership edge; API responses expose only the public
// fields.
type Organization struct {
	ID          uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Membership links a non-creator user to an organisation.
type Membership struct {
	OrganizationID uuid.UUID `json:"orgId"`
	UserID         uuid.UUID `json:"userId"`
	CreatedAt      time.Time `json:"-"`
}

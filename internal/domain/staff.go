package domain

import (
	"time"
)

// StaffRecord is the canonical roster entry a parsed schedule name is
// reconciled against.
type StaffRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsUnder18 bool      `json:"isUnder18"`
	CreatedAt time.Time `json:"createdAt"`
}

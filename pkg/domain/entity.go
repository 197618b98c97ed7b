// Package domain holds the shared building blocks of the ledger's entities:
// the embedded Entity base, and the Outcome type used to report the result of
// every mutating money operation.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the attributes common to every stored record.
//
// Invariants:
//   - ID is generated once at construction and never changes.
//   - UpdatedAt is refreshed on every mutation via Touch.
//   - InsertedBy/UpdatedBy are carried for audit purposes but no actor
//     context is threaded through this core, so they stay empty.
type Entity struct {
	ID         string    `json:"id"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	IsActive   bool      `json:"isActive"`
	InsertedBy string    `json:"insertedBy"`
	UpdatedBy  string    `json:"updatedBy"`
}

// NewEntity returns an Entity with a fresh UUID, both timestamps set to the
// current UTC time and the active flag raised.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		ID:         uuid.NewString(),
		InsertedAt: now,
		UpdatedAt:  now,
		IsActive:   true,
	}
}

// Touch refreshes UpdatedAt. Called by every mutating operation.
func (e *Entity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

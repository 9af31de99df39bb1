package models

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedReport is a generated 1930 report retained for the helpline
// follow-up. Archival is optional; the body is the exact text the user copies
// into the complaint form.
type ArchivedReport struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID uuid.UUID `json:"session_id" db:"session_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-text training diary entry owned by a single user.
type JournalEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Entry     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

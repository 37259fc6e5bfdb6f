package repository

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJournalNotFound is returned when a journal entry does not exist.
var ErrJournalNotFound = errors.New("journal entry not found")

// JournalRepository defines persistence operations for journal entries.
type JournalRepository interface {
	Create(ctx context.Context, entry *entity.JournalEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error)
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.JournalEntry, error)
	Update(ctx context.Context, entry *entity.JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateJournalInput defines the data required to create a journal entry.
type CreateJournalInput struct {
	Entry string
}

// UpdateJournalInput replaces the text of a journal entry.
type UpdateJournalInput struct {
	Entry string
}

// JournalUsecase defines journal operations scoped to the authenticated
// principal.
type JournalUsecase interface {
	CreateJournalEntry(ctx context.Context, principal *entity.User, input CreateJournalInput) (*entity.JournalEntry, error)
	GetJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.JournalEntry, error)
	ListJournalEntries(ctx context.Context, principal *entity.User) ([]*entity.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID, input UpdateJournalInput) (*entity.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID) error
}

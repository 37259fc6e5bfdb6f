package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// journalService implements the JournalUsecase interface.
type journalService struct {
	journalRepo repository.JournalRepository
	logger      *slog.Logger
}

// JournalServiceParams holds dependencies for journalService, injected by Fx.
type JournalServiceParams struct {
	fx.In

	JournalRepo repository.JournalRepository
	Logger      *slog.Logger
}

// NewJournalService is the constructor for journalService.
func NewJournalService(params JournalServiceParams) usecase.JournalUsecase {
	return &journalService{
		journalRepo: params.JournalRepo,
		logger:      params.Logger,
	}
}

func (srv *journalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateJournalEntry persists a new journal entry for the principal.
func (srv *journalService) CreateJournalEntry(ctx context.Context, principal *entity.User, input usecase.CreateJournalInput) (*entity.JournalEntry, error) {
	if input.Entry == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("entry text is required")
	}

	journal := &entity.JournalEntry{
		UserID: principal.ID,
		Entry:  input.Entry,
	}

	if err := srv.journalRepo.Create(ctx, journal); err != nil {
		srv.log(ctx).Error("Failed to create journal entry", slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create journal entry")
	}

	return journal, nil
}

// GetJournalEntry loads a journal entry owned by the principal.
func (srv *journalService) GetJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.JournalEntry, error) {
	return srv.loadOwned(ctx, principal, id)
}

// ListJournalEntries returns all journal entries owned by the principal.
func (srv *journalService) ListJournalEntries(ctx context.Context, principal *entity.User) ([]*entity.JournalEntry, error) {
	journals, err := srv.journalRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal entries")
	}

	return journals, nil
}

// UpdateJournalEntry replaces the text of an entry owned by the principal.
func (srv *journalService) UpdateJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.UpdateJournalInput) (*entity.JournalEntry, error) {
	if input.Entry == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("entry text is required")
	}

	journal, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	journal.Entry = input.Entry

	if err := srv.journalRepo.Update(ctx, journal); err != nil {
		srv.log(ctx).Error("Failed to update journal entry", slog.Any("journalID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update journal entry")
	}

	return journal, nil
}

// DeleteJournalEntry removes an entry owned by the principal.
func (srv *journalService) DeleteJournalEntry(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.journalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("journal entry not found")
		}

		return errors.Wrap(err, "failed to delete journal entry")
	}

	return nil
}

func (srv *journalService) loadOwned(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.JournalEntry, error) {
	journal, err := srv.journalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("journal entry not found")
		}

		return nil, errors.Wrap(err, "failed to load journal entry")
	}

	if journal.UserID != principal.ID {
		return nil, domainerrors.ErrNotFound.WrapMessage("journal entry not found")
	}

	return journal, nil
}

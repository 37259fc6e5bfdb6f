package postgres

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// journalRepository implements the repository.JournalRepository interface.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository is the constructor for journalRepository.
func NewJournalRepository(db *gorm.DB) repository.JournalRepository {
	return &journalRepository{db: db}
}

// Create persists a new journal entry.
func (repo *journalRepository) Create(ctx context.Context, journal *entity.JournalEntry) error {
	journalM := fromJournalDomain(journal)

	if err := repo.db.WithContext(ctx).Create(journalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create journal entry")
	}

	journal.ID = journalM.ID
	journal.CreatedAt = journalM.CreatedAt
	journal.UpdatedAt = journalM.UpdatedAt

	return nil
}

// FindByID retrieves a journal entry by its unique ID.
func (repo *journalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	var journalM model.JournalModel

	if err := repo.db.WithContext(ctx).First(&journalM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJournalNotFound
		}

		return nil, errors.Wrap(err, "failed to find journal entry by id")
	}

	return toJournalDomain(&journalM), nil
}

// ListByUser returns the user's journal entries, newest first.
func (repo *journalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error) {
	var journalMs []model.JournalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&journalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list journal entries")
	}

	return toJournalDomainSlice(journalMs), nil
}

// ListByUserBetween returns the user's journal entries created within [from, to).
func (repo *journalRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.JournalEntry, error) {
	var journalMs []model.JournalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at").
		Find(&journalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list journal entries in range")
	}

	return toJournalDomainSlice(journalMs), nil
}

// Update persists changes to an existing journal entry.
func (repo *journalRepository) Update(ctx context.Context, journal *entity.JournalEntry) error {
	journalM := fromJournalDomain(journal)

	if err := repo.db.WithContext(ctx).
		Model(&model.JournalModel{}).
		Where("id = ?", journal.ID).
		Updates(map[string]any{
			"entry": journalM.Entry,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update journal entry")
	}

	return nil
}

// Delete removes a journal entry by ID.
func (repo *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.JournalModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete journal entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJournalNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJournalDomain(data *model.JournalModel) *entity.JournalEntry {
	if data == nil {
		return nil
	}

	return &entity.JournalEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		Entry:     data.Entry,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toJournalDomainSlice(data []model.JournalModel) []*entity.JournalEntry {
	journals := make([]*entity.JournalEntry, 0, len(data))
	for i := range data {
		journals = append(journals, toJournalDomain(&data[i]))
	}

	return journals
}

func fromJournalDomain(data *entity.JournalEntry) *model.JournalModel {
	if data == nil {
		return nil
	}

	return &model.JournalModel{
		ID:     data.ID,
		UserID: data.UserID,
		Entry:  data.Entry,
	}
}

package postgres

import (
	"context"
	"fmt"

	"fittrack/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// UserRepo creates a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// TeamRepo creates a team repository instance bound to the transaction.
func (f *gormRepositoryFactory) TeamRepo() repository.TeamRepository {
	return NewTeamRepository(f.tx)
}

// WorkoutRepo creates a workout repository instance bound to the transaction.
func (f *gormRepositoryFactory) WorkoutRepo() repository.WorkoutRepository {
	return NewWorkoutRepository(f.tx)
}

// GoalRepo creates a goal repository instance bound to the transaction.
func (f *gormRepositoryFactory) GoalRepo() repository.GoalRepository {
	return NewGoalRepository(f.tx)
}

// CheckInRepo creates a mood check-in repository instance bound to the transaction.
func (f *gormRepositoryFactory) CheckInRepo() repository.CheckInRepository {
	return NewCheckInRepository(f.tx)
}

// JournalRepo creates a journal repository instance bound to the transaction.
func (f *gormRepositoryFactory) JournalRepo() repository.JournalRepository {
	return NewJournalRepository(f.tx)
}

// AssessmentRepo creates an assessment repository instance bound to the transaction.
func (f *gormRepositoryFactory) AssessmentRepo() repository.AssessmentRepository {
	return NewAssessmentRepository(f.tx)
}

// SummaryRepo creates a summary repository instance bound to the transaction.
func (f *gormRepositoryFactory) SummaryRepo() repository.SummaryRepository {
	return NewSummaryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

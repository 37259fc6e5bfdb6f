package repository

import "context"

// RepositoryFactory provides repository instances bound to a single
// transaction. The use case receives it from TransactionManager.Execute and
// must not retain it beyond the callback.
type RepositoryFactory interface {
	UserRepo() UserRepository
	TeamRepo() TeamRepository
	WorkoutRepo() WorkoutRepository
	GoalRepo() GoalRepository
	CheckInRepo() CheckInRepository
	JournalRepo() JournalRepository
	AssessmentRepo() AssessmentRepository
	SummaryRepo() SummaryRepository
}

// TransactionManager runs a unit of work inside a single storage transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

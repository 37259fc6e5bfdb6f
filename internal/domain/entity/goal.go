package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus tracks the progress of a goal.
type GoalStatus string

const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

// IsValid checks if the GoalStatus is a valid value.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalPending, GoalInProgress, GoalCompleted:
		return true
	default:
		return false
	}
}

// Goal is a training objective owned by a single user.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      GoalStatus // Defaults to GoalPending.
}

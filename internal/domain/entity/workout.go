package entity

import (
	"time"

	"github.com/google/uuid"
)

// SetEntry describes a single set within an exercise: either the plan
// (target reps/weight) or the recorded outcome, depending on context.
type SetEntry struct {
	Set     int      `json:"set"`                // 1-based set index.
	Reps    int      `json:"reps"`               // Target or performed reps.
	Weight  *float64 `json:"weight,omitempty"`   // Weight in kg, if applicable.
	RestSec *int     `json:"rest_sec,omitempty"` // Rest after this set, in seconds.
	Note    string   `json:"note,omitempty"`
}

// Exercise is a named list of sets inside a workout.
type Exercise struct {
	Name string     `json:"name"`
	Sets []SetEntry `json:"sets"`
}

// UpdateLogEntry records a change made to a workout after creation.
type UpdateLogEntry struct {
	At     time.Time      `json:"at"`
	Change string         `json:"change"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// Workout is a planned or completed training session owned by a single user.
type Workout struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TeamWorkoutID *uuid.UUID // Set when this workout was adopted from a team template.
	Title         string
	Description   string
	StartDate     *time.Time
	EndDate       *time.Time
	Exercises     []Exercise
	Results       []Exercise       // Performed exercises; nil until recorded.
	UpdateLog     []UpdateLogEntry // Audit trail of edits; nil when never edited.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

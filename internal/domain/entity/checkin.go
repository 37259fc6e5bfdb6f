package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodCheckIn is a point-in-time wellbeing record for a user. The mood
// payload is free-form structured data (e.g. sliders for energy, sleep,
// soreness) and is stored as-is.
type MoodCheckIn struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Mood      map[string]any
	CreatedAt time.Time
}

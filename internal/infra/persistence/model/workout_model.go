package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkoutModel mirrors the 'workouts' table. Exercises, results and the
// update log are stored as JSONB documents, as the original schema does.
type WorkoutModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeamWorkoutID *uuid.UUID `gorm:"type:uuid;index"`
	Title         string     `gorm:"type:varchar(120);not null"`
	Description   string     `gorm:"type:varchar(2000);not null"`
	StartDate     *time.Time
	EndDate       *time.Time
	Exercises     datatypes.JSON `gorm:"type:jsonb;not null"`
	Results       datatypes.JSON `gorm:"type:jsonb"`
	UpdateLog     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}

// TeamWorkoutModel mirrors the 'team_workouts' table.
type TeamWorkoutModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TeamID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SquadID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	Title       string     `gorm:"type:varchar(120);not null"`
	Description string     `gorm:"type:varchar(2000);not null"`
	Exercises   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamWorkoutModel) TableName() string {
	return "team_workouts"
}

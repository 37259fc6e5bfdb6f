package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GoalModel mirrors the 'goals' table.
type GoalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(2000);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	Status      string `gorm:"type:varchar(20);not null;default:pending"`
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}

// MoodCheckInModel mirrors the 'mood_checkins' table. The mood payload is
// free-form JSONB.
type MoodCheckInModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Mood      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MoodCheckInModel) TableName() string {
	return "mood_checkins"
}

// JournalModel mirrors the 'journal_entries' table.
type JournalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Entry     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (JournalModel) TableName() string {
	return "journal_entries"
}

// AssessmentModel mirrors the 'assessments' table. Parameters and results
// are JSONB documents.
type AssessmentModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	TeamAssessmentID *uuid.UUID `gorm:"type:uuid;index"`
	Title            string     `gorm:"type:varchar(120);not null"`
	Instructions     string     `gorm:"type:varchar(2000)"`
	Parameters       datatypes.JSON `gorm:"type:jsonb;not null"`
	Results          datatypes.JSON `gorm:"type:jsonb"`
	TakenAt          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssessmentModel) TableName() string {
	return "assessments"
}

// SummaryModel mirrors the 'summaries' table.
type SummaryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Period    string    `gorm:"type:varchar(10);not null"`
	Mood      string    `gorm:"type:text;not null"`
	Journal   string    `gorm:"type:text;not null"`
	Workout   string    `gorm:"type:text;not null"`
	Goals     string    `gorm:"type:text;not null"`
	General   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SummaryModel) TableName() string {
	return "summaries"
}

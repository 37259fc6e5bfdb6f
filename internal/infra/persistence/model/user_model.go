// Package model contains the GORM persistence models mirroring the
// PostgreSQL schema. They are exported so the GORM Gen tool can reference
// them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:athlete"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Workouts    []WorkoutModel     `gorm:"foreignKey:UserID"`
	Goals       []GoalModel        `gorm:"foreignKey:UserID"`
	CheckIns    []MoodCheckInModel `gorm:"foreignKey:UserID"`
	Journal     []JournalModel     `gorm:"foreignKey:UserID"`
	Assessments []AssessmentModel  `gorm:"foreignKey:UserID"`
	Summaries   []SummaryModel     `gorm:"foreignKey:UserID"`
	Memberships []MembershipModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamModel mirrors the 'teams' table. Team names are globally unique.
type TeamModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	City      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time

	Squads []SquadModel `gorm:"foreignKey:TeamID"`
}

// TableName explicitly sets the table name for GORM.
func (TeamModel) TableName() string {
	return "teams"
}

// SquadModel mirrors the 'squads' table. Squad names are unique per team.
type SquadModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TeamID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_squad_team_name"`
	Name   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_squad_team_name"`
}

// TableName explicitly sets the table name for GORM.
func (SquadModel) TableName() string {
	return "squads"
}

// MembershipModel mirrors the 'team_members' table. One membership per
// (user, team) pair is enforced at the storage layer.
type MembershipModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_team"`
	TeamID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_team"`
	SquadID  *uuid.UUID `gorm:"type:uuid"`
	Role     string     `gorm:"type:varchar(20);not null;default:member"`
	JoinedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "team_members"
}

// TeamAssessmentModel mirrors the 'team_assessments' table.
type TeamAssessmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TeamID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	Title        string    `gorm:"type:varchar(120);not null"`
	Instructions string    `gorm:"type:varchar(2000);not null"`
	Parameters   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamAssessmentModel) TableName() string {
	return "team_assessments"
}

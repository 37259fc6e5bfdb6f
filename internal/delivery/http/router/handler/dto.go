// Package handler contains the HTTP handlers that translate requests
// into usecase calls and map entities onto response DTOs. Entities are
// never serialized directly; the DTOs control exactly what leaves the
// service (in particular, password hashes never do).
package handler

import (
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Response DTOs ---

// UserDTO is the public representation of an account.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// TokenDTO carries the issued access token after a successful login.
type TokenDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// WorkoutDTO is the public representation of a personal workout.
type WorkoutDTO struct {
	ID            uuid.UUID               `json:"id"`
	TeamWorkoutID *uuid.UUID              `json:"team_workout_id,omitempty"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	StartDate     *time.Time              `json:"start_date,omitempty"`
	EndDate       *time.Time              `json:"end_date,omitempty"`
	Exercises     []entity.Exercise       `json:"exercises"`
	Results       []entity.Exercise       `json:"results,omitempty"`
	UpdateLog     []entity.UpdateLogEntry `json:"update_log,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func toWorkoutDTO(w *entity.Workout) WorkoutDTO {
	return WorkoutDTO{
		ID:            w.ID,
		TeamWorkoutID: w.TeamWorkoutID,
		Title:         w.Title,
		Description:   w.Description,
		StartDate:     w.StartDate,
		EndDate:       w.EndDate,
		Exercises:     w.Exercises,
		Results:       w.Results,
		UpdateLog:     w.UpdateLog,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func toWorkoutDTOs(workouts []*entity.Workout) []WorkoutDTO {
	dtos := make([]WorkoutDTO, 0, len(workouts))
	for _, w := range workouts {
		dtos = append(dtos, toWorkoutDTO(w))
	}

	return dtos
}

// AssessmentDTO is the public representation of a personal assessment.
type AssessmentDTO struct {
	ID               uuid.UUID                    `json:"id"`
	TeamAssessmentID *uuid.UUID                   `json:"team_assessment_id,omitempty"`
	Title            string                       `json:"title"`
	Instructions     string                       `json:"instructions,omitempty"`
	Parameters       []entity.AssessmentParameter `json:"parameters"`
	Results          []entity.MetricResult        `json:"results,omitempty"`
	TakenAt          *time.Time                   `json:"taken_at,omitempty"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

func toAssessmentDTO(a *entity.Assessment) AssessmentDTO {
	return AssessmentDTO{
		ID:               a.ID,
		TeamAssessmentID: a.TeamAssessmentID,
		Title:            a.Title,
		Instructions:     a.Instructions,
		Parameters:       a.Parameters,
		Results:          a.Results,
		TakenAt:          a.TakenAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toAssessmentDTOs(assessments []*entity.Assessment) []AssessmentDTO {
	dtos := make([]AssessmentDTO, 0, len(assessments))
	for _, a := range assessments {
		dtos = append(dtos, toAssessmentDTO(a))
	}

	return dtos
}

// GoalDTO is the public representation of a goal.
type GoalDTO struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
}

func toGoalDTO(g *entity.Goal) GoalDTO {
	return GoalDTO{
		ID:          g.ID,
		Description: g.Description,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		Status:      string(g.Status),
	}
}

func toGoalDTOs(goals []*entity.Goal) []GoalDTO {
	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, toGoalDTO(g))
	}

	return dtos
}

// CheckInDTO is the public representation of a mood check-in.
type CheckInDTO struct {
	ID        uuid.UUID      `json:"id"`
	Mood      map[string]any `json:"mood"`
	CreatedAt time.Time      `json:"created_at"`
}

func toCheckInDTO(ci *entity.MoodCheckIn) CheckInDTO {
	return CheckInDTO{
		ID:        ci.ID,
		Mood:      ci.Mood,
		CreatedAt: ci.CreatedAt,
	}
}

func toCheckInDTOs(checkIns []*entity.MoodCheckIn) []CheckInDTO {
	dtos := make([]CheckInDTO, 0, len(checkIns))
	for _, ci := range checkIns {
		dtos = append(dtos, toCheckInDTO(ci))
	}

	return dtos
}

// JournalDTO is the public representation of a journal entry.
type JournalDTO struct {
	ID        uuid.UUID `json:"id"`
	Entry     string    `json:"entry"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toJournalDTO(j *entity.JournalEntry) JournalDTO {
	return JournalDTO{
		ID:        j.ID,
		Entry:     j.Entry,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

func toJournalDTOs(entries []*entity.JournalEntry) []JournalDTO {
	dtos := make([]JournalDTO, 0, len(entries))
	for _, j := range entries {
		dtos = append(dtos, toJournalDTO(j))
	}

	return dtos
}

// SummaryDTO is the public representation of a generated summary.
type SummaryDTO struct {
	ID        uuid.UUID `json:"id"`
	Period    string    `json:"period"`
	Mood      string    `json:"mood"`
	Journal   string    `json:"journal"`
	Workout   string    `json:"workout"`
	Goals     string    `json:"goals"`
	General   string    `json:"general"`
	CreatedAt time.Time `json:"created_at"`
}

func toSummaryDTO(s *entity.Summary) SummaryDTO {
	return SummaryDTO{
		ID:        s.ID,
		Period:    string(s.Period),
		Mood:      s.Mood,
		Journal:   s.Journal,
		Workout:   s.Workout,
		Goals:     s.Goals,
		General:   s.General,
		CreatedAt: s.CreatedAt,
	}
}

func toSummaryDTOs(summaries []*entity.Summary) []SummaryDTO {
	dtos := make([]SummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, toSummaryDTO(s))
	}

	return dtos
}

// SquadDTO is the public representation of a squad.
type SquadDTO struct {
	ID     uuid.UUID `json:"id"`
	TeamID uuid.UUID `json:"team_id"`
	Name   string    `json:"name"`
}

func toSquadDTO(s *entity.Squad) SquadDTO {
	return SquadDTO{ID: s.ID, TeamID: s.TeamID, Name: s.Name}
}

// TeamDTO is the public representation of a team.
type TeamDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	City      string     `json:"city,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Squads    []SquadDTO `json:"squads,omitempty"`
}

func toTeamDTO(t *entity.Team) TeamDTO {
	dto := TeamDTO{
		ID:        t.ID,
		Name:      t.Name,
		City:      t.City,
		CreatedAt: t.CreatedAt,
	}
	for _, s := range t.Squads {
		dto.Squads = append(dto.Squads, toSquadDTO(s))
	}

	return dto
}

func toTeamDTOs(teams []*entity.Team) []TeamDTO {
	dtos := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		dtos = append(dtos, toTeamDTO(t))
	}

	return dtos
}

// MembershipDTO is the public representation of a team membership.
type MembershipDTO struct {
	ID       uuid.UUID  `json:"id"`
	TeamID   uuid.UUID  `json:"team_id"`
	SquadID  *uuid.UUID `json:"squad_id,omitempty"`
	Role     string     `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

func toMembershipDTO(m *entity.Membership) MembershipDTO {
	return MembershipDTO{
		ID:       m.ID,
		TeamID:   m.TeamID,
		SquadID:  m.SquadID,
		Role:     m.Role.String(),
		JoinedAt: m.JoinedAt,
	}
}

// TeamWorkoutDTO is the public representation of a team workout template.
type TeamWorkoutDTO struct {
	ID          uuid.UUID         `json:"id"`
	TeamID      uuid.UUID         `json:"team_id"`
	SquadID     *uuid.UUID        `json:"squad_id,omitempty"`
	CreatedBy   uuid.UUID         `json:"created_by"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Exercises   []entity.Exercise `json:"exercises"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toTeamWorkoutDTO(tw *entity.TeamWorkout) TeamWorkoutDTO {
	return TeamWorkoutDTO{
		ID:          tw.ID,
		TeamID:      tw.TeamID,
		SquadID:     tw.SquadID,
		CreatedBy:   tw.CreatedBy,
		Title:       tw.Title,
		Description: tw.Description,
		Exercises:   tw.Exercises,
		CreatedAt:   tw.CreatedAt,
	}
}

func toTeamWorkoutDTOs(templates []*entity.TeamWorkout) []TeamWorkoutDTO {
	dtos := make([]TeamWorkoutDTO, 0, len(templates))
	for _, tw := range templates {
		dtos = append(dtos, toTeamWorkoutDTO(tw))
	}

	return dtos
}

// TeamAssessmentDTO is the public representation of a team assessment template.
type TeamAssessmentDTO struct {
	ID           uuid.UUID                    `json:"id"`
	TeamID       uuid.UUID                    `json:"team_id"`
	CreatedBy    uuid.UUID                    `json:"created_by"`
	Title        string                       `json:"title"`
	Instructions string                       `json:"instructions,omitempty"`
	Parameters   []entity.AssessmentParameter `json:"parameters"`
	CreatedAt    time.Time                    `json:"created_at"`
}

func toTeamAssessmentDTO(ta *entity.TeamAssessment) TeamAssessmentDTO {
	return TeamAssessmentDTO{
		ID:           ta.ID,
		TeamID:       ta.TeamID,
		CreatedBy:    ta.CreatedBy,
		Title:        ta.Title,
		Instructions: ta.Instructions,
		Parameters:   ta.Parameters,
		CreatedAt:    ta.CreatedAt,
	}
}

func toTeamAssessmentDTOs(templates []*entity.TeamAssessment) []TeamAssessmentDTO {
	dtos := make([]TeamAssessmentDTO, 0, len(templates))
	for _, ta := range templates {
		dtos = append(dtos, toTeamAssessmentDTO(ta))
	}

	return dtos
}

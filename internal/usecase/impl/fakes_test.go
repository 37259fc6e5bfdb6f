package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes for the repository and service interfaces. They keep the
// tests independent of a database while preserving the constraint behavior
// the services rely on (unique email, unique membership, not-found errors).

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- users ---

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}

	return users, nil
}

// --- workouts ---

type fakeWorkoutRepo struct {
	workouts map[uuid.UUID]*entity.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[uuid.UUID]*entity.Workout{}}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *entity.Workout) error {
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	workout.CreatedAt = time.Now()
	copied := *workout
	r.workouts[workout.ID] = &copied

	return nil
}

func (r *fakeWorkoutRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Workout, error) {
	workout, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrWorkoutNotFound
	}
	copied := *workout

	return &copied, nil
}

func (r *fakeWorkoutRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Workout, error) {
	var workouts []*entity.Workout
	for _, workout := range r.workouts {
		if workout.UserID == userID {
			copied := *workout
			workouts = append(workouts, &copied)
		}
	}

	return workouts, nil
}

func (r *fakeWorkoutRepo) ListByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Workout, error) {
	var workouts []*entity.Workout
	for _, workout := range r.workouts {
		if workout.UserID == userID && !workout.CreatedAt.Before(from) && workout.CreatedAt.Before(to) {
			copied := *workout
			workouts = append(workouts, &copied)
		}
	}

	return workouts, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, workout *entity.Workout) error {
	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrWorkoutNotFound
	}
	copied := *workout
	r.workouts[workout.ID] = &copied

	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrWorkoutNotFound
	}
	delete(r.workouts, id)

	return nil
}

// --- goals ---

type fakeGoalRepo struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[uuid.UUID]*entity.Goal{}}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	copied := *goal
	r.goals[goal.ID] = &copied

	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	copied := *goal

	return &copied, nil
}

func (r *fakeGoalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			copied := *goal
			goals = append(goals, &copied)
		}
	}

	return goals, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return repository.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied

	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.goals[id]; !ok {
		return repository.ErrGoalNotFound
	}
	delete(r.goals, id)

	return nil
}

// --- mood check-ins ---

type fakeCheckInRepo struct {
	checkIns map[uuid.UUID]*entity.MoodCheckIn
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{checkIns: map[uuid.UUID]*entity.MoodCheckIn{}}
}

func (r *fakeCheckInRepo) Create(_ context.Context, checkIn *entity.MoodCheckIn) error {
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}
	copied := *checkIn
	r.checkIns[checkIn.ID] = &copied

	return nil
}

func (r *fakeCheckInRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MoodCheckIn, error) {
	checkIn, ok := r.checkIns[id]
	if !ok {
		return nil, repository.ErrCheckInNotFound
	}
	copied := *checkIn

	return &copied, nil
}

func (r *fakeCheckInRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.MoodCheckIn, error) {
	var checkIns []*entity.MoodCheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			copied := *checkIn
			checkIns = append(checkIns, &copied)
		}
	}

	return checkIns, nil
}

func (r *fakeCheckInRepo) ListByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodCheckIn, error) {
	var checkIns []*entity.MoodCheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID && !checkIn.CreatedAt.Before(from) && checkIn.CreatedAt.Before(to) {
			copied := *checkIn
			checkIns = append(checkIns, &copied)
		}
	}

	return checkIns, nil
}

func (r *fakeCheckInRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.checkIns[id]; !ok {
		return repository.ErrCheckInNotFound
	}
	delete(r.checkIns, id)

	return nil
}

// --- journal ---

type fakeJournalRepo struct {
	entries map[uuid.UUID]*entity.JournalEntry
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{entries: map[uuid.UUID]*entity.JournalEntry{}}
}

func (r *fakeJournalRepo) Create(_ context.Context, journal *entity.JournalEntry) error {
	if journal.ID == uuid.Nil {
		journal.ID = uuid.New()
	}
	if journal.CreatedAt.IsZero() {
		journal.CreatedAt = time.Now()
	}
	copied := *journal
	r.entries[journal.ID] = &copied

	return nil
}

func (r *fakeJournalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	journal, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrJournalNotFound
	}
	copied := *journal

	return &copied, nil
}

func (r *fakeJournalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.JournalEntry, error) {
	var entries []*entity.JournalEntry
	for _, journal := range r.entries {
		if journal.UserID == userID {
			copied := *journal
			entries = append(entries, &copied)
		}
	}

	return entries, nil
}

func (r *fakeJournalRepo) ListByUserBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.JournalEntry, error) {
	var entries []*entity.JournalEntry
	for _, journal := range r.entries {
		if journal.UserID == userID && !journal.CreatedAt.Before(from) && journal.CreatedAt.Before(to) {
			copied := *journal
			entries = append(entries, &copied)
		}
	}

	return entries, nil
}

func (r *fakeJournalRepo) Update(_ context.Context, journal *entity.JournalEntry) error {
	if _, ok := r.entries[journal.ID]; !ok {
		return repository.ErrJournalNotFound
	}
	copied := *journal
	r.entries[journal.ID] = &copied

	return nil
}

func (r *fakeJournalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.entries[id]; !ok {
		return repository.ErrJournalNotFound
	}
	delete(r.entries, id)

	return nil
}

// --- assessments ---

type fakeAssessmentRepo struct {
	assessments map[uuid.UUID]*entity.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: map[uuid.UUID]*entity.Assessment{}}
}

func (r *fakeAssessmentRepo) Create(_ context.Context, assessment *entity.Assessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	assessment.CreatedAt = time.Now()
	copied := *assessment
	r.assessments[assessment.ID] = &copied

	return nil
}

func (r *fakeAssessmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Assessment, error) {
	assessment, ok := r.assessments[id]
	if !ok {
		return nil, repository.ErrAssessmentNotFound
	}
	copied := *assessment

	return &copied, nil
}

func (r *fakeAssessmentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Assessment, error) {
	var assessments []*entity.Assessment
	for _, assessment := range r.assessments {
		if assessment.UserID == userID {
			copied := *assessment
			assessments = append(assessments, &copied)
		}
	}

	return assessments, nil
}

func (r *fakeAssessmentRepo) Update(_ context.Context, assessment *entity.Assessment) error {
	if _, ok := r.assessments[assessment.ID]; !ok {
		return repository.ErrAssessmentNotFound
	}
	copied := *assessment
	r.assessments[assessment.ID] = &copied

	return nil
}

func (r *fakeAssessmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.assessments[id]; !ok {
		return repository.ErrAssessmentNotFound
	}
	delete(r.assessments, id)

	return nil
}

// --- summaries ---

type fakeSummaryRepo struct {
	summaries map[uuid.UUID]*entity.Summary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{summaries: map[uuid.UUID]*entity.Summary{}}
}

func (r *fakeSummaryRepo) Create(_ context.Context, summary *entity.Summary) error {
	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now()
	}
	copied := *summary
	r.summaries[summary.ID] = &copied

	return nil
}

func (r *fakeSummaryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Summary, error) {
	summary, ok := r.summaries[id]
	if !ok {
		return nil, repository.ErrSummaryNotFound
	}
	copied := *summary

	return &copied, nil
}

func (r *fakeSummaryRepo) ListByUser(_ context.Context, userID uuid.UUID, period entity.SummaryPeriod) ([]*entity.Summary, error) {
	var summaries []*entity.Summary
	for _, summary := range r.summaries {
		if summary.UserID != userID {
			continue
		}
		if period != "" && summary.Period != period {
			continue
		}
		copied := *summary
		summaries = append(summaries, &copied)
	}

	return summaries, nil
}

func (r *fakeSummaryRepo) FindLatest(_ context.Context, userID uuid.UUID, period entity.SummaryPeriod) (*entity.Summary, error) {
	var latest *entity.Summary
	for _, summary := range r.summaries {
		if summary.UserID != userID || summary.Period != period {
			continue
		}
		if latest == nil || summary.CreatedAt.After(latest.CreatedAt) {
			latest = summary
		}
	}
	if latest == nil {
		return nil, repository.ErrSummaryNotFound
	}
	copied := *latest

	return &copied, nil
}

// --- teams ---

type fakeTeamRepo struct {
	teams           map[uuid.UUID]*entity.Team
	squads          map[uuid.UUID]*entity.Squad
	memberships     map[uuid.UUID]*entity.Membership
	teamWorkouts    map[uuid.UUID]*entity.TeamWorkout
	teamAssessments map[uuid.UUID]*entity.TeamAssessment
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:           map[uuid.UUID]*entity.Team{},
		squads:          map[uuid.UUID]*entity.Squad{},
		memberships:     map[uuid.UUID]*entity.Membership{},
		teamWorkouts:    map[uuid.UUID]*entity.TeamWorkout{},
		teamAssessments: map[uuid.UUID]*entity.TeamAssessment{},
	}
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, team *entity.Team) error {
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return domainerrors.ErrTeamNameTaken.WrapMessage("team name already exists")
		}
	}
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	team.CreatedAt = time.Now()
	copied := *team
	r.teams[team.ID] = &copied

	return nil
}

func (r *fakeTeamRepo) FindTeamByID(_ context.Context, id uuid.UUID) (*entity.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, repository.ErrTeamNotFound
	}
	copied := *team

	return &copied, nil
}

func (r *fakeTeamRepo) ListTeams(_ context.Context) ([]*entity.Team, error) {
	teams := make([]*entity.Team, 0, len(r.teams))
	for _, team := range r.teams {
		copied := *team
		teams = append(teams, &copied)
	}

	return teams, nil
}

func (r *fakeTeamRepo) CreateSquad(_ context.Context, squad *entity.Squad) error {
	for _, existing := range r.squads {
		if existing.TeamID == squad.TeamID && strings.EqualFold(existing.Name, squad.Name) {
			return domainerrors.ErrSquadNameTaken.WrapMessage("squad name already exists in team")
		}
	}
	if squad.ID == uuid.Nil {
		squad.ID = uuid.New()
	}
	copied := *squad
	r.squads[squad.ID] = &copied

	return nil
}

func (r *fakeTeamRepo) FindSquadByID(_ context.Context, id uuid.UUID) (*entity.Squad, error) {
	squad, ok := r.squads[id]
	if !ok {
		return nil, repository.ErrSquadNotFound
	}
	copied := *squad

	return &copied, nil
}

func (r *fakeTeamRepo) CreateMembership(_ context.Context, membership *entity.Membership) error {
	for _, existing := range r.memberships {
		if existing.UserID == membership.UserID && existing.TeamID == membership.TeamID {
			return domainerrors.ErrAlreadyMember.WrapMessage("membership already exists")
		}
	}
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	membership.JoinedAt = time.Now()
	copied := *membership
	r.memberships[membership.ID] = &copied

	return nil
}

func (r *fakeTeamRepo) FindMembership(_ context.Context, userID, teamID uuid.UUID) (*entity.Membership, error) {
	for _, membership := range r.memberships {
		if membership.UserID == userID && membership.TeamID == teamID {
			copied := *membership

			return &copied, nil
		}
	}

	return nil, repository.ErrMembershipNotFound
}

func (r *fakeTeamRepo) ListMembershipsByUser(_ context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var memberships []*entity.Membership
	for _, membership := range r.memberships {
		if membership.UserID == userID {
			copied := *membership
			memberships = append(memberships, &copied)
		}
	}

	return memberships, nil
}

func (r *fakeTeamRepo) CreateTeamWorkout(_ context.Context, workout *entity.TeamWorkout) error {
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	workout.CreatedAt = time.Now()
	copied := *workout
	r.teamWorkouts[workout.ID] = &copied

	return nil
}

func (r *fakeTeamRepo) FindTeamWorkoutByID(_ context.Context, id uuid.UUID) (*entity.TeamWorkout, error) {
	workout, ok := r.teamWorkouts[id]
	if !ok {
		return nil, repository.ErrTeamWorkoutNotFound
	}
	copied := *workout

	return &copied, nil
}

func (r *fakeTeamRepo) ListTeamWorkouts(_ context.Context, teamID uuid.UUID) ([]*entity.TeamWorkout, error) {
	var workouts []*entity.TeamWorkout
	for _, workout := range r.teamWorkouts {
		if workout.TeamID == teamID {
			copied := *workout
			workouts = append(workouts, &copied)
		}
	}

	return workouts, nil
}

func (r *fakeTeamRepo) CreateTeamAssessment(_ context.Context, assessment *entity.TeamAssessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	assessment.CreatedAt = time.Now()
	copied := *assessment
	r.teamAssessments[assessment.ID] = &copied

	return nil
}

func (r *fakeTeamRepo) FindTeamAssessmentByID(_ context.Context, id uuid.UUID) (*entity.TeamAssessment, error) {
	assessment, ok := r.teamAssessments[id]
	if !ok {
		return nil, repository.ErrTeamAssessmentNotFound
	}
	copied := *assessment

	return &copied, nil
}

func (r *fakeTeamRepo) ListTeamAssessments(_ context.Context, teamID uuid.UUID) ([]*entity.TeamAssessment, error) {
	var assessments []*entity.TeamAssessment
	for _, assessment := range r.teamAssessments {
		if assessment.TeamID == teamID {
			copied := *assessment
			assessments = append(assessments, &copied)
		}
	}

	return assessments, nil
}

// --- transaction manager ---

// fakeTxManager runs the unit of work directly against the shared fakes;
// the tests do not model rollback.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

type fakeRepoFactory struct {
	userRepo       *fakeUserRepo
	teamRepo       *fakeTeamRepo
	workoutRepo    *fakeWorkoutRepo
	goalRepo       *fakeGoalRepo
	checkInRepo    *fakeCheckInRepo
	journalRepo    *fakeJournalRepo
	assessmentRepo *fakeAssessmentRepo
	summaryRepo    *fakeSummaryRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository             { return f.userRepo }
func (f *fakeRepoFactory) TeamRepo() repository.TeamRepository             { return f.teamRepo }
func (f *fakeRepoFactory) WorkoutRepo() repository.WorkoutRepository       { return f.workoutRepo }
func (f *fakeRepoFactory) GoalRepo() repository.GoalRepository             { return f.goalRepo }
func (f *fakeRepoFactory) CheckInRepo() repository.CheckInRepository       { return f.checkInRepo }
func (f *fakeRepoFactory) JournalRepo() repository.JournalRepository       { return f.journalRepo }
func (f *fakeRepoFactory) AssessmentRepo() repository.AssessmentRepository { return f.assessmentRepo }
func (f *fakeRepoFactory) SummaryRepo() repository.SummaryRepository       { return f.summaryRepo }

func (m *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- password hasher / token service ---

// fakeHasher marks hashes with a prefix so tests can assert the plaintext
// never leaks into the stored value.
type fakeHasher struct {
	weak map[string]bool
}

func newFakeHasher() *fakeHasher {
	return &fakeHasher{weak: map[string]bool{}}
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakeHasher) ValidatePasswordStrength(password string) error {
	if h.weak[password] {
		return domainerrors.ErrPasswordStrength.WithDetails("too weak")
	}

	return nil
}

type fakeTokenService struct {
	issued []string
}

func (s *fakeTokenService) Issue(subject string, custom map[string]any) (string, error) {
	s.issued = append(s.issued, subject)

	return "token-for-" + subject, nil
}

func (s *fakeTokenService) IssueWithTTL(subject string, custom map[string]any, _ time.Duration) (string, error) {
	return s.Issue(subject, custom)
}

func (s *fakeTokenService) Verify(_ string) (*service.Claims, error) {
	return nil, service.ErrInvalidToken
}

func (s *fakeTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

package services

import (
	"context"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
)

// Stub repositories for service tests. Each embeds the real interface so
// only the methods a test exercises need an implementation; calling
// anything else panics, which is exactly what a test wants.

type stubUserRepo struct {
	repositories.UserRepository
	createFn            func(ctx context.Context, user *models.User) error
	getByEmailFn        func(ctx context.Context, email string) (*models.User, error)
	getByConfirmTokenFn func(ctx context.Context, token string) (*models.User, error)
	confirmEmailFn      func(ctx context.Context, id int) error
	confirmedUserIDs    []int
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) GetByConfirmationToken(ctx context.Context, token string) (*models.User, error) {
	return s.getByConfirmTokenFn(ctx, token)
}

func (s *stubUserRepo) ConfirmEmail(ctx context.Context, id int) error {
	s.confirmedUserIDs = append(s.confirmedUserIDs, id)
	if s.confirmEmailFn != nil {
		return s.confirmEmailFn(ctx, id)
	}
	return nil
}

type stubTournamentRepo struct {
	repositories.TournamentRepository
	getByIDFn func(ctx context.Context, id int) (*models.Tournament, error)
}

func (s *stubTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	return s.getByIDFn(ctx, id)
}

type stubTeamRepo struct {
	repositories.TeamRepository
	listByTournamentFn func(ctx context.Context, tournamentID int) ([]*models.Team, error)
}

func (s *stubTeamRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	return s.listByTournamentFn(ctx, tournamentID)
}

type stubPlayerRepo struct {
	repositories.PlayerRepository
	listByTournamentFn func(ctx context.Context, tournamentID int) ([]*models.Player, error)
}

func (s *stubPlayerRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Player, error) {
	return s.listByTournamentFn(ctx, tournamentID)
}

type stubMatchRepo struct {
	repositories.MatchRepository
	getByIDFn           func(ctx context.Context, id int) (*models.Match, error)
	listByTournamentFn  func(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error)
	createFn            func(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error
	updateScoreStatusFn func(ctx context.Context, exec repositories.SQLExecutor, id int, homeScore, awayScore *int, status models.MatchStatus) error
	deleteGroupStageFn  func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func (s *stubMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubMatchRepo) ListByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error) {
	return s.listByTournamentFn(ctx, tournamentID, status, groupName)
}

func (s *stubMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	return s.createFn(ctx, exec, match)
}

func (s *stubMatchRepo) UpdateScoreStatus(ctx context.Context, exec repositories.SQLExecutor, id int, homeScore, awayScore *int, status models.MatchStatus) error {
	return s.updateScoreStatusFn(ctx, exec, id, homeScore, awayScore, status)
}

func (s *stubMatchRepo) DeleteGroupStageByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	return s.deleteGroupStageFn(ctx, exec, tournamentID)
}

type stubGoalRepo struct {
	repositories.GoalRepository
	listByTournamentFn func(ctx context.Context, tournamentID int) ([]*models.Goal, error)
	createFn           func(ctx context.Context, exec repositories.SQLExecutor, goal *models.Goal) error
	deleteByMatchFn    func(ctx context.Context, exec repositories.SQLExecutor, matchID int) error
}

func (s *stubGoalRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Goal, error) {
	return s.listByTournamentFn(ctx, tournamentID)
}

func (s *stubGoalRepo) Create(ctx context.Context, exec repositories.SQLExecutor, goal *models.Goal) error {
	return s.createFn(ctx, exec, goal)
}

func (s *stubGoalRepo) DeleteByMatch(ctx context.Context, exec repositories.SQLExecutor, matchID int) error {
	return s.deleteByMatchFn(ctx, exec, matchID)
}

type stubGroupRepo struct {
	repositories.GroupRepository
	listByTournamentFn   func(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error)
	createFn             func(ctx context.Context, exec repositories.SQLExecutor, group *models.TournamentGroup) error
	addTeamFn            func(ctx context.Context, exec repositories.SQLExecutor, groupID, teamID, position int) error
	deleteByTournamentFn func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func (s *stubGroupRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error) {
	return s.listByTournamentFn(ctx, tournamentID)
}

func (s *stubGroupRepo) Create(ctx context.Context, exec repositories.SQLExecutor, group *models.TournamentGroup) error {
	return s.createFn(ctx, exec, group)
}

func (s *stubGroupRepo) AddTeam(ctx context.Context, exec repositories.SQLExecutor, groupID, teamID, position int) error {
	return s.addTeamFn(ctx, exec, groupID, teamID, position)
}

func (s *stubGroupRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	return s.deleteByTournamentFn(ctx, exec, tournamentID)
}

// stubTx satisfies repositories.Tx without a database. The embedded
// SQLExecutor stays nil, so a test fails loudly if anything tries to run
// SQL through it.
type stubTx struct {
	repositories.SQLExecutor
	commits   int
	rollbacks int
}

func (t *stubTx) Commit() error   { t.commits++; return nil }
func (t *stubTx) Rollback() error { t.rollbacks++; return nil }

type stubTxBeginner struct {
	tx *stubTx
}

func (b *stubTxBeginner) BeginTx(ctx context.Context) (repositories.Tx, error) {
	return b.tx, nil
}

func intPtr(v int) *int { return &v }

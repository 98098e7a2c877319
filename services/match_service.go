package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Biagem01/TorneoLive-sub000/live"
	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
)

type CreateMatchInput struct {
	TournamentID int        `json:"tournament_id"`
	HomeTeamID   int        `json:"home_team_id"`
	AwayTeamID   int        `json:"away_team_id"`
	KickoffAt    *time.Time `json:"kickoff_at,omitempty"`
}

type GoalInput struct {
	TeamID   int `json:"team_id"`
	PlayerID int `json:"player_id"`
	Minute   int `json:"minute"`
}

type RecordResultInput struct {
	HomeScore int                `json:"home_score"`
	AwayScore int                `json:"away_score"`
	Status    models.MatchStatus `json:"status,omitempty"` // live or final, defaults to final
	Goals     []GoalInput        `json:"goals,omitempty"`
}

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput, actorRole models.UserRole) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error)
	RecordResult(ctx context.Context, matchID int, input RecordResultInput, actorRole models.UserRole) (*models.Match, error)
	RescheduleMatch(ctx context.Context, id int, kickoffAt *time.Time, actorRole models.UserRole) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int, actorRole models.UserRole) error
}

type matchService struct {
	txBeginner repositories.TxBeginner
	matchRepo  repositories.MatchRepository
	goalRepo   repositories.GoalRepository
	teamRepo   repositories.TeamRepository
	hub        *live.Hub
}

func NewMatchService(
	txBeginner repositories.TxBeginner,
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
	teamRepo repositories.TeamRepository,
	hub *live.Hub,
) MatchService {
	return &matchService{
		txBeginner: txBeginner,
		matchRepo:  matchRepo,
		goalRepo:   goalRepo,
		teamRepo:   teamRepo,
		hub:        hub,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput, actorRole models.UserRole) (*models.Match, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrMatchTeamsIdentical
	}

	for _, teamID := range []int{input.HomeTeamID, input.AwayTeamID} {
		team, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to load team %d: %w", teamID, err)
		}
		if team.TournamentID != input.TournamentID {
			return nil, ErrMatchTeamsWrongTournament
		}
	}

	match := &models.Match{
		TournamentID: input.TournamentID,
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		Status:       models.MatchStatusScheduled,
		KickoffAt:    input.KickoffAt,
	}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		if errors.Is(err, repositories.ErrMatchTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for match %d: %w", id, err)
	}
	match.Goals = make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if g != nil {
			match.Goals = append(match.Goals, *g)
		}
	}
	return match, nil
}

func (s *matchService) ListMatchesByTournament(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, status, groupName)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

// RecordResult stores the score, the status and the goal events of a match
// in a single transaction. Recording again replaces the previous goal
// events, so corrections do not accumulate duplicates. Subscribers of the
// tournament room are notified afterwards.
func (s *matchService) RecordResult(ctx context.Context, matchID int, input RecordResultInput, actorRole models.UserRole) (*models.Match, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return nil, ErrMatchScoreNegative
	}
	status := input.Status
	if status == "" {
		status = models.MatchStatusFinal
	}
	if status != models.MatchStatusLive && status != models.MatchStatusFinal {
		return nil, fmt.Errorf("%w: status %q", ErrValidationFailed, input.Status)
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", matchID, err)
	}

	for _, goal := range input.Goals {
		if goal.Minute <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrGoalMinuteInvalid, goal.Minute)
		}
		if goal.TeamID != match.HomeTeamID && goal.TeamID != match.AwayTeamID {
			return nil, ErrGoalTeamNotInMatch
		}
	}

	tx, err := s.txBeginner.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	homeScore := input.HomeScore
	awayScore := input.AwayScore
	if err := s.matchRepo.UpdateScoreStatus(ctx, tx, matchID, &homeScore, &awayScore, status); err != nil {
		return nil, fmt.Errorf("failed to update match %d: %w", matchID, err)
	}
	if err := s.goalRepo.DeleteByMatch(ctx, tx, matchID); err != nil {
		return nil, err
	}

	goals := make([]models.Goal, 0, len(input.Goals))
	for _, goal := range input.Goals {
		g := models.Goal{
			MatchID:  matchID,
			TeamID:   goal.TeamID,
			PlayerID: goal.PlayerID,
			Minute:   goal.Minute,
		}
		if err := s.goalRepo.Create(ctx, tx, &g); err != nil {
			if errors.Is(err, repositories.ErrGoalPlayerInvalid) {
				return nil, ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to record goal for match %d: %w", matchID, err)
		}
		goals = append(goals, g)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match %d result: %w", matchID, err)
	}

	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.Status = status
	match.Goals = goals

	if s.hub != nil {
		s.hub.BroadcastToRoom(tournamentRoom(match.TournamentID), live.Message{
			Type:    live.EventMatchUpdated,
			Payload: match,
		})
	}
	return match, nil
}

// RescheduleMatch sets or clears the kickoff time. Passing nil clears it,
// which puts the match back into the unscheduled pool.
func (s *matchService) RescheduleMatch(ctx context.Context, id int, kickoffAt *time.Time, actorRole models.UserRole) (*models.Match, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if err := s.matchRepo.UpdateKickoff(ctx, id, kickoffAt); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to reschedule match %d: %w", id, err)
	}
	return s.GetMatchByID(ctx, id)
}

func (s *matchService) DeleteMatch(ctx context.Context, id int, actorRole models.UserRole) error {
	if err := ensureCanManage(actorRole); err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}

func tournamentRoom(tournamentID int) string {
	return fmt.Sprintf("tournament_%d", tournamentID)
}

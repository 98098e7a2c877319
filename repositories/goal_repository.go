package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/lib/pq"
)

var (
	ErrGoalMatchInvalid  = errors.New("goal match conflict or invalid")
	ErrGoalTeamInvalid   = errors.New("goal team conflict or invalid")
	ErrGoalPlayerInvalid = errors.New("goal player conflict or invalid")
)

type GoalRepository interface {
	Create(ctx context.Context, exec SQLExecutor, goal *models.Goal) error
	ListByMatch(ctx context.Context, matchID int) ([]*models.Goal, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Goal, error)
	DeleteByMatch(ctx context.Context, exec SQLExecutor, matchID int) error
}

type postgresGoalRepository struct {
	db *sql.DB
}

func NewPostgresGoalRepository(db *sql.DB) GoalRepository {
	return &postgresGoalRepository{db: db}
}

func (r *postgresGoalRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresGoalRepository) Create(ctx context.Context, exec SQLExecutor, goal *models.Goal) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO goals (match_id, team_id, player_id, minute)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		goal.MatchID, goal.TeamID, goal.PlayerID, goal.Minute,
	).Scan(&goal.ID, &goal.CreatedAt)

	return r.handleGoalError(err)
}

func (r *postgresGoalRepository) ListByMatch(ctx context.Context, matchID int) ([]*models.Goal, error) {
	query := `
		SELECT id, match_id, team_id, player_id, minute, created_at
		FROM goals WHERE match_id = $1
		ORDER BY minute ASC, id ASC`
	return r.queryGoals(ctx, query, matchID)
}

func (r *postgresGoalRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Goal, error) {
	query := `
		SELECT g.id, g.match_id, g.team_id, g.player_id, g.minute, g.created_at
		FROM goals g
		JOIN matches m ON m.id = g.match_id
		WHERE m.tournament_id = $1
		ORDER BY g.match_id ASC, g.minute ASC, g.id ASC`
	return r.queryGoals(ctx, query, tournamentID)
}

func (r *postgresGoalRepository) queryGoals(ctx context.Context, query string, args ...interface{}) ([]*models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*models.Goal, 0)
	for rows.Next() {
		var g models.Goal
		if scanErr := rows.Scan(&g.ID, &g.MatchID, &g.TeamID, &g.PlayerID, &g.Minute, &g.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", scanErr)
		}
		goals = append(goals, &g)
	}
	return goals, rows.Err()
}

func (r *postgresGoalRepository) DeleteByMatch(ctx context.Context, exec SQLExecutor, matchID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM goals WHERE match_id = $1`, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete goals for match %d: %w", matchID, err)
	}
	return nil
}

func (r *postgresGoalRepository) handleGoalError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "goals_match_id_fkey":
			return ErrGoalMatchInvalid
		case "goals_team_id_fkey":
			return ErrGoalTeamInvalid
		case "goals_player_id_fkey":
			return ErrGoalPlayerInvalid
		}
	}
	return err
}

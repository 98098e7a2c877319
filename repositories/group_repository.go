package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Biagem01/TorneoLive-sub000/models"
)

type GroupRepository interface {
	Create(ctx context.Context, exec SQLExecutor, group *models.TournamentGroup) error
	AddTeam(ctx context.Context, exec SQLExecutor, groupID, teamID, position int) error
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresGroupRepository) Create(ctx context.Context, exec SQLExecutor, group *models.TournamentGroup) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournament_groups (tournament_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return executor.QueryRowContext(ctx, query, group.TournamentID, group.Name).
		Scan(&group.ID, &group.CreatedAt)
}

func (r *postgresGroupRepository) AddTeam(ctx context.Context, exec SQLExecutor, groupID, teamID, position int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx,
		`INSERT INTO tournament_group_teams (group_id, team_id, position) VALUES ($1, $2, $3)`,
		groupID, teamID, position,
	)
	if err != nil {
		return fmt.Errorf("failed to add team %d to group %d: %w", teamID, groupID, err)
	}
	return nil
}

// ListByTournament returns the tournament's groups with their member teams
// populated, in generation order.
func (r *postgresGroupRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error) {
	query := `
		SELECT g.id, g.tournament_id, g.name, g.created_at,
		       t.id, t.tournament_id, t.name, t.crest_key, t.created_at
		FROM tournament_groups g
		JOIN tournament_group_teams gt ON gt.group_id = g.id
		JOIN teams t ON t.id = gt.team_id
		WHERE g.tournament_id = $1
		ORDER BY g.id ASC, gt.position ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	groups := make([]*models.TournamentGroup, 0)
	var current *models.TournamentGroup
	for rows.Next() {
		var g models.TournamentGroup
		var t models.Team
		if scanErr := rows.Scan(
			&g.ID, &g.TournamentID, &g.Name, &g.CreatedAt,
			&t.ID, &t.TournamentID, &t.Name, &t.CrestKey, &t.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", scanErr)
		}
		if current == nil || current.ID != g.ID {
			groups = append(groups, &g)
			current = groups[len(groups)-1]
		}
		current.Teams = append(current.Teams, t)
	}
	return groups, rows.Err()
}

func (r *postgresGroupRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	// tournament_group_teams rows go with the groups via ON DELETE CASCADE.
	_, err := executor.ExecContext(ctx, `DELETE FROM tournament_groups WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete groups for tournament %d: %w", tournamentID, err)
	}
	return nil
}

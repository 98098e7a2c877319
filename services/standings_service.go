package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/Biagem01/TorneoLive-sub000/standings"
	"golang.org/x/sync/errgroup"
)

// StandingsService feeds database rows to the standings engine. Tables and
// leaderboards are recomputed from scratch on every call; nothing derived
// is ever stored, so they can never go stale.
type StandingsService interface {
	TournamentStandings(ctx context.Context, tournamentID int) ([]standings.TeamStanding, error)
	GroupStandings(ctx context.Context, tournamentID int) ([]standings.GroupTable, error)
	TopScorers(ctx context.Context, tournamentID int) ([]standings.ScorerEntry, error)
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	goalRepo       repositories.GoalRepository
	groupRepo      repositories.GroupRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
	groupRepo repositories.GroupRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		goalRepo:       goalRepo,
		groupRepo:      groupRepo,
	}
}

func (s *standingsService) TournamentStandings(ctx context.Context, tournamentID int) ([]standings.TeamStanding, error) {
	if err := s.ensureTournamentExists(ctx, tournamentID); err != nil {
		return nil, err
	}

	var (
		matches []*models.Match
		teams   []*models.Team
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID, nil, nil)
		return err
	})
	g.Go(func() (err error) {
		teams, err = s.teamRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load standings input for tournament %d: %w", tournamentID, err)
	}

	return standings.ComputeStandings(matchesToResults(matches), teamsToRefs(teams)), nil
}

func (s *standingsService) GroupStandings(ctx context.Context, tournamentID int) ([]standings.GroupTable, error) {
	if err := s.ensureTournamentExists(ctx, tournamentID); err != nil {
		return nil, err
	}

	var (
		matches []*models.Match
		groups  []*models.TournamentGroup
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID, nil, nil)
		return err
	})
	g.Go(func() (err error) {
		groups, err = s.groupRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load group standings input for tournament %d: %w", tournamentID, err)
	}

	engineGroups := make([]standings.Group, 0, len(groups))
	for _, group := range groups {
		refs := make([]standings.TeamRef, 0, len(group.Teams))
		for _, team := range group.Teams {
			refs = append(refs, standings.TeamRef{ID: team.ID, Name: team.Name})
		}
		engineGroups = append(engineGroups, standings.Group{Name: group.Name, Teams: refs})
	}

	return standings.ComputeGroupTables(matchesToResults(matches), engineGroups), nil
}

func (s *standingsService) TopScorers(ctx context.Context, tournamentID int) ([]standings.ScorerEntry, error) {
	if err := s.ensureTournamentExists(ctx, tournamentID); err != nil {
		return nil, err
	}

	var (
		goals   []*models.Goal
		players []*models.Player
		teams   []*models.Team
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		goals, err = s.goalRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() (err error) {
		players, err = s.playerRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	g.Go(func() (err error) {
		teams, err = s.teamRepo.ListByTournament(gCtx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load scorer input for tournament %d: %w", tournamentID, err)
	}

	events := make([]standings.GoalEvent, 0, len(goals))
	for _, goal := range goals {
		events = append(events, standings.GoalEvent{
			MatchID:  goal.MatchID,
			TeamID:   goal.TeamID,
			PlayerID: goal.PlayerID,
			Minute:   goal.Minute,
		})
	}
	refs := make([]standings.PlayerRef, 0, len(players))
	for _, player := range players {
		refs = append(refs, standings.PlayerRef{
			ID:     player.ID,
			Name:   player.FullName(),
			TeamID: player.TeamID,
		})
	}

	return standings.ComputeTopScorers(events, refs, teamsToRefs(teams)), nil
}

func (s *standingsService) ensureTournamentExists(ctx context.Context, tournamentID int) error {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}
	return nil
}

// matchesToResults adapts persisted match rows into the engine's input
// shape. Rows stay nullable-score; the engine decides what counts.
func matchesToResults(matches []*models.Match) []standings.MatchResult {
	results := make([]standings.MatchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, standings.MatchResult{
			ID:         m.ID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  m.HomeScore,
			AwayScore:  m.AwayScore,
			GroupName:  derefString(m.GroupName),
		})
	}
	return results
}

func teamsToRefs(teams []*models.Team) []standings.TeamRef {
	refs := make([]standings.TeamRef, 0, len(teams))
	for _, t := range teams {
		refs = append(refs, standings.TeamRef{ID: t.ID, Name: t.Name})
	}
	return refs
}

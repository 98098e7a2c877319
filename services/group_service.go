package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Biagem01/TorneoLive-sub000/live"
	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/Biagem01/TorneoLive-sub000/standings"
)

type GroupService interface {
	// GenerateGroups partitions the tournament's teams into round-robin
	// groups and creates their fixtures. Calling it again replaces the
	// previous generation entirely.
	GenerateGroups(ctx context.Context, tournamentID int, groupSize *int, actorRole models.UserRole) ([]*models.TournamentGroup, error)
	ListGroups(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error)
}

type groupService struct {
	txBeginner     repositories.TxBeginner
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	hub            *live.Hub
}

func NewGroupService(
	txBeginner repositories.TxBeginner,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	hub *live.Hub,
) GroupService {
	return &groupService{
		txBeginner:     txBeginner,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		groupRepo:      groupRepo,
		matchRepo:      matchRepo,
		hub:            hub,
	}
}

func (s *groupService) GenerateGroups(ctx context.Context, tournamentID int, groupSize *int, actorRole models.UserRole) ([]*models.TournamentGroup, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}

	if tournament.Status == models.StatusCompleted || tournament.Status == models.StatusCanceled {
		return nil, ErrTournamentNotActive
	}

	size := tournament.GroupSize
	if groupSize != nil {
		size = *groupSize
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for tournament %d: %w", tournamentID, err)
	}

	teamIndex := make(map[int]*models.Team, len(teams))
	refs := make([]standings.TeamRef, 0, len(teams))
	for _, team := range teams {
		teamIndex[team.ID] = team
		refs = append(refs, standings.TeamRef{ID: team.ID, Name: team.Name})
	}

	partitioned, err := standings.PartitionIntoGroups(refs, size)
	if err != nil {
		switch {
		case errors.Is(err, standings.ErrNoTeams):
			return nil, ErrNoTeamsRegistered
		case errors.Is(err, standings.ErrGroupSizeInvalid):
			return nil, fmt.Errorf("%w: got %d", ErrGroupSizeInvalid, size)
		}
		return nil, err
	}

	tx, err := s.txBeginner.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Replace, never append: a second generation must not leave fixtures
	// of the first one behind.
	if err := s.matchRepo.DeleteGroupStageByTournament(ctx, tx, tournamentID); err != nil {
		return nil, err
	}
	if err := s.groupRepo.DeleteByTournament(ctx, tx, tournamentID); err != nil {
		return nil, err
	}

	created := make([]*models.TournamentGroup, 0, len(partitioned))
	for _, group := range partitioned {
		dbGroup := &models.TournamentGroup{
			TournamentID: tournamentID,
			Name:         group.Name,
		}
		if err := s.groupRepo.Create(ctx, tx, dbGroup); err != nil {
			return nil, fmt.Errorf("failed to create group %q: %w", group.Name, err)
		}
		for position, ref := range group.Teams {
			if err := s.groupRepo.AddTeam(ctx, tx, dbGroup.ID, ref.ID, position); err != nil {
				return nil, err
			}
			if team := teamIndex[ref.ID]; team != nil {
				dbGroup.Teams = append(dbGroup.Teams, *team)
			}
		}
		created = append(created, dbGroup)
	}

	for _, fixture := range standings.GenerateAllFixtures(partitioned) {
		groupName := fixture.GroupName
		match := &models.Match{
			TournamentID: tournamentID,
			GroupName:    &groupName,
			HomeTeamID:   fixture.HomeTeamID,
			AwayTeamID:   fixture.AwayTeamID,
			Status:       models.MatchStatusScheduled,
		}
		if err := s.matchRepo.Create(ctx, tx, match); err != nil {
			return nil, fmt.Errorf("failed to create fixture %s: %w", groupName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group generation for tournament %d: %w", tournamentID, err)
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(tournamentRoom(tournamentID), live.Message{
			Type:    live.EventGroupsGenerated,
			Payload: created,
		})
	}
	return created, nil
}

func (s *groupService) ListGroups(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error) {
	groups, err := s.groupRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for tournament %d: %w", tournamentID, err)
	}
	return groups, nil
}

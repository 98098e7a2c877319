package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/Biagem01/TorneoLive-sub000/storage"
)

type CreateTeamInput struct {
	TournamentID int    `json:"tournament_id"`
	Name         string `json:"name"`
}

type UpdateTeamInput struct {
	Name string `json:"name"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput, actorRole models.UserRole) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeamsByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input UpdateTeamInput, actorRole models.UserRole) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int, actorRole models.UserRole) error
	UploadCrest(ctx context.Context, id int, contentType string, file io.Reader, actorRole models.UserRole) (*models.Team, error)
}

type teamService struct {
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput, actorRole models.UserRole) (*models.Team, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}
	if _, err := s.tournamentRepo.GetByID(ctx, input.TournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", input.TournamentID, err)
	}

	team := &models.Team{
		TournamentID: input.TournamentID,
		Name:         strings.TrimSpace(input.Name),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	players, err := s.playerRepo.ListByTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", id, err)
	}
	team.Players = make([]models.Player, 0, len(players))
	for _, p := range players {
		if p != nil {
			team.Players = append(team.Players, *p)
		}
	}

	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) ListTeamsByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for tournament %d: %w", tournamentID, err)
	}
	for _, team := range teams {
		s.populateCrestURL(team)
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input UpdateTeamInput, actorRole models.UserRole) (*models.Team, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	team.Name = strings.TrimSpace(input.Name)
	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int, actorRole models.UserRole) error {
	if err := ensureCanManage(actorRole); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}

func (s *teamService) UploadCrest(ctx context.Context, id int, contentType string, file io.Reader, actorRole models.UserRole) (*models.Team, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	key := fmt.Sprintf("teams/%d/crest", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload crest for team %d: %w", id, err)
	}

	if err := s.teamRepo.UpdateCrestKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store crest key for team %d: %w", id, err)
	}
	team.CrestKey = &result.Key
	s.populateCrestURL(team)
	return team, nil
}

func (s *teamService) populateCrestURL(team *models.Team) {
	if team == nil || team.CrestKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*team.CrestKey); url != "" {
		team.CrestURL = &url
	}
}

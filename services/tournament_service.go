package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/Biagem01/TorneoLive-sub000/storage"
	"golang.org/x/sync/errgroup"
)

type CreateTournamentInput struct {
	Name        string    `json:"name"`
	Season      *string   `json:"season,omitempty"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GroupSize   *int      `json:"group_size,omitempty"`
}

type UpdateTournamentInput struct {
	Name        string    `json:"name"`
	Season      *string   `json:"season,omitempty"`
	Description *string   `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GroupSize   *int      `json:"group_size,omitempty"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput, organizerID int, actorRole models.UserRole) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, status *models.TournamentStatus) ([]*models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput, actorRole models.UserRole) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int, actorRole models.UserRole) error
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader, actorRole models.UserRole) (*models.Tournament, error)
	AutoUpdateTournamentStatusesByDates(ctx context.Context) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	uploader       storage.FileUploader
	logger         *slog.Logger

	// Group size applied when a new tournament does not specify one.
	defaultGroupSize int
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
	defaultGroupSize int,
) TournamentService {
	return &tournamentService{
		tournamentRepo:   tournamentRepo,
		teamRepo:         teamRepo,
		groupRepo:        groupRepo,
		matchRepo:        matchRepo,
		uploader:         uploader,
		logger:           logger,
		defaultGroupSize: defaultGroupSize,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput, organizerID int, actorRole models.UserRole) (*models.Tournament, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || !input.StartDate.Before(input.EndDate) {
		return nil, ErrTournamentInvalidDateRange
	}

	groupSize := s.defaultGroupSize
	if input.GroupSize != nil {
		if *input.GroupSize < 2 {
			return nil, ErrGroupSizeInvalid
		}
		groupSize = *input.GroupSize
	}

	tournament := &models.Tournament{
		Name:        strings.TrimSpace(input.Name),
		Season:      input.Season,
		Description: input.Description,
		OrganizerID: organizerID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.StatusSoon,
		GroupSize:   groupSize,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

// GetTournamentByID loads the tournament together with its teams, groups
// and matches, fetched in parallel.
func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.teamRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list teams for tournament %d: %w", id, err)
		}
		tournament.Teams = teamsToValues(teams)
		return nil
	})

	g.Go(func() error {
		groups, err := s.groupRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to list groups for tournament %d: %w", id, err)
		}
		tournament.Groups = make([]models.TournamentGroup, 0, len(groups))
		for _, group := range groups {
			if group != nil {
				tournament.Groups = append(tournament.Groups, *group)
			}
		}
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournament(gCtx, id, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to list matches for tournament %d: %w", id, err)
		}
		tournament.Matches = matchesToValues(matches)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, status *models.TournamentStatus) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for _, t := range tournaments {
		s.populateLogoURL(t)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input UpdateTournamentInput, actorRole models.UserRole) (*models.Tournament, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || !input.StartDate.Before(input.EndDate) {
		return nil, ErrTournamentInvalidDateRange
	}

	tournament.Name = strings.TrimSpace(input.Name)
	tournament.Season = input.Season
	tournament.Description = input.Description
	tournament.StartDate = input.StartDate
	tournament.EndDate = input.EndDate
	if input.GroupSize != nil {
		if *input.GroupSize < 2 {
			return nil, ErrGroupSizeInvalid
		}
		tournament.GroupSize = *input.GroupSize
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to update tournament %d: %w", id, err)
	}
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int, actorRole models.UserRole) error {
	if err := ensureCanManage(actorRole); err != nil {
		return err
	}
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament %d: %w", id, err)
	}
	return nil
}

func (s *tournamentService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader, actorRole models.UserRole) (*models.Tournament, error) {
	if err := ensureCanManage(actorRole); err != nil {
		return nil, err
	}
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	key := fmt.Sprintf("tournaments/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for tournament %d: %w", id, err)
	}

	if err := s.tournamentRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store logo key for tournament %d: %w", id, err)
	}
	tournament.LogoKey = &result.Key
	s.populateLogoURL(tournament)
	return tournament, nil
}

// AutoUpdateTournamentStatusesByDates moves tournaments along
// soon -> active -> completed as their dates pass. Invoked periodically by
// the scheduler goroutine in main.
func (s *tournamentService) AutoUpdateTournamentStatusesByDates(ctx context.Context) error {
	now := time.Now()

	activated, err := s.tournamentRepo.ActivateDue(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to activate due tournaments: %w", err)
	}
	completed, err := s.tournamentRepo.CompleteDue(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to complete due tournaments: %w", err)
	}

	if len(activated) > 0 || len(completed) > 0 {
		s.logger.Info("tournament statuses updated",
			slog.Any("activated", activated),
			slog.Any("completed", completed),
		)
	}
	return nil
}

func (s *tournamentService) populateLogoURL(t *models.Tournament) {
	if t == nil || t.LogoKey == nil || s.uploader == nil {
		return
	}
	if url := s.uploader.GetPublicURL(*t.LogoKey); url != "" {
		t.LogoURL = &url
	}
}

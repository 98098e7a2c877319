package services

import (
	"context"
	"testing"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGroupsRequiresManagerRole(t *testing.T) {
	svc := NewGroupService(nil, nil, nil, nil, nil, nil)

	_, err := svc.GenerateGroups(context.Background(), 1, nil, models.RoleViewer)
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}

func TestGenerateGroupsUnknownTournament(t *testing.T) {
	tournaments := &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Tournament, error) {
			return nil, repositories.ErrTournamentNotFound
		},
	}
	svc := NewGroupService(nil, tournaments, nil, nil, nil, nil)

	_, err := svc.GenerateGroups(context.Background(), 42, nil, models.RoleOrganizer)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGenerateGroupsNoTeamsRegistered(t *testing.T) {
	tournaments := &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Tournament, error) {
			return &models.Tournament{ID: id, GroupSize: 4, Status: models.StatusActive}, nil
		},
	}
	teams := &stubTeamRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Team, error) {
			return nil, nil
		},
	}
	svc := NewGroupService(nil, tournaments, teams, nil, nil, nil)

	_, err := svc.GenerateGroups(context.Background(), 1, nil, models.RoleOrganizer)
	assert.ErrorIs(t, err, ErrNoTeamsRegistered)
}

func TestGenerateGroupsRejectsInvalidSizeOverride(t *testing.T) {
	tournaments := &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Tournament, error) {
			return &models.Tournament{ID: id, GroupSize: 4, Status: models.StatusActive}, nil
		},
	}
	teams := &stubTeamRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Team, error) {
			return []*models.Team{{ID: 1, Name: "Aquile"}, {ID: 2, Name: "Lupi"}}, nil
		},
	}
	svc := NewGroupService(nil, tournaments, teams, nil, nil, nil)

	_, err := svc.GenerateGroups(context.Background(), 1, intPtr(1), models.RoleAdmin)
	assert.ErrorIs(t, err, ErrGroupSizeInvalid)
}

func TestGenerateGroupsRejectsFinishedTournament(t *testing.T) {
	tournaments := &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Tournament, error) {
			return &models.Tournament{ID: id, GroupSize: 4, Status: models.StatusCompleted}, nil
		},
	}
	svc := NewGroupService(nil, tournaments, nil, nil, nil, nil)

	_, err := svc.GenerateGroups(context.Background(), 1, nil, models.RoleOrganizer)
	assert.ErrorIs(t, err, ErrTournamentNotActive)
}

func TestGenerateGroupsReplacesPreviousGeneration(t *testing.T) {
	tournaments := &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Tournament, error) {
			return &models.Tournament{ID: id, GroupSize: 4, Status: models.StatusActive}, nil
		},
	}
	teams := &stubTeamRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Team, error) {
			return []*models.Team{
				{ID: 1, Name: "Aquile"},
				{ID: 2, Name: "Lupi"},
				{ID: 3, Name: "Orsi"},
				{ID: 4, Name: "Falchi"},
			}, nil
		},
	}

	var calls []string
	nextGroupID := 0
	groups := &stubGroupRepo{
		deleteByTournamentFn: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
			calls = append(calls, "groups.delete")
			return nil
		},
		createFn: func(ctx context.Context, exec repositories.SQLExecutor, group *models.TournamentGroup) error {
			calls = append(calls, "groups.create")
			nextGroupID++
			group.ID = nextGroupID
			return nil
		},
		addTeamFn: func(ctx context.Context, exec repositories.SQLExecutor, groupID, teamID, position int) error {
			calls = append(calls, "groups.addTeam")
			return nil
		},
	}
	matches := &stubMatchRepo{
		deleteGroupStageFn: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
			calls = append(calls, "matches.deleteGroupStage")
			return nil
		},
		createFn: func(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
			calls = append(calls, "matches.create")
			return nil
		},
	}
	tx := &stubTx{}
	svc := NewGroupService(&stubTxBeginner{tx: tx}, tournaments, teams, groups, matches, nil)

	created, err := svc.GenerateGroups(context.Background(), 1, nil, models.RoleOrganizer)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Len(t, created[0].Teams, 4)

	firstRunLen := len(calls)

	created, err = svc.GenerateGroups(context.Background(), 1, nil, models.RoleOrganizer)
	require.NoError(t, err)
	require.Len(t, created, 1)

	// Each run clears the previous generation before writing the new one.
	for _, run := range [][]string{calls[:firstRunLen], calls[firstRunLen:]} {
		require.GreaterOrEqual(t, len(run), 2)
		assert.Equal(t, "matches.deleteGroupStage", run[0])
		assert.Equal(t, "groups.delete", run[1])
	}

	// Regenerating must not accumulate fixtures: the second run creates
	// exactly one generation's worth. Four teams in one group is six.
	fixtures := 0
	for _, call := range calls[firstRunLen:] {
		if call == "matches.create" {
			fixtures++
		}
	}
	assert.Equal(t, 6, fixtures)
	assert.Equal(t, 2, tx.commits)
}

package services

import (
	"context"
	"testing"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandingsFixture(
	tournaments *stubTournamentRepo,
	teams *stubTeamRepo,
	players *stubPlayerRepo,
	matches *stubMatchRepo,
	goals *stubGoalRepo,
	groups *stubGroupRepo,
) StandingsService {
	return NewStandingsService(tournaments, teams, players, matches, goals, groups)
}

func existingTournament(id int) *stubTournamentRepo {
	return &stubTournamentRepo{
		getByIDFn: func(ctx context.Context, gotID int) (*models.Tournament, error) {
			if gotID != id {
				return nil, repositories.ErrTournamentNotFound
			}
			return &models.Tournament{ID: id, Name: "Summer Cup", Status: models.StatusActive}, nil
		},
	}
}

func TestTournamentStandingsComputesTable(t *testing.T) {
	teams := &stubTeamRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Team, error) {
			return []*models.Team{
				{ID: 1, Name: "Aquile"},
				{ID: 2, Name: "Lupi"},
				{ID: 3, Name: "Orsi"},
			}, nil
		},
	}
	matches := &stubMatchRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error) {
			return []*models.Match{
				{ID: 10, HomeTeamID: 1, AwayTeamID: 2, HomeScore: intPtr(2), AwayScore: intPtr(0), Status: models.MatchStatusFinal},
				{ID: 11, HomeTeamID: 2, AwayTeamID: 3, HomeScore: intPtr(1), AwayScore: intPtr(1), Status: models.MatchStatusFinal},
				{ID: 12, HomeTeamID: 1, AwayTeamID: 3, Status: models.MatchStatusScheduled},
			}, nil
		},
	}

	svc := newStandingsFixture(existingTournament(7), teams, nil, matches, nil, nil)

	table, err := svc.TournamentStandings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, "Aquile", table[0].TeamName)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 1, table[0].Position)

	assert.Equal(t, "Orsi", table[1].TeamName)
	assert.Equal(t, 1, table[1].Points)

	assert.Equal(t, "Lupi", table[2].TeamName)
	assert.Equal(t, 1, table[2].Points)
	assert.Equal(t, -2, table[2].GoalDifference)

	// The scheduled match must not count anywhere.
	assert.Equal(t, 1, table[0].Played)
}

func TestTournamentStandingsUnknownTournament(t *testing.T) {
	svc := newStandingsFixture(existingTournament(7), nil, nil, nil, nil, nil)

	_, err := svc.TournamentStandings(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGroupStandingsKeepsGroupsSeparate(t *testing.T) {
	groupA := "Group 1"
	groupB := "Group 2"

	matches := &stubMatchRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int, status *models.MatchStatus, groupName *string) ([]*models.Match, error) {
			return []*models.Match{
				{ID: 1, GroupName: &groupA, HomeTeamID: 1, AwayTeamID: 2, HomeScore: intPtr(3), AwayScore: intPtr(0), Status: models.MatchStatusFinal},
				{ID: 2, GroupName: &groupB, HomeTeamID: 3, AwayTeamID: 4, HomeScore: intPtr(0), AwayScore: intPtr(1), Status: models.MatchStatusFinal},
			}, nil
		},
	}
	groups := &stubGroupRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.TournamentGroup, error) {
			return []*models.TournamentGroup{
				{ID: 1, Name: groupA, Teams: []models.Team{{ID: 1, Name: "Aquile"}, {ID: 2, Name: "Lupi"}}},
				{ID: 2, Name: groupB, Teams: []models.Team{{ID: 3, Name: "Orsi"}, {ID: 4, Name: "Falchi"}}},
			}, nil
		},
	}

	svc := newStandingsFixture(existingTournament(7), nil, nil, matches, nil, groups)

	tables, err := svc.GroupStandings(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	require.Equal(t, groupA, tables[0].GroupName)
	require.Len(t, tables[0].Standings, 2)
	assert.Equal(t, "Aquile", tables[0].Standings[0].TeamName)
	assert.Equal(t, 3, tables[0].Standings[0].Points)

	require.Equal(t, groupB, tables[1].GroupName)
	assert.Equal(t, "Falchi", tables[1].Standings[0].TeamName)

	// A result in one group must not leak into the other.
	for _, row := range tables[1].Standings {
		assert.NotEqual(t, "Aquile", row.TeamName)
	}
}

func TestTopScorersAggregatesGoals(t *testing.T) {
	goals := &stubGoalRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Goal, error) {
			return []*models.Goal{
				{ID: 1, MatchID: 10, TeamID: 1, PlayerID: 100, Minute: 12},
				{ID: 2, MatchID: 10, TeamID: 1, PlayerID: 100, Minute: 55},
				{ID: 3, MatchID: 11, TeamID: 2, PlayerID: 200, Minute: 78},
			}, nil
		},
	}
	players := &stubPlayerRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Player, error) {
			return []*models.Player{
				{ID: 100, TeamID: 1, FirstName: "Marco", LastName: "Rossi"},
				{ID: 200, TeamID: 2, FirstName: "Luca", LastName: "Bianchi"},
				{ID: 300, TeamID: 2, FirstName: "Paolo", LastName: "Verdi"},
			}, nil
		},
	}
	teams := &stubTeamRepo{
		listByTournamentFn: func(ctx context.Context, tournamentID int) ([]*models.Team, error) {
			return []*models.Team{{ID: 1, Name: "Aquile"}, {ID: 2, Name: "Lupi"}}, nil
		},
	}

	svc := newStandingsFixture(existingTournament(7), teams, players, nil, goals, nil)

	scorers, err := svc.TopScorers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, scorers, 2)

	assert.Equal(t, "Marco Rossi", scorers[0].PlayerName)
	assert.Equal(t, "Aquile", scorers[0].TeamName)
	assert.Equal(t, 2, scorers[0].Goals)

	assert.Equal(t, "Luca Bianchi", scorers[1].PlayerName)
	assert.Equal(t, 1, scorers[1].Goals)
}

package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTopScorers_CountsGoalsPerPlayer(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "Team A"}, {ID: 2, Name: "Team B"}}
	players := []PlayerRef{
		{ID: 1, Name: "Rossi", TeamID: 1},
		{ID: 2, Name: "Bianchi", TeamID: 2},
		{ID: 3, Name: "Verdi", TeamID: 2}, // never scores
	}
	events := []GoalEvent{
		{MatchID: 1, TeamID: 1, PlayerID: 1, Minute: 12},
		{MatchID: 2, TeamID: 1, PlayerID: 1, Minute: 78},
		{MatchID: 1, TeamID: 2, PlayerID: 2, Minute: 45},
	}

	leaderboard := ComputeTopScorers(events, players, teams)
	require.Len(t, leaderboard, 2, "zero-goal players must not appear")

	assert.Equal(t, ScorerEntry{PlayerID: 1, PlayerName: "Rossi", TeamName: "Team A", Goals: 2}, leaderboard[0])
	assert.Equal(t, ScorerEntry{PlayerID: 2, PlayerName: "Bianchi", TeamName: "Team B", Goals: 1}, leaderboard[1])
}

func TestComputeTopScorers_TieBreaksByPlayerName(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "Team A"}}
	players := []PlayerRef{
		{ID: 1, Name: "Zanetti", TeamID: 1},
		{ID: 2, Name: "Baggio", TeamID: 1},
	}
	events := []GoalEvent{
		{MatchID: 1, TeamID: 1, PlayerID: 1, Minute: 10},
		{MatchID: 1, TeamID: 1, PlayerID: 2, Minute: 20},
	}

	leaderboard := ComputeTopScorers(events, players, teams)
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "Baggio", leaderboard[0].PlayerName)
	assert.Equal(t, "Zanetti", leaderboard[1].PlayerName)
}

func TestComputeTopScorers_SameNameTiesKeepRosterOrder(t *testing.T) {
	// Two players sharing a name and a goal count, once per team. The
	// leaderboard must still come out the same on every run: roster
	// order decides.
	teams := []TeamRef{{ID: 1, Name: "Team A"}, {ID: 2, Name: "Team B"}}
	players := []PlayerRef{
		{ID: 7, Name: "Rossi", TeamID: 1},
		{ID: 8, Name: "Rossi", TeamID: 2},
	}
	events := []GoalEvent{
		{MatchID: 1, TeamID: 2, PlayerID: 8, Minute: 15},
		{MatchID: 1, TeamID: 1, PlayerID: 7, Minute: 30},
	}

	for i := 0; i < 20; i++ {
		leaderboard := ComputeTopScorers(events, players, teams)
		require.Len(t, leaderboard, 2)
		assert.Equal(t, 7, leaderboard[0].PlayerID)
		assert.Equal(t, 8, leaderboard[1].PlayerID)
	}
}

func TestComputeTopScorers_SkipsUnknownPlayers(t *testing.T) {
	players := []PlayerRef{{ID: 1, Name: "Rossi", TeamID: 1}}
	events := []GoalEvent{
		{MatchID: 1, TeamID: 1, PlayerID: 1, Minute: 5},
		{MatchID: 1, TeamID: 1, PlayerID: 99, Minute: 6},
	}

	leaderboard := ComputeTopScorers(events, players, nil)
	require.Len(t, leaderboard, 1)
	assert.Equal(t, 1, leaderboard[0].Goals)
	assert.Empty(t, leaderboard[0].TeamName)
}

func TestComputeTopScorers_EmptyInput(t *testing.T) {
	assert.Empty(t, ComputeTopScorers(nil, nil, nil))
}

package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func playedMatch(home, away, homeScore, awayScore int) MatchResult {
	return MatchResult{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	}
}

func TestComputeStandings_ThreeTeamScenario(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	matches := []MatchResult{
		playedMatch(1, 2, 2, 1),        // A 2-1 B
		playedMatch(2, 3, 1, 1),        // B 1-1 C
		{HomeTeamID: 1, AwayTeamID: 3}, // A-C not played yet
	}

	table := ComputeStandings(matches, teams)
	require.Len(t, table, 3)

	a := table[0]
	assert.Equal(t, "A", a.TeamName)
	assert.Equal(t, 1, a.Played)
	assert.Equal(t, 1, a.Won)
	assert.Equal(t, 3, a.Points)
	assert.Equal(t, 2, a.GoalsFor)
	assert.Equal(t, 1, a.GoalsAgainst)
	assert.Equal(t, 1, a.GoalDifference)

	// B and C both have 1 point; C's goal difference (0) beats B's (-1).
	c := table[1]
	assert.Equal(t, "C", c.TeamName)
	assert.Equal(t, 1, c.Played)
	assert.Equal(t, 1, c.Drawn)
	assert.Equal(t, 1, c.Points)
	assert.Equal(t, 0, c.GoalDifference)

	b := table[2]
	assert.Equal(t, "B", b.TeamName)
	assert.Equal(t, 2, b.Played)
	assert.Equal(t, 1, b.Drawn)
	assert.Equal(t, 1, b.Lost)
	assert.Equal(t, 1, b.Points)
	assert.Equal(t, 2, b.GoalsFor)
	assert.Equal(t, 3, b.GoalsAgainst)
	assert.Equal(t, -1, b.GoalDifference)

	for i, row := range table {
		assert.Equal(t, i+1, row.Position)
	}
}

func TestComputeStandings_UnplayedMatchesAreInvisible(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	matches := []MatchResult{
		{HomeTeamID: 1, AwayTeamID: 2},                       // no scores
		{HomeTeamID: 2, AwayTeamID: 1, HomeScore: intPtr(3)}, // half a score
	}

	table := ComputeStandings(matches, teams)
	require.Len(t, table, 2)
	for _, row := range table {
		assert.Zero(t, row.Played, "team %s", row.TeamName)
		assert.Zero(t, row.Points)
		assert.Zero(t, row.GoalsFor)
		assert.Zero(t, row.GoalsAgainst)
	}
}

func TestComputeStandings_RosterTeamsWithoutMatchesAppear(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "Idle"}}
	matches := []MatchResult{playedMatch(1, 2, 1, 0)}

	table := ComputeStandings(matches, teams)
	require.Len(t, table, 3)
	assert.Equal(t, "Idle", table[2].TeamName)
	assert.Equal(t, TeamStanding{TeamID: 3, TeamName: "Idle", Position: 3}, table[2])
}

func TestComputeStandings_UnknownTeamSkipsMatch(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	matches := []MatchResult{
		playedMatch(1, 99, 5, 0), // 99 not in roster
		playedMatch(1, 2, 1, 1),
	}

	table := ComputeStandings(matches, teams)
	for _, row := range table {
		assert.Equal(t, 1, row.Played)
		assert.Equal(t, 1, row.Points)
	}
}

func TestComputeStandings_WinsEqualLossesAndDifferenceConsistent(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}}
	matches := []MatchResult{
		playedMatch(1, 2, 2, 0),
		playedMatch(3, 4, 1, 3),
		playedMatch(1, 3, 2, 2),
		playedMatch(2, 4, 0, 1),
		playedMatch(1, 4, 4, 1),
	}

	table := ComputeStandings(matches, teams)

	var wins, losses, gdSum int
	for _, row := range table {
		wins += row.Won
		losses += row.Lost
		gdSum += row.GoalDifference
		assert.Equal(t, row.Played, row.Won+row.Drawn+row.Lost)
		assert.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDifference)
		assert.Equal(t, 3*row.Won+row.Drawn, row.Points)
	}
	assert.Equal(t, wins, losses)
	assert.Zero(t, gdSum)
}

func TestComputeStandings_FullTieKeepsRosterOrder(t *testing.T) {
	teams := []TeamRef{{ID: 10, Name: "First"}, {ID: 20, Name: "Second"}}
	// Two identical records: no sort key separates them, so the roster
	// order must survive and positions stay strictly ordinal.
	matches := []MatchResult{playedMatch(10, 20, 1, 1)}

	table := ComputeStandings(matches, teams)
	require.Len(t, table, 2)
	assert.Equal(t, "First", table[0].TeamName)
	assert.Equal(t, 1, table[0].Position)
	assert.Equal(t, "Second", table[1].TeamName)
	assert.Equal(t, 2, table[1].Position)
}

func TestComputeStandings_SortIsIdempotent(t *testing.T) {
	teams := []TeamRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	matches := []MatchResult{
		playedMatch(1, 2, 2, 1),
		playedMatch(2, 3, 1, 1),
	}

	first := ComputeStandings(matches, teams)

	reordered := make([]TeamRef, 0, len(first))
	for _, row := range first {
		reordered = append(reordered, TeamRef{ID: row.TeamID, Name: row.TeamName})
	}
	second := ComputeStandings(matches, reordered)
	assert.Equal(t, first, second)
}

func TestComputeGroupTables_FiltersByGroupName(t *testing.T) {
	groups := []Group{
		{Name: "Group 1", Teams: []TeamRef{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}}},
		{Name: "Group 2", Teams: []TeamRef{{ID: 2, Name: "B"}, {ID: 4, Name: "D"}}},
	}
	g1 := playedMatch(1, 3, 2, 0)
	g1.GroupName = "Group 1"
	g2 := playedMatch(2, 4, 1, 1)
	g2.GroupName = "Group 2"
	stray := playedMatch(1, 2, 9, 9) // no group, must not leak into either table

	tables := ComputeGroupTables([]MatchResult{g1, g2, stray}, groups)
	require.Len(t, tables, 2)

	assert.Equal(t, "Group 1", tables[0].GroupName)
	assert.Equal(t, 3, tables[0].Standings[0].Points)
	assert.Equal(t, "A", tables[0].Standings[0].TeamName)

	assert.Equal(t, "Group 2", tables[1].GroupName)
	for _, row := range tables[1].Standings {
		assert.Equal(t, 1, row.Points)
		assert.Equal(t, 1, row.GoalsFor)
	}
}

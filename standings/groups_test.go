package standings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeams(n int) []TeamRef {
	teams := make([]TeamRef, n)
	for i := range teams {
		teams[i] = TeamRef{ID: i + 1, Name: fmt.Sprintf("Team %d", i+1)}
	}
	return teams
}

func TestPartitionIntoGroups_SevenTeamsOfFour(t *testing.T) {
	groups, err := PartitionIntoGroups(makeTeams(7), 4)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Group 1", groups[0].Name)
	assert.Equal(t, "Group 2", groups[1].Name)

	// Round-robin by index modulo 2: even roster indices land in Group 1,
	// odd ones in Group 2. A block split would give 1,2,3,4 / 5,6,7.
	idsOf := func(g Group) []int {
		ids := make([]int, 0, len(g.Teams))
		for _, team := range g.Teams {
			ids = append(ids, team.ID)
		}
		return ids
	}
	assert.Equal(t, []int{1, 3, 5, 7}, idsOf(groups[0]))
	assert.Equal(t, []int{2, 4, 6}, idsOf(groups[1]))

	assert.Len(t, GenerateFixtures(groups[0]), 6) // C(4,2)
	assert.Len(t, GenerateFixtures(groups[1]), 3) // C(3,2)
	assert.Len(t, GenerateAllFixtures(groups), 9)
}

func TestPartitionIntoGroups_SizesDifferByAtMostOne(t *testing.T) {
	for n := 2; n <= 24; n++ {
		for size := 2; size <= 6; size++ {
			groups, err := PartitionIntoGroups(makeTeams(n), size)
			require.NoError(t, err, "n=%d size=%d", n, size)

			wantGroups := (n + size - 1) / size
			assert.Len(t, groups, wantGroups, "n=%d size=%d", n, size)

			total, min, max := 0, n, 0
			for _, g := range groups {
				total += len(g.Teams)
				if len(g.Teams) < min {
					min = len(g.Teams)
				}
				if len(g.Teams) > max {
					max = len(g.Teams)
				}
			}
			assert.Equal(t, n, total, "n=%d size=%d", n, size)
			assert.LessOrEqual(t, max-min, 1, "n=%d size=%d", n, size)
		}
	}
}

func TestPartitionIntoGroups_Validation(t *testing.T) {
	_, err := PartitionIntoGroups(nil, 4)
	assert.ErrorIs(t, err, ErrNoTeams)

	_, err = PartitionIntoGroups(makeTeams(4), 1)
	assert.ErrorIs(t, err, ErrGroupSizeInvalid)

	_, err = PartitionIntoGroups(makeTeams(4), 0)
	assert.ErrorIs(t, err, ErrGroupSizeInvalid)
}

func TestGenerateFixtures_UniqueUnorderedPairings(t *testing.T) {
	group := Group{Name: "Group 1", Teams: makeTeams(5)}
	fixtures := GenerateFixtures(group)
	require.Len(t, fixtures, 10)

	seen := make(map[[2]int]bool)
	for _, f := range fixtures {
		assert.Equal(t, "Group 1", f.GroupName)
		assert.NotEqual(t, f.HomeTeamID, f.AwayTeamID)

		pair := [2]int{f.HomeTeamID, f.AwayTeamID}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		assert.False(t, seen[pair], "pairing %v generated twice", pair)
		seen[pair] = true
	}
}

package standings

import (
	"errors"
	"fmt"
)

var (
	ErrNoTeams          = errors.New("no teams to partition into groups")
	ErrGroupSizeInvalid = errors.New("group size must be at least 2")
)

// PartitionIntoGroups splits the roster into ceil(len(teams)/groupSize)
// groups named "Group 1", "Group 2", and so on. Assignment is round-robin
// by roster index modulo the number of groups, not sequential blocks, so
// group sizes differ by at most one team.
func PartitionIntoGroups(teams []TeamRef, groupSize int) ([]Group, error) {
	if len(teams) == 0 {
		return nil, ErrNoTeams
	}
	if groupSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGroupSizeInvalid, groupSize)
	}

	numGroups := (len(teams) + groupSize - 1) / groupSize
	groups := make([]Group, numGroups)
	for i := range groups {
		groups[i].Name = fmt.Sprintf("Group %d", i+1)
	}
	for i, team := range teams {
		g := i % numGroups
		groups[g].Teams = append(groups[g].Teams, team)
	}
	return groups, nil
}

// GenerateFixtures produces every unique unordered pairing within the
// group: n*(n-1)/2 fixtures for a group of n. Fixtures carry no score and
// no date.
func GenerateFixtures(group Group) []Fixture {
	n := len(group.Teams)
	fixtures := make([]Fixture, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fixtures = append(fixtures, Fixture{
				GroupName:  group.Name,
				HomeTeamID: group.Teams[i].ID,
				AwayTeamID: group.Teams[j].ID,
			})
		}
	}
	return fixtures
}

// GenerateAllFixtures concatenates the fixtures of every group in order.
func GenerateAllFixtures(groups []Group) []Fixture {
	var fixtures []Fixture
	for _, g := range groups {
		fixtures = append(fixtures, GenerateFixtures(g)...)
	}
	return fixtures
}

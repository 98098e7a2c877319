package standings

import "sort"

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// ComputeStandings aggregates the given matches into a ranked table.
//
// Every team in the roster gets a row, so teams with no played matches
// appear with all-zero stats. Matches missing a score on either side are
// skipped entirely, as are matches referencing a team absent from the
// roster.
//
// The table is ordered by points, then goal difference, then goals for,
// all descending. Teams equal on all three keys keep their relative roster
// order; there is deliberately no head-to-head or alphabetical tie-break.
// Position is a strict 1-based ordinal with no shared ranks.
func ComputeStandings(matches []MatchResult, teams []TeamRef) []TeamStanding {
	index := make(map[int]*TeamStanding, len(teams))
	table := make([]*TeamStanding, 0, len(teams))
	for _, t := range teams {
		row := &TeamStanding{TeamID: t.ID, TeamName: t.Name}
		index[t.ID] = row
		table = append(table, row)
	}

	for _, m := range matches {
		if m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		home := index[m.HomeTeamID]
		away := index[m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}

		homeScore := *m.HomeScore
		awayScore := *m.AwayScore

		home.Played++
		away.Played++
		home.GoalsFor += homeScore
		home.GoalsAgainst += awayScore
		away.GoalsFor += awayScore
		away.GoalsAgainst += homeScore

		switch {
		case homeScore > awayScore:
			home.Won++
			home.Points += pointsPerWin
			away.Lost++
		case homeScore < awayScore:
			away.Won++
			away.Points += pointsPerWin
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points += pointsPerDraw
			away.Points += pointsPerDraw
		}
	}

	for _, row := range table {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].GoalDifference != table[j].GoalDifference {
			return table[i].GoalDifference > table[j].GoalDifference
		}
		return table[i].GoalsFor > table[j].GoalsFor
	})

	result := make([]TeamStanding, len(table))
	for i, row := range table {
		row.Position = i + 1
		result[i] = *row
	}
	return result
}

// ComputeGroupTables runs ComputeStandings once per group, feeding each
// invocation only the matches tagged with that group's name. Tables come
// back in the groups' own order.
func ComputeGroupTables(matches []MatchResult, groups []Group) []GroupTable {
	byGroup := make(map[string][]MatchResult)
	for _, m := range matches {
		if m.GroupName == "" {
			continue
		}
		byGroup[m.GroupName] = append(byGroup[m.GroupName], m)
	}

	tables := make([]GroupTable, 0, len(groups))
	for _, g := range groups {
		tables = append(tables, GroupTable{
			GroupName: g.Name,
			Standings: ComputeStandings(byGroup[g.Name], g.Teams),
		})
	}
	return tables
}

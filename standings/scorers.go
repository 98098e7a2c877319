package standings

import "sort"

// ComputeTopScorers counts goal events per player and returns the
// leaderboard ordered by goals descending, with player name ascending as
// the tie-break. One event is one goal; there is no per-event weighting.
//
// Players with zero goals are excluded, and events referencing a player
// absent from the roster are skipped. Entries tied on goals and name keep
// their roster order, so the output is deterministic for a given input.
func ComputeTopScorers(events []GoalEvent, players []PlayerRef, teams []TeamRef) []ScorerEntry {
	playerIndex := make(map[int]PlayerRef, len(players))
	for _, p := range players {
		playerIndex[p.ID] = p
	}
	teamNames := make(map[int]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	goals := make(map[int]int)
	for _, e := range events {
		if _, ok := playerIndex[e.PlayerID]; !ok {
			continue
		}
		goals[e.PlayerID]++
	}

	entries := make([]ScorerEntry, 0, len(goals))
	for _, player := range players {
		count, ok := goals[player.ID]
		if !ok {
			continue
		}
		entries = append(entries, ScorerEntry{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			TeamName:   teamNames[player.TeamID],
			Goals:      count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})
	return entries
}

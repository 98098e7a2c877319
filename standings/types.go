// Package standings is the ranking engine of the application. It turns a
// tournament's match results into ordered team tables, partitions team
// rosters into round-robin groups with their fixtures, and derives the
// top-scorer leaderboard.
//
// Every computation here is a pure function over plain in-memory inputs:
// no storage access, no shared state, safe to call concurrently. Services
// adapt database rows into these input shapes, so the same algorithm serves
// every storage backend.
package standings

// TeamRef identifies a team taking part in a computation.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlayerRef identifies a player eligible to appear in the scorer leaderboard.
type PlayerRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"team_id"`
}

// MatchResult is one match row as seen by the engine. A match counts
// towards standings only when both scores are non-nil; anything else is
// invisible to the table.
type MatchResult struct {
	ID         int
	HomeTeamID int
	AwayTeamID int
	HomeScore  *int
	AwayScore  *int
	GroupName  string // empty for matches outside the group stage
}

// GoalEvent is one scoring record. Minute is carried for display only.
type GoalEvent struct {
	MatchID  int
	TeamID   int
	PlayerID int
	Minute   int
}

// TeamStanding is one row of a computed table.
type TeamStanding struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Position       int    `json:"position"`
}

// ScorerEntry is one row of the top-scorer leaderboard.
type ScorerEntry struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	Goals      int    `json:"goals"`
}

// Group is a named partition of a tournament's teams.
type Group struct {
	Name  string    `json:"name"`
	Teams []TeamRef `json:"teams"`
}

// GroupTable pairs a group with its independently computed standings.
type GroupTable struct {
	GroupName string         `json:"group_name"`
	Standings []TeamStanding `json:"standings"`
}

// Fixture is a pairing produced by the fixture generator. It carries no
// score and no date; persisting it as a scheduled match is the caller's
// concern.
type Fixture struct {
	GroupName  string `json:"group_name"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
}

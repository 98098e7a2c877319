package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinal     MatchStatus = "final"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusLive, MatchStatusFinal:
		return true
	}
	return false
}

type Match struct {
	ID           int         `json:"id" db:"id"`
	TournamentID int         `json:"tournament_id" db:"tournament_id"`
	GroupName    *string     `json:"group_name,omitempty" db:"group_name"`
	HomeTeamID   int         `json:"home_team_id" db:"home_team_id"`
	AwayTeamID   int         `json:"away_team_id" db:"away_team_id"`
	HomeScore    *int        `json:"home_score,omitempty" db:"home_score"`
	AwayScore    *int        `json:"away_score,omitempty" db:"away_score"`
	Status       MatchStatus `json:"status" db:"status"`
	KickoffAt    *time.Time  `json:"kickoff_at,omitempty" db:"kickoff_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`

	HomeTeam *Team  `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team  `json:"away_team,omitempty" db:"-"`
	Goals    []Goal `json:"goals,omitempty" db:"-"`
}

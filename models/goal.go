package models

import "time"

// Goal is a single scoring event. Minute is informational only and never
// enters the top-scorer aggregation, but must be positive when recorded.
type Goal struct {
	ID        int       `json:"id" db:"id"`
	MatchID   int       `json:"match_id" db:"match_id"`
	TeamID    int       `json:"team_id" db:"team_id"`
	PlayerID  int       `json:"player_id" db:"player_id"`
	Minute    int       `json:"minute" db:"minute"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Player *Player `json:"player,omitempty" db:"-"`
}

package models

import "time"

// TournamentGroup is a persisted partition of a tournament's teams.
// Membership is fixed once generated; regenerating the groups for a
// tournament replaces both the groups and their derived fixtures.
type TournamentGroup struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}

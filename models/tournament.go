package models

import "time"

// TournamentStatus mirrors the ENUM in the tournaments table.
type TournamentStatus string

const (
	StatusSoon      TournamentStatus = "soon"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
	StatusCanceled  TournamentStatus = "canceled"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case StatusSoon, StatusActive, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Tournament struct {
	ID          int              `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Season      *string          `json:"season,omitempty" db:"season"`
	Description *string          `json:"description,omitempty" db:"description"`
	OrganizerID int              `json:"organizer_id" db:"organizer_id"`
	StartDate   time.Time        `json:"start_date" db:"start_date"`
	EndDate     time.Time        `json:"end_date" db:"end_date"`
	Status      TournamentStatus `json:"status" db:"status"`
	GroupSize   int              `json:"group_size" db:"group_size"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	LogoKey     *string          `json:"-" db:"logo_key"`
	LogoURL     *string          `json:"logo_url,omitempty" db:"-"`

	// Optional linked data, populated by services, not mapped directly.
	Organizer *User             `json:"organizer,omitempty" db:"-"`
	Teams     []Team            `json:"teams,omitempty" db:"-"`
	Groups    []TournamentGroup `json:"groups,omitempty" db:"-"`
	Matches   []Match           `json:"matches,omitempty" db:"-"`
}

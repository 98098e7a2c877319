package models

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleOrganizer UserRole = "organizer"
	RoleViewer    UserRole = "viewer"
)

// CanManageResults reports whether the role may mutate match results and
// tournament structure. Mutation paths receive the acting role explicitly;
// there is no ambient admin flag.
func (r UserRole) CanManageResults() bool {
	return r == RoleAdmin || r == RoleOrganizer
}

type User struct {
	ID                     int       `json:"id" db:"id"`
	FirstName              string    `json:"first_name" db:"first_name"`
	LastName               string    `json:"last_name" db:"last_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   UserRole  `json:"role" db:"role"`
	EmailConfirmed         bool      `json:"email_confirmed" db:"email_confirmed"`
	EmailConfirmationToken *string   `json:"-" db:"email_confirmation_token"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
}

package services

import "errors"

// Shared errors used across services and the HTTP mapping layer.
var (
	// Validation and business rules
	ErrValidationFailed           = errors.New("validation failed")
	ErrPasswordTooShort           = errors.New("password is too short")
	ErrTeamNameRequired           = errors.New("team name is required")
	ErrPlayerNameRequired         = errors.New("player name is required")
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must be after start date")
	ErrTournamentNotActive        = errors.New("tournament is not active")
	ErrMatchTeamsIdentical        = errors.New("a match needs two distinct teams")
	ErrMatchTeamsWrongTournament  = errors.New("both teams must belong to the match tournament")
	ErrMatchScoreNegative         = errors.New("match scores must not be negative")
	ErrGoalMinuteInvalid          = errors.New("goal minute must be a positive integer")
	ErrGoalTeamNotInMatch         = errors.New("goal team is not playing in this match")
	ErrNoTeamsRegistered          = errors.New("tournament has no registered teams")
	ErrGroupSizeInvalid           = errors.New("group size must be at least 2")

	// Conflicts
	ErrTeamNameConflict       = errors.New("team name is already in use in this tournament")
	ErrTournamentNameConflict = errors.New("tournament name already exists")

	// Authentication and authorization
	ErrForbiddenOperation = errors.New("operation not allowed for the current role")

	// Entity-specific not-found errors
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
)

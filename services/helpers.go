package services

import "github.com/Biagem01/TorneoLive-sub000/models"

// ensureCanManage gates every mutating operation on the acting role that
// handlers extracted from the verified token. Services never consult any
// ambient auth state.
func ensureCanManage(role models.UserRole) error {
	if !role.CanManageResults() {
		return ErrForbiddenOperation
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func teamsToValues(teams []*models.Team) []models.Team {
	result := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if t != nil {
			result = append(result, *t)
		}
	}
	return result
}

func matchesToValues(matches []*models.Match) []models.Match {
	result := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m != nil {
			result = append(result, *m)
		}
	}
	return result
}

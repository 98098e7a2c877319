package services

import (
	"context"
	"testing"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledMatch(id int) *models.Match {
	return &models.Match{
		ID:           id,
		TournamentID: 1,
		HomeTeamID:   1,
		AwayTeamID:   2,
		Status:       models.MatchStatusScheduled,
	}
}

func TestRecordResultRequiresManagerRole(t *testing.T) {
	svc := NewMatchService(nil, nil, nil, nil, nil)

	_, err := svc.RecordResult(context.Background(), 10, RecordResultInput{}, models.RoleViewer)
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}

func TestRecordResultRejectsNegativeScore(t *testing.T) {
	svc := NewMatchService(nil, nil, nil, nil, nil)

	input := RecordResultInput{HomeScore: -1, AwayScore: 0}
	_, err := svc.RecordResult(context.Background(), 10, input, models.RoleOrganizer)
	assert.ErrorIs(t, err, ErrMatchScoreNegative)
}

func TestRecordResultRejectsForeignTeamGoal(t *testing.T) {
	matches := &stubMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return scheduledMatch(id), nil
		},
	}
	svc := NewMatchService(nil, matches, nil, nil, nil)

	input := RecordResultInput{
		HomeScore: 1,
		AwayScore: 0,
		Goals:     []GoalInput{{TeamID: 99, PlayerID: 5, Minute: 12}},
	}
	_, err := svc.RecordResult(context.Background(), 10, input, models.RoleOrganizer)
	assert.ErrorIs(t, err, ErrGoalTeamNotInMatch)
}

func TestRecordResultReplacesGoalEvents(t *testing.T) {
	matches := &stubMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return scheduledMatch(id), nil
		},
		updateScoreStatusFn: func(ctx context.Context, exec repositories.SQLExecutor, id int, homeScore, awayScore *int, status models.MatchStatus) error {
			return nil
		},
	}

	// stored mimics the goals table so the test can see what a run
	// leaves behind.
	var calls []string
	var stored []models.Goal
	goalRepo := &stubGoalRepo{
		deleteByMatchFn: func(ctx context.Context, exec repositories.SQLExecutor, matchID int) error {
			calls = append(calls, "goals.delete")
			stored = stored[:0]
			return nil
		},
		createFn: func(ctx context.Context, exec repositories.SQLExecutor, goal *models.Goal) error {
			calls = append(calls, "goals.create")
			stored = append(stored, *goal)
			return nil
		},
	}
	tx := &stubTx{}
	svc := NewMatchService(&stubTxBeginner{tx: tx}, matches, goalRepo, nil, nil)

	first := RecordResultInput{
		HomeScore: 2,
		AwayScore: 0,
		Goals: []GoalInput{
			{TeamID: 1, PlayerID: 5, Minute: 12},
			{TeamID: 1, PlayerID: 7, Minute: 78},
		},
	}
	_, err := svc.RecordResult(context.Background(), 10, first, models.RoleOrganizer)
	require.NoError(t, err)

	firstRunLen := len(calls)

	// A correction: the second goal was awarded to the wrong player.
	second := RecordResultInput{
		HomeScore: 2,
		AwayScore: 0,
		Goals: []GoalInput{
			{TeamID: 1, PlayerID: 5, Minute: 12},
			{TeamID: 1, PlayerID: 9, Minute: 78},
		},
	}
	match, err := svc.RecordResult(context.Background(), 10, second, models.RoleOrganizer)
	require.NoError(t, err)

	// Each run deletes the previous events before inserting the new ones.
	for _, run := range [][]string{calls[:firstRunLen], calls[firstRunLen:]} {
		require.NotEmpty(t, run)
		assert.Equal(t, "goals.delete", run[0])
	}

	require.Len(t, stored, 2)
	assert.Equal(t, 5, stored[0].PlayerID)
	assert.Equal(t, 9, stored[1].PlayerID)

	require.NotNil(t, match.HomeScore)
	require.NotNil(t, match.AwayScore)
	assert.Equal(t, 2, *match.HomeScore)
	assert.Equal(t, 0, *match.AwayScore)
	assert.Equal(t, models.MatchStatusFinal, match.Status)
	require.Len(t, match.Goals, 2)
	assert.Equal(t, 9, match.Goals[1].PlayerID)
	assert.Equal(t, 2, tx.commits)
}

package services

import (
	"context"
	"testing"

	"github.com/Biagem01/TorneoLive-sub000/models"
	"github.com/Biagem01/TorneoLive-sub000/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterCreatesViewerWithConfirmationToken(t *testing.T) {
	var created *models.User
	users := &stubUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewAuthService(users)

	user, token, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Giulia",
		LastName:  "Ferrari",
		Email:     "giulia@example.com",
		Password:  "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, models.RoleViewer, user.Role)
	assert.False(t, user.EmailConfirmed)
	require.NotNil(t, user.EmailConfirmationToken)
	assert.Equal(t, token, *user.EmailConfirmationToken)
	assert.NotEmpty(t, token)

	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{})

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "giulia@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterMapsEmailConflict(t *testing.T) {
	users := &stubUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			return repositories.ErrUserEmailConflict
		},
	}
	svc := NewAuthService(users)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "taken@example.com",
		Password: "long enough",
	})
	assert.ErrorIs(t, err, ErrAuthEmailTaken)
}

func TestLoginVerifiesPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("topsecret1"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email != "marco@example.com" {
				return nil, repositories.ErrUserNotFound
			}
			return &models.User{ID: 5, Email: email, PasswordHash: string(hash), Role: models.RoleOrganizer}, nil
		},
	}
	svc := NewAuthService(users)

	user, err := svc.Login(context.Background(), LoginInput{Email: "marco@example.com", Password: "topsecret1"})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Login(context.Background(), LoginInput{Email: "marco@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "topsecret1"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestConfirmEmail(t *testing.T) {
	users := &stubUserRepo{
		getByConfirmTokenFn: func(ctx context.Context, token string) (*models.User, error) {
			switch token {
			case "valid-token":
				return &models.User{ID: 9}, nil
			case "already-confirmed":
				return &models.User{ID: 10, EmailConfirmed: true}, nil
			}
			return nil, repositories.ErrUserNotFound
		},
	}
	svc := NewAuthService(users)

	require.NoError(t, svc.ConfirmEmail(context.Background(), "valid-token"))
	assert.Equal(t, []int{9}, users.confirmedUserIDs)

	// Confirming twice is a no-op, not an error.
	require.NoError(t, svc.ConfirmEmail(context.Background(), "already-confirmed"))
	assert.Equal(t, []int{9}, users.confirmedUserIDs)

	assert.ErrorIs(t, svc.ConfirmEmail(context.Background(), "bogus"), ErrUserNotFound)
}

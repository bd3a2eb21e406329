package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/mock"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "taskflow-test",
	TokenDuration: time.Hour,
}

// newTestAuthSvc builds an authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAppConfig), repo
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Username)
			assert.Empty(t, user.Password)
			assert.NotEqual(t, "secret", user.PasswordHash)
			assert.True(t, utils.CheckPassword(user.PasswordHash, "secret"))

			user.UserID = 7
			return user, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "no username", credentials: models.Credentials{Password: "secret"}},
		{name: "no password", credentials: models.Credentials{Username: "alice"}},
		{name: "nothing", credentials: models.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)

			_, err := svc.RegisterUser(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestAuthService_RegisterUser_UsernameTooLong(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: strings.Repeat("a", 81),
		Password: "secret",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, validators.ErrUsernameTooLong)
}

func TestAuthService_RegisterUser_PasswordOverBcryptLimit(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "ascii", password: strings.Repeat("p", 73)},
		{name: "multibyte under 72 runes", password: strings.Repeat("ж", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)

			_, err := svc.RegisterUser(context.Background(), models.Credentials{
				Username: "alice",
				Password: tt.password,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
		})
	}
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 3, Username: "alice", PasswordHash: hash}, nil)

	user, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret")
	require.NoError(t, err)

	repo.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 3, Username: "alice", PasswordHash: hash}, nil)

	_, err = svc.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.Credentials{Username: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterThenLogin_SameUserID(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	var stored models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 11
			stored = user
			return user, nil
		},
	)
	repo.EXPECT().FindUserByUsername(ctx, "bob").DoAndReturn(
		func(context.Context, string) (models.User, error) {
			return stored, nil
		},
	)

	credentials := models.Credentials{Username: "bob", Password: "pa55word"}
	registered, err := svc.RegisterUser(ctx, credentials)
	require.NoError(t, err)

	verified, err := svc.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, verified.UserID)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	svc := NewAuthService(nil, config.App{TokenIssuer: "taskflow", TokenDuration: time.Hour})

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)
	foreignKey, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, time.Hour, "other-key")
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired.SignedString},
		{name: "wrong signature", token: foreignKey.SignedString},
		{name: "wrong issuer", token: foreignIssuer.SignedString},
		{name: "malformed", token: "not-a-jwt"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}

// ─────────────────────────────────────────────
// LinkChat
// ─────────────────────────────────────────────

func TestAuthService_LinkChat(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().SetChatLink(ctx, int64(5), "100200").Return(nil)

	require.NoError(t, svc.LinkChat(ctx, 5, "100200"))
}

func TestAuthService_LinkChat_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().SetChatLink(ctx, int64(404), "1").Return(store.ErrNoUserWasFound)

	err := svc.LinkChat(ctx, 404, "1")
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

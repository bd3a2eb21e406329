package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/utils"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/validators"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, chat linking and
// session token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks credential payloads before they reach the repository.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewTaskValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
	}
}

// RegisterUser creates a new user account.
//
// It validates the credentials, hashes the password with bcrypt and delegates
// persistence to the UserRepository. The plaintext password never leaves
// this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidInput wrapping ErrMissingCredentials if a field is empty.
//   - ErrInvalidInput wrapping the validator error for other violations.
//   - A wrapped store.ErrUsernameAlreadyExists if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("username or password is empty")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingCredentials)
	}
	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("credentials validation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	passwordHash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// Empty fields are reported the same way.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("username or password is empty")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("username", credentials.Username).Msg("user not found")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, credentials.Password) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrUnauthenticated so that callers cannot tell the cases
// apart.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrUnauthenticated
	}

	return token, nil
}

// LinkChat binds chatLinkID to the user, replacing any previous link.
// Returns a wrapped store.ErrNoUserWasFound for an unknown user.
func (a *authService) LinkChat(ctx context.Context, userID int64, chatLinkID string) error {
	if err := a.userRepository.SetChatLink(ctx, userID, chatLinkID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Str("chat_link_id", chatLinkID).
			Msg("chat link failed")
		return fmt.Errorf("chat link failed: %w", err)
	}

	return nil
}

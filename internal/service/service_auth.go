package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/store"
	"github.com/MKhiriev/go-video-vault/internal/utils"
	"github.com/MKhiriev/go-video-vault/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes, tokens are HS256 JWTs whose subject
// is the user id.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// bcryptCost is the work factor used for new password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository and
// configured from cfg. All state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if the e-mail or the password is empty.
//   - ErrInvalidCredentials if no account has the e-mail or the password
//     does not match.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Warn().Str("email", email).Msg("login with empty email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(user.PasswordHash, credentials.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString and loads the user it was issued to.
//
// A missing, malformed, expired or foreign token, and a subject that no
// longer resolves to a user, are all reported as ErrUnauthenticated.
func (a *authService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, ErrUnauthenticated
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("user_id", token.UserID).Msg("token subject no longer exists")
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// EnsureUser returns the account registered under credentials.Email and
// creates it, hashing the password, when it does not exist yet.
func (a *authService) EnsureUser(ctx context.Context, credentials models.Credentials) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return models.User{}, false, ErrInvalidDataProvided
	}

	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		return models.User{}, false, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := models.NewUser(email, hash)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// created concurrently
		existing, err = a.userRepository.FindUserByEmail(ctx, email)
		if err != nil {
			return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, false, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")

	return created, true, nil
}

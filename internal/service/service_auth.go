package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/data-catalog/internal/config"
	"github.com/MKhiriev/data-catalog/internal/logger"
	"github.com/MKhiriev/data-catalog/internal/store"
	"github.com/MKhiriev/data-catalog/internal/utils"
	"github.com/MKhiriev/data-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are verified against bcrypt hashes from the user database and
// tokens are HS256 JWTs whose subject is the username.
type authService struct {
	// userRepository is the JSON user database.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate returns [ErrInvalidDataProvided] for empty credentials and
// [ErrWrongCredentials] for an unknown user or a wrong password; the two
// failures are not distinguished.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.Get(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("user", username).Msg("login attempt for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		log.Debug().Str("user", username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user.User, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and loads its user, so that
// deleted users and revoked secrets access take effect immediately. Any
// failure is normalised to [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.Get(ctx, token.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user", token.Username).Msg("token subject is not a known user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user.User, nil
}

func (a *authService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidDataProvided
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

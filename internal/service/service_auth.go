// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT token
// lifecycle, using a UserRepository for persistence and bcrypt for password
// hashing. Access and refresh tokens are signed with two different secrets so
// that one kind can never be replayed as the other.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// accessTokenSignKey signs and verifies short-lived access tokens.
	accessTokenSignKey string

	// refreshTokenSignKey signs and verifies long-lived refresh tokens.
	refreshTokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenDuration and refreshTokenDuration control how long each
	// token kind remains valid after issue.
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		accessTokenSignKey:   cfg.AccessTokenSignKey,
		refreshTokenSignKey:  cfg.RefreshTokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// Register creates a new account.
//
// The plain-text password is hashed with bcrypt before anything touches the
// repository, so the plain text never leaves this method. New accounts start
// with the default settings.
//
// Returns the persisted user (with a server-assigned UserID) and its first
// token pair, or:
//   - ErrInvalidDataProvided if email, name or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Name == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	// Emails are stored lower-cased so that the unique index treats
	// "Ivan@example.com" and "ivan@example.com" as the same account.
	user.Email = strings.ToLower(user.Email)

	passwordHash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash
	user.Settings = models.DefaultSettings()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	tokenPair, err := a.createTokenPair(registeredUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("token pair creation failed")
		return models.User{}, models.TokenPair{}, err
	}

	return registeredUser, tokenPair, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the stored bcrypt hash with
// the supplied password. An unknown email and a wrong password both surface
// as ErrInvalidCredentials: the response never tells which half was wrong.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	if err := utils.ComparePassword(foundUser.PasswordHash, password); err != nil {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrInvalidCredentials
	}

	tokenPair, err := a.createTokenPair(foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token pair creation failed")
		return models.User{}, models.TokenPair{}, err
	}

	foundUser.PasswordHash = ""
	return foundUser, tokenPair, nil
}

// Refresh exchanges a valid refresh token for a brand-new token pair. The old
// refresh token keeps working until it expires; rotation here only extends
// the session.
//
// Returns ErrInvalidRefreshToken when the token is expired, malformed, signed
// with the wrong secret, or references an account that no longer exists.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("refresh token validation failed")
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	userID := token.UserID
	if _, err := a.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("refresh token references an unknown user")
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	tokenPair, err := a.createTokenPair(userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("token pair creation failed")
		return models.TokenPair{}, err
	}

	return tokenPair, nil
}

// ParseAccessToken validates and parses a raw access token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed,
// refresh token passed as access token) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetUserByID loads the account behind an authenticated request.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// createTokenPair mints an access/refresh token pair for the given user, each
// signed with its own secret and lifetime.
func (a *authService) createTokenPair(userID int64) (models.TokenPair, error) {
	accessToken, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.accessTokenDuration, a.accessTokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.refreshTokenDuration, a.refreshTokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
	}, nil
}

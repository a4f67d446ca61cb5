package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every login failure: unknown email and
	// wrong password are indistinguishable to the caller on purpose.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
)

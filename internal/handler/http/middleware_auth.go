package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it as an access token, loads the account it belongs to, and — on
// success — stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]),
//   - the header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]),
//   - the token is expired, malformed, signed with the wrong secret, or is
//     a refresh token presented in place of an access token,
//   - the account behind the token no longer exists.
//
// Every rejection carries the same response body, so a caller cannot probe
// which of the checks failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("access token rejected")
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		// A valid token for a deleted account is still a dead credential.
		currentUser, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("token references an unknown user")
			writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

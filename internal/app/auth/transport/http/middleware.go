package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/auth"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/lexnotes/journal/internal/infrastructure/httpx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
)

//go:generate minimock -i github.com/lexnotes/journal/internal/app/auth/transport/http.TokenCodec -o ./mocks -s _mock.go
type TokenCodec interface {
	ParseToken(tokenStr string, claims jwt.Claims) error
}

// AuthMiddleware parses and validates the JWT from the Authorization header
// and puts the actor id and roles into the request context.
func AuthMiddleware(codec TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				err := apperr.ErrUnauthorized().WithDetail("missing or malformed Authorization header")
				logger.Error(ctx, err).
					Msg("auth.AuthMiddleware: invalid Authorization header")
				httpx.ReturnError(ctx, w, err)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims := auth.AccessTokenClaims{}
			err := codec.ParseToken(tokenStr, &claims)
			if err != nil {
				logger.Error(ctx, err).
					Msg("auth.AuthMiddleware: invalid token")
				httpx.ReturnError(ctx, w, apperr.ErrUnauthorized())
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn(ctx, err).
					Str("subject", claims.Subject).
					Msg("auth.AuthMiddleware: invalid token claims.Subject")
				httpx.ReturnError(ctx, w, apperr.ErrUnauthorized())
				return
			}
			if userID == uuid.Nil {
				err = apperr.ErrUnauthorized().WithDetail("invalid token claims.Subject")
				logger.Error(ctx, err).
					Msg("auth.AuthMiddleware: invalid token claims.Subject")
				httpx.ReturnError(ctx, w, err)
				return
			}

			if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now().UTC()) {
				err = apperr.ErrUnauthorized().WithDetail("token is expired")
				logger.Error(ctx, err).
					Msg("auth.AuthMiddleware: token is expired")
				httpx.ReturnError(ctx, w, err)
				return
			}

			ctx = contextx.SetUserID(ctx, userID)
			ctx = contextx.SetUserRoles(ctx, claims.Roles)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware enriches the context with the actor when a valid
// token is present and passes the request through anonymously otherwise.
// Public read endpoints use it so authenticated callers see their own
// unpublished work.
func OptionalAuthMiddleware(codec TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims := auth.AccessTokenClaims{}
			if err := codec.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), &claims); err != nil {
				logger.Warn(ctx, err).Msg("auth.OptionalAuthMiddleware: invalid token, proceeding anonymously")
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil || userID == uuid.Nil ||
				claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now().UTC()) {
				next.ServeHTTP(w, r)
				return
			}

			ctx = contextx.SetUserID(ctx, userID)
			ctx = contextx.SetUserRoles(ctx, claims.Roles)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/auth"
	auth_http "github.com/lexnotes/journal/internal/app/auth/transport/http"
	"github.com/lexnotes/journal/internal/app/auth/transport/http/mocks"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func validClaims(userID uuid.UUID, roles []string) func(tokenStr string, claims jwt.Claims) error {
	return func(_ string, claims jwt.Claims) error {
		c, ok := claims.(*auth.AccessTokenClaims)
		if !ok {
			return fmt.Errorf("unexpected claims type %T", claims)
		}
		c.Subject = userID.String()
		c.Roles = roles
		c.ExpiresAt = jwt.NewNumericDate(time.Now().UTC().Add(5 * time.Minute))
		return nil
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	roles := []string{"admin", "editor"}
	tests := []struct {
		name       string
		header     string
		setup      func(mock *mocks.TokenCodecMock)
		wantStatus int
	}{
		{
			name:       "missing_authorization",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_authorization",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "parse_failed",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Expect("token", &auth.AccessTokenClaims{}).Return(fmt.Errorf("bad token"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "subject_not_uuid",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(func(_ string, claims jwt.Claims) error {
					c, ok := claims.(*auth.AccessTokenClaims)
					if !ok {
						return fmt.Errorf("unexpected claims type %T", claims)
					}
					c.Subject = "not-uuid"
					return nil
				})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "subject_nil_uuid",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(func(_ string, claims jwt.Claims) error {
					c, ok := claims.(*auth.AccessTokenClaims)
					if !ok {
						return fmt.Errorf("unexpected claims type %T", claims)
					}
					c.Subject = uuid.Nil.String()
					return nil
				})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired_token",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(func(_ string, claims jwt.Claims) error {
					c, ok := claims.(*auth.AccessTokenClaims)
					if !ok {
						return fmt.Errorf("unexpected claims type %T", claims)
					}
					c.Subject = userID.String()
					c.ExpiresAt = jwt.NewNumericDate(time.Now().UTC().Add(-5 * time.Minute))
					return nil
				})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "success",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(validClaims(userID, roles))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				gotUserID uuid.UUID
				gotRoles  []string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = contextx.GetUserID(r.Context())
				gotRoles, _ = contextx.GetUserRoles(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mock := mocks.NewTokenCodecMock(t)
			if tc.setup != nil {
				tc.setup(mock)
			}
			r := chi.NewRouter()
			r.Use(auth_http.AuthMiddleware(mock))
			r.Get("/protected", next)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				require.Equal(t, userID, gotUserID)
				require.Equal(t, roles, gotRoles)
			} else {
				require.NotEmpty(t, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	roles := []string{"author"}
	tests := []struct {
		name      string
		header    string
		setup     func(mock *mocks.TokenCodecMock)
		wantActor bool
	}{
		{
			name:   "no_header_proceeds_anonymously",
			header: "",
		},
		{
			name:   "invalid_token_proceeds_anonymously",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Expect("token", &auth.AccessTokenClaims{}).Return(fmt.Errorf("bad token"))
			},
		},
		{
			name:   "expired_token_proceeds_anonymously",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(func(_ string, claims jwt.Claims) error {
					c, ok := claims.(*auth.AccessTokenClaims)
					if !ok {
						return fmt.Errorf("unexpected claims type %T", claims)
					}
					c.Subject = userID.String()
					c.ExpiresAt = jwt.NewNumericDate(time.Now().UTC().Add(-5 * time.Minute))
					return nil
				})
			},
		},
		{
			name:   "valid_token_populates_actor",
			header: "Bearer token",
			setup: func(mock *mocks.TokenCodecMock) {
				mock.ParseTokenMock.Set(validClaims(userID, roles))
			},
			wantActor: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				gotUserID uuid.UUID
				gotRoles  []string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = contextx.GetUserID(r.Context())
				gotRoles, _ = contextx.GetUserRoles(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mock := mocks.NewTokenCodecMock(t)
			if tc.setup != nil {
				tc.setup(mock)
			}
			r := chi.NewRouter()
			r.Use(auth_http.OptionalAuthMiddleware(mock))
			r.Get("/public", next)

			req := httptest.NewRequest(http.MethodGet, "/public", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tc.wantActor {
				require.Equal(t, userID, gotUserID)
				require.Equal(t, roles, gotRoles)
			} else {
				require.Equal(t, uuid.Nil, gotUserID)
				require.Empty(t, gotRoles)
			}
		})
	}
}

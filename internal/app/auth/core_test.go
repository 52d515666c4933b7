package auth_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/auth"
	"github.com/lexnotes/journal/internal/app/auth/mocks"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
	"github.com/stretchr/testify/require"
)

type mock struct {
	users   *mocks.UserServiceMock
	codec   *mocks.TokenCodecMock
	checker *mocks.PasswordCheckerMock
	timeGen *mocks.TimeGeneratorMock
}

func newMock(t *testing.T) mock {
	return mock{
		users:   mocks.NewUserServiceMock(t),
		codec:   mocks.NewTokenCodecMock(t),
		checker: mocks.NewPasswordCheckerMock(t),
		timeGen: mocks.NewTimeGeneratorMock(t),
	}
}

func cfg() auth.Config {
	return auth.Config{AccessTokenTTLMinutes: 15}
}

func TestCore_Login(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		userID   = uuid.New()
		now      = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		email    = "editor@journal.example"
		password = []byte("pa$$word1234")
		hash     = "bcrypt-hash"
		u        = user.User{ID: userID, Email: email, Roles: []user.Role{user.RoleAuthor, user.RoleEditor}}
		expErr   = errors.New("expected error")
	)

	tests := []struct {
		name    string
		setup   func(m mock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m mock) {
				m.users.GetUserByEmailMock.Expect(ctx, email).Return(u, hash, nil)
				m.checker.CheckPasswordHashMock.Expect(password, hash).Return(nil)
				m.timeGen.NowMock.Return(now)
				m.codec.GenerateTokenMock.Set(func(claims jwt.Claims) (string, error) {
					tokenClaims, ok := claims.(auth.AccessTokenClaims)
					require.True(t, ok)
					require.Equal(t, userID.String(), tokenClaims.Subject)
					require.Equal(t, []string{"author", "editor"}, tokenClaims.Roles)
					require.Equal(t, now.Add(15*time.Minute), tokenClaims.ExpiresAt.Time)
					return "signed-token", nil
				})
			},
		},
		{
			name: "error/unknown_email",
			setup: func(m mock) {
				m.users.GetUserByEmailMock.Expect(ctx, email).Return(user.User{}, "", user.ErrUserNotFound())
			},
			wantErr: auth.ErrInvalidCredentials(),
		},
		{
			name: "error/wrong_password",
			setup: func(m mock) {
				m.users.GetUserByEmailMock.Expect(ctx, email).Return(u, hash, nil)
				m.checker.CheckPasswordHashMock.Expect(password, hash).Return(secure.ErrMismatchedHashAndPassword)
			},
			wantErr: auth.ErrInvalidCredentials(),
		},
		{
			name: "error/codec",
			setup: func(m mock) {
				m.users.GetUserByEmailMock.Expect(ctx, email).Return(u, hash, nil)
				m.checker.CheckPasswordHashMock.Expect(password, hash).Return(nil)
				m.timeGen.NowMock.Return(now)
				m.codec.GenerateTokenMock.Set(func(_ jwt.Claims) (string, error) {
					return "", expErr
				})
			},
			wantErr: expErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			tt.setup(m)

			core, err := auth.NewCore(m.users, m.codec, m.checker, m.timeGen, cfg())
			require.NoError(t, err)

			resp, err := core.Login(ctx, auth.LoginReq{Email: email, Password: password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "signed-token", resp.AccessToken)
		})
	}
}

func TestNewCore(t *testing.T) {
	t.Parallel()

	m := newMock(t)

	_, err := auth.NewCore(nil, m.codec, m.checker, m.timeGen, cfg())
	require.Error(t, err)

	_, err = auth.NewCore(m.users, m.codec, m.checker, m.timeGen, auth.Config{})
	require.Error(t, err)

	_, err = auth.NewCore(m.users, m.codec, m.checker, m.timeGen, cfg())
	require.NoError(t, err)
}

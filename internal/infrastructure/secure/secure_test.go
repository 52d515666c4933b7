package secure_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lexnotes/journal/internal/infrastructure/secure"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	t.Parallel()

	hasher := secure.NewPasswordHasher()

	hash, err := hasher.HashPassword([]byte("correct horse battery staple"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	err = hasher.CheckPasswordHash([]byte("correct horse battery staple"), string(hash))
	require.NoError(t, err)

	err = hasher.CheckPasswordHash([]byte("wrong password"), string(hash))
	require.ErrorIs(t, err, secure.ErrMismatchedHashAndPassword)
}

func TestPasswordHasher_ZeroesInput(t *testing.T) {
	t.Parallel()

	hasher := secure.NewPasswordHasher()
	password := []byte("sensitive")

	_, err := hasher.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	for _, b := range password {
		require.Zero(t, b)
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := secure.NewTokenCodec([]byte("test-secret"))

	claims := jwt.RegisteredClaims{
		Subject:   "8b2f3a60-0000-7000-8000-000000000001",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tokenStr, err := codec.GenerateToken(claims)
	require.NoError(t, err)

	parsed := jwt.RegisteredClaims{}
	err = codec.ParseToken(tokenStr, &parsed)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	codec := secure.NewTokenCodec([]byte("secret-one"))
	other := secure.NewTokenCodec([]byte("secret-two"))

	tokenStr, err := codec.GenerateToken(jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	err = other.ParseToken(tokenStr, &jwt.RegisteredClaims{})
	require.Error(t, err)
}

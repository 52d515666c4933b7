package auth

import (
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
)

const (
	CodeInvalidCredentials apperr.Code = "auth/invalid_credentials"
)

// ErrInvalidCredentials deliberately hides whether the email or the password
// was wrong.
func ErrInvalidCredentials() error {
	return apperr.New("Invalid email or password", CodeInvalidCredentials, apperr.ClassUnauthorized, apperr.LogLevelWarn)
}

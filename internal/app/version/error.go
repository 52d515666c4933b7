package version

import (
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
)

const (
	CodeValidationFailed apperr.Code = "version/validation_failed"
	CodeNotFound         apperr.Code = "version/not_found"
)

const (
	FieldVersionID apperr.Field = "version_id"
	FieldArticleID apperr.Field = "article_id"
	FieldRole      apperr.Field = "role"
	FieldFormat    apperr.Field = "format"
	FieldURL       apperr.Field = "url"
)

func ErrInvalidRole() error {
	return apperr.New("Invalid version role", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldRole, Rule: apperr.RuleInvalidFormat,
		})
}

func ErrInvalidFormat() error {
	return apperr.New("Invalid document format", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldFormat, Rule: apperr.RuleInvalidFormat,
		})
}

func ErrEmptyURL() error {
	return apperr.New("Document URL cannot be empty", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldURL, Rule: apperr.RuleRequired,
		})
}

func ErrVersionNotFound() error {
	return apperr.New("Document version not found", CodeNotFound, apperr.ClassNotFound, apperr.LogLevelWarn)
}

package changelog

import (
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
)

const (
	CodeValidationFailed apperr.Code = "changelog/validation_failed"
	CodeNotFound         apperr.Code = "changelog/not_found"
	CodeDiffNotComputed  apperr.Code = "changelog/diff_not_computed"
)

const (
	FieldEntryID   apperr.Field = "entry_id"
	FieldArticleID apperr.Field = "article_id"
	FieldRole      apperr.Field = "role"
	FieldActorID   apperr.Field = "actor_id"
)

func ErrInvalidRole() error {
	return apperr.New("Invalid change-log role", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldRole, Rule: apperr.RuleInvalidFormat,
		})
}

func ErrEntryNotFound() error {
	return apperr.New("Change-log entry not found", CodeNotFound, apperr.ClassNotFound, apperr.LogLevelWarn)
}

// ErrDiffNotComputed marks an entry whose diff summary has not been produced
// yet, either because processing is still running or because it failed.
func ErrDiffNotComputed() error {
	return apperr.New("Diff has not been computed for this entry", CodeDiffNotComputed, apperr.ClassNotFound, apperr.LogLevelWarn)
}

package article

import (
	"fmt"

	"github.com/lexnotes/journal/internal/infrastructure/apperr"
)

const (
	CodeValidationFailed   apperr.Code = "article/validation_failed"
	CodeNotFound           apperr.Code = "article/not_found"
	CodeInvalidTransition  apperr.Code = "article/invalid_transition"
	CodeNotAssigned        apperr.Code = "article/not_assigned"
	CodeNoCorrectedVersion apperr.Code = "article/no_corrected_version"
	CodeCitationDuplicate  apperr.Code = "article/citation_duplicate"
	CodeCitationRequired   apperr.Code = "article/citation_required"
	CodeSlugDuplicate      apperr.Code = "article/slug_duplicate"
	CodeVerificationFailed apperr.Code = "article/verification_failed"
)

const (
	FieldArticleID  apperr.Field = "article_id"
	FieldAssigneeID apperr.Field = "assignee_id"
	FieldTitle      apperr.Field = "title"
	FieldAbstract   apperr.Field = "abstract"
	FieldAuthorName apperr.Field = "author_name"
	FieldEmail      apperr.Field = "author_email"
	FieldFileURL    apperr.Field = "file_url"
	FieldCitation   apperr.Field = "citation_number"
	FieldStatus     apperr.Field = "status"
	FieldCode       apperr.Field = "code"
)

// Validation errors

func ErrTitleEmpty() error {
	return apperr.New("Title cannot be empty", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldTitle, Rule: apperr.RuleRequired,
		})
}

func ErrTitleTooLong(max int) error {
	return apperr.New("Title is too long", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldTitle, Rule: apperr.RuleTooLong, Params: map[string]any{"max": max},
		})
}

func ErrAbstractTooLong(max int) error {
	return apperr.New("Abstract is too long", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldAbstract, Rule: apperr.RuleTooLong, Params: map[string]any{"max": max},
		})
}

func ErrAuthorNameEmpty() error {
	return apperr.New("Author name cannot be empty", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldAuthorName, Rule: apperr.RuleRequired,
		})
}

func ErrInvalidAuthorEmail() error {
	return apperr.New("Invalid author email", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldEmail, Rule: apperr.RuleInvalidFormat,
		})
}

func ErrFileURLRequired() error {
	return apperr.New("Both PDF and DOCX uploads are required", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldFileURL, Rule: apperr.RuleRequired,
		})
}

// ErrInvalidCitationFormat rejects citation numbers that do not match the
// journal scheme, e.g. "2025 LN(3)A12".
func ErrInvalidCitationFormat() error {
	return apperr.New("Citation number must look like 2025 LN(3)A12", CodeValidationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldCitation, Rule: apperr.RuleInvalidFormat,
		})
}

// Business logic errors

func ErrArticleNotFound() error {
	return apperr.New("Article not found", CodeNotFound, apperr.ClassNotFound, apperr.LogLevelWarn)
}

// ErrInvalidTransition reports an action fired in a status that does not
// permit it. The current status rides along so clients can resync.
func ErrInvalidTransition(action Action, status Status) error {
	return apperr.New(
		fmt.Sprintf("Action %s is not allowed while the article is %s", action, status),
		CodeInvalidTransition, apperr.ClassConflict, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldStatus, Rule: apperr.RuleInvalidState,
			Params: map[string]any{"action": action.String(), "status": status.String()},
		})
}

// ErrNotAssigned rejects a participant acting on an article assigned to
// someone else.
func ErrNotAssigned() error {
	return apperr.New("Article is assigned to another user", CodeNotAssigned, apperr.ClassForbidden, apperr.LogLevelWarn)
}

// ErrNoCorrectedVersion blocks approval before any corrected document exists.
func ErrNoCorrectedVersion() error {
	return apperr.New("No corrected document has been uploaded yet", CodeNoCorrectedVersion, apperr.ClassConflict, apperr.LogLevelWarn)
}

// ErrDuplicateCitation carries the title of the article already holding the
// citation number.
func ErrDuplicateCitation(conflictingTitle string) error {
	return apperr.New(
		fmt.Sprintf("Citation number already used by %q", conflictingTitle),
		CodeCitationDuplicate, apperr.ClassConflict, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldCitation, Rule: apperr.RuleDuplicate,
			Params: map[string]any{"conflicting_title": conflictingTitle},
		})
}

// ErrCitationRequired blocks publication until a citation number is set.
func ErrCitationRequired() error {
	return apperr.New("A citation number must be set before publishing", CodeCitationRequired, apperr.ClassConflict, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldCitation, Rule: apperr.RuleRequired,
		})
}

func ErrSlugDuplicate() error {
	return apperr.New("An article with this title already exists", CodeSlugDuplicate, apperr.ClassConflict, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldTitle, Rule: apperr.RuleDuplicate,
		})
}

// Guest verification errors

func ErrVerificationCodeInvalid() error {
	return apperr.New("Verification code is invalid or already used", CodeVerificationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldCode, Rule: apperr.RuleMismatch,
		})
}

func ErrVerificationCodeExpired() error {
	return apperr.New("Verification code has expired", CodeVerificationFailed, apperr.ClassBadRequest, apperr.LogLevelWarn).
		WithViolation(apperr.Violation{
			Field: FieldCode, Rule: apperr.RuleExpired,
		})
}

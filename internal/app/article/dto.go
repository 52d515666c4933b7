package article

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/version"
)

// Status is the workflow state of a submission. published, rejected and
// deleted are terminal; no action ever leaves them.
type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusPendingAdminReview  Status = "pending_admin_review"
	StatusAssignedToEditor    Status = "assigned_to_editor"
	StatusEditorInProgress    Status = "editor_in_progress"
	StatusEditorApproved      Status = "editor_approved"
	StatusAssignedToReviewer  Status = "assigned_to_reviewer"
	StatusReviewerInProgress  Status = "reviewer_in_progress"
	StatusReviewerApproved    Status = "reviewer_approved"
	StatusPublished           Status = "published"
	StatusRejected            Status = "rejected"
	StatusDeleted             Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendingVerification, StatusPendingAdminReview, StatusAssignedToEditor,
		StatusEditorInProgress, StatusEditorApproved, StatusAssignedToReviewer,
		StatusReviewerInProgress, StatusReviewerApproved, StatusPublished,
		StatusRejected, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	switch s {
	case StatusPublished, StatusRejected, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Action names a workflow transition for the legality table and error payloads.
type Action string

const (
	ActionAssignEditor             Action = "assign_editor"
	ActionUploadEditorCorrection   Action = "upload_editor_correction"
	ActionEditorApprove            Action = "editor_approve"
	ActionAssignReviewer           Action = "assign_reviewer"
	ActionUploadReviewerCorrection Action = "upload_reviewer_correction"
	ActionReviewerApprove          Action = "reviewer_approve"
	ActionSetCitation              Action = "set_citation"
	ActionPublish                  Action = "publish"
	ActionReject                   Action = "reject"
	ActionReassignEditor           Action = "reassign_editor"
	ActionReassignReviewer         Action = "reassign_reviewer"
	ActionDelete                   Action = "delete"
)

func (a Action) String() string { return string(a) }

type Article struct {
	ID                 uuid.UUID  `json:"id"`
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Abstract           string     `json:"abstract"`
	AuthorName         string     `json:"author_name"`
	AuthorEmail        string     `json:"author_email"`
	AuthorUserID       *uuid.UUID `json:"author_user_id,omitempty"`
	Status             Status     `json:"status"`
	AssignedEditorID   *uuid.UUID `json:"assigned_editor_id,omitempty"`
	AssignedReviewerID *uuid.UUID `json:"assigned_reviewer_id,omitempty"`
	CitationNumber     *string    `json:"citation_number,omitempty"`
	OriginalPDFURL     string     `json:"original_pdf_url"`
	OriginalDOCXURL    string     `json:"original_docx_url"`
	CurrentPDFURL      string     `json:"current_pdf_url"`
	CurrentDOCXURL     string     `json:"current_docx_url"`
	PublishedAt        *time.Time `json:"published_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Actor is the authenticated principal a transition runs as.
type Actor struct {
	ID    uuid.UUID
	Roles []user.Role
}

func (a Actor) IsAdmin() bool {
	return user.HasRole(a.Roles, user.RoleAdmin)
}

// AssignmentRole picks one of the two assignment history tables.
type AssignmentRole string

const (
	AssignmentEditor   AssignmentRole = "editor"
	AssignmentReviewer AssignmentRole = "reviewer"
)

// Assignment is one row of an assignment history. UnassignedAt is nil while
// the assignment is open; at most one open row exists per article and role.
type Assignment struct {
	ID           uuid.UUID      `json:"id"`
	ArticleID    uuid.UUID      `json:"article_id"`
	Role         AssignmentRole `json:"role"`
	UserID       uuid.UUID      `json:"user_id"`
	AssignedBy   uuid.UUID      `json:"assigned_by"`
	AssignedAt   time.Time      `json:"assigned_at"`
	UnassignedAt *time.Time     `json:"unassigned_at,omitempty"`
}

type SubmitReq struct {
	Title        string     `json:"title"`
	Abstract     string     `json:"abstract"`
	AuthorName   string     `json:"author_name"`
	AuthorEmail  string     `json:"author_email"`
	AuthorUserID *uuid.UUID `json:"author_user_id,omitempty"`
	PDFURL       string     `json:"pdf_url"`
	DOCXURL      string     `json:"docx_url"`
}

type AssignReq struct {
	ArticleID  uuid.UUID `json:"article_id"`
	AssigneeID uuid.UUID `json:"assignee_id"`
	Comments   string    `json:"comments"`
}

type UploadCorrectionReq struct {
	ArticleID uuid.UUID      `json:"article_id"`
	FileURL   string         `json:"file_url"`
	Format    version.Format `json:"format"`
	Comments  string         `json:"comments"`
}

type ApproveReq struct {
	ArticleID uuid.UUID `json:"article_id"`
	Comments  string    `json:"comments"`
}

type SetCitationReq struct {
	ArticleID      uuid.UUID `json:"article_id"`
	CitationNumber string    `json:"citation_number"`
}

type PublishReq struct {
	ArticleID uuid.UUID `json:"article_id"`
	// Optional admin-edited upload applied right before publication.
	FileURL  string         `json:"file_url,omitempty"`
	Format   version.Format `json:"format,omitempty"`
	Comments string         `json:"comments"`
}

// TransitionResult carries everything post-commit processing needs: the
// article as committed, versions recorded by the transition and the
// change-log entry awaiting a diff.
type TransitionResult struct {
	Article  Article
	Versions []version.DocumentVersion
	Entry    *changelog.Entry
}

// ListFilter narrows List to what the caller may see. Zero value means
// published articles only.
type ListFilter struct {
	All        bool
	AuthorID   *uuid.UUID
	AssigneeID *uuid.UUID
	Status     *Status
}

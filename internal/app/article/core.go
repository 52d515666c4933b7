package article

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// citationRe matches the journal's citation scheme: year, series, article
// number, e.g. "2025 LN(3)A12".
var citationRe = regexp.MustCompile(`^\d{4} LN\(\d+\)A\d+$`)

// allowedFrom is the transition legality table. An action fired in a status
// not listed here fails with ErrInvalidTransition before anything is written.
// ActionDelete is handled separately: it is legal from every non-terminal
// status.
var allowedFrom = map[Action]map[Status]bool{
	ActionAssignEditor:             {StatusPendingAdminReview: true},
	ActionUploadEditorCorrection:   {StatusAssignedToEditor: true, StatusEditorInProgress: true},
	ActionEditorApprove:            {StatusEditorInProgress: true},
	ActionAssignReviewer:           {StatusEditorApproved: true},
	ActionUploadReviewerCorrection: {StatusAssignedToReviewer: true, StatusReviewerInProgress: true},
	ActionReviewerApprove:          {StatusReviewerInProgress: true},
	ActionSetCitation:              {StatusReviewerApproved: true},
	ActionPublish:                  {StatusReviewerApproved: true},
	ActionReject:                   {StatusPendingAdminReview: true},
	// Reassignment is legal in every non-terminal status that holds the
	// assignment: the editor stays on record after approving, the reviewer
	// after approving, and either can be swapped until the article leaves
	// the workflow.
	ActionReassignEditor: {
		StatusAssignedToEditor: true, StatusEditorInProgress: true, StatusEditorApproved: true,
		StatusAssignedToReviewer: true, StatusReviewerInProgress: true, StatusReviewerApproved: true,
	},
	ActionReassignReviewer: {
		StatusAssignedToReviewer: true, StatusReviewerInProgress: true, StatusReviewerApproved: true,
	},
}

// CanTransition reports whether the action is legal in the given status.
func CanTransition(action Action, status Status) bool {
	if action == ActionDelete {
		return !status.Terminal()
	}
	return allowedFrom[action][status]
}

type Repository interface {
	Create(ctx context.Context, tx tx.Transaction, a Article) error
	Get(ctx context.Context, id uuid.UUID) (Article, error)
	GetBySlug(ctx context.Context, slug string) (Article, error)
	// GetForUpdate locks the article row for the rest of the transaction.
	GetForUpdate(ctx context.Context, tx tx.Transaction, id uuid.UUID) (Article, error)
	Update(ctx context.Context, tx tx.Transaction, a Article) error
	// SetCitation maps a uniqueness violation to ErrDuplicateCitation carrying
	// the holder's title.
	SetCitation(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) error
	Delete(ctx context.Context, tx tx.Transaction, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter) ([]Article, error)
}

type AssignmentRepository interface {
	Open(ctx context.Context, tx tx.Transaction, a Assignment) error
	CloseOpen(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role AssignmentRole, at time.Time) error
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]Assignment, error)
}

type VersionService interface {
	Record(ctx context.Context, tx tx.Transaction, req version.RecordReq) (version.DocumentVersion, error)
	LatestFor(ctx context.Context, articleID uuid.UUID, role version.Role) (version.DocumentVersion, error)
}

type ChangelogService interface {
	Append(ctx context.Context, tx tx.Transaction, req changelog.AppendReq) (changelog.Entry, error)
}

type UserService interface {
	RequireRole(ctx context.Context, id uuid.UUID, role user.Role) error
}

type IDGenerator interface {
	New() (uuid.UUID, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type Config struct {
	MaxTitleLength    int `mapstructure:"max_title_length" json:"max_title_length"`
	MaxAbstractLength int `mapstructure:"max_abstract_length" json:"max_abstract_length"`
}

type core struct {
	repo        Repository
	assignments AssignmentRepository
	versions    VersionService
	entries     ChangelogService
	users       UserService
	tx          tx.Transaction
	idGen       IDGenerator
	timeGen     TimeGenerator
	cfg         Config
}

func NewCore(
	repo Repository,
	assignments AssignmentRepository,
	versions VersionService,
	entries ChangelogService,
	users UserService,
	txm tx.Transaction,
	idGen IDGenerator,
	timeGen TimeGenerator,
	cfg Config,
) (*core, error) {
	if repo == nil || assignments == nil || versions == nil || entries == nil ||
		users == nil || txm == nil || idGen == nil || timeGen == nil {
		return nil, fmt.Errorf("article.NewCore: %w", fmt.Errorf("nil dependency"))
	}
	if cfg.MaxTitleLength <= 0 {
		return nil, fmt.Errorf("article.NewCore: %w", fmt.Errorf("Config.MaxTitleLength must be > 0"))
	}
	if cfg.MaxAbstractLength <= 0 {
		return nil, fmt.Errorf("article.NewCore: %w", fmt.Errorf("Config.MaxAbstractLength must be > 0"))
	}

	return &core{
		repo:        repo,
		assignments: assignments,
		versions:    versions,
		entries:     entries,
		users:       users,
		tx:          txm,
		idGen:       idGen,
		timeGen:     timeGen,
		cfg:         cfg,
	}, nil
}

// Submit creates an article in pending_admin_review and records both ORIGINAL
// artifacts. The original URLs never change afterwards.
func (c *core) Submit(ctx context.Context, req SubmitReq) (TransitionResult, error) {
	if err := c.validateSubmission(req); err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.Submit: %w", err)
	}

	id, err := c.idGen.New()
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.Submit: %w", err)
	}

	now := c.timeGen.Now()
	a := Article{
		ID:              id,
		Slug:            Slugify(req.Title),
		Title:           strings.TrimSpace(req.Title),
		Abstract:        strings.TrimSpace(req.Abstract),
		AuthorName:      strings.TrimSpace(req.AuthorName),
		AuthorEmail:     strings.TrimSpace(strings.ToLower(req.AuthorEmail)),
		AuthorUserID:    req.AuthorUserID,
		Status:          StatusPendingAdminReview,
		OriginalPDFURL:  req.PDFURL,
		OriginalDOCXURL: req.DOCXURL,
		CurrentPDFURL:   req.PDFURL,
		CurrentDOCXURL:  req.DOCXURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	producedBy := id
	if req.AuthorUserID != nil {
		producedBy = *req.AuthorUserID
	}

	var recorded []version.DocumentVersion
	err = c.tx.Transaction(func(tx tx.Transaction) error {
		if err := c.repo.Create(ctx, tx, a); err != nil {
			return err
		}
		pdf, err := c.versions.Record(ctx, tx, version.RecordReq{
			ArticleID: id, Role: version.RoleOriginal, Format: version.FormatPDF,
			URL: req.PDFURL, ProducedBy: producedBy,
		})
		if err != nil {
			return err
		}
		docx, err := c.versions.Record(ctx, tx, version.RecordReq{
			ArticleID: id, Role: version.RoleOriginal, Format: version.FormatDOCX,
			URL: req.DOCXURL, ProducedBy: producedBy,
		})
		if err != nil {
			return err
		}
		recorded = []version.DocumentVersion{pdf, docx}
		return nil
	})
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.Submit: %w", err)
	}

	return TransitionResult{Article: a, Versions: recorded}, nil
}

// AssignEditor moves a reviewed submission to an editor. Admin only; the
// assignee must hold the editor role.
func (c *core) AssignEditor(ctx context.Context, actor Actor, req AssignReq) (TransitionResult, error) {
	res, err := c.assign(ctx, actor, req, ActionAssignEditor)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.AssignEditor: %w", err)
	}
	return res, nil
}

// AssignReviewer hands an editor-approved article to a reviewer. Admin only.
func (c *core) AssignReviewer(ctx context.Context, actor Actor, req AssignReq) (TransitionResult, error) {
	res, err := c.assign(ctx, actor, req, ActionAssignReviewer)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.AssignReviewer: %w", err)
	}
	return res, nil
}

func (c *core) assign(ctx context.Context, actor Actor, req AssignReq, action Action) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldArticleID)
	}
	if req.AssigneeID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldAssigneeID)
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, apperr.ErrForbidden()
	}

	role := user.RoleEditor
	assignmentRole := AssignmentEditor
	nextStatus := StatusAssignedToEditor
	if action == ActionAssignReviewer {
		role = user.RoleReviewer
		assignmentRole = AssignmentReviewer
		nextStatus = StatusAssignedToReviewer
	}
	if err := c.users.RequireRole(ctx, req.AssigneeID, role); err != nil {
		return TransitionResult{}, err
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(action, a.Status) {
			return ErrInvalidTransition(action, a.Status)
		}

		a.Status = nextStatus
		if action == ActionAssignEditor {
			a.AssignedEditorID = &req.AssigneeID
		} else {
			a.AssignedReviewerID = &req.AssigneeID
		}
		a.UpdatedAt = c.timeGen.Now()
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		if err = c.openAssignment(ctx, tx, a.ID, assignmentRole, req.AssigneeID, actor.ID); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      version.RoleAdmin,
			ActorID:   actor.ID,
			Comments:  joinComments(fmt.Sprintf("%s assigned", role), req.Comments),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return result, nil
}

// UploadEditorCorrection records an EDITOR version and moves the article to
// editor_in_progress. Allowed for the assigned editor or an admin.
func (c *core) UploadEditorCorrection(ctx context.Context, actor Actor, req UploadCorrectionReq) (TransitionResult, error) {
	res, err := c.uploadCorrection(ctx, actor, req, ActionUploadEditorCorrection)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.UploadEditorCorrection: %w", err)
	}
	return res, nil
}

// UploadReviewerCorrection records a REVIEWER version and moves the article
// to reviewer_in_progress. Allowed for the assigned reviewer or an admin.
func (c *core) UploadReviewerCorrection(ctx context.Context, actor Actor, req UploadCorrectionReq) (TransitionResult, error) {
	res, err := c.uploadCorrection(ctx, actor, req, ActionUploadReviewerCorrection)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.UploadReviewerCorrection: %w", err)
	}
	return res, nil
}

func (c *core) uploadCorrection(ctx context.Context, actor Actor, req UploadCorrectionReq, action Action) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldArticleID)
	}
	if req.FileURL == "" {
		return TransitionResult{}, ErrFileURLRequired()
	}
	if !req.Format.Valid() {
		return TransitionResult{}, version.ErrInvalidFormat()
	}

	versionRole := version.RoleEditor
	nextStatus := StatusEditorInProgress
	if action == ActionUploadReviewerCorrection {
		versionRole = version.RoleReviewer
		nextStatus = StatusReviewerInProgress
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(action, a.Status) {
			return ErrInvalidTransition(action, a.Status)
		}

		assignee := a.AssignedEditorID
		if action == ActionUploadReviewerCorrection {
			assignee = a.AssignedReviewerID
		}
		if err = checkActor(actor, assignee); err != nil {
			return err
		}

		oldURL := a.CurrentPDFURL
		if req.Format == version.FormatDOCX {
			oldURL = a.CurrentDOCXURL
		}

		v, err := c.versions.Record(ctx, tx, version.RecordReq{
			ArticleID: a.ID, Role: versionRole, Format: req.Format,
			URL: req.FileURL, ProducedBy: actor.ID,
		})
		if err != nil {
			return err
		}

		a.Status = nextStatus
		if req.Format == version.FormatPDF {
			a.CurrentPDFURL = req.FileURL
		} else {
			a.CurrentDOCXURL = req.FileURL
		}
		a.UpdatedAt = c.timeGen.Now()
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID:  a.ID,
			Role:       versionRole,
			ActorID:    actor.ID,
			OldFileURL: oldURL,
			NewFileURL: req.FileURL,
			Comments:   req.Comments,
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Versions: []version.DocumentVersion{v}, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return result, nil
}

// EditorApprove marks the editor's pass complete.
func (c *core) EditorApprove(ctx context.Context, actor Actor, req ApproveReq) (TransitionResult, error) {
	res, err := c.approve(ctx, actor, req, ActionEditorApprove)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.EditorApprove: %w", err)
	}
	return res, nil
}

// ReviewerApprove marks the reviewer's pass complete.
func (c *core) ReviewerApprove(ctx context.Context, actor Actor, req ApproveReq) (TransitionResult, error) {
	res, err := c.approve(ctx, actor, req, ActionReviewerApprove)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.ReviewerApprove: %w", err)
	}
	return res, nil
}

func (c *core) approve(ctx context.Context, actor Actor, req ApproveReq, action Action) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldArticleID)
	}

	versionRole := version.RoleEditor
	nextStatus := StatusEditorApproved
	if action == ActionReviewerApprove {
		versionRole = version.RoleReviewer
		nextStatus = StatusReviewerApproved
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(action, a.Status) {
			return ErrInvalidTransition(action, a.Status)
		}

		assignee := a.AssignedEditorID
		if action == ActionReviewerApprove {
			assignee = a.AssignedReviewerID
		}
		if err = checkActor(actor, assignee); err != nil {
			return err
		}

		if _, err = c.versions.LatestFor(ctx, a.ID, versionRole); err != nil {
			if errors.Is(err, version.ErrVersionNotFound()) {
				return ErrNoCorrectedVersion()
			}
			return err
		}

		a.Status = nextStatus
		a.UpdatedAt = c.timeGen.Now()
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      versionRole,
			ActorID:   actor.ID,
			Comments:  joinComments("approved", req.Comments),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return result, nil
}

// SetCitation assigns the unique citation number required for publication.
// Admin only; legal once the reviewer has approved.
func (c *core) SetCitation(ctx context.Context, actor Actor, req SetCitationReq) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, fmt.Errorf("article.core.SetCitation: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, fmt.Errorf("article.core.SetCitation: %w", apperr.ErrForbidden())
	}
	if !citationRe.MatchString(req.CitationNumber) {
		return TransitionResult{}, fmt.Errorf("article.core.SetCitation: %w", ErrInvalidCitationFormat())
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(ActionSetCitation, a.Status) {
			return ErrInvalidTransition(ActionSetCitation, a.Status)
		}

		if err = c.repo.SetCitation(ctx, tx, a.ID, req.CitationNumber); err != nil {
			return err
		}
		a.CitationNumber = &req.CitationNumber

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      version.RoleAdmin,
			ActorID:   actor.ID,
			Comments:  fmt.Sprintf("citation number set to %s", req.CitationNumber),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.SetCitation: %w", err)
	}

	return result, nil
}

// Publish makes the article public. Admin only; the citation number must be
// set. An optional admin-edited artifact can ride along and becomes the
// current document.
func (c *core) Publish(ctx context.Context, actor Actor, req PublishReq) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, fmt.Errorf("article.core.Publish: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, fmt.Errorf("article.core.Publish: %w", apperr.ErrForbidden())
	}
	if req.FileURL != "" && !req.Format.Valid() {
		return TransitionResult{}, fmt.Errorf("article.core.Publish: %w", version.ErrInvalidFormat())
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(ActionPublish, a.Status) {
			return ErrInvalidTransition(ActionPublish, a.Status)
		}
		if a.CitationNumber == nil {
			return ErrCitationRequired()
		}

		var (
			recorded []version.DocumentVersion
			oldURL   string
		)
		if req.FileURL != "" {
			oldURL = a.CurrentPDFURL
			if req.Format == version.FormatDOCX {
				oldURL = a.CurrentDOCXURL
			}
			v, err := c.versions.Record(ctx, tx, version.RecordReq{
				ArticleID: a.ID, Role: version.RoleAdmin, Format: req.Format,
				URL: req.FileURL, ProducedBy: actor.ID,
			})
			if err != nil {
				return err
			}
			recorded = append(recorded, v)
			if req.Format == version.FormatPDF {
				a.CurrentPDFURL = req.FileURL
			} else {
				a.CurrentDOCXURL = req.FileURL
			}
		}

		now := c.timeGen.Now()
		a.Status = StatusPublished
		a.PublishedAt = &now
		a.UpdatedAt = now
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID:  a.ID,
			Role:       version.RoleAdmin,
			ActorID:    actor.ID,
			OldFileURL: oldURL,
			NewFileURL: req.FileURL,
			Comments:   joinComments("published", req.Comments),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Versions: recorded, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.Publish: %w", err)
	}

	return result, nil
}

// Reject turns a submission away at admin review. Terminal.
func (c *core) Reject(ctx context.Context, actor Actor, req ApproveReq) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, fmt.Errorf("article.core.Reject: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, fmt.Errorf("article.core.Reject: %w", apperr.ErrForbidden())
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(ActionReject, a.Status) {
			return ErrInvalidTransition(ActionReject, a.Status)
		}

		a.Status = StatusRejected
		a.UpdatedAt = c.timeGen.Now()
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      version.RoleAdmin,
			ActorID:   actor.ID,
			Comments:  joinComments("rejected", req.Comments),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.Reject: %w", err)
	}

	return result, nil
}

// ReassignEditor swaps the assigned editor without changing status. Admin
// only. The open assignment row is closed and a new one opened in the same
// transaction, so the history never shows two open rows.
func (c *core) ReassignEditor(ctx context.Context, actor Actor, req AssignReq) (TransitionResult, error) {
	res, err := c.reassign(ctx, actor, req, ActionReassignEditor)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.ReassignEditor: %w", err)
	}
	return res, nil
}

// ReassignReviewer swaps the assigned reviewer without changing status. Admin only.
func (c *core) ReassignReviewer(ctx context.Context, actor Actor, req AssignReq) (TransitionResult, error) {
	res, err := c.reassign(ctx, actor, req, ActionReassignReviewer)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("article.core.ReassignReviewer: %w", err)
	}
	return res, nil
}

func (c *core) reassign(ctx context.Context, actor Actor, req AssignReq, action Action) (TransitionResult, error) {
	if req.ArticleID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldArticleID)
	}
	if req.AssigneeID == uuid.Nil {
		return TransitionResult{}, apperr.ErrNilUUID(FieldAssigneeID)
	}
	if !actor.IsAdmin() {
		return TransitionResult{}, apperr.ErrForbidden()
	}

	role := user.RoleEditor
	assignmentRole := AssignmentEditor
	if action == ActionReassignReviewer {
		role = user.RoleReviewer
		assignmentRole = AssignmentReviewer
	}
	if err := c.users.RequireRole(ctx, req.AssigneeID, role); err != nil {
		return TransitionResult{}, err
	}

	var result TransitionResult
	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}
		if !CanTransition(action, a.Status) {
			return ErrInvalidTransition(action, a.Status)
		}

		now := c.timeGen.Now()
		if err = c.assignments.CloseOpen(ctx, tx, a.ID, assignmentRole, now); err != nil {
			return err
		}
		if err = c.openAssignment(ctx, tx, a.ID, assignmentRole, req.AssigneeID, actor.ID); err != nil {
			return err
		}

		if action == ActionReassignEditor {
			a.AssignedEditorID = &req.AssigneeID
		} else {
			a.AssignedReviewerID = &req.AssigneeID
		}
		a.UpdatedAt = now
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}

		entry, err := c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      version.RoleAdmin,
			ActorID:   actor.ID,
			Comments:  joinComments(fmt.Sprintf("%s reassigned", role), req.Comments),
		})
		if err != nil {
			return err
		}

		result = TransitionResult{Article: a, Entry: &entry}
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}

	return result, nil
}

// Delete tombstones the article. Admin only, legal from any non-terminal
// status. The change log and version store are retained.
func (c *core) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("article.core.Delete: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !actor.IsAdmin() {
		return fmt.Errorf("article.core.Delete: %w", apperr.ErrForbidden())
	}

	err := c.tx.Transaction(func(tx tx.Transaction) error {
		a, err := c.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !CanTransition(ActionDelete, a.Status) {
			return ErrInvalidTransition(ActionDelete, a.Status)
		}

		a.Status = StatusDeleted
		a.UpdatedAt = c.timeGen.Now()
		if err = c.repo.Update(ctx, tx, a); err != nil {
			return err
		}
		if _, err = c.entries.Append(ctx, tx, changelog.AppendReq{
			ArticleID: a.ID,
			Role:      version.RoleAdmin,
			ActorID:   actor.ID,
			Comments:  "deleted",
		}); err != nil {
			return err
		}

		return c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("article.core.Delete: %w", err)
	}

	return nil
}

// RefreshCurrent points the current artifact of the counterpart format at a
// converted copy of the source version. The pointer only moves while the
// article still points at the document the copy was converted from; a
// conversion that lands after a newer upload must not regress it.
func (c *core) RefreshCurrent(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) error {
	if source.ArticleID == uuid.Nil {
		return fmt.Errorf("article.core.RefreshCurrent: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if convertedURL == "" {
		return fmt.Errorf("article.core.RefreshCurrent: %w", ErrFileURLRequired())
	}

	a, err := c.repo.GetForUpdate(ctx, tx, source.ArticleID)
	if err != nil {
		return fmt.Errorf("article.core.RefreshCurrent: %w", err)
	}

	current := a.CurrentPDFURL
	if source.Format == version.FormatDOCX {
		current = a.CurrentDOCXURL
	}
	if current != source.URL {
		return nil
	}

	if source.Format.Counterpart() == version.FormatPDF {
		a.CurrentPDFURL = convertedURL
	} else {
		a.CurrentDOCXURL = convertedURL
	}
	a.UpdatedAt = c.timeGen.Now()
	if err = c.repo.Update(ctx, tx, a); err != nil {
		return fmt.Errorf("article.core.RefreshCurrent: %w", err)
	}

	return nil
}

func (c *core) Get(ctx context.Context, id uuid.UUID) (Article, error) {
	if id == uuid.Nil {
		return Article{}, fmt.Errorf("article.core.Get: %w", apperr.ErrNilUUID(FieldArticleID))
	}

	a, err := c.repo.Get(ctx, id)
	if err != nil {
		return Article{}, fmt.Errorf("article.core.Get: %w", err)
	}

	return a, nil
}

func (c *core) GetBySlug(ctx context.Context, slug string) (Article, error) {
	if slug == "" {
		return Article{}, fmt.Errorf("article.core.GetBySlug: %w", ErrArticleNotFound())
	}

	a, err := c.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Article{}, fmt.Errorf("article.core.GetBySlug: %w", err)
	}

	return a, nil
}

func (c *core) List(ctx context.Context, filter ListFilter) ([]Article, error) {
	articles, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("article.core.List: %w", err)
	}

	return articles, nil
}

func (c *core) Assignments(ctx context.Context, articleID uuid.UUID) ([]Assignment, error) {
	if articleID == uuid.Nil {
		return nil, fmt.Errorf("article.core.Assignments: %w", apperr.ErrNilUUID(FieldArticleID))
	}

	assignments, err := c.assignments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("article.core.Assignments: %w", err)
	}

	return assignments, nil
}

func (c *core) openAssignment(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role AssignmentRole, userID, assignedBy uuid.UUID) error {
	id, err := c.idGen.New()
	if err != nil {
		return err
	}

	return c.assignments.Open(ctx, tx, Assignment{
		ID:         id,
		ArticleID:  articleID,
		Role:       role,
		UserID:     userID,
		AssignedBy: assignedBy,
		AssignedAt: c.timeGen.Now(),
	})
}

func (c *core) validateSubmission(req SubmitReq) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return ErrTitleEmpty()
	}
	if len(title) > c.cfg.MaxTitleLength {
		return ErrTitleTooLong(c.cfg.MaxTitleLength)
	}
	if len(strings.TrimSpace(req.Abstract)) > c.cfg.MaxAbstractLength {
		return ErrAbstractTooLong(c.cfg.MaxAbstractLength)
	}
	if strings.TrimSpace(req.AuthorName) == "" {
		return ErrAuthorNameEmpty()
	}
	if _, err := mail.ParseAddress(req.AuthorEmail); err != nil {
		return ErrInvalidAuthorEmail()
	}
	if req.PDFURL == "" || req.DOCXURL == "" {
		return ErrFileURLRequired()
	}

	return nil
}

// checkActor is the workflow guard: the assigned participant or an admin.
func checkActor(actor Actor, assignee *uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if assignee != nil && *assignee == actor.ID {
		return nil
	}
	return ErrNotAssigned()
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL slug from a title. Published slugs are immutable;
// the value is computed once at submission.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func joinComments(summary, comments string) string {
	if comments == "" {
		return summary
	}
	return summary + ": " + comments
}

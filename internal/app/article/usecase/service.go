package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/cache"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/lexnotes/journal/internal/infrastructure/storage"
)

const (
	EventSubmissionVerification = "submission_verification"
	EventSubmissionReceived     = "submission_received"
	EventEditorAssigned         = "editor_assigned"
	EventReviewerAssigned       = "reviewer_assigned"
	EventArticlePublished       = "article_published"
	EventArticleRejected        = "article_rejected"
)

// FileUpload carries one multipart file part from transport to the service.
// The service stores the bytes and hands the workflow core a URL.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type SubmitCmd struct {
	Title    string
	Abstract string
	PDF      FileUpload
	DOCX     FileUpload
}

type GuestSubmitCmd struct {
	Title       string
	Abstract    string
	AuthorName  string
	AuthorEmail string
	PDF         FileUpload
	DOCX        FileUpload
}

type UploadCorrectionCmd struct {
	ArticleID uuid.UUID
	File      FileUpload
	Format    version.Format
	Comments  string
}

type PublishCmd struct {
	ArticleID uuid.UUID
	// Optional admin-edited artifact swapped in at publication.
	File     *FileUpload
	Format   version.Format
	Comments string
}

type Core interface {
	Submit(ctx context.Context, req article.SubmitReq) (article.TransitionResult, error)
	AssignEditor(ctx context.Context, actor article.Actor, req article.AssignReq) (article.TransitionResult, error)
	AssignReviewer(ctx context.Context, actor article.Actor, req article.AssignReq) (article.TransitionResult, error)
	UploadEditorCorrection(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (article.TransitionResult, error)
	UploadReviewerCorrection(ctx context.Context, actor article.Actor, req article.UploadCorrectionReq) (article.TransitionResult, error)
	EditorApprove(ctx context.Context, actor article.Actor, req article.ApproveReq) (article.TransitionResult, error)
	ReviewerApprove(ctx context.Context, actor article.Actor, req article.ApproveReq) (article.TransitionResult, error)
	SetCitation(ctx context.Context, actor article.Actor, req article.SetCitationReq) (article.TransitionResult, error)
	Publish(ctx context.Context, actor article.Actor, req article.PublishReq) (article.TransitionResult, error)
	Reject(ctx context.Context, actor article.Actor, req article.ApproveReq) (article.TransitionResult, error)
	ReassignEditor(ctx context.Context, actor article.Actor, req article.AssignReq) (article.TransitionResult, error)
	ReassignReviewer(ctx context.Context, actor article.Actor, req article.AssignReq) (article.TransitionResult, error)
	Delete(ctx context.Context, actor article.Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (article.Article, error)
	GetBySlug(ctx context.Context, slug string) (article.Article, error)
	List(ctx context.Context, filter article.ListFilter) ([]article.Article, error)
	Assignments(ctx context.Context, articleID uuid.UUID) ([]article.Assignment, error)
}

type VersionService interface {
	ListFor(ctx context.Context, articleID uuid.UUID) ([]version.DocumentVersion, error)
	LatestForFormat(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (version.DocumentVersion, error)
}

type ChangelogService interface {
	HistoryFor(ctx context.Context, articleID uuid.UUID) ([]changelog.Entry, error)
	DiffFor(ctx context.Context, entryID uuid.UUID) (diff.Stats, error)
}

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (user.User, string, error)
}

// Watermarker stamps a stored document for a single download. Results are
// never persisted.
type Watermarker interface {
	Watermark(ctx context.Context, fileURL string, metadata map[string]string, role string) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) error
}

// Processor runs the post-commit pipeline (text extraction, diffing, format
// conversion) for a committed transition.
type Processor interface {
	Dispatch(ctx context.Context, res article.TransitionResult)
}

type IDGenerator interface {
	New() (uuid.UUID, error)
}

type CodeGenerator interface {
	New(digits int) (string, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type Config struct {
	VerificationCodeDigits int `mapstructure:"verification_code_digits" json:"verification_code_digits"`
	VerificationTTLMinutes int `mapstructure:"verification_ttl_minutes" json:"verification_ttl_minutes"`
}

type service struct {
	core      Core
	versions  VersionService
	entries   ChangelogService
	users     UserService
	store     storage.Store
	kv        cache.KV
	watermark Watermarker
	notifier  Notifier
	processor Processor
	idGen     IDGenerator
	codeGen   CodeGenerator
	timeGen   TimeGenerator
	cfg       Config
}

func NewService(
	core Core,
	versions VersionService,
	entries ChangelogService,
	users UserService,
	store storage.Store,
	kv cache.KV,
	watermark Watermarker,
	notifier Notifier,
	processor Processor,
	idGen IDGenerator,
	codeGen CodeGenerator,
	timeGen TimeGenerator,
	cfg Config,
) *service {
	if cfg.VerificationCodeDigits <= 0 {
		cfg.VerificationCodeDigits = 6
	}
	if cfg.VerificationTTLMinutes <= 0 {
		cfg.VerificationTTLMinutes = 30
	}

	return &service{
		core:      core,
		versions:  versions,
		entries:   entries,
		users:     users,
		store:     store,
		kv:        kv,
		watermark: watermark,
		notifier:  notifier,
		processor: processor,
		idGen:     idGen,
		codeGen:   codeGen,
		timeGen:   timeGen,
		cfg:       cfg,
	}
}

// Submit takes a submission from an authenticated author. Name and email come
// from the account, not the request.
func (s *service) Submit(ctx context.Context, cmd SubmitCmd) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.Submit: failed to resolve actor")
		return article.Article{}, fmt.Errorf("article.Service.Submit: %w", err)
	}

	u, _, err := s.users.GetUser(ctx, actor.ID)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.Submit: failed to load author account")
		return article.Article{}, fmt.Errorf("article.Service.Submit: %w", err)
	}

	req := article.SubmitReq{
		Title:        cmd.Title,
		Abstract:     cmd.Abstract,
		AuthorName:   u.Name,
		AuthorEmail:  u.Email,
		AuthorUserID: &actor.ID,
	}
	if req.PDFURL, req.DOCXURL, err = s.storeOriginals(ctx, cmd.PDF, cmd.DOCX); err != nil {
		logger.Error(ctx, err).Msg("article.Service.Submit: failed to store originals")
		return article.Article{}, fmt.Errorf("article.Service.Submit: %w", err)
	}

	res, err := s.core.Submit(ctx, req)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.Submit: failed to submit")
		return article.Article{}, fmt.Errorf("article.Service.Submit: %w", err)
	}

	s.dispatch(ctx, res)
	s.notify(ctx, EventSubmissionReceived, res.Article.ID, []string{res.Article.AuthorEmail}, nil)

	return res.Article, nil
}

// pendingSubmission is the payload parked in the KV store while a guest
// submission awaits email verification. ExpiresAt is checked on consume so an
// expired code reports as expired rather than unknown; the KV TTL runs longer
// and handles final cleanup.
type pendingSubmission struct {
	Req       article.SubmitReq `json:"req"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// GuestSubmit stores the uploaded artifacts, parks the submission behind a
// one-time verification code and emails the code to the claimed author
// address. Nothing reaches the articles table until VerifyGuest.
func (s *service) GuestSubmit(ctx context.Context, cmd GuestSubmitCmd) error {
	pdfURL, docxURL, err := s.storeOriginals(ctx, cmd.PDF, cmd.DOCX)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.GuestSubmit: failed to store originals")
		return fmt.Errorf("article.Service.GuestSubmit: %w", err)
	}

	ttl := time.Duration(s.cfg.VerificationTTLMinutes) * time.Minute
	pending := pendingSubmission{
		Req: article.SubmitReq{
			Title:       cmd.Title,
			Abstract:    cmd.Abstract,
			AuthorName:  cmd.AuthorName,
			AuthorEmail: cmd.AuthorEmail,
			PDFURL:      pdfURL,
			DOCXURL:     docxURL,
		},
		ExpiresAt: s.timeGen.Now().Add(ttl),
	}
	payload, err := json.Marshal(pending)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.GuestSubmit: failed to marshal pending submission")
		return fmt.Errorf("article.Service.GuestSubmit: %w", err)
	}

	code, err := s.codeGen.New(s.cfg.VerificationCodeDigits)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.GuestSubmit: failed to generate code")
		return fmt.Errorf("article.Service.GuestSubmit: %w", err)
	}

	// Twice the logical TTL: the grace window lets VerifyGuest tell an
	// expired code apart from one that never existed.
	if err = s.kv.Set(ctx, submissionKey(code), string(payload), 2*ttl); err != nil {
		logger.Error(ctx, err).Msg("article.Service.GuestSubmit: failed to park submission")
		return fmt.Errorf("article.Service.GuestSubmit: %w", err)
	}

	s.notify(ctx, EventSubmissionVerification, uuid.Nil, []string{cmd.AuthorEmail}, map[string]string{"code": code})

	return nil
}

// VerifyGuest consumes a verification code and creates the parked submission.
// The code is single-use; a second attempt fails as unknown.
func (s *service) VerifyGuest(ctx context.Context, code string) (article.Article, error) {
	payload, err := s.kv.GetDel(ctx, submissionKey(code))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			err = article.ErrVerificationCodeInvalid()
		}
		logger.Error(ctx, err).Msg("article.Service.VerifyGuest: failed to consume code")
		return article.Article{}, fmt.Errorf("article.Service.VerifyGuest: %w", err)
	}

	var pending pendingSubmission
	if err = json.Unmarshal([]byte(payload), &pending); err != nil {
		logger.Error(ctx, err).Msg("article.Service.VerifyGuest: failed to unmarshal pending submission")
		return article.Article{}, fmt.Errorf("article.Service.VerifyGuest: %w", err)
	}
	if s.timeGen.Now().After(pending.ExpiresAt) {
		err = article.ErrVerificationCodeExpired()
		logger.Error(ctx, err).Msg("article.Service.VerifyGuest: code expired")
		return article.Article{}, fmt.Errorf("article.Service.VerifyGuest: %w", err)
	}

	res, err := s.core.Submit(ctx, pending.Req)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.VerifyGuest: failed to submit")
		return article.Article{}, fmt.Errorf("article.Service.VerifyGuest: %w", err)
	}

	s.dispatch(ctx, res)
	s.notify(ctx, EventSubmissionReceived, res.Article.ID, []string{res.Article.AuthorEmail}, nil)

	return res.Article, nil
}

func (s *service) AssignEditor(ctx context.Context, req article.AssignReq) (article.Article, error) {
	return s.assign(ctx, req, s.core.AssignEditor, EventEditorAssigned, "article.Service.AssignEditor")
}

func (s *service) AssignReviewer(ctx context.Context, req article.AssignReq) (article.Article, error) {
	return s.assign(ctx, req, s.core.AssignReviewer, EventReviewerAssigned, "article.Service.AssignReviewer")
}

func (s *service) ReassignEditor(ctx context.Context, req article.AssignReq) (article.Article, error) {
	return s.assign(ctx, req, s.core.ReassignEditor, EventEditorAssigned, "article.Service.ReassignEditor")
}

func (s *service) ReassignReviewer(ctx context.Context, req article.AssignReq) (article.Article, error) {
	return s.assign(ctx, req, s.core.ReassignReviewer, EventReviewerAssigned, "article.Service.ReassignReviewer")
}

func (s *service) assign(
	ctx context.Context,
	req article.AssignReq,
	op func(context.Context, article.Actor, article.AssignReq) (article.TransitionResult, error),
	event, label string,
) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg(label + ": failed to resolve actor")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	res, err := op(ctx, actor, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), req.ArticleID.String()).
			Str(article.FieldAssigneeID.String(), req.AssigneeID.String()).
			Msg(label + ": failed to assign")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	s.dispatch(ctx, res)
	if assignee, _, uerr := s.users.GetUser(ctx, req.AssigneeID); uerr == nil {
		s.notify(ctx, event, res.Article.ID, []string{assignee.Email}, nil)
	} else {
		logger.Warn(ctx, uerr).
			Str(article.FieldAssigneeID.String(), req.AssigneeID.String()).
			Msg(label + ": failed to load assignee for notification")
	}

	return res.Article, nil
}

func (s *service) UploadEditorCorrection(ctx context.Context, cmd UploadCorrectionCmd) (article.Article, error) {
	return s.uploadCorrection(ctx, cmd, s.core.UploadEditorCorrection, "article.Service.UploadEditorCorrection")
}

func (s *service) UploadReviewerCorrection(ctx context.Context, cmd UploadCorrectionCmd) (article.Article, error) {
	return s.uploadCorrection(ctx, cmd, s.core.UploadReviewerCorrection, "article.Service.UploadReviewerCorrection")
}

func (s *service) uploadCorrection(
	ctx context.Context,
	cmd UploadCorrectionCmd,
	op func(context.Context, article.Actor, article.UploadCorrectionReq) (article.TransitionResult, error),
	label string,
) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg(label + ": failed to resolve actor")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	url, err := s.storeFile(ctx, "articles/"+cmd.ArticleID.String(), cmd.File, cmd.Format)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), cmd.ArticleID.String()).
			Msg(label + ": failed to store file")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	res, err := op(ctx, actor, article.UploadCorrectionReq{
		ArticleID: cmd.ArticleID,
		FileURL:   url,
		Format:    cmd.Format,
		Comments:  cmd.Comments,
	})
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), cmd.ArticleID.String()).
			Msg(label + ": failed to record correction")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	s.dispatch(ctx, res)

	return res.Article, nil
}

func (s *service) EditorApprove(ctx context.Context, req article.ApproveReq) (article.Article, error) {
	return s.transition(ctx, req, s.core.EditorApprove, "article.Service.EditorApprove")
}

func (s *service) ReviewerApprove(ctx context.Context, req article.ApproveReq) (article.Article, error) {
	return s.transition(ctx, req, s.core.ReviewerApprove, "article.Service.ReviewerApprove")
}

func (s *service) Reject(ctx context.Context, req article.ApproveReq) (article.Article, error) {
	a, err := s.transition(ctx, req, s.core.Reject, "article.Service.Reject")
	if err != nil {
		return article.Article{}, err
	}
	s.notify(ctx, EventArticleRejected, a.ID, []string{a.AuthorEmail}, nil)
	return a, nil
}

func (s *service) transition(
	ctx context.Context,
	req article.ApproveReq,
	op func(context.Context, article.Actor, article.ApproveReq) (article.TransitionResult, error),
	label string,
) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg(label + ": failed to resolve actor")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	res, err := op(ctx, actor, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), req.ArticleID.String()).
			Msg(label + ": transition failed")
		return article.Article{}, fmt.Errorf("%s: %w", label, err)
	}

	s.dispatch(ctx, res)

	return res.Article, nil
}

func (s *service) SetCitation(ctx context.Context, req article.SetCitationReq) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.SetCitation: failed to resolve actor")
		return article.Article{}, fmt.Errorf("article.Service.SetCitation: %w", err)
	}

	res, err := s.core.SetCitation(ctx, actor, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), req.ArticleID.String()).
			Str(article.FieldCitation.String(), req.CitationNumber).
			Msg("article.Service.SetCitation: failed to set citation")
		return article.Article{}, fmt.Errorf("article.Service.SetCitation: %w", err)
	}

	s.dispatch(ctx, res)

	return res.Article, nil
}

func (s *service) Publish(ctx context.Context, cmd PublishCmd) (article.Article, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.Publish: failed to resolve actor")
		return article.Article{}, fmt.Errorf("article.Service.Publish: %w", err)
	}

	req := article.PublishReq{ArticleID: cmd.ArticleID, Format: cmd.Format, Comments: cmd.Comments}
	if cmd.File != nil {
		req.FileURL, err = s.storeFile(ctx, "articles/"+cmd.ArticleID.String(), *cmd.File, cmd.Format)
		if err != nil {
			logger.Error(ctx, err).
				Str(article.FieldArticleID.String(), cmd.ArticleID.String()).
				Msg("article.Service.Publish: failed to store file")
			return article.Article{}, fmt.Errorf("article.Service.Publish: %w", err)
		}
	}

	res, err := s.core.Publish(ctx, actor, req)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), cmd.ArticleID.String()).
			Msg("article.Service.Publish: failed to publish")
		return article.Article{}, fmt.Errorf("article.Service.Publish: %w", err)
	}

	s.dispatch(ctx, res)
	s.notify(ctx, EventArticlePublished, res.Article.ID, []string{res.Article.AuthorEmail}, nil)

	return res.Article, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.Delete: failed to resolve actor")
		return fmt.Errorf("article.Service.Delete: %w", err)
	}

	if err = s.core.Delete(ctx, actor, id); err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), id.String()).
			Msg("article.Service.Delete: failed to delete")
		return fmt.Errorf("article.Service.Delete: %w", err)
	}

	return nil
}

// Get hides unpublished articles from everyone but the author, the assigned
// participants and admins; an invisible article reports as not found.
func (s *service) Get(ctx context.Context, id uuid.UUID) (article.Article, error) {
	a, err := s.core.Get(ctx, id)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), id.String()).
			Msg("article.Service.Get: failed to get article")
		return article.Article{}, fmt.Errorf("article.Service.Get: %w", err)
	}
	if !s.canView(ctx, a) {
		err = article.ErrArticleNotFound()
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), id.String()).
			Msg("article.Service.Get: article not visible to caller")
		return article.Article{}, fmt.Errorf("article.Service.Get: %w", err)
	}

	return a, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (article.Article, error) {
	a, err := s.core.GetBySlug(ctx, slug)
	if err != nil {
		logger.Error(ctx, err).Str("slug", slug).Msg("article.Service.GetBySlug: failed to get article")
		return article.Article{}, fmt.Errorf("article.Service.GetBySlug: %w", err)
	}
	if !s.canView(ctx, a) {
		err = article.ErrArticleNotFound()
		logger.Error(ctx, err).Str("slug", slug).Msg("article.Service.GetBySlug: article not visible to caller")
		return article.Article{}, fmt.Errorf("article.Service.GetBySlug: %w", err)
	}

	return a, nil
}

// List scopes results to the caller: admins see everything, authenticated
// users see published plus their own work, anonymous callers see published
// only.
func (s *service) List(ctx context.Context, status *article.Status) ([]article.Article, error) {
	filter := article.ListFilter{Status: status}
	if actor, err := actorFromContext(ctx); err == nil {
		if actor.IsAdmin() {
			filter.All = true
		} else {
			filter.AuthorID = &actor.ID
			filter.AssigneeID = &actor.ID
		}
	}

	articles, err := s.core.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, err).Msg("article.Service.List: failed to list articles")
		return nil, fmt.Errorf("article.Service.List: %w", err)
	}

	return articles, nil
}

func (s *service) Versions(ctx context.Context, articleID uuid.UUID) ([]version.DocumentVersion, error) {
	if _, err := s.Get(ctx, articleID); err != nil {
		return nil, fmt.Errorf("article.Service.Versions: %w", err)
	}

	versions, err := s.versions.ListFor(ctx, articleID)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Msg("article.Service.Versions: failed to list versions")
		return nil, fmt.Errorf("article.Service.Versions: %w", err)
	}

	return versions, nil
}

func (s *service) History(ctx context.Context, articleID uuid.UUID) ([]changelog.Entry, error) {
	if _, err := s.Get(ctx, articleID); err != nil {
		return nil, fmt.Errorf("article.Service.History: %w", err)
	}

	entries, err := s.entries.HistoryFor(ctx, articleID)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Msg("article.Service.History: failed to load change log")
		return nil, fmt.Errorf("article.Service.History: %w", err)
	}

	return entries, nil
}

func (s *service) DiffSummary(ctx context.Context, articleID, entryID uuid.UUID) (diff.Stats, error) {
	if _, err := s.Get(ctx, articleID); err != nil {
		return diff.Stats{}, fmt.Errorf("article.Service.DiffSummary: %w", err)
	}

	stats, err := s.entries.DiffFor(ctx, entryID)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Str("entry_id", entryID.String()).
			Msg("article.Service.DiffSummary: failed to load diff")
		return diff.Stats{}, fmt.Errorf("article.Service.DiffSummary: %w", err)
	}

	return stats, nil
}

func (s *service) Assignments(ctx context.Context, articleID uuid.UUID) ([]article.Assignment, error) {
	if _, err := s.Get(ctx, articleID); err != nil {
		return nil, fmt.Errorf("article.Service.Assignments: %w", err)
	}

	assignments, err := s.core.Assignments(ctx, articleID)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Msg("article.Service.Assignments: failed to list assignments")
		return nil, fmt.Errorf("article.Service.Assignments: %w", err)
	}

	return assignments, nil
}

// Download returns the latest artifact of the given role and format, stamped
// with a per-download watermark. The stamp names the downloader's capacity so
// leaked copies can be traced.
func (s *service) Download(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) ([]byte, string, error) {
	if !role.Valid() {
		err := version.ErrInvalidRole()
		logger.Error(ctx, err).Msg("article.Service.Download: invalid role")
		return nil, "", fmt.Errorf("article.Service.Download: %w", err)
	}
	if !format.Valid() {
		err := version.ErrInvalidFormat()
		logger.Error(ctx, err).Msg("article.Service.Download: invalid format")
		return nil, "", fmt.Errorf("article.Service.Download: %w", err)
	}

	a, err := s.Get(ctx, articleID)
	if err != nil {
		return nil, "", fmt.Errorf("article.Service.Download: %w", err)
	}

	v, err := s.versions.LatestForFormat(ctx, articleID, role, format)
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Msg("article.Service.Download: failed to resolve version")
		return nil, "", fmt.Errorf("article.Service.Download: %w", err)
	}

	metadata := map[string]string{
		"title":  a.Title,
		"status": a.Status.String(),
	}
	if a.CitationNumber != nil {
		metadata["citation_number"] = *a.CitationNumber
	}

	data, err := s.watermark.Watermark(ctx, v.URL, metadata, s.downloaderRole(ctx, a))
	if err != nil {
		logger.Error(ctx, err).
			Str(article.FieldArticleID.String(), articleID.String()).
			Msg("article.Service.Download: failed to watermark")
		return nil, "", fmt.Errorf("article.Service.Download: %w", err)
	}

	name := fmt.Sprintf("%s-%s.%s", a.Slug, strings.ToLower(string(role)), strings.ToLower(string(format)))

	return data, name, nil
}

func (s *service) canView(ctx context.Context, a article.Article) bool {
	if a.Status == article.StatusPublished {
		return true
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if a.AuthorUserID != nil && *a.AuthorUserID == actor.ID {
		return true
	}
	if a.AssignedEditorID != nil && *a.AssignedEditorID == actor.ID {
		return true
	}
	if a.AssignedReviewerID != nil && *a.AssignedReviewerID == actor.ID {
		return true
	}

	return false
}

// downloaderRole names the caller's capacity towards the article for the
// watermark stamp.
func (s *service) downloaderRole(ctx context.Context, a article.Article) string {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return "public"
	}
	switch {
	case actor.IsAdmin():
		return user.RoleAdmin.String()
	case a.AssignedEditorID != nil && *a.AssignedEditorID == actor.ID:
		return user.RoleEditor.String()
	case a.AssignedReviewerID != nil && *a.AssignedReviewerID == actor.ID:
		return user.RoleReviewer.String()
	case a.AuthorUserID != nil && *a.AuthorUserID == actor.ID:
		return user.RoleAuthor.String()
	default:
		return "public"
	}
}

func (s *service) storeOriginals(ctx context.Context, pdf, docx FileUpload) (pdfURL, docxURL string, err error) {
	if pdfURL, err = s.storeFile(ctx, "submissions", pdf, version.FormatPDF); err != nil {
		return "", "", err
	}
	if docxURL, err = s.storeFile(ctx, "submissions", docx, version.FormatDOCX); err != nil {
		return "", "", err
	}

	return pdfURL, docxURL, nil
}

func (s *service) storeFile(ctx context.Context, prefix string, f FileUpload, format version.Format) (string, error) {
	if f.Reader == nil {
		return "", article.ErrFileURLRequired()
	}

	id, err := s.idGen.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%s.%s", prefix, id, strings.ToLower(string(format)))

	url, err := s.store.Put(ctx, key, f.Reader, f.Size, f.ContentType)
	if err != nil {
		return "", err
	}

	return url, nil
}

// dispatch hands the committed transition to the background pipeline. The
// request context is detached so the HTTP response does not cancel the work.
func (s *service) dispatch(ctx context.Context, res article.TransitionResult) {
	if s.processor == nil {
		return
	}
	go s.processor.Dispatch(context.WithoutCancel(ctx), res)
}

// notify is fire-and-forget; a failed notification never fails the request.
func (s *service) notify(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, event, articleID, recipients, meta); err != nil {
		logger.Warn(ctx, err).Str("event", event).Msg("article.Service: notification failed")
	}
}

func actorFromContext(ctx context.Context) (article.Actor, error) {
	id, err := contextx.GetUserID(ctx)
	if err != nil {
		return article.Actor{}, err
	}
	names, err := contextx.GetUserRoles(ctx)
	if err != nil {
		return article.Actor{}, err
	}

	roles := make([]user.Role, 0, len(names))
	for _, name := range names {
		if r := user.Role(name); r.Valid() {
			roles = append(roles, r)
		}
	}

	return article.Actor{ID: id, Roles: roles}, nil
}

func submissionKey(code string) string {
	return "submission:" + code
}

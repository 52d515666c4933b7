package http

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/article/usecase"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/httpx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
)

const (
	URLParamArticleID = "article_id"
	URLParamSlug      = "slug"
	URLParamEntryID   = "entry_id"

	// multipart parts
	partPDF  = "pdf"
	partDOCX = "docx"
	partFile = "file"

	maxMultipartMemory = 32 << 20
)

type VerifyInput struct {
	Code string `json:"code"`
}

type AssignInput struct {
	AssigneeID uuid.UUID `json:"assignee_id"`
	Comments   string    `json:"comments"`
}

type ApproveInput struct {
	Comments string `json:"comments"`
}

type SetCitationInput struct {
	CitationNumber string `json:"citation_number"`
}

// Handler knows how to decode HTTP → service calls and encode responses.
type Handler struct {
	svc Service
}

//go:generate minimock -i github.com/lexnotes/journal/internal/app/article/transport/http.Service -o ./mocks -s _mock.go
type Service interface {
	Submit(ctx context.Context, cmd usecase.SubmitCmd) (article.Article, error)
	GuestSubmit(ctx context.Context, cmd usecase.GuestSubmitCmd) error
	VerifyGuest(ctx context.Context, code string) (article.Article, error)
	AssignEditor(ctx context.Context, req article.AssignReq) (article.Article, error)
	AssignReviewer(ctx context.Context, req article.AssignReq) (article.Article, error)
	ReassignEditor(ctx context.Context, req article.AssignReq) (article.Article, error)
	ReassignReviewer(ctx context.Context, req article.AssignReq) (article.Article, error)
	UploadEditorCorrection(ctx context.Context, cmd usecase.UploadCorrectionCmd) (article.Article, error)
	UploadReviewerCorrection(ctx context.Context, cmd usecase.UploadCorrectionCmd) (article.Article, error)
	EditorApprove(ctx context.Context, req article.ApproveReq) (article.Article, error)
	ReviewerApprove(ctx context.Context, req article.ApproveReq) (article.Article, error)
	SetCitation(ctx context.Context, req article.SetCitationReq) (article.Article, error)
	Publish(ctx context.Context, cmd usecase.PublishCmd) (article.Article, error)
	Reject(ctx context.Context, req article.ApproveReq) (article.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (article.Article, error)
	GetBySlug(ctx context.Context, slug string) (article.Article, error)
	List(ctx context.Context, status *article.Status) ([]article.Article, error)
	Versions(ctx context.Context, articleID uuid.UUID) ([]version.DocumentVersion, error)
	History(ctx context.Context, articleID uuid.UUID) ([]changelog.Entry, error)
	DiffSummary(ctx context.Context, articleID, entryID uuid.UUID) (diff.Stats, error)
	Assignments(ctx context.Context, articleID uuid.UUID) ([]article.Assignment, error)
	Download(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) ([]byte, string, error)
}

func NewHandler(svc Service) *Handler {
	if svc == nil {
		panic("article HTTP handler: nil service")
	}
	return &Handler{svc: svc}
}

// Submit godoc
// @Summary      Submit article
// @Description  Creates a submission for the authenticated author. Multipart form with title, abstract and pdf/docx file parts.
// @Tags         articles
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Title"
// @Param        abstract formData string false "Abstract"
// @Param        pdf formData file true "Original PDF"
// @Param        docx formData file true "Original DOCX"
// @Success      201 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error(ctx, err).Msg("article.Handler.Submit: multipart parse failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	pdf, pdfClose, err := formFile(r, partPDF)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}
	defer pdfClose()
	docx, docxClose, err := formFile(r, partDOCX)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}
	defer docxClose()

	a, err := h.svc.Submit(ctx, usecase.SubmitCmd{
		Title:    r.FormValue("title"),
		Abstract: r.FormValue("abstract"),
		PDF:      pdf,
		DOCX:     docx,
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusCreated, a)
}

// GuestSubmit godoc
// @Summary      Submit article as guest
// @Description  Parks a submission behind an email verification code. Multipart form with title, abstract, author_name, author_email and pdf/docx file parts.
// @Tags         submissions
// @Accept       multipart/form-data
// @Success      202
// @Failure      default {object} apperr.appError "Error"
// @Router       /submissions [post]
func (h *Handler) GuestSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error(ctx, err).Msg("article.Handler.GuestSubmit: multipart parse failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	pdf, pdfClose, err := formFile(r, partPDF)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}
	defer pdfClose()
	docx, docxClose, err := formFile(r, partDOCX)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}
	defer docxClose()

	err = h.svc.GuestSubmit(ctx, usecase.GuestSubmitCmd{
		Title:       r.FormValue("title"),
		Abstract:    r.FormValue("abstract"),
		AuthorName:  r.FormValue("author_name"),
		AuthorEmail: r.FormValue("author_email"),
		PDF:         pdf,
		DOCX:        docx,
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// VerifyGuest godoc
// @Summary      Verify guest submission
// @Description  Consumes a verification code and creates the parked submission.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        request body VerifyInput true "Verification code"
// @Success      201 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /submissions/verify [post]
func (h *Handler) VerifyGuest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in VerifyInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).Msg("article.Handler.VerifyGuest: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	a, err := h.svc.VerifyGuest(ctx, in.Code)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusCreated, a)
}

// List godoc
// @Summary      List articles
// @Description  Published articles for everyone; admins see all, participants additionally their own work. Optional status filter.
// @Tags         articles
// @Produce      json
// @Param        status query string false "Status filter"
// @Success      200 {array} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status *article.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := article.Status(raw)
		if !s.Valid() {
			httpx.ReturnError(ctx, w, apperr.ErrBadRequest().WithDetail("unknown status"))
			return
		}
		status = &s
	}

	articles, err := h.svc.List(ctx, status)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, articles)
}

// Get godoc
// @Summary      Get article
// @Tags         articles
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	a, err := h.svc.Get(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// GetBySlug godoc
// @Summary      Get article by slug
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/slug/{slug} [get]
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.svc.GetBySlug(ctx, chi.URLParam(r, URLParamSlug))
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// AssignEditor godoc
// @Summary      Assign editor
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body AssignInput true "Assignment"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/editor [post]
func (h *Handler) AssignEditor(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.AssignEditor, "article.Handler.AssignEditor")
}

// AssignReviewer godoc
// @Summary      Assign reviewer
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body AssignInput true "Assignment"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/reviewer [post]
func (h *Handler) AssignReviewer(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.AssignReviewer, "article.Handler.AssignReviewer")
}

// ReassignEditor godoc
// @Summary      Reassign editor
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body AssignInput true "Assignment"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/editor [put]
func (h *Handler) ReassignEditor(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.ReassignEditor, "article.Handler.ReassignEditor")
}

// ReassignReviewer godoc
// @Summary      Reassign reviewer
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body AssignInput true "Assignment"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/reviewer [put]
func (h *Handler) ReassignReviewer(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.ReassignReviewer, "article.Handler.ReassignReviewer")
}

func (h *Handler) assign(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, article.AssignReq) (article.Article, error),
	label string,
) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	var in AssignInput
	if err = httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).Msg(label + ": request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	a, err := op(ctx, article.AssignReq{ArticleID: id, AssigneeID: in.AssigneeID, Comments: in.Comments})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// UploadEditorCorrection godoc
// @Summary      Upload editor correction
// @Description  Multipart form with a file part plus format and comments fields.
// @Tags         workflow
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        file formData file true "Corrected document"
// @Param        format formData string true "pdf or docx"
// @Param        comments formData string false "Comments"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/corrections/editor [post]
func (h *Handler) UploadEditorCorrection(w http.ResponseWriter, r *http.Request) {
	h.uploadCorrection(w, r, h.svc.UploadEditorCorrection, "article.Handler.UploadEditorCorrection")
}

// UploadReviewerCorrection godoc
// @Summary      Upload reviewer correction
// @Description  Multipart form with a file part plus format and comments fields.
// @Tags         workflow
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        file formData file true "Corrected document"
// @Param        format formData string true "pdf or docx"
// @Param        comments formData string false "Comments"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/corrections/reviewer [post]
func (h *Handler) UploadReviewerCorrection(w http.ResponseWriter, r *http.Request) {
	h.uploadCorrection(w, r, h.svc.UploadReviewerCorrection, "article.Handler.UploadReviewerCorrection")
}

func (h *Handler) uploadCorrection(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, usecase.UploadCorrectionCmd) (article.Article, error),
	label string,
) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error(ctx, err).Msg(label + ": multipart parse failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	file, fileClose, err := formFile(r, partFile)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}
	defer fileClose()

	a, err := op(ctx, usecase.UploadCorrectionCmd{
		ArticleID: id,
		File:      file,
		Format:    formatFromForm(r),
		Comments:  r.FormValue("comments"),
	})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// EditorApprove godoc
// @Summary      Editor approve
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body ApproveInput true "Approval"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/approve/editor [post]
func (h *Handler) EditorApprove(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.svc.EditorApprove, "article.Handler.EditorApprove")
}

// ReviewerApprove godoc
// @Summary      Reviewer approve
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body ApproveInput true "Approval"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/approve/reviewer [post]
func (h *Handler) ReviewerApprove(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.svc.ReviewerApprove, "article.Handler.ReviewerApprove")
}

// Reject godoc
// @Summary      Reject submission
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body ApproveInput true "Rejection comments"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/reject [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.svc.Reject, "article.Handler.Reject")
}

func (h *Handler) approve(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, article.ApproveReq) (article.Article, error),
	label string,
) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	in := ApproveInput{}
	if r.ContentLength > 0 {
		if err = httpx.DecodeJSON(r, &in); err != nil {
			logger.Error(ctx, err).Msg(label + ": request json decode failed")
			httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
			return
		}
	}

	a, err := op(ctx, article.ApproveReq{ArticleID: id, Comments: in.Comments})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// SetCitation godoc
// @Summary      Set citation number
// @Tags         workflow
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        request body SetCitationInput true "Citation number"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/citation [post]
func (h *Handler) SetCitation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	var in SetCitationInput
	if err = httpx.DecodeJSON(r, &in); err != nil {
		logger.Error(ctx, err).Msg("article.Handler.SetCitation: request json decode failed")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
		return
	}

	a, err := h.svc.SetCitation(ctx, article.SetCitationReq{ArticleID: id, CitationNumber: in.CitationNumber})
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// Publish godoc
// @Summary      Publish article
// @Description  Multipart form; an optional file part with a format field swaps in a final admin-edited artifact.
// @Tags         workflow
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        file formData file false "Final document"
// @Param        format formData string false "pdf or docx"
// @Param        comments formData string false "Comments"
// @Success      200 {object} article.Article
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/publish [post]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	cmd := usecase.PublishCmd{ArticleID: id}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
			logger.Error(ctx, err).Msg("article.Handler.Publish: multipart parse failed")
			httpx.ReturnError(ctx, w, apperr.ErrBadRequest())
			return
		}
		cmd.Comments = r.FormValue("comments")
		if file, fileClose, ferr := formFile(r, partFile); ferr == nil {
			defer fileClose()
			cmd.File = &file
			cmd.Format = formatFromForm(r)
		}
	}

	a, err := h.svc.Publish(ctx, cmd)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, a)
}

// Delete godoc
// @Summary      Delete article
// @Description  Tombstones the article; the change log and version store are retained.
// @Tags         articles
// @Security     BearerAuth
// @Param        article_id path string true "Article ID"
// @Success      204
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	if err = h.svc.Delete(ctx, id); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Versions godoc
// @Summary      List document versions
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Success      200 {array} version.DocumentVersion
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/versions [get]
func (h *Handler) Versions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	versions, err := h.svc.Versions(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, versions)
}

// History godoc
// @Summary      Article change log
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Success      200 {array} changelog.Entry
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	entries, err := h.svc.History(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, entries)
}

// DiffSummary godoc
// @Summary      Diff summary for a change-log entry
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Param        entry_id path string true "Change-log entry ID"
// @Success      200 {object} diff.Stats
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/history/{entry_id}/diff [get]
func (h *Handler) DiffSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, URLParamEntryID))
	if err != nil {
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest().WithDetail("invalid entry ID"))
		return
	}

	stats, err := h.svc.DiffSummary(ctx, id, entryID)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, stats)
}

// Assignments godoc
// @Summary      Assignment history
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        article_id path string true "Article ID"
// @Success      200 {array} article.Assignment
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/assignments [get]
func (h *Handler) Assignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	assignments, err := h.svc.Assignments(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.WriteJSON(ctx, w, http.StatusOK, assignments)
}

// Download godoc
// @Summary      Download watermarked document
// @Description  Returns the latest artifact of the requested role and format, watermarked per download.
// @Tags         articles
// @Produce      application/octet-stream
// @Param        article_id path string true "Article ID"
// @Param        role query string true "Version role: original, editor, reviewer or admin"
// @Param        format query string false "pdf (default) or docx"
// @Success      200 {file} binary
// @Failure      default {object} apperr.appError "Error"
// @Router       /articles/{article_id}/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := articleID(r)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	role := version.Role(strings.ToUpper(r.URL.Query().Get("role")))
	format := version.FormatPDF
	if raw := r.URL.Query().Get("format"); raw != "" {
		format = version.Format(strings.ToUpper(raw))
	}

	data, name, err := h.svc.Download(ctx, id, role, format)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if _, err = w.Write(data); err != nil {
		logger.Error(ctx, err).Msg("article.Handler.Download: response write failed")
	}
}

func articleID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, URLParamArticleID))
	if err != nil {
		return uuid.Nil, apperr.ErrBadRequest().WithDetail("invalid article ID")
	}
	return id, nil
}

func formFile(r *http.Request, part string) (usecase.FileUpload, func(), error) {
	f, header, err := r.FormFile(part)
	if err != nil {
		return usecase.FileUpload{}, nil, apperr.ErrBadRequest().WithDetail("missing file part: " + part)
	}

	return usecase.FileUpload{
		Reader:      f,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, func() { closeFile(f) }, nil
}

func closeFile(f multipart.File) {
	_ = f.Close()
}

func formatFromForm(r *http.Request) version.Format {
	return version.Format(strings.ToUpper(r.FormValue("format")))
}

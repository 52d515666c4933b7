package article_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/article/mocks"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// txStub runs the closure against itself so core transactions execute inline.
type txStub struct{}

func (s *txStub) Transaction(fc func(tx tx.Transaction) error) error { return fc(s) }
func (s *txStub) GetDB(_ context.Context) *gorm.DB                   { return nil }

type mock struct {
	repo        *mocks.RepositoryMock
	assignments *mocks.AssignmentRepositoryMock
	versions    *mocks.VersionServiceMock
	entries     *mocks.ChangelogServiceMock
	users       *mocks.UserServiceMock
	idGen       *mocks.IDGeneratorMock
	timeGen     *mocks.TimeGeneratorMock
}

func newMock(t *testing.T) mock {
	return mock{
		repo:        mocks.NewRepositoryMock(t),
		assignments: mocks.NewAssignmentRepositoryMock(t),
		versions:    mocks.NewVersionServiceMock(t),
		entries:     mocks.NewChangelogServiceMock(t),
		users:       mocks.NewUserServiceMock(t),
		idGen:       mocks.NewIDGeneratorMock(t),
		timeGen:     mocks.NewTimeGeneratorMock(t),
	}
}

func cfg() article.Config {
	return article.Config{MaxTitleLength: 300, MaxAbstractLength: 2000}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action article.Action
		status article.Status
		want   bool
	}{
		{article.ActionAssignEditor, article.StatusPendingAdminReview, true},
		{article.ActionAssignEditor, article.StatusEditorInProgress, false},
		{article.ActionUploadEditorCorrection, article.StatusAssignedToEditor, true},
		{article.ActionUploadEditorCorrection, article.StatusEditorInProgress, true},
		{article.ActionUploadEditorCorrection, article.StatusReviewerInProgress, false},
		{article.ActionEditorApprove, article.StatusEditorInProgress, true},
		{article.ActionEditorApprove, article.StatusAssignedToEditor, false},
		{article.ActionAssignReviewer, article.StatusEditorApproved, true},
		{article.ActionAssignReviewer, article.StatusPendingAdminReview, false},
		{article.ActionUploadEditorCorrection, article.StatusPublished, false},
		{article.ActionUploadEditorCorrection, article.StatusRejected, false},
		{article.ActionUploadEditorCorrection, article.StatusDeleted, false},
		{article.ActionUploadReviewerCorrection, article.StatusReviewerInProgress, true},
		{article.ActionUploadReviewerCorrection, article.StatusPublished, false},
		{article.ActionReviewerApprove, article.StatusReviewerInProgress, true},
		{article.ActionSetCitation, article.StatusReviewerApproved, true},
		{article.ActionSetCitation, article.StatusPublished, false},
		{article.ActionPublish, article.StatusReviewerApproved, true},
		{article.ActionPublish, article.StatusEditorApproved, false},
		{article.ActionReject, article.StatusPendingAdminReview, true},
		{article.ActionReject, article.StatusEditorInProgress, false},
		{article.ActionReassignEditor, article.StatusEditorInProgress, true},
		{article.ActionReassignEditor, article.StatusEditorApproved, true},
		{article.ActionReassignEditor, article.StatusAssignedToReviewer, true},
		{article.ActionReassignEditor, article.StatusReviewerInProgress, true},
		{article.ActionReassignEditor, article.StatusReviewerApproved, true},
		{article.ActionReassignEditor, article.StatusPendingAdminReview, false},
		{article.ActionReassignEditor, article.StatusPublished, false},
		{article.ActionReassignReviewer, article.StatusAssignedToReviewer, true},
		{article.ActionReassignReviewer, article.StatusReviewerApproved, true},
		{article.ActionReassignReviewer, article.StatusEditorApproved, false},
		{article.ActionReassignReviewer, article.StatusDeleted, false},
		{article.ActionDelete, article.StatusPendingAdminReview, true},
		{article.ActionDelete, article.StatusReviewerApproved, true},
		{article.ActionDelete, article.StatusPublished, false},
		{article.ActionDelete, article.StatusRejected, false},
		{article.ActionDelete, article.StatusDeleted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.action)+"/"+string(tt.status), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, article.CanTransition(tt.action, tt.status))
		})
	}
}

func TestCore_Submit(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		id       = uuid.New()
		authorID = uuid.New()
		now      = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		validReq = article.SubmitReq{
			Title:        "On the Limits of Judicial Review",
			Abstract:     "A short abstract.",
			AuthorName:   "Jane Doe",
			AuthorEmail:  "Jane.Doe@example.com",
			AuthorUserID: &authorID,
			PDFURL:       "https://blob/original.pdf",
			DOCXURL:      "https://blob/original.docx",
		}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.idGen.NewMock.Return(id, nil)
		m.timeGen.NowMock.Return(now)

		var created article.Article
		m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			created = a
			return nil
		})

		var recorded []version.RecordReq
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
			recorded = append(recorded, req)
			return version.DocumentVersion{ID: uuid.New(), ArticleID: req.ArticleID, Role: req.Role, Format: req.Format, URL: req.URL}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.Submit(ctx, validReq)
		require.NoError(t, err)

		require.Equal(t, article.Article{
			ID:              id,
			Slug:            "on-the-limits-of-judicial-review",
			Title:           "On the Limits of Judicial Review",
			Abstract:        "A short abstract.",
			AuthorName:      "Jane Doe",
			AuthorEmail:     "jane.doe@example.com",
			AuthorUserID:    &authorID,
			Status:          article.StatusPendingAdminReview,
			OriginalPDFURL:  "https://blob/original.pdf",
			OriginalDOCXURL: "https://blob/original.docx",
			CurrentPDFURL:   "https://blob/original.pdf",
			CurrentDOCXURL:  "https://blob/original.docx",
			CreatedAt:       now,
			UpdatedAt:       now,
		}, created)

		require.Len(t, recorded, 2)
		require.Equal(t, version.RoleOriginal, recorded[0].Role)
		require.Equal(t, version.FormatPDF, recorded[0].Format)
		require.Equal(t, version.RoleOriginal, recorded[1].Role)
		require.Equal(t, version.FormatDOCX, recorded[1].Format)
		require.Equal(t, authorID, recorded[0].ProducedBy)

		require.Equal(t, created, res.Article)
		require.Len(t, res.Versions, 2)
		require.Nil(t, res.Entry)
	})

	t.Run("guest_versions_attributed_to_article", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.idGen.NewMock.Return(id, nil)
		m.timeGen.NowMock.Return(now)
		m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, _ article.Article) error { return nil })

		var recorded []version.RecordReq
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
			recorded = append(recorded, req)
			return version.DocumentVersion{}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		guestReq := validReq
		guestReq.AuthorUserID = nil
		_, err = core.Submit(ctx, guestReq)
		require.NoError(t, err)

		require.Len(t, recorded, 2)
		require.Equal(t, id, recorded[0].ProducedBy)
	})

	validationTests := []struct {
		name    string
		mutate  func(req *article.SubmitReq)
		wantErr error
	}{
		{name: "empty_title", mutate: func(r *article.SubmitReq) { r.Title = "  " }, wantErr: article.ErrTitleEmpty()},
		{name: "empty_author_name", mutate: func(r *article.SubmitReq) { r.AuthorName = "" }, wantErr: article.ErrAuthorNameEmpty()},
		{name: "bad_email", mutate: func(r *article.SubmitReq) { r.AuthorEmail = "not-an-email" }, wantErr: article.ErrInvalidAuthorEmail()},
		{name: "missing_pdf", mutate: func(r *article.SubmitReq) { r.PDFURL = "" }, wantErr: article.ErrFileURLRequired()},
		{name: "missing_docx", mutate: func(r *article.SubmitReq) { r.DOCXURL = "" }, wantErr: article.ErrFileURLRequired()},
	}
	for _, tt := range validationTests {
		t.Run("error/"+tt.name, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
			require.NoError(t, err)

			req := validReq
			tt.mutate(&req)
			_, err = core.Submit(ctx, req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCore_AssignEditor(t *testing.T) {
	t.Parallel()

	var (
		ctx          = context.Background()
		articleID    = uuid.New()
		assigneeID   = uuid.New()
		assignmentID = uuid.New()
		now          = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		admin        = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
		stored       = article.Article{ID: articleID, Status: article.StatusPendingAdminReview}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.users.RequireRoleMock.Expect(ctx, assigneeID, user.RoleEditor).Return(nil)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, id uuid.UUID) (article.Article, error) {
			require.Equal(t, articleID, id)
			return stored, nil
		})
		m.timeGen.NowMock.Return(now)
		m.idGen.NewMock.Return(assignmentID, nil)
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusAssignedToEditor, a.Status)
			require.Equal(t, &assigneeID, a.AssignedEditorID)
			return nil
		})
		m.assignments.OpenMock.Set(func(_ context.Context, _ tx.Transaction, a article.Assignment) error {
			require.Equal(t, article.Assignment{
				ID: assignmentID, ArticleID: articleID, Role: article.AssignmentEditor,
				UserID: assigneeID, AssignedBy: admin.ID, AssignedAt: now,
			}, a)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, version.RoleAdmin, req.Role)
			require.Equal(t, admin.ID, req.ActorID)
			return changelog.Entry{ID: uuid.New(), ArticleID: req.ArticleID}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.AssignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: assigneeID})
		require.NoError(t, err)
		require.Equal(t, article.StatusAssignedToEditor, res.Article.Status)
		require.NotNil(t, res.Entry)
	})

	t.Run("error/not_admin", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		editor := article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleEditor}}
		_, err = core.AssignEditor(ctx, editor, article.AssignReq{ArticleID: articleID, AssigneeID: assigneeID})
		require.ErrorIs(t, err, apperr.ErrForbidden())
	})

	t.Run("error/assignee_lacks_role", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.users.RequireRoleMock.Expect(ctx, assigneeID, user.RoleEditor).
			Return(user.ErrUserLacksRole(user.RoleEditor))

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		_, err = core.AssignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: assigneeID})
		require.ErrorIs(t, err, user.ErrUserLacksRole(user.RoleEditor))
	})

	t.Run("error/invalid_transition", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.users.RequireRoleMock.Expect(ctx, assigneeID, user.RoleEditor).Return(nil)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusPublished}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		_, err = core.AssignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: assigneeID})
		require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionAssignEditor, article.StatusPublished))
	})
}

func TestCore_UploadEditorCorrection(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		editorID  = uuid.New()
		now       = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
		stored    = article.Article{
			ID:               articleID,
			Status:           article.StatusAssignedToEditor,
			AssignedEditorID: &editorID,
			CurrentPDFURL:    "https://blob/original.pdf",
			CurrentDOCXURL:   "https://blob/original.docx",
		}
		validReq = article.UploadCorrectionReq{
			ArticleID: articleID,
			FileURL:   "https://blob/editor-1.pdf",
			Format:    version.FormatPDF,
			Comments:  "fixed citations in part II",
		}
	)

	t.Run("success_by_assignee", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return stored, nil
		})
		m.timeGen.NowMock.Return(now)
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
			require.Equal(t, version.RoleEditor, req.Role)
			require.Equal(t, editorID, req.ProducedBy)
			return version.DocumentVersion{ID: uuid.New()}, nil
		})
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusEditorInProgress, a.Status)
			require.Equal(t, "https://blob/editor-1.pdf", a.CurrentPDFURL)
			require.Equal(t, "https://blob/original.docx", a.CurrentDOCXURL)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "https://blob/original.pdf", req.OldFileURL)
			require.Equal(t, "https://blob/editor-1.pdf", req.NewFileURL)
			require.Equal(t, version.RoleEditor, req.Role)
			return changelog.Entry{ID: uuid.New()}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		editor := article.Actor{ID: editorID, Roles: []user.Role{user.RoleEditor}}
		res, err := core.UploadEditorCorrection(ctx, editor, validReq)
		require.NoError(t, err)
		require.Len(t, res.Versions, 1)
		require.NotNil(t, res.Entry)
	})

	t.Run("error/not_assigned", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return stored, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		stranger := article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleEditor}}
		_, err = core.UploadEditorCorrection(ctx, stranger, validReq)
		require.ErrorIs(t, err, article.ErrNotAssigned())
	})

	t.Run("error/published_rejects_any_actor", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			published := stored
			published.Status = article.StatusPublished
			return published, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		admin := article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
		_, err = core.UploadEditorCorrection(ctx, admin, validReq)
		require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionUploadEditorCorrection, article.StatusPublished))
	})

	t.Run("error/append_fails_rolls_back", func(t *testing.T) {
		t.Parallel()
		expErr := errors.New("expected error")
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return stored, nil
		})
		m.timeGen.NowMock.Return(now)
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, _ version.RecordReq) (version.DocumentVersion, error) {
			return version.DocumentVersion{ID: uuid.New()}, nil
		})
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ article.Article) error {
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, _ changelog.AppendReq) (changelog.Entry, error) {
			return changelog.Entry{}, expErr
		})

		// The transaction callback must surface the append failure so the
		// status and version writes roll back with it.
		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		editor := article.Actor{ID: editorID, Roles: []user.Role{user.RoleEditor}}
		_, err = core.UploadEditorCorrection(ctx, editor, validReq)
		require.ErrorIs(t, err, expErr)
	})

	t.Run("error/missing_file_url", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		req := validReq
		req.FileURL = ""
		editor := article.Actor{ID: editorID, Roles: []user.Role{user.RoleEditor}}
		_, err = core.UploadEditorCorrection(ctx, editor, req)
		require.ErrorIs(t, err, article.ErrFileURLRequired())
	})
}

func TestCore_EditorApprove(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		editorID  = uuid.New()
		now       = time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
		stored    = article.Article{ID: articleID, Status: article.StatusEditorInProgress, AssignedEditorID: &editorID}
		editor    = article.Actor{ID: editorID, Roles: []user.Role{user.RoleEditor}}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return stored, nil
		})
		m.versions.LatestForMock.Expect(ctx, articleID, version.RoleEditor).
			Return(version.DocumentVersion{ID: uuid.New()}, nil)
		m.timeGen.NowMock.Return(now)
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusEditorApproved, a.Status)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "approved", req.Comments)
			return changelog.Entry{ID: uuid.New()}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.EditorApprove(ctx, editor, article.ApproveReq{ArticleID: articleID})
		require.NoError(t, err)
		require.Equal(t, article.StatusEditorApproved, res.Article.Status)
	})

	t.Run("error/no_corrected_version", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return stored, nil
		})
		m.versions.LatestForMock.Expect(ctx, articleID, version.RoleEditor).
			Return(version.DocumentVersion{}, version.ErrVersionNotFound())

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		_, err = core.EditorApprove(ctx, editor, article.ApproveReq{ArticleID: articleID})
		require.ErrorIs(t, err, article.ErrNoCorrectedVersion())
	})
}

func TestCore_SetCitation(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		admin     = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusReviewerApproved}, nil
		})
		m.repo.SetCitationMock.Set(func(_ context.Context, _ tx.Transaction, id uuid.UUID, citation string) error {
			require.Equal(t, articleID, id)
			require.Equal(t, "2025 LN(3)A12", citation)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "citation number set to 2025 LN(3)A12", req.Comments)
			return changelog.Entry{ID: uuid.New()}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.SetCitation(ctx, admin, article.SetCitationReq{ArticleID: articleID, CitationNumber: "2025 LN(3)A12"})
		require.NoError(t, err)
		require.NotNil(t, res.Article.CitationNumber)
		require.Equal(t, "2025 LN(3)A12", *res.Article.CitationNumber)
	})

	badFormats := []string{"2025 LN(3)B12", "25 LN(3)A12", "2025 LN()A12", "2025 ln(3)a12", "2025 LN(3)A12 "}
	for _, citation := range badFormats {
		t.Run("error/bad_format/"+citation, func(t *testing.T) {
			t.Parallel()
			m := newMock(t)
			core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
			require.NoError(t, err)

			_, err = core.SetCitation(ctx, admin, article.SetCitationReq{ArticleID: articleID, CitationNumber: citation})
			require.ErrorIs(t, err, article.ErrInvalidCitationFormat())
		})
	}

	t.Run("error/not_admin", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		reviewer := article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleReviewer}}
		_, err = core.SetCitation(ctx, reviewer, article.SetCitationReq{ArticleID: articleID, CitationNumber: "2025 LN(3)A12"})
		require.ErrorIs(t, err, apperr.ErrForbidden())
	})
}

func TestCore_Publish(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		citation  = "2025 LN(3)A12"
		now       = time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)
		admin     = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusReviewerApproved, CitationNumber: &citation}, nil
		})
		m.timeGen.NowMock.Return(now)
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusPublished, a.Status)
			require.Equal(t, &now, a.PublishedAt)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "published", req.Comments)
			return changelog.Entry{ID: uuid.New()}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.Publish(ctx, admin, article.PublishReq{ArticleID: articleID})
		require.NoError(t, err)
		require.Equal(t, article.StatusPublished, res.Article.Status)
		require.Empty(t, res.Versions)
	})

	t.Run("error/citation_required", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusReviewerApproved}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		_, err = core.Publish(ctx, admin, article.PublishReq{ArticleID: articleID})
		require.ErrorIs(t, err, article.ErrCitationRequired())
	})
}

func TestCore_Reject(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		now       = time.Date(2025, 6, 6, 8, 0, 0, 0, time.UTC)
		admin     = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusPendingAdminReview}, nil
		})
		m.timeGen.NowMock.Return(now)
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusRejected, a.Status)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "rejected: out of scope for the journal", req.Comments)
			return changelog.Entry{ID: uuid.New()}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		res, err := core.Reject(ctx, admin, article.ApproveReq{ArticleID: articleID, Comments: "out of scope for the journal"})
		require.NoError(t, err)
		require.Equal(t, article.StatusRejected, res.Article.Status)
	})

	t.Run("error/after_assignment", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusEditorInProgress}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		_, err = core.Reject(ctx, admin, article.ApproveReq{ArticleID: articleID})
		require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionReject, article.StatusEditorInProgress))
	})
}

func TestCore_ReassignEditor(t *testing.T) {
	t.Parallel()

	var (
		ctx        = context.Background()
		articleID  = uuid.New()
		oldEditor  = uuid.New()
		newEditor  = uuid.New()
		now        = time.Date(2025, 6, 7, 16, 0, 0, 0, time.UTC)
		admin      = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
		operations []string
	)

	m := newMock(t)
	m.users.RequireRoleMock.Expect(ctx, newEditor, user.RoleEditor).Return(nil)
	m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
		return article.Article{ID: articleID, Status: article.StatusEditorInProgress, AssignedEditorID: &oldEditor}, nil
	})
	m.timeGen.NowMock.Return(now)
	m.idGen.NewMock.Return(uuid.New(), nil)
	m.assignments.CloseOpenMock.Set(func(_ context.Context, _ tx.Transaction, id uuid.UUID, role article.AssignmentRole, at time.Time) error {
		require.Equal(t, articleID, id)
		require.Equal(t, article.AssignmentEditor, role)
		require.Equal(t, now, at)
		operations = append(operations, "close")
		return nil
	})
	m.assignments.OpenMock.Set(func(_ context.Context, _ tx.Transaction, a article.Assignment) error {
		require.Equal(t, newEditor, a.UserID)
		operations = append(operations, "open")
		return nil
	})
	m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
		// status is untouched by a reassign
		require.Equal(t, article.StatusEditorInProgress, a.Status)
		require.Equal(t, &newEditor, a.AssignedEditorID)
		return nil
	})
	m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, _ changelog.AppendReq) (changelog.Entry, error) {
		return changelog.Entry{ID: uuid.New()}, nil
	})

	core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
	require.NoError(t, err)

	_, err = core.ReassignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: newEditor})
	require.NoError(t, err)
	require.Equal(t, []string{"close", "open"}, operations)
}

// The editor stays on record after approving, so an admin can still swap them
// while the reviewer works.
func TestCore_ReassignEditor_AfterEditorApproval(t *testing.T) {
	t.Parallel()

	var (
		ctx        = context.Background()
		articleID  = uuid.New()
		oldEditor  = uuid.New()
		newEditor  = uuid.New()
		reviewerID = uuid.New()
		now        = time.Date(2025, 6, 7, 17, 0, 0, 0, time.UTC)
		admin      = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
	)

	m := newMock(t)
	m.users.RequireRoleMock.Expect(ctx, newEditor, user.RoleEditor).Return(nil)
	m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
		return article.Article{
			ID:                 articleID,
			Status:             article.StatusReviewerInProgress,
			AssignedEditorID:   &oldEditor,
			AssignedReviewerID: &reviewerID,
		}, nil
	})
	m.timeGen.NowMock.Return(now)
	m.idGen.NewMock.Return(uuid.New(), nil)
	m.assignments.CloseOpenMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID, role article.AssignmentRole, _ time.Time) error {
		require.Equal(t, article.AssignmentEditor, role)
		return nil
	})
	m.assignments.OpenMock.Set(func(_ context.Context, _ tx.Transaction, a article.Assignment) error {
		require.Equal(t, newEditor, a.UserID)
		return nil
	})
	m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
		require.Equal(t, article.StatusReviewerInProgress, a.Status)
		require.Equal(t, &newEditor, a.AssignedEditorID)
		require.Equal(t, &reviewerID, a.AssignedReviewerID)
		return nil
	})
	m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, _ changelog.AppendReq) (changelog.Entry, error) {
		return changelog.Entry{ID: uuid.New()}, nil
	})

	core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
	require.NoError(t, err)

	res, err := core.ReassignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: newEditor})
	require.NoError(t, err)
	require.Equal(t, article.StatusReviewerInProgress, res.Article.Status)
}

func TestCore_Delete(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		now       = time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
		admin     = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusReviewerApproved}, nil
		})
		m.timeGen.NowMock.Return(now)
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, article.StatusDeleted, a.Status)
			return nil
		})
		m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
			require.Equal(t, "deleted", req.Comments)
			return changelog.Entry{ID: uuid.New()}, nil
		})
		m.repo.DeleteMock.Set(func(_ context.Context, _ tx.Transaction, id uuid.UUID) error {
			require.Equal(t, articleID, id)
			return nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		require.NoError(t, core.Delete(ctx, admin, articleID))
	})

	t.Run("error/terminal_status", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{ID: articleID, Status: article.StatusPublished}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		err = core.Delete(ctx, admin, articleID)
		require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionDelete, article.StatusPublished))
	})
}

// TestCore_WorkflowLifecycle walks one submission through the whole pipeline
// against stateful fakes: submit, editor pass, reviewer pass, citation,
// publish. Afterwards the article is terminal for every action.
func TestCore_WorkflowLifecycle(t *testing.T) {
	t.Parallel()

	var (
		ctx        = context.Background()
		authorID   = uuid.New()
		editorID   = uuid.New()
		reviewerID = uuid.New()
		now        = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		admin      = article.Actor{ID: uuid.New(), Roles: []user.Role{user.RoleAdmin}}
		editor     = article.Actor{ID: editorID, Roles: []user.Role{user.RoleEditor}}
		reviewer   = article.Actor{ID: reviewerID, Roles: []user.Role{user.RoleReviewer}}

		stored   article.Article
		recorded []version.DocumentVersion
		entries  []changelog.AppendReq
	)

	m := newMock(t)
	m.idGen.NewMock.Set(func() (uuid.UUID, error) { return uuid.New(), nil })
	m.timeGen.NowMock.Set(func() time.Time { return now })
	m.users.RequireRoleMock.Set(func(_ context.Context, _ uuid.UUID, _ user.Role) error { return nil })
	m.repo.CreateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
		stored = a
		return nil
	})
	m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
		return stored, nil
	})
	m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
		stored = a
		return nil
	})
	m.repo.SetCitationMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID, citation string) error {
		stored.CitationNumber = &citation
		return nil
	})
	m.assignments.OpenMock.Set(func(_ context.Context, _ tx.Transaction, _ article.Assignment) error { return nil })
	m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
		v := version.DocumentVersion{
			ID: uuid.New(), ArticleID: req.ArticleID, Role: req.Role,
			Format: req.Format, URL: req.URL, ProducedBy: req.ProducedBy,
		}
		recorded = append(recorded, v)
		return v, nil
	})
	m.versions.LatestForMock.Set(func(_ context.Context, articleID uuid.UUID, role version.Role) (version.DocumentVersion, error) {
		for i := len(recorded) - 1; i >= 0; i-- {
			if recorded[i].ArticleID == articleID && recorded[i].Role == role {
				return recorded[i], nil
			}
		}
		return version.DocumentVersion{}, version.ErrVersionNotFound()
	})
	m.entries.AppendMock.Set(func(_ context.Context, _ tx.Transaction, req changelog.AppendReq) (changelog.Entry, error) {
		entries = append(entries, req)
		return changelog.Entry{ID: uuid.New()}, nil
	})

	core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
	require.NoError(t, err)

	res, err := core.Submit(ctx, article.SubmitReq{
		Title:        "Interim Relief in Arbitration",
		Abstract:     "A short abstract.",
		AuthorName:   "Jane Doe",
		AuthorEmail:  "jane.doe@example.com",
		AuthorUserID: &authorID,
		PDFURL:       "https://blob/original.pdf",
		DOCXURL:      "https://blob/original.docx",
	})
	require.NoError(t, err)
	require.Equal(t, article.StatusPendingAdminReview, stored.Status)
	articleID := res.Article.ID

	_, err = core.AssignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: editorID})
	require.NoError(t, err)
	require.Equal(t, article.StatusAssignedToEditor, stored.Status)

	_, err = core.UploadEditorCorrection(ctx, editor, article.UploadCorrectionReq{
		ArticleID: articleID, FileURL: "https://blob/editor-1.pdf", Format: version.FormatPDF,
	})
	require.NoError(t, err)
	require.Equal(t, article.StatusEditorInProgress, stored.Status)
	require.Equal(t, "https://blob/editor-1.pdf", stored.CurrentPDFURL)

	_, err = core.EditorApprove(ctx, editor, article.ApproveReq{ArticleID: articleID})
	require.NoError(t, err)
	require.Equal(t, article.StatusEditorApproved, stored.Status)

	_, err = core.AssignReviewer(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: reviewerID})
	require.NoError(t, err)
	require.Equal(t, article.StatusAssignedToReviewer, stored.Status)

	_, err = core.UploadReviewerCorrection(ctx, reviewer, article.UploadCorrectionReq{
		ArticleID: articleID, FileURL: "https://blob/reviewer-1.pdf", Format: version.FormatPDF,
	})
	require.NoError(t, err)
	require.Equal(t, article.StatusReviewerInProgress, stored.Status)

	_, err = core.ReviewerApprove(ctx, reviewer, article.ApproveReq{ArticleID: articleID})
	require.NoError(t, err)
	require.Equal(t, article.StatusReviewerApproved, stored.Status)

	_, err = core.SetCitation(ctx, admin, article.SetCitationReq{ArticleID: articleID, CitationNumber: "2025 LN(3)A12"})
	require.NoError(t, err)
	require.NotNil(t, stored.CitationNumber)
	require.Equal(t, article.StatusReviewerApproved, stored.Status)

	_, err = core.Publish(ctx, admin, article.PublishReq{ArticleID: articleID})
	require.NoError(t, err)
	require.Equal(t, article.StatusPublished, stored.Status)
	require.NotNil(t, stored.PublishedAt)

	// Two originals plus one correction per pass.
	require.Len(t, recorded, 4)
	require.Len(t, entries, 8)

	// Published is terminal: no further upload, reassignment or delete.
	_, err = core.UploadEditorCorrection(ctx, admin, article.UploadCorrectionReq{
		ArticleID: articleID, FileURL: "https://blob/late.pdf", Format: version.FormatPDF,
	})
	require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionUploadEditorCorrection, article.StatusPublished))

	_, err = core.ReassignEditor(ctx, admin, article.AssignReq{ArticleID: articleID, AssigneeID: uuid.New()})
	require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionReassignEditor, article.StatusPublished))

	err = core.Delete(ctx, admin, articleID)
	require.ErrorIs(t, err, article.ErrInvalidTransition(article.ActionDelete, article.StatusPublished))
}

func TestCore_RefreshCurrent(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		now       = time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)
		source    = version.DocumentVersion{
			ID:        uuid.New(),
			ArticleID: articleID,
			Role:      version.RoleEditor,
			Format:    version.FormatPDF,
			URL:       "https://blob/editor-1.pdf",
		}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.timeGen.NowMock.Return(now)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, id uuid.UUID) (article.Article, error) {
			require.Equal(t, articleID, id)
			return article.Article{
				ID:             articleID,
				Status:         article.StatusEditorInProgress,
				CurrentPDFURL:  "https://blob/editor-1.pdf",
				CurrentDOCXURL: "https://blob/original.docx",
			}, nil
		})
		m.repo.UpdateMock.Set(func(_ context.Context, _ tx.Transaction, a article.Article) error {
			require.Equal(t, "https://blob/editor-1.pdf", a.CurrentPDFURL)
			require.Equal(t, "https://blob/editor-1.docx", a.CurrentDOCXURL)
			require.Equal(t, now, a.UpdatedAt)
			return nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		require.NoError(t, core.RefreshCurrent(ctx, &txStub{}, source, "https://blob/editor-1.docx"))
	})

	t.Run("skips_superseded_source", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.repo.GetForUpdateMock.Set(func(_ context.Context, _ tx.Transaction, _ uuid.UUID) (article.Article, error) {
			return article.Article{
				ID:             articleID,
				Status:         article.StatusReviewerInProgress,
				CurrentPDFURL:  "https://blob/reviewer-1.pdf",
				CurrentDOCXURL: "https://blob/reviewer-1.docx",
			}, nil
		})

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		require.NoError(t, core.RefreshCurrent(ctx, &txStub{}, source, "https://blob/editor-1.docx"))
	})

	t.Run("error/missing_url", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)

		core, err := article.NewCore(m.repo, m.assignments, m.versions, m.entries, m.users, &txStub{}, m.idGen, m.timeGen, cfg())
		require.NoError(t, err)

		err = core.RefreshCurrent(ctx, &txStub{}, source, "")
		require.ErrorIs(t, err, article.ErrFileURLRequired())
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"On the Limits of Judicial Review", "on-the-limits-of-judicial-review"},
		{"  Trailing & Leading!  ", "trailing-leading"},
		{"Art. 12 — Revisited", "art-12-revisited"},
		{"ALL CAPS", "all-caps"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, article.Slugify(tt.in))
		})
	}
}

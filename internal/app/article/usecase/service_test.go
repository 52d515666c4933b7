package usecase_test

//go:generate minimock -o ./mocks -s _mock.go
//go:generate minimock -i github.com/lexnotes/journal/internal/infrastructure/storage.Store -o ./mocks -s _mock.go
//go:generate minimock -i github.com/lexnotes/journal/internal/infrastructure/cache.KV -o ./mocks -s _mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/article/usecase"
	"github.com/lexnotes/journal/internal/app/article/usecase/mocks"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/cache"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type mock struct {
	core      *mocks.CoreMock
	versions  *mocks.VersionServiceMock
	entries   *mocks.ChangelogServiceMock
	users     *mocks.UserServiceMock
	store     *mocks.StoreMock
	kv        *mocks.KVMock
	watermark *mocks.WatermarkerMock
	notifier  *mocks.NotifierMock
	idGen     *mocks.IDGeneratorMock
	codeGen   *mocks.CodeGeneratorMock
	timeGen   *mocks.TimeGeneratorMock
}

func newMock(mc *minimock.Controller) mock {
	return mock{
		core:      mocks.NewCoreMock(mc),
		versions:  mocks.NewVersionServiceMock(mc),
		entries:   mocks.NewChangelogServiceMock(mc),
		users:     mocks.NewUserServiceMock(mc),
		store:     mocks.NewStoreMock(mc),
		kv:        mocks.NewKVMock(mc),
		watermark: mocks.NewWatermarkerMock(mc),
		notifier:  mocks.NewNotifierMock(mc),
		idGen:     mocks.NewIDGeneratorMock(mc),
		codeGen:   mocks.NewCodeGeneratorMock(mc),
		timeGen:   mocks.NewTimeGeneratorMock(mc),
	}
}

// service names the operations exercised here; NewService returns an
// unexported concrete type.
type service interface {
	Submit(ctx context.Context, cmd usecase.SubmitCmd) (article.Article, error)
	AssignEditor(ctx context.Context, req article.AssignReq) (article.Article, error)
	GuestSubmit(ctx context.Context, cmd usecase.GuestSubmitCmd) error
	VerifyGuest(ctx context.Context, code string) (article.Article, error)
	Get(ctx context.Context, id uuid.UUID) (article.Article, error)
	Download(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) ([]byte, string, error)
}

// newService wires the mocks with a nil processor: Dispatch runs on its own
// goroutine and would race the test's mock verification.
func newService(m mock) service {
	return usecase.NewService(
		m.core, m.versions, m.entries, m.users,
		m.store, m.kv, m.watermark, m.notifier, nil,
		m.idGen, m.codeGen, m.timeGen, usecase.Config{},
	)
}

func actorCtx(id uuid.UUID, roles ...string) context.Context {
	ctx := contextx.SetUserID(context.Background(), id)
	return contextx.SetUserRoles(ctx, roles)
}

func upload(content string) usecase.FileUpload {
	return usecase.FileUpload{
		Reader:      bytes.NewReader([]byte(content)),
		Size:        int64(len(content)),
		ContentType: "application/octet-stream",
		Filename:    "doc",
	}
}

func blobStore(m mock, fileID uuid.UUID) {
	m.idGen.NewMock.Return(fileID, nil)
	m.store.PutMock.Set(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
		return "https://blob/" + key, nil
	})
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	var (
		actorID = uuid.New()
		fileID  = uuid.New()
		account = user.User{ID: actorID, Email: "author@example.com", Name: "A. Author"}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctx := actorCtx(actorID, user.RoleAuthor.String())
		mc := minimock.NewController(t)
		m := newMock(mc)

		m.users.GetUserMock.Expect(ctx, actorID).Return(account, "", nil)
		blobStore(m, fileID)
		m.core.SubmitMock.Set(func(_ context.Context, req article.SubmitReq) (article.TransitionResult, error) {
			require.Equal(t, article.SubmitReq{
				Title:        "On Statutes",
				Abstract:     "A survey.",
				AuthorName:   account.Name,
				AuthorEmail:  account.Email,
				AuthorUserID: &actorID,
				PDFURL:       "https://blob/submissions/" + fileID.String() + ".pdf",
				DOCXURL:      "https://blob/submissions/" + fileID.String() + ".docx",
			}, req)
			return article.TransitionResult{Article: article.Article{ID: uuid.New(), AuthorEmail: account.Email}}, nil
		})
		m.notifier.NotifyMock.Set(func(_ context.Context, event string, _ uuid.UUID, recipients []string, _ map[string]string) error {
			require.Equal(t, usecase.EventSubmissionReceived, event)
			require.Equal(t, []string{account.Email}, recipients)
			return nil
		})

		_, err := newService(m).Submit(ctx, usecase.SubmitCmd{
			Title:    "On Statutes",
			Abstract: "A survey.",
			PDF:      upload("%PDF"),
			DOCX:     upload("PK"),
		})
		require.NoError(t, err)
	})

	t.Run("error/anonymous", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		_, err := newService(m).Submit(context.Background(), usecase.SubmitCmd{Title: "On Statutes"})
		require.Error(t, err)
	})
}

func TestService_GuestSubmit(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		fileID = uuid.New()
		now    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		blobStore(m, fileID)
		m.timeGen.NowMock.Return(now)
		m.codeGen.NewMock.Expect(6).Return("123456", nil)
		m.kv.SetMock.Set(func(_ context.Context, key, value string, ttl time.Duration) error {
			require.Equal(t, "submission:123456", key)
			// Twice the 30-minute verification window.
			require.Equal(t, time.Hour, ttl)

			var pending struct {
				Req       article.SubmitReq `json:"req"`
				ExpiresAt time.Time         `json:"expires_at"`
			}
			require.NoError(t, json.Unmarshal([]byte(value), &pending))
			require.Equal(t, "On Statutes", pending.Req.Title)
			require.Equal(t, "guest@example.com", pending.Req.AuthorEmail)
			require.Nil(t, pending.Req.AuthorUserID)
			require.True(t, strings.HasSuffix(pending.Req.PDFURL, ".pdf"))
			require.True(t, strings.HasSuffix(pending.Req.DOCXURL, ".docx"))
			require.Equal(t, now.Add(30*time.Minute), pending.ExpiresAt)
			return nil
		})
		m.notifier.NotifyMock.Set(func(_ context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) error {
			require.Equal(t, usecase.EventSubmissionVerification, event)
			require.Equal(t, uuid.Nil, articleID)
			require.Equal(t, []string{"guest@example.com"}, recipients)
			require.Equal(t, map[string]string{"code": "123456"}, meta)
			return nil
		})

		err := newService(m).GuestSubmit(ctx, usecase.GuestSubmitCmd{
			Title:       "On Statutes",
			AuthorName:  "G. Guest",
			AuthorEmail: "guest@example.com",
			PDF:         upload("%PDF"),
			DOCX:        upload("PK"),
		})
		require.NoError(t, err)
	})

	t.Run("error/missing_file", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		err := newService(m).GuestSubmit(ctx, usecase.GuestSubmitCmd{
			Title:       "On Statutes",
			AuthorEmail: "guest@example.com",
		})
		require.ErrorIs(t, err, article.ErrFileURLRequired())
	})
}

func TestService_VerifyGuest(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		req = article.SubmitReq{
			Title:       "On Statutes",
			AuthorName:  "G. Guest",
			AuthorEmail: "guest@example.com",
			PDFURL:      "https://blob/submissions/a.pdf",
			DOCXURL:     "https://blob/submissions/a.docx",
		}
	)

	payload := func(t *testing.T, expiresAt time.Time) string {
		t.Helper()
		raw, err := json.Marshal(map[string]any{"req": req, "expires_at": expiresAt})
		require.NoError(t, err)
		return string(raw)
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		exp := article.Article{ID: uuid.New(), AuthorEmail: req.AuthorEmail, Status: article.StatusPendingAdminReview}
		m.kv.GetDelMock.Expect(ctx, "submission:123456").Return(payload(t, now.Add(time.Minute)), nil)
		m.timeGen.NowMock.Return(now)
		m.core.SubmitMock.Expect(ctx, req).Return(article.TransitionResult{Article: exp}, nil)
		m.notifier.NotifyMock.Set(func(_ context.Context, event string, articleID uuid.UUID, recipients []string, _ map[string]string) error {
			require.Equal(t, usecase.EventSubmissionReceived, event)
			require.Equal(t, exp.ID, articleID)
			require.Equal(t, []string{req.AuthorEmail}, recipients)
			return nil
		})

		got, err := newService(m).VerifyGuest(ctx, "123456")
		require.NoError(t, err)
		require.Equal(t, exp, got)
	})

	t.Run("error/unknown_code", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		m.kv.GetDelMock.Expect(ctx, "submission:000000").Return("", cache.ErrCacheMiss)

		_, err := newService(m).VerifyGuest(ctx, "000000")
		require.ErrorIs(t, err, article.ErrVerificationCodeInvalid())
	})

	t.Run("error/expired_code", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		m.kv.GetDelMock.Expect(ctx, "submission:123456").Return(payload(t, now.Add(-time.Minute)), nil)
		m.timeGen.NowMock.Return(now)

		_, err := newService(m).VerifyGuest(ctx, "123456")
		require.ErrorIs(t, err, article.ErrVerificationCodeExpired())
	})
}

func TestService_AssignEditor(t *testing.T) {
	t.Parallel()

	var (
		adminID  = uuid.New()
		editorID = uuid.New()
		req      = article.AssignReq{ArticleID: uuid.New(), AssigneeID: editorID}
		assigned = article.Article{ID: req.ArticleID, Status: article.StatusAssignedToEditor, AssignedEditorID: &editorID}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctx := actorCtx(adminID, user.RoleAdmin.String())
		mc := minimock.NewController(t)
		m := newMock(mc)

		actor := article.Actor{ID: adminID, Roles: []user.Role{user.RoleAdmin}}
		m.core.AssignEditorMock.Expect(ctx, actor, req).Return(article.TransitionResult{Article: assigned}, nil)
		m.users.GetUserMock.Expect(ctx, editorID).Return(user.User{ID: editorID, Email: "editor@example.com"}, "", nil)
		m.notifier.NotifyMock.Set(func(_ context.Context, event string, articleID uuid.UUID, recipients []string, _ map[string]string) error {
			require.Equal(t, usecase.EventEditorAssigned, event)
			require.Equal(t, req.ArticleID, articleID)
			require.Equal(t, []string{"editor@example.com"}, recipients)
			return nil
		})

		got, err := newService(m).AssignEditor(ctx, req)
		require.NoError(t, err)
		require.Equal(t, assigned, got)
	})

	// A failed assignee lookup skips the notification but never fails the
	// assignment; the lookup error is logged.
	t.Run("success/assignee_lookup_fails", func(t *testing.T) {
		t.Parallel()

		var logged bytes.Buffer
		ctx := zerolog.New(&logged).WithContext(actorCtx(adminID, user.RoleAdmin.String()))
		mc := minimock.NewController(t)
		m := newMock(mc)

		actor := article.Actor{ID: adminID, Roles: []user.Role{user.RoleAdmin}}
		m.core.AssignEditorMock.Expect(ctx, actor, req).Return(article.TransitionResult{Article: assigned}, nil)
		m.users.GetUserMock.Expect(ctx, editorID).Return(user.User{}, "", errors.New("user gone"))

		got, err := newService(m).AssignEditor(ctx, req)
		require.NoError(t, err)
		require.Equal(t, assigned, got)
		require.Contains(t, logged.String(), "failed to load assignee for notification")
		require.Contains(t, logged.String(), "user gone")
	})
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	var (
		authorID = uuid.New()
		editorID = uuid.New()
		otherID  = uuid.New()
	)

	draft := article.Article{
		ID:               uuid.New(),
		Status:           article.StatusEditorInProgress,
		AuthorUserID:     &authorID,
		AssignedEditorID: &editorID,
	}
	published := article.Article{ID: uuid.New(), Status: article.StatusPublished}

	tests := []struct {
		name    string
		ctx     context.Context
		article article.Article
		wantErr bool
	}{
		{name: "published_visible_to_anonymous", ctx: context.Background(), article: published},
		{name: "draft_hidden_from_anonymous", ctx: context.Background(), article: draft, wantErr: true},
		{name: "draft_hidden_from_stranger", ctx: actorCtx(otherID, user.RoleAuthor.String()), article: draft, wantErr: true},
		{name: "draft_visible_to_author", ctx: actorCtx(authorID, user.RoleAuthor.String()), article: draft},
		{name: "draft_visible_to_assigned_editor", ctx: actorCtx(editorID, user.RoleEditor.String()), article: draft},
		{name: "draft_visible_to_admin", ctx: actorCtx(otherID, user.RoleAdmin.String()), article: draft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			m := newMock(mc)
			m.core.GetMock.Expect(tc.ctx, tc.article.ID).Return(tc.article, nil)

			got, err := newService(m).Get(tc.ctx, tc.article.ID)
			if tc.wantErr {
				require.ErrorIs(t, err, article.ErrArticleNotFound())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.article, got)
		})
	}
}

func TestService_Download(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		citation = "2026 LN(2)A7"
		a        = article.Article{
			ID:             uuid.New(),
			Slug:           "on-statutes",
			Title:          "On Statutes",
			Status:         article.StatusPublished,
			CitationNumber: &citation,
		}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		v := version.DocumentVersion{ID: uuid.New(), URL: "https://blob/editor-2.pdf"}
		m.core.GetMock.Expect(ctx, a.ID).Return(a, nil)
		m.versions.LatestForFormatMock.Expect(ctx, a.ID, version.RoleEditor, version.FormatPDF).Return(v, nil)
		m.watermark.WatermarkMock.Expect(ctx, v.URL, map[string]string{
			"title":           a.Title,
			"status":          a.Status.String(),
			"citation_number": citation,
		}, "public").Return([]byte("stamped"), nil)

		data, name, err := newService(m).Download(ctx, a.ID, version.RoleEditor, version.FormatPDF)
		require.NoError(t, err)
		require.Equal(t, []byte("stamped"), data)
		require.Equal(t, "on-statutes-editor.pdf", name)
	})

	t.Run("error/invalid_role", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		_, _, err := newService(m).Download(ctx, a.ID, version.Role("BOGUS"), version.FormatPDF)
		require.ErrorIs(t, err, version.ErrInvalidRole())
	})

	t.Run("error/invalid_format", func(t *testing.T) {
		t.Parallel()

		mc := minimock.NewController(t)
		m := newMock(mc)

		_, _, err := newService(m).Download(ctx, a.ID, version.RoleEditor, version.Format("BOGUS"))
		require.ErrorIs(t, err, version.ErrInvalidFormat())
	})
}

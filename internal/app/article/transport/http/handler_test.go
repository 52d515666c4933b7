package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	article_http "github.com/lexnotes/journal/internal/app/article/transport/http"
	"github.com/lexnotes/journal/internal/app/article/transport/http/mocks"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testArticle() article.Article {
	now := time.Now().UTC().Truncate(time.Second)
	return article.Article{
		ID:              uuid.New(),
		Slug:            "on-the-interpretation-of-statutes",
		Title:           "On the Interpretation of Statutes",
		Abstract:        "A survey.",
		AuthorName:      "A. Author",
		AuthorEmail:     "author@example.com",
		Status:          article.StatusPendingAdminReview,
		OriginalPDFURL:  "https://blob/original.pdf",
		OriginalDOCXURL: "https://blob/original.docx",
		CurrentPDFURL:   "https://blob/original.pdf",
		CurrentDOCXURL:  "https://blob/original.docx",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func newRouter(svc *mocks.ServiceMock) *chi.Mux {
	h := article_http.NewHandler(svc)

	r := chi.NewRouter()
	r.Post("/submissions/verify", h.VerifyGuest)
	r.Get("/articles", h.List)
	r.Get("/articles/{"+article_http.URLParamArticleID+"}", h.Get)
	r.Get("/articles/slug/{"+article_http.URLParamSlug+"}", h.GetBySlug)
	r.Post("/articles/{"+article_http.URLParamArticleID+"}/editor", h.AssignEditor)
	r.Post("/articles/{"+article_http.URLParamArticleID+"}/citation", h.SetCitation)
	r.Delete("/articles/{"+article_http.URLParamArticleID+"}", h.Delete)
	r.Get("/articles/{"+article_http.URLParamArticleID+"}/download", h.Download)
	r.Get("/articles/{"+article_http.URLParamArticleID+"}/history/{"+article_http.URLParamEntryID+"}/diff", h.DiffSummary)

	return r
}

func decodeArticle(t *testing.T, rr *httptest.ResponseRecorder) article.Article {
	t.Helper()
	var got article.Article
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	return got
}

func TestHandler_VerifyGuest(t *testing.T) {
	t.Parallel()

	exp := testArticle()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"code":"123456"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.VerifyGuestMock.Expect(minimock.AnyContext, "123456").Return(exp, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "error/bad_json",
			body:       `{"code":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "error/service_failed",
			body: `{"code":"123456"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.VerifyGuestMock.Expect(minimock.AnyContext, "123456").Return(article.Article{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/submissions/verify", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusCreated {
				require.Equal(t, exp, decodeArticle(t, rr))
			}
		})
	}
}

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	exp := testArticle()

	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name:   "success",
			target: "/articles/" + exp.ID.String(),
			setup: func(svc *mocks.ServiceMock) {
				svc.GetMock.Expect(minimock.AnyContext, exp.ID).Return(exp, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/invalid_id",
			target:     "/articles/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "error/service_failed",
			target: "/articles/" + exp.ID.String(),
			setup: func(svc *mocks.ServiceMock) {
				svc.GetMock.Expect(minimock.AnyContext, exp.ID).Return(article.Article{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				require.Equal(t, exp, decodeArticle(t, rr))
			}
		})
	}
}

func TestHandler_GetBySlug(t *testing.T) {
	t.Parallel()

	exp := testArticle()

	mc := minimock.NewController(t)
	svc := mocks.NewServiceMock(mc)
	svc.GetBySlugMock.Expect(minimock.AnyContext, exp.Slug).Return(exp, nil)

	req := httptest.NewRequest(http.MethodGet, "/articles/slug/"+exp.Slug, nil)
	rr := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, exp, decodeArticle(t, rr))
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	exp := testArticle()
	published := article.StatusPublished

	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name:   "success/no_filter",
			target: "/articles",
			setup: func(svc *mocks.ServiceMock) {
				svc.ListMock.Expect(minimock.AnyContext, nil).Return([]article.Article{exp}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "success/status_filter",
			target: "/articles?status=published",
			setup: func(svc *mocks.ServiceMock) {
				svc.ListMock.Expect(minimock.AnyContext, &published).Return([]article.Article{exp}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/unknown_status",
			target:     "/articles?status=bogus",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				var got []article.Article
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				require.Equal(t, []article.Article{exp}, got)
			}
		})
	}
}

func TestHandler_AssignEditor(t *testing.T) {
	t.Parallel()

	exp := testArticle()
	assigneeID := uuid.New()

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name:   "success",
			target: "/articles/" + exp.ID.String() + "/editor",
			body:   `{"assignee_id":"` + assigneeID.String() + `","comments":"please handle"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.AssignEditorMock.Expect(minimock.AnyContext, article.AssignReq{
					ArticleID:  exp.ID,
					AssigneeID: assigneeID,
					Comments:   "please handle",
				}).Return(exp, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/invalid_article_id",
			target:     "/articles/not-a-uuid/editor",
			body:       `{"assignee_id":"` + assigneeID.String() + `"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "error/bad_json",
			target:     "/articles/" + exp.ID.String() + "/editor",
			body:       `{"assignee_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "error/service_failed",
			target: "/articles/" + exp.ID.String() + "/editor",
			body:   `{"assignee_id":"` + assigneeID.String() + `"}`,
			setup: func(svc *mocks.ServiceMock) {
				svc.AssignEditorMock.Expect(minimock.AnyContext, article.AssignReq{
					ArticleID:  exp.ID,
					AssigneeID: assigneeID,
				}).Return(article.Article{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodPost, tc.target, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				require.Equal(t, exp, decodeArticle(t, rr))
			}
		})
	}
}

func TestHandler_SetCitation(t *testing.T) {
	t.Parallel()

	exp := testArticle()

	mc := minimock.NewController(t)
	svc := mocks.NewServiceMock(mc)
	svc.SetCitationMock.Expect(minimock.AnyContext, article.SetCitationReq{
		ArticleID:      exp.ID,
		CitationNumber: "2026 LN(2)A7",
	}).Return(exp, nil)

	req := httptest.NewRequest(http.MethodPost, "/articles/"+exp.ID.String()+"/citation",
		bytes.NewBufferString(`{"citation_number":"2026 LN(2)A7"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, exp, decodeArticle(t, rr))
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name       string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name: "success",
			setup: func(svc *mocks.ServiceMock) {
				svc.DeleteMock.Expect(minimock.AnyContext, id).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "error/service_failed",
			setup: func(svc *mocks.ServiceMock) {
				svc.DeleteMock.Expect(minimock.AnyContext, id).Return(errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			tc.setup(svc)

			req := httptest.NewRequest(http.MethodDelete, "/articles/"+id.String(), nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestHandler_Download(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	data := []byte("%PDF-1.7 watermarked")

	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name:   "success/default_format",
			target: "/articles/" + id.String() + "/download?role=editor",
			setup: func(svc *mocks.ServiceMock) {
				svc.DownloadMock.Expect(minimock.AnyContext, id, version.RoleEditor, version.FormatPDF).
					Return(data, "editor.pdf", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "success/explicit_docx",
			target: "/articles/" + id.String() + "/download?role=original&format=docx",
			setup: func(svc *mocks.ServiceMock) {
				svc.DownloadMock.Expect(minimock.AnyContext, id, version.RoleOriginal, version.FormatDOCX).
					Return(data, "original.docx", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/invalid_article_id",
			target:     "/articles/not-a-uuid/download?role=editor",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "error/service_failed",
			target: "/articles/" + id.String() + "/download?role=editor",
			setup: func(svc *mocks.ServiceMock) {
				svc.DownloadMock.Expect(minimock.AnyContext, id, version.RoleEditor, version.FormatPDF).
					Return(nil, "", errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				require.Equal(t, data, rr.Body.Bytes())
				require.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
				require.Contains(t, rr.Header().Get("Content-Disposition"), "attachment; filename=")
			}
		})
	}
}

func TestHandler_DiffSummary(t *testing.T) {
	t.Parallel()

	var (
		articleID = uuid.New()
		entryID   = uuid.New()
		stats     = diff.Stats{Added: 2, Removed: 1, Unchanged: 10, Total: 13}
	)

	tests := []struct {
		name       string
		target     string
		setup      func(svc *mocks.ServiceMock)
		wantStatus int
	}{
		{
			name:   "success",
			target: "/articles/" + articleID.String() + "/history/" + entryID.String() + "/diff",
			setup: func(svc *mocks.ServiceMock) {
				svc.DiffSummaryMock.Expect(minimock.AnyContext, articleID, entryID).Return(stats, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "error/invalid_entry_id",
			target:     "/articles/" + articleID.String() + "/history/not-a-uuid/diff",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mc := minimock.NewController(t)
			svc := mocks.NewServiceMock(mc)
			if tc.setup != nil {
				tc.setup(svc)
			}

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				var got diff.Stats
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				require.Equal(t, stats, got)
			}
		})
	}
}

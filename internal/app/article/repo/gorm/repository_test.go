//go:build testutil

package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/db"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var shared *db.TestDB

func TestMain(m *testing.M) {
	var stop func()
	shared, stop = db.StartPostgres()
	code := m.Run()
	stop()
	os.Exit(code)
}

func newRepos(t *testing.T) (*gormRepo, *assignmentRepo, *gorm.DB, tx.Transaction) {
	gdb, _, cleanup := shared.CreateIsolatedDB(t)
	t.Cleanup(cleanup)
	return NewRepository(gdb), NewAssignmentRepository(gdb), gdb, tx.New(gdb)
}

/* --- helpers --- */

func createUser(t *testing.T, gdb *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := gdb.WithContext(t.Context()).Exec(
		`INSERT INTO users(id,email,password_hash,name) VALUES ($1,$2,'hash','name')`,
		id, uuid.New().String(),
	).Error
	require.NoError(t, err)
	return id
}

func testArticle(title string, status article.Status) article.Article {
	id := uuid.New()
	return article.Article{
		ID:              id,
		Slug:            article.Slugify(title) + "-" + id.String(),
		Title:           title,
		Abstract:        "abstract",
		AuthorName:      "A. Author",
		AuthorEmail:     "author@example.com",
		Status:          status,
		OriginalPDFURL:  "https://files/orig.pdf",
		OriginalDOCXURL: "https://files/orig.docx",
		CurrentPDFURL:   "https://files/orig.pdf",
		CurrentDOCXURL:  "https://files/orig.docx",
	}
}

func compareArticle(t *testing.T, got, want article.Article) {
	t.Helper()
	require.NotZero(t, got.CreatedAt)
	require.NotZero(t, got.UpdatedAt)
	got.CreatedAt = time.Time{}
	got.UpdatedAt = time.Time{}
	want.CreatedAt = time.Time{}
	want.UpdatedAt = time.Time{}
	require.Equal(t, want, got)
}

/* --- tests --- */

func TestArticle_Create_Get_GetBySlug(t *testing.T) {
	t.Parallel()
	repo, _, _, txm := newRepos(t)

	a := testArticle("On Some Question of Law", article.StatusPendingAdminReview)
	require.NoError(t, repo.Create(t.Context(), txm, a))

	got, err := repo.Get(t.Context(), a.ID)
	require.NoError(t, err)
	compareArticle(t, got, a)

	got, err = repo.GetBySlug(t.Context(), a.Slug)
	require.NoError(t, err)
	compareArticle(t, got, a)

	err = txm.Transaction(func(tx tx.Transaction) error {
		got, err = repo.GetForUpdate(t.Context(), tx, a.ID)
		return err
	})
	require.NoError(t, err)
	compareArticle(t, got, a)

	// same slug again
	dup := testArticle("other title", article.StatusPendingAdminReview)
	dup.Slug = a.Slug
	err = repo.Create(t.Context(), txm, dup)
	require.ErrorIs(t, err, article.ErrSlugDuplicate())

	// not found
	_, err = repo.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, article.ErrArticleNotFound())
	_, err = repo.GetBySlug(t.Context(), "no-such-slug")
	require.ErrorIs(t, err, article.ErrArticleNotFound())
	err = txm.Transaction(func(tx tx.Transaction) error {
		_, err = repo.GetForUpdate(t.Context(), tx, uuid.New())
		return err
	})
	require.ErrorIs(t, err, article.ErrArticleNotFound())
}

func TestArticle_Update(t *testing.T) {
	t.Parallel()
	repo, _, gdb, txm := newRepos(t)

	editorID := createUser(t, gdb)
	a := testArticle("update target", article.StatusPendingAdminReview)
	require.NoError(t, repo.Create(t.Context(), txm, a))

	now := time.Now().UTC().Truncate(time.Second)
	a.Status = article.StatusAssignedToEditor
	a.AssignedEditorID = &editorID
	a.CurrentPDFURL = "https://files/edit.pdf"
	a.CurrentDOCXURL = "https://files/edit.docx"
	a.PublishedAt = &now
	require.NoError(t, repo.Update(t.Context(), txm, a))

	got, err := repo.Get(t.Context(), a.ID)
	require.NoError(t, err)
	compareArticle(t, got, a)

	// not found
	missing := testArticle("missing", article.StatusPendingAdminReview)
	err = repo.Update(t.Context(), txm, missing)
	require.ErrorIs(t, err, article.ErrArticleNotFound())
}

func TestArticle_SetCitation(t *testing.T) {
	t.Parallel()
	repo, _, _, txm := newRepos(t)

	holder := testArticle("citation holder", article.StatusReviewerApproved)
	other := testArticle("citation contender", article.StatusReviewerApproved)
	require.NoError(t, repo.Create(t.Context(), txm, holder))
	require.NoError(t, repo.Create(t.Context(), txm, other))

	const citation = "2025 LN(3)A12"
	require.NoError(t, repo.SetCitation(t.Context(), txm, holder.ID, citation))

	got, err := repo.Get(t.Context(), holder.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CitationNumber)
	require.Equal(t, citation, *got.CitationNumber)

	// duplicate reports the holder's title
	err = repo.SetCitation(t.Context(), txm, other.ID, citation)
	require.ErrorIs(t, err, article.ErrDuplicateCitation(holder.Title))
	require.ErrorContains(t, err, holder.Title)

	// not found
	err = repo.SetCitation(t.Context(), txm, uuid.New(), "2025 LN(3)A13")
	require.ErrorIs(t, err, article.ErrArticleNotFound())
}

func TestArticle_List(t *testing.T) {
	t.Parallel()
	repo, _, gdb, txm := newRepos(t)

	authorID := createUser(t, gdb)
	editorID := createUser(t, gdb)

	published := testArticle("published piece", article.StatusPublished)
	draft := testArticle("author draft", article.StatusPendingAdminReview)
	draft.AuthorUserID = &authorID
	inEdit := testArticle("being edited", article.StatusEditorInProgress)
	inEdit.AssignedEditorID = &editorID
	for _, a := range []article.Article{published, draft, inEdit} {
		require.NoError(t, repo.Create(t.Context(), txm, a))
	}

	ids := func(list []article.Article) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(list))
		for _, a := range list {
			out = append(out, a.ID)
		}
		return out
	}

	// anonymous: published only
	list, err := repo.List(t.Context(), article.ListFilter{})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{published.ID}, ids(list))

	// author sees published + own
	list, err = repo.List(t.Context(), article.ListFilter{AuthorID: &authorID, AssigneeID: &authorID})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{published.ID, draft.ID}, ids(list))

	// editor sees published + assigned
	list, err = repo.List(t.Context(), article.ListFilter{AuthorID: &editorID, AssigneeID: &editorID})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{published.ID, inEdit.ID}, ids(list))

	// admin sees everything
	list, err = repo.List(t.Context(), article.ListFilter{All: true})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{published.ID, draft.ID, inEdit.ID}, ids(list))

	// status narrows inside visibility
	status := article.StatusEditorInProgress
	list, err = repo.List(t.Context(), article.ListFilter{All: true, Status: &status})
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{inEdit.ID}, ids(list))
}

func TestArticle_Delete(t *testing.T) {
	t.Parallel()
	repo, _, _, txm := newRepos(t)

	a := testArticle("to be removed", article.StatusRejected)
	require.NoError(t, repo.Create(t.Context(), txm, a))

	require.NoError(t, repo.Delete(t.Context(), txm, a.ID))

	// tombstoned rows are invisible
	_, err := repo.Get(t.Context(), a.ID)
	require.ErrorIs(t, err, article.ErrArticleNotFound())
	err = repo.Delete(t.Context(), txm, a.ID)
	require.ErrorIs(t, err, article.ErrArticleNotFound())
}

func TestAssignment_Open_CloseOpen_List(t *testing.T) {
	t.Parallel()
	repo, assignments, gdb, txm := newRepos(t)

	adminID := createUser(t, gdb)
	editor1 := createUser(t, gdb)
	editor2 := createUser(t, gdb)
	a := testArticle("assignment target", article.StatusAssignedToEditor)
	require.NoError(t, repo.Create(t.Context(), txm, a))

	now := time.Now().UTC().Truncate(time.Second)
	first := article.Assignment{
		ID:         uuid.New(),
		ArticleID:  a.ID,
		Role:       article.AssignmentEditor,
		UserID:     editor1,
		AssignedBy: adminID,
		AssignedAt: now,
	}
	require.NoError(t, assignments.Open(t.Context(), txm, first))

	// one open row per (article, role)
	second := first
	second.ID = uuid.New()
	second.UserID = editor2
	second.AssignedAt = now.Add(time.Minute)
	require.Error(t, assignments.Open(t.Context(), txm, second))

	// close, then reopening succeeds
	closedAt := now.Add(time.Minute)
	require.NoError(t, assignments.CloseOpen(t.Context(), txm, a.ID, article.AssignmentEditor, closedAt))
	require.NoError(t, assignments.Open(t.Context(), txm, second))

	list, err := assignments.ListByArticle(t.Context(), a.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, editor1, list[0].UserID)
	require.NotNil(t, list[0].UnassignedAt)
	require.Equal(t, closedAt, list[0].UnassignedAt.UTC())
	require.Equal(t, second.ID, list[1].ID)
	require.Equal(t, editor2, list[1].UserID)
	require.Nil(t, list[1].UnassignedAt)
}

//go:build testutil

package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
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

func newEntryRepo(t *testing.T) (*gormRepo, *gorm.DB, tx.Transaction) {
	gdb, _, cleanup := shared.CreateIsolatedDB(t)
	t.Cleanup(cleanup)
	return NewRepository(gdb), gdb, tx.New(gdb)
}

/* --- helpers --- */

func createArticle(t *testing.T, gdb *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := gdb.WithContext(t.Context()).Exec(
		`INSERT INTO articles(id,slug,title,author_name,author_email,status,
		                      original_pdf_url,original_docx_url,current_pdf_url,current_docx_url)
		 VALUES ($1,$2,'title','author','a@example.com','pending_admin_review','p','d','p','d')`,
		id, id.String(),
	).Error
	require.NoError(t, err)
	return id
}

func testEntry(articleID uuid.UUID, at time.Time) changelog.Entry {
	return changelog.Entry{
		ID:         uuid.New(),
		ArticleID:  articleID,
		Role:       version.RoleEditor,
		ActorID:    uuid.New(),
		EditedAt:   at,
		OldFileURL: "https://files/old.docx",
		NewFileURL: "https://files/new.docx",
		Comments:   "tightened section 3",
	}
}

/* --- tests --- */

func TestEntry_Create_Get_List(t *testing.T) {
	t.Parallel()
	repo, gdb, txm := newEntryRepo(t)

	articleID := createArticle(t, gdb)
	now := time.Now().UTC().Truncate(time.Second)
	first := testEntry(articleID, now)
	second := testEntry(articleID, now.Add(time.Minute))
	require.NoError(t, repo.Create(t.Context(), txm, first))
	require.NoError(t, repo.Create(t.Context(), txm, second))

	got, err := repo.Get(t.Context(), first.ID)
	require.NoError(t, err)
	got.EditedAt = got.EditedAt.UTC()
	require.Equal(t, first, got)

	list, err := repo.ListByArticle(t.Context(), articleID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)

	// not found
	_, err = repo.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, changelog.ErrEntryNotFound())
}

func TestEntry_UpdateDiffSummary_And_ListMissingDiff(t *testing.T) {
	t.Parallel()
	repo, gdb, txm := newEntryRepo(t)

	articleID := createArticle(t, gdb)
	now := time.Now().UTC().Truncate(time.Second)

	pending := testEntry(articleID, now)
	noFiles := testEntry(articleID, now.Add(time.Minute))
	noFiles.OldFileURL = ""
	noFiles.NewFileURL = ""
	require.NoError(t, repo.Create(t.Context(), txm, pending))
	require.NoError(t, repo.Create(t.Context(), txm, noFiles))

	// only the entry with both file URLs is computable
	missing, err := repo.ListMissingDiff(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, pending.ID, missing[0].ID)

	stats := diff.Stats{Added: 3, Removed: 1, Unchanged: 40, Total: 44}
	require.NoError(t, repo.UpdateDiffSummary(t.Context(), pending.ID, stats))

	got, err := repo.Get(t.Context(), pending.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DiffSummary)
	require.Equal(t, stats, *got.DiffSummary)

	// filled entries drop out of the backlog
	missing, err = repo.ListMissingDiff(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, missing, 0)

	// not found
	err = repo.UpdateDiffSummary(t.Context(), uuid.New(), stats)
	require.ErrorIs(t, err, changelog.ErrEntryNotFound())
}

//go:build testutil

package gorm

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
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

func newVersionRepo(t *testing.T) (*gormRepo, *gorm.DB, tx.Transaction) {
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

func testVersion(articleID uuid.UUID, role version.Role, format version.Format, at time.Time) version.DocumentVersion {
	return version.DocumentVersion{
		ID:         uuid.New(),
		ArticleID:  articleID,
		Role:       role,
		Format:     format,
		URL:        "https://files/" + uuid.New().String(),
		ProducedBy: uuid.New(),
		CreatedAt:  at,
	}
}

/* --- tests --- */

func TestVersion_Create_Get(t *testing.T) {
	t.Parallel()
	repo, gdb, txm := newVersionRepo(t)

	articleID := createArticle(t, gdb)
	now := time.Now().UTC().Truncate(time.Second)
	v := testVersion(articleID, version.RoleOriginal, version.FormatPDF, now)
	require.NoError(t, repo.Create(t.Context(), txm, v))

	got, err := repo.Get(t.Context(), v.ID)
	require.NoError(t, err)
	got.CreatedAt = got.CreatedAt.UTC()
	require.Equal(t, v, got)

	_, err = repo.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, version.ErrVersionNotFound())
}

func TestVersion_Latest_And_LineageTip(t *testing.T) {
	t.Parallel()
	repo, gdb, txm := newVersionRepo(t)

	articleID := createArticle(t, gdb)
	now := time.Now().UTC().Truncate(time.Second)
	origPDF := testVersion(articleID, version.RoleOriginal, version.FormatPDF, now)
	origDOCX := testVersion(articleID, version.RoleOriginal, version.FormatDOCX, now)
	editV1 := testVersion(articleID, version.RoleEditor, version.FormatPDF, now.Add(time.Minute))
	editV2 := testVersion(articleID, version.RoleEditor, version.FormatPDF, now.Add(2*time.Minute))
	for _, v := range []version.DocumentVersion{origPDF, origDOCX, editV1, editV2} {
		require.NoError(t, repo.Create(t.Context(), txm, v))
	}

	got, err := repo.GetLatest(t.Context(), articleID, version.RoleEditor)
	require.NoError(t, err)
	require.Equal(t, editV2.ID, got.ID)

	got, err = repo.GetLatestByFormat(t.Context(), articleID, version.RoleOriginal, version.FormatDOCX)
	require.NoError(t, err)
	require.Equal(t, origDOCX.ID, got.ID)

	err = txm.Transaction(func(tx tx.Transaction) error {
		got, err = repo.GetLineageTip(t.Context(), tx, articleID)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, editV2.ID, got.ID)

	list, err := repo.ListByArticle(t.Context(), articleID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	require.Equal(t, editV2.ID, list[3].ID)

	// not found
	_, err = repo.GetLatest(t.Context(), articleID, version.RoleReviewer)
	require.ErrorIs(t, err, version.ErrVersionNotFound())
	_, err = repo.GetLatestByFormat(t.Context(), articleID, version.RoleEditor, version.FormatDOCX)
	require.ErrorIs(t, err, version.ErrVersionNotFound())
	err = txm.Transaction(func(tx tx.Transaction) error {
		_, err = repo.GetLineageTip(t.Context(), tx, uuid.New())
		return err
	})
	require.ErrorIs(t, err, version.ErrVersionNotFound())
}

func TestVersion_ListMissingCounterpart(t *testing.T) {
	t.Parallel()
	repo, gdb, txm := newVersionRepo(t)

	complete := createArticle(t, gdb)
	lagging := createArticle(t, gdb)
	now := time.Now().UTC().Truncate(time.Second)

	// complete: both formats recorded for every role
	for _, v := range []version.DocumentVersion{
		testVersion(complete, version.RoleOriginal, version.FormatPDF, now),
		testVersion(complete, version.RoleOriginal, version.FormatDOCX, now),
	} {
		require.NoError(t, repo.Create(t.Context(), txm, v))
	}

	// lagging: editor produced two PDFs, the DOCX conversion never landed
	older := testVersion(lagging, version.RoleEditor, version.FormatPDF, now)
	newer := testVersion(lagging, version.RoleEditor, version.FormatPDF, now.Add(time.Minute))
	require.NoError(t, repo.Create(t.Context(), txm, older))
	require.NoError(t, repo.Create(t.Context(), txm, newer))

	missing, err := repo.ListMissingCounterpart(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, newer.ID, missing[0].ID)

	missing, err = repo.ListMissingCounterpart(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, missing, 0)
}

package processing_test

//go:generate minimock -o ./mocks -s _mock.go

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/processing"
	"github.com/lexnotes/journal/internal/app/processing/mocks"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type txStub struct{}

func (s *txStub) Transaction(fc func(tx tx.Transaction) error) error { return fc(s) }
func (s *txStub) GetDB(_ context.Context) *gorm.DB                   { return nil }

type mock struct {
	extractor *mocks.ExtractorMock
	converter *mocks.ConverterMock
	versions  *mocks.VersionServiceMock
	entries   *mocks.ChangelogServiceMock
	articles  *mocks.ArticleServiceMock
}

func newMock(t *testing.T) mock {
	return mock{
		extractor: mocks.NewExtractorMock(t),
		converter: mocks.NewConverterMock(t),
		versions:  mocks.NewVersionServiceMock(t),
		entries:   mocks.NewChangelogServiceMock(t),
		articles:  mocks.NewArticleServiceMock(t),
	}
}

func newProcessor(t *testing.T, m mock) *processing.Processor {
	t.Helper()
	proc, err := processing.NewProcessor(m.extractor, m.converter, m.versions, m.entries, m.articles, &txStub{})
	require.NoError(t, err)
	return proc
}

func TestNewProcessor(t *testing.T) {
	t.Parallel()

	m := newMock(t)

	tests := []struct {
		name      string
		extractor processing.Extractor
		converter processing.Converter
		versions  processing.VersionService
		entries   processing.ChangelogService
		articles  processing.ArticleService
		tx        tx.Transaction
		wantErr   bool
	}{
		{name: "success", extractor: m.extractor, converter: m.converter, versions: m.versions, entries: m.entries, articles: m.articles, tx: &txStub{}},
		{name: "error/nil_extractor", converter: m.converter, versions: m.versions, entries: m.entries, articles: m.articles, tx: &txStub{}, wantErr: true},
		{name: "error/nil_converter", extractor: m.extractor, versions: m.versions, entries: m.entries, articles: m.articles, tx: &txStub{}, wantErr: true},
		{name: "error/nil_versions", extractor: m.extractor, converter: m.converter, entries: m.entries, articles: m.articles, tx: &txStub{}, wantErr: true},
		{name: "error/nil_entries", extractor: m.extractor, converter: m.converter, versions: m.versions, articles: m.articles, tx: &txStub{}, wantErr: true},
		{name: "error/nil_articles", extractor: m.extractor, converter: m.converter, versions: m.versions, entries: m.entries, tx: &txStub{}, wantErr: true},
		{name: "error/nil_tx", extractor: m.extractor, converter: m.converter, versions: m.versions, entries: m.entries, articles: m.articles, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := processing.NewProcessor(tt.extractor, tt.converter, tt.versions, tt.entries, tt.articles, tt.tx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessor_EnsureCounterpart(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		actorID   = uuid.New()
		expErr    = errors.New("expected error")
		uploaded  = version.DocumentVersion{
			ID:         uuid.New(),
			ArticleID:  articleID,
			Role:       version.RoleEditor,
			Format:     version.FormatPDF,
			URL:        "https://blob/editor-1.pdf",
			ProducedBy: actorID,
		}
	)

	t.Run("converts_records_and_refreshes", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.versions.LatestForFormatMock.Expect(ctx, articleID, version.RoleEditor, version.FormatDOCX).
			Return(version.DocumentVersion{}, version.ErrVersionNotFound())
		m.converter.ConvertMock.Expect(ctx, "https://blob/editor-1.pdf", "docx").
			Return("https://blob/editor-1.docx", nil)
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
			require.Equal(t, version.RecordReq{
				ArticleID:  articleID,
				Role:       version.RoleEditor,
				Format:     version.FormatDOCX,
				URL:        "https://blob/editor-1.docx",
				ProducedBy: actorID,
			}, req)
			return version.DocumentVersion{ID: uuid.New()}, nil
		})
		m.articles.RefreshCurrentMock.Set(func(_ context.Context, _ tx.Transaction, source version.DocumentVersion, convertedURL string) error {
			require.Equal(t, uploaded, source)
			require.Equal(t, "https://blob/editor-1.docx", convertedURL)
			return nil
		})

		require.NoError(t, newProcessor(t, m).EnsureCounterpart(ctx, uploaded))
	})

	t.Run("skips_when_counterpart_exists", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.versions.LatestForFormatMock.Expect(ctx, articleID, version.RoleEditor, version.FormatDOCX).
			Return(version.DocumentVersion{ID: uuid.New()}, nil)

		require.NoError(t, newProcessor(t, m).EnsureCounterpart(ctx, uploaded))
	})

	t.Run("error/conversion_failed", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.versions.LatestForFormatMock.Expect(ctx, articleID, version.RoleEditor, version.FormatDOCX).
			Return(version.DocumentVersion{}, version.ErrVersionNotFound())
		m.converter.ConvertMock.Expect(ctx, "https://blob/editor-1.pdf", "docx").Return("", expErr)

		err := newProcessor(t, m).EnsureCounterpart(ctx, uploaded)
		require.ErrorIs(t, err, processing.ErrConversionFailed(expErr.Error()))
	})

	t.Run("error/refresh_fails_rolls_back", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.versions.LatestForFormatMock.Expect(ctx, articleID, version.RoleEditor, version.FormatDOCX).
			Return(version.DocumentVersion{}, version.ErrVersionNotFound())
		m.converter.ConvertMock.Expect(ctx, "https://blob/editor-1.pdf", "docx").
			Return("https://blob/editor-1.docx", nil)
		m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, _ version.RecordReq) (version.DocumentVersion, error) {
			return version.DocumentVersion{ID: uuid.New()}, nil
		})
		m.articles.RefreshCurrentMock.Set(func(_ context.Context, _ tx.Transaction, _ version.DocumentVersion, _ string) error {
			return expErr
		})

		err := newProcessor(t, m).EnsureCounterpart(ctx, uploaded)
		require.ErrorIs(t, err, expErr)
	})
}

func TestProcessor_ComputeDiff(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		expErr = errors.New("expected error")
		entry  = changelog.Entry{
			ID:         uuid.New(),
			ArticleID:  uuid.New(),
			OldFileURL: "https://blob/old.pdf",
			NewFileURL: "https://blob/new.pdf",
		}
	)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.extractor.ExtractMock.When(ctx, "https://blob/old.pdf").Then("the quick brown fox", nil)
		m.extractor.ExtractMock.When(ctx, "https://blob/new.pdf").Then("the slow brown fox", nil)
		m.entries.SetDiffSummaryMock.Set(func(_ context.Context, entryID uuid.UUID, summary diff.Stats) error {
			require.Equal(t, entry.ID, entryID)
			require.Equal(t, diff.Stats{Added: 1, Removed: 1, Unchanged: 3, Total: 5}, summary)
			return nil
		})

		require.NoError(t, newProcessor(t, m).ComputeDiff(ctx, entry))
	})

	t.Run("skips_entry_without_urls", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)

		require.NoError(t, newProcessor(t, m).ComputeDiff(ctx, changelog.Entry{ID: uuid.New()}))
	})

	t.Run("error/extraction_failed", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.extractor.ExtractMock.When(ctx, "https://blob/old.pdf").Then("", expErr)

		err := newProcessor(t, m).ComputeDiff(ctx, entry)
		require.ErrorIs(t, err, processing.ErrExtractionFailed(expErr.Error()))
	})
}

func TestSweep(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		articleID = uuid.New()
		missing   = version.DocumentVersion{
			ID:        uuid.New(),
			ArticleID: articleID,
			Role:      version.RoleReviewer,
			Format:    version.FormatDOCX,
			URL:       "https://blob/reviewer-1.docx",
		}
		entry = changelog.Entry{
			ID:         uuid.New(),
			ArticleID:  articleID,
			OldFileURL: "https://blob/a.pdf",
			NewFileURL: "https://blob/b.pdf",
		}
	)

	m := newMock(t)
	m.versions.ListMissingCounterpartMock.Expect(ctx, 50).Return([]version.DocumentVersion{missing}, nil)
	m.versions.LatestForFormatMock.Expect(ctx, articleID, version.RoleReviewer, version.FormatPDF).
		Return(version.DocumentVersion{}, version.ErrVersionNotFound())
	m.converter.ConvertMock.Expect(ctx, "https://blob/reviewer-1.docx", "pdf").
		Return("https://blob/reviewer-1.pdf", nil)
	m.versions.RecordMock.Set(func(_ context.Context, _ tx.Transaction, req version.RecordReq) (version.DocumentVersion, error) {
		require.Equal(t, version.FormatPDF, req.Format)
		return version.DocumentVersion{ID: uuid.New()}, nil
	})
	m.articles.RefreshCurrentMock.Set(func(_ context.Context, _ tx.Transaction, source version.DocumentVersion, convertedURL string) error {
		require.Equal(t, missing, source)
		require.Equal(t, "https://blob/reviewer-1.pdf", convertedURL)
		return nil
	})
	m.entries.ListMissingDiffMock.Expect(ctx, 50).Return([]changelog.Entry{entry}, nil)
	m.extractor.ExtractMock.When(ctx, "https://blob/a.pdf").Then("same text", nil)
	m.extractor.ExtractMock.When(ctx, "https://blob/b.pdf").Then("same text", nil)
	m.entries.SetDiffSummaryMock.Set(func(_ context.Context, entryID uuid.UUID, summary diff.Stats) error {
		require.Equal(t, entry.ID, entryID)
		require.Equal(t, diff.Stats{Unchanged: 2, Total: 2}, summary)
		return nil
	})

	sweep := processing.NewSweep(newProcessor(t, m), processing.SweepConfig{})
	require.Equal(t, "processing_sweep", sweep.Name())
	require.Equal(t, "@every 5m", sweep.Schedule())

	sweep.Run(ctx)
}

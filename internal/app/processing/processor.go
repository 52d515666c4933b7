package processing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

// Extractor pulls plain text out of a stored document.
type Extractor interface {
	Extract(ctx context.Context, fileURL string) (string, error)
}

// Converter produces the same document in the other artifact format and
// returns the URL of the converted copy.
type Converter interface {
	Convert(ctx context.Context, fileURL, targetFormat string) (string, error)
}

type VersionService interface {
	Record(ctx context.Context, tx tx.Transaction, req version.RecordReq) (version.DocumentVersion, error)
	LatestForFormat(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (version.DocumentVersion, error)
	ListMissingCounterpart(ctx context.Context, limit int) ([]version.DocumentVersion, error)
}

type ChangelogService interface {
	SetDiffSummary(ctx context.Context, entryID uuid.UUID, summary diff.Stats) error
	ListMissingDiff(ctx context.Context, limit int) ([]changelog.Entry, error)
}

type ArticleService interface {
	RefreshCurrent(ctx context.Context, tx tx.Transaction, source version.DocumentVersion, convertedURL string) error
}

// Processor runs the work that follows a committed workflow transition:
// counterpart format conversion and change-log diff computation. Both are
// best-effort; a failure is logged and retried by the sweep job, never
// surfaced to the request that triggered it.
type Processor struct {
	extractor Extractor
	converter Converter
	versions  VersionService
	entries   ChangelogService
	articles  ArticleService
	engine    *diff.Engine
	tx        tx.Transaction
}

func NewProcessor(
	extractor Extractor,
	converter Converter,
	versions VersionService,
	entries ChangelogService,
	articles ArticleService,
	txm tx.Transaction,
) (*Processor, error) {
	if extractor == nil || converter == nil || versions == nil || entries == nil ||
		articles == nil || txm == nil {
		return nil, fmt.Errorf("processing.NewProcessor: %w", fmt.Errorf("nil dependency"))
	}

	return &Processor{
		extractor: extractor,
		converter: converter,
		versions:  versions,
		entries:   entries,
		articles:  articles,
		engine:    diff.NewEngine(),
		tx:        txm,
	}, nil
}

// Dispatch processes one committed transition.
func (p *Processor) Dispatch(ctx context.Context, res article.TransitionResult) {
	for _, v := range res.Versions {
		if err := p.EnsureCounterpart(ctx, v); err != nil {
			logger.Warn(ctx, err).
				Str("article_id", v.ArticleID.String()).
				Msg("processing.Processor.Dispatch: counterpart conversion failed")
		}
	}
	if res.Entry != nil {
		if err := p.ComputeDiff(ctx, *res.Entry); err != nil {
			logger.Warn(ctx, err).
				Str("article_id", res.Article.ID.String()).
				Msg("processing.Processor.Dispatch: diff computation failed")
		}
	}
}

// EnsureCounterpart converts the version into the other artifact format
// unless that format already exists for the same article and role. Submission
// records both formats up front, so conversion only ever fires for
// single-format correction uploads. Recording the converted copy and
// refreshing the article's current pointer commit together.
func (p *Processor) EnsureCounterpart(ctx context.Context, v version.DocumentVersion) error {
	target := v.Format.Counterpart()

	_, err := p.versions.LatestForFormat(ctx, v.ArticleID, v.Role, target)
	if err == nil {
		return nil
	}
	if !errors.Is(err, version.ErrVersionNotFound()) {
		return fmt.Errorf("processing.Processor.EnsureCounterpart: %w", err)
	}

	url, err := p.converter.Convert(ctx, v.URL, strings.ToLower(string(target)))
	if err != nil {
		return fmt.Errorf("processing.Processor.EnsureCounterpart: %w", ErrConversionFailed(err.Error()))
	}

	err = p.tx.Transaction(func(tx tx.Transaction) error {
		if _, err := p.versions.Record(ctx, tx, version.RecordReq{
			ArticleID:  v.ArticleID,
			Role:       v.Role,
			Format:     target,
			URL:        url,
			ProducedBy: v.ProducedBy,
		}); err != nil {
			return err
		}

		return p.articles.RefreshCurrent(ctx, tx, v, url)
	})
	if err != nil {
		return fmt.Errorf("processing.Processor.EnsureCounterpart: %w", err)
	}

	return nil
}

// ComputeDiff extracts the texts behind the entry's old and new artifacts,
// compares them and persists the summary. Entries without both URLs carry no
// document change and are skipped. The comparison is deterministic, so a
// recompute after a partial failure converges on the same summary.
func (p *Processor) ComputeDiff(ctx context.Context, e changelog.Entry) error {
	if e.OldFileURL == "" || e.NewFileURL == "" {
		return nil
	}

	oldText, err := p.extractor.Extract(ctx, e.OldFileURL)
	if err != nil {
		return fmt.Errorf("processing.Processor.ComputeDiff: %w", ErrExtractionFailed(err.Error()))
	}
	newText, err := p.extractor.Extract(ctx, e.NewFileURL)
	if err != nil {
		return fmt.Errorf("processing.Processor.ComputeDiff: %w", ErrExtractionFailed(err.Error()))
	}

	stats := p.engine.Stats(p.engine.Compare(oldText, newText))
	if err = p.entries.SetDiffSummary(ctx, e.ID, stats); err != nil {
		return fmt.Errorf("processing.Processor.ComputeDiff: %w", err)
	}

	return nil
}

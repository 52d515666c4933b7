package changelog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

type Repository interface {
	Create(ctx context.Context, tx tx.Transaction, entry Entry) error
	Get(ctx context.Context, id uuid.UUID) (Entry, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]Entry, error)
	UpdateDiffSummary(ctx context.Context, id uuid.UUID, summary diff.Stats) error
	ListMissingDiff(ctx context.Context, limit int) ([]Entry, error)
}

type IDGenerator interface {
	New() (uuid.UUID, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type core struct {
	repo    Repository
	idGen   IDGenerator
	timeGen TimeGenerator
}

func NewCore(repo Repository, idGen IDGenerator, timeGen TimeGenerator) (*core, error) {
	if repo == nil || idGen == nil || timeGen == nil {
		return nil, fmt.Errorf("changelog.NewCore: %w", fmt.Errorf("nil dependency"))
	}

	return &core{repo: repo, idGen: idGen, timeGen: timeGen}, nil
}

// Append writes one entry inside the caller's transaction. The row lock held by
// the transition serializes appends per article, so edited_at is monotonic there.
func (c *core) Append(ctx context.Context, tx tx.Transaction, req AppendReq) (Entry, error) {
	if req.ArticleID == uuid.Nil {
		return Entry{}, fmt.Errorf("changelog.core.Append: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if req.ActorID == uuid.Nil {
		return Entry{}, fmt.Errorf("changelog.core.Append: %w", apperr.ErrNilUUID(FieldActorID))
	}
	if !req.Role.Valid() {
		return Entry{}, fmt.Errorf("changelog.core.Append: %w", ErrInvalidRole())
	}

	id, err := c.idGen.New()
	if err != nil {
		return Entry{}, fmt.Errorf("changelog.core.Append: %w", err)
	}

	entry := Entry{
		ID:         id,
		ArticleID:  req.ArticleID,
		Role:       req.Role,
		ActorID:    req.ActorID,
		EditedAt:   c.timeGen.Now(),
		OldFileURL: req.OldFileURL,
		NewFileURL: req.NewFileURL,
		Comments:   req.Comments,
	}
	if err = c.repo.Create(ctx, tx, entry); err != nil {
		return Entry{}, fmt.Errorf("changelog.core.Append: %w", err)
	}

	return entry, nil
}

func (c *core) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	if id == uuid.Nil {
		return Entry{}, fmt.Errorf("changelog.core.Get: %w", apperr.ErrNilUUID(FieldEntryID))
	}

	entry, err := c.repo.Get(ctx, id)
	if err != nil {
		return Entry{}, fmt.Errorf("changelog.core.Get: %w", err)
	}

	return entry, nil
}

// HistoryFor lists an article's entries oldest first.
func (c *core) HistoryFor(ctx context.Context, articleID uuid.UUID) ([]Entry, error) {
	if articleID == uuid.Nil {
		return nil, fmt.Errorf("changelog.core.HistoryFor: %w", apperr.ErrNilUUID(FieldArticleID))
	}

	entries, err := c.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("changelog.core.HistoryFor: %w", err)
	}

	return entries, nil
}

// DiffFor returns the stored summary for an entry, or ErrDiffNotComputed when
// processing has not filled it in yet.
func (c *core) DiffFor(ctx context.Context, entryID uuid.UUID) (diff.Stats, error) {
	if entryID == uuid.Nil {
		return diff.Stats{}, fmt.Errorf("changelog.core.DiffFor: %w", apperr.ErrNilUUID(FieldEntryID))
	}

	entry, err := c.repo.Get(ctx, entryID)
	if err != nil {
		return diff.Stats{}, fmt.Errorf("changelog.core.DiffFor: %w", err)
	}
	if entry.DiffSummary == nil {
		return diff.Stats{}, fmt.Errorf("changelog.core.DiffFor: %w", ErrDiffNotComputed())
	}

	return *entry.DiffSummary, nil
}

// SetDiffSummary stores a computed summary. Recomputation is deterministic, so
// concurrent writers may overwrite each other without losing information.
func (c *core) SetDiffSummary(ctx context.Context, entryID uuid.UUID, summary diff.Stats) error {
	if entryID == uuid.Nil {
		return fmt.Errorf("changelog.core.SetDiffSummary: %w", apperr.ErrNilUUID(FieldEntryID))
	}

	if err := c.repo.UpdateDiffSummary(ctx, entryID, summary); err != nil {
		return fmt.Errorf("changelog.core.SetDiffSummary: %w", err)
	}

	return nil
}

// ListMissingDiff returns entries still lacking a diff summary, for the sweep.
func (c *core) ListMissingDiff(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	entries, err := c.repo.ListMissingDiff(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("changelog.core.ListMissingDiff: %w", err)
	}

	return entries, nil
}

package version

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
)

type Repository interface {
	Create(ctx context.Context, tx tx.Transaction, version DocumentVersion) error
	Get(ctx context.Context, id uuid.UUID) (DocumentVersion, error)
	GetLatest(ctx context.Context, articleID uuid.UUID, role Role) (DocumentVersion, error)
	GetLatestByFormat(ctx context.Context, articleID uuid.UUID, role Role, format Format) (DocumentVersion, error)
	GetLineageTip(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (DocumentVersion, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]DocumentVersion, error)
	ListMissingCounterpart(ctx context.Context, limit int) ([]DocumentVersion, error)
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
		return nil, fmt.Errorf("version.NewCore: %w", fmt.Errorf("nil dependency"))
	}

	return &core{repo: repo, idGen: idGen, timeGen: timeGen}, nil
}

// Record appends a version row inside the caller's transaction. Rows are never
// updated afterwards; a correction produces a new row.
func (c *core) Record(ctx context.Context, tx tx.Transaction, req RecordReq) (DocumentVersion, error) {
	if req.ArticleID == uuid.Nil {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !req.Role.Valid() {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", ErrInvalidRole())
	}
	if !req.Format.Valid() {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", ErrInvalidFormat())
	}
	if req.URL == "" {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", ErrEmptyURL())
	}

	id, err := c.idGen.New()
	if err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", err)
	}

	v := DocumentVersion{
		ID:         id,
		ArticleID:  req.ArticleID,
		Role:       req.Role,
		Format:     req.Format,
		URL:        req.URL,
		ProducedBy: req.ProducedBy,
		CreatedAt:  c.timeGen.Now(),
	}
	if err = c.repo.Create(ctx, tx, v); err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.Record: %w", err)
	}

	return v, nil
}

func (c *core) Get(ctx context.Context, id uuid.UUID) (DocumentVersion, error) {
	if id == uuid.Nil {
		return DocumentVersion{}, fmt.Errorf("version.core.Get: %w", apperr.ErrNilUUID(FieldVersionID))
	}

	v, err := c.repo.Get(ctx, id)
	if err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.Get: %w", err)
	}

	return v, nil
}

// LatestFor returns the newest version a given role produced for the article.
func (c *core) LatestFor(ctx context.Context, articleID uuid.UUID, role Role) (DocumentVersion, error) {
	if articleID == uuid.Nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestFor: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !role.Valid() {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestFor: %w", ErrInvalidRole())
	}

	v, err := c.repo.GetLatest(ctx, articleID, role)
	if err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestFor: %w", err)
	}

	return v, nil
}

func (c *core) LatestForFormat(ctx context.Context, articleID uuid.UUID, role Role, format Format) (DocumentVersion, error) {
	if articleID == uuid.Nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestForFormat: %w", apperr.ErrNilUUID(FieldArticleID))
	}
	if !role.Valid() {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestForFormat: %w", ErrInvalidRole())
	}
	if !format.Valid() {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestForFormat: %w", ErrInvalidFormat())
	}

	v, err := c.repo.GetLatestByFormat(ctx, articleID, role, format)
	if err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LatestForFormat: %w", err)
	}

	return v, nil
}

// LineageTip returns the most recent version across all roles. It runs inside
// the caller's transaction so current-pointer refresh sees committed rows only.
func (c *core) LineageTip(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (DocumentVersion, error) {
	if articleID == uuid.Nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LineageTip: %w", apperr.ErrNilUUID(FieldArticleID))
	}

	v, err := c.repo.GetLineageTip(ctx, tx, articleID)
	if err != nil {
		return DocumentVersion{}, fmt.Errorf("version.core.LineageTip: %w", err)
	}

	return v, nil
}

func (c *core) ListFor(ctx context.Context, articleID uuid.UUID) ([]DocumentVersion, error) {
	if articleID == uuid.Nil {
		return nil, fmt.Errorf("version.core.ListFor: %w", apperr.ErrNilUUID(FieldArticleID))
	}

	versions, err := c.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("version.core.ListFor: %w", err)
	}

	return versions, nil
}

// ListMissingCounterpart returns versions whose article/role group lacks the
// other artifact format. The processing sweep uses it to retry conversions.
func (c *core) ListMissingCounterpart(ctx context.Context, limit int) ([]DocumentVersion, error) {
	if limit <= 0 {
		limit = 100
	}

	versions, err := c.repo.ListMissingCounterpart(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("version.core.ListMissingCounterpart: %w", err)
	}

	return versions, nil
}

package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/db"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *gormRepo {
	return &gormRepo{db: db}
}

func (r *gormRepo) Create(ctx context.Context, tx tx.Transaction, a article.Article) error {
	err := tx.GetDB(ctx).Create(toModel(a)).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.DuplicateCode {
			err = article.ErrSlugDuplicate()
		}
		return fmt.Errorf("gormRepo.Create: %w", err)
	}

	return nil
}

func (r *gormRepo) Get(ctx context.Context, id uuid.UUID) (article.Article, error) {
	model := articleModel{}

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = article.ErrArticleNotFound()
		}
		return article.Article{}, fmt.Errorf("gormRepo.Get: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetBySlug(ctx context.Context, slug string) (article.Article, error) {
	model := articleModel{}

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = article.ErrArticleNotFound()
		}
		return article.Article{}, fmt.Errorf("gormRepo.GetBySlug: %w", err)
	}

	return model.toDTO(), nil
}

// GetForUpdate takes a row lock so concurrent transitions on the same article
// serialize; the status re-read under the lock is the compare step of the CAS.
func (r *gormRepo) GetForUpdate(ctx context.Context, tx tx.Transaction, id uuid.UUID) (article.Article, error) {
	model := articleModel{}

	err := tx.GetDB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = article.ErrArticleNotFound()
		}
		return article.Article{}, fmt.Errorf("gormRepo.GetForUpdate: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) Update(ctx context.Context, tx tx.Transaction, a article.Article) error {
	result := tx.GetDB(ctx).
		Model(&articleModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"status":               a.Status.String(),
			"assigned_editor_id":   a.AssignedEditorID,
			"assigned_reviewer_id": a.AssignedReviewerID,
			"current_pdf_url":      a.CurrentPDFURL,
			"current_docx_url":     a.CurrentDOCXURL,
			"published_at":         a.PublishedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gormRepo.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gormRepo.Update: %w", article.ErrArticleNotFound())
	}

	return nil
}

func (r *gormRepo) SetCitation(ctx context.Context, tx tx.Transaction, id uuid.UUID, citation string) error {
	result := tx.GetDB(ctx).
		Model(&articleModel{}).
		Where("id = ?", id).
		Update("citation_number", citation)
	if result.Error != nil {
		err := result.Error
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.DuplicateCode {
			// The aborted tx cannot be queried; look the holder up outside it.
			err = article.ErrDuplicateCitation(r.citationHolderTitle(ctx, citation))
		}
		return fmt.Errorf("gormRepo.SetCitation: %w", err)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gormRepo.SetCitation: %w", article.ErrArticleNotFound())
	}

	return nil
}

func (r *gormRepo) citationHolderTitle(ctx context.Context, citation string) string {
	var title string
	err := r.db.WithContext(ctx).
		Model(&articleModel{}).
		Select("title").
		Where("citation_number = ?", citation).
		Scan(&title).Error
	if err != nil {
		return ""
	}
	return title
}

func (r *gormRepo) Delete(ctx context.Context, tx tx.Transaction, id uuid.UUID) error {
	result := tx.GetDB(ctx).Delete(&articleModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("gormRepo.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gormRepo.Delete: %w", article.ErrArticleNotFound())
	}

	return nil
}

func (r *gormRepo) List(ctx context.Context, filter article.ListFilter) ([]article.Article, error) {
	models := make([]articleModel, 0)

	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	switch {
	case filter.All:
		// admins see everything
	case filter.AuthorID != nil && filter.AssigneeID != nil:
		q = q.Where("status = ? OR author_user_id = ? OR assigned_editor_id = ? OR assigned_reviewer_id = ?",
			article.StatusPublished.String(), *filter.AuthorID, *filter.AssigneeID, *filter.AssigneeID)
	case filter.AuthorID != nil:
		q = q.Where("status = ? OR author_user_id = ?", article.StatusPublished.String(), *filter.AuthorID)
	case filter.AssigneeID != nil:
		q = q.Where("status = ? OR assigned_editor_id = ? OR assigned_reviewer_id = ?",
			article.StatusPublished.String(), *filter.AssigneeID, *filter.AssigneeID)
	default:
		q = q.Where("status = ?", article.StatusPublished.String())
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}

	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("gormRepo.List: %w", err)
	}

	return lo.Map(models, func(m articleModel, _ int) article.Article { return m.toDTO() }), nil
}

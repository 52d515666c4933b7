package gorm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type gormRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *gormRepo {
	return &gormRepo{db: db}
}

func (r *gormRepo) Create(ctx context.Context, tx tx.Transaction, entry changelog.Entry) error {
	if err := tx.GetDB(ctx).Create(toModel(entry)).Error; err != nil {
		return fmt.Errorf("gormRepo.Create: %w", err)
	}

	return nil
}

func (r *gormRepo) Get(ctx context.Context, id uuid.UUID) (changelog.Entry, error) {
	model := entryModel{}

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = changelog.ErrEntryNotFound()
		}
		return changelog.Entry{}, fmt.Errorf("gormRepo.Get: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]changelog.Entry, error) {
	models := make([]entryModel, 0)

	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("edited_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListByArticle: %w", err)
	}

	return lo.Map(models, func(m entryModel, _ int) changelog.Entry { return m.toDTO() }), nil
}

func (r *gormRepo) UpdateDiffSummary(ctx context.Context, id uuid.UUID, summary diff.Stats) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("gormRepo.UpdateDiffSummary: %w", err)
	}

	result := r.db.WithContext(ctx).
		Model(&entryModel{}).
		Where("id = ?", id).
		Update("diff_summary", raw)
	if result.Error != nil {
		return fmt.Errorf("gormRepo.UpdateDiffSummary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gormRepo.UpdateDiffSummary: %w", changelog.ErrEntryNotFound())
	}

	return nil
}

func (r *gormRepo) ListMissingDiff(ctx context.Context, limit int) ([]changelog.Entry, error) {
	models := make([]entryModel, 0)

	// Entries with both file URLs have a computable diff; the rest never will.
	err := r.db.WithContext(ctx).
		Where("diff_summary IS NULL AND old_file_url <> '' AND new_file_url <> ''").
		Order("edited_at ASC, id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListMissingDiff: %w", err)
	}

	return lo.Map(models, func(m entryModel, _ int) changelog.Entry { return m.toDTO() }), nil
}

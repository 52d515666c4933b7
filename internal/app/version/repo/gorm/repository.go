package gorm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/version"
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

func (r *gormRepo) Create(ctx context.Context, tx tx.Transaction, v version.DocumentVersion) error {
	if err := tx.GetDB(ctx).Create(toModel(v)).Error; err != nil {
		return fmt.Errorf("gormRepo.Create: %w", err)
	}

	return nil
}

func (r *gormRepo) Get(ctx context.Context, id uuid.UUID) (version.DocumentVersion, error) {
	model := versionModel{}

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = version.ErrVersionNotFound()
		}
		return version.DocumentVersion{}, fmt.Errorf("gormRepo.Get: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetLatest(ctx context.Context, articleID uuid.UUID, role version.Role) (version.DocumentVersion, error) {
	model := versionModel{}

	err := r.db.WithContext(ctx).
		Where("article_id = ? AND role = ?", articleID, role.String()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = version.ErrVersionNotFound()
		}
		return version.DocumentVersion{}, fmt.Errorf("gormRepo.GetLatest: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetLatestByFormat(ctx context.Context, articleID uuid.UUID, role version.Role, format version.Format) (version.DocumentVersion, error) {
	model := versionModel{}

	err := r.db.WithContext(ctx).
		Where("article_id = ? AND role = ? AND format = ?", articleID, role.String(), format.String()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = version.ErrVersionNotFound()
		}
		return version.DocumentVersion{}, fmt.Errorf("gormRepo.GetLatestByFormat: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) GetLineageTip(ctx context.Context, tx tx.Transaction, articleID uuid.UUID) (version.DocumentVersion, error) {
	model := versionModel{}

	err := tx.GetDB(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = version.ErrVersionNotFound()
		}
		return version.DocumentVersion{}, fmt.Errorf("gormRepo.GetLineageTip: %w", err)
	}

	return model.toDTO(), nil
}

func (r *gormRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]version.DocumentVersion, error) {
	models := make([]versionModel, 0)

	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListByArticle: %w", err)
	}

	return lo.Map(models, func(m versionModel, _ int) version.DocumentVersion { return m.toDTO() }), nil
}

func (r *gormRepo) ListMissingCounterpart(ctx context.Context, limit int) ([]version.DocumentVersion, error) {
	models := make([]versionModel, 0)

	// Newest row of each (article, role) group whose other format never arrived.
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT DISTINCT ON (v.article_id, v.role) v.*
			FROM document_versions v
			WHERE NOT EXISTS (
				SELECT 1 FROM document_versions c
				WHERE c.article_id = v.article_id AND c.role = v.role AND c.format <> v.format
			)
			ORDER BY v.article_id, v.role, v.created_at DESC, v.id DESC
			LIMIT ?`, limit).
		Scan(&models).Error
	if err != nil {
		return nil, fmt.Errorf("gormRepo.ListMissingCounterpart: %w", err)
	}

	return lo.Map(models, func(m versionModel, _ int) version.DocumentVersion { return m.toDTO() }), nil
}

package gorm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/tx"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *assignmentRepo {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Open(ctx context.Context, tx tx.Transaction, a article.Assignment) error {
	model := &assignmentModel{
		ID:         a.ID,
		ArticleID:  a.ArticleID,
		Role:       string(a.Role),
		UserID:     a.UserID,
		AssignedBy: a.AssignedBy,
		AssignedAt: a.AssignedAt,
	}

	// A partial unique index on (article_id, role) where unassigned_at is null
	// backs the one-open-row invariant.
	if err := tx.GetDB(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("assignmentRepo.Open: %w", err)
	}

	return nil
}

func (r *assignmentRepo) CloseOpen(ctx context.Context, tx tx.Transaction, articleID uuid.UUID, role article.AssignmentRole, at time.Time) error {
	err := tx.GetDB(ctx).
		Model(&assignmentModel{}).
		Where("article_id = ? AND role = ? AND unassigned_at IS NULL", articleID, string(role)).
		Update("unassigned_at", at).Error
	if err != nil {
		return fmt.Errorf("assignmentRepo.CloseOpen: %w", err)
	}

	return nil
}

func (r *assignmentRepo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]article.Assignment, error) {
	models := make([]assignmentModel, 0)

	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("assigned_at ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("assignmentRepo.ListByArticle: %w", err)
	}

	return lo.Map(models, func(m assignmentModel, _ int) article.Assignment { return m.toDTO() }), nil
}

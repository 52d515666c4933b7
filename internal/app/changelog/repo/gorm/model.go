package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/changelog"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
)

type entryModel struct {
	ID          uuid.UUID
	ArticleID   uuid.UUID
	Role        string
	ActorID     uuid.UUID
	EditedAt    time.Time
	OldFileURL  string
	NewFileURL  string
	Comments    string
	DiffSummary *diff.Stats `gorm:"serializer:json"`
}

func (entryModel) TableName() string {
	return "change_log"
}

func (m *entryModel) toDTO() changelog.Entry {
	return changelog.Entry{
		ID:          m.ID,
		ArticleID:   m.ArticleID,
		Role:        version.Role(m.Role),
		ActorID:     m.ActorID,
		EditedAt:    m.EditedAt,
		OldFileURL:  m.OldFileURL,
		NewFileURL:  m.NewFileURL,
		Comments:    m.Comments,
		DiffSummary: m.DiffSummary,
	}
}

func toModel(e changelog.Entry) *entryModel {
	return &entryModel{
		ID:          e.ID,
		ArticleID:   e.ArticleID,
		Role:        e.Role.String(),
		ActorID:     e.ActorID,
		EditedAt:    e.EditedAt,
		OldFileURL:  e.OldFileURL,
		NewFileURL:  e.NewFileURL,
		Comments:    e.Comments,
		DiffSummary: e.DiffSummary,
	}
}

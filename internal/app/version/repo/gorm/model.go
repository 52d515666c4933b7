package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/version"
)

type versionModel struct {
	ID         uuid.UUID
	ArticleID  uuid.UUID
	Role       string
	Format     string
	URL        string
	ProducedBy uuid.UUID
	CreatedAt  time.Time
}

func (versionModel) TableName() string {
	return "document_versions"
}

func (m *versionModel) toDTO() version.DocumentVersion {
	return version.DocumentVersion{
		ID:         m.ID,
		ArticleID:  m.ArticleID,
		Role:       version.Role(m.Role),
		Format:     version.Format(m.Format),
		URL:        m.URL,
		ProducedBy: m.ProducedBy,
		CreatedAt:  m.CreatedAt,
	}
}

func toModel(v version.DocumentVersion) *versionModel {
	return &versionModel{
		ID:         v.ID,
		ArticleID:  v.ArticleID,
		Role:       v.Role.String(),
		Format:     v.Format.String(),
		URL:        v.URL,
		ProducedBy: v.ProducedBy,
		CreatedAt:  v.CreatedAt,
	}
}

package gorm

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/article"
	"github.com/lexnotes/journal/internal/infrastructure/db"
)

type articleModel struct {
	db.Base
	ID                 uuid.UUID
	Slug               string
	Title              string
	Abstract           string
	AuthorName         string
	AuthorEmail        string
	AuthorUserID       *uuid.UUID
	Status             string
	AssignedEditorID   *uuid.UUID
	AssignedReviewerID *uuid.UUID
	CitationNumber     *string
	OriginalPDFURL     string `gorm:"column:original_pdf_url"`
	OriginalDOCXURL    string `gorm:"column:original_docx_url"`
	CurrentPDFURL      string `gorm:"column:current_pdf_url"`
	CurrentDOCXURL     string `gorm:"column:current_docx_url"`
	PublishedAt        *time.Time
}

func (articleModel) TableName() string {
	return "articles"
}

func (m *articleModel) toDTO() article.Article {
	return article.Article{
		ID:                 m.ID,
		Slug:               m.Slug,
		Title:              m.Title,
		Abstract:           m.Abstract,
		AuthorName:         m.AuthorName,
		AuthorEmail:        m.AuthorEmail,
		AuthorUserID:       m.AuthorUserID,
		Status:             article.Status(m.Status),
		AssignedEditorID:   m.AssignedEditorID,
		AssignedReviewerID: m.AssignedReviewerID,
		CitationNumber:     m.CitationNumber,
		OriginalPDFURL:     m.OriginalPDFURL,
		OriginalDOCXURL:    m.OriginalDOCXURL,
		CurrentPDFURL:      m.CurrentPDFURL,
		CurrentDOCXURL:     m.CurrentDOCXURL,
		PublishedAt:        m.PublishedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toModel(a article.Article) *articleModel {
	return &articleModel{
		ID:                 a.ID,
		Slug:               a.Slug,
		Title:              a.Title,
		Abstract:           a.Abstract,
		AuthorName:         a.AuthorName,
		AuthorEmail:        a.AuthorEmail,
		AuthorUserID:       a.AuthorUserID,
		Status:             a.Status.String(),
		AssignedEditorID:   a.AssignedEditorID,
		AssignedReviewerID: a.AssignedReviewerID,
		CitationNumber:     a.CitationNumber,
		OriginalPDFURL:     a.OriginalPDFURL,
		OriginalDOCXURL:    a.OriginalDOCXURL,
		CurrentPDFURL:      a.CurrentPDFURL,
		CurrentDOCXURL:     a.CurrentDOCXURL,
		PublishedAt:        a.PublishedAt,
	}
}

type assignmentModel struct {
	ID           uuid.UUID
	ArticleID    uuid.UUID
	Role         string
	UserID       uuid.UUID
	AssignedBy   uuid.UUID
	AssignedAt   time.Time
	UnassignedAt *time.Time
}

func (assignmentModel) TableName() string {
	return "assignments"
}

func (m *assignmentModel) toDTO() article.Assignment {
	return article.Assignment{
		ID:           m.ID,
		ArticleID:    m.ArticleID,
		Role:         article.AssignmentRole(m.Role),
		UserID:       m.UserID,
		AssignedBy:   m.AssignedBy,
		AssignedAt:   m.AssignedAt,
		UnassignedAt: m.UnassignedAt,
	}
}

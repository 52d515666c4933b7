package version

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which workflow stage produced a document version.
type Role string

const (
	RoleOriginal Role = "ORIGINAL"
	RoleEditor   Role = "EDITOR"
	RoleReviewer Role = "REVIEWER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOriginal, RoleEditor, RoleReviewer, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

type Format string

const (
	FormatPDF  Format = "PDF"
	FormatDOCX Format = "DOCX"
)

func (f Format) Valid() bool {
	return f == FormatPDF || f == FormatDOCX
}

func (f Format) String() string { return string(f) }

// Counterpart returns the other artifact format of the same document.
func (f Format) Counterpart() Format {
	if f == FormatPDF {
		return FormatDOCX
	}
	return FormatPDF
}

// DocumentVersion is one append-only row of the version store.
type DocumentVersion struct {
	ID         uuid.UUID `json:"id"`
	ArticleID  uuid.UUID `json:"article_id"`
	Role       Role      `json:"role"`
	Format     Format    `json:"format"`
	URL        string    `json:"url"`
	ProducedBy uuid.UUID `json:"produced_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type RecordReq struct {
	ArticleID  uuid.UUID `json:"article_id"`
	Role       Role      `json:"role"`
	Format     Format    `json:"format"`
	URL        string    `json:"url"`
	ProducedBy uuid.UUID `json:"produced_by"`
}

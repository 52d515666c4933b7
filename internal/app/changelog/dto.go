package changelog

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/app/diff"
	"github.com/lexnotes/journal/internal/app/version"
)

// Entry is one append-only change-log row. EditedAt is assigned by the server
// inside the transition transaction; clients never supply it.
type Entry struct {
	ID          uuid.UUID    `json:"id"`
	ArticleID   uuid.UUID    `json:"article_id"`
	Role        version.Role `json:"role"`
	ActorID     uuid.UUID    `json:"actor_id"`
	EditedAt    time.Time    `json:"edited_at"`
	OldFileURL  string       `json:"old_file_url,omitempty"`
	NewFileURL  string       `json:"new_file_url,omitempty"`
	Comments    string       `json:"comments,omitempty"`
	DiffSummary *diff.Stats  `json:"diff_summary,omitempty"`
}

type AppendReq struct {
	ArticleID  uuid.UUID    `json:"article_id"`
	Role       version.Role `json:"role"`
	ActorID    uuid.UUID    `json:"actor_id"`
	OldFileURL string       `json:"old_file_url"`
	NewFileURL string       `json:"new_file_url"`
	Comments   string       `json:"comments"`
}

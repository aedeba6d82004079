package models

import (
	"time"

	"github.com/google/uuid"
)

// Folder groups applications of one owner. Applications without a folder are
// "unfiled".
type Folder struct {
	// ID is the unique identifier of the folder.
	ID int64 `json:"id"`

	// UserID is the owner of the folder.
	UserID uuid.UUID `json:"user_id"`

	// Title is the display name of the folder.
	Title string `json:"title"`

	// Position is a caller-assigned ordering hint. It is not unique.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderInput is the create/update payload for a folder.
// Nil fields are left untouched on update.
type FolderInput struct {
	Title    *string `json:"title,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// FolderSummary is one dashboard row: a folder (nil for the unfiled bucket),
// its most recent applications and the total number of applications in it.
type FolderSummary struct {
	Folder      *Folder       `json:"folder"`
	RecentItems []Application `json:"recent_applications"`
	ItemCount   int64         `json:"application_count"`
}

// IsUnfiled reports whether the summary describes the unfiled bucket.
func (s FolderSummary) IsUnfiled() bool {
	return s.Folder == nil
}

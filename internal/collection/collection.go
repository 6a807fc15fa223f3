package collection

import (
	"time"

	"github.com/hafiztri/comic-shelf/internal"

	collectionDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/collection"
)

// Shelf errors reuse the shared taxonomy so handlers can map them with
// HandleServiceError instead of per-package switches.
var (
	ErrEntryNotFound  = internal.ErrEntryNotFound
	ErrComicNotFound  = internal.ErrComicNotFound
	ErrAlreadyInShelf = internal.ErrDuplicateEntry
)

// Entry is one comic on a user's shelf. Entries are owner-scoped: a user
// only ever sees and mutates their own.
type Entry struct {
	ID        int64     `json:"id"`
	ComicID   int64     `json:"comic_id"`
	Status    string    `json:"status"`
	Rating    *int      `json:"rating,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(e *collectionDatamodel.Entry) *Entry {
	return &Entry{
		ID:        e.ID,
		ComicID:   e.ComicID,
		Status:    e.Status,
		Rating:    e.Rating,
		Notes:     e.Notes,
		AddedAt:   e.AddedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

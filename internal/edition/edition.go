package edition

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

// Edition is a collected edition of a series. Omnibus editions and trade
// paperbacks share the same shape and differ only in Format.
type Edition struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Format      string     `json:"format"`
	SeriesID    int64      `json:"series_id,omitempty"`
	Volume      int        `json:"volume,omitempty"`
	ISBN        string     `json:"isbn,omitempty"`
	PageCount   int        `json:"page_count,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ValidFormat(f string) bool {
	return f == catalogDatamodel.EditionFormatOmnibus || f == catalogDatamodel.EditionFormatTPB
}

func FromDataModel(e *catalogDatamodel.Edition) *Edition {
	return &Edition{
		ID:          e.ID,
		Title:       e.Title,
		Format:      e.Format,
		SeriesID:    e.SeriesID,
		Volume:      e.Volume,
		ISBN:        e.ISBN,
		PageCount:   e.PageCount,
		ReleaseDate: e.ReleaseDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

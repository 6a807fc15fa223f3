package comic

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type Comic struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	IssueNumber int        `json:"issue_number"`
	SeriesID    int64      `json:"series_id,omitempty"`
	PublisherID int64      `json:"publisher_id,omitempty"`
	UniverseID  int64      `json:"universe_id,omitempty"`
	CoverDate   *time.Time `json:"cover_date,omitempty"`
	Synopsis    string     `json:"synopsis,omitempty"`
	CreatorIDs  []int64    `json:"creator_ids,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Filter narrows comic listings. Zero values mean no constraint.
type Filter struct {
	SeriesID    int64
	PublisherID int64
}

func FromDataModel(c *catalogDatamodel.Comic) *Comic {
	return &Comic{
		ID:          c.ID,
		Title:       c.Title,
		IssueNumber: c.IssueNumber,
		SeriesID:    c.SeriesID,
		PublisherID: c.PublisherID,
		UniverseID:  c.UniverseID,
		CoverDate:   c.CoverDate,
		Synopsis:    c.Synopsis,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

package series

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

// Series is a comic run: issues published under one title, usually within a
// single universe.
type Series struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	PublisherID int64     `json:"publisher_id,omitempty"`
	UniverseID  int64     `json:"universe_id,omitempty"`
	StartYear   int       `json:"start_year,omitempty"`
	EndYear     *int      `json:"end_year,omitempty"`
	IssueCount  int       `json:"issue_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDataModel(s *catalogDatamodel.Series) *Series {
	return &Series{
		ID:          s.ID,
		Title:       s.Title,
		PublisherID: s.PublisherID,
		UniverseID:  s.UniverseID,
		StartYear:   s.StartYear,
		EndYear:     s.EndYear,
		IssueCount:  s.IssueCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

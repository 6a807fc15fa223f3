package comic

import "time"

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type ComicDTO struct {
	Title       string     `json:"title"`
	IssueNumber int        `json:"issue_number"`
	SeriesID    int64      `json:"series_id"`
	PublisherID int64      `json:"publisher_id"`
	UniverseID  int64      `json:"universe_id"`
	CoverDate   *time.Time `json:"cover_date"`
	Synopsis    string     `json:"synopsis"`
	CreatorIDs  []int64    `json:"creator_ids"`
}

func (d ComicDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.IssueNumber < 0 {
		return ValidationError{Msg: "issue_number cannot be negative"}
	}
	return nil
}

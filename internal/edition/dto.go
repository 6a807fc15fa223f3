package edition

import "time"

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type EditionDTO struct {
	Title       string     `json:"title"`
	Format      string     `json:"format"`
	SeriesID    int64      `json:"series_id"`
	Volume      int        `json:"volume"`
	ISBN        string     `json:"isbn"`
	PageCount   int        `json:"page_count"`
	ReleaseDate *time.Time `json:"release_date"`
}

func (d EditionDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.Format == "" {
		return ValidationError{Msg: "format is required"}
	}
	if !ValidFormat(d.Format) {
		return ValidationError{Msg: "format must be omnibus or tpb"}
	}
	return nil
}

package series

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type SeriesDTO struct {
	Title       string `json:"title"`
	PublisherID int64  `json:"publisher_id"`
	UniverseID  int64  `json:"universe_id"`
	StartYear   int    `json:"start_year"`
	EndYear     *int   `json:"end_year"`
	IssueCount  int    `json:"issue_count"`
}

func (d SeriesDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.EndYear != nil && *d.EndYear < d.StartYear {
		return ValidationError{Msg: "end_year cannot be before start_year"}
	}
	return nil
}

package publisher

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type PublisherDTO struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	FoundedYear int    `json:"founded_year"`
}

func (d PublisherDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

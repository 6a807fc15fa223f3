package universe

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type UniverseDTO struct {
	Name        string `json:"name"`
	PublisherID int64  `json:"publisher_id"`
	Description string `json:"description"`
}

func (d UniverseDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

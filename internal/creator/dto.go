package creator

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type CreatorDTO struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

func (d CreatorDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

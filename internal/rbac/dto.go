package rbac

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type RoleDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d RoleDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

type PermissionDTO struct {
	Name string `json:"name"`
}

func (d PermissionDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if _, _, ok := SplitPermissionName(d.Name); !ok {
		return ValidationError{Msg: "name must follow the resource:action convention"}
	}
	return nil
}

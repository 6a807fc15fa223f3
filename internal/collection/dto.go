package collection

import (
	collectionDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/collection"
)

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

type AddDTO struct {
	ComicID int64 `json:"comic_id"`
}

func (d AddDTO) Validate() error {
	if d.ComicID <= 0 {
		return ValidationError{Msg: "comic_id is required"}
	}
	return nil
}

// UpdateDTO carries a partial update; nil fields are left untouched.
type UpdateDTO struct {
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
	Notes  *string `json:"notes"`
}

func (d UpdateDTO) Validate() error {
	if d.Status != nil && !collectionDatamodel.ValidStatus(*d.Status) {
		return ValidationError{Msg: "status must be unread, reading or read"}
	}
	if d.Rating != nil && (*d.Rating < 1 || *d.Rating > 5) {
		return ValidationError{Msg: "rating must be between 1 and 5"}
	}
	return nil
}

package universe

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type Universe struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PublisherID int64     `json:"publisher_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDataModel(u *catalogDatamodel.Universe) *Universe {
	return &Universe{
		ID:          u.ID,
		Name:        u.Name,
		PublisherID: u.PublisherID,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

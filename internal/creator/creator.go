package creator

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type Creator struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDataModel(c *catalogDatamodel.Creator) *Creator {
	return &Creator{
		ID:        c.ID,
		Name:      c.Name,
		Role:      c.Role,
		Bio:       c.Bio,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

package publisher

import (
	"time"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type Publisher struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country,omitempty"`
	FoundedYear int       `json:"founded_year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromDataModel(p *catalogDatamodel.Publisher) *Publisher {
	return &Publisher{
		ID:          p.ID,
		Name:        p.Name,
		Country:     p.Country,
		FoundedYear: p.FoundedYear,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToDataModel(p *Publisher) *catalogDatamodel.Publisher {
	return &catalogDatamodel.Publisher{
		ID:          p.ID,
		Name:        p.Name,
		Country:     p.Country,
		FoundedYear: p.FoundedYear,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

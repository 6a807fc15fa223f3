package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/publisher"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type PublisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) publisher.RepositoryAPI {
	return &PublisherRepository{db: db}
}

func (r *PublisherRepository) GetAll() ([]*catalogDatamodel.Publisher, error) {
	var publishers []*catalogDatamodel.Publisher
	err := r.db.Order("name ASC").Find(&publishers).Error
	return publishers, err
}

func (r *PublisherRepository) GetByID(id int64) (*catalogDatamodel.Publisher, error) {
	var p catalogDatamodel.Publisher
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PublisherRepository) Create(p *catalogDatamodel.Publisher) error {
	return r.db.Create(p).Error
}

func (r *PublisherRepository) Update(p *catalogDatamodel.Publisher) error {
	return r.db.Save(p).Error
}

func (r *PublisherRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&catalogDatamodel.Publisher{}).Error
}

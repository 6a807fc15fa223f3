package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/universe"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type UniverseRepository struct {
	db *gorm.DB
}

func NewUniverseRepository(db *gorm.DB) universe.RepositoryAPI {
	return &UniverseRepository{db: db}
}

func (r *UniverseRepository) GetAll() ([]*catalogDatamodel.Universe, error) {
	var universes []*catalogDatamodel.Universe
	err := r.db.Order("name ASC").Find(&universes).Error
	return universes, err
}

func (r *UniverseRepository) GetByID(id int64) (*catalogDatamodel.Universe, error) {
	var u catalogDatamodel.Universe
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UniverseRepository) Create(u *catalogDatamodel.Universe) error {
	return r.db.Create(u).Error
}

func (r *UniverseRepository) Update(u *catalogDatamodel.Universe) error {
	return r.db.Save(u).Error
}

func (r *UniverseRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&catalogDatamodel.Universe{}).Error
}

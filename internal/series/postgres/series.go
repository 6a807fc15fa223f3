package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/series"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type SeriesRepository struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) series.RepositoryAPI {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) GetAll() ([]*catalogDatamodel.Series, error) {
	var rows []*catalogDatamodel.Series
	err := r.db.Order("title ASC").Find(&rows).Error
	return rows, err
}

func (r *SeriesRepository) GetByID(id int64) (*catalogDatamodel.Series, error) {
	var s catalogDatamodel.Series
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SeriesRepository) Create(s *catalogDatamodel.Series) error {
	return r.db.Create(s).Error
}

func (r *SeriesRepository) Update(s *catalogDatamodel.Series) error {
	return r.db.Save(s).Error
}

func (r *SeriesRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&catalogDatamodel.Series{}).Error
}

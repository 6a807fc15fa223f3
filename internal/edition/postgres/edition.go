package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/edition"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type EditionRepository struct {
	db *gorm.DB
}

func NewEditionRepository(db *gorm.DB) edition.RepositoryAPI {
	return &EditionRepository{db: db}
}

func (r *EditionRepository) GetAll(format string) ([]*catalogDatamodel.Edition, error) {
	query := r.db.Order("title ASC")
	if format != "" {
		query = query.Where("format = ?", format)
	}
	var rows []*catalogDatamodel.Edition
	err := query.Find(&rows).Error
	return rows, err
}

func (r *EditionRepository) GetByID(id int64) (*catalogDatamodel.Edition, error) {
	var e catalogDatamodel.Edition
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EditionRepository) Create(e *catalogDatamodel.Edition) error {
	return r.db.Create(e).Error
}

func (r *EditionRepository) Update(e *catalogDatamodel.Edition) error {
	return r.db.Save(e).Error
}

func (r *EditionRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&catalogDatamodel.Edition{}).Error
}

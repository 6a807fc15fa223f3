package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/creator"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type CreatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) creator.RepositoryAPI {
	return &CreatorRepository{db: db}
}

func (r *CreatorRepository) GetAll() ([]*catalogDatamodel.Creator, error) {
	var creators []*catalogDatamodel.Creator
	err := r.db.Order("name ASC").Find(&creators).Error
	return creators, err
}

func (r *CreatorRepository) GetByID(id int64) (*catalogDatamodel.Creator, error) {
	var c catalogDatamodel.Creator
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CreatorRepository) Create(c *catalogDatamodel.Creator) error {
	return r.db.Create(c).Error
}

func (r *CreatorRepository) Update(c *catalogDatamodel.Creator) error {
	return r.db.Save(c).Error
}

func (r *CreatorRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("creator_id = ?", id).Delete(&catalogDatamodel.ComicCreator{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&catalogDatamodel.Creator{}).Error
	})
}

package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/comic"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type ComicRepository struct {
	db *gorm.DB
}

func NewComicRepository(db *gorm.DB) comic.RepositoryAPI {
	return &ComicRepository{db: db}
}

func (r *ComicRepository) GetAll(filter comic.Filter) ([]*catalogDatamodel.Comic, error) {
	query := r.db.Order("series_id ASC, issue_number ASC")
	if filter.SeriesID != 0 {
		query = query.Where("series_id = ?", filter.SeriesID)
	}
	if filter.PublisherID != 0 {
		query = query.Where("publisher_id = ?", filter.PublisherID)
	}

	var comics []*catalogDatamodel.Comic
	err := query.Find(&comics).Error
	return comics, err
}

func (r *ComicRepository) GetByID(id int64) (*catalogDatamodel.Comic, error) {
	var c catalogDatamodel.Comic
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComicRepository) Create(c *catalogDatamodel.Comic, creatorIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return replaceCreators(tx, c.ID, creatorIDs)
	})
}

func (r *ComicRepository) Update(c *catalogDatamodel.Comic, creatorIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}
		return replaceCreators(tx, c.ID, creatorIDs)
	})
}

func (r *ComicRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comic_id = ?", id).Delete(&catalogDatamodel.ComicCreator{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&catalogDatamodel.Comic{}).Error
	})
}

func (r *ComicRepository) CreatorIDs(comicID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&catalogDatamodel.ComicCreator{}).
		Where("comic_id = ?", comicID).
		Pluck("creator_id", &ids).Error
	return ids, err
}

func replaceCreators(tx *gorm.DB, comicID int64, creatorIDs []int64) error {
	if err := tx.Where("comic_id = ?", comicID).Delete(&catalogDatamodel.ComicCreator{}).Error; err != nil {
		return err
	}
	for _, creatorID := range creatorIDs {
		link := &catalogDatamodel.ComicCreator{ComicID: comicID, CreatorID: creatorID}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

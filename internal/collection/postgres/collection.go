package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/collection"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
	collectionDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/collection"
)

type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) collection.RepositoryAPI {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) GetAllForUser(userID int64) ([]*collectionDatamodel.Entry, error) {
	var rows []*collectionDatamodel.Entry
	err := r.db.Where("user_id = ?", userID).Order("added_at DESC").Find(&rows).Error
	return rows, err
}

func (r *CollectionRepository) GetForUser(userID, entryID int64) (*collectionDatamodel.Entry, error) {
	var e collectionDatamodel.Entry
	err := r.db.Where("id = ? AND user_id = ?", entryID, userID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *CollectionRepository) GetByUserAndComic(userID, comicID int64) (*collectionDatamodel.Entry, error) {
	var e collectionDatamodel.Entry
	err := r.db.Where("user_id = ? AND comic_id = ?", userID, comicID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *CollectionRepository) ComicExists(comicID int64) (bool, error) {
	var count int64
	err := r.db.Model(&catalogDatamodel.Comic{}).Where("id = ?", comicID).Count(&count).Error
	return count > 0, err
}

func (r *CollectionRepository) Create(e *collectionDatamodel.Entry) error {
	return r.db.Create(e).Error
}

func (r *CollectionRepository) Update(e *collectionDatamodel.Entry) error {
	return r.db.Save(e).Error
}

func (r *CollectionRepository) Delete(userID, entryID int64) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&collectionDatamodel.Entry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

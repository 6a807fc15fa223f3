package collection

import (
	"log/slog"

	collectionDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/collection"
)

type RepositoryAPI interface {
	GetAllForUser(userID int64) ([]*collectionDatamodel.Entry, error)
	// GetForUser returns (nil, nil) when no entry with that id belongs to
	// the user, including entries owned by someone else.
	GetForUser(userID, entryID int64) (*collectionDatamodel.Entry, error)
	GetByUserAndComic(userID, comicID int64) (*collectionDatamodel.Entry, error)
	ComicExists(comicID int64) (bool, error)
	Create(e *collectionDatamodel.Entry) error
	Update(e *collectionDatamodel.Entry) error
	Delete(userID, entryID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) List(userID int64) ([]*Entry, error) {
	rows, err := s.repo.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("failed to list collection", "user_id", userID, "error", err)
		return nil, err
	}
	entries := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, FromDataModel(row))
	}
	return entries, nil
}

func (s *Service) Add(userID int64, dto AddDTO) (*Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ComicExists(dto.ComicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrComicNotFound
	}

	existing, err := s.repo.GetByUserAndComic(userID, dto.ComicID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInShelf
	}

	row := &collectionDatamodel.Entry{
		UserID:  userID,
		ComicID: dto.ComicID,
		Status:  collectionDatamodel.StatusUnread,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(userID, entryID int64, dto UpdateDTO) (*Entry, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetForUser(userID, entryID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrEntryNotFound
	}

	if dto.Status != nil {
		row.Status = *dto.Status
	}
	if dto.Rating != nil {
		row.Rating = dto.Rating
	}
	if dto.Notes != nil {
		row.Notes = *dto.Notes
	}
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Remove(userID, entryID int64) error {
	deleted, err := s.repo.Delete(userID, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

package comic

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	GetAll(filter Filter) ([]*catalogDatamodel.Comic, error)
	GetByID(id int64) (*catalogDatamodel.Comic, error)
	Create(c *catalogDatamodel.Comic, creatorIDs []int64) error
	Update(c *catalogDatamodel.Comic, creatorIDs []int64) error
	Delete(id int64) error
	CreatorIDs(comicID int64) ([]int64, error)
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

func (s *Service) GetAll(filter Filter) ([]*Comic, error) {
	rows, err := s.repo.GetAll(filter)
	if err != nil {
		s.logger.Error("failed to list comics", "error", err)
		return nil, err
	}
	comics := make([]*Comic, 0, len(rows))
	for _, row := range rows {
		comics = append(comics, FromDataModel(row))
	}
	return comics, nil
}

func (s *Service) GetByID(id int64) (*Comic, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	c := FromDataModel(row)
	creatorIDs, err := s.repo.CreatorIDs(id)
	if err != nil {
		s.logger.Warn("failed to load comic creators", "comic_id", id, "error", err)
	} else {
		c.CreatorIDs = creatorIDs
	}
	return c, nil
}

func (s *Service) Create(dto ComicDTO) (*Comic, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Comic{
		Title:       dto.Title,
		IssueNumber: dto.IssueNumber,
		SeriesID:    dto.SeriesID,
		PublisherID: dto.PublisherID,
		UniverseID:  dto.UniverseID,
		CoverDate:   dto.CoverDate,
		Synopsis:    dto.Synopsis,
	}
	if err := s.repo.Create(row, dto.CreatorIDs); err != nil {
		return nil, err
	}

	c := FromDataModel(row)
	c.CreatorIDs = dto.CreatorIDs
	return c, nil
}

func (s *Service) Update(id int64, dto ComicDTO) (*Comic, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	row.Title = dto.Title
	row.IssueNumber = dto.IssueNumber
	row.SeriesID = dto.SeriesID
	row.PublisherID = dto.PublisherID
	row.UniverseID = dto.UniverseID
	row.CoverDate = dto.CoverDate
	row.Synopsis = dto.Synopsis
	if err := s.repo.Update(row, dto.CreatorIDs); err != nil {
		return nil, err
	}

	c := FromDataModel(row)
	c.CreatorIDs = dto.CreatorIDs
	return c, nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

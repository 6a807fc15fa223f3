package series

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	GetAll() ([]*catalogDatamodel.Series, error)
	GetByID(id int64) (*catalogDatamodel.Series, error)
	Create(s *catalogDatamodel.Series) error
	Update(s *catalogDatamodel.Series) error
	Delete(id int64) error
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

func (s *Service) GetAll() ([]*Series, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list series", "error", err)
		return nil, err
	}
	out := make([]*Series, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromDataModel(row))
	}
	return out, nil
}

func (s *Service) GetByID(id int64) (*Series, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto SeriesDTO) (*Series, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Series{
		Title:       dto.Title,
		PublisherID: dto.PublisherID,
		UniverseID:  dto.UniverseID,
		StartYear:   dto.StartYear,
		EndYear:     dto.EndYear,
		IssueCount:  dto.IssueCount,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto SeriesDTO) (*Series, error) {
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
	row.PublisherID = dto.PublisherID
	row.UniverseID = dto.UniverseID
	row.StartYear = dto.StartYear
	row.EndYear = dto.EndYear
	row.IssueCount = dto.IssueCount
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

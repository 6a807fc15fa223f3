package universe

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	GetAll() ([]*catalogDatamodel.Universe, error)
	GetByID(id int64) (*catalogDatamodel.Universe, error)
	Create(u *catalogDatamodel.Universe) error
	Update(u *catalogDatamodel.Universe) error
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

func (s *Service) GetAll() ([]*Universe, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list universes", "error", err)
		return nil, err
	}
	universes := make([]*Universe, 0, len(rows))
	for _, row := range rows {
		universes = append(universes, FromDataModel(row))
	}
	return universes, nil
}

func (s *Service) GetByID(id int64) (*Universe, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto UniverseDTO) (*Universe, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Universe{
		Name:        dto.Name,
		PublisherID: dto.PublisherID,
		Description: dto.Description,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto UniverseDTO) (*Universe, error) {
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

	row.Name = dto.Name
	row.PublisherID = dto.PublisherID
	row.Description = dto.Description
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

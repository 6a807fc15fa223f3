package creator

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	GetAll() ([]*catalogDatamodel.Creator, error)
	GetByID(id int64) (*catalogDatamodel.Creator, error)
	Create(c *catalogDatamodel.Creator) error
	Update(c *catalogDatamodel.Creator) error
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

func (s *Service) GetAll() ([]*Creator, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list creators", "error", err)
		return nil, err
	}
	creators := make([]*Creator, 0, len(rows))
	for _, row := range rows {
		creators = append(creators, FromDataModel(row))
	}
	return creators, nil
}

func (s *Service) GetByID(id int64) (*Creator, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto CreatorDTO) (*Creator, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Creator{
		Name: dto.Name,
		Role: dto.Role,
		Bio:  dto.Bio,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto CreatorDTO) (*Creator, error) {
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
	row.Role = dto.Role
	row.Bio = dto.Bio
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

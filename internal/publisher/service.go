package publisher

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	GetAll() ([]*catalogDatamodel.Publisher, error)
	GetByID(id int64) (*catalogDatamodel.Publisher, error)
	Create(p *catalogDatamodel.Publisher) error
	Update(p *catalogDatamodel.Publisher) error
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

func (s *Service) GetAll() ([]*Publisher, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list publishers", "error", err)
		return nil, err
	}
	publishers := make([]*Publisher, 0, len(rows))
	for _, row := range rows {
		publishers = append(publishers, FromDataModel(row))
	}
	return publishers, nil
}

func (s *Service) GetByID(id int64) (*Publisher, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto PublisherDTO) (*Publisher, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Publisher{
		Name:        dto.Name,
		Country:     dto.Country,
		FoundedYear: dto.FoundedYear,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto PublisherDTO) (*Publisher, error) {
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
	row.Country = dto.Country
	row.FoundedYear = dto.FoundedYear
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

package edition

import (
	"log/slog"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

type RepositoryAPI interface {
	// GetAll returns editions, optionally restricted to one format.
	GetAll(format string) ([]*catalogDatamodel.Edition, error)
	GetByID(id int64) (*catalogDatamodel.Edition, error)
	Create(e *catalogDatamodel.Edition) error
	Update(e *catalogDatamodel.Edition) error
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

func (s *Service) GetAll(format string) ([]*Edition, error) {
	if format != "" && !ValidFormat(format) {
		return nil, ValidationError{Msg: "format must be omnibus or tpb"}
	}

	rows, err := s.repo.GetAll(format)
	if err != nil {
		s.logger.Error("failed to list editions", "format", format, "error", err)
		return nil, err
	}
	editions := make([]*Edition, 0, len(rows))
	for _, row := range rows {
		editions = append(editions, FromDataModel(row))
	}
	return editions, nil
}

func (s *Service) GetByID(id int64) (*Edition, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto EditionDTO) (*Edition, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &catalogDatamodel.Edition{
		Title:       dto.Title,
		Format:      dto.Format,
		SeriesID:    dto.SeriesID,
		Volume:      dto.Volume,
		ISBN:        dto.ISBN,
		PageCount:   dto.PageCount,
		ReleaseDate: dto.ReleaseDate,
	}
	if err := s.repo.Create(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Update(id int64, dto EditionDTO) (*Edition, error) {
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
	row.Format = dto.Format
	row.SeriesID = dto.SeriesID
	row.Volume = dto.Volume
	row.ISBN = dto.ISBN
	row.PageCount = dto.PageCount
	row.ReleaseDate = dto.ReleaseDate
	if err := s.repo.Update(row); err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	return s.repo.Delete(id)
}

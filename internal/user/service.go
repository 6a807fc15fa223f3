package user

import (
	"fmt"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	GetAll() ([]*User, error)
	RoleNames(userID int64) ([]string, error)
	Delete(userID int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}

	roles, err := s.repo.RoleNames(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	u.Roles = roles

	return u, nil
}

func (s *Service) GetAll() ([]*User, error) {
	return s.repo.GetAll()
}

func (s *Service) Delete(userID int64) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	return s.repo.Delete(userID)
}

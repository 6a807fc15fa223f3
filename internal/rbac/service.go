package rbac

import (
	"log/slog"

	rbacDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/rbac"
)

type RepositoryAPI interface {
	// PermissionNamesForRoles resolves the union of permission names granted
	// to any of the role ids, in a single join query.
	PermissionNamesForRoles(roleIDs []int64) ([]string, error)

	GetAllRoles() ([]*rbacDatamodel.Role, error)
	GetRoleByID(id int64) (*rbacDatamodel.Role, error)
	GetRoleByName(name string) (*rbacDatamodel.Role, error)
	CreateRole(role *rbacDatamodel.Role) error
	UpdateRole(role *rbacDatamodel.Role) error
	DeleteRole(id int64) error

	GetAllPermissions() ([]*rbacDatamodel.Permission, error)
	GetPermissionByID(id int64) (*rbacDatamodel.Permission, error)
	GetPermissionByName(name string) (*rbacDatamodel.Permission, error)
	CreatePermission(p *rbacDatamodel.Permission) error
	DeletePermission(id int64) error

	GrantPermission(roleID, permissionID int64) error
	RevokePermission(roleID, permissionID int64) error

	AssignRole(userID, roleID int64) error
	RemoveRole(userID, roleID int64) error
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

// PermissionSetForRoles returns the flattened set of permission names the
// role ids grant. Duplicates across roles collapse.
func (s *Service) PermissionSetForRoles(roleIDs []int64) (map[string]bool, error) {
	if len(roleIDs) == 0 {
		return map[string]bool{}, nil
	}

	names, err := s.repo.PermissionNamesForRoles(roleIDs)
	if err != nil {
		s.logger.Error("failed to resolve permissions for roles", "role_ids", roleIDs, "error", err)
		return nil, err
	}

	set := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = true
	}
	return set, nil
}

func (s *Service) GetAllRoles() ([]*Role, error) {
	rows, err := s.repo.GetAllRoles()
	if err != nil {
		return nil, err
	}
	roles := make([]*Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, RoleFromDataModel(row))
	}
	return roles, nil
}

func (s *Service) GetRole(id int64) (*Role, error) {
	row, err := s.repo.GetRoleByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return RoleFromDataModel(row), nil
}

func (s *Service) CreateRole(dto RoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &rbacDatamodel.Role{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.repo.CreateRole(row); err != nil {
		return nil, err
	}
	return RoleFromDataModel(row), nil
}

func (s *Service) UpdateRole(id int64, dto RoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetRoleByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	row.Name = dto.Name
	row.Description = dto.Description
	if err := s.repo.UpdateRole(row); err != nil {
		return nil, err
	}
	return RoleFromDataModel(row), nil
}

func (s *Service) DeleteRole(id int64) error {
	return s.repo.DeleteRole(id)
}

func (s *Service) GetAllPermissions() ([]*Permission, error) {
	rows, err := s.repo.GetAllPermissions()
	if err != nil {
		return nil, err
	}
	perms := make([]*Permission, 0, len(rows))
	for _, row := range rows {
		perms = append(perms, PermissionFromDataModel(row))
	}
	return perms, nil
}

func (s *Service) CreatePermission(dto PermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	resource, action, _ := SplitPermissionName(dto.Name)
	row := &rbacDatamodel.Permission{
		Name:     dto.Name,
		Resource: resource,
		Action:   action,
	}
	if err := s.repo.CreatePermission(row); err != nil {
		return nil, err
	}
	return PermissionFromDataModel(row), nil
}

func (s *Service) DeletePermission(id int64) error {
	return s.repo.DeletePermission(id)
}

func (s *Service) GrantPermission(roleID, permissionID int64) error {
	role, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	perm, err := s.repo.GetPermissionByID(permissionID)
	if err != nil {
		return err
	}
	if perm == nil {
		return ErrPermissionNotFound
	}

	return s.repo.GrantPermission(roleID, permissionID)
}

func (s *Service) RevokePermission(roleID, permissionID int64) error {
	return s.repo.RevokePermission(roleID, permissionID)
}

func (s *Service) AssignRole(userID, roleID int64) error {
	role, err := s.repo.GetRoleByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	return s.repo.AssignRole(userID, roleID)
}

func (s *Service) RemoveRole(userID, roleID int64) error {
	return s.repo.RemoveRole(userID, roleID)
}

package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hafiztri/comic-shelf/internal/rbac"

	rbacDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/rbac"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) rbac.RepositoryAPI {
	return &Repository{db: db}
}

// PermissionNamesForRoles fetches the permission names granted to any of the
// role ids with one join query. Rows whose permission failed to resolve are
// dropped by the inner join.
func (r *Repository) PermissionNamesForRoles(roleIDs []int64) ([]string, error) {
	var names []string
	err := r.db.Model(&rbacDatamodel.RolePermission{}).
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("role_permissions.role_id IN ?", roleIDs).
		Pluck("permissions.name", &names).Error
	return names, err
}

func (r *Repository) GetAllRoles() ([]*rbacDatamodel.Role, error) {
	var roles []*rbacDatamodel.Role
	err := r.db.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *Repository) GetRoleByID(id int64) (*rbacDatamodel.Role, error) {
	var role rbacDatamodel.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) GetRoleByName(name string) (*rbacDatamodel.Role, error) {
	var role rbacDatamodel.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) CreateRole(role *rbacDatamodel.Role) error {
	return r.db.Create(role).Error
}

func (r *Repository) UpdateRole(role *rbacDatamodel.Role) error {
	return r.db.Save(role).Error
}

func (r *Repository) DeleteRole(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&rbacDatamodel.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&rbacDatamodel.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbacDatamodel.Role{}).Error
	})
}

func (r *Repository) GetAllPermissions() ([]*rbacDatamodel.Permission, error) {
	var perms []*rbacDatamodel.Permission
	err := r.db.Order("resource ASC, action ASC").Find(&perms).Error
	return perms, err
}

func (r *Repository) GetPermissionByID(id int64) (*rbacDatamodel.Permission, error) {
	var perm rbacDatamodel.Permission
	err := r.db.Where("id = ?", id).First(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &perm, nil
}

func (r *Repository) GetPermissionByName(name string) (*rbacDatamodel.Permission, error) {
	var perm rbacDatamodel.Permission
	err := r.db.Where("name = ?", name).First(&perm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &perm, nil
}

func (r *Repository) CreatePermission(p *rbacDatamodel.Permission) error {
	return r.db.Create(p).Error
}

func (r *Repository) DeletePermission(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("permission_id = ?", id).Delete(&rbacDatamodel.RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbacDatamodel.Permission{}).Error
	})
}

func (r *Repository) GrantPermission(roleID, permissionID int64) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rbacDatamodel.RolePermission{RoleID: roleID, PermissionID: permissionID}).Error
}

func (r *Repository) RevokePermission(roleID, permissionID int64) error {
	return r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&rbacDatamodel.RolePermission{}).Error
}

func (r *Repository) AssignRole(userID, roleID int64) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rbacDatamodel.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *Repository) RemoveRole(userID, roleID int64) error {
	return r.db.Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&rbacDatamodel.UserRole{}).Error
}

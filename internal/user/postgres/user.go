package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/user"

	rbacDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/rbac"
	userDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(userID int64) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

func (r *Repository) GetAll() ([]*user.User, error) {
	var rows []*userDatamodel.User
	if err := r.db.Order("username ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, user.FromDataModel(row))
	}
	return users, nil
}

func (r *Repository) RoleNames(userID int64) ([]string, error) {
	var names []string
	err := r.db.Model(&rbacDatamodel.UserRole{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	return names, err
}

func (r *Repository) Delete(userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&rbacDatamodel.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&userDatamodel.User{}).Error
	})
}

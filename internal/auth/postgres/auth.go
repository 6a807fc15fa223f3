package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal/auth"

	rbacDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/rbac"
	userDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	return r.getOne("email = ?", email)
}

func (r *Repository) GetByUsername(username string) (*userDatamodel.User, error) {
	return r.getOne("username = ?", username)
}

func (r *Repository) GetByID(id int64) (*userDatamodel.User, error) {
	return r.getOne("id = ?", id)
}

func (r *Repository) getOne(query string, args ...interface{}) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.Where(query, args...).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) RoleIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&rbacDatamodel.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &ids).Error
	return ids, err
}

func (r *Repository) SetResetToken(userID int64, tokenHash string, expiresAt time.Time) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token_hash":       tokenHash,
			"reset_token_expires_at": expiresAt,
		}).Error
}

func (r *Repository) GetByResetTokenHash(tokenHash string, now time.Time) (*userDatamodel.User, error) {
	return r.getOne("reset_token_hash = ? AND reset_token_expires_at > ?", tokenHash, now)
}

func (r *Repository) UpdatePasswordAndClearReset(userID int64, passwordHash string) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash":          passwordHash,
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		}).Error
}

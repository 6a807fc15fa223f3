package user

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"column:username;uniqueIndex;not null"`
	Email        string `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	// Reset fields are set and cleared together: a pending reset token is
	// represented by both being non-nil.
	ResetTokenHash      *string    `gorm:"column:reset_token_hash"`
	ResetTokenExpiresAt *time.Time `gorm:"column:reset_token_expires_at"`
	IsActive            bool       `gorm:"column:is_active;default:true"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

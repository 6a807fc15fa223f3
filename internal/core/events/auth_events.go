package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePasswordResetRequested = "auth.password_reset_requested"
	EventTypeUserRegistered         = "auth.user_registered"
)

// PasswordResetRequestedEvent carries the raw reset token to the mail
// subscriber. The raw token exists only in memory here; storage holds its
// hash.
type PasswordResetRequestedEvent struct {
	BaseEvent
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	RawToken string `json:"-"`
}

func NewPasswordResetRequestedEvent(userID int64, email, username, rawToken string) *PasswordResetRequestedEvent {
	return &PasswordResetRequestedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePasswordResetRequested,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id": userID,
				"email":   email,
			},
		},
		UserID:   userID,
		Email:    email,
		Username: username,
		RawToken: rawToken,
	}
}

type UserRegisteredEvent struct {
	BaseEvent
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func NewUserRegisteredEvent(userID int64, email, username string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeUserRegistered,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"user_id":  userID,
				"email":    email,
				"username": username,
			},
		},
		UserID:   userID,
		Email:    email,
		Username: username,
	}
}

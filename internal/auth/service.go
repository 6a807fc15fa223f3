package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hafiztri/comic-shelf/internal"
	"github.com/hafiztri/comic-shelf/internal/core/events"

	userDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/user"
)

// UserRepository is the persistence surface the auth flows need. Lookups
// return (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByUsername(username string) (*userDatamodel.User, error)
	GetByID(id int64) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
	RoleIDs(userID int64) ([]int64, error)
	SetResetToken(userID int64, tokenHash string, expiresAt time.Time) error
	GetByResetTokenHash(tokenHash string, now time.Time) (*userDatamodel.User, error)
	// UpdatePasswordAndClearReset replaces the password hash and clears both
	// reset-token columns in a single update, enforcing single-use tokens.
	UpdatePasswordAndClearReset(userID int64, passwordHash string) error
}

type ServiceAPI interface {
	Register(dto RegisterDTO) error
	Login(dto LoginDTO) (token string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetIdentity(userID int64) (*internal.Identity, error)
	RequestPasswordReset(ctx context.Context, dto ResetRequestDTO) error
	RedeemPasswordReset(rawToken, newPassword string) error
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bus            *events.EventBus
	bcryptCost     int
	resetTokenTTL  time.Duration
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bus *events.EventBus, bcryptCost int, resetTokenTTL time.Duration, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bus:            bus,
		bcryptCost:     bcryptCost,
		resetTokenTTL:  resetTokenTTL,
		logger:         logger,
	}
}

func (s *Service) Register(dto RegisterDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if existing, err := s.userRepo.GetByEmail(dto.Email); err != nil {
		return err
	} else if existing != nil {
		return ErrEmailTaken
	}

	if existing, err := s.userRepo.GetByUsername(dto.Username); err != nil {
		return err
	} else if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return err
	}

	u := &userDatamodel.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Create(u); err != nil {
		return err
	}

	if s.bus != nil {
		_ = s.bus.Publish(context.Background(), events.NewUserRegisteredEvent(u.ID, u.Email, u.Username))
	}
	return nil
}

// Login verifies credentials and issues a signed bearer token. No session
// state is persisted; the token is self-contained.
func (s *Service) Login(dto LoginDTO) (string, error) {
	if err := dto.Validate(); err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByEmail(dto.Email)
	if err != nil {
		return "", err
	}
	if u == nil || !u.IsActive {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	return s.tokenGenerator.GenerateAccessToken(u.ID, u.Email)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GetIdentity loads the user's current role ids and builds the request
// identity attached by the authentication middleware.
func (s *Service) GetIdentity(userID int64) (*internal.Identity, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrUserNotFound
	}

	roleIDs, err := s.userRepo.RoleIDs(userID)
	if err != nil {
		return nil, err
	}

	return &internal.Identity{
		UserID:  u.ID,
		Email:   u.Email,
		RoleIDs: roleIDs,
	}, nil
}

// RequestPasswordReset stores a hashed, time-limited reset token and hands
// the raw token to the mail subscriber. It returns nil for unknown emails so
// the handler responds identically either way.
func (s *Service) RequestPasswordReset(ctx context.Context, dto ResetRequestDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByEmail(dto.Email)
	if err != nil {
		return err
	}
	if u == nil {
		s.logger.Info("password reset requested for unknown email")
		return nil
	}

	rawToken, err := GenerateRandomToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.userRepo.SetResetToken(u.ID, HashResetToken(rawToken), expiresAt); err != nil {
		return err
	}

	if s.bus != nil {
		_ = s.bus.Publish(ctx, events.NewPasswordResetRequestedEvent(u.ID, u.Email, u.Username, rawToken))
	}
	return nil
}

// RedeemPasswordReset exchanges a raw reset token for a new password. Wrong
// token and expired token are indistinguishable to the caller.
func (s *Service) RedeemPasswordReset(rawToken, newPassword string) error {
	if rawToken == "" {
		return ErrInvalidResetToken
	}

	u, err := s.userRepo.GetByResetTokenHash(HashResetToken(rawToken), time.Now())
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidResetToken
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordAndClearReset(u.ID, hash)
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateRandomToken generates a cryptographically secure random token.
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashResetToken computes the one-way digest stored in place of a raw reset
// token. The raw token never touches the database.
func HashResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

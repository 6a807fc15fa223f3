package auth

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	userDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/user"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users         map[int64]*userDatamodel.User
	roleIDs       map[int64][]int64
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	return &mockUserRepository{
		users: map[int64]*userDatamodel.User{
			1: {ID: 1, Username: "reader", Email: "reader@example.com", PasswordHash: string(hashedPassword), IsActive: true},
			2: {ID: 2, Username: "admin", Email: "admin@example.com", PasswordHash: string(hashedPassword), IsActive: true},
			3: {ID: 3, Username: "ghost", Email: "inactive@example.com", PasswordHash: string(hashedPassword), IsActive: false},
		},
		roleIDs: map[int64][]int64{
			1: {10},
			2: {10, 11},
		},
		nextID: 4,
	}
}

func (m *mockUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(username string) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockUserRepository) Create(u *userDatamodel.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) RoleIDs(userID int64) ([]int64, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.roleIDs[userID], nil
}

func (m *mockUserRepository) SetResetToken(userID int64, tokenHash string, expiresAt time.Time) error {
	if m.returnError {
		return m.errorToReturn
	}
	u := m.users[userID]
	u.ResetTokenHash = &tokenHash
	u.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (m *mockUserRepository) GetByResetTokenHash(tokenHash string, now time.Time) (*userDatamodel.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash &&
			u.ResetTokenExpiresAt != nil && u.ResetTokenExpiresAt.After(now) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) UpdatePasswordAndClearReset(userID int64, passwordHash string) error {
	if m.returnError {
		return m.errorToReturn
	}
	u := m.users[userID]
	u.PasswordHash = passwordHash
	u.ResetTokenHash = nil
	u.ResetTokenExpiresAt = nil
	return nil
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", 30*time.Minute)
		service = NewService(mockRepo, tokenGen, nil, bcrypt.MinCost, time.Hour, testLogger)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token that validates back to the user", func() {
				// Given
				dto := LoginDTO{Email: "reader@example.com", Password: "correct_password"}

				// When
				token, err := service.Login(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(token).ToNot(gomega.BeEmpty())

				claims, err := service.ValidateAccessToken(token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(int64(1)))
				gomega.Expect(claims.Email).To(gomega.Equal("reader@example.com"))
			})
		})

		ginkgo.Context("when the user does not exist", func() {
			ginkgo.It("should return ErrUserNotFound", func() {
				_, err := service.Login(LoginDTO{Email: "nobody@example.com", Password: "whatever"})
				gomega.Expect(err).To(gomega.MatchError(ErrUserNotFound))
			})
		})

		ginkgo.Context("when the user is deactivated", func() {
			ginkgo.It("should return ErrUserNotFound", func() {
				_, err := service.Login(LoginDTO{Email: "inactive@example.com", Password: "correct_password"})
				gomega.Expect(err).To(gomega.MatchError(ErrUserNotFound))
			})
		})

		ginkgo.Context("when the password is wrong", func() {
			ginkgo.It("should return ErrIncorrectPassword", func() {
				_, err := service.Login(LoginDTO{Email: "reader@example.com", Password: "wrong_password"})
				gomega.Expect(err).To(gomega.MatchError(ErrIncorrectPassword))
			})
		})

		ginkgo.Context("when a field is missing", func() {
			ginkgo.It("should return a validation error", func() {
				_, err := service.Login(LoginDTO{Email: "reader@example.com"})
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject tokens signed with another secret", func() {
			otherGen := NewJWTTokenGenerator("other-secret", 30*time.Minute)
			token, err := otherGen.GenerateAccessToken(1, "reader@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})

		ginkgo.It("should reject expired tokens", func() {
			expiredGen := NewJWTTokenGenerator("test-secret", -time.Minute)
			token, err := expiredGen.GenerateAccessToken(1, "reader@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(ErrTokenExpired))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidToken))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create the user with a bcrypt hash", func() {
			err := service.Register(RegisterDTO{Username: "newbie", Email: "newbie@example.com", Password: "s3cret"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			u, err := mockRepo.GetByEmail("newbie@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u).ToNot(gomega.BeNil())
			gomega.Expect(u.PasswordHash).ToNot(gomega.Equal("s3cret"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret"))).To(gomega.Succeed())
		})

		ginkgo.It("should reject duplicate emails", func() {
			err := service.Register(RegisterDTO{Username: "other", Email: "reader@example.com", Password: "s3cret"})
			gomega.Expect(err).To(gomega.MatchError(ErrEmailTaken))
		})

		ginkgo.It("should reject duplicate usernames", func() {
			err := service.Register(RegisterDTO{Username: "reader", Email: "fresh@example.com", Password: "s3cret"})
			gomega.Expect(err).To(gomega.MatchError(ErrUsernameTaken))
		})

		ginkgo.It("should reject missing fields", func() {
			err := service.Register(RegisterDTO{Username: "x", Email: "", Password: "s3cret"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})
	})

	ginkgo.Describe("GetIdentity", func() {
		ginkgo.It("should load role ids from the repository", func() {
			identity, err := service.GetIdentity(2)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(identity.Email).To(gomega.Equal("admin@example.com"))
			gomega.Expect(identity.RoleIDs).To(gomega.ConsistOf(int64(10), int64(11)))
		})

		ginkgo.It("should fail for deactivated users", func() {
			_, err := service.GetIdentity(3)
			gomega.Expect(err).To(gomega.MatchError(ErrUserNotFound))
		})
	})

	ginkgo.Describe("Password reset", func() {
		ginkgo.It("should store only the hash of the token, never the raw value", func() {
			err := service.RequestPasswordReset(context.Background(), ResetRequestDTO{Email: "reader@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			u := mockRepo.users[1]
			gomega.Expect(u.ResetTokenHash).ToNot(gomega.BeNil())
			// 32 random bytes hex-encoded would be 64 chars; the stored
			// value must be the sha256 digest, also 64 hex chars but never
			// equal to any raw token we could regenerate
			gomega.Expect(*u.ResetTokenHash).To(gomega.HaveLen(64))
			gomega.Expect(u.ResetTokenExpiresAt.After(time.Now())).To(gomega.BeTrue())
		})

		ginkgo.It("should return nil for unknown emails without storing anything", func() {
			err := service.RequestPasswordReset(context.Background(), ResetRequestDTO{Email: "nobody@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			for _, u := range mockRepo.users {
				gomega.Expect(u.ResetTokenHash).To(gomega.BeNil())
			}
		})

		ginkgo.It("should redeem a valid token exactly once", func() {
			raw, err := GenerateRandomToken()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			expires := time.Now().Add(time.Hour)
			gomega.Expect(mockRepo.SetResetToken(1, HashResetToken(raw), expires)).To(gomega.Succeed())

			// When
			err = service.RedeemPasswordReset(raw, "brand_new_password")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			u := mockRepo.users[1]
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("brand_new_password"))).To(gomega.Succeed())
			gomega.Expect(u.ResetTokenHash).To(gomega.BeNil())
			gomega.Expect(u.ResetTokenExpiresAt).To(gomega.BeNil())

			// second redeem with same token must fail
			err = service.RedeemPasswordReset(raw, "another_password")
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidResetToken))
		})

		ginkgo.It("should reject expired tokens", func() {
			raw, err := GenerateRandomToken()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			expires := time.Now().Add(-time.Minute)
			gomega.Expect(mockRepo.SetResetToken(1, HashResetToken(raw), expires)).To(gomega.Succeed())

			err = service.RedeemPasswordReset(raw, "brand_new_password")
			gomega.Expect(err).To(gomega.MatchError(ErrInvalidResetToken))
		})

		ginkgo.It("should reject unknown and empty tokens", func() {
			gomega.Expect(service.RedeemPasswordReset("deadbeef", "pw")).To(gomega.MatchError(ErrInvalidResetToken))
			gomega.Expect(service.RedeemPasswordReset("", "pw")).To(gomega.MatchError(ErrInvalidResetToken))
		})
	})

	ginkgo.Describe("repository failures", func() {
		ginkgo.It("should surface repository errors from Login", func() {
			mockRepo.setError(errors.New("connection refused"))
			_, err := service.Login(LoginDTO{Email: "reader@example.com", Password: "correct_password"})
			gomega.Expect(err).To(gomega.MatchError("connection refused"))
		})
	})
})

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hafiztri/comic-shelf/internal"
)

type mockAuthService struct {
	tokenGen *JWTTokenGenerator
	identity *internal.Identity
}

func (m *mockAuthService) Register(dto RegisterDTO) error { return nil }

func (m *mockAuthService) Login(dto LoginDTO) (string, error) { return "", nil }

func (m *mockAuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.tokenGen.ValidateToken(tokenString)
}

func (m *mockAuthService) GetIdentity(userID int64) (*internal.Identity, error) {
	if m.identity == nil {
		return nil, ErrUserNotFound
	}
	return m.identity, nil
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, dto ResetRequestDTO) error {
	return nil
}

func (m *mockAuthService) RedeemPasswordReset(rawToken, newPassword string) error { return nil }

var _ = ginkgo.Describe("Authentication middleware", func() {
	var (
		handler     *Handler
		tokenGen    *JWTTokenGenerator
		svc         *mockAuthService
		next        http.Handler
		sawIdentity *internal.Identity
	)

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator("test-secret", 30*time.Minute)
		svc = &mockAuthService{
			tokenGen: tokenGen,
			identity: &internal.Identity{UserID: 7, Email: "reader@example.com", RoleIDs: []int64{1}},
		}
		handler = NewHandler(svc, false, 30*time.Minute)

		sawIdentity = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawIdentity, _ = internal.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		ginkgo.It("should reject requests without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/collection", nil)
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("No token provided"))
		})

		ginkgo.It("should reject invalid tokens", func() {
			req := httptest.NewRequest(http.MethodGet, "/collection", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("Invalid or expired token"))
		})

		ginkgo.It("should attach the identity for header tokens", func() {
			token, err := tokenGen.GenerateAccessToken(7, "reader@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/collection", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(sawIdentity).ToNot(gomega.BeNil())
			gomega.Expect(sawIdentity.UserID).To(gomega.Equal(int64(7)))
		})

		ginkgo.It("should fall back to the access_token cookie", func() {
			token, err := tokenGen.GenerateAccessToken(7, "reader@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/collection", nil)
			req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
			rec := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(sawIdentity).ToNot(gomega.BeNil())
		})
	})

	ginkgo.Describe("OptionalAuthMiddleware", func() {
		ginkgo.It("should serve anonymously without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/comics", nil)
			rec := httptest.NewRecorder()

			handler.OptionalAuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(sawIdentity).To(gomega.BeNil())
		})

		ginkgo.It("should serve anonymously on a bad token instead of failing", func() {
			req := httptest.NewRequest(http.MethodGet, "/comics", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			rec := httptest.NewRecorder()

			handler.OptionalAuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(sawIdentity).To(gomega.BeNil())
		})

		ginkgo.It("should attach the identity when the token is valid", func() {
			token, err := tokenGen.GenerateAccessToken(7, "reader@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/comics", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler.OptionalAuthMiddleware(next).ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(sawIdentity).ToNot(gomega.BeNil())
		})
	})
})

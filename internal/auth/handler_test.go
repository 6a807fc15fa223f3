package auth_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hafiztri/comic-shelf/internal/auth"
	authPostgres "github.com/hafiztri/comic-shelf/internal/auth/postgres"
	"github.com/hafiztri/comic-shelf/internal/core/events"

	userDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/user"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		bus     *events.EventBus
		tokenCh chan string
		handler *auth.Handler
		router  *chi.Mux
	)

	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	do := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		Expect(json.NewDecoder(rec.Body).Decode(&body)).To(Succeed())
		return body
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		bus = events.NewEventBus(slogger)
		tokenCh = make(chan string, 1)
		bus.Subscribe(events.EventTypePasswordResetRequested, func(ctx context.Context, e events.Event) error {
			if resetEvent, ok := e.(*events.PasswordResetRequestedEvent); ok {
				tokenCh <- resetEvent.RawToken
			}
			return nil
		})

		repo := authPostgres.NewRepository(db)
		tokenGen := auth.NewJWTTokenGenerator("integration-test-secret", time.Hour)
		service := auth.NewService(repo, tokenGen, bus, bcrypt.MinCost, time.Hour, slogger)
		handler = auth.NewHandler(service, false, time.Hour)

		router = chi.NewRouter()
		router.Post("/auth/register", handler.Register)
		router.Post("/auth/login", handler.Login)
		router.Post("/auth/reset-password", handler.RequestPasswordReset)
		router.Post("/auth/reset-password/{token}", handler.RedeemPasswordReset)
	})

	register := func() {
		rec := do("/auth/register", `{"username":"reader","email":"reader@example.com","password":"opening-hook"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))
	}

	Describe("registration", func() {
		It("creates an account and rejects the email a second time", func() {
			register()

			rec := do("/auth/register", `{"username":"other","email":"reader@example.com","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
			Expect(decode(rec)["message"]).To(Equal("email is already registered"))
		})

		It("rejects a taken username", func() {
			register()

			rec := do("/auth/register", `{"username":"reader","email":"other@example.com","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusConflict))
			Expect(decode(rec)["message"]).To(Equal("username is already taken"))
		})

		It("rejects a missing field with 400", func() {
			rec := do("/auth/register", `{"username":"reader","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("login", func() {
		BeforeEach(register)

		It("returns a signed token and sets the access cookie", func() {
			rec := do("/auth/login", `{"email":"reader@example.com","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decode(rec)
			Expect(body["message"]).To(Equal("login successful"))
			token, _ := body["token"].(string)
			Expect(strings.Count(token, ".")).To(Equal(2))

			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			cookie := cookies[0]
			Expect(cookie.Name).To(Equal(auth.AccessTokenCookie))
			Expect(cookie.Value).To(Equal(token))
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.SameSite).To(Equal(http.SameSiteStrictMode))
			Expect(cookie.Path).To(Equal("/"))
		})

		It("distinguishes unknown users from wrong passwords", func() {
			rec := do("/auth/login", `{"email":"nobody@example.com","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(rec)["message"]).To(Equal("user does not exist"))

			rec = do("/auth/login", `{"email":"reader@example.com","password":"wrong"}`)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(rec)["message"]).To(Equal("incorrect password"))
		})
	})

	Describe("password reset", func() {
		BeforeEach(register)

		It("answers identically for known and unknown emails", func() {
			known := do("/auth/reset-password", `{"email":"reader@example.com"}`)
			unknown := do("/auth/reset-password", `{"email":"nobody@example.com"}`)

			Expect(known.Code).To(Equal(http.StatusOK))
			Expect(unknown.Code).To(Equal(http.StatusOK))
			Expect(decode(known)["message"]).To(Equal(decode(unknown)["message"]))
		})

		It("rejects an unknown redeem token with the generic message", func() {
			rec := do("/auth/reset-password/deadbeef", `{"password":"next-volume"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(rec)["message"]).To(Equal("Invalid or expired password reset token."))
		})

		It("rejects a redeem without a new password", func() {
			rec := do("/auth/reset-password/deadbeef", `{}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("redeems a requested token exactly once", func() {
			rec := do("/auth/reset-password", `{"email":"reader@example.com"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var rawToken string
			Eventually(tokenCh).Should(Receive(&rawToken))

			rec = do("/auth/reset-password/"+rawToken, `{"password":"next-volume"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do("/auth/login", `{"email":"reader@example.com","password":"opening-hook"}`)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			rec = do("/auth/login", `{"email":"reader@example.com","password":"next-volume"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = do("/auth/reset-password/"+rawToken, `{"password":"third-printing"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})

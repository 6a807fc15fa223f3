package collection_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hafiztri/comic-shelf/internal"
	"github.com/hafiztri/comic-shelf/internal/collection"
	collectionPostgres "github.com/hafiztri/comic-shelf/internal/collection/postgres"
	"github.com/hafiztri/comic-shelf/internal/transport"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
	collectionDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/collection"
)

func TestCollection(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Collection Suite")
}

var _ = Describe("Collection Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    collection.RepositoryAPI
		service *collection.Service
		handler *collection.Handler
		router  *chi.Mux
	)

	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	// routes that carry the given user's identity, the way the
	// authentication middleware would
	buildRouter := func(userID int64) *chi.Mux {
		r := chi.NewRouter()
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				identity := &internal.Identity{UserID: userID, Email: "user@example.com", RoleIDs: []int64{1}}
				next.ServeHTTP(w, req.WithContext(internal.ContextWithIdentity(req.Context(), identity)))
			})
		})
		r.Get("/collection", handler.GetCollection)
		r.Post("/collection", handler.AddToCollection)
		r.Patch("/collection/{id}", handler.UpdateCollectionEntry)
		r.Delete("/collection/{id}", handler.RemoveFromCollection)
		return r
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&catalogDatamodel.Comic{}, &collectionDatamodel.Entry{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&catalogDatamodel.Comic{ID: 1, Title: "Saga #1", IssueNumber: 1}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&catalogDatamodel.Comic{ID: 2, Title: "Saga #2", IssueNumber: 2}).Error).NotTo(HaveOccurred())

		repo = collectionPostgres.NewCollectionRepository(db)
		service = collection.NewService(repo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = collection.NewHandler(baseHandler, service)
		router = buildRouter(10)
	})

	Describe("adding comics", func() {
		It("should create an unread entry", func() {
			req := httptest.NewRequest(http.MethodPost, "/collection", strings.NewReader(`{"comic_id":1}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var entry collection.Entry
			Expect(json.Unmarshal(rec.Body.Bytes(), &entry)).To(Succeed())
			Expect(entry.ComicID).To(Equal(int64(1)))
			Expect(entry.Status).To(Equal(collectionDatamodel.StatusUnread))
		})

		It("should answer 409 for a comic already on the shelf", func() {
			_, err := service.Add(10, collection.AddDTO{ComicID: 1})
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/collection", strings.NewReader(`{"comic_id":1}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("should answer 404 for a comic that does not exist", func() {
			req := httptest.NewRequest(http.MethodPost, "/collection", strings.NewReader(`{"comic_id":999}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should answer 400 when comic_id is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/collection", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("updating entries", func() {
		var entry *collection.Entry

		BeforeEach(func() {
			var err error
			entry, err = service.Add(10, collection.AddDTO{ComicID: 1})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should apply partial updates", func() {
			req := httptest.NewRequest(http.MethodPatch, "/collection/1", strings.NewReader(`{"status":"read","rating":5}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var updated collection.Entry
			Expect(json.Unmarshal(rec.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Status).To(Equal(collectionDatamodel.StatusRead))
			Expect(*updated.Rating).To(Equal(5))
		})

		It("should reject an unknown status", func() {
			req := httptest.NewRequest(http.MethodPatch, "/collection/1", strings.NewReader(`{"status":"devoured"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject a rating outside 1-5", func() {
			req := httptest.NewRequest(http.MethodPatch, "/collection/1", strings.NewReader(`{"rating":6}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should 404 when another user owns the entry", func() {
			otherRouter := buildRouter(99)

			req := httptest.NewRequest(http.MethodPatch, "/collection/1", strings.NewReader(`{"status":"read"}`))
			rec := httptest.NewRecorder()
			otherRouter.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))

			// the entry is untouched
			current, err := repo.GetForUser(10, entry.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Status).To(Equal(collectionDatamodel.StatusUnread))
		})
	})

	Describe("listing and removing", func() {
		BeforeEach(func() {
			_, err := service.Add(10, collection.AddDTO{ComicID: 1})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Add(99, collection.AddDTO{ComicID: 2})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should only list the caller's own entries", func() {
			req := httptest.NewRequest(http.MethodGet, "/collection", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body struct {
				Collection []*collection.Entry `json:"collection"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Collection).To(HaveLen(1))
			Expect(body.Collection[0].ComicID).To(Equal(int64(1)))
		})

		It("should remove an owned entry", func() {
			req := httptest.NewRequest(http.MethodDelete, "/collection/1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))

			entries, err := service.List(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("should 404 when removing another user's entry", func() {
			otherRouter := buildRouter(99)

			req := httptest.NewRequest(http.MethodDelete, "/collection/1", nil)
			rec := httptest.NewRecorder()
			otherRouter.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})

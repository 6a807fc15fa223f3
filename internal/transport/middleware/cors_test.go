package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hafiztri/comic-shelf/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transport Middleware Suite")
}

var _ = Describe("CORS", func() {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(allowedOrigins, origin, method string) *httptest.ResponseRecorder {
		handler := middleware.CORS(allowedOrigins)(okHandler)
		req := httptest.NewRequest(method, "/api/v1/comics", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	It("echoes the request origin instead of the wildcard when allowing all", func() {
		rec := serve("*", "https://shelf.example.com", http.MethodGet)

		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://shelf.example.com"))
		Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
		Expect(rec.Header().Get("Vary")).To(Equal("Origin"))
	})

	It("echoes a configured origin", func() {
		rec := serve("https://shelf.example.com", "https://shelf.example.com", http.MethodGet)

		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://shelf.example.com"))
		Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
	})

	It("sets no allow headers for an unlisted origin", func() {
		rec := serve("https://shelf.example.com", "https://evil.example.com", http.MethodGet)

		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		Expect(rec.Header().Get("Access-Control-Allow-Credentials")).To(BeEmpty())
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("short-circuits preflight requests", func() {
		rec := serve("*", "https://shelf.example.com", http.MethodOptions)

		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("PATCH"))
	})
})

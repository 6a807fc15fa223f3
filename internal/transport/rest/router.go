package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"

	"github.com/hafiztri/comic-shelf/internal/auth"
	"github.com/hafiztri/comic-shelf/internal/collection"
	"github.com/hafiztri/comic-shelf/internal/comic"
	"github.com/hafiztri/comic-shelf/internal/creator"
	"github.com/hafiztri/comic-shelf/internal/edition"
	"github.com/hafiztri/comic-shelf/internal/publisher"
	"github.com/hafiztri/comic-shelf/internal/rbac"
	"github.com/hafiztri/comic-shelf/internal/series"
	"github.com/hafiztri/comic-shelf/internal/transport/middleware"
	"github.com/hafiztri/comic-shelf/internal/universe"
	"github.com/hafiztri/comic-shelf/internal/user"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	RBAC       *rbac.Handler
	User       *user.Handler
	Publisher  *publisher.Handler
	Universe   *universe.Handler
	Creator    *creator.Handler
	Series     *series.Handler
	Comic      *comic.Handler
	Edition    *edition.Handler
	Collection *collection.Handler
}

// RegisterAllRoutes mounts the full API under /api/v1. Catalog reads are
// public (identity attached when a valid token is present); mutations
// require authentication plus the named permission.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, authz *rbac.Authorization, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/reset-password", h.Auth.RequestPasswordReset)
			sr.Post("/reset-password/{token}", h.Auth.RedeemPasswordReset)
		})

		// Public catalog reads
		r.Group(func(pub chi.Router) {
			pub.Use(h.Auth.OptionalAuthMiddleware)

			pub.Get("/publishers", h.Publisher.GetPublishers)
			pub.Get("/publishers/{id}", h.Publisher.GetPublisher)
			pub.Get("/universes", h.Universe.GetUniverses)
			pub.Get("/universes/{id}", h.Universe.GetUniverse)
			pub.Get("/creators", h.Creator.GetCreators)
			pub.Get("/creators/{id}", h.Creator.GetCreator)
			pub.Get("/series", h.Series.GetAllSeries)
			pub.Get("/series/{id}", h.Series.GetSeries)
			pub.Get("/comics", h.Comic.GetComics)
			pub.Get("/comics/{id}", h.Comic.GetComic)
			pub.Get("/editions", h.Edition.GetEditions)
			pub.Get("/editions/{id}", h.Edition.GetEdition)
			pub.Get("/omnibuses", h.Edition.GetOmnibuses)
			pub.Get("/trade-paperbacks", h.Edition.GetTradePaperbacks)
		})

		// Everything below requires a verified caller
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Route("/collection", func(cr chi.Router) {
				cr.Get("/", h.Collection.GetCollection)
				cr.Post("/", h.Collection.AddToCollection)
				cr.Patch("/{id}", h.Collection.UpdateCollectionEntry)
				cr.Delete("/{id}", h.Collection.RemoveFromCollection)
			})

			registerCatalogMutations(pr, h, authz)

			// Admin: user management
			pr.Group(func(ar chi.Router) {
				ar.With(authz.Require("users:read")).Get("/users", h.User.GetUsers)
				ar.With(authz.Require("users:read")).Get("/users/{id}", h.User.GetUser)
				ar.With(authz.Require("users:delete")).Delete("/users/{id}", h.User.DeleteUser)
				ar.With(authz.Require("users:update")).Post("/users/{id}/roles/{roleID}", h.RBAC.AssignRole)
				ar.With(authz.Require("users:update")).Delete("/users/{id}/roles/{roleID}", h.RBAC.RemoveRole)
			})

			// Admin: roles and permissions
			pr.Route("/roles", func(rr chi.Router) {
				rr.With(authz.Require("roles:read")).Get("/", h.RBAC.GetRoles)
				rr.With(authz.Require("roles:read")).Get("/{id}", h.RBAC.GetRole)
				rr.With(authz.Require("roles:create")).Post("/", h.RBAC.CreateRole)
				rr.With(authz.Require("roles:update")).Put("/{id}", h.RBAC.UpdateRole)
				rr.With(authz.Require("roles:delete")).Delete("/{id}", h.RBAC.DeleteRole)
				rr.With(authz.Require("roles:update")).Post("/{id}/permissions/{permID}", h.RBAC.GrantPermission)
				rr.With(authz.Require("roles:update")).Delete("/{id}/permissions/{permID}", h.RBAC.RevokePermission)
			})

			pr.Route("/permissions", func(pmr chi.Router) {
				pmr.With(authz.Require("permissions:read")).Get("/", h.RBAC.GetPermissions)
				pmr.With(authz.Require("permissions:create")).Post("/", h.RBAC.CreatePermission)
				pmr.With(authz.Require("permissions:delete")).Delete("/{id}", h.RBAC.DeletePermission)
			})
		})
	})
}

func registerCatalogMutations(r chi.Router, h Handlers, authz *rbac.Authorization) {
	r.With(authz.Require("publishers:create")).Post("/publishers", h.Publisher.CreatePublisher)
	r.With(authz.Require("publishers:update")).Put("/publishers/{id}", h.Publisher.UpdatePublisher)
	r.With(authz.Require("publishers:delete")).Delete("/publishers/{id}", h.Publisher.DeletePublisher)

	r.With(authz.Require("universes:create")).Post("/universes", h.Universe.CreateUniverse)
	r.With(authz.Require("universes:update")).Put("/universes/{id}", h.Universe.UpdateUniverse)
	r.With(authz.Require("universes:delete")).Delete("/universes/{id}", h.Universe.DeleteUniverse)

	r.With(authz.Require("creators:create")).Post("/creators", h.Creator.CreateCreator)
	r.With(authz.Require("creators:update")).Put("/creators/{id}", h.Creator.UpdateCreator)
	r.With(authz.Require("creators:delete")).Delete("/creators/{id}", h.Creator.DeleteCreator)

	r.With(authz.Require("series:create")).Post("/series", h.Series.CreateSeries)
	r.With(authz.Require("series:update")).Put("/series/{id}", h.Series.UpdateSeries)
	r.With(authz.Require("series:delete")).Delete("/series/{id}", h.Series.DeleteSeries)

	r.With(authz.Require("comics:create")).Post("/comics", h.Comic.CreateComic)
	r.With(authz.Require("comics:update")).Put("/comics/{id}", h.Comic.UpdateComic)
	r.With(authz.Require("comics:delete")).Delete("/comics/{id}", h.Comic.DeleteComic)

	r.With(authz.Require("editions:create")).Post("/editions", h.Edition.CreateEdition)
	r.With(authz.Require("editions:update")).Put("/editions/{id}", h.Edition.UpdateEdition)
	r.With(authz.Require("editions:delete")).Delete("/editions/{id}", h.Edition.DeleteEdition)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hafiztri/comic-shelf/internal"
	"github.com/hafiztri/comic-shelf/internal/auth"
	authPostgres "github.com/hafiztri/comic-shelf/internal/auth/postgres"
	"github.com/hafiztri/comic-shelf/internal/collection"
	collectionPostgres "github.com/hafiztri/comic-shelf/internal/collection/postgres"
	"github.com/hafiztri/comic-shelf/internal/comic"
	comicPostgres "github.com/hafiztri/comic-shelf/internal/comic/postgres"
	"github.com/hafiztri/comic-shelf/internal/core/events"
	"github.com/hafiztri/comic-shelf/internal/creator"
	creatorPostgres "github.com/hafiztri/comic-shelf/internal/creator/postgres"
	"github.com/hafiztri/comic-shelf/internal/edition"
	editionPostgres "github.com/hafiztri/comic-shelf/internal/edition/postgres"
	"github.com/hafiztri/comic-shelf/internal/mailer"
	"github.com/hafiztri/comic-shelf/internal/publisher"
	publisherPostgres "github.com/hafiztri/comic-shelf/internal/publisher/postgres"
	"github.com/hafiztri/comic-shelf/internal/rbac"
	rbacPostgres "github.com/hafiztri/comic-shelf/internal/rbac/postgres"
	"github.com/hafiztri/comic-shelf/internal/series"
	seriesPostgres "github.com/hafiztri/comic-shelf/internal/series/postgres"
	"github.com/hafiztri/comic-shelf/internal/transport"
	"github.com/hafiztri/comic-shelf/internal/transport/rest"
	"github.com/hafiztri/comic-shelf/internal/universe"
	universePostgres "github.com/hafiztri/comic-shelf/internal/universe/postgres"
	"github.com/hafiztri/comic-shelf/internal/user"
	userPostgres "github.com/hafiztri/comic-shelf/internal/user/postgres"
	"github.com/hafiztri/comic-shelf/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Authz    *rbac.Authorization
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Authz, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Env)
	lg := logger.Default()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(lg)

	mail := mailer.New(config.Mail, lg)
	mail.Register(bus)

	baseHandler := transport.NewBaseHandler(lg)

	// auth + rbac
	userRepo := authPostgres.NewRepository(gormDB)
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenTTL)
	authService := auth.NewService(userRepo, tokenGen, bus, config.Security.BCryptCost, config.Security.ResetTokenTTL, lg)
	authHandler := auth.NewHandler(authService, config.Env != "development", config.Security.TokenTTL)

	rbacRepo := rbacPostgres.NewRepository(gormDB)
	rbacService := rbac.NewService(rbacRepo, lg)
	authz := rbac.NewAuthorization(rbacService, lg)
	rbacHandler := rbac.NewHandler(baseHandler, rbacService)

	userService := user.NewService(userPostgres.NewRepository(gormDB))
	userHandler := user.NewHandler(userService)

	// catalog
	publisherHandler := publisher.NewHandler(baseHandler, publisher.NewService(publisherPostgres.NewPublisherRepository(gormDB), lg))
	universeHandler := universe.NewHandler(baseHandler, universe.NewService(universePostgres.NewUniverseRepository(gormDB), lg))
	creatorHandler := creator.NewHandler(baseHandler, creator.NewService(creatorPostgres.NewCreatorRepository(gormDB), lg))
	seriesHandler := series.NewHandler(baseHandler, series.NewService(seriesPostgres.NewSeriesRepository(gormDB), lg))
	comicHandler := comic.NewHandler(baseHandler, comic.NewService(comicPostgres.NewComicRepository(gormDB), lg))
	editionHandler := edition.NewHandler(baseHandler, edition.NewService(editionPostgres.NewEditionRepository(gormDB), lg))
	collectionHandler := collection.NewHandler(baseHandler, collection.NewService(collectionPostgres.NewCollectionRepository(gormDB), lg))

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Handlers: rest.Handlers{
			Auth:       authHandler,
			RBAC:       rbacHandler,
			User:       userHandler,
			Publisher:  publisherHandler,
			Universe:   universeHandler,
			Creator:    creatorHandler,
			Series:     seriesHandler,
			Comic:      comicHandler,
			Edition:    editionHandler,
			Collection: collectionHandler,
		},
		Authz:  authz,
		Logger: lg,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm binds GORM to the pool sqlx already opened, so the whole process
// shares one connection pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}

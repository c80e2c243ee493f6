package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/kunsthaus/canvas-bids/internal/handlers"
	appjwt "github.com/kunsthaus/canvas-bids/internal/jwt"
	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/middlewares"
	"github.com/kunsthaus/canvas-bids/internal/repositories"
	"github.com/kunsthaus/canvas-bids/internal/services"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "1.0.0" // Version of the service
	buildDate    = "N/A"   // Build date
	buildCommit  = "N/A"   // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	migrationsPath string

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	statsCacheSecond  int

	kafkaHost  string
	kafkaPort  int
	kafkaTopic string

	jwtSecretKey string
	jwtExpSecond int
}

// @title kunsthaus canvas-bids API
// @version 1.0.0
// @description Backend for the kunsthaus art-auction marketplace
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration with defaults applied.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		raw := getEnv(key, strconv.Itoa(defaultValue))
		return strconv.Atoi(raw)
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "kunsthaus")
	cfg.migrationsPath = getEnv("MIGRATIONS_PATH", "migrations")
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.statsCacheSecond, err = getEnvInt("STATS_CACHE_SECOND", 30); err != nil {
		return nil, err
	}

	// Kafka config; an empty host disables event publishing
	cfg.kafkaHost = getEnv("KAFKA_HOST", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "kunsthaus-events")
	if cfg.kafkaPort, err = getEnvInt("KAFKA_PORT", 9092); err != nil {
		return nil, err
	}

	// JWT config, 24h token lifetime by default
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 86400); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runMigrations applies all pending schema migrations.
func runMigrations(dsn, migrationsPath string) error {
	// golang-migrate's pgx/v5 driver expects the pgx5:// scheme.
	databaseURL := strings.Replace(dsn, "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations failed: %w", err)
	}

	return nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := runMigrations(dsn, cfg.migrationsPath); err != nil {
		log.Fatal("migration error:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events, optional
	var eventWriter services.EventWriter
	if cfg.kafkaHost != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(fmt.Sprintf("%s:%d", cfg.kafkaHost, cfg.kafkaPort)),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
		log.Infof("Kafka event publishing enabled on topic %s", cfg.kafkaTopic)
	} else {
		log.Info("Kafka host not set, event publishing disabled")
	}

	// Initialize JWT service
	jwt := appjwt.New(
		appjwt.WithSecretKey(cfg.jwtSecretKey),
		appjwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	artistReadRepo := repositories.NewArtistReadRepository(db)
	artistWriteRepo := repositories.NewArtistWriteRepository(db)
	artworkReadRepo := repositories.NewArtworkReadRepository(db)
	artworkWriteRepo := repositories.NewArtworkWriteRepository(db)
	statsRepo := repositories.NewStatsReadRepository(db)
	statsCache := repositories.NewStatsCacheRepository(rdb, time.Duration(cfg.statsCacheSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, artistWriteRepo, jwt, eventWriter)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, artistReadRepo, artistWriteRepo, artworkReadRepo)
	galleryService := services.NewGalleryService(userReadRepo, artistReadRepo, artistWriteRepo, artworkReadRepo, artworkWriteRepo, eventWriter)
	artistService := services.NewArtistService(artistReadRepo)
	searchService := services.NewSearchService(artworkReadRepo, artistReadRepo)
	auctionService := services.NewAuctionService(artworkReadRepo)
	statsService := services.NewStatsService(statsRepo, statsCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(jwt)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/artworks", handlers.NewListArtworksHandler(galleryService))
		r.Get("/artists", handlers.NewListArtistsHandler(artistService))
		r.Get("/auctions", handlers.NewListAuctionsHandler(auctionService))
		r.Get("/search", handlers.NewSearchHandler(searchService))
		r.Get("/stats", handlers.NewStatsHandler(statsService))
		r.Get("/health", handlers.NewHealthHandler(buildVersion))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/user/profile", handlers.NewGetProfileHandler(profileService, jwt))
			r.With(txMiddleware).Put("/user/profile", handlers.NewUpdateProfileHandler(profileService, jwt))
			r.Get("/user/artworks", handlers.NewUserArtworksHandler(profileService, jwt))
			r.With(txMiddleware).Post("/user/change-password", handlers.NewChangePasswordHandler(profileService, jwt))
			r.With(txMiddleware).Post("/artworks", handlers.NewCreateArtworkHandler(galleryService, jwt))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

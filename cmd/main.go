package main

import (
	"context"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mkobayashi-dev/freshtrack/internal/handlers"
	"github.com/mkobayashi-dev/freshtrack/internal/jwt"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/middlewares"
	"github.com/mkobayashi-dev/freshtrack/internal/migrate"
	"github.com/mkobayashi-dev/freshtrack/internal/repositories"
	"github.com/mkobayashi-dev/freshtrack/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all runtime configuration, parsed once at process start
// and injected into constructors. Nothing reads the environment after
// parseConfig returns.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisAddr      string // empty disables the category cache
	RedisPassword  string
	RedisDB        int
	CacheTTLSecond int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	CORSAllowedOrigins []string
}

// @title freshtrack API
// @version 1.0.0
// @description Household food-expiration tracker: categories, items, purchase lists and expiry notifications
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, seed := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, seed); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether to seed sample categories.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	seed := flag.Bool("seed", false, "Insert sample categories when the table is empty")
	flag.Parse()
	return *c, *seed
}

// parseConfig loads environment variables from a file and builds the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getEnvInt := func(key string, defaultValue int) (int, error) {
		val, ok := os.LookupEnv(key)
		if !ok || val == "" {
			return defaultValue, nil
		}
		return strconv.Atoi(val)
	}

	splitList := func(s string) []string {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	cfg := &config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PgHost:     getEnv("POSTGRES_HOST", "localhost"),
		PgUser:     getEnv("POSTGRES_USER", "user"),
		PgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PgDB:       getEnv("POSTGRES_DB", "freshtrack"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "freshtrack.notifications"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CacheTTLSecond, err = getEnvInt("CACHE_TTL_SECOND", 300); err != nil {
		return nil, err
	}
	// Tokens live 30 minutes unless overridden.
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", 1800); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, optional Redis and Kafka
// clients, and the HTTP server. It sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context, cfg *config, seed bool) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)

	if err := migrate.Up(ctx, db.DB); err != nil {
		logger.Log.Errorw("migration failed", "error", err)
		return err
	}

	if seed {
		if err := seedCategories(ctx, db); err != nil {
			logger.Log.Errorw("category seeding failed", "error", err)
			return err
		}
	}

	// Connect to Redis when configured
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
	}

	// Kafka writer when configured
	var kafkaWriter *kafka.Writer
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}

	// Initialize JWT service
	tokenService := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db, txGetter)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db, txGetter)
	purchaseReadRepo := repositories.NewPurchaseListReadRepository(db)
	purchaseWriteRepo := repositories.NewPurchaseListWriteRepository(db, txGetter)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, txGetter)

	var categoryCache services.CategoryCache
	if rdb != nil {
		categoryCache = repositories.NewCategoryCacheRepository(rdb, time.Duration(cfg.CacheTTLSecond)*time.Second)
	}

	var eventWriter services.KafkaWriter
	if kafkaWriter != nil {
		eventWriter = kafkaWriter
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService)
	categoryService := services.NewCategoryService(categoryReadRepo, categoryWriteRepo, categoryCache)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, notificationWriteRepo, eventWriter)
	purchaseService := services.NewPurchaseListService(purchaseReadRepo, purchaseWriteRepo)
	notificationService := services.NewNotificationService(notificationReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/auth/signup", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))

		r.Get("/categories", handlers.NewGetCategoriesHandler(categoryService))
		r.Post("/categories", handlers.NewCreateCategoryHandler(categoryService))

		r.Get("/items", handlers.NewGetItemsHandler(itemService))
		r.Post("/items", handlers.NewCreateItemHandler(itemService))
		// Item update can write a notification row alongside the patch,
		// so it runs inside a per-request transaction.
		r.With(middlewares.TxMiddleware(db)).Put("/items/{itemID}", handlers.NewUpdateItemHandler(itemService))
		r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(itemService))

		r.Get("/purchase-lists", handlers.NewGetPurchaseListsHandler(purchaseService))
		r.Post("/purchase-lists", handlers.NewCreatePurchaseListHandler(purchaseService))
		r.Put("/purchase-lists/{purchaseID}", handlers.NewCompletePurchaseHandler(purchaseService))

		r.Get("/notifications", handlers.NewGetNotificationsHandler(notificationService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// seedCategories inserts the sample category set when the table is empty.
func seedCategories(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Info("categories already present, skipping seed")
		return nil
	}

	samples := []struct {
		name        string
		description string
	}{
		{"Vegetables", "Fresh vegetables"},
		{"Meat", "Beef, pork, chicken"},
		{"Seafood", "Fish and shellfish"},
		{"Dairy", "Milk, cheese, yogurt"},
		{"Condiments", "Soy sauce, miso, salt"},
		{"Frozen Foods", "Frozen storage items"},
		{"Bread & Rice", "Staple foods"},
		{"Snacks", "Snacks and desserts"},
	}

	for _, s := range samples {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO categories (category_name, description) VALUES ($1, $2)`,
			s.name, s.description); err != nil {
			return err
		}
	}

	logger.Log.Infof("seeded %d sample categories", len(samples))
	return nil
}

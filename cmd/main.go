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
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/yaredtsegaye/blog-platform/internal/handlers"
	"github.com/yaredtsegaye/blog-platform/internal/jwt"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
	"github.com/yaredtsegaye/blog-platform/internal/middlewares"
	"github.com/yaredtsegaye/blog-platform/internal/migrations"
	"github.com/yaredtsegaye/blog-platform/internal/repositories"
	"github.com/yaredtsegaye/blog-platform/internal/services"
	"github.com/yaredtsegaye/blog-platform/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/yaredtsegaye/blog-platform/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// defaultRevocationTTL bounds the revocation marks for deleted accounts when
// tokens are issued without an expiry.
const defaultRevocationTTL = 30 * 24 * time.Hour

// @title Simple Blog Platform API
// @version 1.0.0
// @description Backend for a minimal blog platform: user registration, authentication, and blog post CRUD
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		s3Region, s3Endpoint, s3Bucket, s3AccessKey, s3SecretKey,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		s3Region, s3Endpoint, s3Bucket, s3AccessKey, s3SecretKey,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	s3Region, s3Endpoint, s3Bucket, s3AccessKey, s3SecretKey string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "blog")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "blog-events")

	// S3 config; empty bucket disables avatar storage
	s3Region = getEnv("S3_REGION", "us-east-1")
	s3Endpoint = getEnv("S3_ENDPOINT", "")
	s3Bucket = getEnv("S3_BUCKET", "")
	s3AccessKey = getEnv("S3_ACCESS_KEY", "")
	s3SecretKey = getEnv("S3_SECRET_KEY", "")

	// JWT config; zero expiration issues tokens that never expire
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "0")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, S3, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	s3Region, s3Endpoint, s3Bucket, s3AccessKey, s3SecretKey string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka event writer, disabled when no brokers are configured
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka event publishing enabled on topic %s", kafkaTopic)
	}

	// S3 avatar store, disabled when no bucket is configured
	var avatarStore services.AvatarStorer
	if s3Bucket != "" {
		store, err := storage.NewAvatarStore(ctx, s3Region, s3Endpoint, s3AccessKey, s3SecretKey, s3Bucket)
		if err != nil {
			log.Errorw("S3 client error", "error", err)
			return err
		}
		avatarStore = store
		log.Infof("Avatar storage enabled on bucket %s", s3Bucket)
	}

	// Initialize JWT service
	jwtExp := time.Duration(jwtExpSecond) * time.Second
	tokenSvc := jwt.New(jwt.WithSecretKey(jwtSecretKey), jwt.WithExpiration(jwtExp))

	revocationTTL := jwtExp
	if revocationTTL <= 0 {
		revocationTTL = defaultRevocationTTL
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	blogReadRepo := repositories.NewBlogReadRepository(db)
	blogWriteRepo := repositories.NewBlogWriteRepository(db)
	revocationRepo := repositories.NewRevocationRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, avatarStore, tokenSvc, kafkaWriter)
	userService := services.NewUserService(userReadRepo, userWriteRepo, avatarStore, revocationRepo, kafkaWriter, revocationTTL)
	blogService := services.NewBlogService(blogReadRepo, blogWriteRepo, userReadRepo, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	userListHandler := handlers.NewUserListHandler(userService)
	userGetHandler := handlers.NewUserGetHandler(userService)
	userUpdateHandler := handlers.NewUserUpdateHandler(userService)
	userDeleteHandler := handlers.NewUserDeleteHandler(userService)
	blogListHandler := handlers.NewBlogListHandler(blogService)
	blogGetHandler := handlers.NewBlogGetHandler(blogService)
	blogCreateHandler := handlers.NewBlogCreateHandler(blogService)
	blogUpdateHandler := handlers.NewBlogUpdateHandler(blogService)
	blogDeleteHandler := handlers.NewBlogDeleteHandler(blogService)

	// Setup router
	authMiddleware := middlewares.AuthMiddleware(tokenSvc, revocationRepo)
	adminOnly := middlewares.RequireRole("admin")
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Post("/login", loginHandler)

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", userListHandler)
		r.Get("/{id}", userGetHandler)
		r.With(txMiddleware).Post("/", registerHandler)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, txMiddleware)
			r.Put("/{id}", userUpdateHandler)
			r.Delete("/{id}", userDeleteHandler)
		})
	})

	r.Route("/api/v1/blogs", func(r chi.Router) {
		r.Get("/", blogListHandler)
		r.Get("/{id}", blogGetHandler)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, adminOnly, txMiddleware)
			r.Post("/", blogCreateHandler)
			r.Put("/{id}", blogUpdateHandler)
			r.Delete("/{id}", blogDeleteHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

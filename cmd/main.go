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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/storyhub/blog-api/internal/csrf"
	"github.com/storyhub/blog-api/internal/db"
	"github.com/storyhub/blog-api/internal/handlers"
	"github.com/storyhub/blog-api/internal/logger"
	"github.com/storyhub/blog-api/internal/middlewares"
	"github.com/storyhub/blog-api/internal/repositories"
	"github.com/storyhub/blog-api/internal/services"
	"github.com/storyhub/blog-api/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title blog-api
// @version 1.0.0
// @description Blogging service: users, session-cookie auth, posts, comments
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionTTLSecond, sessionSweepSecond,
		csrfSecretKey, csrfExpSecond,
		cloudinaryURL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionTTLSecond, sessionSweepSecond,
		csrfSecretKey, csrfExpSecond,
		cloudinaryURL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, session, and CSRF configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionTTLSecond, sessionSweepSecond int,
	csrfSecretKey string, csrfExpSecond int,
	cloudinaryURL string,
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

	// Session config
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "86400")); err != nil {
		return
	}
	if sessionSweepSecond, err = strconv.Atoi(getEnv("SESSION_SWEEP_SECOND", "600")); err != nil {
		return
	}

	// CSRF config
	csrfSecretKey = getEnv("CSRF_SECRET_KEY", "my_super_secret_key")
	if csrfExpSecond, err = strconv.Atoi(getEnv("CSRF_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Image uploads happen browser-to-Cloudinary; the credential is
	// only read here so misconfiguration shows up at startup.
	cloudinaryURL = getEnv("CLOUDINARY_URL", "")

	return
}

// run initializes the logger, database, Redis, and HTTP server. It
// sets up routes, starts the session sweeper, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionTTLSecond, sessionSweepSecond int,
	csrfSecretKey string, csrfExpSecond int,
	cloudinaryURL string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	if cloudinaryURL != "" {
		logger.Log.Info("Cloudinary credential present, image uploads delegated to the client")
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	pool, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer pool.Close()
	pool.SetMaxOpenConns(pgMaxOpenConns)
	pool.SetMaxIdleConns(pgMaxIdleConns)
	if err := pool.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Log.Fatal("schema migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	sessionTTL := time.Duration(sessionTTLSecond) * time.Second

	// Initialize token helpers
	sess := sessions.New(sessionTTL)
	csrfTokens := csrf.New(csrfSecretKey, time.Duration(csrfExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(pool, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(pool, middlewares.GetTxFromContext)
	sessionWriteRepo := repositories.NewSessionWriteRepository(pool, middlewares.GetTxFromContext, sessionTTL)
	postReadRepo := repositories.NewPostReadRepository(pool, middlewares.GetTxFromContext)
	postWriteRepo := repositories.NewPostWriteRepository(pool, middlewares.GetTxFromContext)
	commentReadRepo := repositories.NewCommentReadRepository(pool, middlewares.GetTxFromContext)
	commentWriteRepo := repositories.NewCommentWriteRepository(pool, middlewares.GetTxFromContext)
	postCacheRepo := repositories.NewPostListCacheRepository(rdb, time.Minute)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionWriteRepo, sess)
	postService := services.NewPostService(postReadRepo, postWriteRepo, postCacheRepo, commentReadRepo)
	commentService := services.NewCommentService(commentWriteRepo, postReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	txMiddleware := middlewares.TxMiddleware(pool)
	authMiddleware := middlewares.AuthMiddleware(sess, authService)

	// Public routes
	r.Get("/api/csrf", handlers.NewCSRFHandler(csrfTokens))
	r.With(txMiddleware).Post("/api/register", handlers.NewRegisterHandler(authService, csrfTokens, sess))
	r.With(txMiddleware).Post("/api/login", handlers.NewLoginHandler(authService, csrfTokens, sess))
	r.Post("/api/logout", handlers.NewLogoutHandler(authService, sess, sess))
	r.Get("/api/blogPosts", handlers.NewListPostsHandler(postService))
	r.Get("/api/blogPosts/{id}", handlers.NewGetPostHandler(postService))
	r.Get("/api/blogPosts/user/{userId}", handlers.NewListPostsByUserHandler(postService))
	r.Post("/api/comment", handlers.NewCreateCommentHandler(commentService))
	r.Delete("/api/comment", handlers.NewDeleteCommentHandler(commentService))

	// Protected routes with session middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/me", handlers.NewMeHandler())
		r.Post("/api/blogPosts", handlers.NewCreatePostHandler(postService))
		r.Put("/api/blogPosts/{id}", handlers.NewUpdatePostHandler(postService))
		r.Delete("/api/blogPosts/{id}", handlers.NewDeletePostHandler(postService))
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

	// Background session sweeper: expired rows are removed on a
	// schedule instead of as a side effect of session reads.
	go func() {
		ticker := time.NewTicker(time.Duration(sessionSweepSecond) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				deleted, err := sessionWriteRepo.DeleteExpired(ctxShutdown)
				if err != nil {
					logger.Log.Errorw("session sweep failed", "error", err)
					continue
				}
				if len(deleted) > 0 {
					logger.Log.Infow("session sweep", "deleted", len(deleted))
				}
			}
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

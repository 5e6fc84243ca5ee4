package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lessonbot/internal/common/codes"
	"lessonbot/internal/handlers/telegram"
	"lessonbot/internal/notifier"
	"lessonbot/internal/repositories/campus"
	verificationRepo "lessonbot/internal/repositories/verification"
	bookingService "lessonbot/internal/services/booking"
	"lessonbot/internal/services/conversation"
	verificationService "lessonbot/internal/services/verification"
	"lessonbot/internal/sessions"
)

func main() {
	// Local development reads settings from a .env file when present
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Open the database
	db, err := sql.Open("postgres", getEnv("DATABASE_URL", "postgres://localhost:5432/lessonbot?sslmode=disable"))
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if getEnv("RUN_MIGRATIONS", "false") == "true" {
		if err := runMigrations(db, getEnv("MIGRATIONS_PATH", "migrations")); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Initialize repositories
	campusRepo, err := campus.NewPostgres(&campus.Config{
		DB: db,
	})
	if err != nil {
		logger.Fatal("failed to create campus repository", zap.Error(err))
	}

	codeRepo, err := verificationRepo.NewRedis(&verificationRepo.Config{
		RedisClient: redisClient,
		CodeTTL:     getEnvDuration("VERIFICATION_CODE_TTL", 5*time.Minute),
	})
	if err != nil {
		logger.Fatal("failed to create verification repository", zap.Error(err))
	}

	// Initialize the email notifier
	emailNotifier, err := notifier.NewSMTP(&notifier.Config{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnv("SMTP_PORT", "465"),
		Sender:   mustGetEnv("SMTP_SENDER", logger),
		Password: mustGetEnv("SMTP_PASSWORD", logger),
	})
	if err != nil {
		logger.Fatal("failed to create notifier", zap.Error(err))
	}

	// Initialize the verification service. The delivery failure callback
	// is wired to the bot below, after both exist.
	verificationCfg := &verificationService.Config{
		Domain:   getEnv("INSTITUTIONAL_DOMAIN", "studenti.unipg.it"),
		CodeRepo: codeRepo,
		Notifier: emailNotifier,
		Codes:    codes.New(nil),
		Logger:   logger,
	}

	var bot *telegram.Bot
	verificationCfg.OnDeliveryFailure = func(chatID int64, email string, sendErr error) {
		if bot != nil {
			bot.NotifyDeliveryFailure(chatID, email, sendErr)
		}
	}

	verificationSvc, err := verificationService.New(verificationCfg)
	if err != nil {
		logger.Fatal("failed to create verification service", zap.Error(err))
	}

	// Initialize the booking service
	bookingSvc, err := bookingService.New(&bookingService.Config{
		Repository: campusRepo,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to create booking service", zap.Error(err))
	}

	// Initialize the session store and conversation engine
	sessionStore := sessions.New(&sessions.Config{
		TTL: getEnvDuration("SESSION_TTL", 0),
	})

	engine, err := conversation.New(&conversation.Config{
		Sessions:     sessionStore,
		Repository:   campusRepo,
		Verification: verificationSvc,
		Booking:      bookingSvc,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("failed to create conversation engine", zap.Error(err))
	}

	// Initialize the Telegram bot
	bot, err = telegram.New(&telegram.Config{
		Token:  mustGetEnv("TELEGRAM_TOKEN", logger),
		Engine: engine,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to create Telegram bot", zap.Error(err))
	}

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		logger.Fatal("bot stopped with error", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// runMigrations applies the SQL migrations from the given directory
func runMigrations(db *sql.DB, path string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// mustGetEnv gets a required environment variable or exits
func mustGetEnv(key string, logger *zap.Logger) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Fatal("required environment variable is not set", zap.String("key", key))
	}
	return value
}

// getEnvDuration parses a duration environment variable, e.g. "5m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

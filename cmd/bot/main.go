package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/columnamoda/store_bot/internal/app"
	"github.com/columnamoda/store_bot/internal/config"
	"github.com/columnamoda/store_bot/internal/controller"
	"github.com/columnamoda/store_bot/internal/repository"
	"github.com/columnamoda/store_bot/internal/service"
	"github.com/columnamoda/store_bot/internal/webapp"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting store bot",
		zap.String("environment", cfg.Environment),
		zap.String("base_url", cfg.BaseURL),
		zap.Int("admin_ids", len(cfg.AdminIDs)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе: ошибка на старте фатальна
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	// Применяем миграции
	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo, logger)
	accessService := service.NewAccessService(userRepo, cfg.AdminIDs, cfg.SuperAdminIDs, logger)

	urls := webapp.NewURLs(cfg.BaseURL)

	botInstance, err := bot.New(cfg.TelegramToken, controller.BotOptions()...)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		catalogService,
		appointmentService,
		accessService,
		userRepo,
		urls,
		cfg.AgendaFontPath,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}

package main

// Разовый инструмент: выдаёт пользователю права суперадминистратора.
// Запуск: go run ./cmd/promote_admin -telegram-id 123456789

import (
	"context"
	"flag"
	"log"

	"github.com/columnamoda/store_bot/internal/app"
	"github.com/columnamoda/store_bot/internal/config"
	"github.com/columnamoda/store_bot/internal/repository"
	"github.com/columnamoda/store_bot/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	telegramID := flag.Int64("telegram-id", 0, "Telegram ID пользователя")
	flag.Parse()

	if *telegramID == 0 {
		log.Fatal("❌ Укажите -telegram-id")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	accessService := service.NewAccessService(userRepo, cfg.AdminIDs, cfg.SuperAdminIDs, logger)

	if err := accessService.PromoteSuperAdmin(ctx, *telegramID); err != nil {
		log.Fatalf("❌ Error: %v", err)
	}

	log.Printf("✅ El usuario %d ahora es superadministrador", *telegramID)
}

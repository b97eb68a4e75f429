package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/columnamoda/store_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создаёт нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (telegram_id, name, phone, email, address, is_admin, is_super_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.TelegramID,
		user.Name,
		user.Phone,
		user.Email,
		user.Address,
		user.IsAdmin,
		user.IsSuperAdmin,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `
		SELECT id, telegram_id, name, phone, email, address, is_admin, is_super_admin, created_at
		FROM users
		WHERE telegram_id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&user.Phone,
		&user.Email,
		&user.Address,
		&user.IsAdmin,
		&user.IsSuperAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}

	return &user, nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, telegram_id, name, phone, email, address, is_admin, is_super_admin, created_at
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&user.Phone,
		&user.Email,
		&user.Address,
		&user.IsAdmin,
		&user.IsSuperAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

// Exists проверяет есть ли пользователь с таким Telegram ID
func (r *UserRepository) Exists(ctx context.Context, telegramID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE telegram_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, telegramID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

// Update обновляет контактные данные пользователя
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, email = $3, address = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(
		ctx, query,
		user.Name,
		user.Phone,
		user.Email,
		user.Address,
		user.ID,
	)

	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// SetAdminFlags обновляет флаги администратора пользователя
func (r *UserRepository) SetAdminFlags(ctx context.Context, telegramID int64, isAdmin, isSuperAdmin bool) error {
	query := `
		UPDATE users
		SET is_admin = $1, is_super_admin = $2
		WHERE telegram_id = $3
	`

	result, err := r.pool.Exec(ctx, query, isAdmin, isSuperAdmin, telegramID)
	if err != nil {
		return fmt.Errorf("set admin flags: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

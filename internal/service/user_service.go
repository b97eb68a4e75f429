package service

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/model"
	"github.com/columnamoda/store_bot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser сохраняет профиль, собранный диалогом регистрации
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, name, phone, email, address string) (*model.User, error) {
	// Профиль уникален по telegram_id — при повторной регистрации обновляем данные
	existingUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	if existingUser != nil {
		existingUser.Name = name
		existingUser.Phone = phone
		existingUser.Email = email
		existingUser.Address = address

		if err := s.userRepo.Update(ctx, existingUser); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}

		s.logger.Info("User profile updated",
			zap.Int64("telegram_id", telegramID),
			zap.String("name", name),
		)

		return existingUser, nil
	}

	user := &model.User{
		TelegramID: telegramID,
		Name:       name,
		Phone:      phone,
		Email:      email,
		Address:    address,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("name", name),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// Exists проверяет зарегистрирован ли пользователь
func (s *UserService) Exists(ctx context.Context, telegramID int64) (bool, error) {
	return s.userRepo.Exists(ctx, telegramID)
}

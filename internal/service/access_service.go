package service

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/model"
	"go.uber.org/zap"
)

// ProfileSource минимальный доступ к профилям для проверки ролей
type ProfileSource interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	SetAdminFlags(ctx context.Context, telegramID int64, isAdmin, isSuperAdmin bool) error
}

// AccessService отвечает на вопрос "админ ли пользователь".
// Источника доверия два: статические списки из конфига и флаги в профиле.
type AccessService struct {
	profiles    ProfileSource
	admins      map[int64]struct{}
	superAdmins map[int64]struct{}
	logger      *zap.Logger
}

func NewAccessService(profiles ProfileSource, adminIDs, superAdminIDs []int64, logger *zap.Logger) *AccessService {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	superAdmins := make(map[int64]struct{}, len(superAdminIDs))
	for _, id := range superAdminIDs {
		superAdmins[id] = struct{}{}
	}

	return &AccessService{
		profiles:    profiles,
		admins:      admins,
		superAdmins: superAdmins,
		logger:      logger,
	}
}

// IsAdmin проверяет является ли пользователь администратором.
// Отсутствие профиля или ошибка чтения трактуются как "не админ".
func (s *AccessService) IsAdmin(ctx context.Context, telegramID int64) bool {
	if _, ok := s.admins[telegramID]; ok {
		return true
	}
	if _, ok := s.superAdmins[telegramID]; ok {
		return true
	}

	user, err := s.profiles.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Warn("Admin check failed, treating as non-admin",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return false
	}

	return user != nil && (user.IsAdmin || user.IsSuperAdmin)
}

// IsSuperAdmin проверяет является ли пользователь суперадминистратором.
// В отличие от IsAdmin обычный флаг is_admin здесь не учитывается.
func (s *AccessService) IsSuperAdmin(ctx context.Context, telegramID int64) bool {
	if _, ok := s.superAdmins[telegramID]; ok {
		return true
	}

	user, err := s.profiles.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Warn("Super admin check failed, treating as non-admin",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return false
	}

	return user != nil && user.IsSuperAdmin
}

// PromoteSuperAdmin выставляет пользователю оба админских флага
func (s *AccessService) PromoteSuperAdmin(ctx context.Context, telegramID int64) error {
	user, err := s.profiles.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if user == nil {
		return fmt.Errorf("no user with telegram id %d", telegramID)
	}

	if err := s.profiles.SetAdminFlags(ctx, telegramID, true, true); err != nil {
		return fmt.Errorf("set admin flags: %w", err)
	}

	s.logger.Info("User promoted to super admin",
		zap.Int64("telegram_id", telegramID),
		zap.String("name", user.Name),
	)

	return nil
}

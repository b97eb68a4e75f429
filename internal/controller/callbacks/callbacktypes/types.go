package callbacktypes

import (
	"context"

	"github.com/columnamoda/store_bot/internal/model"
	"github.com/columnamoda/store_bot/internal/service"
	"github.com/columnamoda/store_bot/internal/webapp"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService        *service.UserService
	CatalogService     *service.CatalogService
	AppointmentService *service.AppointmentService
	AccessService      *service.AccessService
	StateManager       StateManager
	URLs               *webapp.URLs
	AgendaFontPath     string
	Logger             *zap.Logger

	// Прямой доступ к профилям (для подписей на повестке)
	UserRepo interface {
		GetByID(ctx context.Context, id int64) (*model.User, error)
	}
}

package handlers

import (
	"context"
	"time"

	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/columnamoda/store_bot/internal/model"
	"github.com/columnamoda/store_bot/internal/webapp"
	"go.uber.org/zap"
)

// Узкие интерфейсы сервисов: обработчикам нужно ровно это,
// а тесты подставляют фейки вместо сервисов с живой базой.

// UserProvider доступ к профилям клиентов
type UserProvider interface {
	RegisterUser(ctx context.Context, telegramID int64, name, phone, email, address string) (*model.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	Exists(ctx context.Context, telegramID int64) (bool, error)
}

// ProductCatalog операции с товарами из админских диалогов
type ProductCatalog interface {
	CreateProduct(ctx context.Context, name, description string, price float64, stock int) (*model.Product, error)
	UpdateStock(ctx context.Context, productID int64, stock int) (*model.Product, error)
}

// AppointmentBook операции с записями на примерку
type AppointmentBook interface {
	CreateAppointment(ctx context.Context, telegramID int64, date time.Time, notes *string) (*model.Appointment, error)
	ListUserAppointments(ctx context.Context, telegramID int64) ([]*model.Appointment, error)
}

// AccessChecker проверка роли администратора
type AccessChecker interface {
	IsAdmin(ctx context.Context, telegramID int64) bool
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService        UserProvider
	catalogService     ProductCatalog
	appointmentService AppointmentBook
	accessService      AccessChecker
	stateManager       *state.Manager
	urls               *webapp.URLs
	logger             *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService UserProvider,
	catalogService ProductCatalog,
	appointmentService AppointmentBook,
	accessService AccessChecker,
	stateManager *state.Manager,
	urls *webapp.URLs,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:        userService,
		catalogService:     catalogService,
		appointmentService: appointmentService,
		accessService:      accessService,
		stateManager:       stateManager,
		urls:               urls,
		logger:             logger,
	}
}

package callbacks

import (
	"context"
	"strings"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================

// Common callbacks
const (
	BackToMain = "back_to_main"
	Help       = "help"
	Contact    = "contact"
	UserInfo   = "user_info"
	EditInfo   = "edit_info"
)

// Appointment callbacks
const (
	CancelCita  = "cancel_cita:"  // cancel_cita:123
	ConfirmCita = "confirm_cita:" // confirm_cita:123 (админ)
	RejectCita  = "reject_cita:"  // reject_cita:123 (админ)
)

// Admin callbacks
const (
	AdminProducts = "admin_products"
	AdminAgenda   = "admin_agenda"
	SetStock      = "set_stock:" // set_stock:123 (админ)
)

// Handler обрабатывает нажатия inline-кнопок
type Handler struct {
	deps *callbacktypes.Handler
}

// NewHandler создаёт callback handler с зависимостями
func NewHandler(deps *callbacktypes.Handler) *Handler {
	return &Handler{deps: deps}
}

// HandleCallbackQuery — входная точка для всех callback query
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	// Сначала подтверждаем callback, иначе клиент крутит спиннер
	// до таймаута; правки и отправки сообщений идут после
	common.AnswerCallback(ctx, b, callback.ID, "")

	Route(ctx, b, callback, h.deps)
}

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	switch {
	// ===== Навигация =====
	case data == BackToMain:
		HandleBackToMain(ctx, b, callback, h)
	case data == "noop":
		// Callback уже подтверждён, делать больше нечего

	// ===== Профиль клиента =====
	case data == UserInfo:
		HandleUserInfo(ctx, b, callback, h)
	case data == EditInfo:
		HandleEditInfo(ctx, b, callback, h)

	// ===== Справка и контакты =====
	case data == Help:
		HandleHelp(ctx, b, callback, h)
	case data == Contact:
		HandleContact(ctx, b, callback, h)

	// ===== Записи на примерку =====
	case strings.HasPrefix(data, CancelCita):
		HandleCancelCita(ctx, b, callback, h)
	case strings.HasPrefix(data, ConfirmCita):
		HandleConfirmCita(ctx, b, callback, h)
	case strings.HasPrefix(data, RejectCita):
		HandleRejectCita(ctx, b, callback, h)

	// ===== Панель администратора =====
	case data == AdminProducts:
		HandleAdminProducts(ctx, b, callback, h)
	case data == AdminAgenda:
		HandleAdminAgenda(ctx, b, callback, h)
	case strings.HasPrefix(data, SetStock):
		HandleSetStock(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
	}
}

package handlers

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/controller/flow"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start.
// Незарегистрированный пользователь попадает в диалог регистрации,
// зарегистрированный сразу видит главное меню.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	username := update.Message.From.Username

	h.logger.Info("Received /start",
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username))

	exists, err := h.userService.Exists(ctx, telegramID)
	if err != nil {
		h.logger.Error("Failed to check user existence", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Hubo un problema. Por favor, intenta más tarde.")
		return
	}

	if !exists {
		h.logger.Info("User not registered, starting registration",
			zap.Int64("telegram_id", telegramID))

		h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
			"¡Hola %s! Bienvenido a nuestra tienda de ropa. "+
				"Para comenzar, necesito algunos datos básicos.", username))

		h.startRegistration(ctx, b, update.Message.Chat.ID, telegramID)
		return
	}

	user, err := h.userService.GetByTelegramID(ctx, telegramID)
	if err != nil || user == nil {
		h.logger.Error("Failed to load registered user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Hubo un problema. Por favor, intenta más tarde.")
		return
	}

	isAdmin := h.accessService.IsAdmin(ctx, telegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        fmt.Sprintf("¡Bienvenido de nuevo, %s! ¿En qué puedo ayudarte hoy?", user.Name),
		ReplyMarkup: keyboards.MainMenu(isAdmin),
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "También puedes acceder directamente a nuestras aplicaciones:",
		ReplyMarkup: keyboards.WebAppMenu(h.urls),
	})
}

// startRegistration переводит пользователя на первый шаг анкеты
func (h *Handlers) startRegistration(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	h.stateManager.SetState(telegramID, state.StateRegisterName)
	h.sendMessage(ctx, b, chatID, flow.Prompt(flow.StepName))
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      helpText,
		ParseMode: models.ParseModeMarkdown,
	})
}

// HandleAdmin обрабатывает команду /admin
func (h *Handlers) HandleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if !h.requireAdmin(ctx, b, update) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Panel de Administración. Selecciona una opción:",
		ReplyMarkup: keyboards.AdminMenu(h.urls),
	})
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ No hay ninguna operación activa para cancelar.")
		return
	}

	// Сессия сбрасывается без сохранения собранных полей
	h.stateManager.ClearState(telegramID)

	h.logger.Info("Dialog cancelled",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Operación cancelada.\n\nEscribe /help para ver los comandos disponibles.")
}

// HandleMyAppointments обрабатывает команду /miscitas
func (h *Handlers) HandleMyAppointments(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	h.showAppointments(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

// HandleAgendarStart начинает диалог записи на примерку
func (h *Handlers) HandleAgendarStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateAppointmentDate)

	h.logger.Info("Starting appointment dialog", zap.Int64("telegram_id", telegramID))

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📅 Agendar una cita\n\n"+
			"¿Para qué fecha y hora? Usa el formato AAAA-MM-DD HH:MM\n"+
			"Por ejemplo: 2026-09-04 17:30\n\n"+
			"Para cancelar usa /cancel")
}

// HandleAddProductStart начинает диалог добавления товара (только админ)
func (h *Handlers) HandleAddProductStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if !h.requireAdmin(ctx, b, update) {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateProductName)

	h.logger.Info("Starting product creation", zap.Int64("telegram_id", telegramID))

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"📦 Nuevo producto\n\n"+
			"Paso 1 de 4: ¿Cómo se llama el producto?\n\n"+
			"Para cancelar usa /cancel")
}

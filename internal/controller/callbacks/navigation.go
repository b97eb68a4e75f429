package callbacks

import (
	"context"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBackToMain возвращает пользователя в главное меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	telegramID := callback.From.ID
	isAdmin := h.AccessService.IsAdmin(ctx, telegramID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      message.Chat.ID,
		Text:        "¿En qué puedo ayudarte hoy?",
		ReplyMarkup: keyboards.MainMenu(isAdmin),
	})

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      message.Chat.ID,
		Text:        "Puedes acceder a nuestros servicios:",
		ReplyMarkup: keyboards.WebAppMenu(h.URLs),
	})

	// Убираем старое сообщение с inline-кнопками
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    message.Chat.ID,
		MessageID: message.ID,
	})
	if err != nil {
		h.Logger.Warn("Failed to delete message",
			zap.Int64("chat_id", message.Chat.ID),
			zap.Error(err))
	}
}

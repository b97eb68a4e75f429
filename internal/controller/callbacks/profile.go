package callbacks

import (
	"context"
	"fmt"

	"github.com/columnamoda/store_bot/internal/controller/callbacks/callbacktypes"
	"github.com/columnamoda/store_bot/internal/controller/callbacks/common"
	"github.com/columnamoda/store_bot/internal/controller/flow"
	"github.com/columnamoda/store_bot/internal/controller/keyboards"
	"github.com/columnamoda/store_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Первый шаг анкеты
const stateRegisterName = callbacktypes.UserState(state.StateRegisterName)

// HandleUserInfo показывает карточку клиента с кнопкой редактирования
func HandleUserInfo(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	telegramID := callback.From.ID
	user, err := h.UserService.GetByTelegramID(ctx, telegramID)
	if err != nil {
		h.Logger.Error("Failed to get user for info card",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		return
	}

	if user == nil {
		// Профиля нет — начинаем анкету прямо из callback
		h.StateManager.SetState(telegramID, stateRegisterName)
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    message.Chat.ID,
			MessageID: message.ID,
			Text:      "Vamos a registrar tus datos. " + flow.Prompt(flow.StepName),
		})
		return
	}

	keyboard := keyboards.NewBuilder().
		Row(keyboards.Button("Editar información", EditInfo)).
		Row(keyboards.Button("Volver", BackToMain)).
		Build()

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    message.Chat.ID,
		MessageID: message.ID,
		Text: fmt.Sprintf(
			"📝 *Tu información*\n\n"+
				"*Nombre:* %s\n"+
				"*Teléfono:* %s\n"+
				"*Email:* %s\n"+
				"*Dirección:* %s\n",
			user.Name, user.Phone, user.Email, user.Address),
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
}

// HandleEditInfo запускает анкету заново для обновления данных
func HandleEditInfo(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	message := common.GetMessageFromCallback(callback)
	if message == nil {
		return
	}

	telegramID := callback.From.ID
	h.StateManager.SetState(telegramID, stateRegisterName)

	h.Logger.Info("User editing profile", zap.Int64("telegram_id", telegramID))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.Chat.ID,
		Text:   "Actualicemos tus datos. " + flow.Prompt(flow.StepName),
	})
}
